package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scoreForm struct {
	Score float64 `json:"score" validate:"gte=0,lte=100" msg:"Not 0-100 arasında olmalıdır."`
}

type componentForm struct {
	Name   string  `label:"Bileşen Adı" validate:"required"`
	Weight float64 `label:"Ağırlık" validate:"gt=0,lte=100"`
	Email  string  `json:"email" validate:"omitempty,email"`
}

func TestStruct(t *testing.T) {
	require.NoError(t, Struct(scoreForm{Score: 100}))
	require.NoError(t, Struct(&scoreForm{Score: 0}))

	err := Struct(scoreForm{Score: 100.5})
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "score", fe.Field)
	assert.Equal(t, "Not 0-100 arasında olmalıdır.", fe.Message)

	err = Struct(componentForm{Weight: 10})
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "Bileşen Adı zorunludur.", err.Error())

	err = Struct(componentForm{Name: "Vize", Weight: 0})
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "Ağırlık 0 değerinden büyük olmalıdır.", err.Error())

	err = Struct(componentForm{Name: "Vize", Weight: 30, Email: "nope"})
	assert.EqualError(t, err, "email geçerli bir e-posta adresi olmalıdır.")
}
