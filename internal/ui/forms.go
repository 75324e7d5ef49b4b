package ui

import (
	"strconv"
	"strings"

	"github.com/akademik/akademik/internal/pkg/validation"
	"github.com/shopspring/decimal"
)

// ScoreMessage is shown for a score outside 0-100
const ScoreMessage = "Not 0-100 arasında olmalıdır."

// GradeForm is a score typed into a gradebook cell
type GradeForm struct {
	EnrollmentID int64  `label:"Kayıt" validate:"required"`
	ComponentID  int64  `label:"Bileşen" validate:"required"`
	Score        string `label:"Not"`
}

type scoreInput struct {
	Score float64 `validate:"gte=0,lte=100" msg:"Not 0-100 arasında olmalıdır."`
}

// Parse validates the form and returns the score
func (f GradeForm) Parse() (float64, error) {
	if err := validation.Struct(f); err != nil {
		return 0, err
	}
	score, err := strconv.ParseFloat(strings.TrimSpace(f.Score), 64)
	if err != nil {
		return 0, &validation.FieldError{Field: "Not", Message: ScoreMessage}
	}
	if err := validation.Struct(scoreInput{Score: score}); err != nil {
		return 0, err
	}
	return score, nil
}

// ComponentForm defines a new grade component
type ComponentForm struct {
	Name     string `label:"Bileşen Adı" validate:"required"`
	Weight   string `label:"Ağırlık" validate:"required,numeric"`
	Optional bool
}

// Parse validates the form and returns the weight
func (f ComponentForm) Parse() (decimal.Decimal, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Weight = strings.TrimSpace(f.Weight)
	if err := validation.Struct(f); err != nil {
		return decimal.Zero, err
	}
	weight, err := decimal.NewFromString(f.Weight)
	if err != nil {
		return decimal.Zero, &validation.FieldError{Field: "Ağırlık", Message: "Ağırlık geçersiz."}
	}
	return weight, nil
}

// LoginForm holds the credentials typed on the login screen
type LoginForm struct {
	Username string `label:"Kullanıcı adı" validate:"required"`
	Password string `label:"Şifre" validate:"required"`
}

// Validate checks that both fields are filled in
func (f LoginForm) Validate() error {
	return validation.Struct(f)
}
