package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamDecoding(t *testing.T) {
	var req GenerateSessionsRequest
	body := `{"offeringId": "12", "dayOfWeek": 0, "startTime": "", "weekCount": 10, "location": null}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, "12", req.OfferingID.Raw())
	assert.Equal(t, json.Number("10"), req.WeekCount.Raw())
	assert.True(t, req.DayOfWeek.Falsy())
	assert.Equal(t, 1, req.DayOfWeek.Or(1).Raw())
	assert.Equal(t, "09:00", req.StartTime.Or("09:00").Raw())
	assert.Equal(t, "Lecture", req.SessionType.Or("Lecture").Raw())
	assert.False(t, req.Location.IsSet())
	assert.Nil(t, req.Location.OrNull().Raw())
}

func TestParamFalsy(t *testing.T) {
	tests := []struct {
		name  string
		param Param
		falsy bool
	}{
		{"missing", Param{}, true},
		{"false", NewParam(false), true},
		{"true", NewParam(true), false},
		{"empty string", NewParam(""), true},
		{"zero number", NewParam(json.Number("0")), true},
		{"zero decimal", NewParam(json.Number("0.00")), true},
		{"number", NewParam(json.Number("3")), false},
		{"string zero", NewParam("0"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.falsy, tt.param.Falsy())
		})
	}
}

func TestParamIsFalse(t *testing.T) {
	assert.True(t, NewParam(false).IsFalse())
	assert.False(t, Param{}.IsFalse())
	assert.False(t, NewParam(json.Number("0")).IsFalse())
}

func TestParamValue(t *testing.T) {
	v, err := NewParam(json.Number("7")).Value()
	require.NoError(t, err)
	assert.Equal(t, json.Number("7"), v)

	out, err := json.Marshal(NewParam("x"))
	require.NoError(t, err)
	assert.Equal(t, `"x"`, string(out))
}
