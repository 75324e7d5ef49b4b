package main

import (
	"testing"

	"github.com/akademik/akademik/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	st, err := parseStatus(" late ")
	require.NoError(t, err)
	assert.Equal(t, models.AttendanceLate, st)

	_, err = parseStatus("Sick")
	assert.Error(t, err)
}

func TestParseMarks(t *testing.T) {
	marks, err := parseMarks([]string{"12=Absent", "14=excused"})
	require.NoError(t, err)
	assert.Equal(t, map[int64]models.AttendanceStatus{
		12: models.AttendanceAbsent,
		14: models.AttendanceExcused,
	}, marks)

	_, err = parseMarks([]string{"12"})
	assert.Error(t, err)

	_, err = parseMarks([]string{"x=Present"})
	assert.Error(t, err)
}
