package helpers

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetContentNullString(t *testing.T) {
	assert.False(t, GetContentNullString("").Valid)
	assert.Equal(t, sql.NullString{String: "2025-FALL", Valid: true}, GetContentNullString("2025-FALL"))
}

func TestStringOr(t *testing.T) {
	assert.Equal(t, "Lecture", StringOr("", "Lecture"))
	assert.Equal(t, "Lab", StringOr("Lab", "Lecture"))
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 30*time.Second, ParseDuration("30s", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("soon", time.Minute))
}

func TestLeadingInt(t *testing.T) {
	assert.Equal(t, int64(12), LeadingInt("12"))
	assert.Equal(t, int64(12), LeadingInt(" 12abc"))
	assert.Equal(t, int64(-3), LeadingInt("-3"))
	assert.Equal(t, "abc", LeadingInt("abc"))
	assert.Equal(t, "-", LeadingInt("-"))

	assert.Nil(t, OptionalLeadingInt(""))
	assert.Equal(t, int64(4), OptionalLeadingInt("4"))
}
