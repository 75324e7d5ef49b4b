package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RoleName defines the user role as stored in the database
type RoleName string

const (
	RoleAdmin    RoleName = "Admin"
	RoleAcademic RoleName = "Academic"
	RoleStudent  RoleName = "Student"
)

// Valid reports whether r is one of the known roles
func (r RoleName) Valid() bool {
	switch r {
	case RoleAdmin, RoleAcademic, RoleStudent:
		return true
	}
	return false
}

// DefaultTerm is the term pages open with
const DefaultTerm = "2025-FALL"

// Terms selectable in the client
var Terms = []string{"2025-FALL", "2025-SPRING"}

// Flag is a boolean column. Drivers without a native boolean report BIT
// columns as 0/1, so both forms are accepted.
type Flag bool

// UnmarshalJSON implements json.Unmarshaler
func (f *Flag) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	switch strings.ToLower(s) {
	case "true", "1":
		*f = true
	case "false", "0", "null", "":
		*f = false
	default:
		return fmt.Errorf("invalid flag value %q", s)
	}
	return nil
}

// Timestamp accepts both full RFC 3339 timestamps and plain dates
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// UnmarshalJSON implements json.Unmarshaler
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(bytes.TrimSpace(data))
	if s == "null" {
		t.Time = time.Time{}
		return nil
	}
	unquoted, err := strconv.Unquote(s)
	if err != nil {
		return fmt.Errorf("invalid timestamp %s", s)
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, unquoted); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q", unquoted)
}

// MarshalJSON implements json.Marshaler
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339))
}

// Date formats the timestamp as a calendar date, empty when unset
func (t Timestamp) Date() string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
