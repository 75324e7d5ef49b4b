package dto

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"strconv"
)

// Param is a request value forwarded to a procedure parameter as the client
// sent it. The parameter's declared SQL type performs the conversion, so "12"
// and 12 bind the same way.
type Param struct {
	value any
}

// NewParam wraps v
func NewParam(v any) Param {
	return Param{value: v}
}

// UnmarshalJSON implements json.Unmarshaler
func (p *Param) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	p.value = v
	return nil
}

// MarshalJSON implements json.Marshaler
func (p Param) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.value)
}

// Value implements driver.Valuer. Numbers are returned as json.Number.
func (p Param) Value() (driver.Value, error) {
	return p.value, nil
}

// Raw returns the decoded value
func (p Param) Raw() any {
	return p.value
}

// IsSet reports whether a non-null value was sent
func (p Param) IsSet() bool {
	return p.value != nil
}

// Falsy reports whether the value is missing, null, false, zero or empty
func (p Param) Falsy() bool {
	switch v := p.value.(type) {
	case nil:
		return true
	case bool:
		return !v
	case string:
		return v == ""
	case json.Number:
		f, err := strconv.ParseFloat(v.String(), 64)
		return err == nil && f == 0
	case float64:
		return v == 0
	case int:
		return v == 0
	case int64:
		return v == 0
	default:
		return false
	}
}

// OrNull maps falsy values to SQL NULL
func (p Param) OrNull() Param {
	if p.Falsy() {
		return Param{}
	}
	return p
}

// Or substitutes def for falsy values
func (p Param) Or(def any) Param {
	if p.Falsy() {
		return Param{value: def}
	}
	return p
}

// IsFalse reports whether the client sent exactly false
func (p Param) IsFalse() bool {
	b, ok := p.value.(bool)
	return ok && !b
}
