package procedures

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/akademik/akademik/internal/pkg/apperrors"
	"github.com/shopspring/decimal"
)

// Kind identifies the SQL type family of a procedure parameter
type Kind int

const (
	KindInt Kind = iota
	KindTinyInt
	KindSmallInt
	KindBit
	KindDecimal
	KindNVarChar
	KindChar
	KindDate
	KindTime
	KindDateTime2
)

// MaxLength marks an unbounded NVarChar
const MaxLength = -1

// Type is the declared SQL type of a parameter. Length applies to character
// types, Precision and Scale to decimals.
type Type struct {
	Kind      Kind
	Length    int
	Precision int
	Scale     int
}

// Fixed-size types
var (
	Int       = Type{Kind: KindInt}
	TinyInt   = Type{Kind: KindTinyInt}
	SmallInt  = Type{Kind: KindSmallInt}
	Bit       = Type{Kind: KindBit}
	Date      = Type{Kind: KindDate}
	Time      = Type{Kind: KindTime}
	DateTime2 = Type{Kind: KindDateTime2}
)

// NVarChar declares a unicode string parameter of at most n characters
func NVarChar(n int) Type {
	return Type{Kind: KindNVarChar, Length: n}
}

// Char declares a fixed length character parameter
func Char(n int) Type {
	return Type{Kind: KindChar, Length: n}
}

// Decimal declares an exact numeric parameter
func Decimal(precision, scale int) Type {
	return Type{Kind: KindDecimal, Precision: precision, Scale: scale}
}

// String returns the declaration as it would appear in T-SQL
func (t Type) String() string {
	switch t.Kind {
	case KindInt:
		return "Int"
	case KindTinyInt:
		return "TinyInt"
	case KindSmallInt:
		return "SmallInt"
	case KindBit:
		return "Bit"
	case KindDecimal:
		return fmt.Sprintf("Decimal(%d,%d)", t.Precision, t.Scale)
	case KindNVarChar:
		if t.Length == MaxLength {
			return "NVarChar(MAX)"
		}
		return fmt.Sprintf("NVarChar(%d)", t.Length)
	case KindChar:
		return fmt.Sprintf("Char(%d)", t.Length)
	case KindDate:
		return "Date"
	case KindTime:
		return "Time"
	case KindDateTime2:
		return "DateTime2"
	default:
		return "Unknown"
	}
}

// pgCast is the PostgreSQL type used to cast the bound placeholder, which keeps
// NULL arguments unambiguous for overloaded functions.
func (t Type) pgCast() string {
	switch t.Kind {
	case KindInt:
		return "integer"
	case KindTinyInt, KindSmallInt:
		return "smallint"
	case KindBit:
		return "boolean"
	case KindDecimal:
		return fmt.Sprintf("numeric(%d,%d)", t.Precision, t.Scale)
	case KindNVarChar:
		if t.Length == MaxLength || t.Length <= 0 {
			return "text"
		}
		return fmt.Sprintf("varchar(%d)", t.Length)
	case KindChar:
		return fmt.Sprintf("char(%d)", t.Length)
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	case KindDateTime2:
		return "timestamp"
	default:
		return "text"
	}
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

var timeLayouts = []string{
	"15:04:05",
	"15:04",
	"15:04:05.000",
}

// Coerce converts a raw request value into the driver value for this type.
// nil, nil pointers and invalid sql.Null* values become SQL NULL.
func (t Type) Coerce(name string, v any) (any, error) {
	v, err := unwrap(name, v)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}

	switch t.Kind {
	case KindInt:
		return coerceInt(name, v, math.MinInt32, math.MaxInt32)
	case KindTinyInt:
		return coerceInt(name, v, 0, math.MaxUint8)
	case KindSmallInt:
		return coerceInt(name, v, math.MinInt16, math.MaxInt16)
	case KindBit:
		return coerceBool(name, v)
	case KindDecimal:
		return coerceDecimal(name, v, t.Scale)
	case KindNVarChar, KindChar:
		return coerceString(v), nil
	case KindDate:
		ts, err := coerceTimestamp(name, v)
		if err != nil {
			return nil, err
		}
		y, m, d := ts.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	case KindTime:
		return coerceClock(name, v)
	case KindDateTime2:
		return coerceTimestamp(name, v)
	default:
		return v, nil
	}
}

// maxValuerDepth bounds nested driver.Valuer unwrapping
const maxValuerDepth = 8

// unwrap dereferences pointers and resolves driver.Valuer values, which may
// themselves produce another Valuer (a request Param holding a decimal).
func unwrap(name string, v any) (any, error) {
	for i := 0; i < maxValuerDepth; i++ {
		v = indirect(v)
		valuer, ok := v.(driver.Valuer)
		if !ok {
			return v, nil
		}
		val, err := valuer.Value()
		if err != nil {
			return nil, apperrors.NewParameterError(name, err.Error())
		}
		v = val
	}
	return indirect(v), nil
}

func indirect(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	return rv.Interface()
}

func coerceInt(name string, v any, min, max int64) (any, error) {
	var n int64
	switch x := v.(type) {
	case int:
		n = int64(x)
	case int8:
		n = int64(x)
	case int16:
		n = int64(x)
	case int32:
		n = int64(x)
	case int64:
		n = x
	case uint8:
		n = int64(x)
	case uint16:
		n = int64(x)
	case uint32:
		n = int64(x)
	case uint64:
		if x > math.MaxInt64 {
			return nil, rangeError(name, min, max)
		}
		n = int64(x)
	case float32:
		return coerceInt(name, float64(x), min, max)
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) || x != math.Trunc(x) {
			return nil, apperrors.NewParameterError(name, "Invalid number.")
		}
		n = int64(x)
	case json.Number:
		d, err := decimal.NewFromString(x.String())
		if err != nil || !d.IsInteger() {
			return nil, apperrors.NewParameterError(name, "Invalid number.")
		}
		if d.LessThan(decimal.NewFromInt(min)) || d.GreaterThan(decimal.NewFromInt(max)) {
			return nil, rangeError(name, min, max)
		}
		n = d.IntPart()
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return nil, apperrors.NewParameterError(name, "Invalid number.")
		}
		n = parsed
	default:
		return nil, apperrors.NewParameterError(name, "Invalid number.")
	}

	if n < min || n > max {
		return nil, rangeError(name, min, max)
	}
	return n, nil
}

func rangeError(name string, min, max int64) error {
	return apperrors.NewParameterError(name, fmt.Sprintf("Value must be between %d and %d.", min, max))
}

func coerceBool(name string, v any) (any, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case int, int8, int16, int32, int64, uint8, uint16, uint32, uint64, float32, float64:
		f, _ := strconv.ParseFloat(fmt.Sprint(x), 64)
		return f != 0, nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			break
		}
		return f != 0, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "true", "1", "yes":
			return true, nil
		case "false", "0", "no", "":
			return false, nil
		}
	}
	return nil, apperrors.NewParameterError(name, "Invalid boolean.")
}

func coerceDecimal(name string, v any, scale int) (any, error) {
	var d decimal.Decimal
	switch x := v.(type) {
	case int:
		d = decimal.NewFromInt(int64(x))
	case int8:
		d = decimal.NewFromInt(int64(x))
	case int16:
		d = decimal.NewFromInt(int64(x))
	case int32:
		d = decimal.NewFromInt32(x)
	case int64:
		d = decimal.NewFromInt(x)
	case uint8:
		d = decimal.NewFromInt(int64(x))
	case uint16:
		d = decimal.NewFromInt(int64(x))
	case uint32:
		d = decimal.NewFromInt(int64(x))
	case uint64:
		parsed, err := decimal.NewFromString(strconv.FormatUint(x, 10))
		if err != nil {
			return nil, apperrors.NewParameterError(name, "Invalid number.")
		}
		d = parsed
	case float32:
		d = decimal.NewFromFloat32(x)
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, apperrors.NewParameterError(name, "Invalid number.")
		}
		d = decimal.NewFromFloat(x)
	case json.Number:
		parsed, err := decimal.NewFromString(x.String())
		if err != nil {
			return nil, apperrors.NewParameterError(name, "Invalid number.")
		}
		d = parsed
	case string:
		parsed, err := decimal.NewFromString(strings.TrimSpace(x))
		if err != nil {
			return nil, apperrors.NewParameterError(name, "Invalid number.")
		}
		d = parsed
	default:
		return nil, apperrors.NewParameterError(name, "Invalid number.")
	}
	return d.Round(int32(scale)).String(), nil
}

func coerceString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprint(x)
	}
}

func coerceTimestamp(name string, v any) (time.Time, error) {
	switch x := v.(type) {
	case time.Time:
		return x, nil
	case string:
		s := strings.TrimSpace(x)
		for _, layout := range dateLayouts {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts, nil
			}
		}
	}
	return time.Time{}, apperrors.NewParameterError(name, "Invalid date.")
}

func coerceClock(name string, v any) (any, error) {
	switch x := v.(type) {
	case time.Time:
		return x.Format("15:04:05"), nil
	case string:
		s := strings.TrimSpace(x)
		for _, layout := range timeLayouts {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts.Format("15:04:05"), nil
			}
		}
	}
	return nil, apperrors.NewParameterError(name, "Invalid time.")
}
