package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// applyEnv overrides the fields of the struct target points to with the
// environment variables named by their env tags. Nested structs are walked.
func applyEnv(target any) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config target must be a struct pointer, got %T", target)
	}
	return applyEnvStruct(v.Elem())
}

func applyEnvStruct(v reflect.Value) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field, spec := v.Field(i), t.Field(i)

		if field.Kind() == reflect.Struct {
			if err := applyEnvStruct(field); err != nil {
				return err
			}
			continue
		}

		key := spec.Tag.Get("env")
		if key == "" {
			continue
		}
		raw, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		if err := assign(field, raw); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

// assign parses raw into field according to the field's kind. Strings are
// taken verbatim so passwords keep surrounding spaces.
func assign(field reflect.Value, raw string) error {
	if !field.CanSet() {
		return fmt.Errorf("field of type %s cannot be set", field.Type())
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Bool:
		b, err := parseBool(raw)
		if err != nil {
			return err
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid integer %q", raw)
		}
		field.SetInt(n)
	default:
		return fmt.Errorf("unsupported field kind %s", field.Kind())
	}
	return nil
}

// parseBool accepts the strconv forms plus yes/no and on/off
func parseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "y", "on":
		return true, nil
	case "no", "n", "off", "":
		return false, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, fmt.Errorf("invalid boolean %q", value)
	}
	return b, nil
}
