// Package validation checks client form input before it is sent to the
// gateway. Rules are declared with validator tags; a `msg` tag overrides the
// generated Turkish message of a field.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// FieldError is the first rule a form field failed
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// Struct validates obj and returns a *FieldError for the first failing field
func Struct(obj any) error {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err
	}

	fe := errs[0]
	return &FieldError{Field: fe.Field(), Message: message(obj, fe)}
}

func message(obj any, fe validator.FieldError) string {
	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() == reflect.Struct {
		if f, ok := t.FieldByName(fe.StructField()); ok {
			if msg := f.Tag.Get("msg"); msg != "" {
				return msg
			}
		}
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s zorunludur.", fe.Field())
	case "email":
		return fmt.Sprintf("%s geçerli bir e-posta adresi olmalıdır.", fe.Field())
	case "gte", "min":
		return fmt.Sprintf("%s en az %s olmalıdır.", fe.Field(), fe.Param())
	case "lte", "max":
		return fmt.Sprintf("%s en fazla %s olmalıdır.", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s %s değerinden büyük olmalıdır.", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s şunlardan biri olmalıdır: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s geçersiz.", fe.Field())
	}
}
