package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/araddon/dateparse"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("name"); name != "" {
			return name
		}
		return f.Name
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, ok := parseDate(fl.Field().String())
		return ok
	})
	return v
}

// parseDate accepts ISO dates and timestamps. Values without a zone are read as UTC.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Validate checks that every field is present and well-formed. A zero page
// count counts as missing.
func (f EditionFormData) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return fmt.Errorf("validate edition: %w", err)
	}

	ve := &ValidationError{
		Message: msgInvalidEdition,
		Fields:  make(map[string]string, len(valErrs)),
	}
	for _, fe := range valErrs {
		if fe.Tag() == "required" {
			ve.Message = msgFieldsRequired
		}
		ve.Fields[fe.Field()] = formatValidationError(fe)
	}
	return ve
}

func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "isodate":
		return "must be a valid date"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
