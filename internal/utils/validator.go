// internal/utils/validator.go
package utils

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/inventra/inventory-backend/internal/i18n"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so clients can map errors to inputs.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Prices are decimals; numeric tags (gt, min) see them as float64.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func NewValidationError(lang, field, key string, args ...interface{}) ValidationError {
	return ValidationError{
		Field:   field,
		Message: i18n.T(lang, key, append([]interface{}{FieldLabel(lang, field)}, args...)...),
	}
}

// GetValidationErrors lists every failing field, not just the first.
func GetValidationErrors(lang string, err error) []ValidationError {
	var validationErrors []ValidationError

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   e.Field(),
				Message: getValidationMessage(lang, e),
			})
		}
	}

	return validationErrors
}

func FieldLabel(lang, field string) string {
	key := i18n.KeyFieldPrefix + field
	if label := i18n.T(lang, key); label != key {
		return label
	}
	return field
}

func getValidationMessage(lang string, e validator.FieldError) string {
	label := FieldLabel(lang, e.Field())

	switch e.Tag() {
	case "required":
		return i18n.T(lang, i18n.KeyValidationRequired, label)
	case "max":
		return i18n.T(lang, i18n.KeyValidationMax, label, e.Param())
	case "min":
		if e.Kind() == reflect.String {
			return i18n.T(lang, i18n.KeyValidationMin, label, e.Param())
		}
		return i18n.T(lang, i18n.KeyValidationMinValue, label, e.Param())
	case "gt":
		return i18n.T(lang, i18n.KeyValidationPositive, label)
	default:
		return i18n.T(lang, i18n.KeyValidationInvalid, label)
	}
}
