// Package validator adapts go-playground/validator to echo and reports
// failures as domain validation errors.
package validator

import (
	"reflect"
	"strings"

	domainerrors "estate/internal/domain/errors"
	"estate/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &CustomValidator{validate: v}
}

func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}

// describe renders "address.city: is required" style messages using the
// JSON path of the field.
func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return field + ": is required"
	case "oneof":
		return field + ": must be one of [" + fe.Param() + "]"
	case "gt", "gte", "lt", "lte", "min", "max":
		return field + ": must be " + fe.Tag() + " " + fe.Param()
	case "email":
		return field + ": must be a valid email"
	case "latitude", "longitude":
		return field + ": must be a valid " + fe.Tag()
	default:
		return field + ": failed " + fe.Tag()
	}
}

func jsonFieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "query", "param", "form"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}

	return fld.Name
}
