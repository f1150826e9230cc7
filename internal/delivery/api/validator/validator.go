// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"countdown/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates a validator with the project's custom tags registered.
// Field names are reported by their json names.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}

		return name
	})

	// hexrgb: "#RRGGBB"
	_ = v.RegisterValidation("hexrgb", func(fl validator.FieldLevel) bool {
		return entity.IsHexColor(fl.Field().String())
	})

	return &CustomValidator{validator: v}
}

// Validate validates the struct.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// Details converts validation failures into a field -> reason map.
// It returns nil for errors that did not come from the validator.
func Details(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	details := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		field := fe.Namespace()
		// Drop the top-level struct name
		if _, rest, found := strings.Cut(field, "."); found {
			field = rest
		}
		details[field] = reason(fe)
	}

	return details
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "hexrgb":
		return "must be a hex color like #ff0000"
	case "max":
		return "must be at most " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
