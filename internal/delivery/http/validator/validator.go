// Package validator wires go-playground/validator into Echo and translates
// rule failures into the application's validation error with per-field details.
package validator

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	domainerrors "siakad/internal/domain/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds the validator with the application's custom rules registered.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// passwords need an upper-case letter, a lower-case letter, and a digit
	_ = validate.RegisterValidation("userpassword", validPassword)

	return &CustomValidator{validate: validate}
}

// Validate checks the struct tags and returns an AppError carrying per-field
// messages when any rule fails.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domainerrors.ErrValidationFailed
	}

	fields := make([]domainerrors.FieldError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, domainerrors.FieldError{
			Field:   strings.ToLower(fieldErr.Field()),
			Message: fieldMessage(fieldErr),
		})
	}

	return domainerrors.NewValidationError(fields)
}

func fieldMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "value is too short"
	case "gte":
		return "must be at least " + fieldErr.Param()
	case "lte":
		return "must be at most " + fieldErr.Param()
	case "userpassword":
		return "must contain an upper-case letter, a lower-case letter, and a digit"
	default:
		return "is invalid"
	}
}

// validPassword rejects passwords missing an upper-case letter, a lower-case
// letter, or a digit. Character classes beyond ASCII letters and digits are
// not allowed.
func validPassword(fl validator.FieldLevel) bool {
	var hasUpper, hasLower, hasDigit bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			return false
		}
	}

	return hasUpper && hasLower && hasDigit
}
