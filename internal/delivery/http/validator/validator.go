// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	domainerrors "staplewise/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the validator instance used for request DTOs.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the echo server.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Failures surface as the shared
// validation error so the error handler renders a 400 with field details.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
