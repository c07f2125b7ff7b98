// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	domainerrors "easyshop/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a validator instance for echo.
type Validator struct {
	validate *validator.Validate
}

// New creates an echo-compatible request validator.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements echo.Validator. Failures surface as the domain's
// validation error so the error handler maps them to a 400 envelope.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
