// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// EchoValidator wraps a validator.Validate instance for Echo.
type EchoValidator struct {
	validate *validator.Validate
}

// New creates an EchoValidator.
func New() *EchoValidator {
	return &EchoValidator{
		validate: validator.New(),
	}
}

// Validate implements echo.Validator. Handlers surface the failure as a
// client error themselves, so the raw validation error is returned as is.
func (v *EchoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
