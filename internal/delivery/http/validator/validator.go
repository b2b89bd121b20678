// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "libris/internal/domain/errors"

	validatorlib "github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator.Validate instance for Echo.
type echoValidator struct {
	validate *validatorlib.Validate
}

// New creates the request validator installed on the Echo server.
func New() *echoValidator {
	return &echoValidator{validate: validatorlib.New()}
}

// Validate checks a bound request struct against its validate tags. Failures
// surface as the application's validation error so the error handler shapes
// them consistently.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
