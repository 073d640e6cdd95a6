package handlers

import (
	"expense-tracker/internal/errors"
	"expense-tracker/internal/validation"

	"github.com/labstack/echo/v4"
)

// CustomValidator implements the echo.Validator interface on top of the
// application validator
type CustomValidator struct {
	validator *validation.Validator
}

// NewValidator creates a new custom validator
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.NewValidator()}
}

// Validate implements the echo.Validator interface. Field problems are
// returned as a *errors.ValidationError for the error handler to format
func (cv *CustomValidator) Validate(i interface{}) error {
	if fields := cv.validator.Struct(i); len(fields) > 0 {
		return errors.NewValidationError(fields...)
	}
	return nil
}
