package validation

import (
	"fmt"
	"reflect"
	"strings"

	apperrors "expense-tracker/internal/errors"
	"expense-tracker/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("record_type", validateRecordType)
	_ = v.RegisterValidation("type_criteria", validateTypeCriteria)
	_ = v.RegisterValidation("filter_mode", validateFilterMode)
	_ = v.RegisterValidation("record_id", validateRecordID)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct and returns the field errors found
func (v *Validator) Struct(i interface{}) []apperrors.FieldError {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []apperrors.FieldError{{Message: err.Error()}}
	}

	fields := make([]apperrors.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, apperrors.FieldError{
			Message: messageForTag(fe),
			Field:   fe.Field(),
		})
	}
	return fields
}

// Custom validation functions

// validateRecordType validates that a record type is DEBIT or CREDIT
func validateRecordType(fl validator.FieldLevel) bool {
	return models.IsValidRecordType(fl.Field().String())
}

// validateTypeCriteria validates that a filter type criteria is ANY, DEBIT or CREDIT
func validateTypeCriteria(fl validator.FieldLevel) bool {
	return models.IsValidTypeCriteria(fl.Field().String())
}

// validateFilterMode validates that a filter combination mode is ALL or ANY
func validateFilterMode(fl validator.FieldLevel) bool {
	return models.IsValidFilterMode(fl.Field().String())
}

// validateRecordID validates the canonical record identifier form
func validateRecordID(fl validator.FieldLevel) bool {
	return models.IsValidRecordID(fl.Field().String())
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "record_type":
		return fmt.Sprintf("%s must be either %s or %s", fe.Field(), models.RecordTypeDebit, models.RecordTypeCredit)
	case "type_criteria":
		return fmt.Sprintf("%s must be %s, %s or %s", fe.Field(), models.TypeCriteriaAny, models.RecordTypeDebit, models.RecordTypeCredit)
	case "filter_mode":
		return fmt.Sprintf("%s must be either %s or %s", fe.Field(), models.FilterModeAll, models.FilterModeAny)
	case "record_id":
		return fmt.Sprintf("%s is not a valid record id", fe.Field())
	case "eqfield":
		return fmt.Sprintf("%s does not match", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
