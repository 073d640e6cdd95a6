package validation

import (
	"time"

	apperrors "expense-tracker/internal/errors"
	"expense-tracker/internal/models"
)

// ValidateCriteria checks the structural and ordering constraints of filter
// criteria and returns every violation found; it never short-circuits, so a
// caller can report all problems in one response. now anchors the
// not-in-the-future date checks.
//
// The two ordering checks are intentionally asymmetric: the date ordering
// check runs only when both date bounds individually passed their future
// checks, while the amount ordering check runs whenever both amount bounds
// are present, even when one or both already failed their sign checks and
// the ordering error is redundant. Existing clients depend on the exact set
// of errors returned, so both behaviors are kept as-is.
func ValidateCriteria(c *models.FilterCriteria, now time.Time) []apperrors.FieldError {
	var errs []apperrors.FieldError

	if c.IDStart != nil && c.IDEnd != nil && c.IDEnd.String() < c.IDStart.String() {
		errs = append(errs, apperrors.NewFieldError("idEnd must not be less than idStart", "idEnd"))
	}

	dateStartOK := true
	dateEndOK := true

	if c.DateStart != nil && c.DateStart.After(now) {
		dateStartOK = false
		errs = append(errs, apperrors.NewFieldError("dateStart must be at today or before today", "dateStart"))
	}
	if c.DateEnd != nil && c.DateEnd.After(now) {
		dateEndOK = false
		errs = append(errs, apperrors.NewFieldError("dateEnd must be at today or before today", "dateEnd"))
	}
	if c.DateStart != nil && c.DateEnd != nil && dateStartOK && dateEndOK && c.DateEnd.Before(*c.DateStart) {
		errs = append(errs, apperrors.NewFieldError("dateEnd must not be before dateStart", "dateEnd"))
	}

	if c.AmountStart != nil && c.AmountStart.IsNegative() {
		errs = append(errs, apperrors.NewFieldError("amountStart must not be negative", "amountStart"))
	}
	if c.AmountEnd != nil && !c.AmountEnd.IsPositive() {
		errs = append(errs, apperrors.NewFieldError("amountEnd must be greater than 0", "amountEnd"))
	}
	if c.AmountStart != nil && c.AmountEnd != nil && c.AmountEnd.LessThan(*c.AmountStart) {
		errs = append(errs, apperrors.NewFieldError("amountEnd must not be less than amountStart", "amountEnd"))
	}

	return errs
}
