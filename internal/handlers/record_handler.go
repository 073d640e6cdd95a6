package handlers

import (
	"errors"
	"net/http"

	"expense-tracker/internal/dto"
	apperrors "expense-tracker/internal/errors"
	"expense-tracker/internal/models"
	"expense-tracker/internal/query"
	"expense-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// RecordHandler handles expense/income record endpoints
type RecordHandler struct {
	recordService services.RecordServiceInterface
}

// NewRecordHandler creates a new record handler
func NewRecordHandler(recordService services.RecordServiceInterface) *RecordHandler {
	return &RecordHandler{
		recordService: recordService,
	}
}

// ListRecords returns all of the user's records, newest first
// @Summary List records
// @Tags Records
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.RecordResponse "Records"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Router /records [get]
func (h *RecordHandler) ListRecords(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	records, err := h.recordService.ListRecords(userID)
	if err != nil {
		return h.mapRecordError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewRecordListResponse(records))
}

// CreateRecord creates a new record
// @Summary Create record
// @Tags Records
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.RecordInput true "Record details"
// @Success 201 {object} dto.RecordResponse "Created record"
// @Failure 422 {object} errors.ErrorResponse "VALIDATION_001 - Invalid input"
// @Router /records [post]
func (h *RecordHandler) CreateRecord(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	var input dto.RecordInput
	if err := c.Bind(&input); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithMessage("Invalid request body"))
	}

	record, err := h.recordService.CreateRecord(userID, &input)
	if err != nil {
		return h.mapRecordError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewRecordResponse(record))
}

// EditRecord updates an owned record
// @Summary Edit record
// @Tags Records
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param request body dto.RecordInput true "Record details"
// @Success 200 {object} dto.RecordResponse "Updated record"
// @Failure 404 {object} errors.ErrorResponse "RECORD_001 - Record not found"
// @Failure 422 {object} errors.ErrorResponse "VALIDATION_001 - Invalid input"
// @Router /records/{id} [put]
func (h *RecordHandler) EditRecord(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	id := models.RecordID(c.Param("id"))
	if !models.IsValidRecordID(id.String()) {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithMessage("Invalid record ID"))
	}

	var input dto.RecordInput
	if err := c.Bind(&input); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithMessage("Invalid request body"))
	}

	record, err := h.recordService.EditRecord(userID, id, &input)
	if err != nil {
		return h.mapRecordError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewRecordResponse(record))
}

// DeleteRecord removes an owned record and returns the deleted value
// @Summary Delete record
// @Tags Records
// @Security BearerAuth
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} dto.RecordResponse "Deleted record"
// @Failure 404 {object} errors.ErrorResponse "RECORD_001 - Record not found"
// @Router /records/{id} [delete]
func (h *RecordHandler) DeleteRecord(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	id := models.RecordID(c.Param("id"))
	if !models.IsValidRecordID(id.String()) {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithMessage("Invalid record ID"))
	}

	record, err := h.recordService.DeleteRecord(userID, id)
	if err != nil {
		return h.mapRecordError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewRecordResponse(record))
}

// FilterRecords runs the record filter over the user's records
// @Summary Filter records
// @Tags Records
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.RecordFilterRequest true "Filter criteria"
// @Success 200 {array} dto.RecordResponse "Matching records, newest first"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Failure 422 {object} errors.ErrorResponse "VALIDATION_001, TAG_003 or RECORD_003"
// @Router /records/filter [post]
func (h *RecordHandler) FilterRecords(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	var req dto.RecordFilterRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithMessage("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	records, err := h.recordService.FilterRecords(userID, req.ToCriteria())
	if err != nil {
		var validationErr *apperrors.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return SendValidationError(c, validationErr)
		case errors.Is(err, query.ErrNoValidTags):
			return SendError(c, apperrors.TagNoValidTags, apperrors.WithFieldErrors(
				apperrors.NewFieldError(apperrors.GetErrorMessage(apperrors.TagNoValidTags), "tags"),
			))
		case errors.Is(err, query.ErrNoCriteria):
			return SendError(c, apperrors.RecordFilterNoCriteria)
		default:
			return h.mapRecordError(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.NewRecordListResponse(records))
}

func (h *RecordHandler) mapRecordError(c echo.Context, err error) error {
	var validationErr *apperrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return SendValidationError(c, validationErr)
	case errors.Is(err, services.ErrUserNotFound):
		return SendError(c, apperrors.UserNotFound)
	case errors.Is(err, services.ErrRecordNotFound):
		return SendError(c, apperrors.RecordNotFound)
	default:
		return SendSystemError(c, err)
	}
}
