package dto

import (
	"time"

	"expense-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// RecordInput is the payload for creating or editing a record
type RecordInput struct {
	Date        time.Time `json:"date" validate:"required"`
	Amount      float64   `json:"amount" validate:"required"`
	Type        string    `json:"type" validate:"required,record_type"`
	Tags        []string  `json:"tags"`
	Description string    `json:"description"`
}

// RecordFilterRequest is the wire shape of a filter request. The field names
// are part of the external contract and must stay exactly as they are.
type RecordFilterRequest struct {
	IDStart        *string    `json:"idStart" validate:"omitempty,record_id"`
	IDEnd          *string    `json:"idEnd" validate:"omitempty,record_id"`
	DateStart      *time.Time `json:"dateStart"`
	DateEnd        *time.Time `json:"dateEnd"`
	AmountStart    *float64   `json:"amountStart"`
	AmountEnd      *float64   `json:"amountEnd"`
	Type           string     `json:"type" validate:"required,type_criteria"`
	TagsType       string     `json:"tagsType" validate:"required,filter_mode"`
	Tags           []string   `json:"tags"`
	Description    string     `json:"description"`
	FilterCriteria string     `json:"filterCriteria" validate:"required,filter_mode"`
}

// ToCriteria converts the wire request into the engine's criteria value
func (r *RecordFilterRequest) ToCriteria() *models.FilterCriteria {
	criteria := &models.FilterCriteria{
		DateStart:   r.DateStart,
		DateEnd:     r.DateEnd,
		Type:        r.Type,
		Tags:        r.Tags,
		TagsType:    r.TagsType,
		Description: r.Description,
		Mode:        r.FilterCriteria,
	}

	if r.IDStart != nil {
		id := models.RecordID(*r.IDStart)
		criteria.IDStart = &id
	}
	if r.IDEnd != nil {
		id := models.RecordID(*r.IDEnd)
		criteria.IDEnd = &id
	}
	if r.AmountStart != nil {
		amount := decimal.NewFromFloat(*r.AmountStart)
		criteria.AmountStart = &amount
	}
	if r.AmountEnd != nil {
		amount := decimal.NewFromFloat(*r.AmountEnd)
		criteria.AmountEnd = &amount
	}

	return criteria
}

// RecordResponse is the public representation of a record
type RecordResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Date        time.Time `json:"date"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	Tags        []string  `json:"tags"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewRecordResponse maps a record model to its response shape
func NewRecordResponse(record *models.Record) RecordResponse {
	amount, _ := record.Amount.Float64()
	tags := record.Tags
	if tags == nil {
		tags = models.TagList{}
	}

	return RecordResponse{
		ID:          record.ID.String(),
		UserID:      record.UserID.String(),
		Date:        record.Date,
		Amount:      amount,
		Type:        record.Type,
		Tags:        tags,
		Description: record.Description,
		CreatedAt:   record.CreatedAt,
	}
}

// NewRecordListResponse maps a list of records to response shapes
func NewRecordListResponse(records []models.Record) []RecordResponse {
	responses := make([]RecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, NewRecordResponse(&records[i]))
	}
	return responses
}
