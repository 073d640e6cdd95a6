package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"expense-tracker/internal/dto"
	apperrors "expense-tracker/internal/errors"
	"expense-tracker/internal/models"
	"expense-tracker/internal/query"
	"expense-tracker/internal/repositories"
	"expense-tracker/internal/tags"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrRecordNotFound indicates the record does not exist or belongs to
// another user
var ErrRecordNotFound = errors.New(apperrors.GetErrorMessage(apperrors.RecordNotFound))

// RecordService manages expense/income records and record filtering
type RecordService struct {
	userRepo   repositories.UserRepositoryInterface
	recordRepo repositories.RecordRepositoryInterface
	planner    *query.Planner
	metrics    MetricsRecorderInterface
	logger     *slog.Logger
}

// NewRecordService creates a RecordService with its collaborators
func NewRecordService(
	userRepo repositories.UserRepositoryInterface,
	recordRepo repositories.RecordRepositoryInterface,
	planner *query.Planner,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) *RecordService {
	return &RecordService{
		userRepo:   userRepo,
		recordRepo: recordRepo,
		planner:    planner,
		metrics:    metrics,
		logger:     logger.With(slog.String("service", "records")),
	}
}

// CreateRecord validates the input, resolves tags against the user's
// vocabulary and stores a new record. Tags not present in the vocabulary
// are dropped without error
func (s *RecordService) CreateRecord(userID uuid.UUID, input *dto.RecordInput) (*models.Record, error) {
	user, err := s.getUser(userID)
	if err != nil {
		return nil, err
	}

	if fields := validateRecordInput(input, time.Now()); len(fields) > 0 {
		return nil, apperrors.NewValidationError(fields...)
	}

	record := &models.Record{
		ID:          models.NewRecordID(),
		UserID:      userID,
		Date:        input.Date,
		Amount:      decimal.NewFromFloat(input.Amount),
		Type:        input.Type,
		Tags:        resolveRecordTags(input.Tags, user.Tags),
		Description: strings.TrimSpace(input.Description),
	}

	if err := s.recordRepo.Create(record); err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	s.metrics.IncrementCounter("records_created_total", map[string]string{"type": record.Type})
	return record, nil
}

// EditRecord updates an owned record in place using the same validation
// and tag resolution as CreateRecord
func (s *RecordService) EditRecord(userID uuid.UUID, id models.RecordID, input *dto.RecordInput) (*models.Record, error) {
	user, err := s.getUser(userID)
	if err != nil {
		return nil, err
	}

	record, err := s.getOwnedRecord(userID, id)
	if err != nil {
		return nil, err
	}

	if fields := validateRecordInput(input, time.Now()); len(fields) > 0 {
		return nil, apperrors.NewValidationError(fields...)
	}

	record.Date = input.Date
	record.Amount = decimal.NewFromFloat(input.Amount)
	record.Type = input.Type
	record.Tags = resolveRecordTags(input.Tags, user.Tags)
	record.Description = strings.TrimSpace(input.Description)

	if err := s.recordRepo.Update(record); err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}
	return record, nil
}

// DeleteRecord removes an owned record and returns the deleted value
func (s *RecordService) DeleteRecord(userID uuid.UUID, id models.RecordID) (*models.Record, error) {
	record, err := s.getOwnedRecord(userID, id)
	if err != nil {
		return nil, err
	}

	if err := s.recordRepo.Delete(id); err != nil {
		return nil, fmt.Errorf("failed to delete record: %w", err)
	}
	return record, nil
}

// ListRecords returns all of the user's records, newest first
func (s *RecordService) ListRecords(userID uuid.UUID) ([]models.Record, error) {
	if _, err := s.getUser(userID); err != nil {
		return nil, err
	}
	records, err := s.recordRepo.ListByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, nil
}

// FilterRecords runs the filter engine over the user's records
func (s *RecordService) FilterRecords(userID uuid.UUID, criteria *models.FilterCriteria) ([]models.Record, error) {
	if _, err := s.getUser(userID); err != nil {
		return nil, err
	}

	start := time.Now()
	records, err := s.planner.FilterRecords(userID, criteria)
	if err != nil {
		s.metrics.IncrementCounter("record_filters_total", map[string]string{"outcome": "failure"})
		return nil, err
	}

	s.metrics.IncrementCounter("record_filters_total", map[string]string{"outcome": "success"})
	s.metrics.RecordProcessingTime("record_filter", time.Since(start))
	return records, nil
}

func (s *RecordService) getUser(userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return user, nil
}

func (s *RecordService) getOwnedRecord(userID uuid.UUID, id models.RecordID) (*models.Record, error) {
	record, err := s.recordRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to look up record: %w", err)
	}
	if record.UserID != userID {
		return nil, ErrRecordNotFound
	}
	return record, nil
}

// validateRecordInput accumulates field problems for a create/edit payload
func validateRecordInput(input *dto.RecordInput, now time.Time) []apperrors.FieldError {
	var fields []apperrors.FieldError

	if input.Date.IsZero() {
		fields = append(fields, apperrors.FieldError{
			Message: "date is required",
			Field:   "date",
		})
	} else if input.Date.After(now) {
		fields = append(fields, apperrors.FieldError{
			Message: "date must be at today or before today",
			Field:   "date",
		})
	}

	if input.Amount <= 0 {
		fields = append(fields, apperrors.FieldError{
			Message: "amount must be greater than 0",
			Field:   "amount",
		})
	}

	if !models.IsValidRecordType(input.Type) {
		fields = append(fields, apperrors.FieldError{
			Message: fmt.Sprintf("type must be %s or %s", models.RecordTypeDebit, models.RecordTypeCredit),
			Field:   "type",
		})
	}

	return fields
}

// resolveRecordTags canonicalizes the input tags and keeps only those
// present in the user's vocabulary
func resolveRecordTags(raw []string, vocabulary []string) models.TagList {
	resolved := tags.ResolveAgainstVocabulary(tags.Canonicalize(raw), vocabulary)
	return models.TagList(resolved)
}
