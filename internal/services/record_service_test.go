package services

import (
	"log/slog"
	"testing"
	"time"

	"expense-tracker/internal/database"
	"expense-tracker/internal/dto"
	apperrors "expense-tracker/internal/errors"
	"expense-tracker/internal/models"
	"expense-tracker/internal/query"
	"expense-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// RecordServiceTestSuite defines the test suite for RecordService
type RecordServiceTestSuite struct {
	suite.Suite
	db         *database.DB
	userRepo   repositories.UserRepositoryInterface
	recordRepo repositories.RecordRepositoryInterface
	service    RecordServiceInterface
	user       *models.User
}

// SetupTest runs before each test
func (s *RecordServiceTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.userRepo = repositories.NewUserRepository(s.db.DB)
	s.recordRepo = repositories.NewRecordRepository(s.db.DB)

	planner := query.NewPlanner(s.userRepo, s.recordRepo)
	s.service = NewRecordService(s.userRepo, s.recordRepo, planner, NoopMetrics{}, slog.Default())
	s.user = database.CreateTestUser(s.T(), s.db, "recorder", "Food", "Rent")
}

// TestRecordServiceSuite runs the test suite
func TestRecordServiceSuite(t *testing.T) {
	suite.Run(t, new(RecordServiceTestSuite))
}

func (s *RecordServiceTestSuite) validInput() *dto.RecordInput {
	return &dto.RecordInput{
		Date:        time.Now().Add(-time.Hour),
		Amount:      42.50,
		Type:        models.RecordTypeDebit,
		Tags:        []string{"Food"},
		Description: "lunch",
	}
}

func (s *RecordServiceTestSuite) TestCreateRecord_Success() {
	record, err := s.service.CreateRecord(s.user.ID, s.validInput())

	s.NoError(err)
	s.True(models.IsValidRecordID(record.ID.String()))
	s.True(record.Amount.Equal(decimal.NewFromFloat(42.50)))
	s.Equal(models.TagList{"Food"}, record.Tags)
	s.Equal("lunch", record.Description)
}

func (s *RecordServiceTestSuite) TestCreateRecord_SilentlyDropsUnknownTags() {
	input := s.validInput()
	input.Tags = []string{"Food", "Unknown", "xx"}

	record, err := s.service.CreateRecord(s.user.ID, input)

	s.NoError(err)
	s.Equal(models.TagList{"Food"}, record.Tags)
}

func (s *RecordServiceTestSuite) TestCreateRecord_ResolvesVocabularyCasing() {
	input := s.validInput()
	input.Tags = []string{"FOOD"}

	record, err := s.service.CreateRecord(s.user.ID, input)

	s.NoError(err)
	s.Equal(models.TagList{"Food"}, record.Tags)
}

func (s *RecordServiceTestSuite) TestCreateRecord_TrimsDescription() {
	input := s.validInput()
	input.Description = "  padded  "

	record, err := s.service.CreateRecord(s.user.ID, input)

	s.NoError(err)
	s.Equal("padded", record.Description)
}

func (s *RecordServiceTestSuite) TestCreateRecord_AccumulatesFieldErrors() {
	input := &dto.RecordInput{
		Date:   time.Now().Add(24 * time.Hour),
		Amount: -5,
		Type:   "TRANSFER",
	}

	_, err := s.service.CreateRecord(s.user.ID, input)

	var validationErr *apperrors.ValidationError
	s.ErrorAs(err, &validationErr)
	s.Len(validationErr.Fields, 3)
	s.Equal("date", validationErr.Fields[0].Field)
	s.Equal("date must be at today or before today", validationErr.Fields[0].Message)
	s.Equal("amount", validationErr.Fields[1].Field)
	s.Equal("amount must be greater than 0", validationErr.Fields[1].Message)
	s.Equal("type", validationErr.Fields[2].Field)
}

func (s *RecordServiceTestSuite) TestCreateRecord_UnknownUser() {
	_, err := s.service.CreateRecord(uuid.New(), s.validInput())
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *RecordServiceTestSuite) TestEditRecord() {
	record, err := s.service.CreateRecord(s.user.ID, s.validInput())
	s.Require().NoError(err)

	input := s.validInput()
	input.Amount = 99.99
	input.Type = models.RecordTypeCredit
	input.Tags = []string{"Rent"}
	input.Description = "updated"

	updated, err := s.service.EditRecord(s.user.ID, record.ID, input)

	s.NoError(err)
	s.Equal(record.ID, updated.ID)
	s.True(updated.Amount.Equal(decimal.NewFromFloat(99.99)))
	s.Equal(models.RecordTypeCredit, updated.Type)
	s.Equal(models.TagList{"Rent"}, updated.Tags)
	s.Equal("updated", updated.Description)
}

func (s *RecordServiceTestSuite) TestEditRecord_OwnershipEnforced() {
	record, err := s.service.CreateRecord(s.user.ID, s.validInput())
	s.Require().NoError(err)

	other := database.CreateTestUser(s.T(), s.db, "intruder")

	_, err = s.service.EditRecord(other.ID, record.ID, s.validInput())
	s.ErrorIs(err, ErrRecordNotFound)
}

func (s *RecordServiceTestSuite) TestDeleteRecord_ReturnsDeletedValue() {
	record, err := s.service.CreateRecord(s.user.ID, s.validInput())
	s.Require().NoError(err)

	deleted, err := s.service.DeleteRecord(s.user.ID, record.ID)

	s.NoError(err)
	s.Equal(record.ID, deleted.ID)

	_, err = s.service.DeleteRecord(s.user.ID, record.ID)
	s.ErrorIs(err, ErrRecordNotFound)
}

func (s *RecordServiceTestSuite) TestListRecords_NewestFirst() {
	base := time.Now().Add(-3 * time.Hour)
	oldest := database.CreateTestRecord(s.T(), s.db, s.user.ID, base, 1, models.RecordTypeDebit, "a")
	newest := database.CreateTestRecord(s.T(), s.db, s.user.ID, base.Add(time.Hour), 2, models.RecordTypeDebit, "b")

	records, err := s.service.ListRecords(s.user.ID)

	s.NoError(err)
	s.Require().Len(records, 2)
	s.Equal(newest.ID, records[0].ID)
	s.Equal(oldest.ID, records[1].ID)
}

func (s *RecordServiceTestSuite) TestFilterRecords_EndToEnd() {
	base := time.Now().Add(-48 * time.Hour)
	cheap := database.CreateTestRecord(s.T(), s.db, s.user.ID, base, 5, models.RecordTypeDebit, "coffee", "Food")
	database.CreateTestRecord(s.T(), s.db, s.user.ID, base.Add(time.Hour), 500, models.RecordTypeDebit, "rent payment", "Rent")
	mid := database.CreateTestRecord(s.T(), s.db, s.user.ID, base.Add(2*time.Hour), 20, models.RecordTypeDebit, "groceries", "Food")

	amountEnd := decimal.NewFromInt(100)
	records, err := s.service.FilterRecords(s.user.ID, &models.FilterCriteria{
		AmountEnd: &amountEnd,
		Type:      models.TypeCriteriaAny,
		Tags:      []string{"food"},
		TagsType:  models.FilterModeAll,
		Mode:      models.FilterModeAll,
	})

	s.NoError(err)
	s.Require().Len(records, 2)
	s.Equal(mid.ID, records[0].ID)
	s.Equal(cheap.ID, records[1].ID)
}

func (s *RecordServiceTestSuite) TestFilterRecords_AnyModeUnionsDescriptionMatches() {
	base := time.Now().Add(-48 * time.Hour)
	expensive := database.CreateTestRecord(s.T(), s.db, s.user.ID, base, 500, models.RecordTypeDebit, "rent payment")
	coffee := database.CreateTestRecord(s.T(), s.db, s.user.ID, base.Add(time.Hour), 5, models.RecordTypeDebit, "morning coffee")

	amountStart := decimal.NewFromInt(100)
	records, err := s.service.FilterRecords(s.user.ID, &models.FilterCriteria{
		AmountStart: &amountStart,
		Type:        models.TypeCriteriaAny,
		TagsType:    models.FilterModeAll,
		Description: "coffee",
		Mode:        models.FilterModeAny,
	})

	s.NoError(err)
	s.Require().Len(records, 2)
	s.Equal(expensive.ID, records[0].ID)
	s.Equal(coffee.ID, records[1].ID)
}

func (s *RecordServiceTestSuite) TestFilterRecords_NoCriteria() {
	_, err := s.service.FilterRecords(s.user.ID, &models.FilterCriteria{
		Type:     models.TypeCriteriaAny,
		TagsType: models.FilterModeAll,
		Mode:     models.FilterModeAll,
	})

	s.ErrorIs(err, query.ErrNoCriteria)
}

func (s *RecordServiceTestSuite) TestFilterRecords_NoValidTags() {
	_, err := s.service.FilterRecords(s.user.ID, &models.FilterCriteria{
		Tags:     []string{"unknown"},
		Type:     models.TypeCriteriaAny,
		TagsType: models.FilterModeAll,
		Mode:     models.FilterModeAll,
	})

	s.ErrorIs(err, query.ErrNoValidTags)
}

func (s *RecordServiceTestSuite) TestFilterRecords_UnknownUser() {
	_, err := s.service.FilterRecords(uuid.New(), &models.FilterCriteria{
		Description: "anything",
		Mode:        models.FilterModeAll,
	})

	s.ErrorIs(err, ErrUserNotFound)
}
