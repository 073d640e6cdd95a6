package repositories

import (
	"testing"
	"time"

	"expense-tracker/internal/database"
	"expense-tracker/internal/models"
	"expense-tracker/internal/query"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// RecordRepositoryTestSuite defines the test suite for the record repository
type RecordRepositoryTestSuite struct {
	suite.Suite
	db   *database.DB
	repo RecordRepositoryInterface
	user *models.User
	base time.Time
}

// SetupTest runs before each test
func (s *RecordRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewRecordRepository(s.db.DB)
	s.user = database.CreateTestUser(s.T(), s.db, "owner", "Food", "Rent", "Travel")
	s.base = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
}

// TestRecordRepositorySuite runs the test suite
func TestRecordRepositorySuite(t *testing.T) {
	suite.Run(t, new(RecordRepositoryTestSuite))
}

func (s *RecordRepositoryTestSuite) createRecord(offset time.Duration, amount float64, recordType, description string, tags ...string) *models.Record {
	return database.CreateTestRecord(s.T(), s.db, s.user.ID, s.base.Add(offset), amount, recordType, description, tags...)
}

func (s *RecordRepositoryTestSuite) queryIDs(predicate query.Predicate) []models.RecordID {
	records, err := s.repo.QueryRecords(s.user.ID, predicate, query.NewestFirst())
	s.Require().NoError(err)

	ids := make([]models.RecordID, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	return ids
}

func (s *RecordRepositoryTestSuite) TestCreateAndGetByID() {
	created := s.createRecord(0, 12.50, models.RecordTypeDebit, "lunch", "Food")

	found, err := s.repo.GetByID(created.ID)
	s.NoError(err)
	s.Equal(created.ID, found.ID)
	s.True(found.Amount.Equal(decimal.NewFromFloat(12.50)))
	s.Equal(models.TagList{"Food"}, found.Tags)
}

func (s *RecordRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(models.NewRecordID())
	s.ErrorIs(err, ErrRecordNotFound)
}

func (s *RecordRepositoryTestSuite) TestUpdate() {
	record := s.createRecord(0, 10, models.RecordTypeDebit, "old", "Food")

	record.Description = "new"
	record.Amount = decimal.NewFromInt(25)
	record.Tags = models.TagList{"Rent"}

	s.NoError(s.repo.Update(record))

	found, err := s.repo.GetByID(record.ID)
	s.NoError(err)
	s.Equal("new", found.Description)
	s.True(found.Amount.Equal(decimal.NewFromInt(25)))
	s.Equal(models.TagList{"Rent"}, found.Tags)
}

func (s *RecordRepositoryTestSuite) TestDelete() {
	record := s.createRecord(0, 10, models.RecordTypeDebit, "gone")

	s.NoError(s.repo.Delete(record.ID))

	_, err := s.repo.GetByID(record.ID)
	s.ErrorIs(err, ErrRecordNotFound)
}

func (s *RecordRepositoryTestSuite) TestDelete_NotFound() {
	err := s.repo.Delete(models.NewRecordID())
	s.ErrorIs(err, ErrRecordNotFound)
}

func (s *RecordRepositoryTestSuite) TestListByUserID_NewestFirst() {
	oldest := s.createRecord(0, 1, models.RecordTypeDebit, "first")
	middle := s.createRecord(time.Hour, 2, models.RecordTypeDebit, "second")
	newest := s.createRecord(2*time.Hour, 3, models.RecordTypeDebit, "third")

	records, err := s.repo.ListByUserID(s.user.ID)
	s.NoError(err)
	s.Require().Len(records, 3)
	s.Equal(newest.ID, records[0].ID)
	s.Equal(middle.ID, records[1].ID)
	s.Equal(oldest.ID, records[2].ID)
}

func (s *RecordRepositoryTestSuite) TestDeleteByUserID() {
	s.createRecord(0, 1, models.RecordTypeDebit, "a")
	s.createRecord(time.Hour, 2, models.RecordTypeCredit, "b")

	s.NoError(s.repo.DeleteByUserID(s.user.ID))

	records, err := s.repo.ListByUserID(s.user.ID)
	s.NoError(err)
	s.Empty(records)
}

func (s *RecordRepositoryTestSuite) TestQueryRecords_ScopedToOwner() {
	other := database.CreateTestUser(s.T(), s.db, "other")
	database.CreateTestRecord(s.T(), s.db, other.ID, s.base, 99, models.RecordTypeDebit, "not mine")
	mine := s.createRecord(time.Hour, 10, models.RecordTypeDebit, "mine")

	ids := s.queryIDs(query.Range{Field: query.FieldAmount, Start: decimal.NewFromInt(1)})
	s.Equal([]models.RecordID{mine.ID}, ids)
}

func (s *RecordRepositoryTestSuite) TestQueryRecords_AmountRange() {
	s.createRecord(0, 5, models.RecordTypeDebit, "small")
	mid := s.createRecord(time.Hour, 50, models.RecordTypeDebit, "mid")
	s.createRecord(2*time.Hour, 500, models.RecordTypeDebit, "large")

	ids := s.queryIDs(query.Range{
		Field: query.FieldAmount,
		Start: decimal.NewFromInt(10),
		End:   decimal.NewFromInt(100),
	})
	s.Equal([]models.RecordID{mid.ID}, ids)
}

func (s *RecordRepositoryTestSuite) TestQueryRecords_IDRange() {
	first := s.createRecord(0, 1, models.RecordTypeDebit, "first")
	second := s.createRecord(time.Hour, 2, models.RecordTypeDebit, "second")
	third := s.createRecord(2*time.Hour, 3, models.RecordTypeDebit, "third")

	ids := s.queryIDs(query.Range{Field: query.FieldID, Start: second.ID})
	s.Equal([]models.RecordID{third.ID, second.ID}, ids)

	ids = s.queryIDs(query.Range{Field: query.FieldID, End: second.ID})
	s.Equal([]models.RecordID{second.ID, first.ID}, ids)
}

func (s *RecordRepositoryTestSuite) TestQueryRecords_TypeEquals() {
	s.createRecord(0, 1, models.RecordTypeDebit, "spend")
	income := s.createRecord(time.Hour, 2, models.RecordTypeCredit, "earn")

	ids := s.queryIDs(query.Equals{Field: query.FieldType, Value: models.RecordTypeCredit})
	s.Equal([]models.RecordID{income.ID}, ids)
}

func (s *RecordRepositoryTestSuite) TestQueryRecords_HasAllTags() {
	both := s.createRecord(0, 1, models.RecordTypeDebit, "both", "Food", "Rent")
	s.createRecord(time.Hour, 2, models.RecordTypeDebit, "one", "Food")

	ids := s.queryIDs(query.HasAllTags{Tags: []string{"Food", "Rent"}})
	s.Equal([]models.RecordID{both.ID}, ids)
}

func (s *RecordRepositoryTestSuite) TestQueryRecords_HasAnyTags() {
	food := s.createRecord(0, 1, models.RecordTypeDebit, "food", "Food")
	rent := s.createRecord(time.Hour, 2, models.RecordTypeDebit, "rent", "Rent")
	s.createRecord(2*time.Hour, 3, models.RecordTypeDebit, "travel", "Travel")

	ids := s.queryIDs(query.HasAnyTags{Tags: []string{"Food", "Rent"}})
	s.Equal([]models.RecordID{rent.ID, food.ID}, ids)
}

func (s *RecordRepositoryTestSuite) TestQueryRecords_TagMatchingIsCaseInsensitive() {
	record := s.createRecord(0, 1, models.RecordTypeDebit, "tagged", "Food")

	ids := s.queryIDs(query.HasAnyTags{Tags: []string{"fOOd"}})
	s.Equal([]models.RecordID{record.ID}, ids)
}

func (s *RecordRepositoryTestSuite) TestQueryRecords_TagMatchesWholeTagOnly() {
	s.createRecord(0, 1, models.RecordTypeDebit, "partial", "Food")

	ids := s.queryIDs(query.HasAnyTags{Tags: []string{"Foo"}})
	s.Empty(ids)
}

func (s *RecordRepositoryTestSuite) TestQueryRecords_TextSearch() {
	coffee := s.createRecord(0, 1, models.RecordTypeDebit, "Morning Coffee")
	s.createRecord(time.Hour, 2, models.RecordTypeDebit, "groceries")

	ids := s.queryIDs(query.TextSearch{Fragment: "COFFEE"})
	s.Equal([]models.RecordID{coffee.ID}, ids)
}

func (s *RecordRepositoryTestSuite) TestQueryRecords_CompositeAnd() {
	match := s.createRecord(0, 50, models.RecordTypeDebit, "match", "Food")
	s.createRecord(time.Hour, 50, models.RecordTypeCredit, "wrong type", "Food")
	s.createRecord(2*time.Hour, 5, models.RecordTypeDebit, "too cheap", "Food")

	ids := s.queryIDs(query.And{Predicates: []query.Predicate{
		query.Range{Field: query.FieldAmount, Start: decimal.NewFromInt(10)},
		query.Equals{Field: query.FieldType, Value: models.RecordTypeDebit},
		query.HasAnyTags{Tags: []string{"Food"}},
	}})
	s.Equal([]models.RecordID{match.ID}, ids)
}

func (s *RecordRepositoryTestSuite) TestQueryRecords_CompositeOr() {
	cheap := s.createRecord(0, 5, models.RecordTypeDebit, "cheap")
	credit := s.createRecord(time.Hour, 50, models.RecordTypeCredit, "credit")
	s.createRecord(2*time.Hour, 50, models.RecordTypeDebit, "neither")

	ids := s.queryIDs(query.Or{Predicates: []query.Predicate{
		query.Range{Field: query.FieldAmount, End: decimal.NewFromInt(10)},
		query.Equals{Field: query.FieldType, Value: models.RecordTypeCredit},
	}})
	s.Equal([]models.RecordID{credit.ID, cheap.ID}, ids)
}

func (s *RecordRepositoryTestSuite) TestRenameTag_CascadesToRecords() {
	tagged := s.createRecord(0, 1, models.RecordTypeDebit, "tagged", "Food", "Rent")
	untouched := s.createRecord(time.Hour, 2, models.RecordTypeDebit, "untouched", "Travel")

	s.NoError(s.repo.RenameTag(s.user.ID, "food", "Groceries"))

	found, err := s.repo.GetByID(tagged.ID)
	s.NoError(err)
	s.Equal(models.TagList{"Groceries", "Rent"}, found.Tags)

	found, err = s.repo.GetByID(untouched.ID)
	s.NoError(err)
	s.Equal(models.TagList{"Travel"}, found.Tags)
}

func (s *RecordRepositoryTestSuite) TestRemoveTag_CascadesToRecords() {
	tagged := s.createRecord(0, 1, models.RecordTypeDebit, "tagged", "Food", "Rent")

	s.NoError(s.repo.RemoveTag(s.user.ID, "Food"))

	found, err := s.repo.GetByID(tagged.ID)
	s.NoError(err)
	s.Equal(models.TagList{"Rent"}, found.Tags)
}
