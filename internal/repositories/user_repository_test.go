package repositories

import (
	"testing"

	"expense-tracker/internal/database"
	"expense-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// UserRepositoryTestSuite defines the test suite for the user repository
type UserRepositoryTestSuite struct {
	suite.Suite
	db   *database.DB
	repo UserRepositoryInterface
}

// SetupTest runs before each test
func (s *UserRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewUserRepository(s.db.DB)
}

// TestUserRepositorySuite runs the test suite
func TestUserRepositorySuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}

func (s *UserRepositoryTestSuite) TestCreateAndGetByID() {
	user := &models.User{
		Username:     "testuser",
		PasswordHash: "hash",
		Tags:         models.TagList{"food"},
	}

	err := s.repo.Create(user)
	s.NoError(err)
	s.NotEqual(uuid.Nil, user.ID)

	found, err := s.repo.GetByID(user.ID)
	s.NoError(err)
	s.Equal("testuser", found.Username)
	s.Equal(models.TagList{"food"}, found.Tags)
}

func (s *UserRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UserRepositoryTestSuite) TestGetByUsername() {
	database.CreateTestUser(s.T(), s.db, "lookup")

	found, err := s.repo.GetByUsername("lookup")
	s.NoError(err)
	s.Equal("lookup", found.Username)

	_, err = s.repo.GetByUsername("missing")
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UserRepositoryTestSuite) TestUpdateTags() {
	user := database.CreateTestUser(s.T(), s.db, "tagger", "food")

	err := s.repo.UpdateTags(user.ID, models.TagList{"food", "rent"})
	s.NoError(err)

	found, err := s.repo.GetByID(user.ID)
	s.NoError(err)
	s.Equal(models.TagList{"food", "rent"}, found.Tags)
}

func (s *UserRepositoryTestSuite) TestUpdateTags_NotFound() {
	err := s.repo.UpdateTags(uuid.New(), models.TagList{"food"})
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UserRepositoryTestSuite) TestUpdatePasswordHash() {
	user := database.CreateTestUser(s.T(), s.db, "rotator")

	err := s.repo.UpdatePasswordHash(user.ID, "new_hash")
	s.NoError(err)

	found, err := s.repo.GetByID(user.ID)
	s.NoError(err)
	s.Equal("new_hash", found.PasswordHash)
}

func (s *UserRepositoryTestSuite) TestDelete_HidesUser() {
	user := database.CreateTestUser(s.T(), s.db, "leaver")

	err := s.repo.Delete(user.ID)
	s.NoError(err)

	_, err = s.repo.GetByID(user.ID)
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UserRepositoryTestSuite) TestDelete_NotFound() {
	err := s.repo.Delete(uuid.New())
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UserRepositoryTestSuite) TestLoadVocabulary() {
	user := database.CreateTestUser(s.T(), s.db, "vocab", "Food", "Rent")

	tags, err := s.repo.LoadVocabulary(user.ID)
	s.NoError(err)
	s.Equal([]string{"Food", "Rent"}, tags)
}

func (s *UserRepositoryTestSuite) TestLoadVocabulary_UnknownUser() {
	_, err := s.repo.LoadVocabulary(uuid.New())
	s.ErrorIs(err, ErrUserNotFound)
}
