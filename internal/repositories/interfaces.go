package repositories

import (
	"expense-tracker/internal/models"
	"expense-tracker/internal/query"

	"github.com/google/uuid"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	UpdateTags(userID uuid.UUID, tags models.TagList) error
	UpdatePasswordHash(userID uuid.UUID, passwordHash string) error
	Delete(userID uuid.UUID) error

	// LoadVocabulary returns the user's current tag vocabulary; it satisfies
	// the filter planner's vocabulary collaborator
	LoadVocabulary(ownerID uuid.UUID) ([]string, error)
}

// RecordRepositoryInterface defines the contract for record repository operations
type RecordRepositoryInterface interface {
	Create(record *models.Record) error
	GetByID(id models.RecordID) (*models.Record, error)
	Update(record *models.Record) error
	Delete(id models.RecordID) error
	ListByUserID(userID uuid.UUID) ([]models.Record, error)
	DeleteByUserID(userID uuid.UUID) error

	// QueryRecords lowers an abstract predicate tree onto the store and
	// executes it; it satisfies the filter planner's store collaborator
	QueryRecords(ownerID uuid.UUID, predicate query.Predicate, sort query.Sort) ([]models.Record, error)

	// Tag vocabulary cascades
	RenameTag(userID uuid.UUID, oldTag, newTag string) error
	RemoveTag(userID uuid.UUID, tag string) error
}

// BlacklistedTokenRepositoryInterface defines the contract for the refresh
// token blacklist used by logout
type BlacklistedTokenRepositoryInterface interface {
	Create(token *models.BlacklistedToken) error
	GetByJTI(jti string) (*models.BlacklistedToken, error)
	DeleteExpired() (int64, error)
}
