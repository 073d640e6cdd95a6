package services

import (
	"time"

	"expense-tracker/internal/dto"
	"expense-tracker/internal/models"

	"github.com/google/uuid"
)

// TokenServiceInterface provides JWT token generation and validation
type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ValidateRefreshToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// PasswordServiceInterface provides password hashing and verification
type PasswordServiceInterface interface {
	HashPassword(password string) (string, error)
	VerifyPassword(hash, password string) error
}

// AuthServiceInterface provides user registration and authentication
type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest) (*models.User, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(refreshToken string) (*dto.AuthResponse, error)
	Logout(refreshToken string) error
	ChangePassword(userID uuid.UUID, req *dto.ChangePasswordRequest) error
	DeleteUser(userID uuid.UUID) error
}

// TagServiceInterface manages a user's tag vocabulary
type TagServiceInterface interface {
	ListTags(userID uuid.UUID) ([]string, error)
	SearchTags(userID uuid.UUID, fragment string) ([]string, error)
	AddTags(userID uuid.UUID, raw []string) ([]string, error)
	EditTag(userID uuid.UUID, oldTag, newTag string) (string, error)
	DeleteTags(userID uuid.UUID, tagNames []string) ([]string, error)
}

// RecordServiceInterface manages a user's expense/income records
type RecordServiceInterface interface {
	CreateRecord(userID uuid.UUID, input *dto.RecordInput) (*models.Record, error)
	EditRecord(userID uuid.UUID, id models.RecordID, input *dto.RecordInput) (*models.Record, error)
	DeleteRecord(userID uuid.UUID, id models.RecordID) (*models.Record, error)
	ListRecords(userID uuid.UUID) ([]models.Record, error)
	FilterRecords(userID uuid.UUID, criteria *models.FilterCriteria) ([]models.Record, error)
}

// MetricsRecorderInterface abstracts metrics recording
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
}
