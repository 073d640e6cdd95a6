package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"expense-tracker/internal/dto"
	apperrors "expense-tracker/internal/errors"
	"expense-tracker/internal/models"
	"expense-tracker/internal/repositories"

	"github.com/google/uuid"
)

var (
	// ErrInvalidCredentials indicates a failed username/password check
	ErrInvalidCredentials = errors.New(apperrors.GetErrorMessage(apperrors.AuthInvalidCredentials))
	// ErrUserNotFound indicates the user does not exist
	ErrUserNotFound = errors.New(apperrors.GetErrorMessage(apperrors.UserNotFound))
)

// AuthService implements user registration, authentication and account management
type AuthService struct {
	userRepo        repositories.UserRepositoryInterface
	recordRepo      repositories.RecordRepositoryInterface
	blacklistRepo   repositories.BlacklistedTokenRepositoryInterface
	tokenService    TokenServiceInterface
	passwordService PasswordServiceInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewAuthService creates an AuthService with its collaborators
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	recordRepo repositories.RecordRepositoryInterface,
	blacklistRepo repositories.BlacklistedTokenRepositoryInterface,
	tokenService TokenServiceInterface,
	passwordService PasswordServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:        userRepo,
		recordRepo:      recordRepo,
		blacklistRepo:   blacklistRepo,
		tokenService:    tokenService,
		passwordService: passwordService,
		metrics:         metrics,
		logger:          logger.With(slog.String("service", "auth")),
	}
}

// Register creates a new user account. Field problems are accumulated and
// returned together as a validation error
func (s *AuthService) Register(req *dto.RegisterRequest) (*models.User, error) {
	var fields []apperrors.FieldError

	if len(req.Username) < models.MinUsernameLength || len(req.Username) > models.MaxUsernameLength {
		fields = append(fields, apperrors.FieldError{
			Message: fmt.Sprintf("username must be between %d and %d characters",
				models.MinUsernameLength, models.MaxUsernameLength),
			Field: "username",
		})
	}
	if len(req.Password) < 8 {
		fields = append(fields, apperrors.FieldError{
			Message: "password must be at least 8 characters long",
			Field:   "password",
		})
	}
	if req.Password != req.ConfirmPassword {
		fields = append(fields, apperrors.FieldError{
			Message: "passwords do not match",
			Field:   "confirmPassword",
		})
	}

	if len(fields) == 0 {
		existing, err := s.userRepo.GetByUsername(req.Username)
		if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to check username availability: %w", err)
		}
		if existing != nil {
			fields = append(fields, apperrors.FieldError{
				Message: apperrors.GetErrorMessage(apperrors.UserAlreadyExists),
				Field:   "username",
			})
		}
	}

	if len(fields) > 0 {
		return nil, apperrors.NewValidationError(fields...)
	}

	hash, err := s.passwordService.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: hash,
		Tags:         models.TagList{},
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.metrics.IncrementCounter("auth_registrations_total", nil)
	s.logger.Info("user registered", slog.String("user_id", user.ID.String()))
	return user, nil
}

// Login authenticates a user and issues access and refresh tokens
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.metrics.IncrementCounter("auth_logins_total", map[string]string{"outcome": "failure"})
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.passwordService.VerifyPassword(user.PasswordHash, req.Password); err != nil {
		if errors.Is(err, ErrPasswordMismatch) {
			s.metrics.IncrementCounter("auth_logins_total", map[string]string{"outcome": "failure"})
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	resp, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("auth_logins_total", map[string]string{"outcome": "success"})
	return resp, nil
}

// Refresh exchanges a valid refresh token for a new token pair. Tokens
// invalidated by logout are rejected
func (s *AuthService) Refresh(refreshToken string) (*dto.AuthResponse, error) {
	claims, err := s.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	if _, err := s.blacklistRepo.GetByJTI(claims.ID); err == nil {
		return nil, ErrInvalidToken
	} else if !errors.Is(err, repositories.ErrTokenNotFound) {
		return nil, fmt.Errorf("failed to check token blacklist: %w", err)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	return s.issueTokens(user)
}

// Logout invalidates a refresh token so it can no longer be exchanged.
// Tokens that are already invalid or expired are treated as logged out
func (s *AuthService) Logout(refreshToken string) error {
	claims, err := s.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil
	}

	userID, _ := uuid.Parse(claims.UserID)

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	} else {
		expiresAt = time.Now().Add(24 * time.Hour)
	}

	entry := &models.BlacklistedToken{
		JTI:       claims.ID,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}
	if err := s.blacklistRepo.Create(entry); err != nil {
		// A duplicate JTI means the token is already logged out
		s.logger.Warn("failed to blacklist refresh token",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return nil
	}

	s.logger.Info("user logged out", slog.String("user_id", userID.String()))
	return nil
}

// ChangePassword verifies the current password and stores a new hash
func (s *AuthService) ChangePassword(userID uuid.UUID, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.passwordService.VerifyPassword(user.PasswordHash, req.OldPassword); err != nil {
		if errors.Is(err, ErrPasswordMismatch) {
			return ErrInvalidCredentials
		}
		return err
	}

	hash, err := s.passwordService.HashPassword(req.NewPassword)
	if err != nil {
		if errors.Is(err, ErrPasswordTooShort) || errors.Is(err, ErrPasswordTooLong) {
			return apperrors.NewValidationError(apperrors.FieldError{
				Message: err.Error(),
				Field:   "newPassword",
			})
		}
		return err
	}

	if err := s.userRepo.UpdatePasswordHash(userID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.logger.Info("password changed", slog.String("user_id", userID.String()))
	return nil
}

// DeleteUser removes a user account along with all of its records
func (s *AuthService) DeleteUser(userID uuid.UUID) error {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.recordRepo.DeleteByUserID(userID); err != nil {
		return fmt.Errorf("failed to delete user records: %w", err)
	}
	if err := s.userRepo.Delete(userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("user deleted", slog.String("user_id", userID.String()))
	return nil
}

func (s *AuthService) issueTokens(user *models.User) (*dto.AuthResponse, error) {
	accessToken, expiresAt, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, _, err := s.tokenService.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &dto.AuthResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	}, nil
}
