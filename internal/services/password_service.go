package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrPasswordTooShort indicates the password is below the minimum length
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
	// ErrPasswordTooLong indicates the password exceeds the bcrypt input limit
	ErrPasswordTooLong = errors.New("password must be at most 72 characters long")
	// ErrPasswordMismatch indicates the password does not match the stored hash
	ErrPasswordMismatch = errors.New("password does not match")
)

// PasswordService hashes and verifies passwords with bcrypt
type PasswordService struct {
	cost      int
	minLength int
}

// NewPasswordService creates a PasswordService with the given bcrypt cost
// and minimum password length
func NewPasswordService(cost, minLength int) *PasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordService{cost: cost, minLength: minLength}
}

// HashPassword validates the password length and returns its bcrypt hash
func (s *PasswordService) HashPassword(password string) (string, error) {
	if len(password) < s.minLength {
		return "", ErrPasswordTooShort
	}
	// bcrypt silently truncates inputs beyond 72 bytes
	if len(password) > 72 {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a stored hash
func (s *PasswordService) VerifyPassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return fmt.Errorf("failed to verify password: %w", err)
	}
	return nil
}
