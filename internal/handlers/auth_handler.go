package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"expense-tracker/internal/dto"
	apperrors "expense-tracker/internal/errors"
	"expense-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService services.AuthServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration details"
// @Success 201 {object} SuccessResponse{data=dto.UserResponse} "User created successfully"
// @Failure 422 {object} errors.ErrorResponse "VALIDATION_001 - Invalid input"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithMessage("Invalid request body"))
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		var validationErr *apperrors.ValidationError
		if errors.As(err, &validationErr) {
			return SendValidationError(c, validationErr)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: dto.UserResponse{
			ID:       user.ID.String(),
			Username: user.Username,
		},
		Message: "User registered successfully",
	})
}

// Login handles user authentication
// @Summary Login user
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse "Login successful with JWT tokens"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Incorrect username and password"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithMessage("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	tokens, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			slog.Warn("Failed login attempt",
				"username", req.Username,
				"client_ip", getClientIP(c),
			)
			return SendError(c, apperrors.AuthInvalidCredentials)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, tokens)
}

// Refresh handles token refresh
// @Summary Refresh access token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} dto.AuthResponse "New token pair"
// @Failure 401 {object} errors.ErrorResponse "AUTH_004 - Invalid token"
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req dto.RefreshRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithMessage("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	tokens, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrExpiredToken):
			return SendError(c, apperrors.AuthExpiredToken)
		case errors.Is(err, services.ErrInvalidToken), errors.Is(err, services.ErrUserNotFound):
			return SendError(c, apperrors.AuthInvalidTokenFormat)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, tokens)
}

// Logout invalidates the supplied refresh token
// @Summary Logout user
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RefreshRequest true "Refresh token to invalidate"
// @Success 200 {object} SuccessResponse "Logout successful"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	var req dto.RefreshRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithMessage("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	// Always report success so callers cannot probe token validity
	if err := h.authService.Logout(req.RefreshToken); err != nil {
		slog.Error("Logout failed", "error", err.Error())
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Logout successful"})
}

// ChangePassword handles password changes for the authenticated user
// @Summary Change password
// @Tags Authentication
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Password change details"
// @Success 200 {object} SuccessResponse "Password changed"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Incorrect username and password"
// @Failure 422 {object} errors.ErrorResponse "VALIDATION_001 - Invalid input"
// @Router /auth/password [put]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	var req dto.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithMessage("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.authService.ChangePassword(userID, &req); err != nil {
		var validationErr *apperrors.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return SendValidationError(c, validationErr)
		case errors.Is(err, services.ErrInvalidCredentials):
			return SendError(c, apperrors.AuthInvalidCredentials)
		case errors.Is(err, services.ErrUserNotFound):
			return SendError(c, apperrors.UserNotFound)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Password changed successfully"})
}

// DeleteAccount removes the authenticated user and all of their records
// @Summary Delete account
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse "Account deleted"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Router /auth/account [delete]
func (h *AuthHandler) DeleteAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	if err := h.authService.DeleteUser(userID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return SendError(c, apperrors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Account deleted successfully"})
}
