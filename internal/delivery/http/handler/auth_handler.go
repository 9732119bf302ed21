package handler

import (
	"errors"

	"job-bridge/internal/delivery/http/dto"
	"job-bridge/internal/delivery/http/middleware"
	"job-bridge/internal/domain/user"
	"job-bridge/internal/pkg/response"
	"job-bridge/internal/usecase"
	ucauth "job-bridge/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc usecase.AuthUsecase
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"user_type"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	UserType string `json:"user_type"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	usr, pair, err := h.uc.Register(c.Context(), ucauth.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.UserType,
	})
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "User registered", dto.AuthResponse{
		User:         dto.FromUser(usr),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	usr, pair, err := h.uc.Login(c.Context(), ucauth.LoginInput{
		Username: req.Username,
		Password: req.Password,
		Role:     req.UserType,
	})
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.AuthResponse{
		User:         dto.FromUser(usr),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// Refresh takes the refresh token as a bearer credential, falling back to a
// refresh_token body field.
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	tok, ok := middleware.BearerToken(c.Get("Authorization"))
	if !ok {
		var req refreshRequest
		if len(c.Body()) > 0 {
			if err := bindBody(c, &req); err != nil {
				return err
			}
		}
		tok = req.RefreshToken
	}

	pair, err := h.uc.Refresh(c.Context(), tok)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnauthorized):
			return middleware.NewAppError(fiber.StatusUnauthorized, response.CodeUnauthenticated, "Refresh token required", nil, err)
		case errors.Is(err, usecase.ErrRefreshTokenExpired), errors.Is(err, usecase.ErrInvalidRefreshToken):
			return middleware.NewAppError(fiber.StatusForbidden, response.CodeInvalidToken, "Invalid refresh token", nil, err)
		default:
			return middleware.Internal(err)
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

func mapAuthUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var inputErr *ucauth.InputError
	switch {
	case errors.As(err, &inputErr):
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidationFailed, inputErr.Message, nil, err)
	case errors.Is(err, ucauth.ErrAccountExists):
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeConflict, conflictMessage(err), nil, err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, response.CodeInvalidCredentials, "Invalid credentials", nil, err)
	case errors.Is(err, ucauth.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidationFailed, "Bad request", nil, err)
	default:
		return middleware.Internal(err)
	}
}

func conflictMessage(err error) string {
	var conflict *user.ConflictError
	if errors.As(err, &conflict) {
		switch conflict.Field {
		case "username":
			return "Username already exists"
		case "email":
			return "Email already exists"
		}
	}
	return "Username or email already exists"
}
