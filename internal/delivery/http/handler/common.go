package handler

import (
	"errors"
	"strconv"
	"strings"

	"job-bridge/internal/delivery/http/middleware"
	"job-bridge/internal/domain/user"
	"job-bridge/internal/pkg/response"
	"job-bridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func identity(c fiber.Ctx) (user.Identity, error) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return user.Identity{}, middleware.NewAppError(fiber.StatusUnauthorized, response.CodeUnauthenticated, "Access token required", nil, nil)
	}
	return id, nil
}

// pathID reads a positive integer path parameter.
func pathID(c fiber.Ctx, name string) (int64, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidationFailed, name+" must be a positive integer", nil, err)
	}
	return id, nil
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) int {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

func bindBody(c fiber.Ctx, out any) error {
	if err := c.Bind().Body(out); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidationFailed, "Invalid request body", nil, err)
	}
	return nil
}

// mapUsecaseError translates the shared usecase sentinels. profileStatus is
// the status a missing profile maps to, which differs per operation.
func mapUsecaseError(err error, profileStatus int) error {
	if err == nil {
		return nil
	}

	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidationFailed, verr.Message, nil, err)
	case errors.Is(err, usecase.ErrValidation):
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeValidationFailed, "Validation failed", nil, err)
	case errors.Is(err, usecase.ErrNotFoundOrInactive):
		return middleware.NewAppError(fiber.StatusNotFound, response.CodeNotFoundOrInactive, "Job posting not found or not active", nil, err)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(profileStatus, response.CodeProfileNotFound, "Profile not found. Please complete your profile first.", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, response.CodeNotFound, "Not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeInvalidStatus, "Invalid status", nil, err)
	case errors.Is(err, usecase.ErrAlreadyApplied):
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeAlreadyApplied, "You have already applied to this job", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, response.CodeUnauthenticated, "Unauthorized", nil, err)
	default:
		return middleware.Internal(err)
	}
}
