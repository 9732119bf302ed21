package handler

import (
	"job-bridge/internal/delivery/http/dto"
	"job-bridge/internal/delivery/http/middleware"
	"job-bridge/internal/pkg/response"
	"job-bridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc usecase.UserUsecase
}

func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) List(c fiber.Ctx) error {
	users, err := h.uc.ListUsers(c.Context())
	if err != nil {
		return middleware.Internal(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromUsers(users))
}
