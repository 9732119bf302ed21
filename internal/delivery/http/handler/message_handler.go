package handler

import (
	"job-bridge/internal/delivery/http/dto"
	"job-bridge/internal/pkg/response"
	"job-bridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MessageHandler struct {
	uc usecase.MessageUsecase
}

func NewMessageHandler(uc usecase.MessageUsecase) *MessageHandler {
	return &MessageHandler{uc: uc}
}

func (h *MessageHandler) Send(c fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	var req dto.MessageRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	m, err := h.uc.Send(c.Context(), id, usecase.SendMessageInput{
		ReceiverID: req.ReceiverID,
		Subject:    req.Subject,
		Body:       req.Message,
	})
	if err != nil {
		return mapUsecaseError(err, fiber.StatusNotFound)
	}
	return response.Success(c, fiber.StatusOK, "Message sent successfully", fiber.Map{"id": m.ID})
}

func (h *MessageHandler) Inbox(c fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	items, err := h.uc.Inbox(c.Context(), id.ID)
	if err != nil {
		return mapUsecaseError(err, fiber.StatusNotFound)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromConversations(items))
}

func (h *MessageHandler) Conversation(c fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	partnerID, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	items, err := h.uc.Conversation(c.Context(), id.ID, partnerID)
	if err != nil {
		return mapUsecaseError(err, fiber.StatusNotFound)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromMessages(items))
}
