package handler

import (
	"job-bridge/internal/delivery/http/dto"
	"job-bridge/internal/delivery/http/middleware"
	"job-bridge/internal/pkg/response"
	"job-bridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PostingHandler struct {
	uc usecase.PostingUsecase
}

type statusRequest struct {
	Status string `json:"status"`
}

func NewPostingHandler(uc usecase.PostingUsecase) *PostingHandler {
	return &PostingHandler{uc: uc}
}

func postingInput(req dto.PostingRequest) usecase.PostingInput {
	return usecase.PostingInput{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Location:     req.Location,
		JobType:      req.JobType,
		SalaryRange:  req.SalaryRange,
		Status:       req.Status,
		Skills:       req.Skills,
	}
}

func (h *PostingHandler) Create(c fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	var req dto.PostingRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	p, err := h.uc.Create(c.Context(), id.ID, postingInput(req))
	if err != nil {
		return mapUsecaseError(err, fiber.StatusNotFound)
	}
	return response.Success(c, fiber.StatusCreated, "Job posting created successfully", dto.FromPosting(p))
}

func (h *PostingHandler) ListActive(c fiber.Ctx) error {
	items, err := h.uc.ListActive(c.Context())
	if err != nil {
		return middleware.Internal(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromPostings(items))
}

func (h *PostingHandler) ListMine(c fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	items, err := h.uc.ListMine(c.Context(), id.ID)
	if err != nil {
		return mapUsecaseError(err, fiber.StatusNotFound)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromPostings(items))
}

// ListAll is only mounted in development.
func (h *PostingHandler) ListAll(c fiber.Ctx) error {
	items, err := h.uc.ListAll(c.Context())
	if err != nil {
		return middleware.Internal(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromPostings(items))
}

func (h *PostingHandler) Update(c fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	postingID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.PostingRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	p, err := h.uc.Update(c.Context(), id.ID, postingID, postingInput(req))
	if err != nil {
		return mapUsecaseError(err, fiber.StatusNotFound)
	}
	return response.Success(c, fiber.StatusOK, "Job posting updated successfully", dto.FromPosting(p))
}

func (h *PostingHandler) SetStatus(c fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	postingID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req statusRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	p, err := h.uc.SetStatus(c.Context(), id.ID, postingID, req.Status)
	if err != nil {
		return mapUsecaseError(err, fiber.StatusNotFound)
	}
	return response.Success(c, fiber.StatusOK, "Job posting status updated", dto.FromPosting(p))
}

func (h *PostingHandler) Delete(c fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	postingID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), id.ID, postingID); err != nil {
		return mapUsecaseError(err, fiber.StatusNotFound)
	}
	return response.Success(c, fiber.StatusOK, "Job posting deleted successfully", nil)
}
