package handler

import (
	"job-bridge/internal/delivery/http/dto"
	"job-bridge/internal/pkg/response"
	"job-bridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

type applyRequest struct {
	CoverLetter string `json:"cover_letter"`
}

type applyResponse struct {
	ApplicationID int64  `json:"application_id"`
	JobPostingID  int64  `json:"job_posting_id"`
	Status        string `json:"status"`
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

// Apply treats an empty body as an application without a cover letter.
func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	postingID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req applyRequest
	if len(c.Body()) > 0 {
		if err := bindBody(c, &req); err != nil {
			return err
		}
	}

	a, err := h.uc.Apply(c.Context(), id.ID, postingID, req.CoverLetter)
	if err != nil {
		return mapUsecaseError(err, fiber.StatusBadRequest)
	}
	return response.Success(c, fiber.StatusOK, "Application submitted successfully", applyResponse{
		ApplicationID: a.ID,
		JobPostingID:  a.JobPostingID,
		Status:        string(a.Status),
	})
}

func (h *ApplicationHandler) ListForPosting(c fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	postingID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	items, err := h.uc.ListForPosting(c.Context(), id.ID, postingID)
	if err != nil {
		return mapUsecaseError(err, fiber.StatusNotFound)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromApplicants(items))
}

func (h *ApplicationHandler) ListMine(c fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	items, err := h.uc.ListMine(c.Context(), id.ID)
	if err != nil {
		return mapUsecaseError(err, fiber.StatusBadRequest)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromSubmitted(items))
}

func (h *ApplicationHandler) SetStatus(c fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	applicationID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req statusRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	a, err := h.uc.SetStatus(c.Context(), id.ID, applicationID, req.Status)
	if err != nil {
		return mapUsecaseError(err, fiber.StatusNotFound)
	}
	return response.Success(c, fiber.StatusOK, "Application status updated", dto.FromApplication(a))
}
