package handler

import (
	"job-bridge/internal/delivery/http/dto"
	"job-bridge/internal/pkg/response"
	"job-bridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CandidateHandler struct {
	uc usecase.CandidateUsecase
}

type saveCandidateRequest struct {
	JobSeekerID int64  `json:"job_seeker_id"`
	Notes       string `json:"notes"`
	MatchScore  *int   `json:"match_score"`
}

func NewCandidateHandler(uc usecase.CandidateUsecase) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

func (h *CandidateHandler) Search(c fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	sortBy := c.Query("sort_by")
	if sortBy == "" {
		sortBy = c.Query("sortBy")
	}
	items, err := h.uc.Search(c.Context(), id.ID, usecase.CandidateSearchInput{
		Search: c.Query("search"),
		SortBy: sortBy,
		JobID:  int64(parseQueryInt(c, "job_id", 0)),
	})
	if err != nil {
		return mapUsecaseError(err, fiber.StatusNotFound)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCandidates(items))
}

func (h *CandidateHandler) Save(c fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	var req saveCandidateRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	err = h.uc.Save(c.Context(), id.ID, usecase.SaveCandidateInput{
		JobSeekerID: req.JobSeekerID,
		Notes:       req.Notes,
		MatchScore:  req.MatchScore,
	})
	if err != nil {
		return mapUsecaseError(err, fiber.StatusNotFound)
	}
	return response.Success(c, fiber.StatusOK, "Candidate saved successfully", nil)
}

func (h *CandidateHandler) ListSaved(c fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	items, err := h.uc.ListSaved(c.Context(), id.ID)
	if err != nil {
		return mapUsecaseError(err, fiber.StatusNotFound)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromSavedCandidates(items))
}

func (h *CandidateHandler) Remove(c fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	seekerID, err := pathID(c, "candidateId")
	if err != nil {
		return err
	}
	if err := h.uc.Remove(c.Context(), id.ID, seekerID); err != nil {
		return mapUsecaseError(err, fiber.StatusNotFound)
	}
	return response.Success(c, fiber.StatusOK, "Candidate removed from saved list", nil)
}
