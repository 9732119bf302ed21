package handler

import (
	"job-bridge/internal/delivery/http/dto"
	"job-bridge/internal/pkg/response"
	"job-bridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobRecommendationHandler struct {
	uc usecase.JobRecommendationUsecase
}

func NewJobRecommendationHandler(uc usecase.JobRecommendationUsecase) *JobRecommendationHandler {
	return &JobRecommendationHandler{uc: uc}
}

func (h *JobRecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return err
	}

	items, err := h.uc.Recommend(c.Context(), id.ID, parseQueryInt(c, "limit", 0))
	if err != nil {
		return mapUsecaseError(err, fiber.StatusNotFound)
	}

	out := make([]dto.RecommendationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.RecommendationResponse{
			PostingResponse: dto.FromPosting(it.Posting),
			MatchScore:      it.MatchScore,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
