package handler

import (
	"job-bridge/internal/delivery/http/dto"
	"job-bridge/internal/delivery/http/middleware"
	"job-bridge/internal/pkg/response"
	"job-bridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	skills     usecase.SkillUsecase
	userSkills usecase.UserSkillUsecase
}

type saveSkillsRequest struct {
	Skills []int64 `json:"skills"`
}

func NewSkillHandler(skills usecase.SkillUsecase, userSkills usecase.UserSkillUsecase) *SkillHandler {
	return &SkillHandler{skills: skills, userSkills: userSkills}
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	items, err := h.skills.ListSkills(c.Context())
	if err != nil {
		return middleware.Internal(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromSkills(items))
}

func (h *SkillHandler) SaveMine(c fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	var req saveSkillsRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	items, err := h.userSkills.SaveMySkills(c.Context(), id.ID, req.Skills)
	if err != nil {
		return mapUsecaseError(err, fiber.StatusNotFound)
	}
	return response.Success(c, fiber.StatusOK, "Skills saved successfully", dto.FromSkills(items))
}

func (h *SkillHandler) ListMine(c fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	items, err := h.userSkills.ListMySkills(c.Context(), id.ID)
	if err != nil {
		return mapUsecaseError(err, fiber.StatusNotFound)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromSkills(items))
}

func (h *SkillHandler) ListForJobSeeker(c fiber.Ctx) error {
	profileID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	items, err := h.userSkills.ListJobSeekerSkills(c.Context(), profileID)
	if err != nil {
		return mapUsecaseError(err, fiber.StatusNotFound)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromSkills(items))
}
