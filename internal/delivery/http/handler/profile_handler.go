package handler

import (
	"job-bridge/internal/delivery/http/dto"
	"job-bridge/internal/delivery/http/middleware"
	"job-bridge/internal/pkg/response"
	"job-bridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) SaveJobSeeker(c fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	var req dto.JobSeekerProfileRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	p, err := h.uc.SaveJobSeeker(c.Context(), id.ID, usecase.JobSeekerProfileInput{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		AboutMe:          req.AboutMe,
		SpecialNeeds:     req.SpecialNeeds,
		DisabilityType:   req.DisabilityType,
		CustomDisability: req.CustomDisability,
	})
	if err != nil {
		return mapUsecaseError(err, fiber.StatusNotFound)
	}
	return response.Success(c, fiber.StatusOK, "Profile saved", dto.FromJobSeekerProfile(p))
}

// GetMyJobSeeker answers an empty object until the profile is first saved.
func (h *ProfileHandler) GetMyJobSeeker(c fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	p, ok, err := h.uc.GetMyJobSeeker(c.Context(), id.ID)
	if err != nil {
		return middleware.Internal(err)
	}
	if !ok {
		return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobSeekerProfile(p))
}

func (h *ProfileHandler) GetJobSeeker(c fiber.Ctx) error {
	profileID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	p, err := h.uc.GetJobSeeker(c.Context(), profileID)
	if err != nil {
		return mapUsecaseError(err, fiber.StatusNotFound)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobSeekerProfile(p))
}

func (h *ProfileHandler) SaveEmployer(c fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	var req dto.EmployerProfileRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	p, err := h.uc.SaveEmployer(c.Context(), id.ID, usecase.EmployerProfileInput{
		CompanyName:        req.CompanyName,
		CompanyDescription: req.CompanyDescription,
		ContactPerson:      req.ContactPerson,
		Phone:              req.Phone,
		Website:            req.Website,
	})
	if err != nil {
		return mapUsecaseError(err, fiber.StatusNotFound)
	}
	return response.Success(c, fiber.StatusOK, "Profile saved", dto.FromEmployerProfile(p))
}

func (h *ProfileHandler) GetMyEmployer(c fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	p, ok, err := h.uc.GetMyEmployer(c.Context(), id.ID)
	if err != nil {
		return middleware.Internal(err)
	}
	if !ok {
		return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromEmployerProfile(p))
}
