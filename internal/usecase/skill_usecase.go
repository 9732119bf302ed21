package usecase

import (
	"context"
	"errors"

	"job-bridge/internal/domain/skill"
	"job-bridge/internal/repository"
)

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]skill.Skill, error)
}

type Skill struct {
	repo repository.SkillRepository
}

func NewSkillUsecase(repo repository.SkillRepository) *Skill {
	return &Skill{repo: repo}
}

func (u *Skill) ListSkills(ctx context.Context) ([]skill.Skill, error) {
	items, err := u.repo.GetAllSkills(ctx)
	if err != nil {
		return nil, internalErr(err)
	}
	return items, nil
}

func mapProfileLookup(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrProfileNotFound
	}
	return internalErr(err)
}
