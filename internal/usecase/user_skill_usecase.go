package usecase

import (
	"context"
	"errors"

	"job-bridge/internal/domain/skill"
	"job-bridge/internal/repository"
)

type UserSkillUsecase interface {
	// SaveMySkills replaces the caller's skill set with skillIDs.
	SaveMySkills(ctx context.Context, userID int64, skillIDs []int64) ([]skill.Skill, error)
	ListMySkills(ctx context.Context, userID int64) ([]skill.Skill, error)
	ListJobSeekerSkills(ctx context.Context, profileID int64) ([]skill.Skill, error)
}

type UserSkill struct {
	skills   repository.SkillRepository
	repo     repository.JobSeekerSkillRepository
	profiles repository.ProfileRepository
}

func NewUserSkillUsecase(skills repository.SkillRepository, repo repository.JobSeekerSkillRepository, profiles repository.ProfileRepository) *UserSkill {
	return &UserSkill{skills: skills, repo: repo, profiles: profiles}
}

func (u *UserSkill) SaveMySkills(ctx context.Context, userID int64, skillIDs []int64) ([]skill.Skill, error) {
	ids := make([]int64, 0, len(skillIDs))
	seen := make(map[int64]struct{}, len(skillIDs))
	for _, id := range skillIDs {
		if id <= 0 {
			return nil, invalid("skill ids must be positive integers")
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	seeker, err := u.profiles.FindJobSeekerByUserID(ctx, userID)
	if err != nil {
		return nil, mapProfileLookup(err)
	}

	if len(ids) > 0 {
		n, err := u.skills.CountExisting(ctx, ids)
		if err != nil {
			return nil, internalErr(err)
		}
		if n != len(ids) {
			return nil, invalid("unknown skill ids")
		}
	}

	if err := u.repo.ReplaceForJobSeeker(ctx, seeker.ID, ids); err != nil {
		return nil, internalErr(err)
	}

	items, err := u.repo.FindByJobSeekerID(ctx, seeker.ID)
	if err != nil {
		return nil, internalErr(err)
	}
	return items, nil
}

func (u *UserSkill) ListMySkills(ctx context.Context, userID int64) ([]skill.Skill, error) {
	seeker, err := u.profiles.FindJobSeekerByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return []skill.Skill{}, nil
		}
		return nil, internalErr(err)
	}
	items, err := u.repo.FindByJobSeekerID(ctx, seeker.ID)
	if err != nil {
		return nil, internalErr(err)
	}
	return items, nil
}

func (u *UserSkill) ListJobSeekerSkills(ctx context.Context, profileID int64) ([]skill.Skill, error) {
	items, err := u.repo.FindByJobSeekerID(ctx, profileID)
	if err != nil {
		return nil, internalErr(err)
	}
	return items, nil
}
