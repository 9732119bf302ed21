package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"job-bridge/internal/domain/profile"
	"job-bridge/internal/repository"
)

type JobSeekerProfileInput struct {
	FirstName        string
	LastName         string
	AboutMe          string
	SpecialNeeds     string
	DisabilityType   string
	CustomDisability string
}

type EmployerProfileInput struct {
	CompanyName        string
	CompanyDescription string
	ContactPerson      string
	Phone              string
	Website            string
}

type ProfileUsecase interface {
	SaveJobSeeker(ctx context.Context, userID int64, in JobSeekerProfileInput) (profile.JobSeekerProfile, error)
	// GetMyJobSeeker reports false when the caller has not saved a profile yet.
	GetMyJobSeeker(ctx context.Context, userID int64) (profile.JobSeekerProfile, bool, error)
	GetJobSeeker(ctx context.Context, profileID int64) (profile.JobSeekerProfile, error)

	SaveEmployer(ctx context.Context, userID int64, in EmployerProfileInput) (profile.EmployerProfile, error)
	GetMyEmployer(ctx context.Context, userID int64) (profile.EmployerProfile, bool, error)
}

type Profile struct {
	profiles repository.ProfileRepository
	cache    Cache
	logger   *log.Logger
}

func NewProfileUsecase(profiles repository.ProfileRepository, cache Cache, logger *log.Logger) *Profile {
	return &Profile{profiles: profiles, cache: cache, logger: logger}
}

func (u *Profile) SaveJobSeeker(ctx context.Context, userID int64, in JobSeekerProfileInput) (profile.JobSeekerProfile, error) {
	p, err := u.profiles.UpsertJobSeeker(ctx, profile.JobSeekerProfile{
		UserID:           userID,
		FirstName:        strings.TrimSpace(in.FirstName),
		LastName:         strings.TrimSpace(in.LastName),
		AboutMe:          strings.TrimSpace(in.AboutMe),
		SpecialNeeds:     strings.TrimSpace(in.SpecialNeeds),
		DisabilityType:   strings.TrimSpace(in.DisabilityType),
		CustomDisability: strings.TrimSpace(in.CustomDisability),
	})
	if err != nil {
		return profile.JobSeekerProfile{}, internalErr(err)
	}
	return p, nil
}

func (u *Profile) GetMyJobSeeker(ctx context.Context, userID int64) (profile.JobSeekerProfile, bool, error) {
	p, err := u.profiles.FindJobSeekerByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return profile.JobSeekerProfile{}, false, nil
		}
		return profile.JobSeekerProfile{}, false, internalErr(err)
	}
	return p, true, nil
}

func (u *Profile) GetJobSeeker(ctx context.Context, profileID int64) (profile.JobSeekerProfile, error) {
	p, err := u.profiles.FindJobSeekerByID(ctx, profileID)
	if err != nil {
		return profile.JobSeekerProfile{}, mapRepoNotFound(err)
	}
	return p, nil
}

func (u *Profile) SaveEmployer(ctx context.Context, userID int64, in EmployerProfileInput) (profile.EmployerProfile, error) {
	company := strings.TrimSpace(in.CompanyName)
	if company == "" {
		return profile.EmployerProfile{}, invalid("company_name is required")
	}

	p, err := u.profiles.UpsertEmployer(ctx, profile.EmployerProfile{
		UserID:             userID,
		CompanyName:        company,
		CompanyDescription: strings.TrimSpace(in.CompanyDescription),
		ContactPerson:      strings.TrimSpace(in.ContactPerson),
		Phone:              strings.TrimSpace(in.Phone),
		Website:            strings.TrimSpace(in.Website),
	})
	if err != nil {
		return profile.EmployerProfile{}, internalErr(err)
	}
	// Active listings carry the company fields.
	invalidateActivePostings(ctx, u.cache, u.logger)
	return p, nil
}

func (u *Profile) GetMyEmployer(ctx context.Context, userID int64) (profile.EmployerProfile, bool, error) {
	p, err := u.profiles.FindEmployerByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return profile.EmployerProfile{}, false, nil
		}
		return profile.EmployerProfile{}, false, internalErr(err)
	}
	return p, true, nil
}
