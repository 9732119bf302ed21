package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"job-bridge/internal/domain/application"
	"job-bridge/internal/domain/posting"
	"job-bridge/internal/repository"
)

type ApplicationUsecase interface {
	Apply(ctx context.Context, userID, postingID int64, coverLetter string) (application.Application, error)
	ListForPosting(ctx context.Context, userID, postingID int64) ([]application.Applicant, error)
	ListMine(ctx context.Context, userID int64) ([]application.Submitted, error)
	SetStatus(ctx context.Context, userID, applicationID int64, status string) (application.Application, error)
}

type Application struct {
	applications repository.ApplicationRepository
	postings     repository.PostingRepository
	profiles     repository.ProfileRepository
	cache        Cache
	notifier     Notifier
	logger       *log.Logger
}

func NewApplicationUsecase(
	applications repository.ApplicationRepository,
	postings repository.PostingRepository,
	profiles repository.ProfileRepository,
	cache Cache,
	notifier Notifier,
	logger *log.Logger,
) *Application {
	return &Application{
		applications: applications,
		postings:     postings,
		profiles:     profiles,
		cache:        cache,
		notifier:     notifierOrNoop(notifier),
		logger:       logger,
	}
}

func (u *Application) Apply(ctx context.Context, userID, postingID int64, coverLetter string) (application.Application, error) {
	p, err := u.postings.FindByID(ctx, postingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return application.Application{}, ErrNotFoundOrInactive
		}
		return application.Application{}, internalErr(err)
	}
	if p.Status != posting.StatusActive {
		return application.Application{}, ErrNotFoundOrInactive
	}

	seeker, err := u.profiles.FindJobSeekerByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return application.Application{}, ErrProfileNotFound
		}
		return application.Application{}, internalErr(err)
	}

	a, err := u.applications.Create(ctx, p.ID, seeker.ID, strings.TrimSpace(coverLetter))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return application.Application{}, ErrAlreadyApplied
		case errors.Is(err, repository.ErrNotFound):
			return application.Application{}, ErrNotFoundOrInactive
		}
		return application.Application{}, internalErr(err)
	}
	a.JobSeekerUserID = userID

	invalidateActivePostings(ctx, u.cache, u.logger)
	u.notifier.NotifyUser(p.EmployerUserID, EventApplicationCreated, map[string]any{
		"application_id": a.ID,
		"job_posting_id": p.ID,
		"job_title":      p.Title,
		"applicant_name": seeker.DisplayName(),
	})
	return a, nil
}

func (u *Application) ListForPosting(ctx context.Context, userID, postingID int64) ([]application.Applicant, error) {
	employer, err := u.profiles.FindEmployerByUserID(ctx, userID)
	if err != nil {
		return nil, mapRepoNotFound(err)
	}

	p, err := u.postings.FindByID(ctx, postingID)
	if err != nil {
		return nil, mapRepoNotFound(err)
	}
	if p.EmployerID != employer.ID {
		return nil, ErrNotFound
	}

	items, err := u.applications.ListByPosting(ctx, p.ID)
	if err != nil {
		return nil, internalErr(err)
	}
	return items, nil
}

func (u *Application) ListMine(ctx context.Context, userID int64) ([]application.Submitted, error) {
	seeker, err := u.profiles.FindJobSeekerByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, internalErr(err)
	}

	items, err := u.applications.ListByJobSeeker(ctx, seeker.ID)
	if err != nil {
		return nil, internalErr(err)
	}
	return items, nil
}

func (u *Application) SetStatus(ctx context.Context, userID, applicationID int64, status string) (application.Application, error) {
	st := application.Status(strings.TrimSpace(status))
	if !st.Valid() {
		return application.Application{}, ErrInvalidStatus
	}

	employer, err := u.profiles.FindEmployerByUserID(ctx, userID)
	if err != nil {
		return application.Application{}, mapRepoNotFound(err)
	}

	a, err := u.applications.SetStatus(ctx, employer.ID, applicationID, st)
	if err != nil {
		return application.Application{}, mapRepoNotFound(err)
	}

	u.notifier.NotifyUser(a.JobSeekerUserID, EventApplicationStatusChanged, map[string]any{
		"application_id": a.ID,
		"job_posting_id": a.JobPostingID,
		"status":         a.Status,
	})
	return a, nil
}
