package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"job-bridge/internal/domain/posting"
	"job-bridge/internal/repository"
)

type PostingInput struct {
	Title        string
	Description  string
	Requirements string
	Location     string
	JobType      string
	SalaryRange  string
	Status       string
	Skills       []string
}

type PostingUsecase interface {
	Create(ctx context.Context, userID int64, in PostingInput) (posting.Posting, error)
	Update(ctx context.Context, userID, postingID int64, in PostingInput) (posting.Posting, error)
	SetStatus(ctx context.Context, userID, postingID int64, status string) (posting.Posting, error)
	Delete(ctx context.Context, userID, postingID int64) error

	ListActive(ctx context.Context) ([]posting.Posting, error)
	ListMine(ctx context.Context, userID int64) ([]posting.Posting, error)
	ListAll(ctx context.Context) ([]posting.Posting, error)
}

type Posting struct {
	postings repository.PostingRepository
	profiles repository.ProfileRepository
	cache    Cache
	logger   *log.Logger
}

func NewPostingUsecase(postings repository.PostingRepository, profiles repository.ProfileRepository, cache Cache, logger *log.Logger) *Posting {
	return &Posting{postings: postings, profiles: profiles, cache: cache, logger: logger}
}

func (u *Posting) Create(ctx context.Context, userID int64, in PostingInput) (posting.Posting, error) {
	p, err := normalizePostingInput(in)
	if err != nil {
		return posting.Posting{}, err
	}

	employer, err := u.profiles.FindEmployerByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return posting.Posting{}, ErrProfileNotFound
		}
		return posting.Posting{}, internalErr(err)
	}
	p.EmployerID = employer.ID

	created, err := u.postings.Create(ctx, p)
	if err != nil {
		return posting.Posting{}, internalErr(err)
	}
	u.invalidateActive(ctx)
	return created, nil
}

func (u *Posting) Update(ctx context.Context, userID, postingID int64, in PostingInput) (posting.Posting, error) {
	p, err := normalizePostingInput(in)
	if err != nil {
		return posting.Posting{}, err
	}

	employerID, err := u.employerID(ctx, userID)
	if err != nil {
		return posting.Posting{}, err
	}
	p.ID = postingID
	p.EmployerID = employerID

	updated, err := u.postings.Update(ctx, p)
	if err != nil {
		return posting.Posting{}, mapRepoNotFound(err)
	}
	u.invalidateActive(ctx)
	return updated, nil
}

func (u *Posting) SetStatus(ctx context.Context, userID, postingID int64, status string) (posting.Posting, error) {
	st := posting.Status(strings.TrimSpace(status))
	if !st.Toggleable() {
		return posting.Posting{}, ErrInvalidStatus
	}

	employerID, err := u.employerID(ctx, userID)
	if err != nil {
		return posting.Posting{}, err
	}

	updated, err := u.postings.SetStatus(ctx, employerID, postingID, st)
	if err != nil {
		return posting.Posting{}, mapRepoNotFound(err)
	}
	u.invalidateActive(ctx)
	return updated, nil
}

func (u *Posting) Delete(ctx context.Context, userID, postingID int64) error {
	employerID, err := u.employerID(ctx, userID)
	if err != nil {
		return err
	}
	if err := u.postings.Delete(ctx, employerID, postingID); err != nil {
		return mapRepoNotFound(err)
	}
	u.invalidateActive(ctx)
	return nil
}

func (u *Posting) ListActive(ctx context.Context) ([]posting.Posting, error) {
	if u.cache != nil {
		var cached []posting.Posting
		hit, err := u.cache.GetJSON(ctx, activePostingsCacheKey, &cached)
		if err == nil && hit {
			return cached, nil
		}
	}

	items, err := u.postings.ListActive(ctx)
	if err != nil {
		return nil, internalErr(err)
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, activePostingsCacheKey, items, 0); err != nil {
			u.logf("[Cache] set failed key=%s err=%v", activePostingsCacheKey, err)
		}
	}
	return items, nil
}

func (u *Posting) ListMine(ctx context.Context, userID int64) ([]posting.Posting, error) {
	employer, err := u.profiles.FindEmployerByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return []posting.Posting{}, nil
		}
		return nil, internalErr(err)
	}
	items, err := u.postings.ListByEmployer(ctx, employer.ID)
	if err != nil {
		return nil, internalErr(err)
	}
	return items, nil
}

func (u *Posting) ListAll(ctx context.Context) ([]posting.Posting, error) {
	items, err := u.postings.ListAll(ctx)
	if err != nil {
		return nil, internalErr(err)
	}
	return items, nil
}

// employerID resolves the caller's employer profile. Without one the caller
// owns nothing, so ownership checks report ErrNotFound.
func (u *Posting) employerID(ctx context.Context, userID int64) (int64, error) {
	employer, err := u.profiles.FindEmployerByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrNotFound
		}
		return 0, internalErr(err)
	}
	return employer.ID, nil
}

func (u *Posting) invalidateActive(ctx context.Context) {
	invalidateActivePostings(ctx, u.cache, u.logger)
}

func (u *Posting) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}

func invalidateActivePostings(ctx context.Context, cache Cache, logger *log.Logger) {
	if cache == nil {
		return
	}
	if err := cache.Delete(ctx, activePostingsCacheKey); err != nil && logger != nil {
		logger.Printf("[Cache] invalidate failed key=%s err=%v", activePostingsCacheKey, err)
	}
}

func normalizePostingInput(in PostingInput) (posting.Posting, error) {
	p := posting.Posting{
		Title:        strings.TrimSpace(in.Title),
		Description:  strings.TrimSpace(in.Description),
		Requirements: strings.TrimSpace(in.Requirements),
		Location:     strings.TrimSpace(in.Location),
		JobType:      strings.TrimSpace(in.JobType),
		SalaryRange:  strings.TrimSpace(in.SalaryRange),
		Status:       posting.Status(strings.TrimSpace(in.Status)),
		Skills:       normalizeSkills(in.Skills),
	}

	required := []struct {
		name  string
		value string
	}{
		{"title", p.Title},
		{"description", p.Description},
		{"requirements", p.Requirements},
		{"location", p.Location},
		{"job_type", p.JobType},
		{"salary_range", p.SalaryRange},
	}
	var missing []string
	for _, f := range required {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return posting.Posting{}, invalid("missing required fields: " + strings.Join(missing, ", "))
	}

	if p.Status == "" {
		p.Status = posting.StatusActive
	}
	if !p.Status.Valid() {
		return posting.Posting{}, invalid("status must be one of active, closed, draft")
	}
	return p, nil
}

// normalizeSkills trims, drops empties and removes case-insensitive
// duplicates while keeping first-seen order.
func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		k := strings.ToLower(s)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, s)
	}
	return out
}

func mapRepoNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return internalErr(err)
}
