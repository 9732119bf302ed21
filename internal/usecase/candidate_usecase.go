package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"job-bridge/internal/domain/candidate"
	"job-bridge/internal/domain/matching"
	"job-bridge/internal/domain/posting"
	"job-bridge/internal/repository"
	"job-bridge/internal/search"
)

type CandidateSearchInput struct {
	Search string
	SortBy string
	// JobID scores candidates against one of the caller's postings. Zero,
	// or a posting the caller does not own, scores without a job.
	JobID int64
}

type SaveCandidateInput struct {
	JobSeekerID int64
	Notes       string
	// MatchScore is computed when nil.
	MatchScore *int
}

type CandidateUsecase interface {
	Search(ctx context.Context, userID int64, in CandidateSearchInput) ([]candidate.Candidate, error)
	Save(ctx context.Context, userID int64, in SaveCandidateInput) error
	ListSaved(ctx context.Context, userID int64) ([]candidate.Saved, error)
	Remove(ctx context.Context, userID, jobSeekerID int64) error
}

type Candidate struct {
	candidates repository.CandidateRepository
	profiles   repository.ProfileRepository
	postings   repository.PostingRepository
	skills     repository.JobSeekerSkillRepository
	scorer     matching.Scorer
}

func NewCandidateUsecase(
	candidates repository.CandidateRepository,
	profiles repository.ProfileRepository,
	postings repository.PostingRepository,
	skills repository.JobSeekerSkillRepository,
	scorer matching.Scorer,
) *Candidate {
	return &Candidate{
		candidates: candidates,
		profiles:   profiles,
		postings:   postings,
		skills:     skills,
		scorer:     scorer,
	}
}

func (u *Candidate) Search(ctx context.Context, userID int64, in CandidateSearchInput) ([]candidate.Candidate, error) {
	var employerID int64
	employer, err := u.profiles.FindEmployerByUserID(ctx, userID)
	switch {
	case err == nil:
		employerID = employer.ID
	case !errors.Is(err, repository.ErrNotFound):
		return nil, internalErr(err)
	}

	filter := candidate.Filter{
		Terms:  search.ProcessQuery(in.Search).Variants,
		SortBy: candidate.ParseSortBy(strings.TrimSpace(in.SortBy)),
	}
	items, err := u.candidates.Search(ctx, employerID, filter)
	if err != nil {
		return nil, internalErr(err)
	}

	job, err := u.jobFor(ctx, employerID, in.JobID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].MatchScore = u.scorer.Score(matching.Candidate{
			JobSeekerID: items[i].Profile.ID,
			Skills:      items[i].Skills,
			AboutMe:     items[i].Profile.AboutMe,
		}, job)
	}

	if filter.SortBy == candidate.SortByMatchScore {
		sort.SliceStable(items, func(i, j int) bool { return items[i].MatchScore > items[j].MatchScore })
	}
	return items, nil
}

func (u *Candidate) jobFor(ctx context.Context, employerID, jobID int64) (matching.Job, error) {
	if jobID <= 0 || employerID == 0 {
		return matching.Job{}, nil
	}
	p, err := u.postings.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return matching.Job{}, nil
		}
		return matching.Job{}, internalErr(err)
	}
	if p.EmployerID != employerID {
		return matching.Job{}, nil
	}
	return jobFromPosting(p), nil
}

func (u *Candidate) Save(ctx context.Context, userID int64, in SaveCandidateInput) error {
	if in.JobSeekerID <= 0 {
		return invalid("job_seeker_id is required")
	}
	if in.MatchScore != nil && (*in.MatchScore < 0 || *in.MatchScore > 100) {
		return invalid("match_score must be between 0 and 100")
	}

	employer, err := u.profiles.FindEmployerByUserID(ctx, userID)
	if err != nil {
		return mapProfileLookup(err)
	}

	seeker, err := u.profiles.FindJobSeekerByID(ctx, in.JobSeekerID)
	if err != nil {
		return mapRepoNotFound(err)
	}

	score := 0
	if in.MatchScore != nil {
		score = *in.MatchScore
	} else {
		skills, err := u.skills.FindByJobSeekerID(ctx, seeker.ID)
		if err != nil {
			return internalErr(err)
		}
		names := make([]string, 0, len(skills))
		for _, s := range skills {
			names = append(names, s.Name)
		}
		score = u.scorer.Score(matching.Candidate{JobSeekerID: seeker.ID, Skills: names, AboutMe: seeker.AboutMe}, matching.Job{})
	}

	err = u.candidates.SaveCandidate(ctx, candidate.Saved{
		EmployerID:  employer.ID,
		JobSeekerID: seeker.ID,
		Notes:       strings.TrimSpace(in.Notes),
		MatchScore:  score,
	})
	if err != nil {
		return mapRepoNotFound(err)
	}
	return nil
}

func (u *Candidate) ListSaved(ctx context.Context, userID int64) ([]candidate.Saved, error) {
	employer, err := u.profiles.FindEmployerByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return []candidate.Saved{}, nil
		}
		return nil, internalErr(err)
	}
	items, err := u.candidates.ListSaved(ctx, employer.ID)
	if err != nil {
		return nil, internalErr(err)
	}
	return items, nil
}

func (u *Candidate) Remove(ctx context.Context, userID, jobSeekerID int64) error {
	employer, err := u.profiles.FindEmployerByUserID(ctx, userID)
	if err != nil {
		return mapProfileLookup(err)
	}
	if err := u.candidates.RemoveSaved(ctx, employer.ID, jobSeekerID); err != nil {
		return internalErr(err)
	}
	return nil
}

func jobFromPosting(p posting.Posting) matching.Job {
	return matching.Job{
		ID:           p.ID,
		Title:        p.Title,
		Requirements: p.Requirements,
		Skills:       p.Skills,
	}
}
