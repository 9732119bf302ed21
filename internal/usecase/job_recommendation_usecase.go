package usecase

import (
	"context"
	"errors"
	"sort"

	"job-bridge/internal/domain/matching"
	"job-bridge/internal/domain/posting"
	"job-bridge/internal/repository"
)

const (
	defaultRecommendationLimit = 10
	maxRecommendationLimit     = 50
)

type Recommendation struct {
	Posting    posting.Posting
	MatchScore int
}

type JobRecommendationUsecase interface {
	Recommend(ctx context.Context, userID int64, limit int) ([]Recommendation, error)
}

type JobRecommendation struct {
	postings repository.PostingRepository
	profiles repository.ProfileRepository
	skills   repository.JobSeekerSkillRepository
	scorer   matching.Scorer
}

func NewJobRecommendationUsecase(
	postings repository.PostingRepository,
	profiles repository.ProfileRepository,
	skills repository.JobSeekerSkillRepository,
	scorer matching.Scorer,
) *JobRecommendation {
	return &JobRecommendation{postings: postings, profiles: profiles, skills: skills, scorer: scorer}
}

// Recommend scores every active posting for the caller and returns the best
// limit of them. A caller without a profile gets none.
func (u *JobRecommendation) Recommend(ctx context.Context, userID int64, limit int) ([]Recommendation, error) {
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}
	if limit > maxRecommendationLimit {
		limit = maxRecommendationLimit
	}

	seeker, err := u.profiles.FindJobSeekerByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return []Recommendation{}, nil
		}
		return nil, internalErr(err)
	}

	skills, err := u.skills.FindByJobSeekerID(ctx, seeker.ID)
	if err != nil {
		return nil, internalErr(err)
	}
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	cand := matching.Candidate{JobSeekerID: seeker.ID, Skills: names, AboutMe: seeker.AboutMe}

	postings, err := u.postings.ListActive(ctx)
	if err != nil {
		return nil, internalErr(err)
	}

	out := make([]Recommendation, 0, len(postings))
	for _, p := range postings {
		out = append(out, Recommendation{Posting: p, MatchScore: u.scorer.Score(cand, jobFromPosting(p))})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MatchScore > out[j].MatchScore })

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
