package candidate

import (
	"time"

	"job-bridge/internal/domain/profile"
)

type SortBy string

const (
	SortByMatchScore SortBy = "matchScore"
	SortByName       SortBy = "name"
)

func ParseSortBy(s string) SortBy {
	if SortBy(s) == SortByName {
		return SortByName
	}
	return SortByMatchScore
}

// Candidate is a job seeker as listed to an employer.
type Candidate struct {
	Profile    profile.JobSeekerProfile
	Username   string
	Email      string
	Skills     []string
	Saved      bool
	MatchScore int
}

type Filter struct {
	// Terms are alternative spellings of one search; a candidate matches
	// when any of them matches. Empty lists everyone.
	Terms  []string
	SortBy SortBy
}

type Saved struct {
	ID          int64
	EmployerID  int64
	JobSeekerID int64
	Notes       string
	MatchScore  int
	SavedAt     time.Time

	Profile profile.JobSeekerProfile
	Skills  []string
}
