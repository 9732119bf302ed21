package application

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusReviewed Status = "reviewed"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is one of the application states. Any state may
// move to any other; there is no terminal state.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

type Application struct {
	ID           int64
	JobPostingID int64
	JobSeekerID  int64
	Status       Status
	CoverLetter  string
	AppliedAt    time.Time
	UpdatedAt    time.Time

	// User account behind JobSeekerID, set where the query joins it.
	JobSeekerUserID int64
}

// Applicant is an application as seen by the employer owning the posting.
type Applicant struct {
	Application
	JobSeekerName string
	Username      string
	Email         string
}

// Submitted is an application as seen by the job seeker who sent it.
type Submitted struct {
	Application
	JobTitle    string
	CompanyName string
	Location    string
	SalaryRange string
	JobType     string
}
