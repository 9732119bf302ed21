package posting

import "time"

type Status string

const (
	StatusActive Status = "active"
	StatusClosed Status = "closed"
	StatusDraft  Status = "draft"
)

// Valid reports whether s may be stored on a posting through create or update.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusClosed, StatusDraft:
		return true
	}
	return false
}

// Toggleable reports whether s may be set through the status toggle.
// Drafts are only reachable through a full update.
func (s Status) Toggleable() bool {
	return s == StatusActive || s == StatusClosed
}

type Posting struct {
	ID           int64
	EmployerID   int64
	Title        string
	Description  string
	Requirements string
	Location     string
	JobType      string
	SalaryRange  string
	Status       Status
	Skills       []string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Computed at read time from job_applications.
	ApplicationsCount int

	CompanyName        string
	CompanyDescription string
	// User account behind EmployerID.
	EmployerUserID     int64
}
