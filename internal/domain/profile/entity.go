package profile

import "time"

type JobSeekerProfile struct {
	ID               int64
	UserID           int64
	FirstName        string
	LastName         string
	AboutMe          string
	SpecialNeeds     string
	DisabilityType   string
	CustomDisability string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (p JobSeekerProfile) DisplayName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

type EmployerProfile struct {
	ID                 int64
	UserID             int64
	CompanyName        string
	CompanyDescription string
	ContactPerson      string
	Phone              string
	Website            string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
