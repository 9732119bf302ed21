package dto

import (
	"time"

	"job-bridge/internal/domain/candidate"
	"job-bridge/internal/domain/profile"
	"job-bridge/internal/domain/skill"
)

type JobSeekerProfileRequest struct {
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	AboutMe          string `json:"about_me"`
	SpecialNeeds     string `json:"special_needs"`
	DisabilityType   string `json:"disability_type"`
	CustomDisability string `json:"custom_disability"`
}

type JobSeekerProfileResponse struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	AboutMe          string    `json:"about_me"`
	SpecialNeeds     string    `json:"special_needs"`
	DisabilityType   string    `json:"disability_type"`
	CustomDisability string    `json:"custom_disability"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type EmployerProfileRequest struct {
	CompanyName        string `json:"company_name"`
	CompanyDescription string `json:"company_description"`
	ContactPerson      string `json:"contact_person"`
	Phone              string `json:"phone"`
	Website            string `json:"website"`
}

type EmployerProfileResponse struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"user_id"`
	CompanyName        string    `json:"company_name"`
	CompanyDescription string    `json:"company_description"`
	ContactPerson      string    `json:"contact_person"`
	Phone              string    `json:"phone"`
	Website            string    `json:"website"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromJobSeekerProfile(p profile.JobSeekerProfile) JobSeekerProfileResponse {
	return JobSeekerProfileResponse{
		ID:               p.ID,
		UserID:           p.UserID,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		AboutMe:          p.AboutMe,
		SpecialNeeds:     p.SpecialNeeds,
		DisabilityType:   p.DisabilityType,
		CustomDisability: p.CustomDisability,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func FromEmployerProfile(p profile.EmployerProfile) EmployerProfileResponse {
	return EmployerProfileResponse{
		ID:                 p.ID,
		UserID:             p.UserID,
		CompanyName:        p.CompanyName,
		CompanyDescription: p.CompanyDescription,
		ContactPerson:      p.ContactPerson,
		Phone:              p.Phone,
		Website:            p.Website,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

type SkillResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

func FromSkills(items []skill.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(items))
	for _, s := range items {
		out = append(out, SkillResponse{ID: s.ID, Name: s.Name, Category: s.Category})
	}
	return out
}

type CandidateResponse struct {
	JobSeekerProfileResponse
	Name       string   `json:"name"`
	Username   string   `json:"username"`
	Email      string   `json:"email"`
	Skills     []string `json:"skills"`
	Saved      bool     `json:"saved"`
	MatchScore int      `json:"match_score"`
}

type SavedCandidateResponse struct {
	ID          int64     `json:"id"`
	EmployerID  int64     `json:"employer_id"`
	JobSeekerID int64     `json:"job_seeker_id"`
	Name        string    `json:"name"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	AboutMe     string    `json:"about_me"`
	Skills      []string  `json:"skills"`
	Notes       string    `json:"notes"`
	MatchScore  int       `json:"match_score"`
	SavedAt     time.Time `json:"saved_at"`
}

func FromCandidates(items []candidate.Candidate) []CandidateResponse {
	out := make([]CandidateResponse, 0, len(items))
	for _, c := range items {
		out = append(out, CandidateResponse{
			JobSeekerProfileResponse: FromJobSeekerProfile(c.Profile),
			Name:                     c.Profile.DisplayName(),
			Username:                 c.Username,
			Email:                    c.Email,
			Skills:                   nonNil(c.Skills),
			Saved:                    c.Saved,
			MatchScore:               c.MatchScore,
		})
	}
	return out
}

func FromSavedCandidates(items []candidate.Saved) []SavedCandidateResponse {
	out := make([]SavedCandidateResponse, 0, len(items))
	for _, s := range items {
		out = append(out, SavedCandidateResponse{
			ID:          s.ID,
			EmployerID:  s.EmployerID,
			JobSeekerID: s.JobSeekerID,
			Name:        s.Profile.DisplayName(),
			FirstName:   s.Profile.FirstName,
			LastName:    s.Profile.LastName,
			AboutMe:     s.Profile.AboutMe,
			Skills:      nonNil(s.Skills),
			Notes:       s.Notes,
			MatchScore:  s.MatchScore,
			SavedAt:     s.SavedAt,
		})
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
