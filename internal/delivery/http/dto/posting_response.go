package dto

import (
	"time"

	"job-bridge/internal/domain/posting"
)

type PostingRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Requirements string   `json:"requirements"`
	Location     string   `json:"location"`
	JobType      string   `json:"job_type"`
	SalaryRange  string   `json:"salary_range"`
	Status       string   `json:"status"`
	Skills       []string `json:"skills"`
}

type PostingResponse struct {
	ID                 int64     `json:"id"`
	EmployerID         int64     `json:"employer_id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Requirements       string    `json:"requirements"`
	Location           string    `json:"location"`
	JobType            string    `json:"job_type"`
	SalaryRange        string    `json:"salary_range"`
	Status             string    `json:"status"`
	Skills             []string  `json:"skills"`
	CompanyName        string    `json:"company_name"`
	CompanyDescription string    `json:"company_description"`
	ApplicationsCount  int       `json:"applications_count"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromPosting(p posting.Posting) PostingResponse {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	return PostingResponse{
		ID:                 p.ID,
		EmployerID:         p.EmployerID,
		Title:              p.Title,
		Description:        p.Description,
		Requirements:       p.Requirements,
		Location:           p.Location,
		JobType:            p.JobType,
		SalaryRange:        p.SalaryRange,
		Status:             string(p.Status),
		Skills:             skills,
		CompanyName:        p.CompanyName,
		CompanyDescription: p.CompanyDescription,
		ApplicationsCount:  p.ApplicationsCount,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func FromPostings(items []posting.Posting) []PostingResponse {
	out := make([]PostingResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromPosting(p))
	}
	return out
}

type RecommendationResponse struct {
	PostingResponse
	MatchScore int `json:"match_score"`
}
