package dto

import (
	"time"

	"job-bridge/internal/domain/application"
)

type ApplicationResponse struct {
	ID           int64     `json:"id"`
	JobPostingID int64     `json:"job_posting_id"`
	JobSeekerID  int64     `json:"job_seeker_id"`
	Status       string    `json:"status"`
	CoverLetter  string    `json:"cover_letter"`
	AppliedAt    time.Time `json:"applied_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ApplicantResponse struct {
	ApplicationResponse
	JobSeekerName string `json:"job_seeker_name"`
	Username      string `json:"username"`
	Email         string `json:"email"`
}

type SubmittedApplicationResponse struct {
	ApplicationResponse
	JobTitle    string `json:"job_title"`
	CompanyName string `json:"company_name"`
	Location    string `json:"location"`
	SalaryRange string `json:"salary_range"`
	JobType     string `json:"job_type"`
}

func FromApplication(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:           a.ID,
		JobPostingID: a.JobPostingID,
		JobSeekerID:  a.JobSeekerID,
		Status:       string(a.Status),
		CoverLetter:  a.CoverLetter,
		AppliedAt:    a.AppliedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func FromApplicants(items []application.Applicant) []ApplicantResponse {
	out := make([]ApplicantResponse, 0, len(items))
	for _, a := range items {
		out = append(out, ApplicantResponse{
			ApplicationResponse: FromApplication(a.Application),
			JobSeekerName:       a.JobSeekerName,
			Username:            a.Username,
			Email:               a.Email,
		})
	}
	return out
}

func FromSubmitted(items []application.Submitted) []SubmittedApplicationResponse {
	out := make([]SubmittedApplicationResponse, 0, len(items))
	for _, a := range items {
		out = append(out, SubmittedApplicationResponse{
			ApplicationResponse: FromApplication(a.Application),
			JobTitle:            a.JobTitle,
			CompanyName:         a.CompanyName,
			Location:            a.Location,
			SalaryRange:         a.SalaryRange,
			JobType:             a.JobType,
		})
	}
	return out
}
