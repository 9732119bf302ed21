package repository

import (
	"context"

	"job-bridge/internal/database"
	"job-bridge/internal/database/postgres"
	"job-bridge/internal/domain/application"
)

type ApplicationRepository interface {
	// Create inserts a pending application and returns ErrDuplicate when the
	// job seeker already applied to the posting.
	Create(ctx context.Context, postingID, jobSeekerID int64, coverLetter string) (application.Application, error)
	ListByPosting(ctx context.Context, postingID int64) ([]application.Applicant, error)
	ListByJobSeeker(ctx context.Context, jobSeekerID int64) ([]application.Submitted, error)
	// SetStatus updates an application whose parent posting belongs to
	// employerID. ErrNotFound covers both a missing and a foreign application.
	SetStatus(ctx context.Context, employerID, applicationID int64, status application.Status) (application.Application, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, postingID, jobSeekerID int64, coverLetter string) (application.Application, error) {
	var a application.Application
	var status string
	err := r.db.QueryRow(ctx,
		`INSERT INTO job_applications (job_posting_id, job_seeker_id, status, cover_letter)
		 VALUES ($1, $2, 'pending', $3)
		 ON CONFLICT (job_posting_id, job_seeker_id) DO NOTHING
		 RETURNING id, job_posting_id, job_seeker_id, status, cover_letter, applied_at, updated_at`,
		postingID,
		jobSeekerID,
		coverLetter,
	).Scan(&a.ID, &a.JobPostingID, &a.JobSeekerID, &status, &a.CoverLetter, &a.AppliedAt, &a.UpdatedAt)
	if err != nil {
		switch {
		case postgres.IsNoRows(err):
			return application.Application{}, ErrDuplicate
		case postgres.IsForeignKeyViolation(err):
			return application.Application{}, ErrNotFound
		}
		return application.Application{}, err
	}
	a.Status = application.Status(status)
	return a, nil
}

func (r *PostgresApplicationRepository) ListByPosting(ctx context.Context, postingID int64) ([]application.Applicant, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.job_posting_id, a.job_seeker_id, a.status, a.cover_letter, a.applied_at, a.updated_at,
			jsp.user_id, TRIM(jsp.first_name || ' ' || jsp.last_name), u.username, u.email
		 FROM job_applications a
		 JOIN job_seeker_profiles jsp ON jsp.id = a.job_seeker_id
		 JOIN users u ON u.id = jsp.user_id
		 WHERE a.job_posting_id = $1
		 ORDER BY a.applied_at DESC, a.id DESC`,
		postingID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Applicant, 0)
	for rows.Next() {
		var it application.Applicant
		var status string
		if err := rows.Scan(
			&it.ID,
			&it.JobPostingID,
			&it.JobSeekerID,
			&status,
			&it.CoverLetter,
			&it.AppliedAt,
			&it.UpdatedAt,
			&it.JobSeekerUserID,
			&it.JobSeekerName,
			&it.Username,
			&it.Email,
		); err != nil {
			return nil, err
		}
		it.Status = application.Status(status)
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) ListByJobSeeker(ctx context.Context, jobSeekerID int64) ([]application.Submitted, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.job_posting_id, a.job_seeker_id, a.status, a.cover_letter, a.applied_at, a.updated_at,
			p.title, ep.company_name, p.location, p.salary_range, p.job_type
		 FROM job_applications a
		 JOIN job_postings p ON p.id = a.job_posting_id
		 JOIN employer_profiles ep ON ep.id = p.employer_id
		 WHERE a.job_seeker_id = $1
		 ORDER BY a.applied_at DESC, a.id DESC`,
		jobSeekerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Submitted, 0)
	for rows.Next() {
		var it application.Submitted
		var status string
		if err := rows.Scan(
			&it.ID,
			&it.JobPostingID,
			&it.JobSeekerID,
			&status,
			&it.CoverLetter,
			&it.AppliedAt,
			&it.UpdatedAt,
			&it.JobTitle,
			&it.CompanyName,
			&it.Location,
			&it.SalaryRange,
			&it.JobType,
		); err != nil {
			return nil, err
		}
		it.Status = application.Status(status)
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) SetStatus(ctx context.Context, employerID, applicationID int64, status application.Status) (application.Application, error) {
	var a application.Application
	var st string
	err := r.db.QueryRow(ctx,
		`WITH updated AS (
			UPDATE job_applications a
			SET status = $3, updated_at = now()
			FROM job_postings p
			WHERE a.id = $1 AND p.id = a.job_posting_id AND p.employer_id = $2
			RETURNING a.id, a.job_posting_id, a.job_seeker_id, a.status, a.cover_letter, a.applied_at, a.updated_at
		)
		SELECT u.id, u.job_posting_id, u.job_seeker_id, u.status, u.cover_letter, u.applied_at, u.updated_at, jsp.user_id
		FROM updated u
		JOIN job_seeker_profiles jsp ON jsp.id = u.job_seeker_id`,
		applicationID,
		employerID,
		string(status),
	).Scan(&a.ID, &a.JobPostingID, &a.JobSeekerID, &st, &a.CoverLetter, &a.AppliedAt, &a.UpdatedAt, &a.JobSeekerUserID)
	if err != nil {
		if postgres.IsNoRows(err) {
			return application.Application{}, ErrNotFound
		}
		return application.Application{}, err
	}
	a.Status = application.Status(st)
	return a, nil
}
