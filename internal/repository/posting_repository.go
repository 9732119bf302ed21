package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"job-bridge/internal/database"
	"job-bridge/internal/database/postgres"
	"job-bridge/internal/domain/posting"
)

type PostingRepository interface {
	Create(ctx context.Context, p posting.Posting) (posting.Posting, error)
	// Update, SetStatus and Delete match on both id and employer id and
	// return ErrNotFound when no owned posting matches.
	Update(ctx context.Context, p posting.Posting) (posting.Posting, error)
	SetStatus(ctx context.Context, employerID, id int64, status posting.Status) (posting.Posting, error)
	Delete(ctx context.Context, employerID, id int64) error

	FindByID(ctx context.Context, id int64) (posting.Posting, error)
	ListActive(ctx context.Context) ([]posting.Posting, error)
	ListByEmployer(ctx context.Context, employerID int64) ([]posting.Posting, error)
	ListAll(ctx context.Context) ([]posting.Posting, error)
}

type PostgresPostingRepository struct {
	db database.DB
}

func NewPostgresPostingRepository(db database.DB) *PostgresPostingRepository {
	return &PostgresPostingRepository{db: db}
}

// applications_count is always aggregated; nothing stores it.
const postingSelect = `
SELECT p.id, p.employer_id, p.title, p.description, p.requirements, p.location, p.job_type, p.salary_range,
	p.status, p.skills, p.created_at, p.updated_at,
	(SELECT COUNT(*) FROM job_applications a WHERE a.job_posting_id = p.id) AS applications_count,
	ep.company_name, ep.company_description, ep.user_id
FROM job_postings p
JOIN employer_profiles ep ON ep.id = p.employer_id`

func (r *PostgresPostingRepository) Create(ctx context.Context, p posting.Posting) (posting.Posting, error) {
	skills, err := encodeSkills(p.Skills)
	if err != nil {
		return posting.Posting{}, err
	}

	var id int64
	err = r.db.QueryRow(ctx,
		`INSERT INTO job_postings (employer_id, title, description, requirements, location, job_type, salary_range, status, skills)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::jsonb)
		 RETURNING id`,
		p.EmployerID,
		p.Title,
		p.Description,
		p.Requirements,
		p.Location,
		p.JobType,
		p.SalaryRange,
		string(p.Status),
		skills,
	).Scan(&id)
	if err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return posting.Posting{}, ErrNotFound
		}
		return posting.Posting{}, err
	}
	return r.FindByID(ctx, id)
}

func (r *PostgresPostingRepository) Update(ctx context.Context, p posting.Posting) (posting.Posting, error) {
	skills, err := encodeSkills(p.Skills)
	if err != nil {
		return posting.Posting{}, err
	}

	var id int64
	err = r.db.QueryRow(ctx,
		`UPDATE job_postings SET
			title = $3,
			description = $4,
			requirements = $5,
			location = $6,
			job_type = $7,
			salary_range = $8,
			status = $9,
			skills = $10::jsonb,
			updated_at = now()
		 WHERE id = $1 AND employer_id = $2
		 RETURNING id`,
		p.ID,
		p.EmployerID,
		p.Title,
		p.Description,
		p.Requirements,
		p.Location,
		p.JobType,
		p.SalaryRange,
		string(p.Status),
		skills,
	).Scan(&id)
	if err != nil {
		if postgres.IsNoRows(err) {
			return posting.Posting{}, ErrNotFound
		}
		return posting.Posting{}, err
	}
	return r.FindByID(ctx, id)
}

func (r *PostgresPostingRepository) SetStatus(ctx context.Context, employerID, id int64, status posting.Status) (posting.Posting, error) {
	var updated int64
	err := r.db.QueryRow(ctx,
		`UPDATE job_postings SET status = $3, updated_at = now()
		 WHERE id = $1 AND employer_id = $2
		 RETURNING id`,
		id,
		employerID,
		string(status),
	).Scan(&updated)
	if err != nil {
		if postgres.IsNoRows(err) {
			return posting.Posting{}, ErrNotFound
		}
		return posting.Posting{}, err
	}
	return r.FindByID(ctx, updated)
}

func (r *PostgresPostingRepository) Delete(ctx context.Context, employerID, id int64) error {
	n, err := r.db.Exec(ctx, `DELETE FROM job_postings WHERE id = $1 AND employer_id = $2`, id, employerID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresPostingRepository) FindByID(ctx context.Context, id int64) (posting.Posting, error) {
	p, err := scanPosting(r.db.QueryRow(ctx, postingSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if postgres.IsNoRows(err) {
			return posting.Posting{}, ErrNotFound
		}
		return posting.Posting{}, err
	}
	return p, nil
}

func (r *PostgresPostingRepository) ListActive(ctx context.Context) ([]posting.Posting, error) {
	return r.list(ctx, postingSelect+` WHERE p.status = 'active' ORDER BY p.created_at DESC, p.id DESC`)
}

func (r *PostgresPostingRepository) ListByEmployer(ctx context.Context, employerID int64) ([]posting.Posting, error) {
	return r.list(ctx, postingSelect+` WHERE p.employer_id = $1 ORDER BY p.created_at DESC, p.id DESC`, employerID)
}

func (r *PostgresPostingRepository) ListAll(ctx context.Context) ([]posting.Posting, error) {
	return r.list(ctx, postingSelect+` ORDER BY p.created_at DESC, p.id DESC`)
}

func (r *PostgresPostingRepository) list(ctx context.Context, query string, args ...any) ([]posting.Posting, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]posting.Posting, 0)
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanPosting(row database.Row) (posting.Posting, error) {
	var p posting.Posting
	var status string
	var skills []byte
	err := row.Scan(
		&p.ID,
		&p.EmployerID,
		&p.Title,
		&p.Description,
		&p.Requirements,
		&p.Location,
		&p.JobType,
		&p.SalaryRange,
		&status,
		&skills,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.ApplicationsCount,
		&p.CompanyName,
		&p.CompanyDescription,
		&p.EmployerUserID,
	)
	if err != nil {
		return posting.Posting{}, err
	}
	p.Status = posting.Status(status)
	p.Skills, err = decodeSkills(skills)
	if err != nil {
		return posting.Posting{}, fmt.Errorf("decode skills of posting %d: %w", p.ID, err)
	}
	return p, nil
}

func encodeSkills(skills []string) (string, error) {
	if skills == nil {
		skills = []string{}
	}
	b, err := json.Marshal(skills)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeSkills(b []byte) ([]string, error) {
	out := []string{}
	if len(b) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}
