package repository

import (
	"context"

	"job-bridge/internal/database"
	"job-bridge/internal/database/postgres"
	"job-bridge/internal/domain/profile"
)

type ProfileRepository interface {
	UpsertJobSeeker(ctx context.Context, p profile.JobSeekerProfile) (profile.JobSeekerProfile, error)
	FindJobSeekerByUserID(ctx context.Context, userID int64) (profile.JobSeekerProfile, error)
	FindJobSeekerByID(ctx context.Context, id int64) (profile.JobSeekerProfile, error)

	UpsertEmployer(ctx context.Context, p profile.EmployerProfile) (profile.EmployerProfile, error)
	FindEmployerByUserID(ctx context.Context, userID int64) (profile.EmployerProfile, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

const jobSeekerColumns = `id, user_id, first_name, last_name, about_me, special_needs, disability_type, custom_disability, created_at, updated_at`

func (r *PostgresProfileRepository) UpsertJobSeeker(ctx context.Context, p profile.JobSeekerProfile) (profile.JobSeekerProfile, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO job_seeker_profiles (user_id, first_name, last_name, about_me, special_needs, disability_type, custom_disability)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (user_id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			about_me = EXCLUDED.about_me,
			special_needs = EXCLUDED.special_needs,
			disability_type = EXCLUDED.disability_type,
			custom_disability = EXCLUDED.custom_disability,
			updated_at = now()
		 RETURNING `+jobSeekerColumns,
		p.UserID,
		p.FirstName,
		p.LastName,
		p.AboutMe,
		p.SpecialNeeds,
		p.DisabilityType,
		p.CustomDisability,
	)
	return scanJobSeeker(row)
}

func (r *PostgresProfileRepository) FindJobSeekerByUserID(ctx context.Context, userID int64) (profile.JobSeekerProfile, error) {
	return scanJobSeeker(r.db.QueryRow(ctx, `SELECT `+jobSeekerColumns+` FROM job_seeker_profiles WHERE user_id = $1`, userID))
}

func (r *PostgresProfileRepository) FindJobSeekerByID(ctx context.Context, id int64) (profile.JobSeekerProfile, error) {
	return scanJobSeeker(r.db.QueryRow(ctx, `SELECT `+jobSeekerColumns+` FROM job_seeker_profiles WHERE id = $1`, id))
}

func scanJobSeeker(row database.Row) (profile.JobSeekerProfile, error) {
	var p profile.JobSeekerProfile
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.FirstName,
		&p.LastName,
		&p.AboutMe,
		&p.SpecialNeeds,
		&p.DisabilityType,
		&p.CustomDisability,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if postgres.IsNoRows(err) {
			return profile.JobSeekerProfile{}, ErrNotFound
		}
		return profile.JobSeekerProfile{}, err
	}
	return p, nil
}

const employerColumns = `id, user_id, company_name, company_description, contact_person, phone, website, created_at, updated_at`

func (r *PostgresProfileRepository) UpsertEmployer(ctx context.Context, p profile.EmployerProfile) (profile.EmployerProfile, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO employer_profiles (user_id, company_name, company_description, contact_person, phone, website)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			company_description = EXCLUDED.company_description,
			contact_person = EXCLUDED.contact_person,
			phone = EXCLUDED.phone,
			website = EXCLUDED.website,
			updated_at = now()
		 RETURNING `+employerColumns,
		p.UserID,
		p.CompanyName,
		p.CompanyDescription,
		p.ContactPerson,
		p.Phone,
		p.Website,
	)
	return scanEmployer(row)
}

func (r *PostgresProfileRepository) FindEmployerByUserID(ctx context.Context, userID int64) (profile.EmployerProfile, error) {
	return scanEmployer(r.db.QueryRow(ctx, `SELECT `+employerColumns+` FROM employer_profiles WHERE user_id = $1`, userID))
}

func scanEmployer(row database.Row) (profile.EmployerProfile, error) {
	var p profile.EmployerProfile
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.CompanyName,
		&p.CompanyDescription,
		&p.ContactPerson,
		&p.Phone,
		&p.Website,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if postgres.IsNoRows(err) {
			return profile.EmployerProfile{}, ErrNotFound
		}
		return profile.EmployerProfile{}, err
	}
	return p, nil
}
