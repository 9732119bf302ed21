package repository

import (
	"context"

	"job-bridge/internal/database"
	"job-bridge/internal/domain/skill"
)

type JobSeekerSkillRepository interface {
	FindByJobSeekerID(ctx context.Context, jobSeekerID int64) ([]skill.Skill, error)
	// ReplaceForJobSeeker swaps the whole skill set in one transaction.
	ReplaceForJobSeeker(ctx context.Context, jobSeekerID int64, skillIDs []int64) error
}

type PostgresJobSeekerSkillRepository struct {
	db database.DB
}

func NewPostgresJobSeekerSkillRepository(db database.DB) *PostgresJobSeekerSkillRepository {
	return &PostgresJobSeekerSkillRepository{db: db}
}

func (r *PostgresJobSeekerSkillRepository) FindByJobSeekerID(ctx context.Context, jobSeekerID int64) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT s.id, s.name, s.category, s.created_at
		 FROM skills s
		 JOIN job_seeker_skills jss ON jss.skill_id = s.id
		 WHERE jss.job_seeker_id = $1
		 ORDER BY s.name ASC`,
		jobSeekerID,
	)
	if err != nil {
		return nil, err
	}
	return scanSkills(rows)
}

func (r *PostgresJobSeekerSkillRepository) ReplaceForJobSeeker(ctx context.Context, jobSeekerID int64, skillIDs []int64) error {
	return database.WithTx(ctx, r.db, func(tx database.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM job_seeker_skills WHERE job_seeker_id = $1`, jobSeekerID); err != nil {
			return err
		}
		if len(skillIDs) == 0 {
			return nil
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO job_seeker_skills (job_seeker_id, skill_id)
			 SELECT $1, unnest($2::bigint[])
			 ON CONFLICT DO NOTHING`,
			jobSeekerID,
			skillIDs,
		)
		return err
	})
}
