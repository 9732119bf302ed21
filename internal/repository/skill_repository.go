package repository

import (
	"context"

	"job-bridge/internal/database"
	"job-bridge/internal/domain/skill"
)

type SkillRepository interface {
	GetAllSkills(ctx context.Context) ([]skill.Skill, error)
	CountExisting(ctx context.Context, ids []int64) (int, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) GetAllSkills(ctx context.Context) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, category, created_at FROM skills ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	return scanSkills(rows)
}

// CountExisting returns how many distinct ids name a stored skill.
func (r *PostgresSkillRepository) CountExisting(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM skills WHERE id = ANY($1::bigint[])`, ids).Scan(&n)
	return n, err
}

func scanSkills(rows database.Rows) ([]skill.Skill, error) {
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		var s skill.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
