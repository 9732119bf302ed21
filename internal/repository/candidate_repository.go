package repository

import (
	"context"
	"strings"

	"job-bridge/internal/database"
	"job-bridge/internal/database/postgres"
	"job-bridge/internal/domain/candidate"
)

type CandidateRepository interface {
	// Search lists every job seeker profile. Saved is relative to
	// employerID, which may be zero when the caller has no employer profile.
	Search(ctx context.Context, employerID int64, f candidate.Filter) ([]candidate.Candidate, error)
	SaveCandidate(ctx context.Context, s candidate.Saved) error
	ListSaved(ctx context.Context, employerID int64) ([]candidate.Saved, error)
	RemoveSaved(ctx context.Context, employerID, jobSeekerID int64) error
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

const profileSkillsAgg = `COALESCE(
	(SELECT array_agg(s.name ORDER BY s.name)
	 FROM job_seeker_skills jss JOIN skills s ON s.id = jss.skill_id
	 WHERE jss.job_seeker_id = jsp.id),
	'{}'::text[])`

func (r *PostgresCandidateRepository) Search(ctx context.Context, employerID int64, f candidate.Filter) ([]candidate.Candidate, error) {
	var b strings.Builder
	b.WriteString(`SELECT jsp.id, jsp.user_id, jsp.first_name, jsp.last_name, jsp.about_me, jsp.special_needs,
		jsp.disability_type, jsp.custom_disability, jsp.created_at, jsp.updated_at,
		u.username, u.email, ` + profileSkillsAgg + `,
		EXISTS (SELECT 1 FROM saved_candidates sc WHERE sc.job_seeker_id = jsp.id AND sc.employer_id = $1)
	FROM job_seeker_profiles jsp
	JOIN users u ON u.id = jsp.user_id`)
	args := []any{employerID}

	if patterns := likePatterns(f.Terms); len(patterns) > 0 {
		args = append(args, patterns)
		b.WriteString(`
	WHERE jsp.first_name ILIKE ANY($2) OR jsp.last_name ILIKE ANY($2) OR u.username ILIKE ANY($2)
		OR EXISTS (
			SELECT 1 FROM job_seeker_skills jss JOIN skills s ON s.id = jss.skill_id
			WHERE jss.job_seeker_id = jsp.id AND s.name ILIKE ANY($2)
		)`)
	}

	if f.SortBy == candidate.SortByName {
		b.WriteString(` ORDER BY jsp.first_name ASC, jsp.last_name ASC, jsp.id ASC`)
	} else {
		b.WriteString(` ORDER BY jsp.id DESC`)
	}

	rows, err := r.db.Query(ctx, b.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]candidate.Candidate, 0)
	for rows.Next() {
		var c candidate.Candidate
		p := &c.Profile
		if err := rows.Scan(
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
			&c.Username,
			&c.Email,
			&c.Skills,
			&c.Saved,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCandidateRepository) SaveCandidate(ctx context.Context, s candidate.Saved) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO saved_candidates (employer_id, job_seeker_id, notes, match_score)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (employer_id, job_seeker_id) DO UPDATE SET
			notes = EXCLUDED.notes,
			match_score = EXCLUDED.match_score,
			saved_at = now()`,
		s.EmployerID,
		s.JobSeekerID,
		s.Notes,
		s.MatchScore,
	)
	if postgres.IsForeignKeyViolation(err) {
		return ErrNotFound
	}
	return err
}

func (r *PostgresCandidateRepository) ListSaved(ctx context.Context, employerID int64) ([]candidate.Saved, error) {
	rows, err := r.db.Query(ctx,
		`SELECT sc.id, sc.employer_id, sc.job_seeker_id, sc.notes, sc.match_score, sc.saved_at,
			jsp.id, jsp.user_id, jsp.first_name, jsp.last_name, jsp.about_me, jsp.special_needs,
			jsp.disability_type, jsp.custom_disability, jsp.created_at, jsp.updated_at,
			`+profileSkillsAgg+`
		 FROM saved_candidates sc
		 JOIN job_seeker_profiles jsp ON jsp.id = sc.job_seeker_id
		 WHERE sc.employer_id = $1
		 ORDER BY sc.saved_at DESC, sc.id DESC`,
		employerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]candidate.Saved, 0)
	for rows.Next() {
		var s candidate.Saved
		p := &s.Profile
		if err := rows.Scan(
			&s.ID,
			&s.EmployerID,
			&s.JobSeekerID,
			&s.Notes,
			&s.MatchScore,
			&s.SavedAt,
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
			&s.Skills,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveSaved is idempotent; removing an unsaved candidate is not an error.
func (r *PostgresCandidateRepository) RemoveSaved(ctx context.Context, employerID, jobSeekerID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM saved_candidates WHERE employer_id = $1 AND job_seeker_id = $2`, employerID, jobSeekerID)
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func likePatterns(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, "%"+escapeLike(t)+"%")
		}
	}
	return out
}
