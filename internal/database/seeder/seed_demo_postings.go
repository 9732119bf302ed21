package seeder

import (
	"context"
	"encoding/json"
	"fmt"

	"job-bridge/internal/database"
	"job-bridge/internal/database/postgres"
)

// DemoPostingsSeeder publishes a handful of active postings for the demo
// employer. It does nothing once that employer has any active posting.
type DemoPostingsSeeder struct{}

func (DemoPostingsSeeder) Name() string { return "demo_postings" }

var demoPostings = []struct {
	Title        string
	Description  string
	Requirements string
	Location     string
	JobType      string
	SalaryRange  string
	Skills       []string
}{
	{
		Title:        "Frontend Developer",
		Description:  "Build accessible user interfaces with Angular and React, tune performance and work closely with design.",
		Requirements: "Angular, React, TypeScript, HTML and CSS. Two years of experience. Communication and teamwork.",
		Location:     "Buenos Aires, Argentina",
		JobType:      "Full Time",
		SalaryRange:  "$2,000 - $3,500 USD",
		Skills:       []string{"Angular", "React", "TypeScript", "HTML", "CSS"},
	},
	{
		Title:        "Digital Marketing Specialist",
		Description:  "Plan and run digital campaigns, manage social channels and report on results.",
		Requirements: "Digital marketing, Social Media, paid ads and Data Analysis. Creativity and Communication.",
		Location:     "Remote",
		JobType:      "Full Time",
		SalaryRange:  "$1,800 - $2,500 USD",
		Skills:       []string{"Social Media", "Data Analysis", "Communication"},
	},
	{
		Title:        "Administrative Assistant",
		Description:  "Support the team with documentation, email handling, filing and customer contact.",
		Requirements: "Administrative experience, Excel and Word. Good Communication and attention to detail.",
		Location:     "Cordoba, Argentina",
		JobType:      "Part Time",
		SalaryRange:  "$800 - $1,200 USD",
		Skills:       []string{"Excel", "Word", "Data Entry", "Communication"},
	},
	{
		Title:        "UX/UI Designer",
		Description:  "Design intuitive web and mobile interfaces together with developers and stakeholders.",
		Requirements: "Figma, responsive design and user research. Portfolio required.",
		Location:     "Remote",
		JobType:      "Full Time",
		SalaryRange:  "$2,500 - $3,800 USD",
		Skills:       []string{"Figma", "Graphic Design"},
	},
	{
		Title:        "Data Analyst",
		Description:  "Turn business data into reports and dashboards that inform decisions across departments.",
		Requirements: "Data Analysis, SQL, Excel and BI tooling. Analytical thinking and presentation skills.",
		Location:     "Buenos Aires, Argentina",
		JobType:      "Full Time",
		SalaryRange:  "$2,200 - $3,000 USD",
		Skills:       []string{"Data Analysis", "SQL", "Excel"},
	},
}

func (DemoPostingsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "job_postings",
		"id",
		"employer_id",
		"title",
		"description",
		"requirements",
		"location",
		"job_type",
		"salary_range",
		"status",
		"skills",
	); err != nil {
		return err
	}

	var employerID int64
	err := db.QueryRow(
		ctx,
		`SELECT ep.id FROM employer_profiles ep JOIN users u ON u.id = ep.user_id WHERE u.username = $1`,
		DemoEmployerUsername,
	).Scan(&employerID)
	if postgres.IsNoRows(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("find demo employer: %w", err)
	}

	var active int
	if err := db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM job_postings WHERE employer_id = $1 AND status = 'active'`,
		employerID,
	).Scan(&active); err != nil {
		return err
	}
	if active > 0 {
		return nil
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, p := range demoPostings {
			skills, err := json.Marshal(p.Skills)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO job_postings (employer_id, title, description, requirements, location, job_type, salary_range, status, skills)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, 'active', $8::jsonb)`,
				employerID,
				p.Title,
				p.Description,
				p.Requirements,
				p.Location,
				p.JobType,
				p.SalaryRange,
				string(skills),
			); err != nil {
				return fmt.Errorf("insert posting %q: %w", p.Title, err)
			}
		}
		return nil
	})
}
