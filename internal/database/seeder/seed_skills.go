package seeder

import (
	"context"
	"fmt"

	"job-bridge/internal/database"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

var defaultSkills = []struct {
	Name     string
	Category string
}{
	{Name: "Communication", Category: "Soft Skills"},
	{Name: "Teamwork", Category: "Soft Skills"},
	{Name: "Problem Solving", Category: "Soft Skills"},
	{Name: "Time Management", Category: "Soft Skills"},
	{Name: "Customer Service", Category: "Service"},
	{Name: "Data Entry", Category: "Administration"},
	{Name: "Excel", Category: "Office"},
	{Name: "Word", Category: "Office"},
	{Name: "Writing", Category: "Content"},
	{Name: "Graphic Design", Category: "Design"},
	{Name: "Figma", Category: "Design"},
	{Name: "Social Media", Category: "Marketing"},
	{Name: "Data Analysis", Category: "Analytics"},
	{Name: "SQL", Category: "Analytics"},
	{Name: "HTML", Category: "Web Development"},
	{Name: "CSS", Category: "Web Development"},
	{Name: "JavaScript", Category: "Web Development"},
	{Name: "TypeScript", Category: "Web Development"},
	{Name: "Angular", Category: "Web Development"},
	{Name: "React", Category: "Web Development"},
}

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "category", "created_at"); err != nil {
		return err
	}

	err := database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, it := range defaultSkills {
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO skills (name, category) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
				it.Name,
				it.Category,
			); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("insert skills: %w", err)
	}
	return nil
}
