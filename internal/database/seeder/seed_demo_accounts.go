package seeder

import (
	"context"
	"fmt"

	"job-bridge/internal/database"

	"golang.org/x/crypto/bcrypt"
)

const (
	DemoJobSeekerUsername = "admin"
	DemoEmployerUsername  = "admin2"
	DemoCompanyName       = "Demo Company"
)

// DemoAccountsSeeder creates one job seeker and one employer with profiles.
// Passwords equal the usernames.
type DemoAccountsSeeder struct{}

func (DemoAccountsSeeder) Name() string { return "demo_accounts" }

func (DemoAccountsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users", "id", "username", "email", "password_hash", "role"); err != nil {
		return err
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		seekerID, err := ensureUser(ctx, tx, DemoJobSeekerUsername, "admin@example.com", "jobseeker")
		if err != nil {
			return err
		}
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO job_seeker_profiles (user_id, first_name, last_name) VALUES ($1, $2, $3) ON CONFLICT (user_id) DO NOTHING`,
			seekerID,
			"Demo",
			"User",
		); err != nil {
			return fmt.Errorf("insert job seeker profile: %w", err)
		}

		employerID, err := ensureUser(ctx, tx, DemoEmployerUsername, "admin2@example.com", "employer")
		if err != nil {
			return err
		}
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO employer_profiles (user_id, company_name, company_description, contact_person)
			 VALUES ($1, $2, $3, $4) ON CONFLICT (user_id) DO NOTHING`,
			employerID,
			DemoCompanyName,
			"Demo employer profile",
			"Admin2",
		); err != nil {
			return fmt.Errorf("insert employer profile: %w", err)
		}
		return nil
	})
}

func ensureUser(ctx context.Context, tx database.Tx, username, email, role string) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(username), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	if _, err := tx.Exec(
		ctx,
		`INSERT INTO users (username, email, password_hash, role) VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`,
		username,
		email,
		string(hash),
		role,
	); err != nil {
		return 0, fmt.Errorf("insert user %s: %w", username, err)
	}

	var id int64
	if err := tx.QueryRow(ctx, `SELECT id FROM users WHERE username = $1 AND role = $2`, username, role).Scan(&id); err != nil {
		return 0, fmt.Errorf("find user %s: %w", username, err)
	}
	return id, nil
}
