package seeder

import (
	"context"

	"job-bridge/internal/database"
)

// Seeder inserts reference or demo rows. Run must be safe to repeat.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
