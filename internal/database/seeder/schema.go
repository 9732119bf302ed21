package seeder

import (
	"context"
	"fmt"
	"strings"

	"job-bridge/internal/database"
)

// EnsureTableColumns fails when table lacks any of columns, naming every
// missing one. Seeders call it so a stale schema fails before any insert.
func EnsureTableColumns(ctx context.Context, q database.Querier, table string, columns ...string) error {
	if q == nil {
		return fmt.Errorf("nil db")
	}
	if table == "" {
		return fmt.Errorf("empty table")
	}

	rows, err := q.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema = current_schema() AND table_name = $1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	var missing []string
	for _, col := range columns {
		if col == "" {
			return fmt.Errorf("empty column")
		}
		if _, ok := existing[col]; !ok {
			missing = append(missing, table+"."+col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("schema mismatch: missing columns %s", strings.Join(missing, ", "))
	}
	return nil
}
