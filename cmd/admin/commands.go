package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"job-bridge/internal/config"
	"job-bridge/internal/database"
	dbpostgres "job-bridge/internal/database/postgres"
	"job-bridge/internal/database/migration"
	"job-bridge/internal/database/seeder"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
)

const (
	dirFlag     = "dir"
	timeoutFlag = "timeout"
	onlyFlag    = "only"
)

var migrateFlags = map[string]cobraflags.Flag{
	dirFlag: &cobraflags.StringFlag{
		Name:  dirFlag,
		Value: "",
		Usage: "Directory of V<version>__<name>.sql files; empty uses the embedded migrations",
	},
	timeoutFlag: &cobraflags.StringFlag{
		Name:  timeoutFlag,
		Value: "2m",
		Usage: "Overall deadline for the run",
	},
}

var seedFlags = map[string]cobraflags.Flag{
	onlyFlag: &cobraflags.StringFlag{
		Name:  onlyFlag,
		Value: "",
		Usage: "Comma separated seeder names to run; empty runs all",
	},
	timeoutFlag: &cobraflags.StringFlag{
		Name:  timeoutFlag,
		Value: "2m",
		Usage: "Overall deadline for the run",
	},
}

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE:  migrateCommand,
	}
	cobraflags.RegisterMap(cmd, migrateFlags)
	return cmd
}

func newSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the skill catalogue and demo accounts",
		Long: `Run the idempotent seeders in dependency order. Run migrate first;
seeders expect the schema to exist.`,
		RunE: seedCommand,
	}
	cobraflags.RegisterMap(cmd, seedFlags)
	return cmd
}

func migrateCommand(cmd *cobra.Command, _ []string) error {
	timeout, err := parseTimeout(migrateFlags[timeoutFlag].GetString())
	if err != nil {
		return err
	}

	var fsys fs.FS
	if dir := strings.TrimSpace(migrateFlags[dirFlag].GetString()); dir != "" {
		fsys = os.DirFS(dir)
	}

	return withDB(cmd.Context(), timeout, func(ctx context.Context, db database.DB, logger *log.Logger) error {
		return migration.Runner{FS: fsys, Logger: logger}.Run(ctx, db.SQLDB())
	})
}

func seedCommand(cmd *cobra.Command, _ []string) error {
	timeout, err := parseTimeout(seedFlags[timeoutFlag].GetString())
	if err != nil {
		return err
	}
	seeders, err := selectSeeders(seeder.Defaults(), seedFlags[onlyFlag].GetString())
	if err != nil {
		return err
	}

	return withDB(cmd.Context(), timeout, func(ctx context.Context, db database.DB, logger *log.Logger) error {
		return seeder.Runner{Seeders: seeders, Logger: logger}.Run(ctx, db)
	})
}

func withDB(parent context.Context, timeout time.Duration, fn func(ctx context.Context, db database.DB, logger *log.Logger) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	return fn(ctx, db, log.New(os.Stdout, "", log.LstdFlags))
}

func parseTimeout(raw string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid --%s %q", timeoutFlag, raw)
	}
	return d, nil
}

// selectSeeders keeps the dependency order of all regardless of the order
// names are given in.
func selectSeeders(all []seeder.Seeder, only string) ([]seeder.Seeder, error) {
	only = strings.TrimSpace(only)
	if only == "" {
		return all, nil
	}

	wanted := map[string]bool{}
	for _, name := range strings.Split(only, ",") {
		if name = strings.TrimSpace(name); name != "" {
			wanted[name] = true
		}
	}

	out := make([]seeder.Seeder, 0, len(wanted))
	for _, s := range all {
		if wanted[s.Name()] {
			out = append(out, s)
			delete(wanted, s.Name())
		}
	}
	if len(wanted) > 0 {
		unknown := make([]string, 0, len(wanted))
		for name := range wanted {
			unknown = append(unknown, name)
		}
		sort.Strings(unknown)
		return nil, fmt.Errorf("unknown seeders: %s", strings.Join(unknown, ", "))
	}
	return out, nil
}
