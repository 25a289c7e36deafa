package db

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	embedsql "github.com/gyeh/datenorm/internal/sql"
)

// schemaTables must exist once migrations have run.
var schemaTables = []string{"datenorm.batches", "datenorm.resolved_dates"}

// ApplyMigrations executes the embedded *.sql files in name order and then
// checks that the batch and resolved-date tables are in place. The DDL is
// written with IF NOT EXISTS, so reruns are harmless.
func ApplyMigrations(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger) error {
	names, err := migrationFiles()
	if err != nil {
		return err
	}

	for _, name := range names {
		ddl, err := fs.ReadFile(embedsql.Migrations, path.Join("migrations", name))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		log.Debug().Str("migration", name).Msg("applying")
		if _, err := pool.Exec(ctx, string(ddl)); err != nil {
			return fmt.Errorf("migration %s: %w", name, HandlePgError(err))
		}
	}

	for _, table := range schemaTables {
		var present bool
		if err := pool.QueryRow(ctx, "SELECT to_regclass($1) IS NOT NULL", table).Scan(&present); err != nil {
			return fmt.Errorf("check %s: %w", table, err)
		}
		if !present {
			return fmt.Errorf("%w: %s missing after migrations", ErrUndefinedTable, table)
		}
	}

	log.Info().Int("migrations", len(names)).Strs("tables", schemaTables).Msg("schema ready")
	return nil
}

func migrationFiles() ([]string, error) {
	entries, err := fs.ReadDir(embedsql.Migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)
	return names, nil
}
