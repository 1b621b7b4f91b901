package readiness

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// migrationsProbe checks that the migration tool has stamped the
// database. The bot's migrations are managed by Alembic.
const migrationsProbe = `SELECT EXISTS (
	SELECT FROM information_schema.tables WHERE table_name = 'alembic_version'
)`

// PostgresChecker probes a PostgreSQL server over a connection URL.
type PostgresChecker struct {
	// URL is a postgres:// connection string.
	URL string
	// RequireMigrations additionally demands that at least one
	// migration has been applied.
	RequireMigrations bool
}

// Name implements Checker.
func (c *PostgresChecker) Name() string { return "postgres" }

// Check connects, pings, and optionally verifies the migrations table.
func (c *PostgresChecker) Check(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, c.URL)
	if err != nil {
		return fmt.Errorf("connecting: %w", err)
	}
	defer conn.Close(ctx)

	if err := conn.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}

	if !c.RequireMigrations {
		return nil
	}

	var hasTable bool
	if err := conn.QueryRow(ctx, migrationsProbe).Scan(&hasTable); err != nil {
		return fmt.Errorf("probing migrations table: %w", err)
	}
	if !hasTable {
		return fmt.Errorf("migrations table does not exist")
	}

	var version string
	if err := conn.QueryRow(ctx, `SELECT version_num FROM alembic_version`).Scan(&version); err != nil {
		return fmt.Errorf("no migrations applied: %w", err)
	}
	return nil
}
