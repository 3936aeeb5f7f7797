//go:build integration

package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
Integration test helpers backed by a real PostgreSQL container.

Run with: go test -tags=integration ./webhook/postgres/...
Requires Docker.
*/

const (
	testDatabase = "testdb"
	testUser     = "testuser"
	testPassword = "testpass"
)

// PostgresContainer bundles the container with an open connection
type PostgresContainer struct {
	Container testcontainers.Container
	DB        *sql.DB
	ConnStr   string
}

// SetupPostgresContainer starts a PostgreSQL container and returns a cleanup func
func SetupPostgresContainer(t *testing.T, ctx context.Context) (*PostgresContainer, func()) {
	t.Helper()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(testDatabase),
		postgres.WithUsername(testUser),
		postgres.WithPassword(testPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)

	err = db.PingContext(ctx)
	require.NoError(t, err)

	container := &PostgresContainer{
		Container: pgContainer,
		DB:        db,
		ConnStr:   connStr,
	}

	cleanup := func() {
		if db != nil {
			_ = db.Close()
		}
		if pgContainer != nil {
			_ = pgContainer.Terminate(ctx)
		}
	}

	return container, cleanup
}

// CreateTestSchema creates the delivery tables plus the routing_rules table
// DueEntries joins against
func CreateTestSchema(t *testing.T, ctx context.Context, db *sql.DB) {
	t.Helper()

	repo := &Repository{DB: db}
	require.NoError(t, repo.CreateTables(ctx))

	rules := `
		CREATE TABLE IF NOT EXISTS routing_rules (
			id TEXT PRIMARY KEY,
			funnel_id TEXT NOT NULL,
			priority INTEGER NOT NULL DEFAULT 0,
			condition JSONB,
			webhook_url TEXT NOT NULL,
			client_name TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	_, err := db.ExecContext(ctx, rules)
	require.NoError(t, err)
}

// CleanupDatabase truncates every delivery table between tests
func CleanupDatabase(t *testing.T, ctx context.Context, db *sql.DB) {
	t.Helper()

	_, err := db.ExecContext(ctx,
		"TRUNCATE TABLE webhook_configs, webhook_logs, webhook_queue, routing_rules CASCADE")
	require.NoError(t, err)
}

// SeedRoutingRule inserts the rule DueEntries joins against
func SeedRoutingRule(t *testing.T, ctx context.Context, db *sql.DB, id, url, client string) {
	t.Helper()

	query := `
		INSERT INTO routing_rules (id, funnel_id, priority, condition, webhook_url, client_name, is_active)
		VALUES ($1, 'funnel-1', 1, '{"field":"email","operator":"contains","value":"@"}', $2, $3, true)
	`
	_, err := db.ExecContext(ctx, query, id, url, client)
	require.NoError(t, err)
}
