package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/marcelsud/lead-router/routing"
)

/*
PostgreSQL repository for routing rules.

Conditions are stored as JSONB. Reads come back pre-sorted by priority
so the selector only has to tie-break.
*/

type Repository struct {
	DB *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{DB: db}
}

// ActiveByFunnel returns the funnel's active rules ordered by priority
func (r *Repository) ActiveByFunnel(ctx context.Context, funnelID string) ([]routing.Rule, error) {
	query := `
		SELECT id, funnel_id, priority, condition, webhook_url, client_name, is_active, created_at
		FROM routing_rules
		WHERE funnel_id = $1 AND is_active = true
		ORDER BY priority ASC, id ASC
	`

	rows, err := r.DB.QueryContext(ctx, query, funnelID)
	if err != nil {
		return nil, fmt.Errorf("selecting routing rules: %w", err)
	}
	defer rows.Close()

	var rules []routing.Rule
	for rows.Next() {
		var (
			rule routing.Rule
			cond []byte
		)
		err := rows.Scan(
			&rule.ID,
			&rule.FunnelID,
			&rule.Priority,
			&cond,
			&rule.WebhookURL,
			&rule.ClientName,
			&rule.Active,
			&rule.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning routing rule: %w", err)
		}
		if len(cond) > 0 {
			if err := json.Unmarshal(cond, &rule.Condition); err != nil {
				return nil, fmt.Errorf("decoding rule condition: %w", err)
			}
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating routing rules: %w", err)
	}

	return rules, nil
}

// ReplaceForFunnel swaps the funnel's rule set atomically
func (r *Repository) ReplaceForFunnel(ctx context.Context, funnelID string, rules []routing.Rule) ([]routing.Rule, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM routing_rules WHERE funnel_id = $1", funnelID); err != nil {
		return nil, fmt.Errorf("deleting routing rules: %w", err)
	}

	query := `
		INSERT INTO routing_rules (id, funnel_id, priority, condition, webhook_url, client_name, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
	`
	for i := range rules {
		rules[i].FunnelID = funnelID
		// slice order is the evaluation order the dashboard saved
		rules[i].Priority = i
		if rules[i].ID == "" {
			rules[i].ID = uuid.New().String()
		}
		cond, err := json.Marshal(rules[i].Condition)
		if err != nil {
			return nil, fmt.Errorf("encoding rule condition: %w", err)
		}
		_, err = tx.ExecContext(ctx, query,
			rules[i].ID, funnelID, rules[i].Priority, cond,
			rules[i].WebhookURL, rules[i].ClientName, rules[i].Active)
		if err != nil {
			return nil, fmt.Errorf("inserting routing rule: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing routing rules: %w", err)
	}

	return rules, nil
}

// CreateTables creates the routing_rules table (useful for tests)
func (r *Repository) CreateTables(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS routing_rules (
			id TEXT PRIMARY KEY,
			funnel_id TEXT NOT NULL,
			priority INTEGER NOT NULL DEFAULT 0,
			condition JSONB,
			webhook_url TEXT NOT NULL,
			client_name TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS idx_routing_rules_funnel ON routing_rules (funnel_id, priority)
	`

	if _, err := r.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
