package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/marcelsud/lead-router/funnel"
	"github.com/marcelsud/lead-router/lead"
)

/*
PostgreSQL repository for leads and the funnel lookups the lead flow needs.

Leads always carry their funnel slug, so reads join the funnels table.
Submitted form data and UTM params are stored as JSONB.
*/

type Repository struct {
	DB *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{DB: db}
}

const leadColumns = `l.id, l.funnel_id, f.slug, l.variant, l.status, l.data, l.utm_params,
	l.sent_to, l.sent_to_client, l.error_message, l.sent_at, l.created_at`

// Get returns a lead with its funnel slug joined in
func (r *Repository) Get(ctx context.Context, id string) (lead.Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads l
		JOIN funnels f ON f.id = l.funnel_id
		WHERE l.id = $1
	`

	l, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return lead.Lead{}, lead.ErrNotFound
	}
	if err != nil {
		return lead.Lead{}, fmt.Errorf("selecting lead: %w", err)
	}

	return l, nil
}

// ListByFunnel returns leads newest first; an empty funnelID lists across funnels
func (r *Repository) ListByFunnel(ctx context.Context, funnelID string, limit, offset int) ([]lead.Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads l
		JOIN funnels f ON f.id = l.funnel_id
	`
	args := []any{}
	if funnelID != "" {
		query += " WHERE l.funnel_id = $1"
		args = append(args, funnelID)
	}
	query += fmt.Sprintf(" ORDER BY l.created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("selecting leads: %w", err)
	}
	defer rows.Close()

	var leads []lead.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning lead: %w", err)
		}
		leads = append(leads, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating leads: %w", err)
	}

	return leads, nil
}

// Insert stores a new lead
func (r *Repository) Insert(ctx context.Context, l lead.Lead) (lead.Lead, error) {
	query := `
		INSERT INTO leads (id, funnel_id, variant, status, data, utm_params, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	data, err := json.Marshal(l.Data)
	if err != nil {
		return lead.Lead{}, fmt.Errorf("encoding lead data: %w", err)
	}
	utm, err := json.Marshal(l.UTMParams)
	if err != nil {
		return lead.Lead{}, fmt.Errorf("encoding utm params: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, query,
		l.ID, l.FunnelID, l.Variant, l.Status.String(), data, utm, l.CreatedAt)
	if err != nil {
		return lead.Lead{}, fmt.Errorf("inserting lead: %w", err)
	}

	return l, nil
}

// MarkSent records a successful delivery and clears any earlier error
func (r *Repository) MarkSent(ctx context.Context, id, sentTo, sentToClient string, at time.Time) error {
	query := `
		UPDATE leads
		SET status = 'sent', sent_to = $1, sent_to_client = $2, error_message = NULL, sent_at = $3
		WHERE id = $4
	`

	result, err := r.DB.ExecContext(ctx, query, sentTo, sentToClient, at, id)
	if err != nil {
		return fmt.Errorf("marking lead sent: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rows == 0 {
		return lead.ErrNotFound
	}

	return nil
}

// MarkError records a routing failure
func (r *Repository) MarkError(ctx context.Context, id, message string) error {
	query := `
		UPDATE leads
		SET status = 'error', error_message = $1
		WHERE id = $2
	`

	result, err := r.DB.ExecContext(ctx, query, message, id)
	if err != nil {
		return fmt.Errorf("marking lead error: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rows == 0 {
		return lead.ErrNotFound
	}

	return nil
}

// FunnelExists reports whether the funnel is known
func (r *Repository) FunnelExists(ctx context.Context, id string) (bool, error) {
	query := "SELECT 1 FROM funnels WHERE id = $1"

	var one int
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking funnel: %w", err)
	}

	return true, nil
}

// FunnelVariants returns the funnel's variant definitions
func (r *Repository) FunnelVariants(ctx context.Context, id string) ([]funnel.Variant, error) {
	query := "SELECT variants FROM funnels WHERE id = $1"

	var raw []byte
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, lead.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("selecting funnel variants: %w", err)
	}

	if len(raw) == 0 {
		return nil, nil
	}

	var variants []funnel.Variant
	if err := json.Unmarshal(raw, &variants); err != nil {
		return nil, fmt.Errorf("decoding funnel variants: %w", err)
	}

	return variants, nil
}

// Close closes the underlying connection pool
func (r *Repository) Close(ctx context.Context) error {
	if r.DB != nil {
		return r.DB.Close()
	}
	return nil
}

// CreateTables creates the funnels and leads tables (useful for tests)
func (r *Repository) CreateTables(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS funnels (
			id TEXT PRIMARY KEY,
			slug TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL DEFAULT '',
			variants JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS leads (
			id TEXT PRIMARY KEY,
			funnel_id TEXT NOT NULL REFERENCES funnels (id),
			variant TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'pending',
			data JSONB NOT NULL,
			utm_params JSONB NOT NULL DEFAULT '{}',
			sent_to TEXT,
			sent_to_client TEXT,
			error_message TEXT,
			sent_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS idx_leads_funnel_created ON leads (funnel_id, created_at DESC)
	`

	if _, err := r.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (lead.Lead, error) {
	var (
		l      lead.Lead
		status string
		data   []byte
		utm    []byte
	)

	err := row.Scan(
		&l.ID,
		&l.FunnelID,
		&l.FunnelSlug,
		&l.Variant,
		&status,
		&data,
		&utm,
		&l.SentTo,
		&l.SentToClient,
		&l.ErrorMessage,
		&l.SentAt,
		&l.CreatedAt,
	)
	if err != nil {
		return lead.Lead{}, err
	}

	l.Status = lead.NewStatus(status)

	if len(data) > 0 {
		if err := json.Unmarshal(data, &l.Data); err != nil {
			return lead.Lead{}, fmt.Errorf("decoding lead data: %w", err)
		}
	}
	if len(utm) > 0 {
		if err := json.Unmarshal(utm, &l.UTMParams); err != nil {
			return lead.Lead{}, fmt.Errorf("decoding utm params: %w", err)
		}
	}

	return l, nil
}
