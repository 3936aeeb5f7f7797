package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/marcelsud/lead-router/webhook"
)

/*
PostgreSQL store for the delivery subsystem: per-rule configs, the attempt
audit log and the durable retry queue.

The queue leans on the database for coordination: ClaimEntry is a guarded
UPDATE so concurrent processors never double-send the same entry.
*/

// Open creates a connection pool shared by the repositories (25 open, 5 idle, 5 min lifetime)
func Open(connectionString string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

type Repository struct {
	DB *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{DB: db}
}

const configColumns = `id, routing_rule_id, custom_headers, timeout_ms, retry_enabled,
	max_retries, retry_delay_ms, retry_backoff_multiplier`

// EnsureConfig returns the rule's delivery policy, creating defaults on first access
func (r *Repository) EnsureConfig(ctx context.Context, ruleID string) (webhook.Config, error) {
	cfg, err := r.selectConfig(ctx, ruleID)
	if err == nil {
		return cfg, nil
	}
	if err != webhook.ErrNotFound {
		return webhook.Config{}, err
	}

	def := webhook.DefaultConfig(ruleID)
	def.ID = uuid.New().String()
	headers, err := json.Marshal(def.CustomHeaders)
	if err != nil {
		return webhook.Config{}, fmt.Errorf("encoding custom headers: %w", err)
	}

	// Concurrent first accesses race here; DO NOTHING lets the loser re-read
	query := `
		INSERT INTO webhook_configs (` + configColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (routing_rule_id) DO NOTHING
	`
	_, err = r.DB.ExecContext(ctx, query,
		def.ID, def.RoutingRuleID, headers, def.TimeoutMS, def.RetryEnabled,
		def.MaxRetries, def.RetryDelayMS, def.RetryBackoffMultiplier)
	if err != nil {
		return webhook.Config{}, fmt.Errorf("inserting default config: %w", err)
	}

	return r.selectConfig(ctx, ruleID)
}

// UpsertConfig stores the rule's delivery policy, replacing any existing one
func (r *Repository) UpsertConfig(ctx context.Context, cfg webhook.Config) (webhook.Config, error) {
	if cfg.ID == "" {
		cfg.ID = uuid.New().String()
	}
	headers, err := json.Marshal(cfg.CustomHeaders)
	if err != nil {
		return webhook.Config{}, fmt.Errorf("encoding custom headers: %w", err)
	}

	query := `
		INSERT INTO webhook_configs (` + configColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (routing_rule_id) DO UPDATE SET
			custom_headers = EXCLUDED.custom_headers,
			timeout_ms = EXCLUDED.timeout_ms,
			retry_enabled = EXCLUDED.retry_enabled,
			max_retries = EXCLUDED.max_retries,
			retry_delay_ms = EXCLUDED.retry_delay_ms,
			retry_backoff_multiplier = EXCLUDED.retry_backoff_multiplier
		RETURNING ` + configColumns + `
	`

	row := r.DB.QueryRowContext(ctx, query,
		cfg.ID, cfg.RoutingRuleID, headers, cfg.TimeoutMS, cfg.RetryEnabled,
		cfg.MaxRetries, cfg.RetryDelayMS, cfg.RetryBackoffMultiplier)

	saved, err := scanConfig(row)
	if err != nil {
		return webhook.Config{}, fmt.Errorf("upserting config: %w", err)
	}

	return saved, nil
}

func (r *Repository) selectConfig(ctx context.Context, ruleID string) (webhook.Config, error) {
	query := `SELECT ` + configColumns + ` FROM webhook_configs WHERE routing_rule_id = $1`

	cfg, err := scanConfig(r.DB.QueryRowContext(ctx, query, ruleID))
	if err == sql.ErrNoRows {
		return webhook.Config{}, webhook.ErrNotFound
	}
	if err != nil {
		return webhook.Config{}, fmt.Errorf("selecting config: %w", err)
	}

	return cfg, nil
}

const logColumns = `id, lead_id, routing_rule_id, webhook_url, request_headers, request_body,
	response_status, response_headers, response_body, duration_ms,
	attempt_number, max_attempts, is_retry, parent_log_id,
	status, error_message, error_type, created_at`

const qualifiedLogColumns = `l.id, l.lead_id, l.routing_rule_id, l.webhook_url, l.request_headers, l.request_body,
	l.response_status, l.response_headers, l.response_body, l.duration_ms,
	l.attempt_number, l.max_attempts, l.is_retry, l.parent_log_id,
	l.status, l.error_message, l.error_type, l.created_at`

// InsertLog stores a new attempt record; id and created_at are set here
func (r *Repository) InsertLog(ctx context.Context, log webhook.Log) (webhook.Log, error) {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}

	reqHeaders, err := json.Marshal(log.RequestHeaders)
	if err != nil {
		return webhook.Log{}, fmt.Errorf("encoding request headers: %w", err)
	}

	query := `
		INSERT INTO webhook_logs
			(id, lead_id, routing_rule_id, webhook_url, request_headers, request_body,
			attempt_number, max_attempts, is_retry, parent_log_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err = r.DB.ExecContext(ctx, query,
		log.ID, log.LeadID, log.RoutingRuleID, log.WebhookURL, reqHeaders, []byte(log.RequestBody),
		log.AttemptNumber, log.MaxAttempts, log.IsRetry, log.ParentLogID,
		log.Status.String(), log.CreatedAt)
	if err != nil {
		return webhook.Log{}, fmt.Errorf("inserting log: %w", err)
	}

	return log, nil
}

// FinishLog writes the attempt outcome onto a pending log
func (r *Repository) FinishLog(ctx context.Context, id string, out webhook.Outcome) (webhook.Log, error) {
	respHeaders, err := json.Marshal(out.ResponseHeaders)
	if err != nil {
		return webhook.Log{}, fmt.Errorf("encoding response headers: %w", err)
	}

	var errType *string
	if out.ErrorType != nil {
		s := out.ErrorType.String()
		errType = &s
	}

	query := `
		UPDATE webhook_logs
		SET response_status = $1, response_headers = $2, response_body = $3,
			duration_ms = $4, status = $5, error_message = $6, error_type = $7
		WHERE id = $8
		RETURNING ` + logColumns + `
	`

	row := r.DB.QueryRowContext(ctx, query,
		out.ResponseStatus, respHeaders, out.ResponseBody,
		out.DurationMS, out.Status.String(), out.ErrorMessage, errType, id)

	log, err := scanLog(row)
	if err == sql.ErrNoRows {
		return webhook.Log{}, webhook.ErrNotFound
	}
	if err != nil {
		return webhook.Log{}, fmt.Errorf("finishing log: %w", err)
	}

	return log, nil
}

// MarkLogRetrying flags a failed attempt whose follow-up has been queued
func (r *Repository) MarkLogRetrying(ctx context.Context, id string) error {
	query := "UPDATE webhook_logs SET status = 'retrying' WHERE id = $1"

	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("marking log retrying: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rows == 0 {
		return webhook.ErrNotFound
	}

	return nil
}

// LogByID returns one attempt record
/* LogByID returns one attempt record with the owning rule's client name
 * joined in; the rule may have been deleted since the attempt, then the
 * client name is empty
 */
func (r *Repository) LogByID(ctx context.Context, id string) (webhook.Log, error) {
	query := `
		SELECT ` + qualifiedLogColumns + `, COALESCE(r.client_name, '')
		FROM webhook_logs l
		LEFT JOIN routing_rules r ON r.id = l.routing_rule_id
		WHERE l.id = $1
	`

	var clientName string
	log, err := scanLog(r.DB.QueryRowContext(ctx, query, id), &clientName)
	if err == sql.ErrNoRows {
		return webhook.Log{}, webhook.ErrNotFound
	}
	if err != nil {
		return webhook.Log{}, fmt.Errorf("selecting log: %w", err)
	}
	log.ClientName = clientName

	return log, nil
}

// ListLogs returns a page of a rule's logs, newest first, plus the unpaged total
func (r *Repository) ListLogs(ctx context.Context, ruleID string, filter webhook.LogFilter) ([]webhook.Log, int, error) {
	where := "WHERE routing_rule_id = $1"
	args := []any{ruleID}
	if filter.Status != nil {
		where += " AND status = $2"
		args = append(args, filter.Status.String())
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM webhook_logs " + where
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting logs: %w", err)
	}

	query := fmt.Sprintf(`SELECT `+logColumns+` FROM webhook_logs %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("selecting logs: %w", err)
	}
	defer rows.Close()

	var logs []webhook.Log
	for rows.Next() {
		log, err := scanLog(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning log: %w", err)
		}
		logs = append(logs, log)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating logs: %w", err)
	}

	return logs, total, nil
}

// Stats aggregates a rule's outcomes over the trailing window
func (r *Repository) Stats(ctx context.Context, ruleID string, days int) (webhook.Stats, error) {
	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'success'),
			COUNT(*) FILTER (WHERE status = 'failed'),
			COALESCE(AVG(duration_ms), 0)
		FROM webhook_logs
		WHERE routing_rule_id = $1 AND created_at >= $2
	`

	since := time.Now().UTC().AddDate(0, 0, -days)

	var s webhook.Stats
	err := r.DB.QueryRowContext(ctx, query, ruleID, since).Scan(
		&s.TotalCalls, &s.SuccessCalls, &s.FailedCalls, &s.AvgDurationMS)
	if err != nil {
		return webhook.Stats{}, fmt.Errorf("aggregating stats: %w", err)
	}

	if s.TotalCalls > 0 {
		s.SuccessRate = float64(s.SuccessCalls) / float64(s.TotalCalls) * 100
	}

	return s, nil
}

// Enqueue schedules a future attempt; id and created_at are set here
func (r *Repository) Enqueue(ctx context.Context, entry webhook.QueueEntry) (webhook.QueueEntry, error) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO webhook_queue
			(id, lead_id, routing_rule_id, webhook_log_id, status, priority,
			attempt_number, max_attempts, scheduled_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.DB.ExecContext(ctx, query,
		entry.ID, entry.LeadID, entry.RoutingRuleID, entry.WebhookLogID,
		entry.Status.String(), entry.Priority, entry.AttemptNumber, entry.MaxAttempts,
		entry.ScheduledAt, entry.CreatedAt)
	if err != nil {
		return webhook.QueueEntry{}, fmt.Errorf("enqueuing entry: %w", err)
	}

	return entry, nil
}

// DueEntries returns pending entries whose scheduled time has passed, with
// the rule's destination joined in for dispatch
func (r *Repository) DueEntries(ctx context.Context, now time.Time, limit int) ([]webhook.QueueEntry, error) {
	query := `
		SELECT q.id, q.lead_id, q.routing_rule_id, q.webhook_log_id, q.status, q.priority,
			q.attempt_number, q.max_attempts, q.scheduled_at, q.started_at, q.completed_at,
			q.error_message, q.created_at, r.webhook_url, r.client_name
		FROM webhook_queue q
		JOIN routing_rules r ON r.id = q.routing_rule_id
		WHERE q.status = 'pending' AND q.scheduled_at <= $1
		ORDER BY q.priority ASC, q.scheduled_at ASC
		LIMIT $2
	`

	rows, err := r.DB.QueryContext(ctx, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("selecting due entries: %w", err)
	}
	defer rows.Close()

	var entries []webhook.QueueEntry
	for rows.Next() {
		var (
			e      webhook.QueueEntry
			status string
		)
		err := rows.Scan(
			&e.ID, &e.LeadID, &e.RoutingRuleID, &e.WebhookLogID, &status, &e.Priority,
			&e.AttemptNumber, &e.MaxAttempts, &e.ScheduledAt, &e.StartedAt, &e.CompletedAt,
			&e.ErrorMessage, &e.CreatedAt, &e.WebhookURL, &e.ClientName,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning queue entry: %w", err)
		}
		e.Status = webhook.NewQueueStatus(status)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating queue entries: %w", err)
	}

	return entries, nil
}

/* ClaimEntry atomically transitions pending -> processing
 * The status guard in the WHERE clause is what makes concurrent processors
 * safe: only one UPDATE can win
 */
func (r *Repository) ClaimEntry(ctx context.Context, id string, startedAt time.Time) (bool, error) {
	query := `
		UPDATE webhook_queue
		SET status = 'processing', started_at = $1
		WHERE id = $2 AND status = 'pending'
	`

	result, err := r.DB.ExecContext(ctx, query, startedAt, id)
	if err != nil {
		return false, fmt.Errorf("claiming queue entry: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("getting rows affected: %w", err)
	}

	return rows == 1, nil
}

// CompleteEntry marks a claimed entry processed (regardless of delivery outcome)
func (r *Repository) CompleteEntry(ctx context.Context, id string, at time.Time) error {
	query := `
		UPDATE webhook_queue
		SET status = 'completed', completed_at = $1
		WHERE id = $2
	`

	result, err := r.DB.ExecContext(ctx, query, at, id)
	if err != nil {
		return fmt.Errorf("completing queue entry: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rows == 0 {
		return webhook.ErrNotFound
	}

	return nil
}

// FailEntry marks a claimed entry as failed with the reason
func (r *Repository) FailEntry(ctx context.Context, id string, at time.Time, message string) error {
	query := `
		UPDATE webhook_queue
		SET status = 'failed', completed_at = $1, error_message = $2
		WHERE id = $3
	`

	result, err := r.DB.ExecContext(ctx, query, at, message, id)
	if err != nil {
		return fmt.Errorf("failing queue entry: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rows == 0 {
		return webhook.ErrNotFound
	}

	return nil
}

// CreateTables creates the delivery tables (useful for tests)
func (r *Repository) CreateTables(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS webhook_configs (
			id TEXT PRIMARY KEY,
			routing_rule_id TEXT NOT NULL UNIQUE,
			custom_headers JSONB NOT NULL DEFAULT '{}',
			timeout_ms INTEGER NOT NULL,
			retry_enabled BOOLEAN NOT NULL DEFAULT true,
			max_retries INTEGER NOT NULL,
			retry_delay_ms INTEGER NOT NULL,
			retry_backoff_multiplier DOUBLE PRECISION NOT NULL
		);
		CREATE TABLE IF NOT EXISTS webhook_logs (
			id TEXT PRIMARY KEY,
			lead_id TEXT NOT NULL,
			routing_rule_id TEXT NOT NULL,
			webhook_url TEXT NOT NULL,
			request_headers JSONB NOT NULL DEFAULT '{}',
			request_body JSONB NOT NULL,
			response_status INTEGER,
			response_headers JSONB,
			response_body TEXT,
			duration_ms BIGINT,
			attempt_number INTEGER NOT NULL DEFAULT 1,
			max_attempts INTEGER NOT NULL DEFAULT 4,
			is_retry BOOLEAN NOT NULL DEFAULT false,
			parent_log_id TEXT,
			status TEXT NOT NULL DEFAULT 'pending',
			error_message TEXT,
			error_type TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS idx_webhook_logs_rule_created ON webhook_logs (routing_rule_id, created_at DESC);
		CREATE TABLE IF NOT EXISTS webhook_queue (
			id TEXT PRIMARY KEY,
			lead_id TEXT NOT NULL,
			routing_rule_id TEXT NOT NULL,
			webhook_log_id TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			priority INTEGER NOT NULL,
			attempt_number INTEGER NOT NULL,
			max_attempts INTEGER NOT NULL,
			scheduled_at TIMESTAMPTZ NOT NULL,
			started_at TIMESTAMPTZ,
			completed_at TIMESTAMPTZ,
			error_message TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS idx_webhook_queue_due ON webhook_queue (status, scheduled_at, priority)
	`

	if _, err := r.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConfig(row rowScanner) (webhook.Config, error) {
	var (
		cfg     webhook.Config
		headers []byte
	)

	err := row.Scan(
		&cfg.ID,
		&cfg.RoutingRuleID,
		&headers,
		&cfg.TimeoutMS,
		&cfg.RetryEnabled,
		&cfg.MaxRetries,
		&cfg.RetryDelayMS,
		&cfg.RetryBackoffMultiplier,
	)
	if err != nil {
		return webhook.Config{}, err
	}

	cfg.CustomHeaders = map[string]string{}
	if len(headers) > 0 {
		if err := json.Unmarshal(headers, &cfg.CustomHeaders); err != nil {
			return webhook.Config{}, fmt.Errorf("decoding custom headers: %w", err)
		}
	}

	return cfg, nil
}

// scanLog reads one log row; extra receives any columns joined after the
// log's own
func scanLog(row rowScanner, extra ...any) (webhook.Log, error) {
	var (
		log         webhook.Log
		reqHeaders  []byte
		respHeaders []byte
		status      string
		errType     *string
		body        []byte
	)

	dest := []any{
		&log.ID,
		&log.LeadID,
		&log.RoutingRuleID,
		&log.WebhookURL,
		&reqHeaders,
		&body,
		&log.ResponseStatus,
		&respHeaders,
		&log.ResponseBody,
		&log.DurationMS,
		&log.AttemptNumber,
		&log.MaxAttempts,
		&log.IsRetry,
		&log.ParentLogID,
		&status,
		&log.ErrorMessage,
		&errType,
		&log.CreatedAt,
	}
	dest = append(dest, extra...)

	err := row.Scan(dest...)
	if err != nil {
		return webhook.Log{}, err
	}

	log.RequestBody = json.RawMessage(body)
	log.Status = webhook.NewStatus(status)
	if errType != nil {
		et := webhook.NewErrorType(*errType)
		log.ErrorType = &et
	}
	if len(reqHeaders) > 0 {
		if err := json.Unmarshal(reqHeaders, &log.RequestHeaders); err != nil {
			return webhook.Log{}, fmt.Errorf("decoding request headers: %w", err)
		}
	}
	if len(respHeaders) > 0 {
		if err := json.Unmarshal(respHeaders, &log.ResponseHeaders); err != nil {
			return webhook.Log{}, fmt.Errorf("decoding response headers: %w", err)
		}
	}

	return log, nil
}
