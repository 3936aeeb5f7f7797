package metrics

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/marcelsud/lead-router/webhook/redis"
)

/* StoreCollector reads metrics straight from the delivery tables
 * Cheap GROUP BY queries; no extra bookkeeping is written anywhere
 */
type StoreCollector struct {
	db *sql.DB

	// heartbeats is optional; without Redis the worker list is empty
	heartbeats *redis.Cache
}

// NewStoreCollector creates a collector over the delivery database
func NewStoreCollector(db *sql.DB, heartbeats *redis.Cache) *StoreCollector {
	return &StoreCollector{
		db:         db,
		heartbeats: heartbeats,
	}
}

// Collect gathers all metrics in one pass
func (c *StoreCollector) Collect(ctx context.Context) (Metrics, error) {
	queueDepths, err := c.GetQueueDepths(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("collecting queue depths: %w", err)
	}

	statusCounts, err := c.GetStatusCounts(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("collecting status counts: %w", err)
	}

	throughput, err := c.GetThroughput(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("collecting throughput: %w", err)
	}

	workers, err := c.GetActiveWorkers(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("collecting workers: %w", err)
	}

	return Metrics{
		QueueDepths:     queueDepths,
		LogStatusCounts: statusCounts,
		Throughput:      throughput,
		Workers:         workers,
		Timestamp:       time.Now().UTC(),
	}, nil
}

// GetQueueDepths returns queue entry counts grouped by status
func (c *StoreCollector) GetQueueDepths(ctx context.Context) (map[string]int64, error) {
	query := "SELECT status, COUNT(*) FROM webhook_queue GROUP BY status"

	return c.countByStatus(ctx, query)
}

// GetStatusCounts returns attempt log counts grouped by status
func (c *StoreCollector) GetStatusCounts(ctx context.Context) (map[string]int64, error) {
	query := "SELECT status, COUNT(*) FROM webhook_logs GROUP BY status"

	return c.countByStatus(ctx, query)
}

// GetThroughput counts successful deliveries over trailing windows
func (c *StoreCollector) GetThroughput(ctx context.Context) (ThroughputMetrics, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE created_at >= now() - interval '1 minute'),
			COUNT(*) FILTER (WHERE created_at >= now() - interval '5 minutes'),
			COUNT(*) FILTER (WHERE created_at >= now() - interval '15 minutes')
		FROM webhook_logs
		WHERE status = 'success'
	`

	var t ThroughputMetrics
	err := c.db.QueryRowContext(ctx, query).Scan(
		&t.LastMinute, &t.LastFiveMinutes, &t.LastFifteenMinutes)
	if err != nil {
		return ThroughputMetrics{}, fmt.Errorf("querying throughput: %w", err)
	}

	return t, nil
}

// GetActiveWorkers returns workers with a live heartbeat, if Redis is wired
func (c *StoreCollector) GetActiveWorkers(ctx context.Context) ([]WorkerInfo, error) {
	if c.heartbeats == nil {
		return nil, nil
	}

	beats, err := c.heartbeats.GetActiveWorkers(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting active workers: %w", err)
	}

	workers := make([]WorkerInfo, 0, len(beats))
	for _, b := range beats {
		workers = append(workers, WorkerInfo{
			WorkerID:      b.WorkerID,
			Status:        b.Status,
			LastHeartbeat: b.LastHeartbeat,
		})
	}

	return workers, nil
}

func (c *StoreCollector) countByStatus(ctx context.Context, query string) (map[string]int64, error) {
	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying status counts: %w", err)
	}
	defer rows.Close()

	counts := map[string]int64{}
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scanning status count: %w", err)
		}
		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating status counts: %w", err)
	}

	return counts, nil
}
