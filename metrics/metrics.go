package metrics

import (
	"context"
	"time"
)

// Metrics represents the current state of the delivery subsystem.
type Metrics struct {
	// QueueDepths maps queue status to the number of entries in that status
	QueueDepths map[string]int64 `json:"queue_depths"`

	// LogStatusCounts maps delivery status to count of attempt logs
	LogStatusCounts map[string]int64 `json:"log_status_counts"`

	// Throughput represents successful deliveries per time window
	Throughput ThroughputMetrics `json:"throughput"`

	// Workers lists queue workers with a live heartbeat
	Workers []WorkerInfo `json:"workers"`

	// Timestamp when metrics were collected
	Timestamp time.Time `json:"timestamp"`
}

// ThroughputMetrics represents successful deliveries over different time windows.
type ThroughputMetrics struct {
	LastMinute         int64 `json:"last_minute"`
	LastFiveMinutes    int64 `json:"last_five_minutes"`
	LastFifteenMinutes int64 `json:"last_fifteen_minutes"`
}

// WorkerInfo represents an active queue worker.
type WorkerInfo struct {
	WorkerID      string    `json:"worker_id"`
	Status        string    `json:"status"`
	LastHeartbeat time.Time `json:"last_heartbeat"`
}

// Collector defines the interface for collecting metrics from the delivery subsystem.
type Collector interface {
	// Collect gathers current metrics from the system
	Collect(ctx context.Context) (Metrics, error)

	// GetQueueDepths returns the number of queue entries per status
	GetQueueDepths(ctx context.Context) (map[string]int64, error)

	// GetStatusCounts returns the count of attempt logs by status
	GetStatusCounts(ctx context.Context) (map[string]int64, error)

	// GetThroughput returns successful deliveries over time windows
	GetThroughput(ctx context.Context) (ThroughputMetrics, error)

	// GetActiveWorkers returns queue workers with a live heartbeat
	GetActiveWorkers(ctx context.Context) ([]WorkerInfo, error)
}
