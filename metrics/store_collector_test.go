package metrics

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCollector_GetQueueDepths(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	collector := &StoreCollector{db: db}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT status, COUNT(*) FROM webhook_queue GROUP BY status")).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("pending", 4).
			AddRow("completed", 120))

	depths, err := collector.GetQueueDepths(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), depths["pending"])
	assert.Equal(t, int64(120), depths["completed"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreCollector_GetThroughput(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	collector := &StoreCollector{db: db}

	mock.ExpectQuery(regexp.QuoteMeta("WHERE status = 'success'")).
		WillReturnRows(sqlmock.NewRows([]string{"m1", "m5", "m15"}).AddRow(3, 14, 40))

	throughput, err := collector.GetThroughput(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), throughput.LastMinute)
	assert.Equal(t, int64(40), throughput.LastFifteenMinutes)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreCollector_WorkersWithoutRedis(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	collector := &StoreCollector{db: db}

	workers, err := collector.GetActiveWorkers(context.Background())

	require.NoError(t, err)
	assert.Empty(t, workers)
}

func TestStoreCollector_Collect(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	collector := &StoreCollector{db: db}

	mock.ExpectQuery(regexp.QuoteMeta("FROM webhook_queue GROUP BY status")).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).AddRow("pending", 1))
	mock.ExpectQuery(regexp.QuoteMeta("FROM webhook_logs GROUP BY status")).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).AddRow("success", 9))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE status = 'success'")).
		WillReturnRows(sqlmock.NewRows([]string{"m1", "m5", "m15"}).AddRow(1, 2, 3))

	m, err := collector.Collect(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(1), m.QueueDepths["pending"])
	assert.Equal(t, int64(9), m.LogStatusCounts["success"])
	assert.False(t, m.Timestamp.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}
