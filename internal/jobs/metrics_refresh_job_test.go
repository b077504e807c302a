package jobs

import (
	"context"
	"errors"
	"testing"

	"summit-insurance/portal/internal/metrics"
)

type mockStatsSource struct {
	pending    int64
	pendingErr error
	allowed    int64
	allowedErr error
}

func (m *mockStatsSource) CountPendingSignupRequests(ctx context.Context) (int64, error) {
	return m.pending, m.pendingErr
}

func (m *mockStatsSource) CountAllowlistEntries(ctx context.Context) (int64, error) {
	return m.allowed, m.allowedErr
}

// Prometheus collectors register globally, so the registry is shared
// across tests.
var testRegistry = metrics.NewMetricsRegistry()

func TestMetricsRefreshJobRun(t *testing.T) {
	stats := &mockStatsSource{pending: 7, allowed: 42}

	job := NewMetricsRefreshJob(stats, testRegistry)
	job.Run()
}

func TestMetricsRefreshJobRunStoreError(t *testing.T) {
	stats := &mockStatsSource{
		pendingErr: errors.New("db down"),
		allowedErr: errors.New("db down"),
	}

	job := NewMetricsRefreshJob(stats, testRegistry)

	// Must not panic when both counts fail
	job.Run()
}
