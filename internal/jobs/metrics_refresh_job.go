package jobs

import (
	"context"
	"time"

	"summit-insurance/portal/internal/logging"
	"summit-insurance/portal/internal/metrics"
)

// StatsSource provides the counts the workflow gauges report
type StatsSource interface {
	CountPendingSignupRequests(ctx context.Context) (int64, error)
	CountAllowlistEntries(ctx context.Context) (int64, error)
}

// MetricsRefreshJob keeps the pending-request and allowlist gauges
// aligned with the database
type MetricsRefreshJob struct {
	stats      StatsSource
	metricsReg *metrics.MetricsRegistry
}

func NewMetricsRefreshJob(stats StatsSource, metricsReg *metrics.MetricsRegistry) *MetricsRefreshJob {
	return &MetricsRefreshJob{
		stats:      stats,
		metricsReg: metricsReg,
	}
}

// Run refreshes both gauges. Failures are logged and skipped so a flaky
// query never leaves a stale panic behind the scheduler.
func (j *MetricsRefreshJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pending, err := j.stats.CountPendingSignupRequests(ctx)
	if err != nil {
		logging.Warn("Metrics refresh: pending request count failed", "error", err)
	} else {
		j.metricsReg.PendingSignupRequests.Set(float64(pending))
	}

	allowed, err := j.stats.CountAllowlistEntries(ctx)
	if err != nil {
		logging.Warn("Metrics refresh: allowlist count failed", "error", err)
	} else {
		j.metricsReg.AllowlistSize.Set(float64(allowed))
	}
}
