package jobs

import (
	"time"

	"github.com/robfig/cron/v3"

	"summit-insurance/portal/internal/logging"
)

// Scheduler manages the background cron jobs
type Scheduler struct {
	cron *cron.Cron
}

// NewScheduler registers the recurring jobs and returns the scheduler
func NewScheduler(refresh *MetricsRefreshJob) *Scheduler {
	c := cron.New(cron.WithLocation(time.UTC))

	// Refresh the workflow gauges every minute
	if _, err := c.AddJob("* * * * *", refresh); err != nil {
		logging.Error("Failed to register metrics refresh job", "error", err)
	}

	return &Scheduler{cron: c}
}

// Start begins the cron scheduler and prime-runs the jobs once so the
// gauges are populated before the first tick.
func (s *Scheduler) Start() {
	for _, entry := range s.cron.Entries() {
		go entry.Job.Run()
	}
	s.cron.Start()
	logging.Info("Background scheduler started", "jobs", len(s.cron.Entries()))
}

// Stop gracefully stops the scheduler, waiting for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logging.Info("Background scheduler stopped")
}
