package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"summit-insurance/portal/internal/constants"
)

// StatsRepository serves the counts behind the business gauges.
type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db}
}

func (r *StatsRepository) CountPendingSignupRequests(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, constants.CountPendingSignupRequests)
	return count, err
}

func (r *StatsRepository) CountAllowlistEntries(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, constants.CountAllowlistEntries)
	return count, err
}
