package port

import (
	"context"

	"campaign-report/internal/core/domain"
)

// ReportRepository reads the two daily source tables. It is an outbound port
// in hexagonal architecture. Every call is a full-table read; filtering is
// never delegated to the store. Implementations must be safe for concurrent
// use.
type ReportRepository interface {
	// ListDailyCampaigns returns every row of the daily campaigns table.
	ListDailyCampaigns(ctx context.Context) ([]domain.CampaignRecord, error)
	// ListDailyScores returns every row of the daily scores table.
	ListDailyScores(ctx context.Context) ([]domain.ScoreRecord, error)
}

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
