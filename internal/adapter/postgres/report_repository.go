package postgres

import (
	"context"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-report/internal/core/domain"
	"campaign-report/internal/observability"
)

const (
	campaignsTable = "tbl_daily_campaigns"
	scoresTable    = "tbl_daily_scores"
)

// ReportRepository implements port.ReportRepository using pgxpool for
// PostgreSQL. Rows are coerced into typed records here: dates are rendered
// as YYYY-MM-DD regardless of the session DateStyle and parsed, NULL counters become 0 and NULL floats become NaN.
type ReportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository returns a new repository instance.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

// ListDailyCampaigns returns every row of tbl_daily_campaigns.
func (r *ReportRepository) ListDailyCampaigns(ctx context.Context) ([]domain.CampaignRecord, error) {
	query := `
        SELECT
            COALESCE(campaign_id::text, ''),
            COALESCE(campaign_name, ''),
            to_char("date", 'YYYY-MM-DD'),
            COALESCE(impressions, 0)::bigint,
            COALESCE(clicks, 0)::bigint,
            COALESCE(views, 0)::bigint,
            cpm::double precision
        FROM ` + campaignsTable
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignRecord, error) {
		var (
			rec  domain.CampaignRecord
			date pgtype.Text
			cpm  pgtype.Float8
		)
		err := row.Scan(
			&rec.CampaignID,
			&rec.CampaignName,
			&date,
			&rec.Impressions,
			&rec.Clicks,
			&rec.Views,
			&cpm,
		)
		rec.Date = parseDate(date)
		rec.CPM = floatOrNaN(cpm)
		return rec, err
	})
	if err != nil {
		return nil, err
	}
	observability.RecordRowsLoaded(campaignsTable, len(records))
	return records, nil
}

// ListDailyScores returns every row of tbl_daily_scores.
func (r *ReportRepository) ListDailyScores(ctx context.Context) ([]domain.ScoreRecord, error) {
	query := `
        SELECT
            COALESCE(campaign_id::text, ''),
            to_char("date", 'YYYY-MM-DD'),
            effectiveness_score::double precision,
            media_score::double precision,
            creative_score::double precision
        FROM ` + scoresTable
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ScoreRecord, error) {
		var (
			rec                      domain.ScoreRecord
			date                     pgtype.Text
			effectiveness, media, cr pgtype.Float8
		)
		err := row.Scan(&rec.CampaignID, &date, &effectiveness, &media, &cr)
		rec.Date = parseDate(date)
		rec.EffectivenessScore = floatOrNaN(effectiveness)
		rec.MediaScore = floatOrNaN(media)
		rec.CreativeScore = floatOrNaN(cr)
		return rec, err
	})
	if err != nil {
		return nil, err
	}
	observability.RecordRowsLoaded(scoresTable, len(records))
	return records, nil
}

// Ping verifies that the database is reachable.
func (r *ReportRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func parseDate(t pgtype.Text) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return domain.ParseSourceDay(t.String)
}

func floatOrNaN(f pgtype.Float8) float64 {
	if !f.Valid {
		return math.NaN()
	}
	return f.Float64
}
