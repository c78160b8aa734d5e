package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var demoCampaigns = []string{"Spring Launch", "Summer Sale", "Back to School", "Holiday Push", "Brand Awareness"}

// Seed inserts demo campaigns into both daily tables. Each campaign runs for
// a few weeks; roughly one day in ten is written to only one of the tables
// so the inner join has something to drop. Existing rows are left intact.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	year, month, day := time.Now().UTC().AddDate(0, -2, 0).Date()
	base := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	batch := &pgx.Batch{}
	for i, name := range demoCampaigns {
		id := uuid.NewString()
		start := base.AddDate(0, 0, i*7)
		days := 14 + r.Intn(21)
		for d := 0; d < days; d++ {
			date := start.AddDate(0, 0, d)
			skip := r.Intn(10)
			if skip != 0 {
				impressions := 1000 + r.Intn(9000)
				batch.Queue(`INSERT INTO tbl_daily_campaigns
    (campaign_id, campaign_name, "date", impressions, clicks, views, cpm)
VALUES ($1,$2,$3,$4,$5,$6,$7) ON CONFLICT DO NOTHING`,
					id, name, date, impressions, impressions/50+r.Intn(20), impressions/3, 2+r.Float64()*8)
			}
			if skip != 1 {
				batch.Queue(`INSERT INTO tbl_daily_scores
    (campaign_id, "date", effectiveness_score, media_score, creative_score)
VALUES ($1,$2,$3,$4,$5) ON CONFLICT DO NOTHING`,
					id, date, 40+r.Float64()*60, 40+r.Float64()*60, 40+r.Float64()*60)
			}
		}
	}

	if err := pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("seed demo campaigns: %w", err)
	}
	return nil
}
