package domain

import "time"

// ScoreRecord is one day of scoring for a campaign, as stored in
// tbl_daily_scores. Scores use an arbitrary scale and are NaN when NULL.
type ScoreRecord struct {
	CampaignID         string
	Date               time.Time
	EffectivenessScore float64
	MediaScore         float64
	CreativeScore      float64
}
