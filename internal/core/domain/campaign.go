package domain

import "time"

// CampaignRecord is one day of delivery for a campaign, as stored in
// tbl_daily_campaigns. Counters are non-negative; CPM is NaN when the source
// column was NULL.
type CampaignRecord struct {
	CampaignID   string
	CampaignName string
	Date         time.Time
	Impressions  int64
	Clicks       int64
	Views        int64
	CPM          float64 // cost per thousand impressions
}
