package domain

import "time"

// Report is the read model returned for a campaign report request. It is
// built per request and never stored.
type Report struct {
	Card    CampaignCard
	Metrics CurrentMetrics
	// Trend holds one point per day with data, ascending by date.
	Trend []TrendPoint
	// Table is the global per-campaign rollup, ascending by start date. It
	// ignores the request filters.
	Table []CampaignSummary
}

// CampaignCard summarises the selection: which campaign and which days.
type CampaignCard struct {
	CampaignName string
	Start        time.Time
	End          time.Time
	Days         int
}

// Range renders the card bounds, e.g. "01 Mar 2024 - 30 Mar 2024".
func (c CampaignCard) Range() string {
	return c.Start.Format(RangeLayout) + " - " + c.End.Format(RangeLayout)
}

// CurrentMetrics sums delivery counters over the selection.
type CurrentMetrics struct {
	Impressions int64
	Clicks      int64
	Views       int64
}

// TrendPoint is the volume and unit cost of a single day.
type TrendPoint struct {
	Date        time.Time
	Impressions int64
	CPM         float64 // mean CPM of the day, rounded to 2 decimals
}

// CampaignSummary is one row of the campaign table.
type CampaignSummary struct {
	CampaignID    string
	CampaignName  string
	StartDate     time.Time
	EndDate       time.Time
	Effectiveness int64
	Media         int64
	Creative      int64
}
