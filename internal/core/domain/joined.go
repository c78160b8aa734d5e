package domain

import "time"

// JoinedRecord combines a CampaignRecord and a ScoreRecord that share the
// same campaign and day.
type JoinedRecord struct {
	CampaignID   string
	CampaignName string
	Date         time.Time

	Impressions int64
	Clicks      int64
	Views       int64
	CPM         float64

	EffectivenessScore float64
	MediaScore         float64
	CreativeScore      float64
}

// NewJoinedRecord merges c and s. The caller guarantees both refer to the
// same (campaign, day) key.
func NewJoinedRecord(c CampaignRecord, s ScoreRecord) JoinedRecord {
	return JoinedRecord{
		CampaignID:         c.CampaignID,
		CampaignName:       c.CampaignName,
		Date:               c.Date,
		Impressions:        c.Impressions,
		Clicks:             c.Clicks,
		Views:              c.Views,
		CPM:                c.CPM,
		EffectivenessScore: s.EffectivenessScore,
		MediaScore:         s.MediaScore,
		CreativeScore:      s.CreativeScore,
	}
}
