package usecase

import "campaign-report/internal/core/domain"

type joinKey struct {
	campaignID string
	day        int64
}

func keyOf(campaignID string, day int64) joinKey {
	return joinKey{campaignID: campaignID, day: day}
}

// joinRecords inner-joins campaigns and scores on (campaign id, day). Rows
// present in only one source are dropped, as are rows whose date could not
// be parsed. Output follows the order of campaigns.
func joinRecords(campaigns []domain.CampaignRecord, scores []domain.ScoreRecord) []domain.JoinedRecord {
	byKey := make(map[joinKey][]domain.ScoreRecord, len(scores))
	for _, s := range scores {
		if s.Date.IsZero() {
			continue
		}
		k := keyOf(s.CampaignID, domain.Day(s.Date).Unix())
		byKey[k] = append(byKey[k], s)
	}

	joined := make([]domain.JoinedRecord, 0, len(campaigns))
	for _, c := range campaigns {
		if c.Date.IsZero() {
			continue
		}
		for _, s := range byKey[keyOf(c.CampaignID, domain.Day(c.Date).Unix())] {
			joined = append(joined, domain.NewJoinedRecord(c, s))
		}
	}
	return joined
}
