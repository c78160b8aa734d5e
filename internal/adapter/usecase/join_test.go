package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-report/internal/core/domain"
)

func TestJoinKeepsIntersectionOfDays(t *testing.T) {
	campaigns := []domain.CampaignRecord{
		campaignRow("c1", "A", "2024-03-01", 1, 0, 0, 1),
		campaignRow("c1", "A", "2024-03-02", 2, 0, 0, 1),
		campaignRow("c1", "A", "2024-03-04", 4, 0, 0, 1),
		campaignRow("c2", "B", "2024-03-02", 5, 0, 0, 1),
	}
	scores := []domain.ScoreRecord{
		scoreRow("c1", "2024-03-02", 1, 1, 1),
		scoreRow("c1", "2024-03-03", 1, 1, 1),
		scoreRow("c1", "2024-03-04", 9, 8, 7),
		scoreRow("c3", "2024-03-02", 1, 1, 1),
	}

	joined := joinRecords(campaigns, scores)
	require.Len(t, joined, 2)
	assert.Equal(t, int64(2), joined[0].Impressions)
	assert.Equal(t, day("2024-03-02"), joined[0].Date)
	assert.Equal(t, int64(4), joined[1].Impressions)
	assert.Equal(t, 9.0, joined[1].EffectivenessScore)
	assert.Equal(t, 7.0, joined[1].CreativeScore)
}

func TestJoinDropsUnparsedDates(t *testing.T) {
	campaigns := []domain.CampaignRecord{
		{CampaignID: "c1", CampaignName: "A", Impressions: 1},
		campaignRow("c1", "A", "2024-03-01", 2, 0, 0, 1),
	}
	scores := []domain.ScoreRecord{
		{CampaignID: "c1"},
		scoreRow("c1", "2024-03-01", 1, 1, 1),
	}

	joined := joinRecords(campaigns, scores)
	require.Len(t, joined, 1)
	assert.Equal(t, int64(2), joined[0].Impressions)
}

func TestJoinIgnoresTimeOfDay(t *testing.T) {
	campaigns := []domain.CampaignRecord{{
		CampaignID: "c1",
		Date:       time.Date(2024, time.March, 1, 15, 30, 0, 0, time.UTC),
	}}
	scores := []domain.ScoreRecord{scoreRow("c1", "2024-03-01", 1, 1, 1)}

	require.Len(t, joinRecords(campaigns, scores), 1)
}

func TestJoinEmptyInputs(t *testing.T) {
	assert.Empty(t, joinRecords(nil, nil))
	assert.Empty(t, joinRecords([]domain.CampaignRecord{campaignRow("c1", "A", "2024-03-01", 1, 1, 1, 1)}, nil))
}
