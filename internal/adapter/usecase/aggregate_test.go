package usecase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-report/internal/core/domain"
)

func TestRoundCPM(t *testing.T) {
	tests := []struct {
		values []float64
		want   float64
	}{
		{[]float64{5.0}, 5.0},
		{[]float64{2.675}, 2.68},
		{[]float64{1.005}, 1.01},
		{[]float64{1, 2, 2}, 1.67},
		{[]float64{-2.675}, -2.68},
		{[]float64{math.NaN(), 3.333}, 3.33},
		{[]float64{math.NaN()}, 0},
		{nil, 0},
		{[]float64{1e308, 1e308}, 1e308},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, roundCPM(tt.values), "%v", tt.values)
	}
}

func TestRoundScore(t *testing.T) {
	tests := []struct {
		values []float64
		want   int64
	}{
		{[]float64{70, 71}, 71},
		{[]float64{2.5}, 3},
		{[]float64{3.5}, 4},
		{[]float64{-2.5}, -3},
		{[]float64{1, 2, 2}, 2},
		{[]float64{math.Inf(1), 4}, 4},
		{[]float64{math.NaN()}, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, roundScore(tt.values), "%v", tt.values)
	}
}

func TestBuildCard(t *testing.T) {
	campaigns, scores := fixture()
	rows := joinRecords(campaigns, scores)
	w := dateWindow{start: day("2024-02-28"), end: day("2024-03-02")}

	card := buildCard(filterCampaign(rows, "c2"), "c2", w)
	assert.Equal(t, "Brand Push", card.CampaignName)
	assert.Equal(t, 4, card.Days) // leap year
	assert.Equal(t, "28 Feb 2024 - 02 Mar 2024", card.Range())

	assert.Equal(t, "All", buildCard(rows, "", w).CampaignName)
}

func TestDailyTrendIsSortedAndSparse(t *testing.T) {
	rows := joinRecords(
		[]domain.CampaignRecord{
			campaignRow("c1", "A", "2024-03-05", 5, 0, 0, 1.111),
			campaignRow("c1", "A", "2024-03-01", 1, 0, 0, 2),
			campaignRow("c2", "B", "2024-03-05", 7, 0, 0, 2.222),
		},
		[]domain.ScoreRecord{
			scoreRow("c1", "2024-03-05", 0, 0, 0),
			scoreRow("c1", "2024-03-01", 0, 0, 0),
			scoreRow("c2", "2024-03-05", 0, 0, 0),
		},
	)

	trend := dailyTrend(rows)
	require.Len(t, trend, 2)
	assert.Equal(t, day("2024-03-01"), trend[0].Date)
	assert.Equal(t, day("2024-03-05"), trend[1].Date)
	assert.Equal(t, int64(12), trend[1].Impressions)
	assert.Equal(t, 1.67, trend[1].CPM)
}

func TestSummarizeCampaignsOrdersByStartDate(t *testing.T) {
	rows := joinRecords(
		[]domain.CampaignRecord{
			campaignRow("z", "Late", "2024-04-01", 0, 0, 0, 0),
			campaignRow("a", "Later", "2024-05-01", 0, 0, 0, 0),
			campaignRow("m", "Early", "2024-01-10", 0, 0, 0, 0),
			campaignRow("m", "Early", "2024-01-01", 0, 0, 0, 0),
			campaignRow("b", "Tie", "2024-04-01", 0, 0, 0, 0),
		},
		[]domain.ScoreRecord{
			scoreRow("z", "2024-04-01", 1, 1, 1),
			scoreRow("a", "2024-05-01", 1, 1, 1),
			scoreRow("m", "2024-01-10", 10, 20, 30),
			scoreRow("m", "2024-01-01", 20, 30, 41),
			scoreRow("b", "2024-04-01", 1, 1, 1),
		},
	)

	table := summarizeCampaigns(rows)
	ids := make([]string, 0, len(table))
	for _, s := range table {
		ids = append(ids, s.CampaignID)
	}
	assert.Equal(t, []string{"m", "b", "z", "a"}, ids)

	early := table[0]
	assert.Equal(t, day("2024-01-01"), early.StartDate)
	assert.Equal(t, day("2024-01-10"), early.EndDate)
	assert.Equal(t, int64(15), early.Effectiveness)
	assert.Equal(t, int64(25), early.Media)
	assert.Equal(t, int64(36), early.Creative) // 35.5
}

func TestSummarizeCampaignsSplitsRenamedCampaign(t *testing.T) {
	rows := joinRecords(
		[]domain.CampaignRecord{
			campaignRow("c1", "Old name", "2024-01-01", 0, 0, 0, 0),
			campaignRow("c1", "New name", "2024-01-02", 0, 0, 0, 0),
		},
		[]domain.ScoreRecord{
			scoreRow("c1", "2024-01-01", 1, 1, 1),
			scoreRow("c1", "2024-01-02", 1, 1, 1),
		},
	)
	assert.Len(t, summarizeCampaigns(rows), 2)
}
