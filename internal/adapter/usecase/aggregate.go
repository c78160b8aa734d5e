package usecase

import (
	"cmp"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"campaign-report/internal/core/domain"
)

const allCampaigns = "All"

// buildCard describes the selection. The campaign name is taken from the
// first record when a campaign filter is active.
func buildCard(rows []domain.JoinedRecord, campaignID string, w dateWindow) domain.CampaignCard {
	name := allCampaigns
	if campaignID != "" && len(rows) > 0 {
		name = rows[0].CampaignName
	}
	return domain.CampaignCard{
		CampaignName: name,
		Start:        w.start,
		End:          w.end,
		Days:         domain.DaysInclusive(w.start, w.end),
	}
}

func sumMetrics(rows []domain.JoinedRecord) domain.CurrentMetrics {
	var m domain.CurrentMetrics
	for _, r := range rows {
		m.Impressions += r.Impressions
		m.Clicks += r.Clicks
		m.Views += r.Views
	}
	return m
}

// dailyTrend groups rows by day: impressions are summed, CPM is averaged.
// Days without rows are absent.
func dailyTrend(rows []domain.JoinedRecord) []domain.TrendPoint {
	type dayAcc struct {
		impressions int64
		cpm         []float64
	}
	byDay := make(map[time.Time]*dayAcc)
	for _, r := range rows {
		d := domain.Day(r.Date)
		acc, ok := byDay[d]
		if !ok {
			acc = &dayAcc{}
			byDay[d] = acc
		}
		acc.impressions += r.Impressions
		acc.cpm = append(acc.cpm, r.CPM)
	}

	points := make([]domain.TrendPoint, 0, len(byDay))
	for d, acc := range byDay {
		points = append(points, domain.TrendPoint{
			Date:        d,
			Impressions: acc.impressions,
			CPM:         roundCPM(acc.cpm),
		})
	}
	slices.SortFunc(points, func(a, b domain.TrendPoint) int {
		return a.Date.Compare(b.Date)
	})
	return points
}

// summarizeCampaigns rolls rows up per (campaign id, name): first and last
// day plus mean scores. Rows are expected to be the unfiltered join.
func summarizeCampaigns(rows []domain.JoinedRecord) []domain.CampaignSummary {
	type groupKey struct {
		id, name string
	}
	type groupAcc struct {
		summary                   domain.CampaignSummary
		effectiveness, media, cre []float64
	}

	groups := make(map[groupKey]*groupAcc)
	for _, r := range rows {
		d := domain.Day(r.Date)
		k := groupKey{id: r.CampaignID, name: r.CampaignName}
		g, ok := groups[k]
		if !ok {
			g = &groupAcc{summary: domain.CampaignSummary{
				CampaignID:   r.CampaignID,
				CampaignName: r.CampaignName,
				StartDate:    d,
				EndDate:      d,
			}}
			groups[k] = g
		}
		if d.Before(g.summary.StartDate) {
			g.summary.StartDate = d
		}
		if d.After(g.summary.EndDate) {
			g.summary.EndDate = d
		}
		g.effectiveness = append(g.effectiveness, r.EffectivenessScore)
		g.media = append(g.media, r.MediaScore)
		g.cre = append(g.cre, r.CreativeScore)
	}

	table := make([]domain.CampaignSummary, 0, len(groups))
	for _, g := range groups {
		s := g.summary
		s.Effectiveness = roundScore(g.effectiveness)
		s.Media = roundScore(g.media)
		s.Creative = roundScore(g.cre)
		table = append(table, s)
	}

	// Deterministic base order, then a stable sort on the start day.
	slices.SortFunc(table, func(a, b domain.CampaignSummary) int {
		return cmp.Or(
			strings.Compare(a.CampaignID, b.CampaignID),
			strings.Compare(a.CampaignName, b.CampaignName),
		)
	})
	slices.SortStableFunc(table, func(a, b domain.CampaignSummary) int {
		return a.StartDate.Compare(b.StartDate)
	})
	return table
}

// mean averages the finite values, skipping NULLs (NaN). ok is false when
// nothing was averaged.
func mean(values []float64) (m float64, ok bool) {
	var (
		sum float64
		n   int
	)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0, false
	}
	if !math.IsInf(sum, 0) {
		return sum / float64(n), true
	}
	// The sum overflowed; scaling each term first keeps the mean finite.
	m = 0
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		m += v / float64(n)
	}
	return m, true
}

// roundCPM averages values and rounds half away from zero to 2 decimals.
func roundCPM(values []float64) float64 {
	m, ok := mean(values)
	if !ok {
		return 0
	}
	f, _ := decimal.NewFromFloat(m).Round(2).Float64()
	return f
}

// roundScore averages values and rounds half away from zero to an integer.
func roundScore(values []float64) int64 {
	m, ok := mean(values)
	if !ok {
		return 0
	}
	return decimal.NewFromFloat(m).Round(0).IntPart()
}
