package usecase

import (
	"fmt"
	"time"

	"campaign-report/internal/core/domain"
	"campaign-report/internal/core/port"
)

// filterCampaign keeps records of the given campaign. An empty id keeps all.
func filterCampaign(rows []domain.JoinedRecord, campaignID string) []domain.JoinedRecord {
	if campaignID == "" {
		return rows
	}
	out := make([]domain.JoinedRecord, 0, len(rows))
	for _, r := range rows {
		if r.CampaignID == campaignID {
			out = append(out, r)
		}
	}
	return out
}

// dateWindow is an inclusive range of calendar days.
type dateWindow struct {
	start time.Time
	end   time.Time
}

func (w dateWindow) contains(t time.Time) bool {
	d := domain.Day(t)
	return !d.Before(w.start) && !d.After(w.end)
}

func (w dateWindow) apply(rows []domain.JoinedRecord) []domain.JoinedRecord {
	out := make([]domain.JoinedRecord, 0, len(rows))
	for _, r := range rows {
		if w.contains(r.Date) {
			out = append(out, r)
		}
	}
	return out
}

// spanOf returns the min and max day of rows, which must be non-empty.
func spanOf(rows []domain.JoinedRecord) dateWindow {
	w := dateWindow{start: domain.Day(rows[0].Date), end: domain.Day(rows[0].Date)}
	for _, r := range rows[1:] {
		d := domain.Day(r.Date)
		if d.Before(w.start) {
			w.start = d
		}
		if d.After(w.end) {
			w.end = d
		}
	}
	return w
}

// resolveWindow narrows the span of rows by the requested bounds. Start is
// evaluated before end: the start check compares against the data's last
// day, the end check against the already narrowed start. A non-empty
// reason means there is nothing to report.
func resolveWindow(rows []domain.JoinedRecord, startDate, endDate string) (dateWindow, string, error) {
	w := spanOf(rows)

	if startDate != "" {
		start, err := time.Parse(domain.DayLayout, startDate)
		if err != nil {
			return w, "", &port.ValidationError{Field: "start_date", Value: startDate}
		}
		if start.After(w.end) {
			return w, fmt.Sprintf("No data found. start_date %s is after all campaign data.", startDate), nil
		}
		if start.After(w.start) {
			w.start = start
		}
	}

	if endDate != "" {
		end, err := time.Parse(domain.DayLayout, endDate)
		if err != nil {
			return w, "", &port.ValidationError{Field: "end_date", Value: endDate}
		}
		if end.Before(w.start) {
			return w, fmt.Sprintf("No data found. end_date %s is before start_date.", endDate), nil
		}
		if end.Before(w.end) {
			w.end = end
		}
	}

	return w, "", nil
}
