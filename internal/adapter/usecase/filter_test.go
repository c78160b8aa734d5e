package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-report/internal/core/port"
)

func TestResolveWindow(t *testing.T) {
	campaigns, scores := fixture()
	rows := joinRecords(campaigns, scores)

	tests := []struct {
		name       string
		start, end string
		wantStart  string
		wantEnd    string
		wantReason bool
	}{
		{name: "no bounds", wantStart: "2024-03-01", wantEnd: "2024-03-02"},
		{name: "start inside", start: "2024-03-02", wantStart: "2024-03-02", wantEnd: "2024-03-02"},
		{name: "start before data", start: "2023-01-01", wantStart: "2024-03-01", wantEnd: "2024-03-02"},
		{name: "start equals last day", start: "2024-03-02", end: "2024-03-02", wantStart: "2024-03-02", wantEnd: "2024-03-02"},
		{name: "end inside", end: "2024-03-01", wantStart: "2024-03-01", wantEnd: "2024-03-01"},
		{name: "end after data", end: "2030-01-01", wantStart: "2024-03-01", wantEnd: "2024-03-02"},
		{name: "start after data", start: "2024-03-03", wantReason: true},
		{name: "end before narrowed start", start: "2024-03-02", end: "2024-03-01", wantReason: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, reason, err := resolveWindow(rows, tt.start, tt.end)
			require.NoError(t, err)
			if tt.wantReason {
				assert.NotEmpty(t, reason)
				return
			}
			assert.Empty(t, reason)
			assert.Equal(t, day(tt.wantStart), w.start)
			assert.Equal(t, day(tt.wantEnd), w.end)
		})
	}
}

func TestResolveWindowValidation(t *testing.T) {
	campaigns, scores := fixture()
	rows := joinRecords(campaigns, scores)

	for _, bad := range []string{"2024-13-40", "2024/03/01", "yesterday", "2024-02-30"} {
		_, _, err := resolveWindow(rows, bad, "")
		var vErr *port.ValidationError
		require.ErrorAs(t, err, &vErr, bad)
		assert.Equal(t, "start_date", vErr.Field)
		assert.Equal(t, bad, vErr.Value)
	}

	_, _, err := resolveWindow(rows, "2024-03-01", "tomorrow")
	var vErr *port.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "end_date", vErr.Field)
}

// Request dates must be zero padded.
func TestResolveWindowRejectsUnpaddedDates(t *testing.T) {
	campaigns, scores := fixture()
	rows := joinRecords(campaigns, scores)

	_, _, err := resolveWindow(rows, "2024-3-1", "")
	var vErr *port.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "start_date", vErr.Field)
	assert.EqualError(t, err, "Invalid start_date format: 2024-3-1")

	_, _, err = resolveWindow(rows, "", "2024-03-9")
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "end_date", vErr.Field)
	assert.EqualError(t, err, "Invalid end_date format: 2024-03-9")
}

// TestFiltersAreIdempotent re-applies the same filters to an already
// filtered set and expects no change.
func TestFiltersAreIdempotent(t *testing.T) {
	campaigns, scores := fixture()
	rows := joinRecords(campaigns, scores)

	once := filterCampaign(rows, "c2")
	w, _, err := resolveWindow(once, "2024-03-02", "2024-03-05")
	require.NoError(t, err)
	once = w.apply(once)

	twice := filterCampaign(once, "c2")
	w2, _, err := resolveWindow(twice, "2024-03-02", "2024-03-05")
	require.NoError(t, err)
	twice = w2.apply(twice)

	assert.Equal(t, once, twice)
	assert.Equal(t, w, w2)
}

func TestFilterCampaignEmptyKeepsAll(t *testing.T) {
	campaigns, scores := fixture()
	rows := joinRecords(campaigns, scores)
	assert.Equal(t, rows, filterCampaign(rows, ""))
}
