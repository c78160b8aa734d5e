package domain

import (
	"strings"
	"time"
)

const (
	// DayLayout is the wire format of calendar days, both in request
	// parameters and in report keys.
	DayLayout = "2006-01-02"
	// RangeLayout formats the bounds shown on the campaign card.
	RangeLayout = "02 Jan 2006"
)

// sourceDayLayouts are accepted when coercing date columns read as text.
var sourceDayLayouts = []string{
	DayLayout,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04:05-07",
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05.999999-07",
	"2006-01-02 15:04:05.999999-07:00",
}

// Day truncates t to midnight of the calendar day it carries in its own
// zone, returned in UTC. A stored "2024-03-01 23:00:00-05" is March 1.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseSourceDay coerces a stored date value into a calendar day. The zero
// time is returned for values that cannot be parsed; such days never match
// a join key.
func ParseSourceDay(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range sourceDayLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Day(t)
		}
	}
	return time.Time{}
}

// DaysInclusive returns the number of calendar days from start to end,
// counting both ends.
func DaysInclusive(start, end time.Time) int {
	const secondsPerDay = 24 * 60 * 60
	return int((Day(end).Unix()-Day(start).Unix())/secondsPerDay) + 1
}
