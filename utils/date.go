package utils

import (
	"fmt"
	"time"
)

// ISODateLayout is the calendar-date format used everywhere in the API
// (log dates, streak bookkeeping). Dates are date-only and compared as
// strings, which works because the layout is lexicographically ordered.
const ISODateLayout = "2006-01-02"

// ParseISODate validates a YYYY-MM-DD string. Parsing is pinned to UTC so
// date arithmetic never shifts across a DST boundary or the server's zone.
func ParseISODate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(ISODateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// PreviousDay returns the calendar day before the given YYYY-MM-DD date.
// The computation is relative to the date itself, not to the wall clock,
// so a backdated submission sees the yesterday of its own date.
func PreviousDay(date string) (string, error) {
	t, err := ParseISODate(date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, -1).Format(ISODateLayout), nil
}

// TodayISO returns today's date in UTC as YYYY-MM-DD.
func TodayISO() string {
	return time.Now().UTC().Format(ISODateLayout)
}
