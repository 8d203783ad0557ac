package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// centralOffset is the fixed UTC-6 offset used to compute the schedule date.
// It does not track daylight saving; the upstream schedule keys on this fixed offset.
const centralOffset = -6 * time.Hour

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// CentralDate returns the calendar date for t shifted to the fixed UTC-6 offset.
func CentralDate(t time.Time) string {
	return t.UTC().Add(centralOffset).Format(DateLayout)
}
