package models

import "time"

// DateOf returns the calendar day of t, as seen in t's location, at midnight UTC.
// Loan dates are compared at day granularity only.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
