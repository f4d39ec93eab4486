package utils

import (
	"time"
)

const layoutDateTime = "2006-01-02 15:04:05"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// CurrentMonth returns the "YYYY-MM" key of now.
func CurrentMonth(now time.Time) string {
	return now.UTC().Format("2006-01")
}

// FormatDateTime formats time to "YYYY-MM-DD HH:MM:SS" UTC.
func FormatDateTime(t time.Time) string {
	return t.UTC().Format(layoutDateTime)
}
