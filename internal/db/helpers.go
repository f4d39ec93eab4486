package db

import "time"

// NullIfEmpty stores an empty string as NULL.
func NullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// NullIfZero stores the zero time as NULL.
func NullIfZero(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
