package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MonthKey identifies a calendar month. Its canonical text form is "YYYY-MM".
type MonthKey struct {
	Year  int
	Month time.Month
}

// NewMonthKey validates year and month (1..12).
func NewMonthKey(year, month int) (MonthKey, error) {
	if year <= 0 {
		return MonthKey{}, InvalidArgumentError{Field: "year", Msg: fmt.Sprintf("must be positive, got %d", year)}
	}
	if month < 1 || month > 12 {
		return MonthKey{}, InvalidArgumentError{Field: "month", Msg: fmt.Sprintf("must be 1..12, got %d", month)}
	}
	return MonthKey{Year: year, Month: time.Month(month)}, nil
}

// ParseMonthKey accepts only the zero-padded "YYYY-MM" form.
func ParseMonthKey(s string) (MonthKey, error) {
	s = strings.TrimSpace(s)
	if len(s) != 7 || s[4] != '-' || !allDigits(s[:4]) || !allDigits(s[5:]) {
		return MonthKey{}, InvalidArgumentError{Field: "month", Msg: fmt.Sprintf("expected YYYY-MM, got %q", s)}
	}
	year, err := strconv.Atoi(s[:4])
	if err != nil {
		return MonthKey{}, InvalidArgumentError{Field: "month", Msg: fmt.Sprintf("expected YYYY-MM, got %q", s), Err: err}
	}
	month, err := strconv.Atoi(s[5:])
	if err != nil {
		return MonthKey{}, InvalidArgumentError{Field: "month", Msg: fmt.Sprintf("expected YYYY-MM, got %q", s), Err: err}
	}
	return NewMonthKey(year, month)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// MonthKeyOf returns the month containing t.
func MonthKeyOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
}

// FirstDay is midnight UTC on the 1st of the month.
func (k MonthKey) FirstDay() time.Time {
	return time.Date(k.Year, k.Month, 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths shifts the key by n calendar months (n may be negative).
func (k MonthKey) AddMonths(n int) MonthKey {
	return MonthKeyOf(k.FirstDay().AddDate(0, n, 0))
}

// PeriodNames maps billing cycles to the month in which they start:
// "JAN-FEB" is the cycle that starts on January 12th.
var PeriodNames = [12]string{
	"JAN-FEB", "FEB-MAR", "MAR-APR", "APR-MAY", "MAY-JUN", "JUN-JUL",
	"JUL-AUG", "AUG-SEP", "SEP-OCT", "OCT-NOV", "NOV-DEC", "DEC-JAN",
}

// PeriodMonth resolves either a period name ("JAN-FEB", case-insensitive) or a
// numeric month ("1".."12") to a month number.
func PeriodMonth(period string) (int, error) {
	p := strings.ToUpper(strings.TrimSpace(period))
	if n, err := strconv.Atoi(p); err == nil {
		if n < 1 || n > 12 {
			return 0, InvalidArgumentError{Field: "period", Msg: fmt.Sprintf("month must be 1..12, got %d", n)}
		}
		return n, nil
	}
	for i, name := range PeriodNames {
		if name == p {
			return i + 1, nil
		}
	}
	return 0, InvalidArgumentError{Field: "period", Msg: fmt.Sprintf("unknown billing period %q", period)}
}

// PeriodName is the inverse of PeriodMonth for month in 1..12.
func PeriodName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return PeriodNames[month-1]
}
