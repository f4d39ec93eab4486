package calendar

import (
	"time"

	"seasfinance/internal/domain/models"
)

// CountWorkingDays counts weekdays in [start, end] (both inclusive) that are
// not federal holidays. Holidays are taken from every year the range touches
// plus the following one, since an observed New Year's Day can fall on
// December 31st. An empty or inverted range counts zero.
func CountWorkingDays(start, end models.Date) int {
	if end.Before(start.Time) {
		return 0
	}
	return CountWorkingDaysIn(start, end, HolidaysForYears(start.Year(), end.Year()+1))
}

// CountWorkingDaysIn is CountWorkingDays against a caller-supplied holiday set.
func CountWorkingDaysIn(start, end models.Date, holidays HolidaySet) int {
	count := 0
	for d := start; !d.After(end.Time); d = d.AddDays(1) {
		if IsWorkingDay(d, holidays) {
			count++
		}
	}
	return count
}

func IsWorkingDay(d models.Date, holidays HolidaySet) bool {
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return !holidays.Contains(d)
}

// MaxHours is the billable ceiling for a number of working days.
func MaxHours(workingDays int) int {
	return workingDays * models.HoursPerWorkingDay
}
