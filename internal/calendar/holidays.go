// Package calendar computes US federal holidays, contract billing windows and
// working-day counts. Everything here is pure and safe for concurrent use.
package calendar

import (
	"sort"
	"time"

	"seasfinance/internal/domain/models"
)

type Holiday struct {
	Name string      `json:"name"`
	Date models.Date `json:"date"`
}

// FederalHolidays returns the ten observed US federal holidays for year,
// sorted by date. Fixed-date holidays that land on a weekend are observed
// on the nearest weekday (Saturday to Friday, Sunday to Monday), so every
// returned date is a weekday. New Year's Day on a Saturday is observed on
// December 31st of the previous year and is still reported under year.
func FederalHolidays(year int) []Holiday {
	hs := []Holiday{
		{"New Year's Day", observed(models.NewDate(year, time.January, 1))},
		{"Martin Luther King Jr. Day", NthWeekday(year, time.January, time.Monday, 3)},
		{"Presidents Day", NthWeekday(year, time.February, time.Monday, 3)},
		{"Memorial Day", LastWeekday(year, time.May, time.Monday)},
		{"Independence Day", observed(models.NewDate(year, time.July, 4))},
		{"Labor Day", NthWeekday(year, time.September, time.Monday, 1)},
		{"Columbus Day", NthWeekday(year, time.October, time.Monday, 2)},
		{"Veterans Day", observed(models.NewDate(year, time.November, 11))},
		{"Thanksgiving Day", NthWeekday(year, time.November, time.Thursday, 4)},
		{"Christmas Day", observed(models.NewDate(year, time.December, 25))},
	}
	sort.SliceStable(hs, func(i, j int) bool { return hs[i].Date.Before(hs[j].Date.Time) })
	return hs
}

// HolidayDates is FederalHolidays without the names.
func HolidayDates(year int) []models.Date {
	hs := FederalHolidays(year)
	out := make([]models.Date, len(hs))
	for i, h := range hs {
		out[i] = h.Date
	}
	return out
}

// NthWeekday returns the nth (1-based) occurrence of weekday w in the month.
func NthWeekday(year int, month time.Month, w time.Weekday, n int) models.Date {
	first := models.NewDate(year, month, 1)
	offset := (int(w) - int(first.Weekday()) + 7) % 7
	return first.AddDays(offset + (n-1)*7)
}

// LastWeekday returns the last occurrence of weekday w in the month.
func LastWeekday(year int, month time.Month, w time.Weekday) models.Date {
	last := models.NewDate(year, month+1, 1).AddDays(-1)
	back := (int(last.Weekday()) - int(w) + 7) % 7
	return last.AddDays(-back)
}

func observed(d models.Date) models.Date {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDays(-1)
	case time.Sunday:
		return d.AddDays(1)
	}
	return d
}

// HolidaySet is a lookup of holiday dates.
type HolidaySet map[int]struct{}

func dayKey(d models.Date) int {
	return d.Year()*10000 + int(d.Month())*100 + d.Day()
}

// HolidaysForYears unions the holiday sets of every year in [from, to].
func HolidaysForYears(from, to int) HolidaySet {
	set := HolidaySet{}
	for y := from; y <= to; y++ {
		for _, d := range HolidayDates(y) {
			set[dayKey(d)] = struct{}{}
		}
	}
	return set
}

func (s HolidaySet) Contains(d models.Date) bool {
	_, ok := s[dayKey(d)]
	return ok
}
