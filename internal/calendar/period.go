package calendar

import (
	"time"

	"seasfinance/internal/domain"
	"seasfinance/internal/domain/models"
)

const (
	periodStartDay = 12
	periodEndDay   = 11
)

// Window is an inclusive date range.
type Window struct {
	Start models.Date
	End   models.Date
}

// ResolvePeriod returns the billing window for the cycle starting in month:
// the 12th of month through the 11th of the following month. A start on a
// weekend moves forward to Monday; an end on a weekend moves back to Friday.
// Holidays never move the window edges.
func ResolvePeriod(year, month int) (Window, error) {
	key, err := domain.NewMonthKey(year, month)
	if err != nil {
		return Window{}, err
	}

	start := models.NewDate(key.Year, key.Month, periodStartDay)
	switch start.Weekday() {
	case time.Saturday:
		start = start.AddDays(2)
	case time.Sunday:
		start = start.AddDays(1)
	}

	// time.Date normalises month 13 into January of the next year.
	end := models.NewDate(key.Year, key.Month+1, periodEndDay)
	switch end.Weekday() {
	case time.Saturday:
		end = end.AddDays(-1)
	case time.Sunday:
		end = end.AddDays(-2)
	}

	return Window{Start: start, End: end}, nil
}

// BillingPeriod resolves the window for (year, month) and derives its working
// days, maximum billable hours and the holidays falling inside it.
func BillingPeriod(year, month int) (models.BillingPeriod, error) {
	w, err := ResolvePeriod(year, month)
	if err != nil {
		return models.BillingPeriod{}, err
	}

	days := CountWorkingDays(w.Start, w.End)
	holidays := []models.Date{}
	for y := w.Start.Year(); y <= w.End.Year()+1; y++ {
		for _, d := range HolidayDates(y) {
			if !d.Before(w.Start.Time) && !d.After(w.End.Time) {
				holidays = append(holidays, d)
			}
		}
	}

	return models.BillingPeriod{
		Year:        year,
		Month:       month,
		Period:      domain.PeriodName(month),
		StartDate:   w.Start,
		EndDate:     w.End,
		WorkingDays: days,
		MaxHours:    MaxHours(days),
		Holidays:    holidays,
	}, nil
}
