package calendar

import (
	"testing"
	"time"

	cal "github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seasfinance/internal/domain"
	"seasfinance/internal/domain/models"
)

func d(y int, m time.Month, day int) models.Date { return models.NewDate(y, m, day) }

func TestFederalHolidays2024(t *testing.T) {
	want := []string{
		"2024-01-01", "2024-01-15", "2024-02-19", "2024-05-27", "2024-07-04",
		"2024-09-02", "2024-10-14", "2024-11-11", "2024-11-28", "2024-12-25",
	}
	got := HolidayDates(2024)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i], got[i].String())
	}
}

func TestFederalHolidaysAlwaysTenWeekdays(t *testing.T) {
	for year := 1900; year <= 2100; year++ {
		hs := HolidayDates(year)
		require.Len(t, hs, 10, "year %d", year)
		for _, h := range hs {
			wd := h.Weekday()
			assert.True(t, wd != time.Saturday && wd != time.Sunday, "year %d: %s is a %s", year, h, wd)
		}
		for i := 1; i < len(hs); i++ {
			assert.True(t, hs[i-1].Before(hs[i].Time), "year %d not sorted", year)
		}
	}
}

func TestFederalHolidaysObservedShift(t *testing.T) {
	has := func(year int, want string) bool {
		for _, h := range HolidayDates(year) {
			if h.String() == want {
				return true
			}
		}
		return false
	}
	assert.True(t, has(2021, "2021-07-05"), "Jul 4 2021 is a Sunday")
	assert.True(t, has(2021, "2021-12-24"), "Dec 25 2021 is a Saturday")
	assert.True(t, has(2022, "2021-12-31"), "Jan 1 2022 is a Saturday, observed in the prior year")
	assert.True(t, has(2023, "2023-11-10"), "Nov 11 2023 is a Saturday")
}

// Cross-check every holiday against an independent calendar implementation.
func TestFederalHolidaysMatchReferenceCalendar(t *testing.T) {
	ref := []*cal.Holiday{
		us.NewYear, us.MlkDay, us.PresidentsDay, us.MemorialDay, us.IndependenceDay,
		us.LaborDay, us.ColumbusDay, us.VeteransDay, us.ThanksgivingDay, us.ChristmasDay,
	}
	for year := 2000; year <= 2035; year++ {
		got := map[string]bool{}
		for _, h := range HolidayDates(year) {
			got[h.String()] = true
		}
		for _, h := range ref {
			_, obs := h.Calc(year)
			want := models.DateOf(obs).String()
			assert.True(t, got[want], "year %d: %s expected on %s", year, h.Name, want)
		}
	}
}

func TestNthAndLastWeekday(t *testing.T) {
	assert.Equal(t, "2024-11-28", NthWeekday(2024, time.November, time.Thursday, 4).String())
	assert.Equal(t, "2025-09-01", NthWeekday(2025, time.September, time.Monday, 1).String())
	assert.Equal(t, "2025-05-26", LastWeekday(2025, time.May, time.Monday).String())
	assert.Equal(t, "2021-05-31", LastWeekday(2021, time.May, time.Monday).String())
}

func TestResolvePeriod(t *testing.T) {
	cases := []struct {
		year, month int
		start, end  string
	}{
		{2024, 1, "2024-01-12", "2024-02-09"},  // Feb 11 is a Sunday
		{2024, 3, "2024-03-12", "2024-04-11"},  // no shift
		{2024, 12, "2024-12-12", "2025-01-10"}, // Jan 11 2025 is a Saturday
		{2024, 10, "2024-10-14", "2024-11-11"}, // Oct 12 is a Saturday
		{2025, 1, "2025-01-13", "2025-02-11"},  // Jan 12 2025 is a Sunday
	}
	for _, tc := range cases {
		w, err := ResolvePeriod(tc.year, tc.month)
		require.NoError(t, err)
		assert.Equal(t, tc.start, w.Start.String(), "%d-%d start", tc.year, tc.month)
		assert.Equal(t, tc.end, w.End.String(), "%d-%d end", tc.year, tc.month)
	}
}

func TestResolvePeriodInvalid(t *testing.T) {
	for _, tc := range [][2]int{{2024, 0}, {2024, 13}, {0, 5}, {-1, 5}} {
		_, err := ResolvePeriod(tc[0], tc[1])
		require.Error(t, err)
		assert.True(t, domain.IsInvalidArgument(err))
	}
}

func TestCountWorkingDays(t *testing.T) {
	assert.Equal(t, 20, CountWorkingDays(d(2024, 1, 12), d(2024, 2, 9)), "MLK day excluded")
	assert.Equal(t, 23, CountWorkingDays(d(2024, 3, 12), d(2024, 4, 11)))
	assert.Equal(t, 0, CountWorkingDays(d(2024, 3, 9), d(2024, 3, 10)), "weekend only")
	assert.Equal(t, 0, CountWorkingDays(d(2024, 3, 12), d(2024, 3, 11)), "inverted range")
	assert.Equal(t, 1, CountWorkingDays(d(2024, 3, 12), d(2024, 3, 12)), "single day inclusive")
}

func TestCountWorkingDaysSpansYearBoundary(t *testing.T) {
	// Dec 12 2024 through Jan 11 2025 loses Christmas and New Year's Day.
	n := CountWorkingDays(d(2024, 12, 12), d(2025, 1, 11))
	assert.Equal(t, 20, n)

	onlyStartYear := HolidaysForYears(2024, 2024)
	assert.Equal(t, 21, CountWorkingDaysIn(d(2024, 12, 12), d(2025, 1, 11), onlyStartYear))
}

func TestCountWorkingDaysObservedNewYearInDecember(t *testing.T) {
	// Jan 1 2022 is observed on Fri Dec 31 2021.
	assert.Equal(t, 2, CountWorkingDays(d(2021, 12, 29), d(2021, 12, 31)))
}

func TestBillingPeriod(t *testing.T) {
	p, err := BillingPeriod(2024, 12)
	require.NoError(t, err)
	assert.Equal(t, "DEC-JAN", p.Period)
	assert.Equal(t, "2024-12-12", p.StartDate.String())
	assert.Equal(t, "2025-01-10", p.EndDate.String())
	assert.Equal(t, 20, p.WorkingDays)
	assert.Equal(t, 160, p.MaxHours)
	require.Len(t, p.Holidays, 2)
	assert.Equal(t, "2024-12-25", p.Holidays[0].String())
	assert.Equal(t, "2025-01-01", p.Holidays[1].String())

	p, err = BillingPeriod(2024, 3)
	require.NoError(t, err)
	assert.Equal(t, 184, p.MaxHours)
	assert.Empty(t, p.Holidays)
}
