package services

import (
	"context"
	"math"
	"time"

	"seasfinance/internal/domain"
	"seasfinance/internal/domain/models"
	"seasfinance/internal/repositories"
	"seasfinance/internal/utils"
)

func nowFrom(fn func() time.Time) time.Time {
	if fn != nil {
		return fn().UTC()
	}
	return utils.NowUTC()
}

// activeRoster lists employees matching f that are still employed on day.
func activeRoster(ctx context.Context, store repositories.DataSource, f models.EmployeeFilter, day time.Time) ([]models.Employee, error) {
	list, err := store.ListEmployees(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]models.Employee, 0, len(list))
	for _, e := range list {
		if e.ActiveOn(day) {
			out = append(out, e)
		}
	}
	return out, nil
}

type amountField struct {
	name string
	v    float64
}

// checkAmounts reports the first field, in order, that is negative or not a
// finite number.
func checkAmounts(fields ...amountField) error {
	for _, f := range fields {
		if math.IsInf(f.v, 0) || math.IsNaN(f.v) {
			return domain.Invalid(f.name, "must be a finite number")
		}
		if f.v < 0 {
			return domain.Invalid(f.name, "must not be negative")
		}
	}
	return nil
}

func parseMonth(field, raw string) (domain.MonthKey, error) {
	k, err := domain.ParseMonthKey(utils.TrimOrEmpty(raw))
	if err != nil {
		return domain.MonthKey{}, domain.InvalidArgumentError{Field: field, Msg: "must be YYYY-MM", Err: err}
	}
	return k, nil
}
