package services

import (
	"context"
	"fmt"
	"time"

	"seasfinance/internal/cache"
	"seasfinance/internal/calc"
	"seasfinance/internal/calendar"
	"seasfinance/internal/domain"
	"seasfinance/internal/domain/models"
	"seasfinance/internal/repositories"
	"seasfinance/internal/utils"
)

type BillingService struct {
	Store     repositories.DataSource
	Cache     *cache.Cache
	Costs     CostService
	RequestID string
	Now       func() time.Time
}

type MonthlyBillingInput struct {
	Month       string
	ActualHours float64
	Notes       string
}

// RecordMonthlyBilling stores the employee's actual hours for a month,
// replacing any earlier record for the same month, and refreshes that
// month's cost summary.
func (s BillingService) RecordMonthlyBilling(ctx context.Context, employeeID string, in MonthlyBillingInput) (models.Employee, error) {
	k, err := parseMonth("month", in.Month)
	if err != nil {
		return models.Employee{}, err
	}
	if in.ActualHours < 0 {
		return models.Employee{}, domain.Invalid("actual_hours", "must not be negative")
	}
	e, err := s.Store.GetEmployee(ctx, utils.TrimOrEmpty(employeeID))
	if err != nil {
		return models.Employee{}, err
	}

	rec := calc.BillingRecord(e, k.String(), in.ActualHours, utils.NormalizeSpace(in.Notes))
	out, err := s.Store.UpsertMonthlyRecord(ctx, e.ID, rec)
	if err != nil {
		return models.Employee{}, err
	}
	utils.LogEvent(s.RequestID, "billing", "record_hours", fmt.Sprintf("id=%s month=%s hours=%s", e.ID, rec.Month, utils.FormatMoney(rec.ActualHours)))

	costs := s.Costs
	if costs.Store == nil {
		costs = CostService{Store: s.Store, RequestID: s.RequestID, Now: s.Now}
	}
	costs.refresh(ctx, k)
	return out, nil
}

// Summary compares projected and actual billing for the employees active on
// the first day of the month.
func (s BillingService) Summary(ctx context.Context, year, month int) (models.BillingSummary, error) {
	k, err := domain.NewMonthKey(year, month)
	if err != nil {
		return models.BillingSummary{}, err
	}
	employees, err := activeRoster(ctx, s.Store, models.EmployeeFilter{}, k.FirstDay())
	if err != nil {
		return models.BillingSummary{}, err
	}
	return calc.BillingSummary(k.String(), employees), nil
}

// Period resolves a billing period given as a name ("JAN-FEB") or a month
// number. Results are cached since they never change.
func (s BillingService) Period(ctx context.Context, year int, period string) (models.BillingPeriod, error) {
	month, err := domain.PeriodMonth(period)
	if err != nil {
		return models.BillingPeriod{}, err
	}
	k, err := domain.NewMonthKey(year, month)
	if err != nil {
		return models.BillingPeriod{}, err
	}
	return cache.Fetch(ctx, s.Cache, cache.BillingPeriodKey(k.String()), cache.BillingPeriodTTL,
		func(context.Context) (models.BillingPeriod, error) {
			return calendar.BillingPeriod(k.Year, int(k.Month))
		})
}
