package services

import (
	"context"
	"fmt"
	"time"

	"seasfinance/internal/calc"
	"seasfinance/internal/domain"
	"seasfinance/internal/domain/models"
	"seasfinance/internal/repositories"
	"seasfinance/internal/utils"
)

const DefaultPercentPrecision = 1

type CostService struct {
	Store            repositories.DataSource
	PercentPrecision int
	RequestID        string
	Now              func() time.Time
}

func (s CostService) GetIndirect(ctx context.Context, year, month int) (models.IndirectCost, error) {
	k, err := domain.NewMonthKey(year, month)
	if err != nil {
		return models.IndirectCost{}, err
	}
	return s.Store.GetIndirectCost(ctx, k.String())
}

// UpsertIndirect stores the month's indirect entry with its total recomputed
// from the components, then refreshes the month's cost summary.
func (s CostService) UpsertIndirect(ctx context.Context, in models.IndirectCost) (models.IndirectCost, error) {
	k, err := parseMonth("month", in.Month)
	if err != nil {
		return models.IndirectCost{}, err
	}
	if err := checkAmounts(
		amountField{"fringe_amount", in.FringeAmount},
		amountField{"overhead_amount", in.OverheadAmount},
		amountField{"ga_amount", in.GAAmount},
		amountField{"profit_amount", in.ProfitAmount},
	); err != nil {
		return models.IndirectCost{}, err
	}
	in.Month = k.String()
	in.Notes = utils.NormalizeSpace(in.Notes)
	in.TotalAmount = calc.IndirectTotal(in)

	out, err := s.Store.UpsertIndirectCost(ctx, in)
	if err != nil {
		return models.IndirectCost{}, err
	}
	utils.LogEvent(s.RequestID, "costs", "upsert_indirect", fmt.Sprintf("month=%s total=%s", out.Month, utils.FormatMoney(out.TotalAmount)))
	s.refresh(ctx, k)
	return out, nil
}

// ProjectCosts returns the stored summary for the month, or computes one
// from current data when none has been saved yet.
func (s CostService) ProjectCosts(ctx context.Context, year, month int) (models.ProjectCostSummary, error) {
	k, err := domain.NewMonthKey(year, month)
	if err != nil {
		return models.ProjectCostSummary{}, err
	}
	stored, err := s.Store.GetProjectCost(ctx, k.String())
	if err == nil {
		return stored, nil
	}
	if !domain.IsNotFound(err) {
		return models.ProjectCostSummary{}, err
	}
	return s.Summarize(ctx, k)
}

// Summarize aggregates the month from the employees active on its first
// day, its indirect entry and its ODC items. Nothing is saved.
func (s CostService) Summarize(ctx context.Context, k domain.MonthKey) (models.ProjectCostSummary, error) {
	sum, _, err := s.summarize(ctx, k)
	return sum, err
}

func (s CostService) summarize(ctx context.Context, k domain.MonthKey) (models.ProjectCostSummary, []models.Employee, error) {
	month := k.String()
	employees, err := activeRoster(ctx, s.Store, models.EmployeeFilter{}, k.FirstDay())
	if err != nil {
		return models.ProjectCostSummary{}, nil, err
	}
	var indirect *models.IndirectCost
	ic, err := s.Store.GetIndirectCost(ctx, month)
	switch {
	case err == nil:
		indirect = &ic
	case !domain.IsNotFound(err):
		return models.ProjectCostSummary{}, nil, err
	}
	items, err := s.Store.ListODCItems(ctx, month)
	if err != nil {
		return models.ProjectCostSummary{}, nil, err
	}
	return calc.AggregateMonthCosts(month, employees, indirect, items), employees, nil
}

// Recalculate recomputes and saves the month's summary.
func (s CostService) Recalculate(ctx context.Context, k domain.MonthKey) (models.ProjectCostSummary, error) {
	sum, err := s.Summarize(ctx, k)
	if err != nil {
		return models.ProjectCostSummary{}, err
	}
	sum.UpdatedAt = nowFrom(s.Now)
	if err := s.Store.SaveProjectCost(ctx, sum); err != nil {
		return models.ProjectCostSummary{}, err
	}
	utils.LogEvent(s.RequestID, "costs", "recalculate", fmt.Sprintf("month=%s total=%s", sum.Month, utils.FormatMoney(sum.TotalCost)))
	return sum, nil
}

// refresh is Recalculate for write paths: the write already succeeded, so a
// failed refresh is logged only.
func (s CostService) refresh(ctx context.Context, k domain.MonthKey) {
	if _, err := s.Recalculate(ctx, k); err != nil {
		utils.LogFailure(s.RequestID, "costs", "recalculate", err)
	}
}

func (s CostService) ListODC(ctx context.Context, month string) ([]models.ODCItem, error) {
	k, err := parseMonth("month", month)
	if err != nil {
		return nil, err
	}
	return s.Store.ListODCItems(ctx, k.String())
}

func (s CostService) AddODC(ctx context.Context, in models.ODCItem) (models.ODCItem, error) {
	k, err := parseMonth("month", in.Month)
	if err != nil {
		return models.ODCItem{}, err
	}
	if err := checkAmounts(amountField{"amount", in.Amount}); err != nil {
		return models.ODCItem{}, err
	}
	in.ID = ""
	in.Month = k.String()
	in.Category = utils.NormalizeSpace(in.Category)
	in.Description = utils.NormalizeSpace(in.Description)
	if in.Category == "" {
		return models.ODCItem{}, domain.Invalid("category", "required")
	}

	out, err := s.Store.AddODCItem(ctx, in)
	if err != nil {
		return models.ODCItem{}, err
	}
	utils.LogEvent(s.RequestID, "costs", "add_odc", fmt.Sprintf("month=%s id=%s amount=%s", out.Month, out.ID, utils.FormatMoney(out.Amount)))
	s.refresh(ctx, k)
	return out, nil
}

func (s CostService) DeleteODC(ctx context.Context, month, id string) error {
	k, err := parseMonth("month", month)
	if err != nil {
		return err
	}
	id = utils.TrimOrEmpty(id)
	if id == "" {
		return domain.Invalid("id", "required")
	}
	if err := s.Store.DeleteODCItem(ctx, k.String(), id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "costs", "delete_odc", fmt.Sprintf("month=%s id=%s", k.String(), id))
	s.refresh(ctx, k)
	return nil
}

// ProfitLoss compares revenue (hours at bill rate) with the month's total
// cost. An empty month means the current one. The margin is rounded to
// PercentPrecision places.
func (s CostService) ProfitLoss(ctx context.Context, month string) (models.ProfitLoss, error) {
	if utils.TrimOrEmpty(month) == "" {
		month = utils.CurrentMonth(nowFrom(s.Now))
	}
	k, err := parseMonth("month", month)
	if err != nil {
		return models.ProfitLoss{}, err
	}
	sum, employees, err := s.summarize(ctx, k)
	if err != nil {
		return models.ProfitLoss{}, err
	}
	pl := calc.ProfitAndLoss(k.String(), calc.Revenue(k.String(), employees), sum.TotalCost)
	pl.ProfitMargin = calc.Round(pl.ProfitMargin, s.precision())
	return pl, nil
}

func (s CostService) precision() int {
	if s.PercentPrecision <= 0 {
		return DefaultPercentPrecision
	}
	return s.PercentPrecision
}
