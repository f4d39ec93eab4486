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

type ProjectionService struct {
	Store              repositories.DataSource
	NewHireMonthlyCost float64
	RequestID          string
	Now                func() time.Time
}

// DefaultProjectionParams are used for fields a request leaves out.
func DefaultProjectionParams() models.ProjectionParams {
	return models.ProjectionParams{Months: 12, SalaryIncrease: 3, AttritionRate: 10}
}

// Project forecasts from the roster active today, starting with the current
// month.
func (s ProjectionService) Project(ctx context.Context, p models.ProjectionParams) ([]models.ProjectionPoint, error) {
	now := nowFrom(s.Now)
	employees, err := activeRoster(ctx, s.Store, models.EmployeeFilter{}, now)
	if err != nil {
		return nil, err
	}
	pj := calc.Projector{NewHireMonthlyCost: s.NewHireMonthlyCost}
	points, err := pj.Project(employees, domain.MonthKeyOf(now), p)
	if err != nil {
		return nil, err
	}
	utils.LogEvent(s.RequestID, "projection", "project", fmt.Sprintf("months=%d employees=%d", p.Months, len(employees)))
	return points, nil
}
