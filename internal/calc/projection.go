package calc

import (
	"fmt"
	"math"

	"seasfinance/internal/domain"
	"seasfinance/internal/domain/models"
)

const (
	DefaultNewHireMonthlyCost = 10000.0
	MaxProjectionMonths       = 120
)

// Projector forecasts hours, revenue and headcount from the current roster.
// It is an approximation: attrition and hiring are smooth rates, not discrete
// events.
type Projector struct {
	// NewHireMonthlyCost is the revenue contributed per new hire per month.
	NewHireMonthlyCost float64
}

// Project returns p.Months forecast points starting at start. Index 0 is the
// unadjusted current roster. For later months salaries grow by
// (1+increase)^(i/12), hours and revenue are scaled once by the flat monthly
// attrition factor (1 - attrition/12/100), and new hires add a fixed monthly
// slice of hours and revenue. The attrition factor is not chained from one
// month to the next.
func (pj Projector) Project(employees []models.Employee, start domain.MonthKey, p models.ProjectionParams) ([]models.ProjectionPoint, error) {
	if p.Months < 0 || p.Months > MaxProjectionMonths {
		return nil, domain.InvalidArgumentError{Field: "months", Msg: fmt.Sprintf("must be between 0 and %d", MaxProjectionMonths)}
	}
	if !finite(p.SalaryIncrease) || p.SalaryIncrease <= -100 {
		return nil, domain.InvalidArgumentError{Field: "salary_increase", Msg: "must be a number greater than -100"}
	}
	if !finite(p.AttritionRate) || p.AttritionRate < 0 || p.AttritionRate > 100 {
		return nil, domain.InvalidArgumentError{Field: "attrition_rate", Msg: "must be between 0 and 100"}
	}
	if !finite(p.NewHiresPerYear) || p.NewHiresPerYear < 0 {
		return nil, domain.InvalidArgumentError{Field: "new_hires", Msg: "must be a non-negative number"}
	}
	hireCost := pj.NewHireMonthlyCost
	if hireCost <= 0 {
		hireCost = DefaultNewHireMonthlyCost
	}

	var baseHours float64
	for _, e := range employees {
		baseHours += e.AverageHours()
	}
	n := float64(len(employees))

	points := make([]models.ProjectionPoint, 0, p.Months)
	for i := 0; i < p.Months; i++ {
		years := float64(i) / 12
		growth := math.Pow(1+p.SalaryIncrease/100, years)

		hours := baseHours
		var revenue float64
		for _, e := range employees {
			revenue += e.CurrentSalary * growth / 12
		}

		if i > 0 {
			factor := 1 - p.AttritionRate/12/100
			hours *= factor
			revenue *= factor
			if p.NewHiresPerYear > 0 {
				monthlyHires := p.NewHiresPerYear / 12
				hours += monthlyHires * models.DefaultHoursPerMonth
				revenue += monthlyHires * hireCost
			}
		}

		active := math.Round(n*(1-p.AttritionRate/100*years) + p.NewHiresPerYear*years)
		if active < 0 {
			active = 0
		}

		var avgRate float64
		if hours > 0 {
			avgRate = Round(revenue/hours, 2)
		}

		points = append(points, models.ProjectionPoint{
			Month:           start.AddMonths(i).String(),
			TotalHours:      math.Round(hours),
			TotalRevenue:    math.Round(revenue),
			ActiveEmployees: int(active),
			AvgHourlyRate:   avgRate,
		})
	}
	return points, nil
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
