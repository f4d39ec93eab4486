package calc

import (
	"github.com/shopspring/decimal"

	"seasfinance/internal/domain/models"
)

// BillingSummary compares projected billing (default hours at bill rate)
// with what was recorded as actual for month. Employees with no record for
// the month contribute zero actuals.
func BillingSummary(month string, employees []models.Employee) models.BillingSummary {
	out := models.BillingSummary{
		Period:          month,
		TotalEmployees:  len(employees),
		EmployeeDetails: make([]models.EmployeeBillingDetail, 0, len(employees)),
	}

	projHours, actHours := decimal.Zero, decimal.Zero
	projRev, actRev := decimal.Zero, decimal.Zero
	for _, e := range employees {
		ph := dec(e.DefaultHours())
		pr := ph.Mul(dec(e.BillRate))
		ah, ar := decimal.Zero, decimal.Zero
		if rec, ok := e.Record(month); ok {
			ah, ar = dec(rec.ActualHours), dec(rec.ActualRevenue)
		}

		projHours = projHours.Add(ph)
		actHours = actHours.Add(ah)
		projRev = projRev.Add(pr)
		actRev = actRev.Add(ar)

		out.EmployeeDetails = append(out.EmployeeDetails, models.EmployeeBillingDetail{
			EmployeeID:       e.ID,
			EmployeeName:     e.EmployeeName,
			ProjectedHours:   ph.InexactFloat64(),
			ActualHours:      ah.InexactFloat64(),
			BillRate:         e.BillRate,
			ProjectedRevenue: pr.InexactFloat64(),
			ActualRevenue:    ar.InexactFloat64(),
			Variance:         ar.Sub(pr).InexactFloat64(),
		})
	}

	variance := actRev.Sub(projRev)
	pct := decimal.Zero
	if projRev.IsPositive() {
		pct = variance.Div(projRev).Mul(decimal.NewFromInt(100))
	}

	out.TotalProjectedHours = projHours.InexactFloat64()
	out.TotalActualHours = actHours.InexactFloat64()
	out.TotalProjectedRevenue = projRev.InexactFloat64()
	out.TotalActualRevenue = actRev.InexactFloat64()
	out.Variance = variance.InexactFloat64()
	out.VariancePercent = pct.InexactFloat64()
	return out
}

// BillingRecord builds the monthly record stored when actual hours are
// reported: planned figures from the employee defaults, actual revenue at
// bill rate.
func BillingRecord(e models.Employee, month string, actualHours float64, notes string) models.MonthlyRecord {
	hours := dec(e.DefaultHours())
	rate := dec(e.BillRate)
	return models.MonthlyRecord{
		Month:         month,
		Hours:         hours.InexactFloat64(),
		Revenue:       hours.Mul(rate).InexactFloat64(),
		ActualHours:   actualHours,
		ActualRevenue: dec(actualHours).Mul(rate).InexactFloat64(),
		Notes:         notes,
	}
}
