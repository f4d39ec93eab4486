// Package calc holds the pure cost, billing and projection arithmetic.
// Functions take snapshots and return new values; inputs are never modified.
package calc

import (
	"github.com/shopspring/decimal"

	"seasfinance/internal/domain/models"
)

var twelve = decimal.NewFromInt(12)

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// hourlyCost mirrors models.Employee.HourlyCost in decimal arithmetic.
func hourlyCost(e models.Employee) decimal.Decimal {
	return dec(e.CurrentSalary).Div(twelve).Div(dec(e.DefaultHours()))
}

// AggregateMonthCosts rolls up labor, ODC and indirect costs for month.
// Labor hours come from the employee's record for month when present and
// from the default monthly hours otherwise, priced at hourly cost (never bill
// rate). A nil indirect entry or empty ODC list counts as zero.
func AggregateMonthCosts(month string, employees []models.Employee, indirect *models.IndirectCost, odc []models.ODCItem) models.ProjectCostSummary {
	laborCost, laborHours, subCost := decimal.Zero, decimal.Zero, decimal.Zero
	for _, e := range employees {
		hours := dec(e.HoursFor(month))
		cost := hours.Mul(hourlyCost(e))
		laborHours = laborHours.Add(hours)
		laborCost = laborCost.Add(cost)
		if e.IsSubcontractor() {
			subCost = subCost.Add(cost)
		}
	}

	items := make([]models.ODCItem, len(odc))
	copy(items, odc)
	odcTotal := decimal.Zero
	for _, it := range items {
		odcTotal = odcTotal.Add(dec(it.Amount))
	}

	var fringe, overhead, ga, profit decimal.Decimal
	if indirect != nil {
		fringe = dec(indirect.FringeAmount)
		overhead = dec(indirect.OverheadAmount)
		ga = dec(indirect.GAAmount)
		profit = dec(indirect.ProfitAmount)
	}
	indirectTotal := fringe.Add(overhead).Add(ga).Add(profit)
	total := laborCost.Add(odcTotal).Add(indirectTotal)

	return models.ProjectCostSummary{
		Month:             month,
		DirectLaborCost:   laborCost.InexactFloat64(),
		DirectLaborHours:  laborHours.InexactFloat64(),
		SubcontractorCost: subCost.InexactFloat64(),
		ODCItems:          items,
		TotalODCCost:      odcTotal.InexactFloat64(),
		FringeCost:        fringe.InexactFloat64(),
		OverheadCost:      overhead.InexactFloat64(),
		GACost:            ga.InexactFloat64(),
		ProfitCost:        profit.InexactFloat64(),
		TotalIndirectCost: indirectTotal.InexactFloat64(),
		TotalCost:         total.InexactFloat64(),
	}
}

// IndirectTotal is the sum of the four indirect components.
func IndirectTotal(ic models.IndirectCost) float64 {
	return dec(ic.FringeAmount).Add(dec(ic.OverheadAmount)).Add(dec(ic.GAAmount)).Add(dec(ic.ProfitAmount)).InexactFloat64()
}

// SumODC totals the amounts of items.
func SumODC(items []models.ODCItem) float64 {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(dec(it.Amount))
	}
	return sum.InexactFloat64()
}

// Revenue bills each employee's hours for month at their bill rate, using the
// same hours rule as AggregateMonthCosts.
func Revenue(month string, employees []models.Employee) float64 {
	sum := decimal.Zero
	for _, e := range employees {
		sum = sum.Add(dec(e.HoursFor(month)).Mul(dec(e.BillRate)))
	}
	return sum.InexactFloat64()
}

// ProfitAndLoss derives profit and margin. Margin is 0 when revenue is 0.
func ProfitAndLoss(month string, revenue, costs float64) models.ProfitLoss {
	rev, cost := dec(revenue), dec(costs)
	profit := rev.Sub(cost)
	margin := decimal.Zero
	if rev.IsPositive() {
		margin = profit.Div(rev).Mul(decimal.NewFromInt(100))
	}
	return models.ProfitLoss{
		Month:        month,
		Revenue:      rev.InexactFloat64(),
		Costs:        cost.InexactFloat64(),
		Profit:       profit.InexactFloat64(),
		ProfitMargin: margin.InexactFloat64(),
	}
}

// Round rounds v half away from zero to places decimals.
func Round(v float64, places int) float64 {
	return dec(v).Round(int32(places)).InexactFloat64()
}
