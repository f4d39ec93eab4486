package models

import "time"

// IndirectCost holds the four indirect add-ons for a month. Total is always
// recomputed from the components on write.
type IndirectCost struct {
	Month          string    `json:"month" bson:"month"`
	FringeAmount   float64   `json:"fringe_amount" bson:"fringe_amount"`
	OverheadAmount float64   `json:"overhead_amount" bson:"overhead_amount"`
	GAAmount       float64   `json:"ga_amount" bson:"ga_amount"`
	ProfitAmount   float64   `json:"profit_amount" bson:"profit_amount"`
	TotalAmount    float64   `json:"total_indirect_amount" bson:"total_indirect_amount"`
	Notes          string    `json:"notes" bson:"notes"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}

// ODCItem is an other-direct-cost line item, identified by a stable ID.
type ODCItem struct {
	ID          string    `json:"id" bson:"id"`
	Month       string    `json:"month" bson:"month"`
	Category    string    `json:"category" bson:"category"`
	Description string    `json:"description" bson:"description"`
	Amount      float64   `json:"amount" bson:"amount"`
	Notes       string    `json:"notes" bson:"notes"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// ProjectCostSummary is the derived cost roll-up for a month.
type ProjectCostSummary struct {
	Month             string    `json:"month" bson:"month"`
	DirectLaborCost   float64   `json:"direct_labor_cost" bson:"direct_labor_cost"`
	DirectLaborHours  float64   `json:"direct_labor_hours" bson:"direct_labor_hours"`
	SubcontractorCost float64   `json:"subcontractor_cost" bson:"subcontractor_cost"`
	ODCItems          []ODCItem `json:"odc_items" bson:"odc_items"`
	TotalODCCost      float64   `json:"total_odc_cost" bson:"total_odc_cost"`
	FringeCost        float64   `json:"fringe_cost" bson:"fringe_cost"`
	OverheadCost      float64   `json:"overhead_cost" bson:"overhead_cost"`
	GACost            float64   `json:"ga_cost" bson:"ga_cost"`
	ProfitCost        float64   `json:"profit_cost" bson:"profit_cost"`
	TotalIndirectCost float64   `json:"total_indirect_cost" bson:"total_indirect_cost"`
	TotalCost         float64   `json:"total_cost" bson:"total_cost"`
	UpdatedAt         time.Time `json:"updated_at" bson:"updated_at"`
}

// ProfitLoss is revenue against total cost for a month. Margin is a
// percentage kept at full precision; presentation rounds it.
type ProfitLoss struct {
	Month        string  `json:"month"`
	Revenue      float64 `json:"revenue"`
	Costs        float64 `json:"costs"`
	Profit       float64 `json:"profit"`
	ProfitMargin float64 `json:"profit_margin"`
}
