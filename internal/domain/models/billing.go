package models

// BillingPeriod is the weekend-adjusted 12th-to-11th billing window for a
// month, with its working-day count.
type BillingPeriod struct {
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	Period      string `json:"period"`
	StartDate   Date   `json:"start_date"`
	EndDate     Date   `json:"end_date"`
	WorkingDays int    `json:"working_days"`
	MaxHours    int    `json:"max_hours"`
	Holidays    []Date `json:"holidays"`
}

type EmployeeBillingDetail struct {
	EmployeeID       string  `json:"employee_id"`
	EmployeeName     string  `json:"employee_name"`
	ProjectedHours   float64 `json:"projected_hours"`
	ActualHours      float64 `json:"actual_hours"`
	BillRate         float64 `json:"bill_rate"`
	ProjectedRevenue float64 `json:"projected_revenue"`
	ActualRevenue    float64 `json:"actual_revenue"`
	Variance         float64 `json:"variance"`
}

// BillingSummary compares projected and actual billing across the active roster.
type BillingSummary struct {
	Period                string                  `json:"period"`
	TotalEmployees        int                     `json:"total_employees"`
	TotalProjectedHours   float64                 `json:"total_projected_hours"`
	TotalActualHours      float64                 `json:"total_actual_hours"`
	TotalProjectedRevenue float64                 `json:"total_projected_revenue"`
	TotalActualRevenue    float64                 `json:"total_actual_revenue"`
	Variance              float64                 `json:"variance"`
	VariancePercent       float64                 `json:"variance_percent"`
	EmployeeDetails       []EmployeeBillingDetail `json:"employee_details"`
}

// ProjectionParams are the knobs of a revenue/headcount forecast.
type ProjectionParams struct {
	Months          int     `json:"months"`
	SalaryIncrease  float64 `json:"salary_increase"`
	AttritionRate   float64 `json:"attrition_rate"`
	NewHiresPerYear float64 `json:"new_hires"`
}

type ProjectionPoint struct {
	Month           string  `json:"month"`
	TotalHours      float64 `json:"total_hours"`
	TotalRevenue    float64 `json:"total_revenue"`
	ActiveEmployees int     `json:"active_employees"`
	AvgHourlyRate   float64 `json:"avg_hourly_rate"`
}

// ValidationOptions lists the values offered for employee classification fields.
type ValidationOptions struct {
	Departments     []string `json:"departments"`
	LCATs           []string `json:"lcats"`
	EducationLevels []string `json:"education_levels"`
	Roles           []string `json:"roles"`
	Statuses        []string `json:"statuses"`
	EmployeeTypes   []string `json:"employee_types"`
}
