package models

import (
	"strings"
	"time"
)

const (
	DefaultHoursPerMonth = 160.0
	HoursPerWorkingDay   = 8

	StatusActive   = "Active"
	StatusInactive = "Inactive"

	RoleEmployee = "Employee"
	RoleManager  = "Manager"

	TypeEmployee      = "Employee"
	TypeSubcontractor = "Subcontractor"
)

// MonthlyRecord holds planned and actual figures for one employee in one month.
// Month is a "YYYY-MM" key; an employee has at most one record per key.
type MonthlyRecord struct {
	Month         string  `json:"month" bson:"month"`
	Hours         float64 `json:"hours" bson:"hours"`
	Revenue       float64 `json:"revenue" bson:"revenue"`
	ActualHours   float64 `json:"actual_hours" bson:"actual_hours"`
	ActualRevenue float64 `json:"actual_revenue" bson:"actual_revenue"`
	Notes         string  `json:"notes,omitempty" bson:"notes,omitempty"`
}

type Employee struct {
	ID                   string          `json:"id" bson:"_id"`
	EmployeeID           string          `json:"employee_id" bson:"employee_id"`
	EmployeeName         string          `json:"employee_name" bson:"employee_name"`
	Department           string          `json:"department" bson:"department"`
	LCAT                 string          `json:"lcat" bson:"lcat"`
	EducationLevel       string          `json:"education_level" bson:"education_level"`
	YearsExperience      int             `json:"years_experience" bson:"years_experience"`
	Role                 string          `json:"role" bson:"role"`
	Status               string          `json:"status" bson:"status"`
	EmployeeType         string          `json:"employee_type" bson:"employee_type"`
	SubcontractorCompany string          `json:"subcontractor_company,omitempty" bson:"subcontractor_company,omitempty"`
	PricedSalary         float64         `json:"priced_salary" bson:"priced_salary"`
	CurrentSalary        float64         `json:"current_salary" bson:"current_salary"`
	HoursPerMonth        float64         `json:"hours_per_month" bson:"hours_per_month"`
	BillRate             float64         `json:"bill_rate" bson:"bill_rate"`
	HourlyRate           float64         `json:"hourly_rate" bson:"hourly_rate"`
	StartDate            Date            `json:"start_date" bson:"start_date"`
	EndDate              *Date           `json:"end_date,omitempty" bson:"end_date,omitempty"`
	Notes                string          `json:"notes" bson:"notes"`
	MonthlyData          []MonthlyRecord `json:"monthly_data" bson:"monthly_data"`
	CreatedAt            time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at" bson:"updated_at"`
}

// DefaultHours is hours_per_month, or 160 when unset.
func (e Employee) DefaultHours() float64 {
	if e.HoursPerMonth > 0 {
		return e.HoursPerMonth
	}
	return DefaultHoursPerMonth
}

// HourlyCost is the internal cost of one hour: current salary / 12 / hours per month.
func (e Employee) HourlyCost() float64 {
	return e.CurrentSalary / 12 / e.DefaultHours()
}

// Record returns the monthly record for month, if any.
func (e Employee) Record(month string) (MonthlyRecord, bool) {
	for _, r := range e.MonthlyData {
		if r.Month == month {
			return r, true
		}
	}
	return MonthlyRecord{}, false
}

// HoursFor returns the month's actual hours when a record exists, else the default.
func (e Employee) HoursFor(month string) float64 {
	if r, ok := e.Record(month); ok {
		return r.ActualHours
	}
	return e.DefaultHours()
}

// AverageHours averages actual hours over the employee's history. A record
// without actual hours contributes its planned hours. With no history the
// default monthly hours are returned.
func (e Employee) AverageHours() float64 {
	if len(e.MonthlyData) == 0 {
		return e.DefaultHours()
	}
	var sum float64
	for _, r := range e.MonthlyData {
		if r.ActualHours > 0 {
			sum += r.ActualHours
		} else {
			sum += r.Hours
		}
	}
	return sum / float64(len(e.MonthlyData))
}

// ActiveOn reports whether the employee has no end date or one on/after day.
func (e Employee) ActiveOn(day time.Time) bool {
	if e.EndDate == nil || e.EndDate.IsZero() {
		return true
	}
	return !e.EndDate.Before(DateOf(day).Time)
}

// IsSubcontractor is true for subcontracted staff.
func (e Employee) IsSubcontractor() bool {
	return strings.EqualFold(e.EmployeeType, TypeSubcontractor)
}

// WithRecord returns a copy of e with rec inserted or replacing the record
// for the same month. e itself is not modified.
func (e Employee) WithRecord(rec MonthlyRecord) Employee {
	data := make([]MonthlyRecord, 0, len(e.MonthlyData)+1)
	replaced := false
	for _, r := range e.MonthlyData {
		if r.Month == rec.Month {
			data = append(data, rec)
			replaced = true
			continue
		}
		data = append(data, r)
	}
	if !replaced {
		data = append(data, rec)
	}
	e.MonthlyData = data
	return e
}

// Normalize fills defaults and recomputes the derived hourly rate.
func (e *Employee) Normalize() {
	e.EmployeeName = strings.TrimSpace(e.EmployeeName)
	e.Department = strings.TrimSpace(e.Department)
	e.LCAT = strings.TrimSpace(e.LCAT)
	if e.Status == "" {
		e.Status = StatusActive
	}
	if e.Role == "" {
		e.Role = RoleEmployee
	}
	if e.EmployeeType == "" {
		e.EmployeeType = TypeEmployee
	}
	if e.HoursPerMonth <= 0 {
		e.HoursPerMonth = DefaultHoursPerMonth
	}
	if e.EndDate != nil && e.EndDate.IsZero() {
		e.EndDate = nil
	}
	if e.MonthlyData == nil {
		e.MonthlyData = []MonthlyRecord{}
	}
	e.HourlyRate = e.HourlyCost()
}

// EmployeeFilter narrows roster queries. Empty fields and "all" match everything.
type EmployeeFilter struct {
	Department string
	LCAT       string
	ActiveOnly bool
}

func (f EmployeeFilter) Matches(e Employee) bool {
	if f.Department != "" && !strings.EqualFold(f.Department, "all") && e.Department != f.Department {
		return false
	}
	if f.LCAT != "" && !strings.EqualFold(f.LCAT, "all") && e.LCAT != f.LCAT {
		return false
	}
	return true
}
