package repositories

import (
	"context"

	"seasfinance/internal/domain/models"
)

// DataSource is the persistence port. One backend is chosen at startup and
// every handler goes through it; there is no per-request "is the database up"
// branching.
//
// Lookups of a single missing row return domain.NotFoundError. Month
// arguments are canonical "YYYY-MM" keys.
type DataSource interface {
	Name() string
	Ping(ctx context.Context) error
	Close(ctx context.Context) error

	// ListEmployees returns employees matching f sorted by name. ActiveOnly
	// is applied by callers, which know the reference date.
	ListEmployees(ctx context.Context, f models.EmployeeFilter) ([]models.Employee, error)
	GetEmployee(ctx context.Context, id string) (models.Employee, error)
	CreateEmployee(ctx context.Context, e models.Employee) (models.Employee, error)
	UpdateEmployee(ctx context.Context, e models.Employee) (models.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error
	UpsertMonthlyRecord(ctx context.Context, employeeID string, rec models.MonthlyRecord) (models.Employee, error)
	// Distinct returns the sorted distinct non-empty values of an employee
	// classification field: department, lcat or education_level.
	Distinct(ctx context.Context, field string) ([]string, error)

	GetIndirectCost(ctx context.Context, month string) (models.IndirectCost, error)
	UpsertIndirectCost(ctx context.Context, ic models.IndirectCost) (models.IndirectCost, error)

	// ListODCItems returns the month's items in insertion order.
	ListODCItems(ctx context.Context, month string) ([]models.ODCItem, error)
	AddODCItem(ctx context.Context, item models.ODCItem) (models.ODCItem, error)
	DeleteODCItem(ctx context.Context, month, id string) error

	GetProjectCost(ctx context.Context, month string) (models.ProjectCostSummary, error)
	SaveProjectCost(ctx context.Context, s models.ProjectCostSummary) error
}

// distinctFields whitelists the columns Distinct may read.
var distinctFields = map[string]bool{
	"department":      true,
	"lcat":            true,
	"education_level": true,
}
