package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"seasfinance/internal/cache"
	"seasfinance/internal/domain"
	"seasfinance/internal/domain/models"
	"seasfinance/internal/repositories"
	"seasfinance/internal/utils"
)

type EmployeeService struct {
	Store     repositories.DataSource
	Cache     *cache.Cache
	RequestID string
	Now       func() time.Time
}

// List returns the roster filtered by department and LCAT ("all" or empty
// means no filter). With activeOnly, employees whose end date is before
// today are left out.
func (s EmployeeService) List(ctx context.Context, department, lcat string, activeOnly bool) ([]models.Employee, error) {
	f := models.EmployeeFilter{
		Department: utils.FilterValue(department),
		LCAT:       utils.FilterValue(lcat),
		ActiveOnly: activeOnly,
	}
	if activeOnly {
		return activeRoster(ctx, s.Store, f, nowFrom(s.Now))
	}
	return s.Store.ListEmployees(ctx, f)
}

func (s EmployeeService) Get(ctx context.Context, id string) (models.Employee, error) {
	id = utils.TrimOrEmpty(id)
	if id == "" {
		return models.Employee{}, domain.Invalid("id", "required")
	}
	return s.Store.GetEmployee(ctx, id)
}

func (s EmployeeService) Create(ctx context.Context, in models.Employee) (models.Employee, error) {
	if err := validateEmployee(in); err != nil {
		return models.Employee{}, err
	}
	in.ID = ""
	if utils.TrimOrEmpty(in.EmployeeID) == "" {
		in.EmployeeID = NewEmployeeCode(nowFrom(s.Now))
	}
	in.Normalize()

	out, err := s.Store.CreateEmployee(ctx, in)
	if err != nil {
		return models.Employee{}, err
	}
	s.Cache.Invalidate(ctx, cache.ValidationOptionsKey)
	utils.LogEvent(s.RequestID, "employee", "create", fmt.Sprintf("id=%s employee_id=%s", out.ID, out.EmployeeID))
	return out, nil
}

// Update replaces the editable fields of an employee. Monthly records and
// the creation time are kept from the stored row.
func (s EmployeeService) Update(ctx context.Context, id string, in models.Employee) (models.Employee, error) {
	cur, err := s.Get(ctx, id)
	if err != nil {
		return models.Employee{}, err
	}
	if err := validateEmployee(in); err != nil {
		return models.Employee{}, err
	}
	in.ID = cur.ID
	if utils.TrimOrEmpty(in.EmployeeID) == "" {
		in.EmployeeID = cur.EmployeeID
	}
	in.MonthlyData = cur.MonthlyData
	in.CreatedAt = cur.CreatedAt
	in.Normalize()

	out, err := s.Store.UpdateEmployee(ctx, in)
	if err != nil {
		return models.Employee{}, err
	}
	s.Cache.Invalidate(ctx, cache.ValidationOptionsKey)
	utils.LogEvent(s.RequestID, "employee", "update", "id="+out.ID)
	return out, nil
}

func (s EmployeeService) Delete(ctx context.Context, id string) error {
	id = utils.TrimOrEmpty(id)
	if id == "" {
		return domain.Invalid("id", "required")
	}
	if err := s.Store.DeleteEmployee(ctx, id); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, cache.ValidationOptionsKey)
	utils.LogEvent(s.RequestID, "employee", "delete", "id="+id)
	return nil
}

// ValidationOptions lists the values offered in the employee form: the
// distinct stored classifications plus the fixed role, status and type sets.
func (s EmployeeService) ValidationOptions(ctx context.Context) (models.ValidationOptions, error) {
	return cache.Fetch(ctx, s.Cache, cache.ValidationOptionsKey, cache.ValidationOptionsTTL,
		func(ctx context.Context) (models.ValidationOptions, error) {
			deps, err := s.Store.Distinct(ctx, "department")
			if err != nil {
				return models.ValidationOptions{}, err
			}
			lcats, err := s.Store.Distinct(ctx, "lcat")
			if err != nil {
				return models.ValidationOptions{}, err
			}
			edu, err := s.Store.Distinct(ctx, "education_level")
			if err != nil {
				return models.ValidationOptions{}, err
			}
			return models.ValidationOptions{
				Departments:     deps,
				LCATs:           lcats,
				EducationLevels: edu,
				Roles:           []string{models.RoleEmployee, models.RoleManager},
				Statuses:        []string{models.StatusActive, models.StatusInactive},
				EmployeeTypes:   []string{models.TypeEmployee, models.TypeSubcontractor},
			}, nil
		})
}

// NewEmployeeCode builds an "EMP-<base36 millis>-<5 chars>" identifier.
func NewEmployeeCode(now time.Time) string {
	stamp := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:5])
	return "EMP-" + stamp + "-" + suffix
}

func validateEmployee(e models.Employee) error {
	if utils.TrimOrEmpty(e.EmployeeName) == "" {
		return domain.Invalid("employee_name", "required")
	}
	if err := checkAmounts(
		amountField{"current_salary", e.CurrentSalary},
		amountField{"priced_salary", e.PricedSalary},
		amountField{"hours_per_month", e.HoursPerMonth},
		amountField{"bill_rate", e.BillRate},
	); err != nil {
		return err
	}
	if e.YearsExperience < 0 {
		return domain.Invalid("years_experience", "must not be negative")
	}
	if e.EndDate != nil && !e.EndDate.IsZero() && !e.StartDate.IsZero() && e.EndDate.Before(e.StartDate.Time) {
		return domain.Invalid("end_date", "must not be before start_date")
	}
	if e.IsSubcontractor() && utils.TrimOrEmpty(e.SubcontractorCompany) == "" {
		return domain.Invalid("subcontractor_company", "required for subcontractors")
	}
	return nil
}
