package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"seasfinance/internal/domain"
	"seasfinance/internal/domain/models"
)

// FixtureStore is an in-memory DataSource used for demos and tests. It is safe
// for concurrent use and hands out copies, never its own slices.
type FixtureStore struct {
	mu        sync.RWMutex
	employees map[string]models.Employee
	indirect  map[string]models.IndirectCost
	odc       map[string][]models.ODCItem
	summaries map[string]models.ProjectCostSummary
	now       func() time.Time
}

func NewFixtureStore() *FixtureStore {
	return &FixtureStore{
		employees: map[string]models.Employee{},
		indirect:  map[string]models.IndirectCost{},
		odc:       map[string][]models.ODCItem{},
		summaries: map[string]models.ProjectCostSummary{},
		now:       time.Now,
	}
}

// NewDemoStore returns a FixtureStore seeded with a small demo roster and
// one month of cost data.
func NewDemoStore() *FixtureStore {
	s := NewFixtureStore()
	for _, e := range demoEmployees() {
		e.Normalize()
		s.employees[e.ID] = e
	}
	for _, ic := range demoIndirectCosts() {
		s.indirect[ic.Month] = ic
	}
	for _, it := range demoODCItems() {
		s.odc[it.Month] = append(s.odc[it.Month], it)
	}
	return s
}

func (s *FixtureStore) Name() string { return "fixture" }

func (s *FixtureStore) Ping(context.Context) error { return nil }

func (s *FixtureStore) Close(context.Context) error { return nil }

func (s *FixtureStore) ListEmployees(_ context.Context, f models.EmployeeFilter) ([]models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		if f.Matches(e) {
			out = append(out, cloneEmployee(e))
		}
	}
	sortEmployees(out)
	return out, nil
}

func (s *FixtureStore) GetEmployee(_ context.Context, id string) (models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.employees[id]
	if !ok {
		return models.Employee{}, domain.NotFound("employee")
	}
	return cloneEmployee(e), nil
}

func (s *FixtureStore) CreateEmployee(_ context.Context, e models.Employee) (models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if _, exists := s.employees[e.ID]; exists {
		return models.Employee{}, domain.ConflictError{Resource: "employee", Msg: "id already exists"}
	}
	for _, other := range s.employees {
		if e.EmployeeID != "" && other.EmployeeID == e.EmployeeID {
			return models.Employee{}, domain.ConflictError{Resource: "employee", Msg: "employee_id already exists"}
		}
	}
	now := s.now()
	e.CreatedAt, e.UpdatedAt = now, now
	s.employees[e.ID] = cloneEmployee(e)
	return cloneEmployee(e), nil
}

func (s *FixtureStore) UpdateEmployee(_ context.Context, e models.Employee) (models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.employees[e.ID]
	if !ok {
		return models.Employee{}, domain.NotFound("employee")
	}
	e.CreatedAt = cur.CreatedAt
	e.UpdatedAt = s.now()
	if e.EmployeeID == "" {
		e.EmployeeID = cur.EmployeeID
	}
	s.employees[e.ID] = cloneEmployee(e)
	return cloneEmployee(e), nil
}

func (s *FixtureStore) DeleteEmployee(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.employees[id]; !ok {
		return domain.NotFound("employee")
	}
	delete(s.employees, id)
	return nil
}

func (s *FixtureStore) UpsertMonthlyRecord(_ context.Context, employeeID string, rec models.MonthlyRecord) (models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.employees[employeeID]
	if !ok {
		return models.Employee{}, domain.NotFound("employee")
	}
	e = e.WithRecord(rec)
	e.UpdatedAt = s.now()
	s.employees[employeeID] = e
	return cloneEmployee(e), nil
}

func (s *FixtureStore) Distinct(_ context.Context, field string) ([]string, error) {
	if !distinctFields[field] {
		return nil, domain.Invalid("field", "unsupported distinct field "+field)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := map[string]bool{}
	for _, e := range s.employees {
		var v string
		switch field {
		case "department":
			v = e.Department
		case "lcat":
			v = e.LCAT
		case "education_level":
			v = e.EducationLevel
		}
		if strings.TrimSpace(v) != "" {
			seen[v] = true
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out, nil
}

func (s *FixtureStore) GetIndirectCost(_ context.Context, month string) (models.IndirectCost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ic, ok := s.indirect[month]
	if !ok {
		return models.IndirectCost{}, domain.NotFound("indirect cost")
	}
	return ic, nil
}

func (s *FixtureStore) UpsertIndirectCost(_ context.Context, ic models.IndirectCost) (models.IndirectCost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if cur, ok := s.indirect[ic.Month]; ok {
		ic.CreatedAt = cur.CreatedAt
	} else {
		ic.CreatedAt = now
	}
	ic.UpdatedAt = now
	s.indirect[ic.Month] = ic
	return ic, nil
}

func (s *FixtureStore) ListODCItems(_ context.Context, month string) ([]models.ODCItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.odc[month]
	out := make([]models.ODCItem, len(items))
	copy(out, items)
	return out, nil
}

func (s *FixtureStore) AddODCItem(_ context.Context, item models.ODCItem) (models.ODCItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = s.now()
	}
	s.odc[item.Month] = append(s.odc[item.Month], item)
	return item, nil
}

func (s *FixtureStore) DeleteODCItem(_ context.Context, month, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.odc[month]
	for i, it := range items {
		if it.ID == id {
			next := make([]models.ODCItem, 0, len(items)-1)
			next = append(next, items[:i]...)
			next = append(next, items[i+1:]...)
			s.odc[month] = next
			return nil
		}
	}
	return domain.NotFound("odc item")
}

func (s *FixtureStore) GetProjectCost(_ context.Context, month string) (models.ProjectCostSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pc, ok := s.summaries[month]
	if !ok {
		return models.ProjectCostSummary{}, domain.NotFound("project cost")
	}
	items := make([]models.ODCItem, len(pc.ODCItems))
	copy(items, pc.ODCItems)
	pc.ODCItems = items
	return pc, nil
}

func (s *FixtureStore) SaveProjectCost(_ context.Context, pc models.ProjectCostSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.ODCItem, len(pc.ODCItems))
	copy(items, pc.ODCItems)
	pc.ODCItems = items
	if pc.UpdatedAt.IsZero() {
		pc.UpdatedAt = s.now()
	}
	s.summaries[pc.Month] = pc
	return nil
}

func cloneEmployee(e models.Employee) models.Employee {
	if e.MonthlyData != nil {
		data := make([]models.MonthlyRecord, len(e.MonthlyData))
		copy(data, e.MonthlyData)
		e.MonthlyData = data
	}
	if e.EndDate != nil {
		end := *e.EndDate
		e.EndDate = &end
	}
	return e
}

func sortEmployees(list []models.Employee) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].EmployeeName == list[j].EmployeeName {
			return list[i].ID < list[j].ID
		}
		return list[i].EmployeeName < list[j].EmployeeName
	})
}
