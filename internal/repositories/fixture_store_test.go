package repositories

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seasfinance/internal/domain"
	"seasfinance/internal/domain/models"
)

func TestFixtureStore_DemoData(t *testing.T) {
	s := NewDemoStore()
	ctx := context.Background()

	list, err := s.ListEmployees(ctx, models.EmployeeFilter{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "John Smith", list[0].EmployeeName)
	assert.Equal(t, "Miguel Torres", list[1].EmployeeName)
	assert.Equal(t, "Sarah Johnson", list[2].EmployeeName)
	assert.Greater(t, list[0].HourlyRate, 0.0)

	eng, err := s.ListEmployees(ctx, models.EmployeeFilter{Department: "Engineering"})
	require.NoError(t, err)
	assert.Len(t, eng, 1)

	items, err := s.ListODCItems(ctx, "2024-01")
	require.NoError(t, err)
	assert.Len(t, items, 3)

	ic, err := s.GetIndirectCost(ctx, "2024-01")
	require.NoError(t, err)
	assert.Equal(t, 23500.0, ic.TotalAmount)
}

func TestFixtureStore_EmployeeCRUD(t *testing.T) {
	s := NewFixtureStore()
	ctx := context.Background()

	created, err := s.CreateEmployee(ctx, models.Employee{EmployeeID: "EMP-1", EmployeeName: "Ada"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = s.CreateEmployee(ctx, models.Employee{EmployeeID: "EMP-1", EmployeeName: "Dup"})
	assert.True(t, domain.IsConflict(err))

	created.Department = "Operations"
	updated, err := s.UpdateEmployee(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "Operations", updated.Department)

	_, err = s.UpdateEmployee(ctx, models.Employee{ID: "missing"})
	assert.True(t, domain.IsNotFound(err))

	require.NoError(t, s.DeleteEmployee(ctx, created.ID))
	_, err = s.GetEmployee(ctx, created.ID)
	assert.True(t, domain.IsNotFound(err))
	assert.True(t, domain.IsNotFound(s.DeleteEmployee(ctx, created.ID)))
}

func TestFixtureStore_UpsertMonthlyRecordByMonth(t *testing.T) {
	s := NewFixtureStore()
	ctx := context.Background()
	e, err := s.CreateEmployee(ctx, models.Employee{EmployeeName: "Ada"})
	require.NoError(t, err)

	_, err = s.UpsertMonthlyRecord(ctx, e.ID, models.MonthlyRecord{Month: "2024-01", ActualHours: 100})
	require.NoError(t, err)
	got, err := s.UpsertMonthlyRecord(ctx, e.ID, models.MonthlyRecord{Month: "2024-01", ActualHours: 150})
	require.NoError(t, err)
	require.Len(t, got.MonthlyData, 1)
	assert.Equal(t, 150.0, got.MonthlyData[0].ActualHours)

	_, err = s.UpsertMonthlyRecord(ctx, "missing", models.MonthlyRecord{Month: "2024-01"})
	assert.True(t, domain.IsNotFound(err))
}

func TestFixtureStore_ReturnsCopies(t *testing.T) {
	s := NewDemoStore()
	ctx := context.Background()

	list, err := s.ListEmployees(ctx, models.EmployeeFilter{})
	require.NoError(t, err)
	list[0].MonthlyData[0].ActualHours = 0

	again, err := s.GetEmployee(ctx, list[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, 0.0, again.MonthlyData[0].ActualHours)
}

func TestFixtureStore_ODCDeleteByID(t *testing.T) {
	s := NewFixtureStore()
	ctx := context.Background()

	a, err := s.AddODCItem(ctx, models.ODCItem{Month: "2024-03", Category: "Travel", Amount: 100})
	require.NoError(t, err)
	b, err := s.AddODCItem(ctx, models.ODCItem{Month: "2024-03", Category: "Software", Amount: 200})
	require.NoError(t, err)
	c, err := s.AddODCItem(ctx, models.ODCItem{Month: "2024-03", Category: "Equipment", Amount: 300})
	require.NoError(t, err)

	require.NoError(t, s.DeleteODCItem(ctx, "2024-03", b.ID))
	items, err := s.ListODCItems(ctx, "2024-03")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, a.ID, items[0].ID)
	assert.Equal(t, c.ID, items[1].ID)

	assert.True(t, domain.IsNotFound(s.DeleteODCItem(ctx, "2024-03", b.ID)))
	assert.True(t, domain.IsNotFound(s.DeleteODCItem(ctx, "2024-04", a.ID)), "id must belong to the month")
}

func TestFixtureStore_ConcurrentODCAdds(t *testing.T) {
	s := NewFixtureStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.AddODCItem(ctx, models.ODCItem{Month: "2024-05", Amount: 1})
		}()
	}
	wg.Wait()

	items, err := s.ListODCItems(ctx, "2024-05")
	require.NoError(t, err)
	assert.Len(t, items, 50)
}

func TestFixtureStore_Distinct(t *testing.T) {
	s := NewDemoStore()
	ctx := context.Background()

	deps, err := s.Distinct(ctx, "department")
	require.NoError(t, err)
	assert.Equal(t, []string{"Data Science", "Engineering", "SEAS IT"}, deps)

	_, err = s.Distinct(ctx, "current_salary")
	assert.True(t, domain.IsInvalidArgument(err))
}

func TestFixtureStore_ProjectCost(t *testing.T) {
	s := NewFixtureStore()
	ctx := context.Background()

	_, err := s.GetProjectCost(ctx, "2024-01")
	assert.True(t, domain.IsNotFound(err))

	require.NoError(t, s.SaveProjectCost(ctx, models.ProjectCostSummary{Month: "2024-01", TotalCost: 10}))
	pc, err := s.GetProjectCost(ctx, "2024-01")
	require.NoError(t, err)
	assert.Equal(t, 10.0, pc.TotalCost)
	assert.False(t, pc.UpdatedAt.IsZero())
}
