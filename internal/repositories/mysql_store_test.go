package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seasfinance/internal/domain"
	"seasfinance/internal/domain/models"
)

var fixedNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func newMockStore(t *testing.T) (*MySQLStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	s := NewMySQLStore(db)
	s.Now = func() time.Time { return fixedNow }
	return s, mock
}

var employeeCols = []string{"id", "employee_id", "employee_name", "department", "lcat", "education_level",
	"years_experience", "role", "status", "employee_type", "subcontractor_company", "priced_salary",
	"current_salary", "hours_per_month", "bill_rate", "hourly_rate", "start_date", "end_date", "notes",
	"created_at", "updated_at"}

func TestMySQLStore_Migrate(t *testing.T) {
	s, mock := newMockStore(t)
	for range schema {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
	}
	require.NoError(t, s.Migrate(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLStore_ListEmployeesLoadsRecords(t *testing.T) {
	s, mock := newMockStore(t)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM employees WHERE department = ? ORDER BY employee_name, id")).
		WithArgs("Engineering").
		WillReturnRows(sqlmock.NewRows(employeeCols).
			AddRow("e1", "EMP-1", "Ada", "Engineering", "SWE", "PhD", 5, "Employee", "Active", "Employee", "",
				100000.0, 120000.0, 160.0, 95.0, 62.5, time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), nil, "lead",
				fixedNow, fixedNow).
			AddRow("e2", "EMP-2", "Bob", "Engineering", "SWE", "BS", 2, "Employee", "Active", "Subcontractor", "Acme",
				90000.0, 96000.0, 160.0, 80.0, 50.0, time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), end, nil,
				fixedNow, fixedNow))
	mock.ExpectQuery(regexp.QuoteMeta("FROM monthly_records WHERE employee_id IN (?,?)")).
		WithArgs("e1", "e2").
		WillReturnRows(sqlmock.NewRows([]string{"employee_id", "month", "hours", "revenue", "actual_hours", "actual_revenue", "notes"}).
			AddRow("e1", "2024-01", 160.0, 15200.0, 150.0, 14250.0, nil).
			AddRow("e1", "2024-02", 160.0, 15200.0, 160.0, 15200.0, "ok"))

	list, err := s.ListEmployees(context.Background(), models.EmployeeFilter{Department: "Engineering", LCAT: "all"})
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "Ada", list[0].EmployeeName)
	assert.Equal(t, "2023-01-02", list[0].StartDate.String())
	assert.Nil(t, list[0].EndDate)
	assert.Equal(t, "lead", list[0].Notes)
	require.Len(t, list[0].MonthlyData, 2)
	assert.Equal(t, 150.0, list[0].MonthlyData[0].ActualHours)
	assert.Equal(t, "ok", list[0].MonthlyData[1].Notes)

	require.NotNil(t, list[1].EndDate)
	assert.Equal(t, "2024-06-30", list[1].EndDate.String())
	assert.NotNil(t, list[1].MonthlyData)
	assert.Empty(t, list[1].MonthlyData)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLStore_GetEmployeeNotFound(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM employees WHERE id = ?")).
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetEmployee(context.Background(), "nope")
	assert.True(t, domain.IsNotFound(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLStore_CreateEmployeeDuplicate(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO employees")).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectRollback()

	_, err := s.CreateEmployee(context.Background(), models.Employee{ID: "e1", EmployeeID: "EMP-1", EmployeeName: "Ada"})
	assert.True(t, domain.IsConflict(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLStore_CreateEmployeeWithRecords(t *testing.T) {
	s, mock := newMockStore(t)
	e := models.Employee{
		ID: "e1", EmployeeID: "EMP-1", EmployeeName: "Ada", HoursPerMonth: 160,
		StartDate:   models.NewDate(2024, time.January, 8),
		MonthlyData: []models.MonthlyRecord{{Month: "2024-01", Hours: 160, ActualHours: 150}},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO employees")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO monthly_records")).
		WithArgs("e1", "2024-01", 160.0, 0.0, 150.0, 0.0, "").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	got, err := s.CreateEmployee(context.Background(), e)
	require.NoError(t, err)
	assert.Equal(t, fixedNow, got.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLStore_UpsertMonthlyRecordMissingEmployee(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM employees WHERE id = ?")).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	_, err := s.UpsertMonthlyRecord(context.Background(), "ghost", models.MonthlyRecord{Month: "2024-01"})
	assert.True(t, domain.IsNotFound(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLStore_DeleteEmployee(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM employees WHERE id = ?")).
		WithArgs("e1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM employees WHERE id = ?")).
		WithArgs("e1").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.DeleteEmployee(context.Background(), "e1"))
	assert.True(t, domain.IsNotFound(s.DeleteEmployee(context.Background(), "e1")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLStore_UpsertIndirectCost(t *testing.T) {
	s, mock := newMockStore(t)
	ic := models.IndirectCost{Month: "2024-01", FringeAmount: 1, OverheadAmount: 2, GAAmount: 3, ProfitAmount: 4, TotalAmount: 10, Notes: "n"}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO indirect_costs")).
		WithArgs("2024-01", 1.0, 2.0, 3.0, 4.0, 10.0, "n", fixedNow, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("FROM indirect_costs WHERE month = ?")).
		WithArgs("2024-01").
		WillReturnRows(sqlmock.NewRows([]string{"month", "fringe_amount", "overhead_amount", "ga_amount",
			"profit_amount", "total_indirect_amount", "notes", "created_at", "updated_at"}).
			AddRow("2024-01", 1.0, 2.0, 3.0, 4.0, 10.0, "n", fixedNow, fixedNow))

	got, err := s.UpsertIndirectCost(context.Background(), ic)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got.TotalAmount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLStore_ODCItems(t *testing.T) {
	s, mock := newMockStore(t)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO odc_items")).
		WithArgs(sqlmock.AnyArg(), "2024-01", "Travel", "Trip", 2500.0, "", fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	it, err := s.AddODCItem(ctx, models.ODCItem{Month: "2024-01", Category: "Travel", Description: "Trip", Amount: 2500})
	require.NoError(t, err)
	assert.Len(t, it.ID, 36)

	mock.ExpectQuery(regexp.QuoteMeta("FROM odc_items WHERE month = ? ORDER BY created_at, id")).
		WithArgs("2024-01").
		WillReturnRows(sqlmock.NewRows([]string{"id", "month", "category", "description", "amount", "notes", "created_at"}).
			AddRow(it.ID, "2024-01", "Travel", "Trip", 2500.0, nil, fixedNow))
	items, err := s.ListODCItems(ctx, "2024-01")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, it.ID, items[0].ID)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM odc_items WHERE month = ? AND id = ?")).
		WithArgs("2024-01", "other").
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.True(t, domain.IsNotFound(s.DeleteODCItem(ctx, "2024-01", "other")))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLStore_DistinctRejectsUnknownField(t *testing.T) {
	s, mock := newMockStore(t)
	_, err := s.Distinct(context.Background(), "notes; DROP TABLE employees")
	assert.True(t, domain.IsInvalidArgument(err))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT lcat FROM employees WHERE lcat <> '' ORDER BY lcat")).
		WillReturnRows(sqlmock.NewRows([]string{"lcat"}).AddRow("PM").AddRow("SWE"))
	vals, err := s.Distinct(context.Background(), "lcat")
	require.NoError(t, err)
	assert.Equal(t, []string{"PM", "SWE"}, vals)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLStore_ProjectCostRoundTrip(t *testing.T) {
	s, mock := newMockStore(t)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("FROM project_costs WHERE month = ?")).
		WithArgs("2024-02").
		WillReturnError(sql.ErrNoRows)
	_, err := s.GetProjectCost(ctx, "2024-02")
	assert.True(t, domain.IsNotFound(err))

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO project_costs")).
		WithArgs("2024-02", 28800.0, 320.0, 0.0, 6900.0, 7344.0, 11520.0, 2448.0, 1440.0, 22752.0, 58452.0, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	err = s.SaveProjectCost(ctx, models.ProjectCostSummary{
		Month: "2024-02", DirectLaborCost: 28800, DirectLaborHours: 320, TotalODCCost: 6900,
		FringeCost: 7344, OverheadCost: 11520, GACost: 2448, ProfitCost: 1440, TotalIndirectCost: 22752, TotalCost: 58452,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
