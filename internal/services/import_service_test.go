package services

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seasfinance/internal/domain"
	"seasfinance/internal/domain/models"
	"seasfinance/internal/repositories"
)

func newImportService() (ImportService, *repositories.FixtureStore) {
	store := repositories.NewFixtureStore()
	return ImportService{
		Employees: EmployeeService{Store: store, Now: fixedNow},
		Costs:     CostService{Store: store, Now: fixedNow},
	}, store
}

func TestImportService_Employees(t *testing.T) {
	s, store := newImportService()
	csv := strings.Join([]string{
		"Employee_Name,Department,LCAT,Education_Level,Years_Experience,Priced_Salary,Current_Salary,Hours_Per_Month,Bill_Rate,Start_Date,End_Date,Notes",
		`Ada Lovelace,Engineering,Sr. SWE,PhD,10,"100,000",96000,160,90,2024-01-02,,first`,
		"Bad Salary,Engineering,,,,,lots,160,90,2024-01-02,,",
		",Engineering,,,,,1000,160,90,2024-01-02,,",
		"Grace Hopper,Operations,,,x,,1000,160,90,2024-01-02,,",
		"Alan Turing,Research,,,3,,120000,,100,2024-06-01,2024-12-31,",
	}, "\n")

	res, err := s.ImportEmployees(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 3, res.Failed)
	require.Len(t, res.Errors, 3)
	assert.Equal(t, 3, res.Errors[0].Row)
	assert.Contains(t, res.Errors[0].Message, "Current_Salary")
	assert.Equal(t, 4, res.Errors[1].Row)
	assert.Contains(t, res.Errors[1].Message, "employee_name")
	assert.Equal(t, 5, res.Errors[2].Row)

	list, err := store.ListEmployees(context.Background(), models.EmployeeFilter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ada Lovelace", list[0].EmployeeName)
	assert.Equal(t, 100000.0, list[0].PricedSalary)
	assert.Equal(t, 50.0, list[0].HourlyRate)
	assert.Equal(t, "Alan Turing", list[1].EmployeeName)
	assert.Equal(t, 120000.0, list[1].PricedSalary)
	require.NotNil(t, list[1].EndDate)
	assert.Equal(t, "2024-12-31", list[1].EndDate.String())
}

func TestImportService_IndirectCosts(t *testing.T) {
	s, store := newImportService()
	csv := "Month,Fringe_Amount,Overhead_Amount,GA_Amount,Profit_Amount,Notes\n" +
		"2024-01,7500,12000,2500,1500,jan\n" +
		"2024-13,1,1,1,1,bad month\n" +
		"2024-02,abc,0,0,0,\n"

	res, err := s.ImportIndirectCosts(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 2, res.Failed)

	ic, err := store.GetIndirectCost(context.Background(), "2024-01")
	require.NoError(t, err)
	assert.Equal(t, 23500.0, ic.TotalAmount)
}

func TestImportService_ODCItems(t *testing.T) {
	s, store := newImportService()
	csv := "Month,Category,Description,Amount,Notes\n" +
		"2024-01,Travel,Site visit,2500,\n" +
		"2024-01,Software,License,\"1,200.00\",annual\n" +
		"2024-01,,Missing category,10,\n"

	res, err := s.ImportODCItems(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 1, res.Failed)

	items, err := store.ListODCItems(context.Background(), "2024-01")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 1200.0, items[1].Amount)
}

func TestImportService_RejectsOutOfRangeAmounts(t *testing.T) {
	s, store := newImportService()
	ctx := context.Background()

	employees := "Employee_Name,Department,LCAT,Education_Level,Years_Experience,Priced_Salary,Current_Salary,Hours_Per_Month,Bill_Rate,Start_Date,End_Date,Notes\n" +
		"Huge Salary,Engineering,,,,,1e400,160,90,2024-01-02,,\n" +
		"Huge Rate,Engineering,,,,,1000,160,-1e400,2024-01-02,,\n"
	res, err := s.ImportEmployees(ctx, strings.NewReader(employees))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Imported)
	assert.Equal(t, 2, res.Failed)
	require.Len(t, res.Errors, 2)
	assert.Contains(t, res.Errors[0].Message, "Current_Salary")
	assert.Contains(t, res.Errors[1].Message, "Bill_Rate")

	indirect := "Month,Fringe_Amount,Overhead_Amount,GA_Amount,Profit_Amount,Notes\n" +
		"2024-05,1e400,-1,0,0,\n"
	res, err = s.ImportIndirectCosts(ctx, strings.NewReader(indirect))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Failed)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0].Message, "Fringe_Amount")

	odc := "Month,Category,Description,Amount,Notes\n2024-05,Travel,,1e400,\n"
	res, err = s.ImportODCItems(ctx, strings.NewReader(odc))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Failed)

	list, err := store.ListEmployees(ctx, models.EmployeeFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.NotPanics(t, func() {
		_, err = s.Costs.Summarize(ctx, domain.MonthKey{Year: 2024, Month: time.May})
	})
	require.NoError(t, err)
}

func TestImportService_UnreadableFile(t *testing.T) {
	s, _ := newImportService()
	_, err := s.ImportEmployees(context.Background(), strings.NewReader("Employee_Name\n\"unterminated"))
	assert.True(t, domain.IsInvalidArgument(err))
}

func TestImportService_ExportEmployees(t *testing.T) {
	store := repositories.NewDemoStore()
	s := ImportService{Employees: EmployeeService{Store: store}}

	var buf bytes.Buffer
	require.NoError(t, s.ExportEmployees(context.Background(), &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "Employee_ID,Employee_Name,Department"))
	assert.Contains(t, lines[1], "John Smith")
	assert.Contains(t, lines[1], "2023-01-15")
	assert.Contains(t, lines[1], "145000.00")
}
