package services

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/gocarina/gocsv"

	"seasfinance/internal/domain"
	"seasfinance/internal/domain/models"
	"seasfinance/internal/utils"
)

// ImportService loads employees, indirect costs and ODC items from CSV and
// exports the roster. Rows are imported one by one; a bad row is reported
// and skipped.
type ImportService struct {
	Employees EmployeeService
	Costs     CostService
	RequestID string
}

type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type ImportResult struct {
	Imported int        `json:"imported"`
	Failed   int        `json:"failed"`
	Errors   []RowError `json:"errors"`
}

func (r *ImportResult) fail(row int, err error) {
	r.Failed++
	r.Errors = append(r.Errors, RowError{Row: row, Message: err.Error()})
}

type employeeCSV struct {
	EmployeeName    string `csv:"Employee_Name"`
	Department      string `csv:"Department"`
	LCAT            string `csv:"LCAT"`
	EducationLevel  string `csv:"Education_Level"`
	YearsExperience string `csv:"Years_Experience"`
	PricedSalary    string `csv:"Priced_Salary"`
	CurrentSalary   string `csv:"Current_Salary"`
	HoursPerMonth   string `csv:"Hours_Per_Month"`
	BillRate        string `csv:"Bill_Rate"`
	StartDate       string `csv:"Start_Date"`
	EndDate         string `csv:"End_Date"`
	Notes           string `csv:"Notes"`
}

type indirectCSV struct {
	Month          string `csv:"Month"`
	FringeAmount   string `csv:"Fringe_Amount"`
	OverheadAmount string `csv:"Overhead_Amount"`
	GAAmount       string `csv:"GA_Amount"`
	ProfitAmount   string `csv:"Profit_Amount"`
	Notes          string `csv:"Notes"`
}

type odcCSV struct {
	Month       string `csv:"Month"`
	Category    string `csv:"Category"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
	Notes       string `csv:"Notes"`
}

type employeeExportCSV struct {
	EmployeeID     string      `csv:"Employee_ID"`
	EmployeeName   string      `csv:"Employee_Name"`
	Department     string      `csv:"Department"`
	LCAT           string      `csv:"LCAT"`
	EducationLevel string      `csv:"Education_Level"`
	Status         string      `csv:"Status"`
	EmployeeType   string      `csv:"Employee_Type"`
	CurrentSalary  string      `csv:"Current_Salary"`
	HoursPerMonth  string      `csv:"Hours_Per_Month"`
	BillRate       string      `csv:"Bill_Rate"`
	HourlyRate     string      `csv:"Hourly_Rate"`
	StartDate      models.Date `csv:"Start_Date"`
	EndDate        string      `csv:"End_Date"`
}

// Data rows start on line 2, after the header.
func csvLine(i int) int { return i + 2 }

func readCSV[T any](r io.Reader) ([]*T, error) {
	var rows []*T
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, domain.InvalidArgumentError{Field: "file", Msg: "unreadable CSV", Err: err}
	}
	return rows, nil
}

func (s ImportService) ImportEmployees(ctx context.Context, r io.Reader) (ImportResult, error) {
	rows, err := readCSV[employeeCSV](r)
	if err != nil {
		return ImportResult{}, err
	}
	res := ImportResult{Errors: []RowError{}}
	for i, row := range rows {
		e, err := row.employee()
		if err == nil {
			_, err = s.Employees.Create(ctx, e)
		}
		if err != nil {
			res.fail(csvLine(i), err)
			continue
		}
		res.Imported++
	}
	utils.LogEvent(s.RequestID, "import", "employees", fmt.Sprintf("imported=%d failed=%d", res.Imported, res.Failed))
	return res, nil
}

func (row employeeCSV) employee() (models.Employee, error) {
	e := models.Employee{
		EmployeeName:   utils.NormalizeSpace(row.EmployeeName),
		Department:     utils.NormalizeSpace(row.Department),
		LCAT:           utils.NormalizeSpace(row.LCAT),
		EducationLevel: utils.NormalizeSpace(row.EducationLevel),
		Notes:          utils.TrimOrEmpty(row.Notes),
	}
	if v := utils.TrimOrEmpty(row.YearsExperience); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return e, domain.Invalid("Years_Experience", fmt.Sprintf("not a number: %q", v))
		}
		e.YearsExperience = n
	}
	if err := parseAmounts(
		parsedAmount{"Priced_Salary", row.PricedSalary, &e.PricedSalary},
		parsedAmount{"Current_Salary", row.CurrentSalary, &e.CurrentSalary},
		parsedAmount{"Hours_Per_Month", row.HoursPerMonth, &e.HoursPerMonth},
		parsedAmount{"Bill_Rate", row.BillRate, &e.BillRate},
	); err != nil {
		return e, err
	}
	if e.PricedSalary == 0 {
		e.PricedSalary = e.CurrentSalary
	}

	if v := utils.TrimOrEmpty(row.StartDate); v != "" {
		d, err := models.ParseDate(v)
		if err != nil {
			return e, domain.Invalid("Start_Date", fmt.Sprintf("expected YYYY-MM-DD, got %q", v))
		}
		e.StartDate = d
	} else {
		e.StartDate = models.DateOf(utils.NowUTC())
	}
	if v := utils.TrimOrEmpty(row.EndDate); v != "" {
		d, err := models.ParseDate(v)
		if err != nil {
			return e, domain.Invalid("End_Date", fmt.Sprintf("expected YYYY-MM-DD, got %q", v))
		}
		e.EndDate = &d
	}
	return e, nil
}

func (s ImportService) ImportIndirectCosts(ctx context.Context, r io.Reader) (ImportResult, error) {
	rows, err := readCSV[indirectCSV](r)
	if err != nil {
		return ImportResult{}, err
	}
	res := ImportResult{Errors: []RowError{}}
	for i, row := range rows {
		ic := models.IndirectCost{Month: row.Month, Notes: row.Notes}
		err := parseAmounts(
			parsedAmount{"Fringe_Amount", row.FringeAmount, &ic.FringeAmount},
			parsedAmount{"Overhead_Amount", row.OverheadAmount, &ic.OverheadAmount},
			parsedAmount{"GA_Amount", row.GAAmount, &ic.GAAmount},
			parsedAmount{"Profit_Amount", row.ProfitAmount, &ic.ProfitAmount},
		)
		if err == nil {
			_, err = s.Costs.UpsertIndirect(ctx, ic)
		}
		if err != nil {
			res.fail(csvLine(i), err)
			continue
		}
		res.Imported++
	}
	utils.LogEvent(s.RequestID, "import", "indirect_costs", fmt.Sprintf("imported=%d failed=%d", res.Imported, res.Failed))
	return res, nil
}

func (s ImportService) ImportODCItems(ctx context.Context, r io.Reader) (ImportResult, error) {
	rows, err := readCSV[odcCSV](r)
	if err != nil {
		return ImportResult{}, err
	}
	res := ImportResult{Errors: []RowError{}}
	for i, row := range rows {
		item := models.ODCItem{
			Month:       row.Month,
			Category:    row.Category,
			Description: row.Description,
			Notes:       utils.TrimOrEmpty(row.Notes),
		}
		err := parseAmounts(parsedAmount{"Amount", row.Amount, &item.Amount})
		if err == nil {
			_, err = s.Costs.AddODC(ctx, item)
		}
		if err != nil {
			res.fail(csvLine(i), err)
			continue
		}
		res.Imported++
	}
	utils.LogEvent(s.RequestID, "import", "odc_items", fmt.Sprintf("imported=%d failed=%d", res.Imported, res.Failed))
	return res, nil
}

type parsedAmount struct {
	name string
	raw  string
	dst  *float64
}

// parseAmounts fills each destination in order and stops at the first bad cell.
func parseAmounts(fields ...parsedAmount) error {
	for _, f := range fields {
		v, err := utils.ParseAmount(f.raw)
		if err != nil {
			return domain.Invalid(f.name, err.Error())
		}
		*f.dst = v
	}
	return nil
}

// ExportEmployees writes the roster as CSV, sorted by name.
func (s ImportService) ExportEmployees(ctx context.Context, w io.Writer) error {
	list, err := s.Employees.List(ctx, "", "", false)
	if err != nil {
		return err
	}
	rows := make([]employeeExportCSV, 0, len(list))
	for _, e := range list {
		end := ""
		if e.EndDate != nil {
			end = e.EndDate.String()
		}
		rows = append(rows, employeeExportCSV{
			EmployeeID:     e.EmployeeID,
			EmployeeName:   e.EmployeeName,
			Department:     e.Department,
			LCAT:           e.LCAT,
			EducationLevel: e.EducationLevel,
			Status:         e.Status,
			EmployeeType:   e.EmployeeType,
			CurrentSalary:  utils.FormatMoney(e.CurrentSalary),
			HoursPerMonth:  utils.FormatMoney(e.DefaultHours()),
			BillRate:       utils.FormatMoney(e.BillRate),
			HourlyRate:     utils.FormatMoney(e.HourlyCost()),
			StartDate:      e.StartDate,
			EndDate:        end,
		})
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return domain.InternalError{Msg: "csv export failed", Err: err}
	}
	utils.LogEvent(s.RequestID, "import", "export_employees", fmt.Sprintf("rows=%d", len(rows)))
	return nil
}
