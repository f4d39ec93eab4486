package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"seasfinance/internal/db"
	"seasfinance/internal/domain"
	"seasfinance/internal/domain/models"
)

// MySQLStore is the relational DataSource. Monthly records live in their own
// table keyed by (employee_id, month); ODC items are keyed by id.
type MySQLStore struct {
	DB  *sql.DB
	Now func() time.Time
}

func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{DB: db, Now: time.Now}
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id CHAR(36) NOT NULL PRIMARY KEY,
		employee_id VARCHAR(32) NOT NULL,
		employee_name VARCHAR(255) NOT NULL,
		department VARCHAR(128) NOT NULL DEFAULT '',
		lcat VARCHAR(255) NOT NULL DEFAULT '',
		education_level VARCHAR(64) NOT NULL DEFAULT '',
		years_experience INT NOT NULL DEFAULT 0,
		role VARCHAR(32) NOT NULL DEFAULT 'Employee',
		status VARCHAR(16) NOT NULL DEFAULT 'Active',
		employee_type VARCHAR(16) NOT NULL DEFAULT 'Employee',
		subcontractor_company VARCHAR(255) NOT NULL DEFAULT '',
		priced_salary DECIMAL(14,2) NOT NULL DEFAULT 0,
		current_salary DECIMAL(14,2) NOT NULL DEFAULT 0,
		hours_per_month DECIMAL(8,2) NOT NULL DEFAULT 160,
		bill_rate DECIMAL(10,2) NOT NULL DEFAULT 0,
		hourly_rate DECIMAL(12,4) NOT NULL DEFAULT 0,
		start_date DATE NULL,
		end_date DATE NULL,
		notes TEXT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		UNIQUE KEY uq_employees_employee_id (employee_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS monthly_records (
		employee_id CHAR(36) NOT NULL,
		month CHAR(7) NOT NULL,
		hours DECIMAL(8,2) NOT NULL DEFAULT 0,
		revenue DECIMAL(14,2) NOT NULL DEFAULT 0,
		actual_hours DECIMAL(8,2) NOT NULL DEFAULT 0,
		actual_revenue DECIMAL(14,2) NOT NULL DEFAULT 0,
		notes TEXT NULL,
		PRIMARY KEY (employee_id, month),
		CONSTRAINT fk_monthly_records_employee FOREIGN KEY (employee_id) REFERENCES employees(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS indirect_costs (
		month CHAR(7) NOT NULL PRIMARY KEY,
		fringe_amount DECIMAL(14,2) NOT NULL DEFAULT 0,
		overhead_amount DECIMAL(14,2) NOT NULL DEFAULT 0,
		ga_amount DECIMAL(14,2) NOT NULL DEFAULT 0,
		profit_amount DECIMAL(14,2) NOT NULL DEFAULT 0,
		total_indirect_amount DECIMAL(14,2) NOT NULL DEFAULT 0,
		notes TEXT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS odc_items (
		id CHAR(36) NOT NULL PRIMARY KEY,
		month CHAR(7) NOT NULL,
		category VARCHAR(64) NOT NULL,
		description VARCHAR(255) NOT NULL,
		amount DECIMAL(14,2) NOT NULL DEFAULT 0,
		notes TEXT NULL,
		created_at DATETIME(6) NOT NULL,
		KEY idx_odc_items_month (month, created_at)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS project_costs (
		month CHAR(7) NOT NULL PRIMARY KEY,
		direct_labor_cost DECIMAL(14,2) NOT NULL DEFAULT 0,
		direct_labor_hours DECIMAL(10,2) NOT NULL DEFAULT 0,
		subcontractor_cost DECIMAL(14,2) NOT NULL DEFAULT 0,
		total_odc_cost DECIMAL(14,2) NOT NULL DEFAULT 0,
		fringe_cost DECIMAL(14,2) NOT NULL DEFAULT 0,
		overhead_cost DECIMAL(14,2) NOT NULL DEFAULT 0,
		ga_cost DECIMAL(14,2) NOT NULL DEFAULT 0,
		profit_cost DECIMAL(14,2) NOT NULL DEFAULT 0,
		total_indirect_cost DECIMAL(14,2) NOT NULL DEFAULT 0,
		total_cost DECIMAL(14,2) NOT NULL DEFAULT 0,
		updated_at DATETIME NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Migrate creates the tables if they do not exist.
func (s *MySQLStore) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

func (s *MySQLStore) Name() string { return "mysql" }

func (s *MySQLStore) Ping(ctx context.Context) error { return s.DB.PingContext(ctx) }

func (s *MySQLStore) Close(context.Context) error { return s.DB.Close() }

const employeeColumns = `id, employee_id, employee_name, department, lcat, education_level, years_experience,
	role, status, employee_type, subcontractor_company, priced_salary, current_salary, hours_per_month,
	bill_rate, hourly_rate, start_date, end_date, notes, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (models.Employee, error) {
	var (
		e     models.Employee
		start models.Date
		end   models.Date
		notes sql.NullString
	)
	err := row.Scan(&e.ID, &e.EmployeeID, &e.EmployeeName, &e.Department, &e.LCAT, &e.EducationLevel,
		&e.YearsExperience, &e.Role, &e.Status, &e.EmployeeType, &e.SubcontractorCompany,
		&e.PricedSalary, &e.CurrentSalary, &e.HoursPerMonth, &e.BillRate, &e.HourlyRate,
		&start, &end, &notes, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return models.Employee{}, err
	}
	e.StartDate = start
	if !end.IsZero() {
		e.EndDate = &end
	}
	e.Notes = notes.String
	e.MonthlyData = []models.MonthlyRecord{}
	return e, nil
}

func (s *MySQLStore) ListEmployees(ctx context.Context, f models.EmployeeFilter) ([]models.Employee, error) {
	where := []string{}
	args := []any{}
	if f.Department != "" && !strings.EqualFold(f.Department, "all") {
		where = append(where, "department = ?")
		args = append(args, f.Department)
	}
	if f.LCAT != "" && !strings.EqualFold(f.LCAT, "all") {
		where = append(where, "lcat = ?")
		args = append(args, f.LCAT)
	}
	q := `SELECT ` + employeeColumns + ` FROM employees`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	q += ` ORDER BY employee_name, id`

	rows, err := s.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}

	ids := make([]string, len(list))
	for i, e := range list {
		ids[i] = e.ID
	}
	records, err := s.loadRecords(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if recs, ok := records[list[i].ID]; ok {
			list[i].MonthlyData = recs
		}
	}
	return list, nil
}

func (s *MySQLStore) loadRecords(ctx context.Context, employeeIDs []string) (map[string][]models.MonthlyRecord, error) {
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(employeeIDs)), ",")
	args := make([]any, len(employeeIDs))
	for i, id := range employeeIDs {
		args[i] = id
	}
	rows, err := s.DB.QueryContext(ctx, `SELECT employee_id, month, hours, revenue, actual_hours, actual_revenue, notes
		FROM monthly_records WHERE employee_id IN (`+placeholders+`) ORDER BY employee_id, month`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string][]models.MonthlyRecord{}
	for rows.Next() {
		var (
			empID string
			r     models.MonthlyRecord
			notes sql.NullString
		)
		if err := rows.Scan(&empID, &r.Month, &r.Hours, &r.Revenue, &r.ActualHours, &r.ActualRevenue, &notes); err != nil {
			return nil, err
		}
		r.Notes = notes.String
		out[empID] = append(out[empID], r)
	}
	return out, rows.Err()
}

func (s *MySQLStore) GetEmployee(ctx context.Context, id string) (models.Employee, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = ?`, id)
	e, err := scanEmployee(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Employee{}, domain.NotFoundError{Resource: "employee", Err: err}
	}
	if err != nil {
		return models.Employee{}, err
	}
	records, err := s.loadRecords(ctx, []string{id})
	if err != nil {
		return models.Employee{}, err
	}
	if recs, ok := records[id]; ok {
		e.MonthlyData = recs
	}
	return e, nil
}

func employeeArgs(e models.Employee) []any {
	var end any
	if e.EndDate != nil {
		end = db.NullIfZero(e.EndDate.Time)
	}
	return []any{e.EmployeeID, e.EmployeeName, e.Department, e.LCAT, e.EducationLevel, e.YearsExperience,
		e.Role, e.Status, e.EmployeeType, e.SubcontractorCompany, e.PricedSalary, e.CurrentSalary,
		e.HoursPerMonth, e.BillRate, e.HourlyRate, db.NullIfZero(e.StartDate.Time), end, db.NullIfEmpty(e.Notes)}
}

func (s *MySQLStore) CreateEmployee(ctx context.Context, e models.Employee) (models.Employee, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	now := s.Now()
	e.CreatedAt, e.UpdatedAt = now, now

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Employee{}, err
	}
	defer func() { _ = tx.Rollback() }()

	args := append([]any{e.ID}, employeeArgs(e)...)
	args = append(args, e.CreatedAt, e.UpdatedAt)
	_, err = tx.ExecContext(ctx, `INSERT INTO employees (`+employeeColumns+`)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`, args...)
	if err != nil {
		return models.Employee{}, mapMySQLError(err, "employee")
	}
	for _, r := range e.MonthlyData {
		if err := upsertRecordTx(ctx, tx, e.ID, r); err != nil {
			return models.Employee{}, err
		}
	}
	if err := tx.Commit(); err != nil {
		return models.Employee{}, err
	}
	return e, nil
}

func (s *MySQLStore) UpdateEmployee(ctx context.Context, e models.Employee) (models.Employee, error) {
	e.UpdatedAt = s.Now()
	args := append(employeeArgs(e), e.UpdatedAt, e.ID)
	_, err := s.DB.ExecContext(ctx, `UPDATE employees SET employee_id=?, employee_name=?, department=?, lcat=?,
		education_level=?, years_experience=?, role=?, status=?, employee_type=?, subcontractor_company=?,
		priced_salary=?, current_salary=?, hours_per_month=?, bill_rate=?, hourly_rate=?, start_date=?,
		end_date=?, notes=?, updated_at=? WHERE id=?`, args...)
	if err != nil {
		return models.Employee{}, mapMySQLError(err, "employee")
	}
	// RowsAffected is 0 for an unchanged row too; the reload reports a missing one.
	return s.GetEmployee(ctx, e.ID)
}

func (s *MySQLStore) DeleteEmployee(ctx context.Context, id string) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFound("employee")
	}
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsertRecordTx(ctx context.Context, ex execer, employeeID string, r models.MonthlyRecord) error {
	_, err := ex.ExecContext(ctx, `INSERT INTO monthly_records (employee_id, month, hours, revenue, actual_hours, actual_revenue, notes)
		VALUES (?,?,?,?,?,?,?)
		ON DUPLICATE KEY UPDATE hours=VALUES(hours), revenue=VALUES(revenue), actual_hours=VALUES(actual_hours),
		actual_revenue=VALUES(actual_revenue), notes=VALUES(notes)`,
		employeeID, r.Month, r.Hours, r.Revenue, r.ActualHours, r.ActualRevenue, r.Notes)
	return err
}

func (s *MySQLStore) UpsertMonthlyRecord(ctx context.Context, employeeID string, rec models.MonthlyRecord) (models.Employee, error) {
	var exists int
	err := s.DB.QueryRowContext(ctx, `SELECT 1 FROM employees WHERE id = ?`, employeeID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Employee{}, domain.NotFoundError{Resource: "employee", Err: err}
	}
	if err != nil {
		return models.Employee{}, err
	}
	if err := upsertRecordTx(ctx, s.DB, employeeID, rec); err != nil {
		return models.Employee{}, err
	}
	return s.GetEmployee(ctx, employeeID)
}

func (s *MySQLStore) Distinct(ctx context.Context, field string) ([]string, error) {
	if !distinctFields[field] {
		return nil, domain.Invalid("field", "unsupported distinct field "+field)
	}
	rows, err := s.DB.QueryContext(ctx, `SELECT DISTINCT `+field+` FROM employees WHERE `+field+` <> '' ORDER BY `+field)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *MySQLStore) GetIndirectCost(ctx context.Context, month string) (models.IndirectCost, error) {
	var (
		ic    models.IndirectCost
		notes sql.NullString
	)
	err := s.DB.QueryRowContext(ctx, `SELECT month, fringe_amount, overhead_amount, ga_amount, profit_amount,
		total_indirect_amount, notes, created_at, updated_at FROM indirect_costs WHERE month = ?`, month).
		Scan(&ic.Month, &ic.FringeAmount, &ic.OverheadAmount, &ic.GAAmount, &ic.ProfitAmount,
			&ic.TotalAmount, &notes, &ic.CreatedAt, &ic.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.IndirectCost{}, domain.NotFoundError{Resource: "indirect cost", Err: err}
	}
	if err != nil {
		return models.IndirectCost{}, err
	}
	ic.Notes = notes.String
	return ic, nil
}

func (s *MySQLStore) UpsertIndirectCost(ctx context.Context, ic models.IndirectCost) (models.IndirectCost, error) {
	now := s.Now()
	_, err := s.DB.ExecContext(ctx, `INSERT INTO indirect_costs
		(month, fringe_amount, overhead_amount, ga_amount, profit_amount, total_indirect_amount, notes, created_at, updated_at)
		VALUES (?,?,?,?,?,?,?,?,?)
		ON DUPLICATE KEY UPDATE fringe_amount=VALUES(fringe_amount), overhead_amount=VALUES(overhead_amount),
		ga_amount=VALUES(ga_amount), profit_amount=VALUES(profit_amount),
		total_indirect_amount=VALUES(total_indirect_amount), notes=VALUES(notes), updated_at=VALUES(updated_at)`,
		ic.Month, ic.FringeAmount, ic.OverheadAmount, ic.GAAmount, ic.ProfitAmount, ic.TotalAmount, ic.Notes, now, now)
	if err != nil {
		return models.IndirectCost{}, err
	}
	return s.GetIndirectCost(ctx, ic.Month)
}

func (s *MySQLStore) ListODCItems(ctx context.Context, month string) ([]models.ODCItem, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT id, month, category, description, amount, notes, created_at
		FROM odc_items WHERE month = ? ORDER BY created_at, id`, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ODCItem{}
	for rows.Next() {
		var (
			it    models.ODCItem
			notes sql.NullString
		)
		if err := rows.Scan(&it.ID, &it.Month, &it.Category, &it.Description, &it.Amount, &notes, &it.CreatedAt); err != nil {
			return nil, err
		}
		it.Notes = notes.String
		out = append(out, it)
	}
	return out, rows.Err()
}

func (s *MySQLStore) AddODCItem(ctx context.Context, it models.ODCItem) (models.ODCItem, error) {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	if it.CreatedAt.IsZero() {
		it.CreatedAt = s.Now()
	}
	_, err := s.DB.ExecContext(ctx, `INSERT INTO odc_items (id, month, category, description, amount, notes, created_at)
		VALUES (?,?,?,?,?,?,?)`, it.ID, it.Month, it.Category, it.Description, it.Amount, it.Notes, it.CreatedAt)
	if err != nil {
		return models.ODCItem{}, mapMySQLError(err, "odc item")
	}
	return it, nil
}

func (s *MySQLStore) DeleteODCItem(ctx context.Context, month, id string) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM odc_items WHERE month = ? AND id = ?`, month, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFound("odc item")
	}
	return nil
}

func (s *MySQLStore) GetProjectCost(ctx context.Context, month string) (models.ProjectCostSummary, error) {
	var pc models.ProjectCostSummary
	err := s.DB.QueryRowContext(ctx, `SELECT month, direct_labor_cost, direct_labor_hours, subcontractor_cost,
		total_odc_cost, fringe_cost, overhead_cost, ga_cost, profit_cost, total_indirect_cost, total_cost, updated_at
		FROM project_costs WHERE month = ?`, month).
		Scan(&pc.Month, &pc.DirectLaborCost, &pc.DirectLaborHours, &pc.SubcontractorCost, &pc.TotalODCCost,
			&pc.FringeCost, &pc.OverheadCost, &pc.GACost, &pc.ProfitCost, &pc.TotalIndirectCost, &pc.TotalCost, &pc.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ProjectCostSummary{}, domain.NotFoundError{Resource: "project cost", Err: err}
	}
	if err != nil {
		return models.ProjectCostSummary{}, err
	}
	items, err := s.ListODCItems(ctx, month)
	if err != nil {
		return models.ProjectCostSummary{}, err
	}
	pc.ODCItems = items
	return pc, nil
}

func (s *MySQLStore) SaveProjectCost(ctx context.Context, pc models.ProjectCostSummary) error {
	if pc.UpdatedAt.IsZero() {
		pc.UpdatedAt = s.Now()
	}
	_, err := s.DB.ExecContext(ctx, `INSERT INTO project_costs
		(month, direct_labor_cost, direct_labor_hours, subcontractor_cost, total_odc_cost, fringe_cost,
		overhead_cost, ga_cost, profit_cost, total_indirect_cost, total_cost, updated_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)
		ON DUPLICATE KEY UPDATE direct_labor_cost=VALUES(direct_labor_cost), direct_labor_hours=VALUES(direct_labor_hours),
		subcontractor_cost=VALUES(subcontractor_cost), total_odc_cost=VALUES(total_odc_cost),
		fringe_cost=VALUES(fringe_cost), overhead_cost=VALUES(overhead_cost), ga_cost=VALUES(ga_cost),
		profit_cost=VALUES(profit_cost), total_indirect_cost=VALUES(total_indirect_cost),
		total_cost=VALUES(total_cost), updated_at=VALUES(updated_at)`,
		pc.Month, pc.DirectLaborCost, pc.DirectLaborHours, pc.SubcontractorCost, pc.TotalODCCost, pc.FringeCost,
		pc.OverheadCost, pc.GACost, pc.ProfitCost, pc.TotalIndirectCost, pc.TotalCost, pc.UpdatedAt)
	return err
}

// mapMySQLError turns duplicate-key failures into domain conflicts.
func mapMySQLError(err error, resource string) error {
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == 1062 {
		return domain.ConflictError{Resource: resource, Msg: "duplicate key", Err: err}
	}
	return err
}
