package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"seasfinance/internal/domain/models"
	"seasfinance/internal/services"
)

type employeeRequest struct {
	EmployeeID           string       `json:"employee_id"`
	EmployeeName         string       `json:"employee_name" binding:"required"`
	Department           string       `json:"department"`
	LCAT                 string       `json:"lcat"`
	EducationLevel       string       `json:"education_level"`
	YearsExperience      int          `json:"years_experience" binding:"gte=0"`
	Role                 string       `json:"role" binding:"omitempty,oneof=Employee Manager"`
	Status               string       `json:"status" binding:"omitempty,oneof=Active Inactive"`
	EmployeeType         string       `json:"employee_type" binding:"omitempty,oneof=Employee Subcontractor"`
	SubcontractorCompany string       `json:"subcontractor_company"`
	PricedSalary         float64      `json:"priced_salary" binding:"gte=0"`
	CurrentSalary        float64      `json:"current_salary" binding:"gte=0"`
	HoursPerMonth        float64      `json:"hours_per_month" binding:"gte=0"`
	BillRate             float64      `json:"bill_rate" binding:"gte=0"`
	StartDate            models.Date  `json:"start_date"`
	EndDate              *models.Date `json:"end_date"`
	Notes                string       `json:"notes"`
}

func (r employeeRequest) model() models.Employee {
	return models.Employee{
		EmployeeID:           r.EmployeeID,
		EmployeeName:         r.EmployeeName,
		Department:           r.Department,
		LCAT:                 r.LCAT,
		EducationLevel:       r.EducationLevel,
		YearsExperience:      r.YearsExperience,
		Role:                 r.Role,
		Status:               r.Status,
		EmployeeType:         r.EmployeeType,
		SubcontractorCompany: r.SubcontractorCompany,
		PricedSalary:         r.PricedSalary,
		CurrentSalary:        r.CurrentSalary,
		HoursPerMonth:        r.HoursPerMonth,
		BillRate:             r.BillRate,
		StartDate:            r.StartDate,
		EndDate:              r.EndDate,
		Notes:                r.Notes,
	}
}

// GET /api/employees?department=&lcat=&active_only=
func (h *Handler) ListEmployees(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.Query("active_only"))
	list, err := h.employees(c).List(c.Request.Context(), c.Query("department"), c.Query("lcat"), activeOnly)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) GetEmployee(c *gin.Context) {
	e, err := h.employees(c).Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *Handler) CreateEmployee(c *gin.Context) {
	var req employeeRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	e, err := h.employees(c).Create(c.Request.Context(), req.model())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *Handler) UpdateEmployee(c *gin.Context) {
	var req employeeRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	e, err := h.employees(c).Update(c.Request.Context(), c.Param("id"), req.model())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *Handler) DeleteEmployee(c *gin.Context) {
	if err := h.employees(c).Delete(c.Request.Context(), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}

type monthlyBillingRequest struct {
	Month       string   `json:"month" binding:"required"`
	ActualHours *float64 `json:"actual_hours" binding:"required,gte=0"`
	Notes       string   `json:"notes"`
}

// POST /api/employees/:id/monthly-billing
func (h *Handler) RecordMonthlyBilling(c *gin.Context) {
	var req monthlyBillingRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	e, err := h.billing(c).RecordMonthlyBilling(c.Request.Context(), c.Param("id"), services.MonthlyBillingInput{
		Month:       req.Month,
		ActualHours: *req.ActualHours,
		Notes:       req.Notes,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}
