package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seasfinance/internal/domain/models"
	"seasfinance/internal/http/middleware"
	"seasfinance/internal/repositories"
	"seasfinance/internal/services"
)

const johnID = "6f1c2a7e-0d5b-4e43-9a59-1b0f3c1e7a01"

var fixedNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	InitValidator()

	auth, err := services.NewAuthService("admin", "admin123", "test-secret")
	require.NoError(t, err)
	h := &Handler{
		Store:              repositories.NewDemoStore(),
		Auth:               auth,
		NewHireMonthlyCost: 10000,
		PercentPrecision:   1,
		Now:                func() time.Time { return fixedNow },
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/health", h.Health)
	r.POST("/auth/login", h.Login)
	r.GET("/validation-options", h.ValidationOptions)
	r.GET("/employees", h.ListEmployees)
	r.GET("/employees/:id", h.GetEmployee)
	r.POST("/employees", h.CreateEmployee)
	r.PUT("/employees/:id", h.UpdateEmployee)
	r.DELETE("/employees/:id", h.DeleteEmployee)
	r.POST("/employees/:id/monthly-billing", h.RecordMonthlyBilling)
	r.GET("/monthly-billing-summary/:year/:month", h.BillingSummary)
	r.GET("/billing-period/:year/:period", h.BillingPeriod)
	r.GET("/indirect-costs/:year/:month", h.GetIndirectCost)
	r.POST("/indirect-costs", h.UpsertIndirectCost)
	r.GET("/project-costs/:year/:month", h.ProjectCosts)
	r.GET("/odc-items/:month", h.ListODCItems)
	r.POST("/odc-items", h.AddODCItem)
	r.DELETE("/odc-items/:month/:id", h.DeleteODCItem)
	r.GET("/profit-loss", h.ProfitLoss)
	r.POST("/projections", h.Project)
	r.POST("/import", h.ImportEmployees)
	r.POST("/import/indirect-costs", h.ImportIndirectCosts)
	r.GET("/export/employees", h.ExportEmployees)
	r.GET("/reports/project-costs/:year/:month/pdf", h.ProjectCostReport)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	r := newTestEngine(t)
	w := doJSON(r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[map[string]any](t, w)
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "fixture", body["data_source"])
}

func TestLogin(t *testing.T) {
	r := newTestEngine(t)

	w := doJSON(r, http.MethodPost, "/auth/login", `{"username":"admin","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/auth/login", `{"username":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Password is required", decode[ErrorResponse](t, w).Error)

	w = doJSON(r, http.MethodPost, "/auth/login", `{"username":"admin","password":"admin123"}`)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[struct {
		Token string            `json:"token"`
		User  services.AuthUser `json:"user"`
	}](t, w)
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, "admin", body.User.Username)
}

func TestEmployees_ListAndGet(t *testing.T) {
	r := newTestEngine(t)

	w := doJSON(r, http.MethodGet, "/employees?department=Engineering", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]models.Employee](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "John Smith", list[0].EmployeeName)

	w = doJSON(r, http.MethodGet, "/employees?department=all&active_only=true", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Employee](t, w), 3)

	w = doJSON(r, http.MethodGet, "/employees/"+johnID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Engineering", decode[models.Employee](t, w).Department)

	w = doJSON(r, http.MethodGet, "/employees/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	errBody := decode[ErrorResponse](t, w)
	assert.Equal(t, "not_found", errBody.Code)
	assert.NotEmpty(t, errBody.RequestID)
}

func TestEmployees_CreateUpdateDelete(t *testing.T) {
	r := newTestEngine(t)

	w := doJSON(r, http.MethodPost, "/employees", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Request body is required", decode[ErrorResponse](t, w).Error)

	w = doJSON(r, http.MethodPost, "/employees", `{"department":"Engineering"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Employee Name is required", decode[ErrorResponse](t, w).Error)

	w = doJSON(r, http.MethodPost, "/employees", `{"employee_name":"Ada","bill_rate":-1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Bill Rate must be at least 0", decode[ErrorResponse](t, w).Error)

	w = doJSON(r, http.MethodPost, "/employees", `{"employee_name":"Ada Lovelace","department":"Engineering","current_salary":96000,"hours_per_month":160,"bill_rate":90,"start_date":"2024-02-01"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.Employee](t, w)
	assert.True(t, strings.HasPrefix(created.EmployeeID, "EMP-"))
	assert.InDelta(t, 50.0, created.HourlyRate, 1e-9)

	w = doJSON(r, http.MethodPut, "/employees/"+created.ID, `{"employee_name":"Ada Lovelace","department":"Operations","current_salary":96000,"start_date":"2024-02-01"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Operations", decode[models.Employee](t, w).Department)

	w = doJSON(r, http.MethodDelete, "/employees/"+created.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(r, http.MethodDelete, "/employees/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecordMonthlyBilling(t *testing.T) {
	r := newTestEngine(t)

	w := doJSON(r, http.MethodPost, "/employees/"+johnID+"/monthly-billing", `{"month":"2024-03"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Actual Hours is required", decode[ErrorResponse](t, w).Error)

	w = doJSON(r, http.MethodPost, "/employees/"+johnID+"/monthly-billing", `{"month":"2024-03","actual_hours":100}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	e := decode[models.Employee](t, w)
	rec, ok := e.Record("2024-03")
	require.True(t, ok)
	assert.Equal(t, 9500.0, rec.ActualRevenue)

	w = doJSON(r, http.MethodPost, "/employees/missing/monthly-billing", `{"month":"2024-03","actual_hours":1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBillingSummaryAndPeriod(t *testing.T) {
	r := newTestEngine(t)

	w := doJSON(r, http.MethodGet, "/monthly-billing-summary/2024/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	sum := decode[models.BillingSummary](t, w)
	assert.Equal(t, 480.0, sum.TotalProjectedHours)
	assert.Equal(t, 43525.0, sum.TotalActualRevenue)
	assert.Equal(t, 645.0, sum.Variance)

	w = doJSON(r, http.MethodGet, "/monthly-billing-summary/abc/1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodGet, "/billing-period/2024/oct-nov", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OCT-NOV", decode[models.BillingPeriod](t, w).Period)

	w = doJSON(r, http.MethodGet, "/billing-period/2024/SPRING", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCosts(t *testing.T) {
	r := newTestEngine(t)

	w := doJSON(r, http.MethodGet, "/indirect-costs/2024/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 23500.0, decode[models.IndirectCost](t, w).TotalAmount)

	w = doJSON(r, http.MethodGet, "/indirect-costs/2030/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodGet, "/project-costs/2024/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	pc := decode[models.ProjectCostSummary](t, w)
	assert.Equal(t, 487.0, pc.DirectLaborHours)
	assert.InDelta(t, 64251.5625, pc.TotalCost, 1e-9)

	w = doJSON(r, http.MethodGet, "/profit-loss?month=2024-01", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, -47.6, decode[models.ProfitLoss](t, w).ProfitMargin)

	w = doJSON(r, http.MethodPost, "/indirect-costs", `{"month":"2024-03","fringe_amount":1000,"overhead_amount":500,"ga_amount":250,"profit_amount":250}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 2000.0, decode[models.IndirectCost](t, w).TotalAmount)

	w = doJSON(r, http.MethodPost, "/indirect-costs", `{"month":"2024-03","fringe_amount":-5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestODCItems(t *testing.T) {
	r := newTestEngine(t)

	w := doJSON(r, http.MethodPost, "/odc-items", `{"month":"2024-03","amount":10}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Category is required", decode[ErrorResponse](t, w).Error)

	w = doJSON(r, http.MethodPost, "/odc-items", `{"month":"2024-03","category":"Travel","amount":1200}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	item := decode[models.ODCItem](t, w)
	require.NotEmpty(t, item.ID)

	w = doJSON(r, http.MethodGet, "/odc-items/2024-03", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.ODCItem](t, w), 1)

	w = doJSON(r, http.MethodDelete, "/odc-items/2024-03/"+item.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(r, http.MethodDelete, "/odc-items/2024-03/"+item.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjections(t *testing.T) {
	r := newTestEngine(t)

	w := doJSON(r, http.MethodPost, "/projections", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	points := decode[[]models.ProjectionPoint](t, w)
	require.Len(t, points, 12)
	assert.Equal(t, "2024-03", points[0].Month)
	assert.Equal(t, 480.0, points[0].TotalHours)
	assert.Equal(t, 3, points[0].ActiveEmployees)

	w = doJSON(r, http.MethodPost, "/projections", `{"months":3,"attrition_rate":0}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.ProjectionPoint](t, w), 3)

	w = doJSON(r, http.MethodPost, "/projections", `{"months":"twelve"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Months has the wrong type", decode[ErrorResponse](t, w).Error)
}

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = io.WriteString(fw, content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestImportAndExport(t *testing.T) {
	r := newTestEngine(t)

	w := doJSON(r, http.MethodPost, "/import", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body, ctype := multipartBody(t, "file", "indirect.csv",
		"Month,Fringe_Amount,Overhead_Amount,GA_Amount,Profit_Amount,Notes\n2024-04,100,200,300,400,q2\nbad,1,1,1,1,\n")
	req := httptest.NewRequest(http.MethodPost, "/import/indirect-costs", body)
	req.Header.Set("Content-Type", ctype)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := decode[services.ImportResult](t, w)
	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 1, res.Failed)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, 3, res.Errors[0].Row)

	w = doJSON(r, http.MethodGet, "/export/employees", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "employees.csv")
	assert.Contains(t, w.Body.String(), "Employee_Name")
	assert.Contains(t, w.Body.String(), "Sarah Johnson")
}

func TestProjectCostReport(t *testing.T) {
	r := newTestEngine(t)

	w := doJSON(r, http.MethodGet, "/reports/project-costs/2024/1/pdf", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "PROJECT_COSTS_2024-01.pdf")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))

	w = doJSON(r, http.MethodGet, "/reports/project-costs/2024/13/pdf", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidationOptions(t *testing.T) {
	r := newTestEngine(t)
	w := doJSON(r, http.MethodGet, "/validation-options", "")
	require.Equal(t, http.StatusOK, w.Code)
	opts := decode[models.ValidationOptions](t, w)
	assert.Equal(t, []string{"Data Science", "Engineering", "SEAS IT"}, opts.Departments)
}
