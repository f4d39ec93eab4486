package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"seasfinance/internal/cache"
	"seasfinance/internal/http/middleware"
	"seasfinance/internal/repositories"
	"seasfinance/internal/services"
)

// Handler serves the JSON API. Services are built per request so each one
// carries the caller's request id into its logs.
type Handler struct {
	Store              repositories.DataSource
	Cache              *cache.Cache
	Auth               *services.AuthService
	NewHireMonthlyCost float64
	PercentPrecision   int
	Now                func() time.Time
}

func (h *Handler) employees(c *gin.Context) services.EmployeeService {
	return services.EmployeeService{Store: h.Store, Cache: h.Cache, RequestID: middleware.GetRequestID(c), Now: h.Now}
}

func (h *Handler) costs(c *gin.Context) services.CostService {
	return services.CostService{Store: h.Store, PercentPrecision: h.PercentPrecision, RequestID: middleware.GetRequestID(c), Now: h.Now}
}

func (h *Handler) billing(c *gin.Context) services.BillingService {
	return services.BillingService{Store: h.Store, Cache: h.Cache, Costs: h.costs(c), RequestID: middleware.GetRequestID(c), Now: h.Now}
}

func (h *Handler) projections(c *gin.Context) services.ProjectionService {
	return services.ProjectionService{Store: h.Store, NewHireMonthlyCost: h.NewHireMonthlyCost, RequestID: middleware.GetRequestID(c), Now: h.Now}
}

func (h *Handler) imports(c *gin.Context) services.ImportService {
	return services.ImportService{Employees: h.employees(c), Costs: h.costs(c), RequestID: middleware.GetRequestID(c)}
}

func (h *Handler) reports(c *gin.Context) services.ReportService {
	return services.ReportService{Costs: h.costs(c), RequestID: middleware.GetRequestID(c), Now: h.Now}
}
