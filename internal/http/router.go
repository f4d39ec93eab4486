package api

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	intconfig "seasfinance/internal/config"
	h "seasfinance/internal/http/handlers"
	"seasfinance/internal/http/middleware"
)

func NewRouter(env intconfig.Env, hd *h.Handler, logger *zap.Logger) *gin.Engine {
	h.InitValidator()

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(logger), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", hd.Health)
		api.GET("/routes", h.Routes(r))
		api.GET("/validation-options", hd.ValidationOptions)
		api.POST("/auth/login", middleware.RateLimitByIP(rate.Limit(env.LoginRatePerSec), env.LoginBurst), hd.Login)

		secured := api.Group("", middleware.AuthRequired(hd.Auth))

		// Employees
		employees := secured.Group("/employees")
		employees.GET("", hd.ListEmployees)
		employees.GET("/:id", hd.GetEmployee)
		employees.POST("", hd.CreateEmployee)
		employees.PUT("/:id", hd.UpdateEmployee)
		employees.DELETE("/:id", hd.DeleteEmployee)
		employees.POST("/:id/monthly-billing", hd.RecordMonthlyBilling)

		// Billing
		secured.GET("/monthly-billing-summary/:year/:month", hd.BillingSummary)
		secured.GET("/billing-period/:year/:period", hd.BillingPeriod)

		// Costs
		secured.GET("/indirect-costs/:year/:month", hd.GetIndirectCost)
		secured.POST("/indirect-costs", hd.UpsertIndirectCost)
		secured.GET("/project-costs/:year/:month", hd.ProjectCosts)
		secured.GET("/odc-items/:month", hd.ListODCItems)
		secured.POST("/odc-items", hd.AddODCItem)
		secured.DELETE("/odc-items/:month/:id", hd.DeleteODCItem)
		secured.GET("/profit-loss", hd.ProfitLoss)

		secured.POST("/projections", hd.Project)

		// Import / export
		secured.POST("/import", hd.ImportEmployees)
		secured.POST("/import/indirect-costs", hd.ImportIndirectCosts)
		secured.POST("/import/odc-items", hd.ImportODCItems)
		secured.GET("/export/employees", hd.ExportEmployees)

		secured.GET("/reports/project-costs/:year/:month/pdf", hd.ProjectCostReport)
	}

	return r
}
