package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/reports/project-costs/:year/:month/pdf
func (h *Handler) ProjectCostReport(c *gin.Context) {
	year, month, ok := yearMonth(c)
	if !ok {
		return
	}
	pdf, filename, err := h.reports(c).ProjectCostPDF(c.Request.Context(), year, month)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
