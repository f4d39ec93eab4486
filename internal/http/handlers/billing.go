package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/monthly-billing-summary/:year/:month
func (h *Handler) BillingSummary(c *gin.Context) {
	year, month, ok := yearMonth(c)
	if !ok {
		return
	}
	sum, err := h.billing(c).Summary(c.Request.Context(), year, month)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// GET /api/billing-period/:year/:period
func (h *Handler) BillingPeriod(c *gin.Context) {
	year, err := paramInt(c, "year")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	bp, err := h.billing(c).Period(c.Request.Context(), year, c.Param("period"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bp)
}
