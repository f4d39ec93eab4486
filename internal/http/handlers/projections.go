package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"seasfinance/internal/domain"
	"seasfinance/internal/services"
)

// Omitted fields take the defaults of services.DefaultProjectionParams.
type projectionRequest struct {
	Months         *int     `json:"months"`
	SalaryIncrease *float64 `json:"salary_increase"`
	AttritionRate  *float64 `json:"attrition_rate"`
	NewHires       *float64 `json:"new_hires"`
}

// POST /api/projections
func (h *Handler) Project(c *gin.Context) {
	var req projectionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "validation_error", domain.ValidationMessage(err), nil)
			return
		}
	}
	p := services.DefaultProjectionParams()
	if req.Months != nil {
		p.Months = *req.Months
	}
	if req.SalaryIncrease != nil {
		p.SalaryIncrease = *req.SalaryIncrease
	}
	if req.AttritionRate != nil {
		p.AttritionRate = *req.AttritionRate
	}
	if req.NewHires != nil {
		p.NewHiresPerYear = *req.NewHires
	}

	points, err := h.projections(c).Project(c.Request.Context(), p)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}
