package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"seasfinance/internal/domain/models"
)

type indirectCostRequest struct {
	Month          string  `json:"month" binding:"required"`
	FringeAmount   float64 `json:"fringe_amount" binding:"gte=0"`
	OverheadAmount float64 `json:"overhead_amount" binding:"gte=0"`
	GAAmount       float64 `json:"ga_amount" binding:"gte=0"`
	ProfitAmount   float64 `json:"profit_amount" binding:"gte=0"`
	Notes          string  `json:"notes"`
}

type odcItemRequest struct {
	Month       string  `json:"month" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" binding:"gte=0"`
	Notes       string  `json:"notes"`
}

// GET /api/indirect-costs/:year/:month
func (h *Handler) GetIndirectCost(c *gin.Context) {
	year, month, ok := yearMonth(c)
	if !ok {
		return
	}
	ic, err := h.costs(c).GetIndirect(c.Request.Context(), year, month)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ic)
}

// POST /api/indirect-costs
func (h *Handler) UpsertIndirectCost(c *gin.Context) {
	var req indirectCostRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	ic, err := h.costs(c).UpsertIndirect(c.Request.Context(), models.IndirectCost{
		Month:          req.Month,
		FringeAmount:   req.FringeAmount,
		OverheadAmount: req.OverheadAmount,
		GAAmount:       req.GAAmount,
		ProfitAmount:   req.ProfitAmount,
		Notes:          req.Notes,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ic)
}

// GET /api/project-costs/:year/:month
func (h *Handler) ProjectCosts(c *gin.Context) {
	year, month, ok := yearMonth(c)
	if !ok {
		return
	}
	sum, err := h.costs(c).ProjectCosts(c.Request.Context(), year, month)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// GET /api/odc-items/:month
func (h *Handler) ListODCItems(c *gin.Context) {
	items, err := h.costs(c).ListODC(c.Request.Context(), c.Param("month"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /api/odc-items
func (h *Handler) AddODCItem(c *gin.Context) {
	var req odcItemRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	item, err := h.costs(c).AddODC(c.Request.Context(), models.ODCItem{
		Month:       req.Month,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		Notes:       req.Notes,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// DELETE /api/odc-items/:month/:id
func (h *Handler) DeleteODCItem(c *gin.Context) {
	if err := h.costs(c).DeleteODC(c.Request.Context(), c.Param("month"), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ODC item deleted successfully"})
}

// GET /api/profit-loss?month=YYYY-MM
func (h *Handler) ProfitLoss(c *gin.Context) {
	pl, err := h.costs(c).ProfitLoss(c.Request.Context(), c.Query("month"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, pl)
}
