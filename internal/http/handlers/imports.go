package handlers

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"seasfinance/internal/services"
)

type importFunc func(ctx context.Context, r io.Reader) (services.ImportResult, error)

func (h *Handler) runImport(c *gin.Context, run importFunc) {
	fh, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "CSV file is required in form field \"file\"", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	defer f.Close()

	res, err := run(c.Request.Context(), f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /api/import
func (h *Handler) ImportEmployees(c *gin.Context) {
	h.runImport(c, h.imports(c).ImportEmployees)
}

// POST /api/import/indirect-costs
func (h *Handler) ImportIndirectCosts(c *gin.Context) {
	h.runImport(c, h.imports(c).ImportIndirectCosts)
}

// POST /api/import/odc-items
func (h *Handler) ImportODCItems(c *gin.Context) {
	h.runImport(c, h.imports(c).ImportODCItems)
}

// GET /api/export/employees
func (h *Handler) ExportEmployees(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.imports(c).ExportEmployees(c.Request.Context(), &buf); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="employees.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
