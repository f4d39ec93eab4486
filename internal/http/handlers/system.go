package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"seasfinance/internal/utils"
)

func (h *Handler) Health(c *gin.Context) {
	status := "OK"
	code := http.StatusOK
	if err := h.Store.Ping(c.Request.Context()); err != nil {
		status, code = "DEGRADED", http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"status":      status,
		"timestamp":   utils.NowUTC(),
		"data_source": h.Store.Name(),
	})
}

// GET /api/validation-options
func (h *Handler) ValidationOptions(c *gin.Context) {
	opts, err := h.employees(c).ValidationOptions(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, opts)
}

// Routes lists the registered routes of r, sorted by path.
func Routes(r *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		routes := r.Routes()
		out := make([]gin.H, 0, len(routes))
		for _, rt := range routes {
			out = append(out, gin.H{"method": rt.Method, "path": rt.Path})
		}
		sort.Slice(out, func(i, j int) bool {
			if out[i]["path"] != out[j]["path"] {
				return out[i]["path"].(string) < out[j]["path"].(string)
			}
			return out[i]["method"].(string) < out[j]["method"].(string)
		})
		c.JSON(http.StatusOK, gin.H{"routes": out})
	}
}
