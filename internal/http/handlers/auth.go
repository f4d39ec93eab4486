package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"seasfinance/internal/http/middleware"
	"seasfinance/internal/utils"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	token, user, err := h.Auth.Login(req.Username, req.Password)
	if err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "auth", "login_failed", "ip="+c.ClientIP())
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "auth", "login", "user="+user.Username)
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
