package config

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewLogger returns a development logger in gin debug mode (the default when
// GIN_MODE is unset) and a production JSON logger otherwise.
func NewLogger(ginMode string) (*zap.Logger, error) {
	if ginMode == "" || ginMode == gin.DebugMode {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
