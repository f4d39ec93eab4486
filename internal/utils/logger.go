package utils

import (
	"strings"

	"go.uber.org/zap"
)

// LogEvent writes one structured line per domain event. Keep message short;
// never pass request payloads.
func LogEvent(requestID, module, action, message string) {
	zap.L().Info(message,
		zap.String("module", strings.ToUpper(module)),
		zap.String("action", action),
		zap.String("request_id", strings.TrimSpace(requestID)),
	)
}

// LogFailure is LogEvent at error level.
func LogFailure(requestID, module, action string, err error) {
	zap.L().Error(action+" failed",
		zap.String("module", strings.ToUpper(module)),
		zap.String("action", action),
		zap.String("request_id", strings.TrimSpace(requestID)),
		zap.Error(err),
	)
}
