package jsonrpc

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/handlers"
)

// Recovery turns handler panics into HTTP 500 responses and logs the
// stack through the given logger.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError)),
		handlers.PrintRecoveryStack(true),
	)
}
