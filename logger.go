package boxlayout

import (
	"log/slog"

	"github.com/grindlemire/go-boxlayout/internal/layout"
)

// SetLogger sets the logger used by the layout engine and by Trees created
// without WithLogger. Pass nil to silence it. Only debug records are emitted.
func SetLogger(l *slog.Logger) {
	layout.SetLogger(l)
}

// Logger returns the current package logger.
func Logger() *slog.Logger {
	return layout.Logger()
}
