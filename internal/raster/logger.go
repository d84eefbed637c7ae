package raster

import (
	"log/slog"
	"sync/atomic"
)

var discard = slog.New(slog.DiscardHandler)

var current atomic.Pointer[slog.Logger]

// SetLogger sets the logger that receives a debug record for every skipped
// line. Pass nil to discard them again, which is the default.
func SetLogger(l *slog.Logger) {
	current.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return discard
}
