//go:build !windows

package debug

import (
	"log/slog"
	"time"
)

// StartMemLogger is a no-op where no RSS query is wired up; the goroutine
// logger still covers heap stats.
func StartMemLogger(interval time.Duration, logger *slog.Logger) {}
