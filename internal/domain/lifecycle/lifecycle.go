// Package lifecycle holds shared timeouts for fx start and stop hooks.
package lifecycle

import "time"

const (
	// DefaultTimeout bounds dependency pings and connection setup on start.
	DefaultTimeout = 10 * time.Second

	// ShutdownTimeout bounds graceful server shutdown.
	ShutdownTimeout = 15 * time.Second
)
