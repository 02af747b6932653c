// Package lifecycle holds shared start/stop conventions for long-lived
// components managed by the DI container.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown of a managed
// component (HTTP server drain, database pool close).
const DefaultTimeout = 10 * time.Second
