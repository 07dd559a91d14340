// Package lifecycle holds shared start/stop settings for long-running components.
package lifecycle

import "time"

// DefaultTimeout bounds start-up pings and graceful shutdown
const DefaultTimeout = 10 * time.Second
