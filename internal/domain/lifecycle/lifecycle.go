// Package lifecycle holds shared timing constants for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop work of long-lived components.
const DefaultTimeout = 10 * time.Second
