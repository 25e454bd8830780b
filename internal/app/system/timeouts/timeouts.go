// Package timeouts provides centralized timeout values for handler
// operations. They are used with context.WithTimeout for database work in
// HTTP handlers; using one set of values keeps behavior consistent and
// easy to adjust.
//
// Guidelines:
//   - Ping: health checks and connectivity verification
//   - Short: single-document reads or lookups
//   - Medium: list queries, moderate writes, multi-step reads
//   - Long: report generation and operations touching several collections
package timeouts

import "time"

const (
	ping   = 2 * time.Second
	short  = 5 * time.Second
	medium = 10 * time.Second
	long   = 30 * time.Second
)

// Ping returns the timeout for health checks.
func Ping() time.Duration { return ping }

// Short returns the timeout for single-document reads.
func Short() time.Duration { return short }

// Medium returns the timeout for list queries and moderate writes.
func Medium() time.Duration { return medium }

// Long returns the timeout for reports and multi-collection operations.
func Long() time.Duration { return long }
