// Package readiness polls the services an installation depends on
// until they accept traffic: PostgreSQL (including applied migrations),
// Redis, and the Docker daemon.
package readiness

import "context"

// Checker probes one dependency.
type Checker interface {
	// Name identifies the dependency in logs and errors.
	Name() string
	// Check returns nil when the dependency is ready.
	Check(ctx context.Context) error
}
