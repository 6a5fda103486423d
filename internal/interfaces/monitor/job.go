package monitor

import "context"

// Job is a unit of background work run by the worker pool.
type Job interface {
	// Execute runs the job. The context carries the pool's timeout.
	Execute(ctx context.Context) error

	// Name identifies the job in logs and metrics.
	Name() string

	// Description is a human-readable summary of what the job does.
	Description() string
}
