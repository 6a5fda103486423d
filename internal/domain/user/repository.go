package user

import (
	"context"
	"time"
)

// Repository defines the interface for user data access
type Repository interface {
	List(ctx context.Context, filters ListFilters) ([]*User, int, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	ListBalances(ctx context.Context, userID int64) ([]*Balance, error)

	// SnapshotCohorts persists aggregate balances per signup cohort as of
	// the given instant. Called from the scheduled snapshot job and the
	// manual trigger endpoint.
	SnapshotCohorts(ctx context.Context, at time.Time) error
}
