package wallet

import (
	"context"
	"time"
)

// Repository defines the interface for wallet snapshot data access
type Repository interface {
	ListSnapshots(ctx context.Context) ([]*Info, time.Time, error)
	UpsertSnapshot(ctx context.Context, info *Info, takenAt time.Time) error
}
