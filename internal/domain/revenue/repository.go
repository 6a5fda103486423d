package revenue

import "context"

// Repository reads fee events for aggregation. Aggregation over raw events
// happens in the service so derived metrics stay testable without a database.
type Repository interface {
	ListEvents(ctx context.Context, r Range) ([]*FeeEvent, error)
	ListDailyTotals(ctx context.Context, r Range) ([]DailyFlow, error)
}
