package postgres

import (
	"context"
	"fmt"
	"strings"

	"solidadmin/internal/domain/revenue"
)

type RevenueRepository struct {
	db *DB
}

func NewRevenueRepository(db *DB) *RevenueRepository {
	return &RevenueRepository{db: db}
}

func rangeConditions(r revenue.Range) (string, []any) {
	var conditions []string
	var args []any

	if !r.From.IsZero() {
		args = append(args, r.From)
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if !r.To.IsZero() {
		args = append(args, r.To)
		conditions = append(conditions, fmt.Sprintf("created_at < $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}
	return where, args
}

func (r *RevenueRepository) ListEvents(ctx context.Context, rng revenue.Range) ([]*revenue.FeeEvent, error) {
	where, args := rangeConditions(rng)
	query := fmt.Sprintf(`
		SELECT id, user_id, source, amount_usd, created_at
		FROM fee_events
		%s
		ORDER BY created_at
	`, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list fee events: %w", err)
	}
	defer rows.Close()

	var events []*revenue.FeeEvent
	for rows.Next() {
		var event revenue.FeeEvent
		if err := rows.Scan(&event.ID, &event.UserID, &event.Source, &event.AmountUSD, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan fee event: %w", err)
		}
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fee events: %w", err)
	}

	return events, nil
}

func (r *RevenueRepository) ListDailyTotals(ctx context.Context, rng revenue.Range) ([]revenue.DailyFlow, error) {
	where, args := rangeConditions(rng)
	query := fmt.Sprintf(`
		SELECT date_trunc('day', created_at) AS day, SUM(amount_usd), COUNT(*)
		FROM fee_events
		%s
		GROUP BY day
		ORDER BY day
	`, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily totals: %w", err)
	}
	defer rows.Close()

	var flows []revenue.DailyFlow
	for rows.Next() {
		var flow revenue.DailyFlow
		if err := rows.Scan(&flow.Day, &flow.TotalUSD, &flow.Count); err != nil {
			return nil, fmt.Errorf("failed to scan daily total: %w", err)
		}
		flows = append(flows, flow)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily totals: %w", err)
	}

	return flows, nil
}
