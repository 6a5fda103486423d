package revenue

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"time"
)

// Service computes revenue aggregates from stored fee events.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Summarize aggregates fee events in the range into totals, per-source
// breakdown and per-user averages.
func (s *Service) Summarize(ctx context.Context, r Range) (*Summary, error) {
	events, err := s.repo.ListEvents(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("listing fee events: %w", err)
	}

	summary := &Summary{From: r.From, To: r.To}
	users := make(map[string]struct{})
	bySource := make(map[FeeSource]*SourceRevenue)

	for _, event := range events {
		summary.TotalUSD += event.AmountUSD
		summary.EventCount++
		users[event.UserID] = struct{}{}

		sr, ok := bySource[event.Source]
		if !ok {
			sr = &SourceRevenue{Source: event.Source}
			bySource[event.Source] = sr
		}
		sr.TotalUSD += event.AmountUSD
		sr.Count++
	}

	summary.UniqueUsers = len(users)
	if summary.UniqueUsers > 0 {
		summary.AvgPerUserUSD = summary.TotalUSD / float64(summary.UniqueUsers)
	}

	for _, sr := range bySource {
		if summary.TotalUSD > 0 {
			sr.Share = sr.TotalUSD / summary.TotalUSD
		}
		summary.BySource = append(summary.BySource, *sr)
	}
	sort.Slice(summary.BySource, func(i, j int) bool {
		return summary.BySource[i].TotalUSD > summary.BySource[j].TotalUSD
	})

	return summary, nil
}

// DailyFlow returns per-day revenue totals for the range.
func (s *Service) DailyFlow(ctx context.Context, r Range) ([]DailyFlow, error) {
	flows, err := s.repo.ListDailyTotals(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("listing daily totals: %w", err)
	}
	return flows, nil
}

// ExecutiveSummary compares the range against the immediately preceding
// period of equal length.
func (s *Service) ExecutiveSummary(ctx context.Context, r Range) (*ExecutiveSummary, error) {
	current, err := s.Summarize(ctx, r)
	if err != nil {
		return nil, err
	}

	length := r.To.Sub(r.From)
	previous, err := s.Summarize(ctx, Range{From: r.From.Add(-length), To: r.From})
	if err != nil {
		return nil, err
	}

	es := &ExecutiveSummary{
		Period:           fmt.Sprintf("%s to %s", r.From.Format("2006-01-02"), r.To.Format("2006-01-02")),
		TotalUSD:         current.TotalUSD,
		PreviousTotalUSD: previous.TotalUSD,
		UniqueUsers:      current.UniqueUsers,
	}
	if previous.TotalUSD > 0 {
		es.GrowthPercent = (current.TotalUSD - previous.TotalUSD) / previous.TotalUSD * 100
	}
	if len(current.BySource) > 0 {
		es.TopSource = string(current.BySource[0].Source)
		es.TopSourceUSD = current.BySource[0].TotalUSD
	}

	return es, nil
}

// ExportCSV writes raw fee events in the range as CSV.
func (s *Service) ExportCSV(ctx context.Context, r Range, w io.Writer) error {
	events, err := s.repo.ListEvents(ctx, r)
	if err != nil {
		return fmt.Errorf("listing fee events: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"id", "user_id", "source", "amount_usd", "created_at"}); err != nil {
		return err
	}

	for _, event := range events {
		record := []string{
			event.ID,
			event.UserID,
			string(event.Source),
			fmt.Sprintf("%.2f", event.AmountUSD),
			event.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
