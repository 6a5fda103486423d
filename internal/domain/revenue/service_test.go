package revenue

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"
)

type mockRevenueRepo struct {
	ListEventsFunc      func(ctx context.Context, r Range) ([]*FeeEvent, error)
	ListDailyTotalsFunc func(ctx context.Context, r Range) ([]DailyFlow, error)
}

func (m *mockRevenueRepo) ListEvents(ctx context.Context, r Range) ([]*FeeEvent, error) {
	return m.ListEventsFunc(ctx, r)
}

func (m *mockRevenueRepo) ListDailyTotals(ctx context.Context, r Range) ([]DailyFlow, error) {
	return m.ListDailyTotalsFunc(ctx, r)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSummarize(t *testing.T) {
	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	repo := &mockRevenueRepo{
		ListEventsFunc: func(ctx context.Context, r Range) ([]*FeeEvent, error) {
			return []*FeeEvent{
				{ID: "1", UserID: "u1", Source: SourceBridge, AmountUSD: 10, CreatedAt: now},
				{ID: "2", UserID: "u1", Source: SourceBridge, AmountUSD: 20, CreatedAt: now},
				{ID: "3", UserID: "u2", Source: SourceCardInterchange, AmountUSD: 70, CreatedAt: now},
			}, nil
		},
	}

	service := NewService(repo)
	summary, err := service.Summarize(context.Background(), Range{})
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if !almostEqual(summary.TotalUSD, 100) {
		t.Errorf("TotalUSD = %v, want 100", summary.TotalUSD)
	}
	if summary.EventCount != 3 {
		t.Errorf("EventCount = %d, want 3", summary.EventCount)
	}
	if summary.UniqueUsers != 2 {
		t.Errorf("UniqueUsers = %d, want 2", summary.UniqueUsers)
	}
	if !almostEqual(summary.AvgPerUserUSD, 50) {
		t.Errorf("AvgPerUserUSD = %v, want 50", summary.AvgPerUserUSD)
	}

	if len(summary.BySource) != 2 {
		t.Fatalf("BySource has %d entries, want 2", len(summary.BySource))
	}
	if summary.BySource[0].Source != SourceCardInterchange {
		t.Errorf("top source = %s, want %s", summary.BySource[0].Source, SourceCardInterchange)
	}
	if !almostEqual(summary.BySource[0].Share, 0.7) {
		t.Errorf("top source share = %v, want 0.7", summary.BySource[0].Share)
	}
	if !almostEqual(summary.BySource[1].Share, 0.3) {
		t.Errorf("second source share = %v, want 0.3", summary.BySource[1].Share)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	repo := &mockRevenueRepo{
		ListEventsFunc: func(ctx context.Context, r Range) ([]*FeeEvent, error) {
			return nil, nil
		},
	}

	service := NewService(repo)
	summary, err := service.Summarize(context.Background(), Range{})
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if summary.TotalUSD != 0 || summary.EventCount != 0 || summary.AvgPerUserUSD != 0 {
		t.Errorf("empty summary should be zero, got %+v", summary)
	}
}

func TestExecutiveSummary(t *testing.T) {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	repo := &mockRevenueRepo{
		ListEventsFunc: func(ctx context.Context, r Range) ([]*FeeEvent, error) {
			if r.From.Equal(from) {
				return []*FeeEvent{
					{ID: "1", UserID: "u1", Source: SourceBridge, AmountUSD: 150, CreatedAt: from},
				}, nil
			}
			return []*FeeEvent{
				{ID: "0", UserID: "u1", Source: SourceBridge, AmountUSD: 100, CreatedAt: from.AddDate(0, -1, 0)},
			}, nil
		},
	}

	service := NewService(repo)
	es, err := service.ExecutiveSummary(context.Background(), Range{From: from, To: to})
	if err != nil {
		t.Fatalf("ExecutiveSummary() error = %v", err)
	}

	if !almostEqual(es.TotalUSD, 150) {
		t.Errorf("TotalUSD = %v, want 150", es.TotalUSD)
	}
	if !almostEqual(es.PreviousTotalUSD, 100) {
		t.Errorf("PreviousTotalUSD = %v, want 100", es.PreviousTotalUSD)
	}
	if !almostEqual(es.GrowthPercent, 50) {
		t.Errorf("GrowthPercent = %v, want 50", es.GrowthPercent)
	}
	if es.TopSource != string(SourceBridge) {
		t.Errorf("TopSource = %q, want %q", es.TopSource, SourceBridge)
	}
}

func TestExportCSV(t *testing.T) {
	created := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	repo := &mockRevenueRepo{
		ListEventsFunc: func(ctx context.Context, r Range) ([]*FeeEvent, error) {
			return []*FeeEvent{
				{ID: "evt-1", UserID: "u1", Source: SourceFastWithdraw, AmountUSD: 1.5, CreatedAt: created},
			}, nil
		},
	}

	service := NewService(repo)
	var sb strings.Builder
	if err := service.ExportCSV(context.Background(), Range{}, &sb); err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("CSV has %d lines, want 2", len(lines))
	}
	if lines[0] != "id,user_id,source,amount_usd,created_at" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "evt-1,u1,fast_withdraw,1.50,2025-03-15T10:30:00Z" {
		t.Errorf("row = %q", lines[1])
	}
}
