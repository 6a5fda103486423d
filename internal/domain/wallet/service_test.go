package wallet

import (
	"context"
	"testing"
	"time"
)

func TestClassifyBalance(t *testing.T) {
	tests := []struct {
		name      string
		balance   string
		threshold string
		want      BalanceStatus
	}{
		{"comfortably above threshold", "10", "1", StatusOK},
		{"exactly at threshold", "1", "1", StatusOK},
		{"below threshold", "0.8", "1", StatusLow},
		{"under half threshold", "0.4", "1", StatusCritical},
		{"zero balance", "0", "1", StatusCritical},
		{"missing balance", "", "1", StatusNA},
		{"malformed balance", "n/a", "1", StatusNA},
		{"missing threshold", "5", "", StatusNA},
		{"zero threshold", "5", "0", StatusNA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyBalance(tt.balance, tt.threshold); got != tt.want {
				t.Errorf("ClassifyBalance(%q, %q) = %v, want %v", tt.balance, tt.threshold, got, tt.want)
			}
		})
	}
}

func TestClassifyChain(t *testing.T) {
	cb := ChainBalance{
		ChainID:        122,
		ChainName:      "Fuse",
		GasBalance:     "0.3",
		GasThreshold:   "1",
		GasTokenSymbol: "FUSE",
		USDCBalance:    "5000",
		USDCThreshold:  "1000",
	}

	ClassifyChain(&cb)

	if cb.GasStatus != StatusCritical {
		t.Errorf("GasStatus = %v, want CRITICAL", cb.GasStatus)
	}
	if cb.USDCStatus != StatusOK {
		t.Errorf("USDCStatus = %v, want OK", cb.USDCStatus)
	}
	if !cb.NeedsTopUp {
		t.Error("NeedsTopUp = false, want true when gas is critical")
	}
	if cb.TopUpRecommendation != "Top up 1.7000 FUSE" {
		t.Errorf("TopUpRecommendation = %q, want %q", cb.TopUpRecommendation, "Top up 1.7000 FUSE")
	}
}

func TestClassifyChain_HealthyChainHasNoRecommendation(t *testing.T) {
	cb := ChainBalance{
		GasBalance:    "10",
		GasThreshold:  "1",
		USDCBalance:   "5000",
		USDCThreshold: "1000",
	}

	ClassifyChain(&cb)

	if cb.NeedsTopUp {
		t.Error("NeedsTopUp = true, want false for healthy balances")
	}
	if cb.TopUpRecommendation != "" {
		t.Errorf("TopUpRecommendation = %q, want empty", cb.TopUpRecommendation)
	}
}

// MockWalletRepo implements Repository for testing
type MockWalletRepo struct {
	ListSnapshotsFunc  func(ctx context.Context) ([]*Info, time.Time, error)
	UpsertSnapshotFunc func(ctx context.Context, info *Info, takenAt time.Time) error
}

func (m *MockWalletRepo) ListSnapshots(ctx context.Context) ([]*Info, time.Time, error) {
	if m.ListSnapshotsFunc != nil {
		return m.ListSnapshotsFunc(ctx)
	}
	return nil, time.Time{}, nil
}

func (m *MockWalletRepo) UpsertSnapshot(ctx context.Context, info *Info, takenAt time.Time) error {
	if m.UpsertSnapshotFunc != nil {
		return m.UpsertSnapshotFunc(ctx, info, takenAt)
	}
	return nil
}

func TestService_Status_ClassifiesAllChains(t *testing.T) {
	updated := time.Date(2025, 3, 15, 11, 55, 0, 0, time.UTC)
	repo := &MockWalletRepo{
		ListSnapshotsFunc: func(ctx context.Context) ([]*Info, time.Time, error) {
			return []*Info{
				{
					Name:    "bridge-operator",
					Address: "0xabc",
					Chains: []ChainBalance{
						{ChainID: 1, ChainName: "Ethereum", GasBalance: "0.1", GasThreshold: "0.5", GasTokenSymbol: "ETH", USDCBalance: "100", USDCThreshold: "50"},
					},
				},
			}, updated, nil
		},
	}

	svc := NewService(repo)
	resp, err := svc.Status(context.Background())
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}

	if !resp.LastUpdated.Equal(updated) {
		t.Errorf("LastUpdated = %v, want %v", resp.LastUpdated, updated)
	}
	chain := resp.Wallets[0].Chains[0]
	if chain.GasStatus != StatusCritical {
		t.Errorf("GasStatus = %v, want CRITICAL", chain.GasStatus)
	}
	if chain.USDCStatus != StatusOK {
		t.Errorf("USDCStatus = %v, want OK", chain.USDCStatus)
	}
}
