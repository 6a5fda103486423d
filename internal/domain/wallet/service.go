package wallet

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// criticalFraction: a balance under this fraction of its threshold is
// CRITICAL rather than merely LOW.
const criticalFraction = 0.5

// Service contains the business logic for wallet monitoring
type Service struct {
	repo Repository
}

// NewService creates a new wallet service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Status returns every operational wallet with balance statuses classified
// against their thresholds.
func (s *Service) Status(ctx context.Context) (*StatusResponse, error) {
	wallets, lastUpdated, err := s.repo.ListSnapshots(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet snapshots: %w", err)
	}

	for _, w := range wallets {
		for i := range w.Chains {
			ClassifyChain(&w.Chains[i])
		}
	}

	return &StatusResponse{Wallets: wallets, LastUpdated: lastUpdated}, nil
}

// RecordSnapshot stores a fresh balance snapshot for a wallet.
func (s *Service) RecordSnapshot(ctx context.Context, info *Info, takenAt time.Time) error {
	for i := range info.Chains {
		ClassifyChain(&info.Chains[i])
	}
	return s.repo.UpsertSnapshot(ctx, info, takenAt)
}

// ClassifyChain fills the status and top-up fields of a chain balance from
// its raw balance/threshold strings.
func (cb *ChainBalance) classify() {
	cb.GasStatus = ClassifyBalance(cb.GasBalance, cb.GasThreshold)
	cb.USDCStatus = ClassifyBalance(cb.USDCBalance, cb.USDCThreshold)
	cb.NeedsTopUp = needsTopUp(cb.GasStatus) || needsTopUp(cb.USDCStatus)
	cb.TopUpRecommendation = ""
	if needsTopUp(cb.GasStatus) {
		cb.TopUpRecommendation = topUpRecommendation(cb.GasBalance, cb.GasThreshold, cb.GasTokenSymbol)
	} else if needsTopUp(cb.USDCStatus) {
		cb.TopUpRecommendation = topUpRecommendation(cb.USDCBalance, cb.USDCThreshold, "USDC")
	}
}

// ClassifyChain is the exported entry point for snapshot classification.
func ClassifyChain(cb *ChainBalance) {
	cb.classify()
}

// ClassifyBalance compares a balance string against a threshold string:
// N/A when either side is missing or unparseable, CRITICAL under half the
// threshold, LOW under the threshold, OK otherwise.
func ClassifyBalance(balance, threshold string) BalanceStatus {
	b, err := strconv.ParseFloat(balance, 64)
	if err != nil {
		return StatusNA
	}
	t, err := strconv.ParseFloat(threshold, 64)
	if err != nil || t <= 0 {
		return StatusNA
	}

	switch {
	case b < t*criticalFraction:
		return StatusCritical
	case b < t:
		return StatusLow
	default:
		return StatusOK
	}
}

func needsTopUp(s BalanceStatus) bool {
	return s == StatusLow || s == StatusCritical
}

// topUpRecommendation suggests topping up to twice the threshold, giving
// operators headroom before the next alert.
func topUpRecommendation(balance, threshold, symbol string) string {
	b, err1 := strconv.ParseFloat(balance, 64)
	t, err2 := strconv.ParseFloat(threshold, 64)
	if err1 != nil || err2 != nil {
		return ""
	}
	needed := t*2 - b
	if needed <= 0 {
		return ""
	}
	return fmt.Sprintf("Top up %.4f %s", needed, symbol)
}
