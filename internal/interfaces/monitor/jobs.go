package monitor

import (
	"context"
	"fmt"
	"log"
	"time"

	"solidadmin/internal/domain/user"
	"solidadmin/internal/domain/wallet"
	"solidadmin/internal/infrastructure/chain"
)

// WalletSnapshotJob refreshes balances for one operational wallet and
// stores the result as the latest snapshot.
type WalletSnapshotJob struct {
	watch   chain.WalletWatch
	client  chain.ClientInterface
	service *wallet.Service
}

// NewWalletSnapshotJob creates a snapshot job for one watched wallet.
func NewWalletSnapshotJob(watch chain.WalletWatch, client chain.ClientInterface, service *wallet.Service) *WalletSnapshotJob {
	return &WalletSnapshotJob{
		watch:   watch,
		client:  client,
		service: service,
	}
}

// Execute fetches current balances and records the snapshot.
func (j *WalletSnapshotJob) Execute(ctx context.Context) error {
	log.Printf("Starting balance refresh for wallet %s", j.watch.Name)

	info, err := j.client.FetchInfo(ctx, j.watch)
	if err != nil {
		return fmt.Errorf("failed to fetch balances for %s: %w", j.watch.Name, err)
	}

	if err := j.service.RecordSnapshot(ctx, info, time.Now()); err != nil {
		return fmt.Errorf("failed to record snapshot for %s: %w", j.watch.Name, err)
	}

	log.Printf("Balance refresh for wallet %s completed (%d chains)", j.watch.Name, len(info.Chains))
	return nil
}

func (j *WalletSnapshotJob) Name() string {
	return fmt.Sprintf("wallet-snapshot:%s", j.watch.Name)
}

func (j *WalletSnapshotJob) Description() string {
	return fmt.Sprintf("Balance refresh for wallet %s (%s)", j.watch.Name, j.watch.Address)
}

// CohortSnapshotJob records a retention snapshot: active user counts per
// signup-month cohort, keyed by the snapshot date.
type CohortSnapshotJob struct {
	userRepo user.Repository
}

// NewCohortSnapshotJob creates a cohort snapshot job.
func NewCohortSnapshotJob(userRepo user.Repository) *CohortSnapshotJob {
	return &CohortSnapshotJob{userRepo: userRepo}
}

// Execute writes today's cohort snapshot. Re-running on the same day
// overwrites the row, so the job is safe to trigger manually.
func (j *CohortSnapshotJob) Execute(ctx context.Context) error {
	at := time.Now()
	log.Printf("Starting cohort snapshot for %s", at.Format("2006-01-02"))

	if err := j.userRepo.SnapshotCohorts(ctx, at); err != nil {
		return fmt.Errorf("failed to snapshot cohorts: %w", err)
	}

	log.Printf("Cohort snapshot for %s completed", at.Format("2006-01-02"))
	return nil
}

func (j *CohortSnapshotJob) Name() string {
	return "cohort-snapshot"
}

func (j *CohortSnapshotJob) Description() string {
	return "Daily retention snapshot of signup-month cohorts"
}
