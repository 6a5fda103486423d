package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"solidadmin/internal/domain/rewards"
)

// RewardsRepository stores the rewards config as a single versioned row with
// JSON columns for the tier and section lists.
type RewardsRepository struct {
	db *DB
}

func NewRewardsRepository(db *DB) *RewardsRepository {
	return &RewardsRepository{db: db}
}

func (r *RewardsRepository) Get(ctx context.Context) (*rewards.Config, error) {
	query := `
		SELECT base_apy, boosted_apy, cashback_percent, referral_bonus,
		       deposit_bonus_tiers, sections, updated_at, updated_by
		FROM rewards_config
		ORDER BY updated_at DESC
		LIMIT 1
	`

	var config rewards.Config
	var tiersJSON, sectionsJSON []byte
	var updatedBy sql.NullString

	err := r.db.QueryRowContext(ctx, query).Scan(
		&config.BaseAPY, &config.BoostedAPY, &config.CashbackPercent, &config.ReferralBonus,
		&tiersJSON, &sectionsJSON, &config.UpdatedAt, &updatedBy,
	)
	if err == sql.ErrNoRows {
		return nil, rewards.ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rewards config: %w", err)
	}

	if err := json.Unmarshal(tiersJSON, &config.DepositBonusTier); err != nil {
		return nil, fmt.Errorf("failed to decode bonus tiers: %w", err)
	}
	if err := json.Unmarshal(sectionsJSON, &config.Sections); err != nil {
		return nil, fmt.Errorf("failed to decode sections: %w", err)
	}
	config.UpdatedBy = updatedBy.String

	return &config, nil
}

func (r *RewardsRepository) Update(ctx context.Context, params rewards.UpdateParams) (*rewards.Config, error) {
	current, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}

	if params.BaseAPY != nil {
		current.BaseAPY = *params.BaseAPY
	}
	if params.BoostedAPY != nil {
		current.BoostedAPY = *params.BoostedAPY
	}
	if params.CashbackPercent != nil {
		current.CashbackPercent = *params.CashbackPercent
	}
	if params.ReferralBonus != nil {
		current.ReferralBonus = *params.ReferralBonus
	}
	if params.DepositBonusTier != nil {
		current.DepositBonusTier = params.DepositBonusTier
	}
	if params.Sections != nil {
		current.Sections = params.Sections
	}

	tiersJSON, err := json.Marshal(current.DepositBonusTier)
	if err != nil {
		return nil, fmt.Errorf("failed to encode bonus tiers: %w", err)
	}
	sectionsJSON, err := json.Marshal(current.Sections)
	if err != nil {
		return nil, fmt.Errorf("failed to encode sections: %w", err)
	}

	query := `
		UPDATE rewards_config
		SET base_apy = $1, boosted_apy = $2, cashback_percent = $3, referral_bonus = $4,
		    deposit_bonus_tiers = $5, sections = $6,
		    updated_at = CURRENT_TIMESTAMP, updated_by = $7
		RETURNING updated_at
	`

	err = r.db.QueryRowContext(ctx, query,
		current.BaseAPY, current.BoostedAPY, current.CashbackPercent, current.ReferralBonus,
		tiersJSON, sectionsJSON, params.UpdatedBy,
	).Scan(&current.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update rewards config: %w", err)
	}

	current.UpdatedBy = params.UpdatedBy
	return current, nil
}
