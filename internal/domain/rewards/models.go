package rewards

import (
	"errors"
	"time"
)

var ErrConfigNotFound = errors.New("rewards config not found")

// Config is the rewards configuration served to the mobile clients. It is
// cached aggressively; admins can invalidate the cache after edits.
type Config struct {
	BaseAPY          string          `json:"baseApy"`
	BoostedAPY       string          `json:"boostedApy"`
	CashbackPercent  string          `json:"cashbackPercent"`
	ReferralBonus    string          `json:"referralBonus"`
	DepositBonusTier []BonusTier     `json:"depositBonusTiers"`
	Sections         []ConfigSection `json:"sections"`
	UpdatedAt        time.Time       `json:"updatedAt"`
	UpdatedBy        string          `json:"updatedBy,omitempty"`
}

// BonusTier maps a minimum deposit to a one-off bonus amount.
type BonusTier struct {
	MinDeposit string `json:"minDeposit"`
	Bonus      string `json:"bonus"`
}

// ConfigSection is a free-form block rendered in the rewards screen.
type ConfigSection struct {
	Key     string `json:"key"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	Enabled bool   `json:"enabled"`
}

// UpdateParams carries a partial config update. Nil fields are unchanged.
type UpdateParams struct {
	BaseAPY          *string
	BoostedAPY       *string
	CashbackPercent  *string
	ReferralBonus    *string
	DepositBonusTier []BonusTier
	Sections         []ConfigSection
	UpdatedBy        string
}
