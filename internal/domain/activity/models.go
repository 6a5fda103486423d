package activity

import (
	"strconv"
	"time"
)

// Status is the lifecycle state of an activity as reported by the ledger.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusSuccess    Status = "success"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
	StatusExpired    Status = "expired"
	StatusRefunded   Status = "refunded"
)

var validStatuses = map[Status]struct{}{
	StatusPending:    {},
	StatusProcessing: {},
	StatusSuccess:    {},
	StatusFailed:     {},
	StatusCancelled:  {},
	StatusExpired:    {},
	StatusRefunded:   {},
}

// Type is the kind of transaction an activity represents.
type Type string

const (
	TypeDeposit             Type = "deposit"
	TypeWithdraw            Type = "withdraw"
	TypeSend                Type = "send"
	TypeReceive             Type = "receive"
	TypeBridge              Type = "bridge"
	TypeBridgeDeposit       Type = "bridge_deposit"
	TypeBridgeTransfer      Type = "bridge_transfer"
	TypeCardTransaction     Type = "card_transaction"
	TypeSwap                Type = "swap"
	TypeWrap                Type = "wrap"
	TypeUnwrap              Type = "unwrap"
	TypeMerklClaim          Type = "merkl_claim"
	TypeBankTransfer        Type = "bank_transfer"
	TypeMercuryoTransaction Type = "mercuryo_transaction"
	TypeCancelWithdraw      Type = "cancel_withdraw"
	TypeUnstake             Type = "unstake"
	TypeCardWelcomeBonus    Type = "card_welcome_bonus"
	TypeDepositBonus        Type = "deposit_bonus"
	TypeFastWithdraw        Type = "fast_withdraw"
)

var validTypes = map[Type]struct{}{
	TypeDeposit:             {},
	TypeWithdraw:            {},
	TypeSend:                {},
	TypeReceive:             {},
	TypeBridge:              {},
	TypeBridgeDeposit:       {},
	TypeBridgeTransfer:      {},
	TypeCardTransaction:     {},
	TypeSwap:                {},
	TypeWrap:                {},
	TypeUnwrap:              {},
	TypeMerklClaim:          {},
	TypeBankTransfer:        {},
	TypeMercuryoTransaction: {},
	TypeCancelWithdraw:      {},
	TypeUnstake:             {},
	TypeCardWelcomeBonus:    {},
	TypeDepositBonus:        {},
	TypeFastWithdraw:        {},
}

// IsValidStatus checks if the provided status is a known lifecycle state.
func IsValidStatus(s Status) bool {
	_, ok := validStatuses[s]
	return ok
}

// IsValidType checks if the provided type is a known transaction kind.
func IsValidType(t Type) bool {
	_, ok := validTypes[t]
	return ok
}

// Activity represents a single user-facing transaction/event record.
// Amount and Timestamp are decimal/epoch-seconds strings as delivered by the
// ledger; both may be absent. CreatedAt is the fallback event time.
type Activity struct {
	ID          string  `json:"id"`
	UserID      int64   `json:"userId,omitempty"`
	Type        Type    `json:"type"`
	Status      Status  `json:"status"`
	Amount      string  `json:"amount,omitempty"`
	Symbol      string  `json:"symbol"`
	Title       *string `json:"title,omitempty"`
	ShortTitle  *string `json:"shortTitle,omitempty"`
	ChainID     *int64  `json:"chainId,omitempty"`
	Hash        *string `json:"hash,omitempty"`
	URL         *string `json:"url,omitempty"`
	FromAddress *string `json:"fromAddress,omitempty"`
	ToAddress   *string `json:"toAddress,omitempty"`
	DepositType *string `json:"depositType,omitempty"`
	Timestamp   string  `json:"timestamp,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// EventTime returns the effective event time of the activity: the epoch-seconds
// Timestamp when present and parseable, otherwise CreatedAt. Returns the zero
// time when neither field parses; callers degrade to an empty label rather
// than fail.
func (a *Activity) EventTime() time.Time {
	if a.Timestamp != "" {
		if secs, err := strconv.ParseInt(a.Timestamp, 10, 64); err == nil {
			return time.Unix(secs, 0)
		}
	}
	return parseCreatedAt(a.CreatedAt)
}

func parseCreatedAt(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// HasAmount reports whether the activity carries a non-zero amount.
// Failed/expired records without an amount are abandoned attempts with
// nothing to show the user.
func (a *Activity) HasAmount() bool {
	if a.Amount == "" || a.Amount == "0" {
		return false
	}
	v, err := strconv.ParseFloat(a.Amount, 64)
	if err != nil {
		// Unparseable amounts still render as-is downstream
		return true
	}
	return v != 0
}

// ListFilters are the admin-view query filters for the flat activity table.
type ListFilters struct {
	Type        string
	Status      string
	DepositType string
	Sort        string
	Order       string
	Page        int
	Limit       int
}

// ListMeta is the pagination envelope returned alongside admin listings.
type ListMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}
