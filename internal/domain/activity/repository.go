package activity

import "context"

// Repository defines the interface for activity data access
type Repository interface {
	ListByUser(ctx context.Context, userID int64) ([]*Activity, error)
	List(ctx context.Context, filters ListFilters) ([]*Activity, int, error)
	ListCardTransactions(ctx context.Context, filters CardTransactionFilters) ([]*CardTransaction, int, error)
}

// CardTransaction is the admin view of a card charge, including the cashback
// payout attached to it when one exists.
type CardTransaction struct {
	ID               string    `json:"_id"`
	TransactionID    string    `json:"transactionId"`
	UserID           int64     `json:"userId"`
	MerchantName     string    `json:"merchantName"`
	MerchantLocation *string   `json:"merchantLocation,omitempty"`
	Amount           string    `json:"amount"`
	Currency         string    `json:"currency"`
	Status           Status    `json:"status"`
	Cashback         *Cashback `json:"cashback,omitempty"`
	CreatedAt        string    `json:"createdAt"`
}

// Cashback is the reward payout state for a card transaction.
type Cashback struct {
	Status       string  `json:"status"`
	FuseAmount   string  `json:"fuseAmount,omitempty"`
	PayoutTxHash *string `json:"payoutTxHash,omitempty"`
}

// CardTransactionFilters are the query filters for the card transaction table.
type CardTransactionFilters struct {
	Status string
	Sort   string
	Order  string
	Page   int
	Limit  int
}
