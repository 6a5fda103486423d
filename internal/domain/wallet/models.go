package wallet

import (
	"errors"
	"time"
)

// Domain errors
var (
	ErrWalletNotFound = errors.New("wallet not found")
)

// BalanceStatus classifies a balance against its configured threshold.
type BalanceStatus string

const (
	StatusOK       BalanceStatus = "OK"
	StatusLow      BalanceStatus = "LOW"
	StatusCritical BalanceStatus = "CRITICAL"
	StatusNA       BalanceStatus = "N/A"
)

// ChainBalance is one chain's balance snapshot for an operational wallet.
// Balances and thresholds are decimal strings as read from chain RPC.
type ChainBalance struct {
	ChainID             int64         `json:"chainId"`
	ChainName           string        `json:"chainName"`
	GasBalance          string        `json:"gasBalance"`
	GasThreshold        string        `json:"gasThreshold"`
	GasStatus           BalanceStatus `json:"gasStatus"`
	GasTokenSymbol      string        `json:"gasTokenSymbol"`
	USDCBalance         string        `json:"usdcBalance"`
	USDCThreshold       string        `json:"usdcThreshold"`
	USDCStatus          BalanceStatus `json:"usdcStatus"`
	USDCAddress         string        `json:"usdcAddress"`
	NeedsTopUp          bool          `json:"needsTopUp"`
	TopUpRecommendation string        `json:"topUpRecommendation,omitempty"`
}

// Info is an operational wallet with its per-chain balances.
type Info struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Address     string         `json:"address"`
	Chains      []ChainBalance `json:"chains"`
}

// StatusResponse is the payload of the wallet status endpoint.
type StatusResponse struct {
	Wallets     []*Info   `json:"wallets"`
	LastUpdated time.Time `json:"lastUpdated"`
}
