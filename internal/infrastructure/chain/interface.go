package chain

import (
	"context"

	"solidadmin/internal/domain/wallet"
)

// ClientInterface lets the monitor swap the RPC client for a mock in tests.
type ClientInterface interface {
	FetchInfo(ctx context.Context, watch WalletWatch) (*wallet.Info, error)
}
