package postgres

import (
	"context"
	"fmt"
	"time"

	"solidadmin/internal/domain/wallet"
)

type WalletRepository struct {
	db *DB
}

func NewWalletRepository(db *DB) *WalletRepository {
	return &WalletRepository{db: db}
}

func (r *WalletRepository) ListSnapshots(ctx context.Context) ([]*wallet.Info, time.Time, error) {
	query := `
		SELECT w.name, w.description, w.address,
		       cb.chain_id, cb.chain_name, cb.gas_balance, cb.gas_threshold,
		       cb.gas_token_symbol, cb.usdc_balance, cb.usdc_threshold, cb.usdc_address,
		       cb.updated_at
		FROM wallets w
		JOIN chain_balances cb ON cb.wallet_address = w.address
		ORDER BY w.name, cb.chain_id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to list wallet snapshots: %w", err)
	}
	defer rows.Close()

	var wallets []*wallet.Info
	byAddress := make(map[string]*wallet.Info)
	var lastUpdated time.Time

	for rows.Next() {
		var name, description, address string
		var cb wallet.ChainBalance
		var updatedAt time.Time

		err := rows.Scan(
			&name, &description, &address,
			&cb.ChainID, &cb.ChainName, &cb.GasBalance, &cb.GasThreshold,
			&cb.GasTokenSymbol, &cb.USDCBalance, &cb.USDCThreshold, &cb.USDCAddress,
			&updatedAt,
		)
		if err != nil {
			return nil, time.Time{}, fmt.Errorf("failed to scan wallet snapshot: %w", err)
		}

		info, ok := byAddress[address]
		if !ok {
			info = &wallet.Info{Name: name, Description: description, Address: address}
			byAddress[address] = info
			wallets = append(wallets, info)
		}
		info.Chains = append(info.Chains, cb)

		if updatedAt.After(lastUpdated) {
			lastUpdated = updatedAt
		}
	}

	if err := rows.Err(); err != nil {
		return nil, time.Time{}, fmt.Errorf("error iterating wallet snapshots: %w", err)
	}

	return wallets, lastUpdated, nil
}

func (r *WalletRepository) UpsertSnapshot(ctx context.Context, info *wallet.Info, takenAt time.Time) error {
	walletQuery := `
		INSERT INTO wallets (address, name, description)
		VALUES ($1, $2, $3)
		ON CONFLICT (address) DO UPDATE SET
		    name = EXCLUDED.name,
		    description = EXCLUDED.description
	`
	if _, err := r.db.ExecContext(ctx, walletQuery, info.Address, info.Name, info.Description); err != nil {
		return fmt.Errorf("failed to upsert wallet: %w", err)
	}

	balanceQuery := `
		INSERT INTO chain_balances (wallet_address, chain_id, chain_name, gas_balance, gas_threshold,
		                            gas_token_symbol, usdc_balance, usdc_threshold, usdc_address, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (wallet_address, chain_id) DO UPDATE SET
		    gas_balance = EXCLUDED.gas_balance,
		    gas_threshold = EXCLUDED.gas_threshold,
		    usdc_balance = EXCLUDED.usdc_balance,
		    usdc_threshold = EXCLUDED.usdc_threshold,
		    updated_at = EXCLUDED.updated_at
	`

	for _, cb := range info.Chains {
		_, err := r.db.ExecContext(ctx, balanceQuery,
			info.Address, cb.ChainID, cb.ChainName, cb.GasBalance, cb.GasThreshold,
			cb.GasTokenSymbol, cb.USDCBalance, cb.USDCThreshold, cb.USDCAddress, takenAt,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert chain balance: %w", err)
		}
	}

	return nil
}
