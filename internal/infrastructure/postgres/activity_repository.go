package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"solidadmin/internal/domain/activity"
)

type ActivityRepository struct {
	db *DB
}

func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

const activityColumns = `id, user_id, type, status, amount, symbol, title, short_title,
	       chain_id, hash, url, from_address, to_address, deposit_type, timestamp, created_at`

func (r *ActivityRepository) ListByUser(ctx context.Context, userID int64) ([]*activity.Activity, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM activities
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, activityColumns)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user activities: %w", err)
	}
	defer rows.Close()

	return scanActivities(rows)
}

var activitySortColumns = map[string]string{
	"createdAt": "created_at",
	"amount":    "amount",
	"type":      "type",
	"status":    "status",
}

func (r *ActivityRepository) List(ctx context.Context, filters activity.ListFilters) ([]*activity.Activity, int, error) {
	var conditions []string
	var args []any

	if filters.Type != "" {
		args = append(args, filters.Type)
		conditions = append(conditions, fmt.Sprintf("type = $%d", len(args)))
	}
	if filters.Status != "" {
		args = append(args, filters.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filters.DepositType != "" {
		args = append(args, filters.DepositType)
		conditions = append(conditions, fmt.Sprintf("deposit_type = $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM activities %s", where)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count activities: %w", err)
	}

	sortColumn, ok := activitySortColumns[filters.Sort]
	if !ok {
		sortColumn = "created_at"
	}
	order := "DESC"
	if strings.EqualFold(filters.Order, "asc") {
		order = "ASC"
	}

	args = append(args, filters.Limit, (filters.Page-1)*filters.Limit)
	query := fmt.Sprintf(`
		SELECT %s
		FROM activities
		%s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, activityColumns, where, sortColumn, order, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	activities, err := scanActivities(rows)
	if err != nil {
		return nil, 0, err
	}

	return activities, total, nil
}

func scanActivities(rows *sql.Rows) ([]*activity.Activity, error) {
	var activities []*activity.Activity
	for rows.Next() {
		var a activity.Activity
		var amount, timestamp sql.NullString
		var title, shortTitle, hash, url, fromAddr, toAddr, depositType sql.NullString
		var chainID sql.NullInt64

		err := rows.Scan(
			&a.ID, &a.UserID, &a.Type, &a.Status, &amount, &a.Symbol,
			&title, &shortTitle, &chainID, &hash, &url, &fromAddr, &toAddr,
			&depositType, &timestamp, &a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}

		a.Amount = amount.String
		a.Timestamp = timestamp.String
		if title.Valid {
			a.Title = &title.String
		}
		if shortTitle.Valid {
			a.ShortTitle = &shortTitle.String
		}
		if chainID.Valid {
			a.ChainID = &chainID.Int64
		}
		if hash.Valid {
			a.Hash = &hash.String
		}
		if url.Valid {
			a.URL = &url.String
		}
		if fromAddr.Valid {
			a.FromAddress = &fromAddr.String
		}
		if toAddr.Valid {
			a.ToAddress = &toAddr.String
		}
		if depositType.Valid {
			a.DepositType = &depositType.String
		}

		activities = append(activities, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activities: %w", err)
	}

	return activities, nil
}

func (r *ActivityRepository) ListCardTransactions(ctx context.Context, filters activity.CardTransactionFilters) ([]*activity.CardTransaction, int, error) {
	var conditions []string
	var args []any

	if filters.Status != "" {
		args = append(args, filters.Status)
		conditions = append(conditions, fmt.Sprintf("ct.status = $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM card_transactions ct %s", where)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count card transactions: %w", err)
	}

	order := "DESC"
	if strings.EqualFold(filters.Order, "asc") {
		order = "ASC"
	}

	args = append(args, filters.Limit, (filters.Page-1)*filters.Limit)
	query := fmt.Sprintf(`
		SELECT ct.id, ct.transaction_id, ct.user_id, ct.merchant_name, ct.merchant_location,
		       ct.amount, ct.currency, ct.status, ct.created_at,
		       cb.status, cb.fuse_amount, cb.payout_tx_hash
		FROM card_transactions ct
		LEFT JOIN cashbacks cb ON cb.card_transaction_id = ct.id
		%s
		ORDER BY ct.created_at %s
		LIMIT $%d OFFSET $%d
	`, where, order, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list card transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*activity.CardTransaction
	for rows.Next() {
		var ct activity.CardTransaction
		var merchantLocation, cbStatus, cbFuseAmount, cbPayoutHash sql.NullString

		err := rows.Scan(
			&ct.ID, &ct.TransactionID, &ct.UserID, &ct.MerchantName, &merchantLocation,
			&ct.Amount, &ct.Currency, &ct.Status, &ct.CreatedAt,
			&cbStatus, &cbFuseAmount, &cbPayoutHash,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan card transaction: %w", err)
		}

		if merchantLocation.Valid {
			ct.MerchantLocation = &merchantLocation.String
		}
		if cbStatus.Valid {
			cb := &activity.Cashback{Status: cbStatus.String, FuseAmount: cbFuseAmount.String}
			if cbPayoutHash.Valid {
				cb.PayoutTxHash = &cbPayoutHash.String
			}
			ct.Cashback = cb
		}

		transactions = append(transactions, &ct)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating card transactions: %w", err)
	}

	return transactions, total, nil
}
