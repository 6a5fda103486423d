package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"solidadmin/internal/domain/user"
)

type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

var userSortColumns = map[string]string{
	"createdAt":      "u.created_at",
	"email":          "u.email",
	"username":       "u.username",
	"totalBalance":   "total_balance",
	"savingsBalance": "savings_balance",
	"lastActivity":   "last_activity_at",
}

const userColumns = `u.id, u.email, u.username, u.wallet_address, u.country, u.status,
	       u.referral_code, u.referral_code_used, u.created_at,
	       COALESCE(b.savings, 0), COALESCE(b.card, 0), COALESCE(b.wallet, 0),
	       ref.id, ref.username, ref.referral_code,
	       la.last_activity_at`

const userJoins = `
		LEFT JOIN (
			SELECT user_id,
			       SUM(available + pending) FILTER (WHERE account_type = 'savings') AS savings,
			       SUM(available + pending) FILTER (WHERE account_type = 'card') AS card,
			       SUM(available + pending) FILTER (WHERE account_type = 'wallet') AS wallet
			FROM balances
			GROUP BY user_id
		) b ON b.user_id = u.id
		LEFT JOIN users ref ON ref.referral_code = u.referral_code_used
		LEFT JOIN (
			SELECT user_id, MAX(created_at) AS last_activity_at
			FROM activities
			GROUP BY user_id
		) la ON la.user_id = u.id`

func (r *UserRepository) List(ctx context.Context, filters user.ListFilters) ([]*user.User, int, error) {
	var conditions []string
	var args []any

	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(u.email ILIKE $%d OR u.username ILIKE $%d OR u.wallet_address ILIKE $%d)", n, n, n))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM users u %s", where)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	sortColumn, ok := userSortColumns[filters.Sort]
	if !ok {
		sortColumn = "u.created_at"
	}
	order := "DESC"
	if strings.EqualFold(filters.Order, "asc") {
		order = "ASC"
	}

	args = append(args, filters.Limit, (filters.Page-1)*filters.Limit)
	query := fmt.Sprintf(`
		SELECT %s
		FROM users u
		%s
		%s
		ORDER BY %s %s NULLS LAST
		LIMIT $%d OFFSET $%d
	`, userColumns, userJoins, where, sortColumn, order, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		u, err := scanUser(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating users: %w", err)
	}

	return users, total, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM users u
		%s
		WHERE u.id = $1
	`, userColumns, userJoins)

	u, err := scanUser(func(dest ...any) error {
		return r.db.QueryRowContext(ctx, query, id).Scan(dest...)
	})
	if err == sql.ErrNoRows {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return u, nil
}

func scanUser(scan func(dest ...any) error) (*user.User, error) {
	var u user.User
	var walletAddress, country, status, referralCode, referralCodeUsed sql.NullString
	var refID sql.NullInt64
	var refUsername, refCode sql.NullString
	var lastActivity sql.NullTime

	err := scan(
		&u.ID, &u.Email, &u.Username, &walletAddress, &country, &status,
		&referralCode, &referralCodeUsed, &u.CreatedAt,
		&u.SavingsBalance, &u.CardBalance, &u.WalletBalance,
		&refID, &refUsername, &refCode,
		&lastActivity,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	if walletAddress.Valid {
		u.WalletAddress = &walletAddress.String
	}
	if country.Valid {
		u.Country = &country.String
	}
	u.Status = status.String
	if referralCode.Valid {
		u.ReferralCode = &referralCode.String
	}
	if referralCodeUsed.Valid {
		u.ReferralCodeUsed = &referralCodeUsed.String
	}
	if refID.Valid {
		u.ReferredBy = &user.Referrer{
			ID:           refID.Int64,
			Username:     refUsername.String,
			ReferralCode: refCode.String,
		}
	}
	if lastActivity.Valid {
		u.LastActivityTimestamp = &lastActivity.Time
	}
	u.TotalBalance = u.SavingsBalance + u.CardBalance + u.WalletBalance

	return &u, nil
}

func (r *UserRepository) ListBalances(ctx context.Context, userID int64) ([]*user.Balance, error) {
	query := `
		SELECT currency, available, pending, account_type
		FROM balances
		WHERE user_id = $1
		ORDER BY account_type, currency
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list balances: %w", err)
	}
	defer rows.Close()

	var balances []*user.Balance
	for rows.Next() {
		var b user.Balance
		if err := rows.Scan(&b.Currency, &b.Available, &b.Pending, &b.AccountType); err != nil {
			return nil, fmt.Errorf("failed to scan balance: %w", err)
		}
		b.Total = b.Available + b.Pending
		balances = append(balances, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating balances: %w", err)
	}

	return balances, nil
}

// SnapshotCohorts aggregates per-signup-month balances into cohort_snapshots.
// Re-running for the same day replaces that day's rows.
func (r *UserRepository) SnapshotCohorts(ctx context.Context, at time.Time) error {
	query := `
		INSERT INTO cohort_snapshots (snapshot_date, cohort_month, user_count, total_balance)
		SELECT $1::date,
		       date_trunc('month', u.created_at)::date,
		       COUNT(DISTINCT u.id),
		       COALESCE(SUM(b.available + b.pending), 0)
		FROM users u
		LEFT JOIN balances b ON b.user_id = u.id
		GROUP BY date_trunc('month', u.created_at)
		ON CONFLICT (snapshot_date, cohort_month) DO UPDATE SET
		    user_count = EXCLUDED.user_count,
		    total_balance = EXCLUDED.total_balance
	`

	if _, err := r.db.ExecContext(ctx, query, at.UTC().Format("2006-01-02")); err != nil {
		return fmt.Errorf("failed to snapshot cohorts: %w", err)
	}

	return nil
}
