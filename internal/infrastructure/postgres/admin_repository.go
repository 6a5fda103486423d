package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"solidadmin/internal/domain/admin"
)

type AdminRepository struct {
	db *DB
}

func NewAdminRepository(db *DB) *AdminRepository {
	return &AdminRepository{db: db}
}

const adminColumns = `id, email, name, role, password_hash, created_at`

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM admin_users
		WHERE email = $1
	`, adminColumns)

	return r.scanAdmin(r.db.QueryRowContext(ctx, query, email).Scan)
}

func (r *AdminRepository) GetByID(ctx context.Context, id string) (*admin.Admin, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM admin_users
		WHERE id = $1
	`, adminColumns)

	return r.scanAdmin(r.db.QueryRowContext(ctx, query, id).Scan)
}

func (r *AdminRepository) scanAdmin(scan func(dest ...any) error) (*admin.Admin, error) {
	var a admin.Admin
	err := scan(&a.ID, &a.Email, &a.Name, &a.Role, &a.PasswordHash, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, admin.ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return &a, nil
}
