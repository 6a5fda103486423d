package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"solidadmin/internal/domain/content"
)

type ContentRepository struct {
	db *DB
}

func NewContentRepository(db *DB) *ContentRepository {
	return &ContentRepository{db: db}
}

const bannerColumns = `id, title, body, image_url, link_url, active, sort_order, starts_at, ends_at, created_at, updated_at`

func (r *ContentRepository) ListBanners(ctx context.Context) ([]*content.Banner, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM promo_banners
		ORDER BY sort_order, created_at DESC
	`, bannerColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list banners: %w", err)
	}
	defer rows.Close()

	var banners []*content.Banner
	for rows.Next() {
		b, err := scanBanner(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan banner: %w", err)
		}
		banners = append(banners, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating banners: %w", err)
	}

	return banners, nil
}

func (r *ContentRepository) CreateBanner(ctx context.Context, params content.BannerParams) (*content.Banner, error) {
	if err := params.ValidateCreate(); err != nil {
		return nil, fmt.Errorf("%w: %v", content.ErrInvalidInput, err)
	}

	query := fmt.Sprintf(`
		INSERT INTO promo_banners (id, title, body, image_url, link_url, active, sort_order, starts_at, ends_at)
		VALUES ($1, $2, COALESCE($3, ''), $4, $5, COALESCE($6, true), COALESCE($7, 0), $8, $9)
		RETURNING %s
	`, bannerColumns)

	b, err := scanBanner(r.db.QueryRowContext(
		ctx, query,
		uuid.NewString(), params.Title, params.Body, params.ImageURL, params.LinkURL,
		params.Active, params.SortOrder, params.StartsAt, params.EndsAt,
	).Scan)
	if err != nil {
		return nil, fmt.Errorf("failed to create banner: %w", err)
	}

	return b, nil
}

func (r *ContentRepository) UpdateBanner(ctx context.Context, id string, params content.BannerParams) (*content.Banner, error) {
	query := fmt.Sprintf(`
		UPDATE promo_banners
		SET title = COALESCE($1, title),
		    body = COALESCE($2, body),
		    image_url = COALESCE($3, image_url),
		    link_url = COALESCE($4, link_url),
		    active = COALESCE($5, active),
		    sort_order = COALESCE($6, sort_order),
		    starts_at = COALESCE($7, starts_at),
		    ends_at = COALESCE($8, ends_at),
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $9
		RETURNING %s
	`, bannerColumns)

	b, err := scanBanner(r.db.QueryRowContext(
		ctx, query,
		params.Title, params.Body, params.ImageURL, params.LinkURL,
		params.Active, params.SortOrder, params.StartsAt, params.EndsAt, id,
	).Scan)
	if err == sql.ErrNoRows {
		return nil, content.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update banner: %w", err)
	}

	return b, nil
}

func (r *ContentRepository) DeleteBanner(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "promo_banners", id)
}

func scanBanner(scan func(dest ...any) error) (*content.Banner, error) {
	var b content.Banner
	var linkURL sql.NullString
	var startsAt, endsAt sql.NullTime

	err := scan(
		&b.ID, &b.Title, &b.Body, &b.ImageURL, &linkURL, &b.Active, &b.SortOrder,
		&startsAt, &endsAt, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if linkURL.Valid {
		b.LinkURL = &linkURL.String
	}
	if startsAt.Valid {
		b.StartsAt = &startsAt.Time
	}
	if endsAt.Valid {
		b.EndsAt = &endsAt.Time
	}

	return &b, nil
}

const popupColumns = `id, title, body, image_url, button_text, button_url, active, min_version, created_at, updated_at`

func (r *ContentRepository) ListPopups(ctx context.Context) ([]*content.Popup, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM whats_new_popups
		ORDER BY created_at DESC
	`, popupColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list popups: %w", err)
	}
	defer rows.Close()

	var popups []*content.Popup
	for rows.Next() {
		p, err := scanPopup(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan popup: %w", err)
		}
		popups = append(popups, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating popups: %w", err)
	}

	return popups, nil
}

func (r *ContentRepository) CreatePopup(ctx context.Context, params content.PopupParams) (*content.Popup, error) {
	if err := params.ValidateCreate(); err != nil {
		return nil, fmt.Errorf("%w: %v", content.ErrInvalidInput, err)
	}

	query := fmt.Sprintf(`
		INSERT INTO whats_new_popups (id, title, body, image_url, button_text, button_url, active, min_version)
		VALUES ($1, $2, $3, $4, COALESCE($5, ''), $6, COALESCE($7, true), $8)
		RETURNING %s
	`, popupColumns)

	p, err := scanPopup(r.db.QueryRowContext(
		ctx, query,
		uuid.NewString(), params.Title, params.Body, params.ImageURL,
		params.ButtonText, params.ButtonURL, params.Active, params.MinVersion,
	).Scan)
	if err != nil {
		return nil, fmt.Errorf("failed to create popup: %w", err)
	}

	return p, nil
}

func (r *ContentRepository) UpdatePopup(ctx context.Context, id string, params content.PopupParams) (*content.Popup, error) {
	query := fmt.Sprintf(`
		UPDATE whats_new_popups
		SET title = COALESCE($1, title),
		    body = COALESCE($2, body),
		    image_url = COALESCE($3, image_url),
		    button_text = COALESCE($4, button_text),
		    button_url = COALESCE($5, button_url),
		    active = COALESCE($6, active),
		    min_version = COALESCE($7, min_version),
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $8
		RETURNING %s
	`, popupColumns)

	p, err := scanPopup(r.db.QueryRowContext(
		ctx, query,
		params.Title, params.Body, params.ImageURL, params.ButtonText,
		params.ButtonURL, params.Active, params.MinVersion, id,
	).Scan)
	if err == sql.ErrNoRows {
		return nil, content.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update popup: %w", err)
	}

	return p, nil
}

func (r *ContentRepository) DeletePopup(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "whats_new_popups", id)
}

func (r *ContentRepository) deleteByID(ctx context.Context, table, id string) error {
	result, err := r.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", table), id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return content.ErrNotFound
	}

	return nil
}

func scanPopup(scan func(dest ...any) error) (*content.Popup, error) {
	var p content.Popup
	var imageURL, buttonURL, minVersion sql.NullString

	err := scan(
		&p.ID, &p.Title, &p.Body, &imageURL, &p.ButtonText, &buttonURL,
		&p.Active, &minVersion, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if imageURL.Valid {
		p.ImageURL = &imageURL.String
	}
	if buttonURL.Valid {
		p.ButtonURL = &buttonURL.String
	}
	if minVersion.Valid {
		p.MinVersion = &minVersion.String
	}

	return &p, nil
}
