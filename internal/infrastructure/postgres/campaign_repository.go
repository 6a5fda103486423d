package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"solidadmin/internal/domain/campaign"
)

type CampaignRepository struct {
	db *DB
}

func NewCampaignRepository(db *DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

const campaignColumns = `id, name, description, multiplier, starts_at, ends_at, active, image_url, created_at, updated_at`

func (r *CampaignRepository) Create(ctx context.Context, params campaign.CreateParams) (*campaign.Campaign, error) {
	query := fmt.Sprintf(`
		INSERT INTO campaigns (id, name, description, multiplier, starts_at, ends_at, active, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s
	`, campaignColumns)

	c, err := scanCampaign(r.db.QueryRowContext(
		ctx, query,
		uuid.NewString(), params.Name, params.Description, params.Multiplier,
		params.StartsAt, params.EndsAt, params.Active, params.ImageURL,
	).Scan)
	if err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	return c, nil
}

func (r *CampaignRepository) List(ctx context.Context) ([]*campaign.Campaign, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM campaigns
		ORDER BY starts_at DESC
	`, campaignColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []*campaign.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating campaigns: %w", err)
	}

	return campaigns, nil
}

func (r *CampaignRepository) GetByID(ctx context.Context, id string) (*campaign.Campaign, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM campaigns
		WHERE id = $1
	`, campaignColumns)

	c, err := scanCampaign(r.db.QueryRowContext(ctx, query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, campaign.ErrCampaignNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	return c, nil
}

func (r *CampaignRepository) Update(ctx context.Context, id string, params campaign.UpdateParams) (*campaign.Campaign, error) {
	query := fmt.Sprintf(`
		UPDATE campaigns
		SET name = COALESCE($1, name),
		    description = COALESCE($2, description),
		    multiplier = COALESCE($3, multiplier),
		    starts_at = COALESCE($4, starts_at),
		    ends_at = COALESCE($5, ends_at),
		    active = COALESCE($6, active),
		    image_url = COALESCE($7, image_url),
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $8
		RETURNING %s
	`, campaignColumns)

	c, err := scanCampaign(r.db.QueryRowContext(
		ctx, query,
		params.Name, params.Description, params.Multiplier,
		params.StartsAt, params.EndsAt, params.Active, params.ImageURL, id,
	).Scan)
	if err == sql.ErrNoRows {
		return nil, campaign.ErrCampaignNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update campaign: %w", err)
	}

	return c, nil
}

func (r *CampaignRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return campaign.ErrCampaignNotFound
	}

	return nil
}

func scanCampaign(scan func(dest ...any) error) (*campaign.Campaign, error) {
	var c campaign.Campaign
	var description sql.NullString
	var endsAt sql.NullTime
	var imageURL sql.NullString

	err := scan(
		&c.ID, &c.Name, &description, &c.Multiplier, &c.StartsAt, &endsAt,
		&c.Active, &imageURL, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Description = description.String
	if endsAt.Valid {
		c.EndsAt = &endsAt.Time
	}
	if imageURL.Valid {
		c.ImageURL = &imageURL.String
	}

	return &c, nil
}
