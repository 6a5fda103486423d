package campaign

import (
	"errors"
	"time"
)

// Domain errors
var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrInvalidInput     = errors.New("invalid input")
)

// Campaign is a time-boxed promotional campaign with a reward multiplier.
type Campaign struct {
	ID          string     `json:"_id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Multiplier  float64    `json:"multiplier"`
	StartsAt    time.Time  `json:"startsAt"`
	EndsAt      *time.Time `json:"endsAt,omitempty"`
	Active      bool       `json:"active"`
	ImageURL    *string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// CreateParams contains parameters for creating a campaign
type CreateParams struct {
	Name        string
	Description string
	Multiplier  float64
	StartsAt    time.Time
	EndsAt      *time.Time
	Active      bool
	ImageURL    *string
}

// Validate validates the create parameters
func (p CreateParams) Validate() error {
	if p.Name == "" {
		return errors.New("campaign name is required")
	}
	if p.Multiplier <= 0 {
		return errors.New("multiplier must be positive")
	}
	if p.StartsAt.IsZero() {
		return errors.New("start date is required")
	}
	if p.EndsAt != nil && !p.EndsAt.After(p.StartsAt) {
		return errors.New("end date must be after start date")
	}
	return nil
}

// UpdateParams contains parameters for patching a campaign
type UpdateParams struct {
	Name        *string
	Description *string
	Multiplier  *float64
	StartsAt    *time.Time
	EndsAt      *time.Time
	Active      *bool
	ImageURL    *string
}
