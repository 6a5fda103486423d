package content

import (
	"errors"
	"time"
)

// Domain errors
var (
	ErrNotFound     = errors.New("content not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Banner is a promotions banner shown in the product home screen.
type Banner struct {
	ID        string     `json:"_id"`
	Title     string     `json:"title"`
	Body      string     `json:"body,omitempty"`
	ImageURL  string     `json:"imageUrl"`
	LinkURL   *string    `json:"linkUrl,omitempty"`
	Active    bool       `json:"active"`
	SortOrder int        `json:"sortOrder"`
	StartsAt  *time.Time `json:"startsAt,omitempty"`
	EndsAt    *time.Time `json:"endsAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Popup is a "what's new" announcement popup shown once per release.
type Popup struct {
	ID         string    `json:"_id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	ImageURL   *string   `json:"imageUrl,omitempty"`
	ButtonText string    `json:"buttonText,omitempty"`
	ButtonURL  *string   `json:"buttonUrl,omitempty"`
	Active     bool      `json:"active"`
	MinVersion *string   `json:"minVersion,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// BannerParams contains create/patch parameters for banners. On patch, nil
// fields are left unchanged.
type BannerParams struct {
	Title     *string
	Body      *string
	ImageURL  *string
	LinkURL   *string
	Active    *bool
	SortOrder *int
	StartsAt  *time.Time
	EndsAt    *time.Time
}

// ValidateCreate checks the parameters required to create a banner.
func (p BannerParams) ValidateCreate() error {
	if p.Title == nil || *p.Title == "" {
		return errors.New("banner title is required")
	}
	if p.ImageURL == nil || *p.ImageURL == "" {
		return errors.New("banner image is required")
	}
	return nil
}

// PopupParams contains create/patch parameters for popups.
type PopupParams struct {
	Title      *string
	Body       *string
	ImageURL   *string
	ButtonText *string
	ButtonURL  *string
	Active     *bool
	MinVersion *string
}

// ValidateCreate checks the parameters required to create a popup.
func (p PopupParams) ValidateCreate() error {
	if p.Title == nil || *p.Title == "" {
		return errors.New("popup title is required")
	}
	if p.Body == nil || *p.Body == "" {
		return errors.New("popup body is required")
	}
	return nil
}
