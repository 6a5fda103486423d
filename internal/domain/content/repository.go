package content

import "context"

// Repository defines persistence for promotional content.
type Repository interface {
	ListBanners(ctx context.Context) ([]*Banner, error)
	CreateBanner(ctx context.Context, params BannerParams) (*Banner, error)
	UpdateBanner(ctx context.Context, id string, params BannerParams) (*Banner, error)
	DeleteBanner(ctx context.Context, id string) error

	ListPopups(ctx context.Context) ([]*Popup, error)
	CreatePopup(ctx context.Context, params PopupParams) (*Popup, error)
	UpdatePopup(ctx context.Context, id string, params PopupParams) (*Popup, error)
	DeletePopup(ctx context.Context, id string) error
}
