package campaign

import "context"

// Repository defines the interface for campaign data access
type Repository interface {
	Create(ctx context.Context, params CreateParams) (*Campaign, error)
	List(ctx context.Context) ([]*Campaign, error)
	GetByID(ctx context.Context, id string) (*Campaign, error)
	Update(ctx context.Context, id string, params UpdateParams) (*Campaign, error)
	Delete(ctx context.Context, id string) error
}
