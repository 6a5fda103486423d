package rewards

import "context"

// Repository defines persistence for the rewards configuration.
type Repository interface {
	Get(ctx context.Context) (*Config, error)
	Update(ctx context.Context, params UpdateParams) (*Config, error)
}
