package rewards

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const configCacheKey = "rewards-config"

// Service serves the rewards configuration with an in-memory cache in front
// of the repository. Reads hit the database only on a cache miss; updates and
// explicit invalidation clear the cached copy.
type Service struct {
	repo  Repository
	cache *gocache.Cache
}

// NewService creates a rewards service. cacheTTL controls how long a fetched
// config is served from memory before the repository is consulted again.
func NewService(repo Repository, cacheTTL time.Duration) *Service {
	return &Service{
		repo:  repo,
		cache: gocache.New(cacheTTL, 2*cacheTTL),
	}
}

// Get returns the current rewards configuration, from cache when available.
func (s *Service) Get(ctx context.Context) (*Config, error) {
	if cached, found := s.cache.Get(configCacheKey); found {
		return cached.(*Config), nil
	}

	config, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.SetDefault(configCacheKey, config)
	return config, nil
}

// Update applies a partial update and invalidates the cached config.
func (s *Service) Update(ctx context.Context, params UpdateParams) (*Config, error) {
	config, err := s.repo.Update(ctx, params)
	if err != nil {
		return nil, err
	}

	s.cache.Delete(configCacheKey)
	return config, nil
}

// ClearCache drops the cached configuration so the next read is fresh.
func (s *Service) ClearCache() {
	s.cache.Delete(configCacheKey)
}
