// Package status caches a user's onboarding completion status.
//
// Only the "complete" status is worth caching: it is remembered in memory
// for a bounded time and marked in persistent storage so a returning user
// skips the backend lookup. Any other status is always refetched.
package status

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/louisbranch/careerpath/internal/services/onboarding/storage"
	"go.uber.org/zap"
)

// Complete is the status of a finished onboarding.
const Complete = "complete"

const (
	defaultMaxAge  = time.Minute
	defaultEntries = 1024
	keyPrefix      = "onboarding_status:"
)

// Fetcher looks up the authoritative onboarding status for uid.
type Fetcher interface {
	OnboardingStatus(ctx context.Context, uid string) (string, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, uid string) (string, error)

// OnboardingStatus calls f.
func (f FetcherFunc) OnboardingStatus(ctx context.Context, uid string) (string, error) {
	return f(ctx, uid)
}

// Config tunes a Cache.
type Config struct {
	// MaxAge bounds how long an in-memory complete status is trusted.
	MaxAge time.Duration
	// MaxEntries bounds how many users are remembered in memory.
	MaxEntries int
	Logger     *zap.Logger
}

// Cache remembers completion per user. It is safe for concurrent use.
type Cache struct {
	mem    *expirable.LRU[string, string]
	store  storage.Store
	fetch  Fetcher
	logger *zap.Logger
}

// MarkerKey returns the storage key of uid's completion marker.
func MarkerKey(uid string) string {
	return keyPrefix + uid
}

// New returns a cache backed by store (optional) and fetch.
func New(store storage.Store, fetch Fetcher, cfg Config) (*Cache, error) {
	if fetch == nil {
		return nil, errors.New("status fetcher is required")
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = defaultMaxAge
	}
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = defaultEntries
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{
		mem:    expirable.NewLRU[string, string](cfg.MaxEntries, nil, cfg.MaxAge),
		store:  store,
		fetch:  fetch,
		logger: logger,
	}, nil
}

// Get returns uid's onboarding status. An empty uid yields "".
func (c *Cache) Get(ctx context.Context, uid string) (string, error) {
	if uid == "" {
		return "", nil
	}
	if status, ok := c.mem.Get(uid); ok && status == Complete {
		return status, nil
	}
	if c.store != nil {
		marker, err := c.store.GetItem(ctx, MarkerKey(uid))
		switch {
		case err == nil && marker == Complete:
			c.mem.Add(uid, Complete)
			return Complete, nil
		case err != nil && !errors.Is(err, storage.ErrNotFound):
			c.logger.Debug("read status marker", zap.String("uid", uid), zap.Error(err))
		}
	}

	status, err := c.fetch.OnboardingStatus(ctx, uid)
	if err != nil {
		return "", fmt.Errorf("fetch onboarding status: %w", err)
	}
	c.Set(ctx, uid, status)
	return status, nil
}

// Set records status for uid. The persistent marker exists only while the
// status is complete.
func (c *Cache) Set(ctx context.Context, uid, status string) {
	if uid == "" {
		return
	}
	c.mem.Add(uid, status)
	if c.store == nil {
		return
	}

	var err error
	if status == Complete {
		err = c.store.SetItem(ctx, MarkerKey(uid), Complete)
	} else {
		err = c.store.DeleteItem(ctx, MarkerKey(uid))
	}
	if err != nil {
		c.logger.Debug("write status marker", zap.String("uid", uid), zap.Error(err))
	}
}

// Invalidate forgets uid. An empty uid clears every in-memory entry.
func (c *Cache) Invalidate(ctx context.Context, uid string) {
	if uid == "" {
		c.mem.Purge()
		return
	}
	c.mem.Remove(uid)
	if c.store == nil {
		return
	}
	if err := c.store.DeleteItem(ctx, MarkerKey(uid)); err != nil {
		c.logger.Debug("delete status marker", zap.String("uid", uid), zap.Error(err))
	}
}
