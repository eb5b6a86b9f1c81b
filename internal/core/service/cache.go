package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/delivery-quote/internal/core/ports"
	"github.com/99minutos/delivery-quote/internal/pkg/metrics"
)

// CacheOptions configures a Cache.
type CacheOptions[T any] struct {
	Name  string
	Fetch func(ctx context.Context) (T, error)
	// Fallback is served until the first successful fetch.
	Fallback     T
	TTL          time.Duration
	FetchTimeout time.Duration // 0 = bounded only by the caller's context
	Now          func() time.Time
	Logger       zerolog.Logger
}

// Cache is a read-through cache over a single value with a fixed TTL.
// Concurrent refreshes are allowed; the last one to finish wins.
type Cache[T any] struct {
	opts CacheOptions[T]

	mu        sync.RWMutex
	value     T
	loaded    bool
	expiresAt time.Time
	lastErr   error
}

// NewCache creates an empty Cache. The first Get triggers a fetch.
func NewCache[T any](opts CacheOptions[T]) *Cache[T] {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Cache[T]{opts: opts, value: opts.Fallback}
}

// Get returns the cached value, refreshing it first when expired. A failed
// refresh serves the last good value, or the fallback if none was ever loaded.
func (c *Cache[T]) Get(ctx context.Context) T {
	now := c.opts.Now()

	c.mu.RLock()
	value, fresh := c.value, now.Before(c.expiresAt)
	c.mu.RUnlock()

	if fresh {
		return value
	}
	value, _ = c.Refresh(ctx)
	return value
}

// Refresh fetches a new value regardless of expiry. On error the previous
// value is kept and the expiry is still pushed out by one TTL, so a failing
// source is retried at most once per TTL.
func (c *Cache[T]) Refresh(ctx context.Context) (T, error) {
	fetchCtx := ctx
	if c.opts.FetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, c.opts.FetchTimeout)
		defer cancel()
	}

	fetched, err := c.opts.Fetch(fetchCtx)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.expiresAt = c.opts.Now().Add(c.opts.TTL)
	if err != nil {
		metrics.CacheRefreshTotal.WithLabelValues(c.opts.Name, "error").Inc()
		c.lastErr = err
		c.opts.Logger.Warn().Err(err).
			Str("cache", c.opts.Name).
			Bool("has_last_good", c.loaded).
			Msg("cache refresh failed, serving previous value")
		return c.value, fmt.Errorf("refresh %s cache: %w", c.opts.Name, err)
	}

	metrics.CacheRefreshTotal.WithLabelValues(c.opts.Name, "ok").Inc()
	c.value = fetched
	c.loaded = true
	c.lastErr = nil
	return fetched, nil
}

// Status reports the cache name, expiry and last refresh error.
func (c *Cache[T]) Status() ports.CacheStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()

	st := ports.CacheStatus{Name: c.opts.Name, ExpiresAt: c.expiresAt}
	if c.lastErr != nil {
		st.Error = c.lastErr.Error()
	}
	return st
}
