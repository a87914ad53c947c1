package npmview

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/npmkit/pkg/cache"
	"github.com/matzehuels/npmkit/pkg/observability"
)

// Cached is a [Querier] that remembers answers from another Querier.
// Empty answers mean the question failed and are never stored, so a
// transient npm failure is retried on the next call.
type Cached struct {
	inner  Querier
	store  cache.Cache
	ttl    time.Duration
	logger *log.Logger
}

// NewCached wraps inner with store. Entries live for ttl, or forever when
// ttl is zero. A nil logger discards cache errors.
func NewCached(inner Querier, store cache.Cache, ttl time.Duration, logger *log.Logger) *Cached {
	return &Cached{inner: inner, store: store, ttl: ttl, logger: logger}
}

// Query implements [Querier].
func (c *Cached) Query(ctx context.Context, pkg, field string) string {
	key := cache.QueryKey(pkg, field)
	hooks := observability.Cache()

	data, hit, err := c.store.Get(ctx, key)
	if err != nil {
		c.debug("cache read failed", key, err)
	}
	if hit {
		hooks.OnCacheHit(ctx, key)
		return string(data)
	}
	hooks.OnCacheMiss(ctx, key)

	out := c.inner.Query(ctx, pkg, field)
	if out == "" {
		return ""
	}
	if err := c.store.Set(ctx, key, []byte(out), c.ttl); err != nil {
		c.debug("cache write failed", key, err)
	}
	return out
}

func (c *Cached) debug(msg, key string, err error) {
	if c.logger != nil {
		c.logger.Debug(msg, "key", key, "err", err)
	}
}

var _ Querier = (*Cached)(nil)
