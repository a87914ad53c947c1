package cache

import (
	"context"
	"errors"
	"time"
)

// Tiered reads from front first and falls back to back, copying hits from
// back into front. Writes go to both.
type Tiered struct {
	front, back Cache
	// promoteTTL is used when copying a back hit into front.
	promoteTTL time.Duration
}

// NewTiered chains front before back. Hits promoted from back are kept in
// front for promoteTTL.
func NewTiered(front, back Cache, promoteTTL time.Duration) *Tiered {
	return &Tiered{front: front, back: back, promoteTTL: promoteTTL}
}

// Get retrieves a value from the first cache that has it.
func (t *Tiered) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if data, ok, err := t.front.Get(ctx, key); err == nil && ok {
		return data, true, nil
	}
	data, ok, err := t.back.Get(ctx, key)
	if err != nil || !ok {
		return nil, false, err
	}
	_ = t.front.Set(ctx, key, data, t.promoteTTL)
	return data, true, nil
}

// Set stores a value in both caches.
func (t *Tiered) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return errors.Join(t.front.Set(ctx, key, data, ttl), t.back.Set(ctx, key, data, ttl))
}

// Delete removes a value from both caches.
func (t *Tiered) Delete(ctx context.Context, key string) error {
	return errors.Join(t.front.Delete(ctx, key), t.back.Delete(ctx, key))
}

// Close closes both caches.
func (t *Tiered) Close() error {
	return errors.Join(t.front.Close(), t.back.Close())
}

var _ Cache = (*Tiered)(nil)
