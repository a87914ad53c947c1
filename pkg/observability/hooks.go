// Package observability provides hooks for timing and logging npmkit's
// side effects.
//
// The libraries in pkg/ stay free of any particular backend: they report
// events to whatever hooks are registered, and the defaults do nothing.
// Hooks are registered by main, not by libraries.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    hooks := observability.NewLogHooks(logger)
//	    observability.SetQueryHooks(hooks)
//	    observability.SetManifestHooks(hooks)
//	    observability.SetCacheHooks(hooks)
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Query().OnQueryStart(ctx, pkg, field)
//	// ... run npm view ...
//	observability.Query().OnQueryComplete(ctx, pkg, field, len(out), duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Query Hooks
// =============================================================================

// QueryHooks receives events from registry queries.
type QueryHooks interface {
	// OnQueryStart records an outgoing `npm view` call.
	OnQueryStart(ctx context.Context, pkg, field string)

	// OnQueryComplete records the end of a call. size is the length of the
	// trimmed answer; err is nil on success.
	OnQueryComplete(ctx context.Context, pkg, field string, size int, duration time.Duration, err error)
}

// =============================================================================
// Manifest Hooks
// =============================================================================

// ManifestHooks receives events from package.json and package-lock.json IO.
type ManifestHooks interface {
	// OnManifestRead records a manifest or lockfile read.
	OnManifestRead(ctx context.Context, path string, err error)

	// OnManifestWrite records a manifest write.
	OnManifestWrite(ctx context.Context, path string, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from the registry answer cache.
type CacheHooks interface {
	// OnCacheHit records an answer served from the cache.
	OnCacheHit(ctx context.Context, key string)

	// OnCacheMiss records a lookup that fell through to npm.
	OnCacheMiss(ctx context.Context, key string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopQueryHooks is a no-op implementation of QueryHooks.
type NoopQueryHooks struct{}

func (NoopQueryHooks) OnQueryStart(context.Context, string, string) {}
func (NoopQueryHooks) OnQueryComplete(context.Context, string, string, int, time.Duration, error) {
}

// NoopManifestHooks is a no-op implementation of ManifestHooks.
type NoopManifestHooks struct{}

func (NoopManifestHooks) OnManifestRead(context.Context, string, error)  {}
func (NoopManifestHooks) OnManifestWrite(context.Context, string, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)  {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	queryHooks    QueryHooks    = NoopQueryHooks{}
	manifestHooks ManifestHooks = NoopManifestHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	hooksMu       sync.RWMutex
)

// SetQueryHooks registers custom query hooks.
// This should be called once at application startup before any queries run.
func SetQueryHooks(h QueryHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		queryHooks = h
	}
}

// SetManifestHooks registers custom manifest hooks.
// This should be called once at application startup before any manifest IO.
func SetManifestHooks(h ManifestHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		manifestHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Query returns the registered query hooks.
func Query() QueryHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return queryHooks
}

// Manifest returns the registered manifest hooks.
func Manifest() ManifestHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return manifestHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	queryHooks = NoopQueryHooks{}
	manifestHooks = NoopManifestHooks{}
	cacheHooks = NoopCacheHooks{}
}
