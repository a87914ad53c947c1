package npmview

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/npmkit/pkg/cache"
)

// counting records how often each question reaches npm.
type counting struct {
	Fixed
	calls map[string]int
}

func (c *counting) Query(ctx context.Context, pkg, field string) string {
	c.calls[pkg+" "+field]++
	return c.Fixed.Query(ctx, pkg, field)
}

func TestCachedQuery(t *testing.T) {
	inner := &counting{Fixed: Fixed{"express version": "4.19.2"}, calls: map[string]int{}}
	store, err := cache.NewMemoryCache(16)
	require.NoError(t, err)

	q := NewCached(inner, store, time.Hour, nil)
	ctx := context.Background()

	for range 3 {
		assert.Equal(t, "4.19.2", q.Query(ctx, "express", "version"))
	}
	assert.Equal(t, 1, inner.calls["express version"])
}

func TestCachedQueryDoesNotStoreFailures(t *testing.T) {
	inner := &counting{Fixed: Fixed{}, calls: map[string]int{}}
	store, err := cache.NewMemoryCache(16)
	require.NoError(t, err)

	q := NewCached(inner, store, 0, nil)
	ctx := context.Background()

	assert.Equal(t, "", q.Query(ctx, "nope", "version"))
	assert.Equal(t, "", q.Query(ctx, "nope", "version"))
	assert.Equal(t, 2, inner.calls["nope version"])
	assert.Equal(t, 0, store.Len())
}

func TestCachedQueryFileStore(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := cache.NewFileCache(dir)
	require.NoError(t, err)
	NewCached(Fixed{"react versions": "[ '18.3.1' ]"}, first, time.Hour, nil).Query(ctx, "react", "versions")

	// A later run answers from disk without asking npm.
	second, err := cache.NewFileCache(dir)
	require.NoError(t, err)
	assert.Equal(t, "[ '18.3.1' ]", NewCached(Fixed{}, second, time.Hour, nil).Query(ctx, "react", "versions"))
}
