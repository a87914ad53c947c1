package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks implements every hook interface by writing debug-level records
// to a charmbracelet logger.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger}
}

func (h *LogHooks) OnQueryStart(_ context.Context, pkg, field string) {
	h.logger.Debug("query", "pkg", pkg, "field", field)
}

func (h *LogHooks) OnQueryComplete(_ context.Context, pkg, field string, size int, duration time.Duration, err error) {
	if err != nil {
		h.logger.Debug("query failed", "pkg", pkg, "field", field, "took", duration.Round(time.Millisecond), "err", err)
		return
	}
	h.logger.Debug("query done", "pkg", pkg, "field", field, "bytes", size, "took", duration.Round(time.Millisecond))
}

func (h *LogHooks) OnManifestRead(_ context.Context, path string, err error) {
	if err != nil {
		h.logger.Debug("read failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("read", "path", path)
}

func (h *LogHooks) OnManifestWrite(_ context.Context, path string, err error) {
	if err != nil {
		h.logger.Warn("write failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("wrote", "path", path)
}

func (h *LogHooks) OnCacheHit(_ context.Context, key string) {
	h.logger.Debug("cache hit", "key", key)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, key string) {
	h.logger.Debug("cache miss", "key", key)
}

var (
	_ QueryHooks    = (*LogHooks)(nil)
	_ ManifestHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
)
