package npmview

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/npmkit/pkg/observability"
)

// Querier answers a single `npm view` question. Implementations return the
// trimmed output, or "" when the question could not be answered.
type Querier interface {
	Query(ctx context.Context, pkg, field string) string
}

// Command is a [Querier] backed by an npm executable.
type Command struct {
	bin    string
	logger *log.Logger
}

// NewCommand creates a Command that runs bin (usually "npm"). A nil logger
// discards diagnostics.
func NewCommand(bin string, logger *log.Logger) *Command {
	if bin == "" {
		bin = "npm"
	}
	return &Command{bin: bin, logger: logger}
}

// Query runs `<bin> view <pkg> [field]` and returns its trimmed stdout.
// Spawn failures and non-zero exits are logged at debug level and reported
// as "". Every call is reported to the registered query hooks.
func (c *Command) Query(ctx context.Context, pkg, field string) string {
	args := []string{"view", pkg}
	if field != "" {
		args = append(args, field)
	}

	hooks := observability.Query()
	hooks.OnQueryStart(ctx, pkg, field)
	start := time.Now()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.bin, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		hooks.OnQueryComplete(ctx, pkg, field, 0, time.Since(start), err)
		if c.logger != nil {
			c.logger.Debug("npm view failed", "cmd", c.bin+" "+strings.Join(args, " "), "err", err, "stderr", strings.TrimSpace(stderr.String()))
		}
		return ""
	}
	out := strings.TrimSpace(stdout.String())
	hooks.OnQueryComplete(ctx, pkg, field, len(out), time.Since(start), nil)
	return out
}

// Fixed is a [Querier] that answers from a map keyed by "pkg field"
// (or just "pkg" when field is empty). Unknown keys answer "".
type Fixed map[string]string

// Query implements [Querier].
func (f Fixed) Query(_ context.Context, pkg, field string) string {
	key := pkg
	if field != "" {
		key += " " + field
	}
	return f[key]
}

var (
	_ Querier = (*Command)(nil)
	_ Querier = Fixed(nil)
)
