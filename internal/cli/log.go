// Package cli implements the npmkit command-line interface.
//
// This package provides commands for researching npm packages through the
// npm executable and for inspecting the package.json and package-lock.json
// of a local project. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - info, versions, deps, compare: Query package metadata with "npm view"
//   - check: Print research reports for a batch of packages
//   - overview, validate, entries, bump: Inspect and edit package.json
//   - lock: Summarize package-lock.json
//
// # Output
//
// Results are printed as tables and boxes styled with lipgloss, or as JSON
// documents with --json. --plain drops colors and emoji.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/matzehuels/npmkit/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates the CLI logger. Timestamps look like "14:32:01.45".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times a batch of items. Each step is logged at debug level and
// done logs the summary with the elapsed time, e.g.
// "Checked 3 packages (1.234s)". Not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
	total  int
	n      int
}

func newProgress(l *log.Logger, total int) *progress {
	return &progress{logger: l, start: time.Now(), total: total}
}

// step records that work on item has begun.
func (p *progress) step(item string) {
	p.n++
	p.logger.Debug("step", "item", item, "n", fmt.Sprintf("%d/%d", p.n, p.total))
}

func (p *progress) done(format string, args ...any) {
	p.logger.Infof("%s (%s)", fmt.Sprintf(format, args...), time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx for loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by setup, or log.Default()
// for a command run without it.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
