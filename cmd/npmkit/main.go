package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/matzehuels/npmkit/internal/cli"
	npmerrors "github.com/matzehuels/npmkit/pkg/errors"
	"github.com/matzehuels/npmkit/pkg/observability"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	_ = godotenv.Load()

	if err := run(ctx); err != nil {
		code := npmerrors.ExitCode(err)
		if code != npmerrors.ExitInterrupted {
			fmt.Fprintln(os.Stderr, npmerrors.UserMessage(err))
		}
		os.Exit(code)
	}
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()

	hooks := observability.NewLogHooks(c.Logger)
	observability.SetQueryHooks(hooks)
	observability.SetManifestHooks(hooks)
	observability.SetCacheHooks(hooks)

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// Set the log level before the root setup hook runs.
	originalPreRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := cli.LogInfo
		if verbose {
			level = cli.LogDebug
		}
		c.SetLogLevel(level)

		if originalPreRun != nil {
			return originalPreRun(cmd, args)
		}
		return nil
	}

	err := root.ExecuteContext(ctx)
	// npm queries swallow cancellation, so report an interrupt here.
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
