package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/npmkit/pkg/buildinfo"
	"github.com/matzehuels/npmkit/pkg/cache"
	"github.com/matzehuels/npmkit/pkg/errors"
	"github.com/matzehuels/npmkit/pkg/npmview"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "npmkit"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives command output. Defaults to os.Stdout.
	Out io.Writer
	// Querier answers registry questions. When nil, the configured npm
	// executable is run.
	Querier npmview.Querier

	flags    globalFlags
	cfg      Config
	ui       *ui
	registry npmview.Querier
}

// globalFlags holds the persistent flags shared by every command.
type globalFlags struct {
	json       bool
	plain      bool
	dir        string
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "npmkit inspects npm packages and package.json manifests",
		Long: `npmkit is a CLI tool for researching npm packages before installing them and
for keeping package.json and package-lock.json in shape.

Registry data comes from the npm executable ("npm view"), so npmkit honours
your npm configuration, registry and authentication.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.BoolVar(&c.flags.json, "json", false, "output JSON")
	pf.BoolVar(&c.flags.plain, "plain", false, "disable colors and emoji")
	pf.StringVarP(&c.flags.dir, "dir", "C", ".", "directory containing package.json")
	pf.StringVar(&c.flags.configPath, "config", "", "config file (default ~/.config/npmkit/config.toml)")

	// Registry commands
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.versionsCommand())
	root.AddCommand(c.depsCommand())
	root.AddCommand(c.compareCommand())
	root.AddCommand(c.checkCommand())

	// Manifest commands
	root.AddCommand(c.overviewCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.entriesCommand())
	root.AddCommand(c.bumpCommand())
	root.AddCommand(c.lockCommand())

	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup resolves the configuration and output for the invoked command.
// Flags set on the command line win over the config file and environment.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(c.flags.configPath, c.Logger)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("json") {
		cfg.JSON = c.flags.json
	}
	if flags.Changed("plain") {
		cfg.Plain = c.flags.plain
	}
	c.cfg = cfg

	if c.Out == nil {
		c.Out = os.Stdout
	}
	c.ui = newUI(c.Out, cfg.Plain)
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Helpers
// =============================================================================

// inspector returns the package inspector for this invocation.
func (c *CLI) inspector() *npmview.Inspector {
	return npmview.NewInspector(c.querier())
}

// querier returns the invocation's registry querier. With the cache enabled,
// answers are kept in memory and on disk between runs.
func (c *CLI) querier() npmview.Querier {
	if c.registry != nil {
		return c.registry
	}
	q := c.Querier
	if q == nil {
		q = npmview.NewCommand(c.cfg.NPM, c.Logger)
	}
	c.registry = q
	if !c.cfg.Cache.Enabled {
		return q
	}

	disk, err := c.fileCache()
	if err != nil {
		c.Logger.Warn("registry cache disabled", "err", err)
		return q
	}
	mem, err := cache.NewMemoryCache(cache.DefaultMemoryEntries)
	if err != nil {
		c.Logger.Warn("registry cache disabled", "err", err)
		return q
	}
	c.registry = npmview.NewCached(q, cache.NewTiered(mem, disk, c.cfg.Cache.TTL), c.cfg.Cache.TTL, c.Logger)
	return c.registry
}

// fileCache opens the on-disk cache directory.
func (c *CLI) fileCache() (*cache.FileCache, error) {
	dir, err := c.cacheDir()
	if err != nil {
		return nil, err
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the configured cache directory or the XDG default.
func (c *CLI) cacheDir() (string, error) {
	if c.cfg.Cache.Dir != "" {
		return c.cfg.Cache.Dir, nil
	}
	return cacheDir()
}

// manifestPath returns the path of name inside the --dir directory.
func (c *CLI) manifestPath(name string) string {
	return filepath.Join(c.flags.dir, name)
}

// spin runs fn behind a spinner on stderr. JSON and plain output never draw one.
func (c *CLI) spin(ctx context.Context, message string, fn func()) {
	if c.cfg.JSON || c.cfg.Plain {
		fn()
		return
	}
	s := newSpinner(ctx, os.Stderr, message)
	s.Start()
	defer s.Stop()
	fn()
}

// requireArgs returns a usage error when fewer than n arguments were given.
func requireArgs(args []string, n int, usage string) error {
	if len(args) < n {
		return errors.New(errors.ErrCodeInvalidInput, "Usage: %s", usage)
	}
	return nil
}

// packageArgs checks the arity and validates each package argument.
func packageArgs(args []string, n int, usage string) error {
	if err := requireArgs(args, n, usage); err != nil {
		return err
	}
	for _, pkg := range args[:n] {
		if err := errors.ValidatePackageSpec(pkg); err != nil {
			return err
		}
	}
	return nil
}

// limitFlag returns the flag value when it was set, otherwise fallback.
func limitFlag(cmd *cobra.Command, name string, value, fallback int) int {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}
