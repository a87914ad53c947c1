package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/npmkit/pkg/errors"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the registry answer cache",
		Long: `npmkit can remember "npm view" answers on disk so repeated lookups skip npm.
The cache is off by default; enable it with NPMKIT_CACHE=true or

  [cache]
  enabled = true
  ttl = "1h"

in the config file.`,
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached registry answers",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := c.cacheDir()
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "locate cache directory")
			}

			count := 0
			if _, err := os.Stat(dir); err == nil {
				fc, err := c.fileCache()
				if err != nil {
					return errors.Wrap(errors.ErrCodeInternal, err, "open cache %s", dir)
				}
				if count, err = fc.Clear(); err != nil {
					return errors.Wrap(errors.ErrCodeInternal, err, "clear cache %s", dir)
				}
			}

			if c.cfg.JSON {
				return c.ui.printJSON(struct {
					envelope
					Dir     string `json:"dir"`
					Removed int    `json:"removed"`
				}{okEnvelope("cache clear"), dir, count})
			}
			if count == 0 {
				c.ui.printInfo("Cache is empty")
				return nil
			}
			c.ui.printSuccess("Cleared %d cached answers", count)
			c.ui.printDetail("Directory: %s", dir)
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := c.cacheDir()
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "locate cache directory")
			}
			if c.cfg.JSON {
				return c.ui.printJSON(struct {
					envelope
					Dir     string `json:"dir"`
					Enabled bool   `json:"enabled"`
				}{okEnvelope("cache path"), dir, c.cfg.Cache.Enabled})
			}
			c.ui.println(dir)
			return nil
		},
	}
}
