package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/npmkit/pkg/npmview"
)

// infoCommand creates the info command.
func (c *CLI) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <package>",
		Short: "Show key fields (version, license, repo, size)",
		Example: `  npmkit info express
  npmkit info @types/node --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := packageArgs(args, 1, "info <package>"); err != nil {
				return err
			}
			var info npmview.PackageInfo
			c.spin(cmd.Context(), "Querying "+args[0], func() {
				info = c.inspector().Info(cmd.Context(), args[0])
			})

			if c.cfg.JSON {
				return c.ui.printJSON(struct {
					envelope
					Data npmview.PackageInfo `json:"data"`
				}{okEnvelope("info"), info})
			}
			c.ui.printTable([]string{"field", "value"}, [][]string{
				{"name", info.Name},
				{"version", info.Version},
				{"license", info.License},
				{"description", info.Description},
				{"repository", info.Repository},
				{"homepage", info.HomePage},
				{"unpackedSizeKB", info.UnpackedSizeKB},
			})
			return nil
		},
	}
}

// versionsCommand creates the versions command.
func (c *CLI) versionsCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "versions <package>",
		Short:   "Show recent versions",
		Example: `  npmkit versions react --limit=7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := packageArgs(args, 1, "versions <package> [--limit=N]"); err != nil {
				return err
			}
			limit = limitFlag(cmd, "limit", limit, c.cfg.Versions.Limit)

			var versions []string
			c.spin(cmd.Context(), "Querying "+args[0], func() {
				versions = c.inspector().Versions(cmd.Context(), args[0], limit)
			})

			if c.cfg.JSON {
				return c.ui.printJSON(struct {
					envelope
					Package  string   `json:"package"`
					Versions []string `json:"versions"`
				}{okEnvelope("versions"), args[0], versions})
			}
			rows := make([][]string, len(versions))
			for i, v := range versions {
				rows[i] = []string{v}
			}
			c.ui.printTable([]string{"version"}, rows)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 5, "number of recent versions (0 for all)")
	return cmd
}

// depsCommand creates the deps command.
func (c *CLI) depsCommand() *cobra.Command {
	var maxDeps int

	cmd := &cobra.Command{
		Use:     "deps <package>",
		Short:   "List dependencies",
		Example: `  npmkit deps fastify --max=15`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := packageArgs(args, 1, "deps <package> [--max=N]"); err != nil {
				return err
			}
			maxDeps = limitFlag(cmd, "max", maxDeps, c.cfg.Deps.Max)

			var list []npmview.Dependency
			c.spin(cmd.Context(), "Querying "+args[0], func() {
				list = c.inspector().Dependencies(cmd.Context(), args[0], maxDeps)
			})

			if c.cfg.JSON {
				return c.ui.printJSON(struct {
					envelope
					Package      string               `json:"package"`
					Dependencies []npmview.Dependency `json:"dependencies"`
				}{okEnvelope("deps"), args[0], list})
			}
			if len(list) == 0 {
				c.ui.println("(no dependencies)")
				return nil
			}
			rows := make([][]string, len(list))
			for i, d := range list {
				rows[i] = []string{d.Name, d.Range}
			}
			c.ui.printTable([]string{"name", "range"}, rows)
			return nil
		},
	}

	cmd.Flags().IntVar(&maxDeps, "max", 10, "number of dependencies to list (0 for all)")
	return cmd
}

// compareCommand creates the compare command.
func (c *CLI) compareCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "compare <pkgA> <pkgB>",
		Short:   "Compare two packages",
		Example: `  npmkit compare axios node-fetch --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := packageArgs(args, 2, "compare <pkgA> <pkgB>"); err != nil {
				return err
			}
			var a, b npmview.PackageSummary
			c.spin(cmd.Context(), "Comparing "+args[0]+" and "+args[1], func() {
				a, b = c.inspector().Compare(cmd.Context(), args[0], args[1])
			})

			if c.cfg.JSON {
				return c.ui.printJSON(struct {
					envelope
					A npmview.PackageSummary `json:"a"`
					B npmview.PackageSummary `json:"b"`
				}{okEnvelope("compare"), a, b})
			}
			c.ui.printTable([]string{"field", a.Name, b.Name}, [][]string{
				{"version", a.Version, b.Version},
				{"license", a.License, b.License},
				{"depsCount", strconv.Itoa(a.DepsCount), strconv.Itoa(b.DepsCount)},
				{"size(KB)", a.SizeKB, b.SizeKB},
			})
			return nil
		},
	}
}
