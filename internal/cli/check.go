package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/npmkit/pkg/errors"
	"github.com/matzehuels/npmkit/pkg/npmview"
)

// maxListedDeps is the largest dependency count whose names are listed.
const maxListedDeps = 10

// checkFailure records a package the checker could not look at.
type checkFailure struct {
	Package string `json:"package"`
	Error   string `json:"error"`
}

// checkCommand creates the batch package checker.
func (c *CLI) checkCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "check [package...]",
		Short: "Research packages before installing them",
		Long: `Print a research report for each package: key metadata, recent versions,
unpacked size and dependencies. Without arguments the packages listed under
[check] in the config file are checked (express, axios and lodash by default).

An invalid package name is reported and skipped; the remaining packages are
still checked and the command exits non-zero at the end.`,
		Example: `  npmkit check
  npmkit check react vue --limit=5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			limit = limitFlag(cmd, "limit", limit, c.cfg.Check.Limit)

			packages := args
			if len(packages) == 0 {
				packages = c.cfg.Check.Packages
			}

			prog := newProgress(logger, len(packages))
			in := c.inspector()
			reports := []npmview.PackageReport{}
			var failed []checkFailure

			if !c.cfg.JSON {
				c.ui.printBanner("NPM Package Information Checker Tool", "Learning to Research Packages")
				c.ui.printInfo("Checking information for %d packages...", len(packages))
				c.ui.printNewline()
			}

			for _, pkg := range packages {
				prog.step(pkg)
				if err := errors.ValidatePackageSpec(pkg); err != nil {
					failed = append(failed, checkFailure{Package: pkg, Error: errors.UserMessage(err)})
					if !c.cfg.JSON {
						c.ui.printError("%s", errors.UserMessage(err))
						c.ui.printNewline()
					}
					continue
				}

				var r npmview.PackageReport
				c.spin(ctx, "Checking "+pkg, func() {
					r = in.Report(ctx, pkg, limit)
				})
				reports = append(reports, r)
				if !c.cfg.JSON {
					c.printReport(r, limit)
				}
			}
			prog.done("Checked %d packages", len(reports))

			if c.cfg.JSON {
				if err := c.ui.printJSON(struct {
					envelope
					Packages []npmview.PackageReport `json:"packages"`
					Invalid  []checkFailure          `json:"invalid,omitempty"`
				}{envelope{OK: len(failed) == 0, Command: "check"}, reports, failed}); err != nil {
					return err
				}
			} else {
				c.printUsefulCommands()
			}

			if len(failed) > 0 {
				return errors.New(errors.ErrCodeInvalidPackage, "%d of %d packages could not be checked", len(failed), len(packages))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 3, "number of recent versions per package (0 for all)")
	return cmd
}

// printReport prints one package's research report.
func (c *CLI) printReport(r npmview.PackageReport, limit int) {
	u := c.ui

	u.printRule("=")
	u.printTitle(" Package: %s", r.Name)
	u.printRule("=")
	u.printNewline()
	for _, f := range r.Fields {
		u.println(u.label.Render(f.Label+":") + " " + f.Value)
	}
	u.printNewline()

	if limit > 0 {
		u.printTitle("Recent Versions (last %d):", limit)
	} else {
		u.printTitle("Versions:")
	}
	if len(r.Versions) == 0 {
		u.printDetail("Could not retrieve version history")
	}
	for i, v := range r.Versions {
		marker := " "
		if i == len(r.Versions)-1 {
			marker = u.icon.arrow
		}
		u.println("  " + u.highlight.Render(marker) + " " + v)
	}
	u.printNewline()

	u.printTitle("Package Size:")
	if r.SizeKB == "" {
		u.printDetail("Size information not available")
	} else {
		u.println("  Unpacked Size: " + r.SizeKB + " KB")
	}
	u.printNewline()

	u.printTitle("Dependencies:")
	if n := len(r.Dependencies); n == 0 {
		u.println("  No dependencies")
	} else {
		u.println(fmt.Sprintf("  Total Dependencies: %d", n))
		if n <= maxListedDeps {
			u.println("  Packages:")
			for _, d := range r.Dependencies {
				u.println("    - " + d)
			}
		}
	}
	u.printNewline()
	u.printRule("-")
	u.printNewline()
}

func (c *CLI) printUsefulCommands() {
	u := c.ui
	u.printTitle("Useful Commands to Try:")
	u.printNewline()
	u.printNextStep("View package details", "npm view <package-name>")
	u.printNextStep("View specific field", "npm view <package-name> version")
	u.printNextStep("View all versions", "npm view <package-name> versions")
	u.printNextStep("Open documentation in browser", "npm docs <package-name>")
	u.printNextStep("Open repository in browser", "npm repo <package-name>")
	u.printNextStep("Search for packages", "npm search <search-term>")
}
