package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/npmkit/pkg/errors"
	"github.com/matzehuels/npmkit/pkg/manifest"
	"github.com/matzehuels/npmkit/pkg/observability"
)

// lockSummary is the lockfile content summary.
type lockSummary struct {
	LockfileVersion string `json:"lockfileVersion"`
	TotalPackages   *int   `json:"totalPackages"`
	Package         string `json:"package"`
	LockedVersion   string `json:"lockedVersion"`
}

// lockCommand creates the lockfile checker.
func (c *CLI) lockCommand() *cobra.Command {
	var keyPackage string

	cmd := &cobra.Command{
		Use:   "lock",
		Short: "Check package-lock.json and summarize what it pins",
		Example: `  npmkit lock
  npmkit lock --package=react -C ./app`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("package") {
				keyPackage = c.cfg.Lock.Package
			}
			if err := errors.ValidatePackageName(keyPackage); err != nil {
				return err
			}
			u := c.ui
			text := !c.cfg.JSON

			if text {
				u.printBanner("Lockfile Checker Tool", "Understanding Deterministic Builds")
				u.printTitle("Status Check:")
				u.printNewline()
			}

			if _, _, err := c.loadManifest(cmd.Context()); err != nil {
				if text && errors.Is(err, errors.ErrCodeFileNotFound) {
					u.printError("package.json NOT found! This is critical.")
				}
				return err
			}
			if text {
				u.printSuccess("package.json found.")
			}

			lockPath := c.manifestPath(manifest.LockFile)
			lock, err := manifest.LoadLock(lockPath)
			observability.Manifest().OnManifestRead(cmd.Context(), lockPath, err)
			if err != nil {
				if text && errors.Is(err, errors.ErrCodeFileNotFound) {
					u.printError("package-lock.json NOT found! Your builds are NOT deterministic.")
					u.printNewline()
					u.printWarning("Action: Run 'npm install' to generate it and commit it!")
				}
				return err
			}

			sum := lockSummary{
				LockfileVersion: lock.Version(),
				Package:         keyPackage,
				LockedVersion:   lock.LockedVersion(keyPackage),
			}
			if n, ok := lock.PackageCount(); ok {
				sum.TotalPackages = &n
			}
			if sum.LockedVersion == "" {
				sum.LockedVersion = manifest.NotAvailable
			}

			if c.cfg.JSON {
				return u.printJSON(struct {
					envelope
					Data lockSummary `json:"data"`
				}{okEnvelope("lock"), sum})
			}
			u.printSuccess("package-lock.json found.")
			u.printNewline()
			c.printLockSummary(sum)
			return nil
		},
	}

	cmd.Flags().StringVar(&keyPackage, "package", "chalk", "key dependency whose locked version is shown")
	return cmd
}

func (c *CLI) printLockSummary(sum lockSummary) {
	u := c.ui

	u.printTitle("Command Comparison:")
	u.printNewline()
	u.println(u.highlight.Render("- npm install:"))
	u.printDetail("Installs packages and updates package-lock.json if necessary, resolving versions from package.json ranges (^, ~).")
	u.printDetail("Different machines can install slightly different versions.")
	u.printNewline()
	u.println(u.highlight.Render("- npm ci (Clean Install):"))
	u.printDetail("Installs exactly what package-lock.json pins and fails if it disagrees with package.json.")
	u.printDetail("Faster in CI pipelines, with guaranteed version consistency.")
	u.printNewline()
	u.printWarning("Whenever dependencies change, run `npm install` once and commit the updated lockfile!")
	u.printNewline()

	total := "Unknown"
	if sum.TotalPackages != nil {
		total = strconv.Itoa(*sum.TotalPackages)
	}
	u.printTitle("Lockfile Content Summary:")
	u.println("- Lockfile Version: " + sum.LockfileVersion)
	u.println("- Total Packages Locked: " + total)
	u.println("- Key Dependency (" + u.warning.Render(sum.Package) + ") Version Locked: " + sum.LockedVersion)
	u.println("- Integrity Check: " + u.success.Render("PASS") + " (Lockfile is present and seems valid)")
	u.printNewline()

	u.printTitle("Best Practice:")
	u.println("1. Use " + u.command.Render("npm ci") + " in all production and CI/CD environments.")
	u.println("2. Always commit " + u.command.Render("package-lock.json") + " alongside package.json.")
	u.printRule("=")
}
