package cli

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/matzehuels/npmkit/pkg/errors"
	"github.com/matzehuels/npmkit/pkg/manifest"
	"github.com/matzehuels/npmkit/pkg/observability"
)

// loadManifest reads package.json from the --dir directory.
func (c *CLI) loadManifest(ctx context.Context) (*manifest.Manifest, string, error) {
	path := c.manifestPath(manifest.PackageFile)
	m, err := manifest.Load(path)
	observability.Manifest().OnManifestRead(ctx, path, err)
	if err != nil {
		return nil, path, err
	}
	return m, path, nil
}

func (c *CLI) inspectorBanner() {
	if !c.cfg.JSON {
		c.ui.printBanner("package.json Inspector", "Anatomy • Mutations • Guardrails")
	}
}

// overviewCommand creates the overview command.
func (c *CLI) overviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Quick overview of package.json",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := c.loadManifest(cmd.Context())
			if err != nil {
				return err
			}
			ov := newOverview(m)

			if c.cfg.JSON {
				return c.ui.printJSON(struct {
					envelope
					Data overview `json:"data"`
				}{okEnvelope("overview"), ov})
			}

			c.inspectorBanner()
			u := c.ui
			u.printBox("Quick Overview",
				u.icon.pkg+"  "+u.title.Render(ov.Name),
				" "+u.icon.bullet+" "+u.keyValue("Version", ov.Version),
				" "+u.icon.bullet+" "+u.keyValue("Type", ov.Type),
				" "+u.icon.bullet+" "+u.keyValue("Private", ov.Private),
				" "+u.icon.bullet+" "+u.keyValue("Engines", ov.Engines),
				" "+u.icon.bullet+" "+u.keyValue("Exports Map", ov.Exports),
				" "+u.icon.bullet+" "+u.keyValue("Main Entry", ov.Main),
			)
			u.printBox("Tips",
				u.icon.info+"  Try: "+u.command.Render("npmkit validate")+"  "+u.icon.bullet+"  "+u.command.Render("npmkit entries"),
				u.icon.gear+"  Mutate: "+u.command.Render(`npm pkg set type="module" engines.node=">=18"`),
				u.icon.compass+"  Versioning: "+u.command.Render("npmkit bump patch")+"  "+u.icon.bullet+"  "+u.command.Render("minor")+"  "+u.icon.bullet+"  "+u.command.Render("major"),
			)
			return nil
		},
	}
}

// overview is the summary shown by the overview command.
type overview struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Type    string `json:"type"`
	Private string `json:"private"`
	Engines string `json:"engines"`
	Exports string `json:"exports"`
	Main    string `json:"main"`
}

func newOverview(m *manifest.Manifest) overview {
	ov := overview{
		Name:    displayValue(m, "name", ""),
		Version: displayValue(m, "version", "(none)"),
		Type:    m.Type(),
		Private: displayValue(m, "private", "false"),
		Engines: "(not set)",
		Exports: "—",
		Main:    displayValue(m, "main", "(not set)"),
	}
	if node := m.EngineNode(); node != "" {
		ov.Engines = "node " + node
	}
	if _, ok := m.Exports(); ok {
		ov.Exports = "present"
	}
	return ov
}

// displayValue renders a top-level field for display: strings unquoted,
// other JSON values as written, fallback when absent or null.
func displayValue(m *manifest.Manifest, key, fallback string) string {
	raw, ok := m.Raw(key)
	if !ok || string(raw) == "null" {
		return fallback
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// validateCommand creates the validate command.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check package.json against common guardrails",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := c.loadManifest(cmd.Context())
			if err != nil {
				return err
			}
			report, verr := manifest.Validate(m)

			if c.cfg.JSON {
				out := struct {
					envelope
					Findings []manifest.Finding `json:"findings"`
					Warnings int                `json:"warnings"`
					Error    string             `json:"error,omitempty"`
				}{okEnvelope("validate"), report.Findings, report.Warnings(), ""}
				if out.Findings == nil {
					out.Findings = []manifest.Finding{}
				}
				if verr != nil {
					out.OK = false
					out.Error = errors.UserMessage(verr)
				}
				if err := c.ui.printJSON(out); err != nil {
					return err
				}
				return verr
			}

			c.inspectorBanner()
			c.ui.printTitle("Validating package.json...")
			c.ui.printNewline()
			for _, f := range report.Findings {
				switch f.Level {
				case manifest.LevelWarn:
					c.ui.printWarning("%s", f.Message)
				default:
					c.ui.printSuccess("%s", f.Message)
				}
			}
			if verr != nil {
				return verr
			}
			c.ui.printNewline()
			return nil
		},
	}
}

// entriesCommand creates the entries command.
func (c *CLI) entriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "entries",
		Short: "Explain how Node resolves the package entry point",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := c.loadManifest(cmd.Context())
			if err != nil {
				return err
			}
			e := manifest.Entries(m)

			if c.cfg.JSON {
				return c.ui.printJSON(struct {
					envelope
					Data manifest.EntryReport `json:"data"`
				}{okEnvelope("entries"), e})
			}

			mainEntry := "(not set)"
			if e.HasMain {
				mainEntry = e.Main
			}
			exports := "(not set)"
			if e.HasExports {
				exports = "present"
			}

			c.inspectorBanner()
			c.ui.printTitle("Entry Resolution Overview")
			c.ui.printNewline()
			c.ui.printKeyValue("Type", e.Type)
			c.ui.printKeyValue("Main", mainEntry)
			c.ui.printKeyValue("Exports", exports)
			c.ui.printNewline()
			c.ui.println("Interpretation:")
			c.ui.printBullet("%s", e.Interpretation)
			c.ui.printNewline()
			return nil
		},
	}
}

// bumpCommand creates the bump command.
func (c *CLI) bumpCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "bump <patch|minor|major>",
		Short:     "Bump the package.json version and save it",
		ValidArgs: []string{string(manifest.BumpPatch), string(manifest.BumpMinor), string(manifest.BumpMajor)},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireArgs(args, 1, "bump <patch|minor|major>"); err != nil {
				return err
			}
			m, path, err := c.loadManifest(cmd.Context())
			if err != nil {
				return err
			}
			previous := m.Version()
			next, err := m.Bump(manifest.BumpKind(args[0]))
			if err != nil {
				return err
			}
			err = m.Save(path)
			observability.Manifest().OnManifestWrite(cmd.Context(), path, err)
			if err != nil {
				return err
			}

			if c.cfg.JSON {
				return c.ui.printJSON(struct {
					envelope
					Previous string `json:"previous"`
					Version  string `json:"version"`
				}{okEnvelope("bump"), previous, next})
			}
			c.inspectorBanner()
			c.ui.printSuccess("Bumped version to %s", next)
			return nil
		},
	}
}
