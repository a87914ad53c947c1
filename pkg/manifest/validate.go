package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/npmkit/pkg/errors"
)

// Level classifies a validation finding.
type Level string

const (
	LevelOK   Level = "ok"
	LevelWarn Level = "warn"
)

// Finding is a single validation result.
type Finding struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Report is the ordered list of findings produced by [Validate].
type Report struct {
	Findings []Finding `json:"findings"`
}

func (r *Report) ok(format string, args ...any) {
	r.Findings = append(r.Findings, Finding{Level: LevelOK, Message: fmt.Sprintf(format, args...)})
}

func (r *Report) warn(format string, args ...any) {
	r.Findings = append(r.Findings, Finding{Level: LevelWarn, Message: fmt.Sprintf(format, args...)})
}

// Warnings returns the number of warning findings.
func (r Report) Warnings() int {
	n := 0
	for _, f := range r.Findings {
		if f.Level == LevelWarn {
			n++
		}
	}
	return n
}

// Validate checks m against the package.json guardrails. Findings are
// returned in check order. The first fatal problem ends validation: it is
// returned as the error, and the report holds the findings gathered before it.
func Validate(m *Manifest) (Report, error) {
	var r Report

	if err := validateName(m); err != nil {
		return r, err
	}
	if err := validateVersion(m); err != nil {
		return r, err
	}

	if m.Private() {
		r.ok(`"private" is true`)
	} else {
		r.warn(`"private" is not true. For applications, set "private": true to avoid accidental publish.`)
	}

	if node := m.EngineNode(); node == "" {
		r.warn(`Missing "engines.node". Example: ">=18"`)
	} else {
		r.ok(`engines.node set to %q`, node)
	}

	r.ok(`type: %q`, m.Type())

	if exports, ok := m.Exports(); ok {
		if !isObject(exports) {
			return r, errors.New(errors.ErrCodeInvalidManifest, `"exports" must be an object mapping subpaths to entrypoints`)
		}
		r.ok(`"exports" exists (modern resolution)`)
		checkRootExport(&r, exports)
	} else {
		r.warn(`No "exports" found. Fine for apps; recommended for libraries.`)
	}

	if !m.HasSideEffects() {
		r.warn(`Consider "sideEffects": false for libraries to enable tree-shaking.`)
	}

	r.ok("Basic validation passed.")
	return r, nil
}

func validateName(m *Manifest) error {
	raw, ok := m.fields.get("name")
	if !ok || !truthy(raw) {
		return errors.New(errors.ErrCodeInvalidManifest, `Missing "name"`)
	}
	name, isString := m.fields.str("name")
	if !isString {
		return errors.New(errors.ErrCodeInvalidManifest, `Invalid "name": %s (lowercase, no spaces, no leading . or _)`, raw)
	}
	return errors.ValidateManifestName(name)
}

func validateVersion(m *Manifest) error {
	raw, ok := m.fields.get("version")
	if !ok || !truthy(raw) {
		return errors.New(errors.ErrCodeInvalidManifest, `Missing "version"`)
	}
	version, isString := m.fields.str("version")
	if !isString || !errors.IsSemver(version) {
		if !isString {
			version = string(raw)
		}
		return errors.New(errors.ErrCodeInvalidVersion, `Invalid "version" (must be X.Y.Z): %q`, version)
	}
	return nil
}

// checkRootExport inspects exports["."] for an import or require condition.
func checkRootExport(r *Report, exports json.RawMessage) {
	var byPath map[string]json.RawMessage
	if err := json.Unmarshal(exports, &byPath); err != nil {
		// An exports array has no "." entry.
		byPath = nil
	}
	dot, ok := byPath["."]
	if !ok || !truthy(dot) || !isObject(dot) {
		r.warn(`Missing exports["."]; add { "import": "...", "require": "..." }`)
		return
	}

	var conditions map[string]json.RawMessage
	_ = json.Unmarshal(dot, &conditions)
	if !truthy(conditions["import"]) && !truthy(conditions["require"]) {
		r.warn(`Provide at least one of "import" or "require" under exports["."]`)
	}
}

// EntryReport describes how Node resolves the package entry point.
type EntryReport struct {
	Type           string `json:"type"`
	Main           string `json:"main,omitempty"`
	HasMain        bool   `json:"hasMain"`
	HasExports     bool   `json:"hasExports"`
	Interpretation string `json:"interpretation"`
}

// Entries reports the entry resolution for m.
func Entries(m *Manifest) EntryReport {
	main, hasMain := m.Main()
	_, hasExports := m.Exports()

	e := EntryReport{
		Type:       m.Type(),
		Main:       main,
		HasMain:    hasMain,
		HasExports: hasExports,
	}
	switch {
	case hasExports:
		e.Interpretation = `Node prefers "exports" over "main" for subpath imports.`
	case hasMain && main != "":
		e.Interpretation = `Without "exports", Node/bundlers use "main".`
	default:
		e.Interpretation = `No "exports" or "main": resolver may fall back to index.js by convention.`
	}
	return e
}
