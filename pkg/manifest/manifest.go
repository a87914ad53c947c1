package manifest

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/matzehuels/npmkit/pkg/errors"
)

// Standard manifest file names.
const (
	PackageFile = "package.json"
	LockFile    = "package-lock.json"
)

// DefaultType is the module type Node assumes when "type" is not set.
const DefaultType = "commonjs"

// Manifest is a parsed package.json. All fields are retained in their
// original order.
type Manifest struct {
	fields object
}

// Load reads and parses the package.json at path.
func Load(path string) (*Manifest, error) {
	data, err := readManifestFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, filepath.Base(path))
}

// Parse parses package.json content. name is used in error messages.
func Parse(data []byte, name string) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m.fields); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "Invalid JSON in %s: %v", name, err)
	}
	return &m, nil
}

func readManifestFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if os.IsNotExist(err) {
		abs, absErr := filepath.Abs(path)
		if absErr != nil {
			abs = path
		}
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "%s not found at %s", filepath.Base(path), abs)
	}
	return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "read %s", path)
}

// Marshal encodes the manifest with 2-space indentation and a trailing
// newline, the layout npm itself writes.
func (m *Manifest) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m.fields); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the manifest to path.
func (m *Manifest) Save(path string) error {
	data, err := m.Marshal()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode %s", filepath.Base(path))
	}
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}

// Name returns the "name" field, or "" when it is missing or not a string.
func (m *Manifest) Name() string {
	s, _ := m.fields.str("name")
	return s
}

// Version returns the "version" field, or "" when it is missing or not a string.
func (m *Manifest) Version() string {
	s, _ := m.fields.str("version")
	return s
}

// SetVersion replaces the "version" field, appending it when absent.
func (m *Manifest) SetVersion(v string) error {
	return m.fields.set("version", v)
}

// Private reports whether "private" is exactly true.
func (m *Manifest) Private() bool {
	raw, ok := m.fields.get("private")
	return ok && string(bytes.TrimSpace(raw)) == "true"
}

// EngineNode returns the "engines.node" range, or "" when not set.
func (m *Manifest) EngineNode() string {
	raw, ok := m.fields.get("engines")
	if !ok {
		return ""
	}
	var engines struct {
		Node string `json:"node"`
	}
	if err := json.Unmarshal(raw, &engines); err != nil {
		return ""
	}
	return engines.Node
}

// Type returns the module type, defaulting to [DefaultType].
func (m *Manifest) Type() string {
	if s, ok := m.fields.str("type"); ok && s != "" {
		return s
	}
	return DefaultType
}

// Main returns the "main" entry point and whether it is set.
func (m *Manifest) Main() (string, bool) {
	return m.fields.str("main")
}

// Exports returns the raw "exports" value when it is set to a truthy value.
func (m *Manifest) Exports() (json.RawMessage, bool) {
	raw, ok := m.fields.get("exports")
	if !ok || !truthy(raw) {
		return nil, false
	}
	return raw, true
}

// HasSideEffects reports whether the "sideEffects" field is present.
func (m *Manifest) HasSideEffects() bool {
	_, ok := m.fields.get("sideEffects")
	return ok
}

// Raw returns the raw JSON value of a top-level field.
func (m *Manifest) Raw(key string) (json.RawMessage, bool) {
	return m.fields.get(key)
}
