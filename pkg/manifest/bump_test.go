package manifest

import (
	"os"
	"strings"
	"testing"

	"github.com/matzehuels/npmkit/pkg/errors"
)

func TestBumpVersion(t *testing.T) {
	tests := []struct {
		version string
		kind    BumpKind
		want    string
	}{
		{"1.2.3", BumpPatch, "1.2.4"},
		{"1.2.3", BumpMinor, "1.3.0"},
		{"1.2.3", BumpMajor, "2.0.0"},
		{"0.0.9", BumpPatch, "0.0.10"},
		{"0.9.9", BumpMinor, "0.10.0"},
		{"9.9.9", BumpMajor, "10.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.version+" "+string(tt.kind), func(t *testing.T) {
			got, err := BumpVersion(tt.version, tt.kind)
			if err != nil {
				t.Fatalf("BumpVersion failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("BumpVersion(%q, %s) = %q, want %q", tt.version, tt.kind, got, tt.want)
			}
		})
	}
}

func TestBumpVersionErrors(t *testing.T) {
	tests := []struct {
		name    string
		version string
		kind    BumpKind
		code    errors.Code
		message string
	}{
		{"short version", "1.2", BumpPatch, errors.ErrCodeInvalidVersion, `Cannot bump invalid version "1.2"`},
		{"prerelease", "1.2.3-beta.1", BumpPatch, errors.ErrCodeInvalidVersion, `Cannot bump invalid version "1.2.3-beta.1"`},
		{"empty", "", BumpMinor, errors.ErrCodeInvalidVersion, `Cannot bump invalid version ""`},
		{"unknown kind", "1.2.3", BumpKind("micro"), errors.ErrCodeInvalidInput, `Unknown bump kind "micro". Use patch|minor|major.`},
		{"version checked first", "x", BumpKind("micro"), errors.ErrCodeInvalidVersion, `Cannot bump invalid version "x"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BumpVersion(tt.version, tt.kind)
			if !errors.Is(err, tt.code) {
				t.Fatalf("BumpVersion error = %v, want code %s", err, tt.code)
			}
			if got := errors.UserMessage(err); got != tt.message {
				t.Errorf("message = %q, want %q", got, tt.message)
			}
			if tt.code == errors.ErrCodeInvalidVersion && !strings.Contains(err.Error(), "must be X.Y.Z") {
				t.Errorf("BumpVersion error = %v, want the semver check as cause", err)
			}
		})
	}
}

func TestManifestBumpSave(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, PackageFile, `{
  "name": "my-app",
  "version": "1.2.3",
  "scripts": {
    "test": "lint && jest"
  }
}
`)

	m, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	next, err := m.Bump(BumpMinor)
	if err != nil {
		t.Fatalf("Bump failed: %v", err)
	}
	if next != "1.3.0" {
		t.Errorf("Bump = %q, want %q", next, "1.3.0")
	}

	// Bump alone does not touch the file.
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), `"version": "1.2.3"`) {
		t.Errorf("file changed before Save:\n%s", data)
	}

	if err := m.Save(path); err != nil {
		t.Fatal(err)
	}
	data, _ = os.ReadFile(path)
	want := `{
  "name": "my-app",
  "version": "1.3.0",
  "scripts": {
    "test": "lint && jest"
  }
}
`
	if string(data) != want {
		t.Errorf("saved manifest =\n%s\nwant\n%s", data, want)
	}
}

func TestManifestBumpInvalidLeavesVersion(t *testing.T) {
	m := mustParse(t, `{"name": "x", "version": "1.2"}`)
	if _, err := m.Bump(BumpPatch); err == nil {
		t.Fatal("Bump succeeded, want error")
	}
	if got := m.Version(); got != "1.2" {
		t.Errorf("Version() = %q, want unchanged", got)
	}
}
