package manifest

import (
	"encoding/json"
	"path/filepath"
	"strconv"

	"github.com/matzehuels/npmkit/pkg/errors"
)

// NotAvailable is printed for lockfile values that are not present.
const NotAvailable = "N/A"

// Lockfile is the subset of package-lock.json used for inspection.
type Lockfile struct {
	LockfileVersion int                  `json:"lockfileVersion"`
	Packages        map[string]lockEntry `json:"packages"`
	Dependencies    map[string]lockEntry `json:"dependencies"`
}

type lockEntry struct {
	Version string `json:"version"`
}

// LoadLock reads and parses the package-lock.json at path.
func LoadLock(path string) (*Lockfile, error) {
	data, err := readManifestFile(path)
	if err != nil {
		return nil, err
	}
	var lock Lockfile
	if err := json.Unmarshal(data, &lock); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "Invalid JSON in %s: %v", filepath.Base(path), err)
	}
	return &lock, nil
}

// Version returns the lockfile format version, or [NotAvailable].
func (l *Lockfile) Version() string {
	if l.LockfileVersion == 0 {
		return NotAvailable
	}
	return strconv.Itoa(l.LockfileVersion)
}

// PackageCount returns the number of locked packages, excluding the root
// project entry. ok is false when the lockfile has no "packages" map.
func (l *Lockfile) PackageCount() (n int, ok bool) {
	if len(l.Packages) == 0 {
		return 0, false
	}
	for key := range l.Packages {
		if key != "" {
			n++
		}
	}
	return n, true
}

// LockedVersion returns the version locked for the top-level dependency name,
// or "" when it is not locked.
func (l *Lockfile) LockedVersion(name string) string {
	if e, ok := l.Packages["node_modules/"+name]; ok && e.Version != "" {
		return e.Version
	}
	if e, ok := l.Dependencies[name]; ok {
		return e.Version
	}
	return ""
}
