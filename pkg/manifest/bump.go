package manifest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/npmkit/pkg/errors"
)

// BumpKind selects which version component to increment.
type BumpKind string

const (
	BumpPatch BumpKind = "patch"
	BumpMinor BumpKind = "minor"
	BumpMajor BumpKind = "major"
)

// BumpVersion increments version by kind. The version must be a plain X.Y.Z
// version; it is checked before kind.
func BumpVersion(version string, kind BumpKind) (string, error) {
	if err := errors.ValidateSemver(version); err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidVersion, err, "Cannot bump invalid version %q", version)
	}

	parts := strings.Split(version, ".")
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidVersion, err, "Cannot bump invalid version %q", version)
		}
		nums[i] = n
	}
	major, minor, patch := nums[0], nums[1], nums[2]

	switch kind {
	case BumpPatch:
		patch++
	case BumpMinor:
		minor, patch = minor+1, 0
	case BumpMajor:
		major, minor, patch = major+1, 0, 0
	default:
		return "", errors.New(errors.ErrCodeInvalidInput, "Unknown bump kind %q. Use patch|minor|major.", string(kind))
	}
	return fmt.Sprintf("%d.%d.%d", major, minor, patch), nil
}

// Bump increments the manifest version in place and returns the new version.
// The manifest is not written; call [Manifest.Save].
func (m *Manifest) Bump(kind BumpKind) (string, error) {
	next, err := BumpVersion(m.Version(), kind)
	if err != nil {
		return "", err
	}
	if err := m.SetVersion(next); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "set version")
	}
	return next, nil
}
