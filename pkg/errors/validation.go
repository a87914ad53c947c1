package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidatePackageName validates a package name for safety and correctness.
// It rejects names that could be used for path traversal or injection attacks.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path traversal sequences (.., //, etc.)
//   - No null bytes
//   - Maximum length of 256 characters
//
// npm-specific validation is done by [ValidatePackageSpec] and
// [ValidateManifestName].
func ValidatePackageName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPackage, "package name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidPackage, "package name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPackage, "package name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidPackage, "package name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// npmPackageSpecRegex matches an npm package name with an optional
// "@version-or-tag" suffix, e.g. "react", "@types/node", "react@18".
var npmPackageSpecRegex = regexp.MustCompile(`^(@[a-z0-9-~][a-z0-9-._~]*/)?[A-Za-z0-9-~][A-Za-z0-9-._~]*(@[A-Za-z0-9.^~<>=*|+ -]+)?$`)

// ValidatePackageSpec validates a package argument handed to `npm view`.
// Leading dashes are rejected so the argument is never read as a flag.
func ValidatePackageSpec(spec string) error {
	if err := ValidatePackageName(spec); err != nil {
		return err
	}

	if strings.HasPrefix(spec, "-") {
		return New(ErrCodeInvalidPackage, "package name cannot start with '-': %q", spec)
	}

	if !npmPackageSpecRegex.MatchString(spec) {
		return New(ErrCodeInvalidPackage, "invalid npm package name: %q", spec)
	}

	return nil
}

// ValidateManifestName applies the simplified npm naming rules used for the
// "name" field of package.json: lowercase, no whitespace, no leading . or _.
func ValidateManifestName(name string) error {
	switch {
	case name == "":
		return New(ErrCodeInvalidManifest, `Missing "name"`)
	case name != strings.ToLower(name),
		strings.IndexFunc(name, unicode.IsSpace) >= 0,
		strings.HasPrefix(name, "."),
		strings.HasPrefix(name, "_"):
		return New(ErrCodeInvalidManifest, `Invalid "name": %q (lowercase, no spaces, no leading . or _)`, name)
	}
	return nil
}

// semverRegex matches plain X.Y.Z versions only; pre-release and build
// suffixes are rejected.
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// IsSemver reports whether version is a plain X.Y.Z version.
func IsSemver(version string) bool {
	return semverRegex.MatchString(version)
}

// ValidateSemver returns an ErrCodeInvalidVersion error unless version is X.Y.Z.
func ValidateSemver(version string) error {
	if !IsSemver(version) {
		return New(ErrCodeInvalidVersion, "invalid version (must be X.Y.Z): %q", version)
	}
	return nil
}
