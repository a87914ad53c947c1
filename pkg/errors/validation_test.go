package errors

import (
	"testing"
)

func TestValidatePackageName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "express", false},
		{"valid with dash", "my-package", false},
		{"valid with underscore", "my_package", false},
		{"valid with dot", "my.package", false},
		{"valid scoped npm", "@scope/package", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 300)), true},
		{"path traversal ..", "foo/../bar", true},
		{"path traversal //", "foo//bar", true},
		{"null byte", "foo\x00bar", true},
		{"backslash", "foo\\bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
		{"carriage return", "foo\rbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePackageName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePackageName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePackageSpec(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "express", false},
		{"scoped", "@types/node", false},
		{"with version", "react@18.2.0", false},
		{"with tag", "next@canary", false},
		{"with range", "lodash@^4.17.0", false},
		{"scoped with version", "@babel/core@7.0.0", false},
		{"tilde", "~foo", false},

		{"empty", "", true},
		{"uppercase", "React", false},
		{"mixed case", "JSONStream", false},
		{"mixed case with version", "Base64@1.1.0", false},
		{"flag injection", "--registry=evil", true},
		{"leading dash", "-g", true},
		{"spaces", "foo bar", true},
		{"shell metachar", "foo;rm", true},
		{"traversal", "foo/../bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePackageSpec(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePackageSpec(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPackage) {
				t.Errorf("ValidatePackageSpec(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPackage)
			}
		})
	}
}

func TestValidateManifestName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "my-app", false},
		{"scoped", "@acme/my-app", false},
		{"digits", "app2", false},

		{"empty", "", true},
		{"uppercase", "MyApp", true},
		{"space", "my app", true},
		{"tab", "my\tapp", true},
		{"leading dot", ".hidden", true},
		{"leading underscore", "_private", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateManifestName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateManifestName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateManifestNameMessages(t *testing.T) {
	if got := UserMessage(ValidateManifestName("")); got != `Missing "name"` {
		t.Errorf("empty name message = %q", got)
	}
	want := `Invalid "name": "Bad" (lowercase, no spaces, no leading . or _)`
	if got := UserMessage(ValidateManifestName("Bad")); got != want {
		t.Errorf("invalid name message = %q, want %q", got, want)
	}
}

func TestIsSemver(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"1.2.3", true},
		{"0.0.0", true},
		{"10.20.30", true},

		{"1.2", false},
		{"1", false},
		{"v1.2.3", false},
		{"1.2.3-beta.1", false},
		{"1.2.3+build", false},
		{"", false},
		{"1.2.3 ", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsSemver(tt.input); got != tt.want {
				t.Errorf("IsSemver(%q) = %v, want %v", tt.input, got, tt.want)
			}
			err := ValidateSemver(tt.input)
			if (err == nil) != tt.want {
				t.Errorf("ValidateSemver(%q) error = %v", tt.input, err)
			}
			if err != nil && !Is(err, ErrCodeInvalidVersion) {
				t.Errorf("ValidateSemver(%q) code = %v", tt.input, GetCode(err))
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidPackage,
		ErrCodeInvalidManifest,
		ErrCodeInvalidVersion,
		ErrCodeInvalidConfig,
		ErrCodeFileNotFound,
		ErrCodeInternal,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
