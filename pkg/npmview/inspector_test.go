package npmview

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fixture() Fixed {
	return Fixed{
		"express version":           "4.19.2",
		"express license":           "MIT",
		"express description":       "Fast, unopinionated, minimalist web framework",
		"express repository.url":    "git+https://github.com/expressjs/express.git",
		"express homepage":          "http://expressjs.com/",
		"express dist.unpackedSize": "220092",
		"express author.name":       "TJ Holowaychuk",
		"express main":              "index.js",
		"express versions":          "[ '4.17.0', '4.18.0', '4.18.1', '4.18.2', '4.19.0', '4.19.1', '4.19.2' ]",
		"express dependencies":      "{\n  qs: '6.11.0',\n  debug: '2.6.9',\n  'body-parser': '1.20.2',\n  accepts: '~1.3.8'\n}",

		"tiny version":           "1.0.0",
		"tiny license":           "ISC",
		"tiny dist.unpackedSize": "1024",
	}
}

func TestInspectorInfo(t *testing.T) {
	in := NewInspector(fixture())

	got := in.Info(context.Background(), "express")
	assert.Equal(t, PackageInfo{
		Name:           "express",
		Version:        "4.19.2",
		License:        "MIT",
		Description:    "Fast, unopinionated, minimalist web framework",
		Repository:     "https://github.com/expressjs/express",
		HomePage:       "http://expressjs.com/",
		UnpackedSizeKB: "214.93",
	}, got)
}

func TestInspectorInfoUnknownPackage(t *testing.T) {
	in := NewInspector(fixture())

	got := in.Info(context.Background(), "does-not-exist")
	assert.Equal(t, PackageInfo{Name: "does-not-exist"}, got)
}

func TestInspectorVersions(t *testing.T) {
	in := NewInspector(fixture())
	ctx := context.Background()

	tests := []struct {
		name  string
		limit int
		want  []string
	}{
		{"last three", 3, []string{"4.19.0", "4.19.1", "4.19.2"}},
		{"limit above count", 50, []string{"4.17.0", "4.18.0", "4.18.1", "4.18.2", "4.19.0", "4.19.1", "4.19.2"}},
		{"zero means all", 0, []string{"4.17.0", "4.18.0", "4.18.1", "4.18.2", "4.19.0", "4.19.1", "4.19.2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, in.Versions(ctx, "express", tt.limit))
		})
	}

	assert.Empty(t, in.Versions(ctx, "tiny", 5))
}

func TestInspectorDependencies(t *testing.T) {
	in := NewInspector(fixture())
	ctx := context.Background()

	// npm's print order is kept, so the limit takes the first entries.
	assert.Equal(t, []Dependency{
		{Name: "qs", Range: "6.11.0"},
		{Name: "debug", Range: "2.6.9"},
	}, in.Dependencies(ctx, "express", 2))

	assert.Len(t, in.Dependencies(ctx, "express", 0), 4)
	assert.Empty(t, in.Dependencies(ctx, "tiny", 10))
}

func TestInspectorCompare(t *testing.T) {
	in := NewInspector(fixture())

	a, b := in.Compare(context.Background(), "express", "tiny")
	assert.Equal(t, PackageSummary{Name: "express", Version: "4.19.2", License: "MIT", DepsCount: 4, SizeKB: "214.93"}, a)
	assert.Equal(t, PackageSummary{Name: "tiny", Version: "1.0.0", License: "ISC", DepsCount: 0, SizeKB: "1.00"}, b)
}

func TestInspectorReport(t *testing.T) {
	in := NewInspector(fixture())

	r := in.Report(context.Background(), "express", 3)
	assert.Equal(t, "express", r.Name)
	assert.Equal(t, []string{"4.19.0", "4.19.1", "4.19.2"}, r.Versions)
	assert.Equal(t, "214.93", r.SizeKB)
	assert.Equal(t, []string{"qs", "debug", "body-parser", "accepts"}, r.Dependencies)

	var labels []string
	values := map[string]string{}
	for _, f := range r.Fields {
		labels = append(labels, f.Label)
		values[f.Label] = f.Value
	}
	assert.Equal(t, "https://github.com/expressjs/express", values["Repository"])
	assert.Empty(t, in.Report(context.Background(), "tiny", 3).Dependencies)
	// Keywords has no answer and is left out.
	assert.Equal(t, []string{"Latest Version", "Description", "License", "Author", "Homepage", "Repository", "Main File"}, labels)
}

func TestKB(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"2048", "2.00"},
		{"1536", "1.50"},
		{" 1024\n", "1.00"},
		{"0", "0.00"},
		{"", ""},
		{"undefined", ""},
		{"NaN", ""},
		{"Inf", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, KB(tt.raw))
		})
	}
}

func TestNormalizeRepoURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"git+https://github.com/expressjs/express.git", "https://github.com/expressjs/express"},
		{"git://github.com/lodash/lodash.git", "https://github.com/lodash/lodash"},
		{"git@github.com:axios/axios.git", "https://github.com/axios/axios"},
		{"git+ssh://git@github.com/foo/bar.git", "https://github.com/foo/bar"},
		{"https://gitlab.com/foo/bar", "https://gitlab.com/foo/bar"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRepoURL(tt.raw))
		})
	}
}
