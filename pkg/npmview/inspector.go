package npmview

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/npmkit/pkg/quasijson"
)

// Fields understood by `npm view`.
const (
	FieldVersion      = "version"
	FieldVersions     = "versions"
	FieldDependencies = "dependencies"
	FieldLicense      = "license"
	FieldDescription  = "description"
	FieldRepository   = "repository.url"
	FieldHomepage     = "homepage"
	FieldUnpackedSize = "dist.unpackedSize"
	FieldAuthor       = "author.name"
	FieldMain         = "main"
	FieldKeywords     = "keywords"
)

// PackageInfo holds the key fields shown by the info command.
type PackageInfo struct {
	Name           string `json:"name"`
	Version        string `json:"version"`
	License        string `json:"license"`
	Description    string `json:"description"`
	Repository     string `json:"repository"`
	HomePage       string `json:"homepage"`
	UnpackedSizeKB string `json:"unpackedSizeKB"`
}

// Dependency is a runtime dependency and its declared version range.
type Dependency struct {
	Name  string `json:"name"`
	Range string `json:"range"`
}

// PackageSummary is the compact view used when comparing two packages.
type PackageSummary struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	License   string `json:"license"`
	DepsCount int    `json:"depsCount"`
	SizeKB    string `json:"sizeKB"`
}

// Field is a labeled metadata value.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// PackageReport is the long-form view used by the batch checker.
type PackageReport struct {
	Name         string   `json:"name"`
	Fields       []Field  `json:"fields"`
	Versions     []string `json:"versions"`
	SizeKB       string   `json:"sizeKB,omitempty"`
	Dependencies []string `json:"dependencies"`
}

// Inspector answers package questions on top of a [Querier].
type Inspector struct {
	q Querier
}

// NewInspector creates an Inspector that queries through q.
func NewInspector(q Querier) *Inspector {
	return &Inspector{q: q}
}

// Info returns the key fields of pkg. Fields npm could not answer are empty.
func (in *Inspector) Info(ctx context.Context, pkg string) PackageInfo {
	return PackageInfo{
		Name:           pkg,
		Version:        in.q.Query(ctx, pkg, FieldVersion),
		License:        in.q.Query(ctx, pkg, FieldLicense),
		Description:    in.q.Query(ctx, pkg, FieldDescription),
		Repository:     NormalizeRepoURL(in.q.Query(ctx, pkg, FieldRepository)),
		HomePage:       in.q.Query(ctx, pkg, FieldHomepage),
		UnpackedSizeKB: KB(in.q.Query(ctx, pkg, FieldUnpackedSize)),
	}
}

// Versions returns the most recent limit published versions of pkg, oldest
// first. A limit of zero or less returns every version.
func (in *Inspector) Versions(ctx context.Context, pkg string, limit int) []string {
	all := quasijson.Strings(in.q.Query(ctx, pkg, FieldVersions))
	if limit > 0 && len(all) > limit {
		return all[len(all)-limit:]
	}
	return all
}

// Dependencies returns the first limit runtime dependencies of pkg in the
// order npm printed them. A limit of zero or less returns every dependency.
func (in *Inspector) Dependencies(ctx context.Context, pkg string, limit int) []Dependency {
	entries := in.dependencies(ctx, pkg)
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	deps := make([]Dependency, 0, len(entries))
	for _, e := range entries {
		deps = append(deps, Dependency{Name: e.Key, Range: e.Value})
	}
	return deps
}

// Summary returns the compact comparison view of pkg.
func (in *Inspector) Summary(ctx context.Context, pkg string) PackageSummary {
	return PackageSummary{
		Name:      pkg,
		Version:   in.q.Query(ctx, pkg, FieldVersion),
		License:   in.q.Query(ctx, pkg, FieldLicense),
		DepsCount: len(in.dependencies(ctx, pkg)),
		SizeKB:    KB(in.q.Query(ctx, pkg, FieldUnpackedSize)),
	}
}

// Compare returns the summaries of a and b.
func (in *Inspector) Compare(ctx context.Context, a, b string) (PackageSummary, PackageSummary) {
	return in.Summary(ctx, a), in.Summary(ctx, b)
}

// reportFields lists the labeled fields of a [PackageReport], in display order.
var reportFields = []Field{
	{Label: "Latest Version", Value: FieldVersion},
	{Label: "Description", Value: FieldDescription},
	{Label: "License", Value: FieldLicense},
	{Label: "Author", Value: FieldAuthor},
	{Label: "Homepage", Value: FieldHomepage},
	{Label: "Repository", Value: FieldRepository},
	{Label: "Main File", Value: FieldMain},
	{Label: "Keywords", Value: FieldKeywords},
}

// Report gathers everything the batch checker prints about pkg. Fields npm
// could not answer are omitted; versions holds at most limit entries. The
// repository URL is reported in canonical HTTPS form, as in [Inspector.Info].
func (in *Inspector) Report(ctx context.Context, pkg string, limit int) PackageReport {
	r := PackageReport{Name: pkg}
	for _, f := range reportFields {
		v := in.q.Query(ctx, pkg, f.Value)
		if f.Value == FieldRepository {
			v = NormalizeRepoURL(v)
		}
		if v != "" {
			r.Fields = append(r.Fields, Field{Label: f.Label, Value: v})
		}
	}
	r.Versions = in.Versions(ctx, pkg, limit)
	r.SizeKB = KB(in.q.Query(ctx, pkg, FieldUnpackedSize))
	r.Dependencies = []string{}
	for _, e := range in.dependencies(ctx, pkg) {
		r.Dependencies = append(r.Dependencies, e.Key)
	}
	return r
}

func (in *Inspector) dependencies(ctx context.Context, pkg string) []quasijson.Entry {
	return quasijson.Entries(in.q.Query(ctx, pkg, FieldDependencies))
}

// KB converts a byte count printed by npm into kilobytes with two decimals.
// Non-numeric input, including "", yields "".
func KB(raw string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return fmt.Sprintf("%.2f", v/1024)
}

var repoURLReplacer = strings.NewReplacer(
	"git@github.com:", "https://github.com/",
	"git://github.com/", "https://github.com/",
	"ssh://git@github.com/", "https://github.com/",
)

// NormalizeRepoURL converts the repository URL formats found in package.json
// to canonical HTTPS form. Handles git@, git://, and git+ prefixes, and
// removes .git suffixes. Returns "" if raw is empty.
func NormalizeRepoURL(raw string) string {
	if raw == "" {
		return ""
	}
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "git+")
	s = repoURLReplacer.Replace(s)
	return strings.TrimSuffix(s, ".git")
}
