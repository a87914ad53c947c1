// Package pkg provides the core libraries behind npmkit.
//
// # Overview
//
// npmkit answers questions about npm packages by running `npm view` and
// about a project by reading its package.json and package-lock.json. The
// pkg directory is organized into these areas:
//
//  1. [quasijson] - Normalizes the JavaScript-literal output of `npm view`
//     into strict JSON and parses it.
//  2. [npmview] - Registry questions on top of a pluggable Querier.
//  3. [manifest] - package.json and package-lock.json reading, validation
//     and version bumps.
//  4. [cache] - File, memory and tiered stores for registry answers.
//  5. [errors] - Coded errors and input validation.
//  6. [observability] - Hooks for timing queries and manifest IO.
//
// # Architecture
//
// The typical data flow for a registry command:
//
//	npm view <pkg> <field>
//	         ↓
//	    [npmview] Querier (optionally behind [cache])
//	         ↓
//	    [quasijson] normalize + parse
//	         ↓
//	    [npmview] Inspector result types
//	         ↓
//	    table or JSON output
//
// # Quick Start
//
// Look up the most recent versions of a package:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/npmkit/pkg/npmview"
//	)
//
//	in := npmview.NewInspector(npmview.NewCommand("npm", nil))
//	versions := in.Versions(context.Background(), "express", 5)
//
// Parse `npm view` output directly:
//
//	deps := quasijson.Map("{ accepts: '~1.3.8', 'array-flatten': '1.1.1' }")
//
// Validate and bump a manifest:
//
//	m, err := manifest.Load("package.json")
//	if err != nil {
//	    return err
//	}
//	report, err := manifest.Validate(m)
//	next, err := m.Bump(manifest.BumpMinor)
//	err = m.Save("package.json")
//
// # Testing
//
// No test talks to a real registry. Use [npmview.Fixed] to answer queries
// from a map:
//
//	q := npmview.Fixed{"express version": "4.19.2"}
//
// [quasijson]: https://pkg.go.dev/github.com/matzehuels/npmkit/pkg/quasijson
// [npmview]: https://pkg.go.dev/github.com/matzehuels/npmkit/pkg/npmview
// [npmview.Fixed]: https://pkg.go.dev/github.com/matzehuels/npmkit/pkg/npmview#Fixed
// [manifest]: https://pkg.go.dev/github.com/matzehuels/npmkit/pkg/manifest
// [cache]: https://pkg.go.dev/github.com/matzehuels/npmkit/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/npmkit/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/npmkit/pkg/observability
package pkg
