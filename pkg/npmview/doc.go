// Package npmview reads package metadata from the npm registry through the
// `npm view` command.
//
// # Overview
//
// The package never talks to the registry itself. All access goes through a
// [Querier], a narrow capability that answers one `npm view <pkg> <field>`
// question with the raw text npm printed:
//
//	q := npmview.NewCommand("npm", logger)
//	version := q.Query(ctx, "express", "version") // "4.19.2"
//
// Any failure (npm missing, unknown package, network error, non-zero exit)
// is reported as an empty string. Callers treat "" as "no data".
//
// # Inspector
//
// [Inspector] combines several queries into typed results and decodes the
// quasi-JSON fields with package quasijson:
//
//	in := npmview.NewInspector(q)
//	info := in.Info(ctx, "express")
//	versions := in.Versions(ctx, "react", 5)     // last 5 versions
//	deps := in.Dependencies(ctx, "fastify", 10)  // first 10, sorted by name
//	a, b := in.Compare(ctx, "axios", "node-fetch")
//
// # Testing
//
// [Fixed] is an in-memory [Querier] keyed by "pkg field", so code built on
// an Inspector can be tested without an npm installation.
package npmview
