// Package manifest reads, checks and updates npm manifests: package.json and
// package-lock.json.
//
// # package.json
//
// [Load] reads a package.json into a [Manifest]. The manifest keeps every
// field and the original key order, so [Manifest.Save] only changes what was
// changed:
//
//	m, err := manifest.Load("package.json")
//	if err != nil {
//	    return err
//	}
//	next, err := m.Bump(manifest.BumpMinor) // "1.2.3" -> "1.3.0"
//	if err != nil {
//	    return err
//	}
//	err = m.Save("package.json") // 2-space indent, trailing newline
//
// [Validate] applies a small set of guardrails (name and version format,
// "private", "engines.node", "exports", "sideEffects") and returns the
// findings in order. The first fatal problem stops validation and is
// returned as an error.
//
// [Entries] explains how Node resolves the package entry point from "type",
// "main" and "exports".
//
// # package-lock.json
//
// [LoadLock] reads a lockfile. [Lockfile] reports the lockfile format
// version, the number of locked packages and the locked version of a single
// dependency. Both the "packages" map (lockfile v2/v3) and the legacy
// "dependencies" map (v1) are consulted.
package manifest
