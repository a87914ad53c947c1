// Package quasijson turns the loosely formatted values printed by
// `npm view` into strict JSON and decodes them.
//
// # Overview
//
// In its human-oriented output mode npm prints arrays and objects the way
// Node's util.inspect does: single-quoted strings and bare object keys.
//
//	$ npm view express versions
//	[ '4.18.1', '4.18.2', '4.19.0' ]
//
//	$ npm view express dependencies
//	{ debug: '2.6.9', 'body-parser': '1.20.1', qs: '6.11.0' }
//
// Two dialects are supported, each a fixed text rewrite followed by a strict
// [encoding/json] decode:
//
//   - Array-ish ([NormalizeArray], [ParseArray]): every ' becomes ".
//   - Object-ish ([NormalizeObject], [ParseObject]): every `word:` becomes
//     `"word":`, then every ' becomes ".
//
// # Results
//
// Parsing never returns an error. The result is a [Parsed] value that is
// exactly one of [Array], [Object] or [Failed]:
//
//	switch v := quasijson.ParseObject(raw).(type) {
//	case quasijson.Object:
//	    fmt.Println(len(v), "dependencies")
//	case quasijson.Failed:
//	    log.Debug("no dependency data", "err", v.Err)
//	}
//
// Callers that treat failure as "no data" use [Strings] and [Map], which
// return an empty, non-nil value when parsing fails.
//
// # Limitations
//
// The key-quoting rewrite is a regular expression, not a tokenizer. A word
// followed by a colon inside a string value (a URL such as 'https://…' or an
// alias such as 'npm:foo@1') is rewritten too, which makes the text invalid
// and the result [Failed]. That input is reported as "no data", the same as
// any other unparseable output.
package quasijson
