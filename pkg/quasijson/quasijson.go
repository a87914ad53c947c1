package quasijson

import (
	"encoding/json"
	"io"
	"regexp"
	"strings"
)

// Parsed is the result of decoding quasi-JSON text: an [Array], an [Object],
// or [Failed].
type Parsed interface {
	parsed()
}

// Array is a decoded array-ish value, e.g. a version list.
type Array []string

// Object is a decoded object-ish value, e.g. dependency name to version range.
type Object map[string]string

// Failed records why the text could not be decoded.
type Failed struct {
	Err error
}

func (Array) parsed()  {}
func (Object) parsed() {}
func (Failed) parsed() {}

// Entry is one key/value pair of an object-ish value.
type Entry struct {
	Key   string
	Value string
}

var (
	quoteReplacer = strings.NewReplacer("'", `"`)
	bareKeyRegex  = regexp.MustCompile(`(\w+):`)
)

// NormalizeArray rewrites array-ish text into JSON by turning every single
// quote into a double quote.
func NormalizeArray(raw string) string {
	return quoteReplacer.Replace(raw)
}

// NormalizeObject rewrites object-ish text into JSON. Bare keys are quoted
// first, then every remaining single quote becomes a double quote.
func NormalizeObject(raw string) string {
	quoted := bareKeyRegex.ReplaceAllString(raw, `"${1}":`)
	return quoteReplacer.Replace(quoted)
}

// ParseArray normalizes raw as the array-ish dialect and decodes it into an
// [Array]. Anything that does not decode to a JSON array of strings yields
// [Failed].
func ParseArray(raw string) Parsed {
	var out []string
	if err := json.Unmarshal([]byte(NormalizeArray(raw)), &out); err != nil {
		return Failed{Err: err}
	}
	if out == nil {
		out = []string{}
	}
	return Array(out)
}

// ParseObject normalizes raw as the object-ish dialect and decodes it into an
// [Object]. Anything that does not decode to a JSON object of strings yields
// [Failed].
func ParseObject(raw string) Parsed {
	var out map[string]string
	if err := json.Unmarshal([]byte(NormalizeObject(raw)), &out); err != nil {
		return Failed{Err: err}
	}
	if out == nil {
		out = map[string]string{}
	}
	return Object(out)
}

// Strings decodes array-ish raw text, returning an empty slice on failure.
func Strings(raw string) []string {
	if a, ok := ParseArray(raw).(Array); ok {
		return a
	}
	return []string{}
}

// Map decodes object-ish raw text, returning an empty map on failure.
func Map(raw string) map[string]string {
	if o, ok := ParseObject(raw).(Object); ok {
		return o
	}
	return map[string]string{}
}

// Entries decodes object-ish raw text into its pairs in source order,
// returning an empty slice whenever [ParseObject] would fail. A repeated key
// keeps its first position and its last value.
func Entries(raw string) []Entry {
	dec := json.NewDecoder(strings.NewReader(NormalizeObject(raw)))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return []Entry{}
	}
	out := []Entry{}
	index := map[string]int{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return []Entry{}
		}
		key, ok := tok.(string)
		if !ok {
			return []Entry{}
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return []Entry{}
		}
		if i, seen := index[key]; seen {
			out[i].Value = value
			continue
		}
		index[key] = len(out)
		out = append(out, Entry{Key: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return []Entry{}
	}
	if _, err := dec.Token(); err != io.EOF {
		return []Entry{}
	}
	return out
}
