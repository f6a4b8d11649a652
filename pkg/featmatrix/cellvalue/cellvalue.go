// Package cellvalue parses and serializes multi-valued spreadsheet cells.
//
// A cell may hold several logical values separated by "|" or "||" with
// arbitrary surrounding whitespace. Values are collected into a set and
// written back as a sorted list joined with a fixed separator.
package cellvalue

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

const (
	// EmptyToken marks a cell with no values, distinct from an empty string.
	EmptyToken = "-"
	// Separator joins values in serialized output.
	Separator = ", "
)

// splitPattern accepts "||" or "|" with optional surrounding whitespace.
var splitPattern = regexp.MustCompile(`\s*\|\|\s*|\s*\|\s*`)

// Codec serializes value sets with a configurable empty token and separator.
type Codec struct {
	EmptyToken string
	Separator  string
}

// DefaultCodec uses EmptyToken and Separator.
var DefaultCodec = Codec{EmptyToken: EmptyToken, Separator: Separator}

// Split returns the logical values held by a raw cell value.
// Missing, NaN and blank values yield no values.
func Split(v interface{}) []string {
	s, ok := text(v)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	parts := splitPattern.Split(s, -1)
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Set flattens raw values through Split and returns the distinct values sorted.
func Set(values []interface{}) []string {
	seen := make(map[string]struct{})
	for _, v := range values {
		for _, p := range Split(v) {
			seen[p] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Join serializes a value list: deduplicated, sorted and joined.
// An empty list serializes to the empty token.
func (c Codec) Join(values []string) string {
	if len(values) == 0 {
		return c.EmptyToken
	}
	seen := make(map[string]struct{}, len(values))
	uniq := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		uniq = append(uniq, v)
	}
	sort.Strings(uniq)
	return strings.Join(uniq, c.Separator)
}

// Parse reverses Join. The empty token parses to no values.
func (c Codec) Parse(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" || s == c.EmptyToken {
		return nil
	}
	sep := strings.TrimSpace(c.Separator)
	if sep == "" {
		sep = c.Separator
	}
	var out []string
	for _, p := range strings.Split(s, sep) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ConcatUnique collapses raw values into one display string.
func (c Codec) ConcatUnique(values []interface{}) string {
	return c.Join(Set(values))
}

// ConcatUnique collapses raw values using the default codec.
func ConcatUnique(values []interface{}) string {
	return DefaultCodec.ConcatUnique(values)
}

// CountUnique returns the number of distinct logical values in raw values.
func CountUnique(values []interface{}) int {
	return len(Set(values))
}

// text renders a cell value as a string. It reports false for missing values.
func text(v interface{}) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case int64:
		return strconv.FormatInt(x, 10), true
	case int:
		return strconv.Itoa(x), true
	case float64:
		if math.IsNaN(x) {
			return "", false
		}
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(x), true
	case fmt.Stringer:
		return x.String(), true
	default:
		return fmt.Sprint(x), true
	}
}

// Text renders a cell value as trimmed text, empty for missing values.
func Text(v interface{}) string {
	s, _ := text(v)
	return strings.TrimSpace(s)
}
