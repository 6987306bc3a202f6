// Package textutil holds the string slicing helpers used when picking apart
// framework debug output.
package textutil

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// After returns the text following the first occurrence of from.
func After(s, from string) (string, bool) {
	i := strings.Index(s, from)
	if i < 0 {
		return "", false
	}
	return s[i+len(from):], true
}

// Between returns the text after the first from and before the next to.
// It fails if either marker is missing.
func Between(s, from, to string) (string, bool) {
	rest, ok := After(s, from)
	if !ok {
		return "", false
	}
	j := strings.Index(rest, to)
	if j < 0 {
		return "", false
	}
	return rest[:j], true
}

// Prefix returns at most the first n characters of s.
func Prefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// Count returns the number of non-overlapping occurrences of sub in s.
// An empty sub counts zero occurrences.
func Count(s, sub string) int {
	if sub == "" {
		return 0
	}
	return strings.Count(s, sub)
}

// GroupMatch returns capture group n of the first match of pattern in s.
// An invalid pattern, no match, or a non-participating group all yield false.
func GroupMatch(s, pattern string, n int) (string, bool) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", false
	}
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil || n < 0 || 2*n+1 >= len(loc) || loc[2*n] < 0 {
		return "", false
	}
	return s[loc[2*n]:loc[2*n+1]], true
}

// Range is a half-open byte range [Start, End) into a string.
type Range struct {
	Start int
	End   int
}

// Ranges returns every non-overlapping occurrence of sub in s, left to right.
// An empty sub matches at each character boundary.
func Ranges(s, sub string) []Range {
	var result []Range
	start := 0
	for start < len(s) {
		i := strings.Index(s[start:], sub)
		if i < 0 {
			break
		}
		r := Range{Start: start + i, End: start + i + len(sub)}
		result = append(result, r)
		if r.End > r.Start {
			start = r.End
		} else {
			_, size := utf8.DecodeRuneInString(s[r.Start:])
			start = r.Start + size
		}
	}
	return result
}

// Indices returns the start offsets of Ranges(s, sub).
func Indices(s, sub string) []int {
	ranges := Ranges(s, sub)
	out := make([]int, len(ranges))
	for i, r := range ranges {
		out[i] = r.Start
	}
	return out
}

// TransformBetween rewrites the text of every shortest span that starts with
// start and ends with end, keeping both markers. Spans may cross lines.
func TransformBetween(s, start, end string, transform func(string) string) string {
	re := regexp.MustCompile(`(?s)` + regexp.QuoteMeta(start) + `(.*?)` + regexp.QuoteMeta(end))
	return ReplaceSubmatch(re, s, transform)
}

// ReplaceSubmatch replaces each match of re with the match where capture
// group 1 has been passed through transform.
func ReplaceSubmatch(re *regexp.Regexp, s string, transform func(string) string) string {
	var b strings.Builder
	last := 0
	for _, m := range re.FindAllStringSubmatchIndex(s, -1) {
		if len(m) < 4 || m[2] < 0 {
			continue
		}
		b.WriteString(s[last:m[2]])
		b.WriteString(transform(s[m[2]:m[3]]))
		last = m[3]
	}
	b.WriteString(s[last:])
	return b.String()
}

var newlineEscaper = strings.NewReplacer("\r\n", `\n`, "\n", `\n`, "\r", `\n`)

// EscapeNewlines replaces line breaks (LF, CRLF or a lone CR) with the two
// characters `\n`.
func EscapeNewlines(s string) string {
	return newlineEscaper.Replace(s)
}
