// Package keyword compiles user keyword lists into a single matcher used
// to highlight occurrences in record text during screening.
package keyword

import (
	"regexp"
	"strings"
)

// Matcher finds keyword occurrences. Terms are matched case-insensitively
// on word boundaries; "*" inside a term matches any run of word characters
// and spaces match any whitespace run.
type Matcher struct {
	terms []string
	re    *regexp.Regexp
}

// New compiles a matcher from the given terms. Blank terms are dropped;
// a matcher with no terms matches nothing.
func New(terms []string) *Matcher {
	m := &Matcher{}
	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		m.terms = append(m.terms, t)
		esc := regexp.QuoteMeta(t)
		esc = strings.ReplaceAll(esc, `\*`, `\w*`)
		esc = strings.ReplaceAll(esc, ` `, `\s+`)
		parts = append(parts, esc)
	}
	if len(parts) == 0 {
		return m
	}
	m.re = regexp.MustCompile(`(?i)\b(?:` + strings.Join(parts, "|") + `)\b`)
	return m
}

// Terms returns the compiled terms in input order.
func (m *Matcher) Terms() []string {
	return m.terms
}

// Empty reports whether the matcher has no terms.
func (m *Matcher) Empty() bool {
	return m.re == nil
}

// Ranges returns non-overlapping [start, end) byte ranges of matches.
func (m *Matcher) Ranges(s string) [][]int {
	if m.re == nil {
		return nil
	}
	return m.re.FindAllStringIndex(s, -1)
}

// Highlight rewrites s with mark applied to every match. The mark
// function receives the matched text and returns its styled form.
func (m *Matcher) Highlight(s string, mark func(string) string) string {
	ranges := m.Ranges(s)
	if len(ranges) == 0 {
		return s
	}
	var b strings.Builder
	last := 0
	for _, r := range ranges {
		b.WriteString(s[last:r[0]])
		b.WriteString(mark(s[r[0]:r[1]]))
		last = r[1]
	}
	b.WriteString(s[last:])
	return b.String()
}
