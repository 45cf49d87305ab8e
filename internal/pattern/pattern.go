// Package pattern rewrites named capture groups of a regular expression in place.
//
// A pattern may define the groups "name" and "type". Every match of the pattern
// has the span captured by "name" replaced with a theme name and the span captured
// by "type" replaced with the rendering of a theme type. All other bytes are kept.
package pattern

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/rivnakm/chcolors/internal/theme"
)

// Group names recognized in patterns, in the order they are substituted.
const (
	GroupName = "name"
	GroupType = "type"
)

// Pattern is a compiled multi-line substitution pattern.
type Pattern struct {
	source  string
	re      *regexp.Regexp
	nameIdx int
	typeIdx int
}

// Compile parses expr in multi-line mode, so ^ and $ anchor at line boundaries.
func Compile(expr string) (*Pattern, error) {
	re, err := regexp.Compile("(?m)" + expr)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", expr, err)
	}
	return &Pattern{
		source:  expr,
		re:      re,
		nameIdx: re.SubexpIndex(GroupName),
		typeIdx: re.SubexpIndex(GroupType),
	}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(expr string) *Pattern {
	p, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the pattern as written by the user.
func (p *Pattern) String() string {
	return p.source
}

// HasGroups reports whether the pattern defines a name or type group.
func (p *Pattern) HasGroups() bool {
	return p.nameIdx >= 0 || p.typeIdx >= 0
}

// MatchString reports whether the pattern matches anywhere in text.
func (p *Pattern) MatchString(text string) bool {
	return p.re.MatchString(text)
}

// Edit replaces text[Start:End] with Text.
type Edit struct {
	Start int
	End   int
	Group string
	Text  string
}

// Edits returns the replacements for every match in text, computed against text
// itself and ordered by start offset. Groups that are absent from the pattern or
// did not participate in a match are skipped. When the type group overlaps the
// name group of the same match, the name edit wins.
func (p *Pattern) Edits(text string, t theme.Theme) []Edit {
	matches := p.re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	groups := []struct {
		idx   int
		name  string
		value string
	}{
		{p.nameIdx, GroupName, t.Name},
		{p.typeIdx, GroupType, t.Type.String()},
	}

	edits := make([]Edit, 0, len(matches))
	for _, m := range matches {
		var accepted []Edit
		for _, g := range groups {
			if g.idx < 0 {
				continue
			}
			start, end := m[2*g.idx], m[2*g.idx+1]
			if start < 0 {
				continue
			}
			edit := Edit{Start: start, End: end, Group: g.name, Text: g.value}
			if overlapsAny(edit, accepted) {
				continue
			}
			accepted = append(accepted, edit)
		}
		edits = append(edits, accepted...)
	}

	sort.SliceStable(edits, func(i, j int) bool {
		return edits[i].Start < edits[j].Start
	})
	return edits
}

// Apply returns text with every edit from Edits applied. Offsets never drift
// because each edit is positioned against the original text.
func (p *Pattern) Apply(text string, t theme.Theme) string {
	return ApplyEdits(text, p.Edits(text, t))
}

// ApplyEdits applies non-overlapping edits sorted by start offset.
func ApplyEdits(text string, edits []Edit) string {
	if len(edits) == 0 {
		return text
	}

	var out strings.Builder
	out.Grow(len(text))
	last := 0
	for _, edit := range edits {
		out.WriteString(text[last:edit.Start])
		out.WriteString(edit.Text)
		last = edit.End
	}
	out.WriteString(text[last:])
	return out.String()
}

func overlapsAny(edit Edit, others []Edit) bool {
	for _, other := range others {
		if edit.Start < other.End && other.Start < edit.End {
			return true
		}
	}
	return false
}
