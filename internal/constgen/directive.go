package constgen

import "strings"

// LineKind discriminates the directive-file line variants.
type LineKind int

const (
	LineData LineKind = iota
	LineRegularMode
	LineNamedMode
	LineNamePrefix
	LineNamePostfix
	LineValuePrefix
	LineValuePostfix
	LineType
)

// Line is one classified directive-file line. Arg carries the remainder after
// the directive keyword for affix/type directives, and the full line text for
// data lines. Mode directives carry no argument.
type Line struct {
	Kind LineKind
	Arg  string
}

// prefixDirectives are checked in order after the two exact-match mode
// directives. The order matters: keywords are not mutually exclusive by
// construction, only by the coincidence of their spellings, so reordering
// the checks would change which directive wins for an overlapping line.
var prefixDirectives = []struct {
	prefix string
	kind   LineKind
}{
	{"NamePrefix:", LineNamePrefix},
	{"NamePostfix:", LineNamePostfix},
	{"ValuePrefix:", LineValuePrefix},
	{"ValuePostfix:", LineValuePostfix},
	{"Type:", LineType},
}

// Classify resolves a non-blank line into a directive or a data line.
// A data line that happens to begin with a directive keyword is swallowed as
// that directive; the config format has no escaping for this case.
func Classify(s string) Line {
	switch s {
	case "Regular:":
		return Line{Kind: LineRegularMode}
	case "Named:":
		return Line{Kind: LineNamedMode}
	}
	for _, d := range prefixDirectives {
		if strings.HasPrefix(s, d.prefix) {
			return Line{Kind: d.kind, Arg: s[len(d.prefix):]}
		}
	}
	return Line{Kind: LineData, Arg: s}
}
