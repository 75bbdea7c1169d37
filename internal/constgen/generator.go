package constgen

import (
	"fmt"
	"strings"
)

// Mode selects how data lines resolve to a name/value pair.
type Mode int

const (
	// ModeRegular uses the line itself as both name and value.
	ModeRegular Mode = iota
	// ModeNamed splits the line on its first comma into name and value.
	ModeNamed
)

// Const is one fully formatted constant record: affixes and the declared type
// have already been applied, so emitters only lay the pieces out. Type is
// carried verbatim and unvalidated.
type Const struct {
	Name  string
	Type  string
	Value string
}

// state is the format context threaded through the line fold. Every field
// persists until a later directive overwrites it; there is no scoping.
type state struct {
	mode         Mode
	namePrefix   string
	namePostfix  string
	valuePrefix  string
	valuePostfix string
	typ          string
}

func (s *state) apply(line Line) {
	switch line.Kind {
	case LineRegularMode:
		s.mode = ModeRegular
	case LineNamedMode:
		s.mode = ModeNamed
	case LineNamePrefix:
		s.namePrefix = line.Arg
	case LineNamePostfix:
		s.namePostfix = line.Arg
	case LineValuePrefix:
		s.valuePrefix = line.Arg
	case LineValuePostfix:
		s.valuePostfix = line.Arg
	case LineType:
		s.typ = line.Arg
	}
}

func (s *state) record(name, value string) Const {
	return Const{
		Name:  s.namePrefix + name + s.namePostfix,
		Type:  s.typ,
		Value: s.valuePrefix + value + s.valuePostfix,
	}
}

// splitNamed resolves a Named-mode data line into its name and value parts.
// A line ending in a comma yields the literal value "," (the config format
// allows copy-pasted comma-separated source lists, and the trailing separator
// is carried through as-is rather than stripped).
func splitNamed(line string) (name, value string, err error) {
	if strings.HasSuffix(line, ",") {
		name, _, _ = strings.Cut(line, ",")
		return name, ",", nil
	}
	parts := strings.SplitN(line, ",", 2)
	if len(parts) < 2 {
		return "", "", fmt.Errorf("named constant %q: missing comma separator", line)
	}
	return parts[0], parts[1], nil
}

// Transform folds the directive file into its constant records. Lines are
// processed in file order; truly empty lines are skipped and never touch the
// format context. Starts in Regular mode with all affixes empty and no type.
func Transform(input []byte) ([]Const, error) {
	var (
		st     state
		consts []Const
	)
	for _, raw := range strings.Split(string(input), "\n") {
		if raw == "" {
			continue
		}
		line := Classify(raw)
		if line.Kind != LineData {
			st.apply(line)
			continue
		}
		switch st.mode {
		case ModeRegular:
			consts = append(consts, st.record(line.Arg, line.Arg))
		case ModeNamed:
			name, value, err := splitNamed(line.Arg)
			if err != nil {
				return nil, err
			}
			consts = append(consts, st.record(name, value))
		}
	}
	return consts, nil
}
