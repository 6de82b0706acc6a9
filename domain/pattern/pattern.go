// Package pattern defines the closed set of command identifiers understood by
// the remote executor and the bidirectional mapping between each member and
// its canonical wire string.
//
// The enumeration is a protocol artifact: adding, removing or renaming a
// member is a breaking change. Members carry no ordering semantics; they are
// only ever compared for equality.
package pattern

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/kompox/patternapi/internal/naming"
)

// Pattern is a command identifier. The zero value is not a member.
type Pattern uint16

// ErrUnknownPattern is matched by every error returned for a wire string or
// value that is not a member of the enumeration.
var ErrUnknownPattern = errors.New("unknown pattern")

// UnknownPatternError reports the offending input.
type UnknownPatternError struct {
	Value string
}

func (e *UnknownPatternError) Error() string {
	return fmt.Sprintf("unknown pattern: %q", e.Value)
}

func (e *UnknownPatternError) Is(target error) bool { return target == ErrUnknownPattern }

var (
	stringToPattern     map[string]Pattern
	identifierToPattern map[string]Pattern
	all                 []Pattern
)

func init() {
	stringToPattern = make(map[string]Pattern, len(patternToString))
	identifierToPattern = make(map[string]Pattern, len(patternToString))
	for p := Pattern(1); p < end; p++ {
		s, ok := patternToString[p]
		if !ok {
			panic(fmt.Sprintf("pattern %d has no wire string", p))
		}
		if prev, dup := stringToPattern[s]; dup {
			panic(fmt.Sprintf("wire string %q shared by patterns %d and %d", s, prev, p))
		}
		if err := naming.ValidateWireString(s); err != nil {
			panic(err)
		}
		id := naming.PatternIdentifier(s)
		if prev, dup := identifierToPattern[id]; dup {
			panic(fmt.Sprintf("identifier %s shared by %q and %q", id, patternToString[prev], s))
		}
		stringToPattern[s] = p
		identifierToPattern[id] = p
		all = append(all, p)
	}
	if len(patternToString) != len(all) {
		panic("wire string table contains non-members")
	}
	slices.SortFunc(all, func(a, b Pattern) int {
		return strings.Compare(patternToString[a], patternToString[b])
	})
}

// Parse resolves a wire string. It never falls back to a default member:
// an unrecognized string yields an *UnknownPatternError.
func Parse(s string) (Pattern, error) {
	if p, ok := stringToPattern[s]; ok {
		return p, nil
	}
	return 0, &UnknownPatternError{Value: s}
}

// MustParse is like Parse but panics on unknown input.
func MustParse(s string) Pattern {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Resolve accepts either a wire string or a normalized identifier
// (e.g. CLUSTER_HELM_REPO_LIST).
func Resolve(s string) (Pattern, error) {
	if p, ok := stringToPattern[s]; ok {
		return p, nil
	}
	if p, ok := identifierToPattern[s]; ok {
		return p, nil
	}
	return 0, &UnknownPatternError{Value: s}
}

// All returns every member ordered by wire string. The slice is a copy.
func All() []Pattern {
	return slices.Clone(all)
}

// Len is the number of members.
func Len() int { return len(all) }

// Valid reports whether p is a member.
func (p Pattern) Valid() bool {
	_, ok := patternToString[p]
	return ok
}

// String returns the wire string, or Pattern(<n>) for non-members.
func (p Pattern) String() string {
	if s, ok := patternToString[p]; ok {
		return s
	}
	return "Pattern(" + strconv.Itoa(int(p)) + ")"
}

// Identifier returns the normalized identifier used by code generators.
func (p Pattern) Identifier() string {
	s, ok := patternToString[p]
	if !ok {
		return ""
	}
	return naming.PatternIdentifier(s)
}

func (p Pattern) MarshalText() ([]byte, error) {
	s, ok := patternToString[p]
	if !ok {
		return nil, &UnknownPatternError{Value: p.String()}
	}
	return []byte(s), nil
}

func (p *Pattern) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
