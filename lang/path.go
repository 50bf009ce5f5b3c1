package lang

import (
	"strings"

	"github.com/ardnew/pallas/comb"
)

// PathSeparator joins the segments of an ordinary path.
const PathSeparator = "::"

// KeywordAs introduces the alias of an aliased path.
const KeywordAs = "as"

// PathKind discriminates the variants of [Path].
type PathKind int

const (
	// PathWildcard is "*".
	PathWildcard PathKind = iota

	// PathOrdinary is a name optionally followed by "::" and a nested path.
	PathOrdinary

	// PathAs is an ordinary path renamed with "as".
	PathAs

	// PathMulti is a brace-delimited, comma-separated group of paths.
	PathMulti
)

// String returns the variant name.
func (k PathKind) String() string {
	switch k {
	case PathWildcard:
		return "Wildcard"
	case PathOrdinary:
		return "Ordinary"
	case PathAs:
		return "As"
	case PathMulti:
		return "Multi"
	default:
		return "Unknown"
	}
}

// Path is a module import path.
//
// The fields used depend on Kind:
//
//   - PathWildcard: none
//   - PathOrdinary: Name, and Next when a nested path follows
//   - PathAs: Inner (an ordinary path) and Alias
//   - PathMulti: Paths
type Path struct {
	Kind  PathKind
	Name  Identifier
	Next  *Path
	Inner *Path
	Alias Identifier
	Paths []Path
}

// Wildcard returns the wildcard path.
func Wildcard() Path { return Path{Kind: PathWildcard} }

// Ordinary returns the path name, or name::next when next is not nil.
func Ordinary(name Identifier, next *Path) Path {
	return Path{Kind: PathOrdinary, Name: name, Next: next}
}

// As returns inner renamed to alias.
func As(inner Path, alias Identifier) Path {
	return Path{Kind: PathAs, Inner: &inner, Alias: alias}
}

// Multi returns a group of paths.
func Multi(paths ...Path) Path {
	return Path{Kind: PathMulti, Paths: paths}
}

// String returns the path in canonical source form.
func (p Path) String() string {
	var sb strings.Builder

	p.write(&sb)

	return sb.String()
}

func (p Path) write(sb *strings.Builder) {
	switch p.Kind {
	case PathWildcard:
		sb.WriteString("*")

	case PathOrdinary:
		sb.WriteString(string(p.Name))

		if p.Next != nil {
			sb.WriteString(PathSeparator)
			p.Next.write(sb)
		}

	case PathAs:
		if p.Inner != nil {
			p.Inner.write(sb)
		}

		sb.WriteString(" " + KeywordAs + " " + string(p.Alias))

	case PathMulti:
		sb.WriteString("{")

		for i, q := range p.Paths {
			if i > 0 {
				sb.WriteString(", ")
			}

			q.write(sb)
		}

		sb.WriteString("}")
	}
}

// PathRule matches a [Path]. Alternatives are tried in the order wildcard,
// alias, ordinary, multi.
var PathRule comb.Parser[Path]

// nestedPathRule matches what may follow "::". Aliases are excluded; an alias
// applies to the whole ordinary path.
var nestedPathRule comb.Parser[Path]

func init() {
	wildcard := comb.Value(comb.Exact("*"), Wildcard())

	ordinary := comb.Map(
		comb.Seq2(
			IdentifierRule,
			comb.Optional(comb.Seq2(
				comb.Exact(PathSeparator),
				comb.Lazy(func() comb.Parser[Path] { return nestedPathRule }),
			)),
		),
		func(t comb.Tuple2[Identifier, comb.Maybe[comb.Tuple2[string, Path]]]) Path {
			if next, ok := t.V2.Get(); ok {
				return Ordinary(t.V1, &next.V2)
			}

			return Ordinary(t.V1, nil)
		},
	)

	alias := comb.Map(
		comb.Seq5(ordinary, whitespace1, comb.Exact(KeywordAs), whitespace1, IdentifierRule),
		func(t comb.Tuple5[Path, string, string, string, Identifier]) Path {
			return As(t.V1, t.V5)
		},
	)

	element := comb.Lazy(func() comb.Parser[Path] { return PathRule })

	separator := comb.Seq3(whitespace0, comb.Exact(","), whitespace0)

	elements := comb.Map(
		comb.Seq3(
			element,
			comb.Repetition(comb.Map(
				comb.Seq2(separator, element),
				func(t comb.Tuple2[comb.Tuple3[string, string, string], Path]) Path {
					return t.V2
				},
			)),
			comb.Optional(comb.Seq2(whitespace0, comb.Exact(","))),
		),
		func(t comb.Tuple3[Path, []Path, comb.Maybe[comb.Tuple2[string, string]]]) []Path {
			return append([]Path{t.V1}, t.V2...)
		},
	)

	multi := comb.Map(
		comb.Seq5(
			comb.Exact("{"),
			whitespace0,
			comb.Optional(elements),
			whitespace0,
			comb.Exact("}"),
		),
		func(t comb.Tuple5[string, string, comb.Maybe[[]Path], string, string]) Path {
			return Multi(t.V3.Value...)
		},
	)

	nestedPathRule = comb.Alt(wildcard, ordinary, multi)
	PathRule = comb.Alt(wildcard, alias, ordinary, multi)
}
