package lang

import (
	"unicode"
	"unicode/utf8"

	"github.com/ardnew/pallas/comb"
)

var (
	whitespace0 = comb.Whitespace0()
	whitespace1 = comb.Whitespace1()
)

// IdentifierRule matches an [Identifier].
var IdentifierRule comb.Parser[Identifier] = comb.Map(
	comb.Seq2(
		comb.MinChars(comb.AnyWhile(isIdentifierStart), 1),
		comb.AnyWhere(isIdentifierPart),
	),
	func(t comb.Tuple2[string, string]) Identifier {
		return Identifier(t.V1 + t.V2)
	},
)

// isIdentifierStart accepts exactly one leading letter or underscore.
func isIdentifierStart(consumed, _ string) bool {
	r, size := utf8.DecodeRuneInString(consumed)

	return size == len(consumed) && (r == '_' || unicode.IsLetter(r))
}

func isIdentifierPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// InternalNameRule matches an [InternalName].
var InternalNameRule comb.Parser[InternalName] = comb.Map(
	comb.Seq2(comb.Exact(Sigil), IdentifierRule),
	func(t comb.Tuple2[string, Identifier]) InternalName {
		return InternalName{Identifier: t.V2}
	},
)

// internalValueHead matches an internal value up to and including the closing
// brace, capturing the payload verbatim.
var internalValueHead = comb.Seq4(
	InternalNameRule,
	whitespace0,
	comb.Exact("{"),
	comb.AnyUntil(comb.Exact("}")),
)

// Recursive rules are assigned in init to avoid initialization cycles.
var (
	// InternalValueRule matches an [InternalValue]. The payload is parsed
	// again with [ExprRule].
	InternalValueRule comb.Parser[InternalValue]

	// ExprRule matches an [Expr].
	ExprRule comb.Parser[Expr]

	// DefinitionRule matches a define statement.
	DefinitionRule comb.Parser[Definition]

	// StatementRule matches a top-level [Statement].
	StatementRule comb.Parser[*Statement]

	// FileRule matches a [File]. It never fails; any suffix it cannot parse
	// is left as the remainder.
	FileRule comb.Parser[File]
)

func init() {
	InternalValueRule = comb.Func[InternalValue](internalValue)

	ExprRule = comb.Or(
		comb.Map(InternalValueRule, Internal),
		comb.Map(IdentifierRule, Variable),
	)

	DefinitionRule = comb.Map(
		comb.Seq6(
			comb.Exact(KeywordDefine),
			whitespace1,
			IdentifierRule,
			whitespace0,
			ExprRule,
			comb.Exact(";"),
		),
		func(t comb.Tuple6[string, string, Identifier, string, Expr, string]) Definition {
			return Definition{Name: t.V3, Value: t.V5}
		},
	)

	StatementRule = comb.Map(DefinitionRule, func(d Definition) *Statement {
		return &Statement{Kind: StatementDefinition, Definition: &d}
	})

	FileRule = comb.Map(
		comb.Repetition(comb.Or(
			StatementRule,
			comb.Value(whitespace1, (*Statement)(nil)),
		)),
		func(s []*Statement) File { return File{Statements: s} },
	)
}

// internalValue parses the head of an internal value, then parses its
// payload as an expression. The sub-expression is kept only when it spans the
// whole payload.
func internalValue(in string) (string, InternalValue, bool) {
	rest, head, ok := internalValueHead.Parse(in)
	if !ok {
		return in, InternalValue{}, false
	}

	v := InternalValue{Name: head.V1, Raw: head.V4.Skipped}

	if sub, expr, ok := ExprRule.Parse(v.Raw); ok && sub == "" {
		v.Expr = &expr
	}

	return rest, v, true
}
