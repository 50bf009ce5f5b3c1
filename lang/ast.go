package lang

import (
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/ardnew/pallas/log"
)

// Sigil introduces an internal name.
const Sigil = "$"

// KeywordDefine begins a definition.
const KeywordDefine = "define"

// Identifier is a name: a letter or underscore followed by letters and
// numbers.
type Identifier string

// InternalName is an identifier prefixed by [Sigil].
type InternalName struct {
	Identifier Identifier
}

// String returns the name with its sigil.
func (n InternalName) String() string { return Sigil + string(n.Identifier) }

// InternalValue is an internal name with a brace-delimited payload.
type InternalValue struct {
	Name InternalName
	// Raw is the payload between the braces, verbatim.
	Raw string
	// Expr is Raw parsed as an expression, or nil when Raw is not exactly one
	// expression.
	Expr *Expr
}

// ExprKind discriminates the variants of [Expr].
type ExprKind int

const (
	// ExprVariable is a bare identifier referring to another definition.
	ExprVariable ExprKind = iota

	// ExprInternalValue is a sigil-prefixed internal value.
	ExprInternalValue
)

// String returns the variant name.
func (k ExprKind) String() string {
	switch k {
	case ExprVariable:
		return "Variable"
	case ExprInternalValue:
		return "InternalValue"
	default:
		return "Unknown"
	}
}

// Expr is an expression. Exactly one of Variable or Internal is meaningful,
// as selected by Kind.
type Expr struct {
	Kind     ExprKind
	Variable Identifier
	Internal *InternalValue
}

// Variable returns a variable reference expression.
func Variable(name Identifier) Expr {
	return Expr{Kind: ExprVariable, Variable: name}
}

// Internal returns an internal value expression.
func Internal(v InternalValue) Expr {
	return Expr{Kind: ExprInternalValue, Internal: &v}
}

// String returns the expression in source form.
func (e Expr) String() string {
	switch e.Kind {
	case ExprVariable:
		return string(e.Variable)
	case ExprInternalValue:
		if e.Internal == nil {
			return ""
		}

		return e.Internal.Name.String() + "{" + e.Internal.Raw + "}"
	default:
		return ""
	}
}

// Definition binds a name to a value.
type Definition struct {
	Name  Identifier
	Value Expr
}

// String returns the definition in canonical source form.
func (d Definition) String() string {
	return KeywordDefine + " " + string(d.Name) + " " + d.Value.String() + ";"
}

// StatementKind discriminates top-level statements.
type StatementKind int

const (
	// StatementDefinition is a define statement.
	StatementDefinition StatementKind = iota
)

// Statement is a top-level statement of a [File].
type Statement struct {
	Kind       StatementKind
	Definition *Definition
}

// File is the ordered sequence of top-level statements. Whitespace-only spans
// in the source are recorded as nil entries.
type File struct {
	Statements []*Statement
}

// Definitions returns an iterator over the definitions in source order.
func (f File) Definitions() iter.Seq[*Definition] {
	return func(yield func(*Definition) bool) {
		for _, s := range f.Statements {
			if s == nil || s.Kind != StatementDefinition || s.Definition == nil {
				continue
			}

			if !yield(s.Definition) {
				return
			}
		}
	}
}

// AST is the result of parsing a file with [ParseString] or [ParseReader].
type AST struct {
	File

	// Rest is the unparsed suffix of the source. It is empty unless parsing
	// used [WithPartial].
	Rest string

	opts   optionsKey
	logger log.Logger
}

// Len returns the number of definitions.
func (ast *AST) Len() int {
	n := 0
	for range ast.Definitions() {
		n++
	}

	return n
}

// GetDefinition returns the first definition bound to name.
func (ast *AST) GetDefinition(name string) (*Definition, bool) {
	for def := range ast.Definitions() {
		if string(def.Name) == name {
			return def, true
		}
	}

	return nil, false
}

// Print writes an indented tree representation of the AST to w.
func (ast *AST) Print(w io.Writer) {
	ast.PrintIndent(w, 0)
}

// PrintIndent writes the tree representation with the given initial
// indentation depth.
func (ast *AST) PrintIndent(w io.Writer, indent int) {
	for def := range ast.Definitions() {
		def.Print(w, indent)
	}
}

// Print writes a tree representation of the definition.
func (d *Definition) Print(w io.Writer, indent int) {
	put := writer(w)
	put("\n", strings.Repeat("  ", indent)+"Definition", string(d.Name))
	d.Value.Print(w, indent+1)
}

// Print writes a tree representation of the expression.
func (e Expr) Print(w io.Writer, indent int) {
	prefix := strings.Repeat("  ", indent)
	put := writer(w)

	switch e.Kind {
	case ExprVariable:
		put("\n", prefix+"Variable", string(e.Variable))

	case ExprInternalValue:
		if e.Internal == nil {
			return
		}

		put("\n", prefix+"InternalValue", e.Internal.Name.String(),
			strconv.Quote(e.Internal.Raw))

		if e.Internal.Expr != nil {
			e.Internal.Expr.Print(w, indent+1)
		}
	}
}

// writer returns a function writing items joined by ": " and terminated by
// eol. Write errors are ignored; Print is a debugging aid.
func writer(w io.Writer) func(eol string, item ...string) {
	return func(eol string, item ...string) {
		_, _ = io.WriteString(w, strings.Join(item, ": ")+eol)
	}
}
