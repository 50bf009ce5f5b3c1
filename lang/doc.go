// Package lang implements the pallas definition language on top of the
// parser combinators in package comb.
//
// There is no separate lexer: every grammar rule is a [comb.Parser] assembled
// from primitives, and tokenization happens as part of parsing.
//
// # Grammar
//
// Informal EBNF:
//
//	File          → (Definition | Whitespace+)*
//	Definition    → 'define' Whitespace+ Identifier Whitespace* Expr ';'
//	Expr          → InternalValue | Identifier
//	InternalValue → InternalName Whitespace* '{' <text up to first '}'> '}'
//	InternalName  → '$' Identifier
//	Identifier    → (Letter | '_') (Letter | Number)*
//
// The payload of an internal value is captured verbatim. It is then parsed
// again as an Expr; when that parse consumes the whole payload, the result is
// attached to the [InternalValue] as its sub-expression. Braces do not nest:
// the payload ends at the first '}'.
//
// A separate entry point parses module import paths:
//
//	Path     → '*' | Ordinary Whitespace+ 'as' Whitespace+ Identifier
//	         | Ordinary | Multi
//	Ordinary → Identifier ('::' Nested)?
//	Nested   → '*' | Ordinary | Multi
//	Multi    → '{' (Path (',' Path)* ','?)? '}'
//
// Whitespace is permitted around every element of a Multi group.
//
// # Example
//
//	define host $env{HOST};
//	define port default_port;
//
// # Entry Points
//
// [ParseString] and [ParseReader] parse a whole file into an [AST];
// [ParsePath] and [ParseExpr] parse standalone paths and expressions. The
// exported rule values ([FileRule], [PathRule], ...) expose the raw
// combinators, which report only success or failure and leave any unparsed
// suffix to the caller.
package lang
