// Package comb provides generic, backtracking parser combinators over
// immutable text.
//
// Every combinator implements [Parser], whose single operation attempts to
// match a prefix of the input region:
//
//	rest, value, ok := p.Parse(input)
//
// On success, rest is the unconsumed suffix of input and value is the typed
// result. On failure, ok is false, rest is input unchanged, and value is the
// zero value. Failures carry no reason: callers only learn that the parser did
// not match here.
//
// # Primitives
//
//   - [Exact]: match a literal prefix
//   - [AnyN]: consume exactly n characters
//   - [AnyWhere]: consume the longest prefix whose characters satisfy a
//     predicate
//   - [AnyWhile]: consume while a predicate over the consumed prefix and the
//     remaining suffix holds
//   - [MinChars]: require another parser to consume at least n characters
//   - [AnyUntil]: skip characters until a terminator parser matches
//
// # Structure
//
//   - [Optional], [Repetition], [MinRepetition], [MinMaxRepetition]
//   - [Or], [Alt]: left-biased first-match alternation
//   - [Seq2] through [Seq8]: sequencing into [Tuple2] through [Tuple8]
//   - [Map], [Value]: transform a success value
//   - [Func], [Lazy]: adapt plain functions and build recursive rules
//
// Characters are Unicode code points. All parsers are stateless values and may
// be shared between goroutines.
//
// # Example
//
//	digits := comb.MinChars(comb.AnyWhere(unicode.IsDigit), 1)
//	pair := comb.Seq3(digits, comb.Exact(","), digits)
//
//	rest, t, ok := pair.Parse("12,34;")
//	// rest == ";", t.V1 == "12", t.V3 == "34", ok == true
package comb
