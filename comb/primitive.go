package comb

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Exact matches the literal prefix lit, case-sensitively, and yields it.
func Exact(lit string) Parser[string] {
	return Func[string](func(in string) (string, string, bool) {
		if !strings.HasPrefix(in, lit) {
			return fail[string](in)
		}

		return in[len(lit):], lit, true
	})
}

// AnyN consumes exactly n characters and yields them.
// It fails if fewer than n characters remain.
func AnyN(n int) Parser[string] {
	return Func[string](func(in string) (string, string, bool) {
		end := 0

		for range n {
			if end >= len(in) {
				return fail[string](in)
			}

			_, size := utf8.DecodeRuneInString(in[end:])
			end += size
		}

		return in[end:], in[:end], true
	})
}

// AnyChar consumes a single character.
func AnyChar() Parser[rune] {
	return Func[rune](func(in string) (string, rune, bool) {
		if in == "" {
			return fail[rune](in)
		}

		r, size := utf8.DecodeRuneInString(in)

		return in[size:], r, true
	})
}

// AnyWhere consumes the longest prefix whose characters all satisfy pred.
// It never fails; the yielded prefix may be empty.
func AnyWhere(pred func(rune) bool) Parser[string] {
	return Func[string](func(in string) (string, string, bool) {
		end := len(in)

		for i, r := range in {
			if !pred(r) {
				end = i

				break
			}
		}

		return in[end:], in[:end], true
	})
}

// AnyWhile extends consumption one character at a time. Before each
// character is accepted, pred is called with the prefix that would be
// consumed (including that character) and the suffix that would remain.
// Consumption stops at the first character pred rejects.
//
// AnyWhile never fails; the yielded prefix may be empty.
func AnyWhile(pred func(consumed, remaining string) bool) Parser[string] {
	return Func[string](func(in string) (string, string, bool) {
		end := 0

		for end < len(in) {
			_, size := utf8.DecodeRuneInString(in[end:])
			if !pred(in[:end+size], in[end+size:]) {
				break
			}

			end += size
		}

		return in[end:], in[:end], true
	})
}

// MinChars runs p and fails unless it consumed at least n characters.
//
// It turns a zero-or-more matcher such as [AnyWhere] into a one-or-more
// matcher.
func MinChars[T any](p Parser[T], n int) Parser[T] {
	return Func[T](func(in string) (string, T, bool) {
		rest, val, ok := p.Parse(in)
		if !ok {
			return fail[T](in)
		}

		if utf8.RuneCountInString(in[:len(in)-len(rest)]) < n {
			return fail[T](in)
		}

		return rest, val, true
	})
}

// Until is the value yielded by [AnyUntil]: the text skipped before the
// terminator and the terminator's own value.
type Until[T any] struct {
	Skipped string
	Value   T
}

// AnyUntil tries term at every character boundary of the input, starting
// before the first character and ending after the last. At the first boundary
// where term succeeds, it yields the skipped prefix together with term's value,
// and the remainder is whatever term left unconsumed.
//
// AnyUntil fails only if term fails at every boundary.
func AnyUntil[T any](term Parser[T]) Parser[Until[T]] {
	return Func[Until[T]](func(in string) (string, Until[T], bool) {
		for i := 0; ; {
			if rest, val, ok := term.Parse(in[i:]); ok {
				return rest, Until[T]{Skipped: in[:i], Value: val}, true
			}

			if i >= len(in) {
				return fail[Until[T]](in)
			}

			_, size := utf8.DecodeRuneInString(in[i:])
			i += size
		}
	})
}

// Whitespace0 consumes zero or more whitespace characters.
func Whitespace0() Parser[string] {
	return AnyWhere(unicode.IsSpace)
}

// Whitespace1 consumes one or more whitespace characters.
func Whitespace1() Parser[string] {
	return MinChars(AnyWhere(unicode.IsSpace), 1)
}
