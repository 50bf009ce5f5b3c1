package comb

import "sync"

// Parser is implemented by every combinator.
//
// Parse attempts to match a prefix of in. On success it returns the remaining
// suffix of in, the parsed value, and true. On failure it returns in, the zero
// value of T, and false.
type Parser[T any] interface {
	Parse(in string) (rest string, val T, ok bool)
}

// Func adapts an ordinary function to the [Parser] interface.
//
// Recursive grammar rules are most naturally written as functions that refer
// to each other by name and then wrapped with Func where a Parser is needed.
type Func[T any] func(in string) (string, T, bool)

// Parse calls f(in).
func (f Func[T]) Parse(in string) (string, T, bool) { return f(in) }

// Lazy defers construction of a parser until its first use.
// It breaks initialization cycles between parser values that refer to each
// other.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	get := sync.OnceValue(build)

	return Func[T](func(in string) (string, T, bool) {
		return get().Parse(in)
	})
}

// fail is the canonical failure outcome.
func fail[T any](in string) (string, T, bool) {
	var zero T

	return in, zero, false
}

// Map transforms the value of a successful parse with fn.
// Failures pass through unchanged.
func Map[T, U any](p Parser[T], fn func(T) U) Parser[U] {
	return Func[U](func(in string) (string, U, bool) {
		rest, val, ok := p.Parse(in)
		if !ok {
			return fail[U](in)
		}

		return rest, fn(val), true
	})
}

// Value replaces the value of a successful parse with v.
func Value[T, U any](p Parser[T], v U) Parser[U] {
	return Map(p, func(T) U { return v })
}

// Or tries left, and only if it fails, right.
// Once left succeeds its result is final.
func Or[T any](left, right Parser[T]) Parser[T] {
	return Func[T](func(in string) (string, T, bool) {
		if rest, val, ok := left.Parse(in); ok {
			return rest, val, true
		}

		return right.Parse(in)
	})
}

// Alt tries each parser in order and returns the first success.
// It fails if every alternative fails, or if there are none.
func Alt[T any](ps ...Parser[T]) Parser[T] {
	return Func[T](func(in string) (string, T, bool) {
		for _, p := range ps {
			if rest, val, ok := p.Parse(in); ok {
				return rest, val, true
			}
		}

		return fail[T](in)
	})
}
