package comb

// Maybe holds the value of an [Optional] parse.
// Some reports whether the inner parser matched.
type Maybe[T any] struct {
	Value T
	Some  bool
}

// Get returns the value and whether it is present.
func (m Maybe[T]) Get() (T, bool) { return m.Value, m.Some }

// Optional tries p and never fails. If p fails, it yields an absent
// [Maybe] and consumes nothing.
func Optional[T any](p Parser[T]) Parser[Maybe[T]] {
	return Func[Maybe[T]](func(in string) (string, Maybe[T], bool) {
		rest, val, ok := p.Parse(in)
		if !ok {
			return in, Maybe[T]{}, true
		}

		return rest, Maybe[T]{Value: val, Some: true}, true
	})
}

// Unbounded disables a bound of [MinMaxRepetition].
const Unbounded = -1

// Repetition applies p until it fails and yields the results in order.
// It never fails; the result may be empty.
//
// An application of p that succeeds without consuming input ends the
// repetition and is not collected.
func Repetition[T any](p Parser[T]) Parser[[]T] {
	return MinMaxRepetition(p, Unbounded, Unbounded)
}

// MinRepetition is [Repetition] that fails if p matched fewer than min times.
func MinRepetition[T any](p Parser[T], minimum int) Parser[[]T] {
	return MinMaxRepetition(p, minimum, Unbounded)
}

// MinMaxRepetition applies p until it fails, then fails if the number of
// matches is below minimum or above maximum. Either bound may be
// [Unbounded].
func MinMaxRepetition[T any](p Parser[T], minimum, maximum int) Parser[[]T] {
	return Func[[]T](func(in string) (string, []T, bool) {
		var (
			out  []T
			rest = in
		)

		for {
			next, val, ok := p.Parse(rest)
			if !ok || len(next) == len(rest) {
				break
			}

			out = append(out, val)
			rest = next
		}

		if minimum != Unbounded && len(out) < minimum {
			return fail[[]T](in)
		}

		if maximum != Unbounded && len(out) > maximum {
			return fail[[]T](in)
		}

		return rest, out, true
	})
}
