package comb

// Sequencing combinators. SeqN runs its N children in order, each on the
// remainder left by the previous one, and bundles their values into a TupleN.
// If any child fails, the whole sequence fails and consumes nothing.

// Tuple2 holds the values of a [Seq2].
type Tuple2[A, B any] struct {
	V1 A
	V2 B
}

// Tuple3 holds the values of a [Seq3].
type Tuple3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

// Tuple4 holds the values of a [Seq4].
type Tuple4[A, B, C, D any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

// Tuple5 holds the values of a [Seq5].
type Tuple5[A, B, C, D, E any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
}

// Tuple6 holds the values of a [Seq6].
type Tuple6[A, B, C, D, E, F any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
}

// Tuple7 holds the values of a [Seq7].
type Tuple7[A, B, C, D, E, F, G any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
	V7 G
}

// Tuple8 holds the values of a [Seq8].
type Tuple8[A, B, C, D, E, F, G, H any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
	V7 G
	V8 H
}

// Seq2 sequences 2 parsers.
func Seq2[A, B any](p1 Parser[A], p2 Parser[B]) Parser[Tuple2[A, B]] {
	return Func[Tuple2[A, B]](func(in string) (string, Tuple2[A, B], bool) {
		var t Tuple2[A, B]

		rest, ok := in, false

		if rest, t.V1, ok = p1.Parse(rest); !ok {
			return fail[Tuple2[A, B]](in)
		}

		if rest, t.V2, ok = p2.Parse(rest); !ok {
			return fail[Tuple2[A, B]](in)
		}

		return rest, t, true
	})
}

// Seq3 sequences 3 parsers.
func Seq3[A, B, C any](
	p1 Parser[A],
	p2 Parser[B],
	p3 Parser[C],
) Parser[Tuple3[A, B, C]] {
	return Func[Tuple3[A, B, C]](func(in string) (string, Tuple3[A, B, C], bool) {
		var t Tuple3[A, B, C]

		rest, ok := in, false

		if rest, t.V1, ok = p1.Parse(rest); !ok {
			return fail[Tuple3[A, B, C]](in)
		}

		if rest, t.V2, ok = p2.Parse(rest); !ok {
			return fail[Tuple3[A, B, C]](in)
		}

		if rest, t.V3, ok = p3.Parse(rest); !ok {
			return fail[Tuple3[A, B, C]](in)
		}

		return rest, t, true
	})
}

// Seq4 sequences 4 parsers.
func Seq4[A, B, C, D any](
	p1 Parser[A],
	p2 Parser[B],
	p3 Parser[C],
	p4 Parser[D],
) Parser[Tuple4[A, B, C, D]] {
	return Func[Tuple4[A, B, C, D]](func(in string) (string, Tuple4[A, B, C, D], bool) {
		var t Tuple4[A, B, C, D]

		rest, ok := in, false

		if rest, t.V1, ok = p1.Parse(rest); !ok {
			return fail[Tuple4[A, B, C, D]](in)
		}

		if rest, t.V2, ok = p2.Parse(rest); !ok {
			return fail[Tuple4[A, B, C, D]](in)
		}

		if rest, t.V3, ok = p3.Parse(rest); !ok {
			return fail[Tuple4[A, B, C, D]](in)
		}

		if rest, t.V4, ok = p4.Parse(rest); !ok {
			return fail[Tuple4[A, B, C, D]](in)
		}

		return rest, t, true
	})
}

// Seq5 sequences 5 parsers.
func Seq5[A, B, C, D, E any](
	p1 Parser[A],
	p2 Parser[B],
	p3 Parser[C],
	p4 Parser[D],
	p5 Parser[E],
) Parser[Tuple5[A, B, C, D, E]] {
	return Func[Tuple5[A, B, C, D, E]](func(in string) (string, Tuple5[A, B, C, D, E], bool) {
		var t Tuple5[A, B, C, D, E]

		rest, ok := in, false

		if rest, t.V1, ok = p1.Parse(rest); !ok {
			return fail[Tuple5[A, B, C, D, E]](in)
		}

		if rest, t.V2, ok = p2.Parse(rest); !ok {
			return fail[Tuple5[A, B, C, D, E]](in)
		}

		if rest, t.V3, ok = p3.Parse(rest); !ok {
			return fail[Tuple5[A, B, C, D, E]](in)
		}

		if rest, t.V4, ok = p4.Parse(rest); !ok {
			return fail[Tuple5[A, B, C, D, E]](in)
		}

		if rest, t.V5, ok = p5.Parse(rest); !ok {
			return fail[Tuple5[A, B, C, D, E]](in)
		}

		return rest, t, true
	})
}

// Seq6 sequences 6 parsers.
func Seq6[A, B, C, D, E, F any](
	p1 Parser[A],
	p2 Parser[B],
	p3 Parser[C],
	p4 Parser[D],
	p5 Parser[E],
	p6 Parser[F],
) Parser[Tuple6[A, B, C, D, E, F]] {
	return Func[Tuple6[A, B, C, D, E, F]](func(in string) (string, Tuple6[A, B, C, D, E, F], bool) {
		var t Tuple6[A, B, C, D, E, F]

		rest, ok := in, false

		if rest, t.V1, ok = p1.Parse(rest); !ok {
			return fail[Tuple6[A, B, C, D, E, F]](in)
		}

		if rest, t.V2, ok = p2.Parse(rest); !ok {
			return fail[Tuple6[A, B, C, D, E, F]](in)
		}

		if rest, t.V3, ok = p3.Parse(rest); !ok {
			return fail[Tuple6[A, B, C, D, E, F]](in)
		}

		if rest, t.V4, ok = p4.Parse(rest); !ok {
			return fail[Tuple6[A, B, C, D, E, F]](in)
		}

		if rest, t.V5, ok = p5.Parse(rest); !ok {
			return fail[Tuple6[A, B, C, D, E, F]](in)
		}

		if rest, t.V6, ok = p6.Parse(rest); !ok {
			return fail[Tuple6[A, B, C, D, E, F]](in)
		}

		return rest, t, true
	})
}

// Seq7 sequences 7 parsers.
func Seq7[A, B, C, D, E, F, G any](
	p1 Parser[A],
	p2 Parser[B],
	p3 Parser[C],
	p4 Parser[D],
	p5 Parser[E],
	p6 Parser[F],
	p7 Parser[G],
) Parser[Tuple7[A, B, C, D, E, F, G]] {
	return Func[Tuple7[A, B, C, D, E, F, G]](func(in string) (string, Tuple7[A, B, C, D, E, F, G], bool) {
		var t Tuple7[A, B, C, D, E, F, G]

		rest, ok := in, false

		if rest, t.V1, ok = p1.Parse(rest); !ok {
			return fail[Tuple7[A, B, C, D, E, F, G]](in)
		}

		if rest, t.V2, ok = p2.Parse(rest); !ok {
			return fail[Tuple7[A, B, C, D, E, F, G]](in)
		}

		if rest, t.V3, ok = p3.Parse(rest); !ok {
			return fail[Tuple7[A, B, C, D, E, F, G]](in)
		}

		if rest, t.V4, ok = p4.Parse(rest); !ok {
			return fail[Tuple7[A, B, C, D, E, F, G]](in)
		}

		if rest, t.V5, ok = p5.Parse(rest); !ok {
			return fail[Tuple7[A, B, C, D, E, F, G]](in)
		}

		if rest, t.V6, ok = p6.Parse(rest); !ok {
			return fail[Tuple7[A, B, C, D, E, F, G]](in)
		}

		if rest, t.V7, ok = p7.Parse(rest); !ok {
			return fail[Tuple7[A, B, C, D, E, F, G]](in)
		}

		return rest, t, true
	})
}

// Seq8 sequences 8 parsers.
func Seq8[A, B, C, D, E, F, G, H any](
	p1 Parser[A],
	p2 Parser[B],
	p3 Parser[C],
	p4 Parser[D],
	p5 Parser[E],
	p6 Parser[F],
	p7 Parser[G],
	p8 Parser[H],
) Parser[Tuple8[A, B, C, D, E, F, G, H]] {
	return Func[Tuple8[A, B, C, D, E, F, G, H]](func(in string) (string, Tuple8[A, B, C, D, E, F, G, H], bool) {
		var t Tuple8[A, B, C, D, E, F, G, H]

		rest, ok := in, false

		if rest, t.V1, ok = p1.Parse(rest); !ok {
			return fail[Tuple8[A, B, C, D, E, F, G, H]](in)
		}

		if rest, t.V2, ok = p2.Parse(rest); !ok {
			return fail[Tuple8[A, B, C, D, E, F, G, H]](in)
		}

		if rest, t.V3, ok = p3.Parse(rest); !ok {
			return fail[Tuple8[A, B, C, D, E, F, G, H]](in)
		}

		if rest, t.V4, ok = p4.Parse(rest); !ok {
			return fail[Tuple8[A, B, C, D, E, F, G, H]](in)
		}

		if rest, t.V5, ok = p5.Parse(rest); !ok {
			return fail[Tuple8[A, B, C, D, E, F, G, H]](in)
		}

		if rest, t.V6, ok = p6.Parse(rest); !ok {
			return fail[Tuple8[A, B, C, D, E, F, G, H]](in)
		}

		if rest, t.V7, ok = p7.Parse(rest); !ok {
			return fail[Tuple8[A, B, C, D, E, F, G, H]](in)
		}

		if rest, t.V8, ok = p8.Parse(rest); !ok {
			return fail[Tuple8[A, B, C, D, E, F, G, H]](in)
		}

		return rest, t, true
	})
}
