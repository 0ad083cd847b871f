package vparse

// Alternation combinators.

// Or tries p1 and, if it fails, rewinds and tries p2 from the same
// position. If p1 is Incomplete, p2 is not attempted: more data might
// still let p1 succeed. When both fail the input is left where it
// started.
func Or[I comparable, T any](in *Input[I], p1, p2 Parser[I, T]) Result[I, T] {
	mark := in.Mark()
	r := p1(in)
	if r.state != StateError {
		return r
	}
	in.Restore(mark)

	r = p2(in)
	if r.state == StateError {
		in.Restore(mark)
	}
	return r
}

// Choice tries each parser in order with the same policy as Or. With
// no parsers it fails.
func Choice[I comparable, T any](in *Input[I], parsers ...Parser[I, T]) Result[I, T] {
	if len(parsers) == 0 {
		return Fail[I, T](in, unexpected(in.Offset(), ""))
	}

	mark := in.Mark()
	var r Result[I, T]
	for _, p := range parsers {
		r = p(in)
		if r.state != StateError {
			return r
		}
		in.Restore(mark)
	}
	return r
}

// Option runs p, returning def without consuming input if p fails.
func Option[I comparable, T any](in *Input[I], p Parser[I, T], def T) Result[I, T] {
	return Or(in, p, func(in *Input[I]) Result[I, T] {
		return Ret(in, def)
	})
}

// Either holds the value of one of two parsers.
type Either[L, R any] struct {
	Left    L
	Right   R
	IsRight bool
}

// EitherOf tries l, then r, returning whichever matched.
func EitherOf[I comparable, L, R any](
	in *Input[I], l Parser[I, L], r Parser[I, R]) Result[I, Either[L, R]] {
	left := func(in *Input[I]) Result[I, Either[L, R]] {
		return Map(l(in), func(v L) Either[L, R] {
			return Either[L, R]{Left: v}
		})
	}
	right := func(in *Input[I]) Result[I, Either[L, R]] {
		return Map(r(in), func(v R) Either[L, R] {
			return Either[L, R]{Right: v, IsRight: true}
		})
	}
	return Or(in, left, right)
}
