package vparse

// Repetition combinators.
//
// A failing repetition always leaves the input where it was before
// the combinator started. Passing a parser which can succeed without
// consuming anything to Many and friends never terminates; it is the
// caller's job to avoid that.

// Many applies p until it fails and collects the values. A failing
// first application yields an empty slice.
func Many[I comparable, T any](in *Input[I], p Parser[I, T]) Result[I, []T] {
	var result []T
	for {
		mark := in.Mark()
		r := p(in)
		switch r.state {
		case StateData:
			result = append(result, r.value)

		case StateIncomplete:
			return propagate[I, T, []T](r)

		default:
			in.Restore(mark)
			return Ret(in, result)
		}
	}
}

// Many1 is Many requiring at least one application to succeed.
func Many1[I comparable, T any](in *Input[I], p Parser[I, T]) Result[I, []T] {
	mark := in.Mark()
	first := p(in)
	if first.state == StateError {
		in.Restore(mark)
	}
	return Bind(first, func(in *Input[I], value T) Result[I, []T] {
		return Map(Many(in, p), func(rest []T) []T {
			return append([]T{value}, rest...)
		})
	})
}

// SkipMany applies p until it fails, discarding the values.
func SkipMany[I comparable, T any](in *Input[I], p Parser[I, T]) Result[I, struct{}] {
	for {
		mark := in.Mark()
		r := p(in)
		switch r.state {
		case StateData:

		case StateIncomplete:
			return propagate[I, T, struct{}](r)

		default:
			in.Restore(mark)
			return Ret(in, struct{}{})
		}
	}
}

// SkipMany1 is SkipMany requiring at least one success.
func SkipMany1[I comparable, T any](in *Input[I], p Parser[I, T]) Result[I, struct{}] {
	mark := in.Mark()
	first := p(in)
	if first.state == StateError {
		in.Restore(mark)
	}
	return Then(first, func(in *Input[I]) Result[I, struct{}] {
		return SkipMany(in, p)
	})
}

// Count applies p exactly n times.
func Count[I comparable, T any](in *Input[I], n int, p Parser[I, T]) Result[I, []T] {
	mark := in.Mark()
	result := make([]T, 0, n)
	for i := 0; i < n; i++ {
		r := p(in)
		switch r.state {
		case StateData:
			result = append(result, r.value)

		case StateIncomplete:
			return propagate[I, T, []T](r)

		default:
			in.Restore(mark)
			return propagate[I, T, []T](r)
		}
	}
	return Ret(in, result)
}

// SepBy parses zero or more items separated by sep. A trailing
// separator is not consumed.
func SepBy[I comparable, T, S any](
	in *Input[I], item Parser[I, T], sep Parser[I, S]) Result[I, []T] {
	mark := in.Mark()
	first := item(in)
	switch first.state {
	case StateError:
		in.Restore(mark)
		return Ret[I, []T](in, nil)

	case StateIncomplete:
		return propagate[I, T, []T](first)
	}

	return sepByRest(in, first.value, item, sep)
}

// SepBy1 parses one or more items separated by sep.
func SepBy1[I comparable, T, S any](
	in *Input[I], item Parser[I, T], sep Parser[I, S]) Result[I, []T] {
	mark := in.Mark()
	first := item(in)
	if first.state == StateError {
		in.Restore(mark)
	}
	return Bind(first, func(in *Input[I], value T) Result[I, []T] {
		return sepByRest(in, value, item, sep)
	})
}

func sepByRest[I comparable, T, S any](
	in *Input[I], first T, item Parser[I, T], sep Parser[I, S]) Result[I, []T] {
	next := func(in *Input[I]) Result[I, T] {
		return Then(sep(in), item)
	}
	return Map(Many(in, next), func(rest []T) []T {
		return append([]T{first}, rest...)
	})
}

// ManyTill applies p until end succeeds. The value of end is
// discarded. A failure of p before end matches fails the whole
// combinator.
func ManyTill[I comparable, T, E any](
	in *Input[I], p Parser[I, T], end Parser[I, E]) Result[I, []T] {
	start := in.Mark()
	var result []T
	for {
		mark := in.Mark()
		r := end(in)
		switch r.state {
		case StateData:
			return Ret(in, result)
		case StateIncomplete:
			return propagate[I, E, []T](r)
		}
		in.Restore(mark)

		item := p(in)
		switch item.state {
		case StateData:
			result = append(result, item.value)

		case StateIncomplete:
			return propagate[I, T, []T](item)

		default:
			in.Restore(start)
			return propagate[I, T, []T](item)
		}
	}
}

// Matched pairs a parser's value with the tokens it consumed.
type Matched[I comparable, T any] struct {
	Buffer Buffer[I]
	Value  T
}

// MatchedBy runs p and also returns the tokens it consumed.
func MatchedBy[I comparable, T any](in *Input[I], p Parser[I, T]) Result[I, Matched[I, T]] {
	mark := in.Mark()
	return Map(p(in), func(value T) Matched[I, T] {
		return Matched[I, T]{Buffer: in.since(mark), Value: value}
	})
}

// LookAhead runs p without consuming any input.
func LookAhead[I comparable, T any](in *Input[I], p Parser[I, T]) Result[I, T] {
	mark := in.Mark()
	r := p(in)
	if r.state != StateIncomplete {
		in.Restore(mark)
	}
	return r
}
