package vparse

// Primitive parsers working directly on the Input.
//
// Parsers that fail leave the input where it was when they were
// called, so alternatives can be retried from the same place.

// short is returned when a parser needs more tokens than are
// available. A final input can never supply them so it is an error,
// otherwise the caller is asked for more data.
func short[I comparable, T any](in *Input[I], needed int, expected string) Result[I, T] {
	if in.final {
		return Fail[I, T](in, endOfInput(in.Offset(), expected))
	}
	return NeedMore[I, T](in, needed)
}

// Any consumes and returns a single token.
func Any[I comparable](in *Input[I]) Result[I, I] {
	token, ok := in.next()
	if !ok {
		return short[I, I](in, 1, "")
	}
	return Ret(in, token)
}

// Satisfy consumes a token for which pred is true.
func Satisfy[I comparable](in *Input[I], pred func(I) bool) Result[I, I] {
	token, ok := in.peek()
	if !ok {
		return short[I, I](in, 1, "")
	}
	if !pred(token) {
		return Fail[I, I](in, unexpected(in.Offset(), ""))
	}
	in.pos++
	return Ret(in, token)
}

// SatisfyWith converts the next token with f and consumes it if pred
// accepts the converted value.
func SatisfyWith[I comparable, T any](
	in *Input[I], f func(I) T, pred func(T) bool) Result[I, T] {
	token, ok := in.peek()
	if !ok {
		return short[I, T](in, 1, "")
	}
	value := f(token)
	if !pred(value) {
		return Fail[I, T](in, unexpected(in.Offset(), ""))
	}
	in.pos++
	return Ret(in, value)
}

// Token consumes the next token if it is equal to t. On mismatch the
// input is left before the offending token.
func Token[I comparable](in *Input[I], t I) Result[I, I] {
	got, ok := in.peek()
	if !ok {
		return short[I, I](in, 1, describe(t))
	}
	if got != t {
		return Fail[I, I](in, unexpected(in.Offset(), describe(t)))
	}
	in.pos++
	return Ret(in, got)
}

// NotToken consumes the next token if it is not t.
func NotToken[I comparable](in *Input[I], t I) Result[I, I] {
	token, ok := in.peek()
	if !ok {
		return short[I, I](in, 1, "")
	}
	if token == t {
		return Fail[I, I](in, unexpected(in.Offset(), "not "+describe(t)))
	}
	in.pos++
	return Ret(in, token)
}

// PeekNext returns the next token without consuming it.
func PeekNext[I comparable](in *Input[I]) Result[I, I] {
	token, ok := in.peek()
	if !ok {
		return short[I, I](in, 1, "")
	}
	return Ret(in, token)
}

// Take consumes exactly n tokens.
func Take[I comparable](in *Input[I], n int) Result[I, Buffer[I]] {
	if available := in.Len(); available < n {
		return short[I, Buffer[I]](in, n-available, "")
	}
	mark := in.Mark()
	in.pos += n
	return Ret(in, in.since(mark))
}

// String matches the literal lit token by token. A partial match
// never moves the input.
func String[I comparable](in *Input[I], lit []I) Result[I, Buffer[I]] {
	available := in.available()
	for i, t := range lit {
		if i >= len(available) {
			return short[I, Buffer[I]](in, len(lit)-i, describeSlice(lit))
		}
		if available[i] != t {
			return Fail[I, Buffer[I]](in, unexpected(in.Offset(), describeSlice(lit)))
		}
	}

	mark := in.Mark()
	in.pos += len(lit)
	return Ret(in, in.since(mark))
}

// matchWhile counts the leading available tokens accepted by pred.
// The bool is false when all available tokens matched.
func matchWhile[I comparable](in *Input[I], pred func(I) bool) (int, bool) {
	for i, t := range in.available() {
		if !pred(t) {
			return i, true
		}
	}
	return in.Len(), false
}

// TakeWhile consumes tokens while pred holds. Matching nothing is a
// success. On a stream input which runs out before pred fails the
// result is Incomplete since more matching data may follow.
func TakeWhile[I comparable](in *Input[I], pred func(I) bool) Result[I, Buffer[I]] {
	n, stopped := matchWhile(in, pred)
	if !stopped && !in.final {
		return NeedMore[I, Buffer[I]](in, 1)
	}
	mark := in.Mark()
	in.pos += n
	return Ret(in, in.since(mark))
}

// TakeWhile1 is TakeWhile requiring at least one match.
func TakeWhile1[I comparable](in *Input[I], pred func(I) bool) Result[I, Buffer[I]] {
	n, stopped := matchWhile(in, pred)
	if n == 0 {
		if !stopped {
			return short[I, Buffer[I]](in, 1, "")
		}
		return Fail[I, Buffer[I]](in, unexpected(in.Offset(), ""))
	}
	if !stopped && !in.final {
		return NeedMore[I, Buffer[I]](in, 1)
	}
	mark := in.Mark()
	in.pos += n
	return Ret(in, in.since(mark))
}

// SkipWhile is TakeWhile without the buffer.
func SkipWhile[I comparable](in *Input[I], pred func(I) bool) Result[I, struct{}] {
	return Map(TakeWhile(in, pred), discard[Buffer[I]])
}

// SkipWhile1 is TakeWhile1 without the buffer.
func SkipWhile1[I comparable](in *Input[I], pred func(I) bool) Result[I, struct{}] {
	return Map(TakeWhile1(in, pred), discard[Buffer[I]])
}

// TakeTill consumes tokens up to, but not including, the first token
// for which pred is true. Reaching the end of a final input before
// such a token is an error.
func TakeTill[I comparable](in *Input[I], pred func(I) bool) Result[I, Buffer[I]] {
	n, stopped := matchWhile(in, func(t I) bool { return !pred(t) })
	if !stopped {
		return short[I, Buffer[I]](in, 1, "")
	}
	mark := in.Mark()
	in.pos += n
	return Ret(in, in.since(mark))
}

// TakeRemainder consumes everything up to the end of the input. On a
// stream input this is only possible once the input is closed.
func TakeRemainder[I comparable](in *Input[I]) Result[I, Buffer[I]] {
	if !in.final {
		return NeedMore[I, Buffer[I]](in, 1)
	}
	return Ret(in, in.ConsumeRemaining())
}

// EOF succeeds only at the end of the input.
func EOF[I comparable](in *Input[I]) Result[I, struct{}] {
	if in.Len() > 0 {
		return Fail[I, struct{}](in, unexpected(in.Offset(), "end of input"))
	}
	if !in.final {
		return NeedMore[I, struct{}](in, 1)
	}
	return Ret(in, struct{}{})
}

// Scanned is the result of Scan: the matched tokens and the final
// scanner state.
type Scanned[I comparable, S any] struct {
	Buffer Buffer[I]
	State  S
}

// Scan folds step over the input starting with seed. It consumes
// tokens while step returns true and stops before the token for which
// step returns false: that terminating token is left on the input for
// the caller to consume. The end of a final input also ends the scan.
func Scan[I comparable, S any](
	in *Input[I], seed S, step func(state S, token I) (S, bool)) Result[I, Scanned[I, S]] {
	state := seed
	n := 0
	stopped := false

	for _, t := range in.available() {
		next, ok := step(state, t)
		if !ok {
			stopped = true
			break
		}
		state = next
		n++
	}

	if !stopped && !in.final {
		return NeedMore[I, Scanned[I, S]](in, 1)
	}

	mark := in.Mark()
	in.pos += n
	return Ret(in, Scanned[I, S]{Buffer: in.since(mark), State: state})
}

func discard[T any](T) struct{} {
	return struct{}{}
}
