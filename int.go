package vparse

import (
	"fmt"
	"math/big"
	"unsafe"
)

// Unsigned covers every fixed width unsigned integer.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// SignedInteger covers every fixed width signed integer. Signed()
// only accepts these so an unsigned target does not compile.
type SignedInteger interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// addDigit returns value * 10 + digit, or false if that does not fit
// in N.
func addDigit[N Unsigned](value N, digit byte) (N, bool) {
	d := N(digit - '0')
	if value > (^N(0)-d)/10 {
		return value, false
	}
	return value*10 + d, true
}

func overflow[T any](in *Input[byte], mark Mark) Result[byte, T] {
	in.Restore(mark)
	var zero T
	return Fail[byte, T](in, &Error{
		Offset:   int(mark),
		Expected: fmt.Sprintf("%T", zero),
		Err:      ErrOverflow,
	})
}

// digits consumes a run of one or more ASCII digits.
func digits(in *Input[byte]) Result[byte, Buffer[byte]] {
	return MapErr(TakeWhile1(in, IsDigit), func(err error) error {
		return expect(err, "digit")
	})
}

// Decimal parses an unsigned decimal integer into N. Values which do
// not fit in N fail with ErrOverflow and leave the input before the
// first digit.
func Decimal[N Unsigned](in *Input[byte]) Result[byte, N] {
	mark := in.Mark()
	return Bind(digits(in), func(in *Input[byte], buf Buffer[byte]) Result[byte, N] {
		var value N
		for _, c := range buf.data {
			next, ok := addDigit(value, c)
			if !ok {
				return overflow[N](in, mark)
			}
			value = next
		}
		return Ret(in, value)
	})
}

// DecimalBig parses an unsigned decimal integer of any size.
func DecimalBig(in *Input[byte]) Result[byte, *big.Int] {
	return Map(digits(in), func(buf Buffer[byte]) *big.Int {
		result, _ := new(big.Int).SetString(unsafeString(buf), 10)
		return result
	})
}

// Signed parses an optional '-' or '+' followed by an unsigned
// magnitude from inner, e.g. Signed[int8](in, Decimal[uint8]). The
// magnitude is range checked against S so "-128" is a valid int8
// while "128" is not.
func Signed[S SignedInteger, U Unsigned](
	in *Input[byte], inner Parser[byte, U]) Result[byte, S] {
	mark := in.Mark()

	c, ok := in.peek()
	if !ok {
		return short[byte, S](in, 1, "digit")
	}

	negative := false
	if c == '-' || c == '+' {
		negative = c == '-'
		in.pos++
	}

	r := inner(in)
	if r.state == StateError {
		in.Restore(mark)
	}

	return Bind(r, func(in *Input[byte], magnitude U) Result[byte, S] {
		bits := unsafe.Sizeof(S(0)) * 8
		limit := uint64(1)<<(bits-1) - 1
		m := uint64(magnitude)

		if !negative {
			if m > limit {
				return overflow[S](in, mark)
			}
			return Ret(in, S(m))
		}

		if m == 0 {
			return Ret(in, S(0))
		}
		if m > limit+1 {
			return overflow[S](in, mark)
		}
		return Ret(in, -S(m-1)-1)
	})
}
