package vparse

import (
	"strconv"
	"unsafe"
)

type Floating interface {
	~float32 | ~float64
}

func isSign(c byte) bool {
	return c == '-' || c == '+'
}

func isExponent(c byte) bool {
	return c == 'e' || c == 'E'
}

func sign(in *Input[byte]) Result[byte, byte] {
	return Satisfy(in, isSign)
}

func skipDigits(in *Input[byte]) Result[byte, struct{}] {
	return MapErr(SkipWhile1(in, IsDigit), func(err error) error {
		return expect(err, "digit")
	})
}

// fraction matches '.' digit+
func fraction(in *Input[byte]) Result[byte, struct{}] {
	return Then(Token(in, '.'), skipDigits)
}

// exponent matches [eE] [+-]? digit+
func exponent(in *Input[byte]) Result[byte, struct{}] {
	return Then(Satisfy(in, isExponent), func(in *Input[byte]) Result[byte, struct{}] {
		return Then(Option(in, sign, 0), skipDigits)
	})
}

// matchFloat matches [+-]? digit+ ('.' digit+)? ([eE] [+-]? digit+)?
// Optional parts which only partially match are given back so the
// longest valid literal wins, e.g. "1.e5" matches "1".
func matchFloat(in *Input[byte]) Result[byte, struct{}] {
	mark := in.Mark()
	r := Then(Option(in, sign, 0), func(in *Input[byte]) Result[byte, struct{}] {
		return Then(skipDigits(in), func(in *Input[byte]) Result[byte, struct{}] {
			return Then(Option(in, fraction, struct{}{}), func(in *Input[byte]) Result[byte, struct{}] {
				return Option(in, exponent, struct{}{})
			})
		})
	})
	if r.state == StateError {
		in.Restore(mark)
	}
	return r
}

// MatchFloat matches a decimal floating point literal and returns the
// raw tokens without converting them.
func MatchFloat(in *Input[byte]) Result[byte, Buffer[byte]] {
	return Map(MatchedBy(in, matchFloat), func(m Matched[byte, struct{}]) Buffer[byte] {
		return m.Buffer
	})
}

// Float matches a floating point literal and converts it to F. The
// conversion is strconv.ParseFloat working directly on the matched
// tokens, so results are identical to the standard library. Literals
// outside the range of F fail with ErrOverflow.
func Float[F Floating](in *Input[byte]) Result[byte, F] {
	mark := in.Mark()
	return Bind(MatchFloat(in), func(in *Input[byte], buf Buffer[byte]) Result[byte, F] {
		bits := int(unsafe.Sizeof(F(0)) * 8)
		value, err := strconv.ParseFloat(unsafeString(buf), bits)
		if err != nil {
			return overflow[F](in, mark)
		}
		return Ret(in, F(value))
	})
}
