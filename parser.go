// Implements a combinator based parsing system.
package vparse

import (
	"unicode/utf8"
	"unsafe"
)

// RunParser runs parser once against in. If the result is Incomplete
// the input is rewound to where the parser started, so once more data
// has been filled in the same parser can simply be run again.
func RunParser[I comparable, T any](in *Input[I], parser Parser[I, T]) Result[I, T] {
	mark := in.Mark()
	result := parser(in)
	if result.state == StateIncomplete {
		in.Restore(mark)
	}
	return result
}

// ParseOnly runs parser over a complete buffer.
//
// Input left over after a successful parse is discarded; use EOF() in
// the parser to insist that everything is consumed. On failure the
// unconsumed tail of the input is returned with the error.
func ParseOnly[I comparable, T any](parser Parser[I, T], input []I) (T, []I, error) {
	in := NewInput(input)
	result := parser(in)
	if result.state == StateData {
		return result.value, nil, nil
	}

	var zero T

	// A final input never produces Incomplete but a misbehaving
	// parser might.
	err := result.err
	if result.state == StateIncomplete {
		err = ErrIncomplete
	}
	return zero, in.ConsumeRemaining().data, err
}

// ParseOnlyString is ParseOnly over text. The string must be valid
// UTF-8; its bytes are parsed in place without copying.
func ParseOnlyString[T any](parser Parser[byte, T], input string) (T, string, error) {
	if !utf8.ValidString(input) {
		var zero T
		return zero, input, ErrInvalidUTF8
	}

	var data []byte
	if len(input) > 0 {
		data = unsafe.Slice(unsafe.StringData(input), len(input))
	}

	value, rest, err := ParseOnly(parser, data)
	if err != nil {
		return value, input[len(input)-len(rest):], err
	}
	return value, "", nil
}
