package vparse

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrUnexpected    = errors.New("unexpected token")
	ErrEndOfInput    = errors.New("unexpected end of input")
	ErrOverflow      = errors.New("numeric overflow")
	ErrIncomplete    = errors.New("incomplete input")
	ErrInvalidUTF8   = errors.New("invalid utf8")
	ErrUnknownParser = errors.New("parser not found")
)

// Error is the default error produced by the built in parsers. It
// records where the failure happened and optionally what was
// expected.
type Error struct {
	Offset   int
	Expected string
	Err      error
}

func (self *Error) Error() string {
	if self.Expected != "" {
		return fmt.Sprintf("offset %d: expected %s: %v",
			self.Offset, self.Expected, self.Err)
	}
	return fmt.Sprintf("offset %d: %v", self.Offset, self.Err)
}

func (self *Error) Unwrap() error {
	return self.Err
}

func unexpected(offset int, expected string) error {
	return &Error{Offset: offset, Expected: expected, Err: ErrUnexpected}
}

func endOfInput(offset int, expected string) error {
	return &Error{Offset: offset, Expected: expected, Err: ErrEndOfInput}
}

// describe renders a token for an error message.
func describe(token interface{}) string {
	switch t := token.(type) {
	case byte:
		return strconv.QuoteRune(rune(t))
	case rune:
		return strconv.QuoteRune(t)
	case string:
		return strconv.Quote(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func describeSlice[T comparable](tokens []T) string {
	switch t := any(tokens).(type) {
	case []byte:
		return strconv.Quote(string(t))
	case []rune:
		return strconv.Quote(string(t))
	default:
		return fmt.Sprintf("%v", tokens)
	}
}
