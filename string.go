package vparse

import (
	"strings"
)

// QuotedString parses a string delimited by quote in which escape
// protects the following byte. The common escapes \n \r \t and \0 are
// translated, any other escaped byte stands for itself.
//
// The body is matched with Scan, whose state records whether the
// previous byte was an unprotected escape.
func QuotedString(in *Input[byte], quote, escape byte) Result[byte, string] {
	mark := in.Mark()

	body := func(in *Input[byte]) Result[byte, Scanned[byte, bool]] {
		return Scan(in, false, func(escaped bool, c byte) (bool, bool) {
			if escaped {
				return false, true
			}
			if c == quote {
				return false, false
			}
			return c == escape, true
		})
	}

	result := Bind(Then(Token(in, quote), body),
		func(in *Input[byte], s Scanned[byte, bool]) Result[byte, string] {
			return Map(Token(in, quote), func(byte) string {
				return unquote(s.Buffer, escape)
			})
		})

	if result.state == StateError {
		in.Restore(mark)
	}
	return result
}

func unquote(buf Buffer[byte], escape byte) string {
	var result strings.Builder
	result.Grow(buf.Len())

	escaped := false
	buf.Iterate(func(c byte) bool {
		if !escaped && c == escape {
			escaped = true
			return true
		}

		if escaped {
			escaped = false
			switch c {
			case 'n':
				c = '\n'
			case 'r':
				c = '\r'
			case 't':
				c = '\t'
			case '0':
				c = 0
			}
		}
		result.WriteByte(c)
		return true
	})

	return result.String()
}
