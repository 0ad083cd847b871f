package vparse

// Byte specific helpers.

func IsLowercase(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func IsUppercase(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

// IsWhitespace accepts space and the control characters \t \n \v \f \r.
func IsWhitespace(c byte) bool {
	return c == ' ' || (c >= '\t' && c <= '\r')
}

func IsHorizontalSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func IsEndOfLine(c byte) bool {
	return c == '\n' || c == '\r'
}

func IsAlpha(c byte) bool {
	return IsLowercase(c) || IsUppercase(c)
}

func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func IsAlphanumeric(c byte) bool {
	return IsAlpha(c) || IsDigit(c)
}

// SkipWhitespace skips any amount of whitespace, including none.
func SkipWhitespace(in *Input[byte]) Result[byte, struct{}] {
	return SkipWhile(in, IsWhitespace)
}

// Digit consumes a single ASCII digit.
func Digit(in *Input[byte]) Result[byte, byte] {
	return MapErr(Satisfy(in, IsDigit), func(err error) error {
		return expect(err, "digit")
	})
}

// expect labels a default error with what was expected.
func expect(err error, expected string) error {
	if e, ok := err.(*Error); ok && e.Expected == "" {
		return &Error{Offset: e.Offset, Expected: expected, Err: e.Err}
	}
	return err
}
