// Package json is a JSON grammar built from the vparse combinators.
//
// Objects are returned as *ordereddict.Dict so key order survives,
// arrays as []interface{}, numbers as float64, plus string, bool and
// nil.
package json

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/Velocidex/ordereddict"
	"www.velocidex.com/golang/vparse"
)

type input = vparse.Input[byte]

var (
	trueLiteral  = []byte("true")
	falseLiteral = []byte("false")
	nullLiteral  = []byte("null")
)

// Parse parses one JSON value preceded by optional whitespace.
func Parse(in *input) vparse.Result[byte, interface{}] {
	return vparse.Then(vparse.SkipWhitespace(in), parseValue)
}

func parseValue(in *input) vparse.Result[byte, interface{}] {
	offset := in.Offset()
	r := vparse.Choice(in,
		objectValue, arrayValue, stringValue, numberValue,
		trueValue, falseValue, nullValue)

	return vparse.MapErr(r, func(err error) error {
		// Only report the alternatives collectively when none of
		// them got past the first token.
		if e, ok := err.(*vparse.Error); ok && e.Offset == offset {
			return &vparse.Error{Offset: offset, Expected: "value", Err: e.Err}
		}
		return err
	})
}

func objectValue(in *input) vparse.Result[byte, interface{}] {
	return vparse.Map(parseObject(in), toAny[*ordereddict.Dict])
}

func arrayValue(in *input) vparse.Result[byte, interface{}] {
	return vparse.Map(parseArray(in), toAny[[]interface{}])
}

func stringValue(in *input) vparse.Result[byte, interface{}] {
	return vparse.Map(parseString(in), toAny[string])
}

func numberValue(in *input) vparse.Result[byte, interface{}] {
	return vparse.Map(vparse.Float[float64](in), toAny[float64])
}

func trueValue(in *input) vparse.Result[byte, interface{}] {
	return literal(in, trueLiteral, true)
}

func falseValue(in *input) vparse.Result[byte, interface{}] {
	return literal(in, falseLiteral, false)
}

func nullValue(in *input) vparse.Result[byte, interface{}] {
	return literal(in, nullLiteral, nil)
}

func literal(in *input, lit []byte, value interface{}) vparse.Result[byte, interface{}] {
	return vparse.Map(vparse.String(in, lit), func(vparse.Buffer[byte]) interface{} {
		return value
	})
}

func toAny[T any](v T) interface{} {
	return v
}

// separator is whitespace, a comma and more whitespace.
func separator(in *input) vparse.Result[byte, struct{}] {
	return vparse.Then(vparse.SkipWhitespace(in), func(in *input) vparse.Result[byte, struct{}] {
		return vparse.Then(vparse.Token(in, ','), vparse.SkipWhitespace)
	})
}

// closing skips whitespace and matches the closing token c.
func closing[T any](in *input, c byte, value T) vparse.Result[byte, T] {
	return vparse.Then(vparse.SkipWhitespace(in), func(in *input) vparse.Result[byte, T] {
		return vparse.Map(vparse.Token(in, c), func(byte) T {
			return value
		})
	})
}

type member struct {
	key   string
	value interface{}
}

func parseMember(in *input) vparse.Result[byte, member] {
	return vparse.Bind(parseString(in), func(in *input, key string) vparse.Result[byte, member] {
		return vparse.Then(vparse.SkipWhitespace(in), func(in *input) vparse.Result[byte, member] {
			return vparse.Then(vparse.Token(in, ':'), func(in *input) vparse.Result[byte, member] {
				return vparse.Map(Parse(in), func(value interface{}) member {
					return member{key: key, value: value}
				})
			})
		})
	})
}

func parseObject(in *input) vparse.Result[byte, *ordereddict.Dict] {
	open := vparse.Then(vparse.Token(in, '{'), vparse.SkipWhitespace)
	return vparse.Then(open, func(in *input) vparse.Result[byte, *ordereddict.Dict] {
		members := vparse.SepBy(in, parseMember, separator)
		return vparse.Bind(members, func(in *input, members []member) vparse.Result[byte, *ordereddict.Dict] {
			obj := ordereddict.NewDict()
			for _, m := range members {
				obj.Set(m.key, m.value)
			}
			return closing(in, '}', obj)
		})
	})
}

func parseArray(in *input) vparse.Result[byte, []interface{}] {
	open := vparse.Then(vparse.Token(in, '['), vparse.SkipWhitespace)
	return vparse.Then(open, func(in *input) vparse.Result[byte, []interface{}] {
		items := vparse.SepBy(in, parseValue, separator)
		return vparse.Bind(items, func(in *input, items []interface{}) vparse.Result[byte, []interface{}] {
			if items == nil {
				items = []interface{}{}
			}
			return closing(in, ']', items)
		})
	})
}

// stringBody scans up to the closing quote. The scanner state is true
// right after an unescaped backslash.
func stringBody(in *input) vparse.Result[byte, vparse.Scanned[byte, bool]] {
	return vparse.Scan(in, false, func(escaped bool, c byte) (bool, bool) {
		switch {
		case escaped:
			return false, true
		case c == '"':
			return false, false
		default:
			return c == '\\', true
		}
	})
}

func parseString(in *input) vparse.Result[byte, string] {
	mark := in.Mark()
	start := in.Offset()
	body := vparse.Then(vparse.Token(in, '"'), stringBody)

	result := vparse.Bind(body, func(in *input, s vparse.Scanned[byte, bool]) vparse.Result[byte, string] {
		return vparse.Then(vparse.Token(in, '"'), func(in *input) vparse.Result[byte, string] {
			value, err := unescape(s.Buffer)
			if err != nil {
				return vparse.Fail[byte, string](in, &vparse.Error{
					Offset: start, Expected: "string", Err: err})
			}
			return vparse.Ret(in, value)
		})
	})

	if result.IsError() {
		in.Restore(mark)
	}
	return result
}

// unescape decodes the escape sequences of a JSON string body.
func unescape(buf vparse.Buffer[byte]) (string, error) {
	raw := vparse.BufferString(buf)
	if strings.IndexByte(raw, '\\') < 0 {
		return raw, nil
	}

	var out strings.Builder
	out.Grow(len(raw))

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' {
			out.WriteByte(c)
			continue
		}

		i++
		if i >= len(raw) {
			return "", fmt.Errorf("unterminated escape")
		}

		switch raw[i] {
		case '"', '\\', '/':
			out.WriteByte(raw[i])
		case 'b':
			out.WriteByte('\b')
		case 'f':
			out.WriteByte('\f')
		case 'n':
			out.WriteByte('\n')
		case 'r':
			out.WriteByte('\r')
		case 't':
			out.WriteByte('\t')
		case 'u':
			r, n, err := decodeUnicode(raw[i+1:])
			if err != nil {
				return "", err
			}
			out.WriteRune(r)
			i += n
		default:
			return "", fmt.Errorf("invalid escape \\%c", raw[i])
		}
	}

	return out.String(), nil
}

// decodeUnicode decodes the hex digits following \u, joining
// surrogate pairs. It returns the rune and the number of bytes used.
func decodeUnicode(s string) (rune, int, error) {
	r, err := hex4(s)
	if err != nil {
		return 0, 0, err
	}

	if !utf16.IsSurrogate(r) {
		return r, 4, nil
	}

	if len(s) >= 10 && s[4] == '\\' && s[5] == 'u' {
		low, err := hex4(s[6:])
		if err == nil {
			if pair := utf16.DecodeRune(r, low); pair != utf8.RuneError {
				return pair, 10, nil
			}
		}
	}
	return utf8.RuneError, 4, nil
}

func hex4(s string) (rune, error) {
	if len(s) < 4 {
		return 0, fmt.Errorf("short unicode escape")
	}

	var r rune
	for _, c := range []byte(s[:4]) {
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			r |= rune(c-'A') + 10
		default:
			return 0, fmt.Errorf("invalid unicode escape %q", s[:4])
		}
	}
	return r, nil
}

// document is a value followed by nothing but whitespace.
func document(in *input) vparse.Result[byte, interface{}] {
	return vparse.Bind(Parse(in), func(in *input, value interface{}) vparse.Result[byte, interface{}] {
		return closingEOF(in, value)
	})
}

func closingEOF(in *input, value interface{}) vparse.Result[byte, interface{}] {
	return vparse.Then(vparse.SkipWhitespace(in), func(in *input) vparse.Result[byte, interface{}] {
		return vparse.Map(vparse.EOF(in), func(struct{}) interface{} {
			return value
		})
	})
}

// ParseDocument parses data which must hold exactly one JSON value.
func ParseDocument(data []byte) (interface{}, error) {
	value, _, err := vparse.ParseOnly(document, data)
	if err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	return value, nil
}
