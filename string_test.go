package vparse

import (
	"testing"

	assert "github.com/stretchr/testify/assert"
)

func TestQuotedString(t *testing.T) {
	in := NewInput([]byte(`"a\"b\nc\\" rest`))
	value, err := QuotedString(in, '"', '\\').Unpack()
	assert.NoError(t, err)
	assert.Equal(t, "a\"b\nc\\", value)
	assert.Equal(t, 11, in.Offset())

	value, err = QuotedString(NewInput([]byte(`'it^'s'`)), '\'', '^').Unpack()
	assert.NoError(t, err)
	assert.Equal(t, "it's", value)

	value, err = QuotedString(NewInput([]byte(`""`)), '"', '\\').Unpack()
	assert.NoError(t, err)
	assert.Equal(t, "", value)
}

func TestQuotedStringErrors(t *testing.T) {
	for _, input := range []string{`"abc`, `abc"`, `"abc\"`, ""} {
		in := NewInput([]byte(input))
		_, err := QuotedString(in, '"', '\\').Unpack()
		assert.Error(t, err, input)
		assert.Equal(t, 0, in.Offset(), input)
	}

	in := NewStreamInput[byte]()
	in.Fill([]byte(`"ab`))
	assert.True(t, RunParser(in, func(in *Input[byte]) Result[byte, string] {
		return QuotedString(in, '"', '\\')
	}).IsIncomplete())
	assert.Equal(t, 0, in.Offset())
}
