package vparse

import (
	"errors"
	"testing"

	assert "github.com/stretchr/testify/assert"
)

func TestLeb128(t *testing.T) {
	for _, test_case := range []struct {
		input    []byte
		expected uint64
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x7f}, 127},
		{[]byte{0x80, 0x01}, 128},
		{[]byte{0xe5, 0x8e, 0x26}, 624485},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01},
			0xffffffffffffffff},
	} {
		in := NewInput(test_case.input)
		value, err := Leb128(in).Unpack()
		assert.NoError(t, err)
		assert.Equal(t, test_case.expected, value)
		assert.Equal(t, len(test_case.input), in.Offset())
	}
}

func TestSleb128(t *testing.T) {
	for _, test_case := range []struct {
		input    []byte
		expected int64
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x02}, 2},
		{[]byte{0x7f}, -1},
		{[]byte{0x80, 0x7f}, -128},
		{[]byte{0xc0, 0xbb, 0x78}, -123456},
	} {
		value, _, err := ParseOnly(Sleb128, test_case.input)
		assert.NoError(t, err)
		assert.Equal(t, test_case.expected, value)
	}
}

func TestVarIntErrors(t *testing.T) {
	// Too long for 64 bits.
	long := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01}
	_, _, err := ParseOnly(Leb128, long)
	assert.True(t, errors.Is(err, ErrOverflow))

	// Truncated.
	_, _, err = ParseOnly(Sleb128, []byte{0x80})
	assert.True(t, errors.Is(err, ErrEndOfInput))

	// A stream waits for the last byte.
	in := NewStreamInput[byte]()
	in.Fill([]byte{0xe5, 0x8e})
	assert.True(t, Leb128(in).IsIncomplete())
	assert.Equal(t, 0, in.Offset())

	in.Fill([]byte{0x26})
	value, err := Leb128(in).Unpack()
	assert.NoError(t, err)
	assert.Equal(t, uint64(624485), value)
}
