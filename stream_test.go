package vparse

import (
	"errors"
	"testing"

	assert "github.com/stretchr/testify/assert"
)

// Feeding data in pieces gives the same value as parsing it in one go.
func TestStreamPieces(t *testing.T) {
	stream := NewStream(Decimal[uint32])

	stream.Fill([]byte("12"))
	assert.True(t, stream.Parse().IsIncomplete())

	stream.Fill([]byte("3"))
	assert.True(t, stream.Parse().IsIncomplete())

	stream.Close()
	value, err := stream.Parse().Unpack()
	assert.NoError(t, err)

	expected, _, err := ParseOnly(Decimal[uint32], []byte("123"))
	assert.NoError(t, err)
	assert.Equal(t, expected, value)
	assert.Equal(t, uint32(123), value)
}

func TestStreamValues(t *testing.T) {
	stream := NewStream(func(in *Input[byte]) Result[byte, uint32] {
		return Then(SkipWhitespace(in), Decimal[uint32])
	})

	// Compact after every value.
	stream.compactAt = 1

	stream.Fill([]byte("1 22 3"))

	value, err := stream.Parse().Unpack()
	assert.NoError(t, err)
	assert.Equal(t, uint32(1), value)
	assert.Equal(t, 1, stream.Input().Offset())

	value, err = stream.Parse().Unpack()
	assert.NoError(t, err)
	assert.Equal(t, uint32(22), value)
	assert.Equal(t, 4, stream.Input().Offset())

	// The last number may still grow.
	assert.True(t, stream.Parse().IsIncomplete())
	assert.Equal(t, 4, stream.Input().Offset())

	stream.Fill([]byte("4"))
	stream.Close()

	value, err = stream.Parse().Unpack()
	assert.NoError(t, err)
	assert.Equal(t, uint32(34), value)
	assert.Equal(t, 7, stream.Input().Offset())

	_, err = stream.Parse().Unpack()
	assert.True(t, errors.Is(err, ErrEndOfInput))
}
