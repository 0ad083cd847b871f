package vparse

import (
	"errors"
	"math"
	"strconv"
	"testing"

	assert "github.com/stretchr/testify/assert"
)

const pi = "3.14159265358979323846264338327950288419716939937510582097494459"

// Conversion must agree exactly with strconv.
func TestFloatMatchesStrconv(t *testing.T) {
	for _, literal := range []string{
		pi, "0", "-0.5", "1e10", "2.5E-3", "+7", "123456789012345678901234567890",
		"4.9406564584124654e-324", "1.7976931348623157e308",
	} {
		expected, err := strconv.ParseFloat(literal, 64)
		assert.NoError(t, err)

		value, err := Float[float64](NewInput([]byte(literal))).Unpack()
		assert.NoError(t, err, literal)
		assert.Equal(t, expected, value, literal)
	}

	expected, _ := strconv.ParseFloat(pi, 32)
	value, err := Float[float32](NewInput([]byte(pi))).Unpack()
	assert.NoError(t, err)
	assert.Equal(t, float32(expected), value)
}

// Partially matching optional parts are given back.
func TestFloatLongestMatch(t *testing.T) {
	for _, test_case := range []struct {
		input    string
		expected string
	}{
		{"1.e5", "1"},
		{"1e", "1"},
		{"1e+", "1"},
		{"1.5x", "1.5"},
		{"-2.5e-3;", "-2.5e-3"},
	} {
		in := NewInput([]byte(test_case.input))
		buf, err := MatchFloat(in).Unpack()
		assert.NoError(t, err, test_case.input)
		assert.Equal(t, test_case.expected, BufferString(buf), test_case.input)
		assert.Equal(t, len(test_case.expected), in.Offset(), test_case.input)
	}
}

func TestFloatErrors(t *testing.T) {
	for _, input := range []string{"", "x", ".5", "-", "+e5"} {
		in := NewInput([]byte(input))
		_, err := Float[float64](in).Unpack()
		assert.Error(t, err, input)
		assert.Equal(t, 0, in.Offset(), input)
	}

	in := NewInput([]byte("1e400"))
	_, err := Float[float64](in).Unpack()
	assert.True(t, errors.Is(err, ErrOverflow))
	assert.Equal(t, 0, in.Offset())

	_, err = Float[float32](NewInput([]byte("1e39"))).Unpack()
	assert.True(t, errors.Is(err, ErrOverflow))

	value, err := Float[float64](NewInput([]byte("1e308"))).Unpack()
	assert.NoError(t, err)
	assert.False(t, math.IsInf(value, 0))
}

func TestFloatStream(t *testing.T) {
	in := NewStreamInput[byte]()
	in.Fill([]byte("1."))
	assert.True(t, RunParser(in, Float[float64]).IsIncomplete())
	assert.Equal(t, 0, in.Offset())

	in.Fill([]byte("25"))
	assert.True(t, RunParser(in, Float[float64]).IsIncomplete())

	in.Close()
	value, err := RunParser(in, Float[float64]).Unpack()
	assert.NoError(t, err)
	assert.Equal(t, 1.25, value)
}
