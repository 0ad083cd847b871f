package vparse

import (
	"errors"
	"math/big"
	"testing"

	"github.com/sebdah/goldie"
	assert "github.com/stretchr/testify/assert"
)

func TestProfileDescribe(t *testing.T) {
	profile := NewProfile()
	AddModel(profile)

	goldie.Assert(t, "TestProfileDescribe", []byte(StringIndent(profile.Describe())))
}

func TestProfileParse(t *testing.T) {
	profile := NewProfile()
	AddModel(profile)

	for _, test_case := range []struct {
		type_name string
		input     string
		expected  interface{}
	}{
		{"uint8", "255", uint8(255)},
		{"unsigned char", "7", uint8(7)},
		{"int", "-5", int32(-5)},
		{"char", "-128", int8(-128)},
		{"unsigned long long", "578437695752307201", uint64(0x0807060504030201)},
		{"double", "0.1", 0.1},
		{"float32", "0.5", float32(0.5)},
		{"float", "1.5e3x", "1.5e3"},
		{"word", "abc123 def", "abc123"},
		{"quoted", `"a\tb"`, "a\tb"},
	} {
		value, err := profile.Parse(test_case.type_name, []byte(test_case.input))
		assert.NoError(t, err, test_case.type_name)
		assert.Equal(t, test_case.expected, value, test_case.type_name)
	}

	value, err := profile.Parse("bigint", []byte("99999999999999999999999"))
	assert.NoError(t, err)
	big_value, ok := value.(*big.Int)
	assert.True(t, ok)
	assert.Equal(t, "99999999999999999999999", big_value.String())

	_, err = profile.Parse("uint8", []byte("256"))
	assert.True(t, errors.Is(err, ErrOverflow))
}

func TestProfileUnknown(t *testing.T) {
	profile := NewProfile()
	AddModel(profile)

	_, err := profile.Parse("nope", []byte("1"))
	assert.True(t, errors.Is(err, ErrUnknownParser))
	assert.Equal(t, "parser not found: nope", err.Error())

	// Aliases of unknown types are ignored.
	profile.AddAlias("other", "nope")
	_, err = profile.GetParser("other")
	assert.Error(t, err)
}

func TestProfileParseAll(t *testing.T) {
	profile := NewProfile()
	AddModel(profile)

	values, err := profile.ParseAll("int8", []byte(" 1 -2\n  3 "))
	assert.NoError(t, err)
	assert.Equal(t, []interface{}{int8(1), int8(-2), int8(3)}, values)

	values, err = profile.ParseAll("int8", []byte(""))
	assert.NoError(t, err)
	assert.Empty(t, values)

	_, err = profile.ParseAll("int8", []byte("1 2 x"))
	assert.Error(t, err)
}
