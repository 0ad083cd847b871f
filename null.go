package vparse

import (
	"github.com/Velocidex/ordereddict"
)

// NewNullParser returns a parser which consumes nothing and always
// produces nil. It serves as a placeholder field.
func NewNullParser(profile *Profile, options *ordereddict.Dict) (FieldParser, error) {
	return func(in *Input[byte], this *ordereddict.Dict) Result[byte, any] {
		return Ret[byte, any](in, nil)
	}, nil
}
