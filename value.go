package vparse

import (
	"fmt"

	"github.com/Velocidex/ordereddict"
	"www.velocidex.com/golang/vfilter"
)

type ValueParserOptions struct {
	Value      interface{} `vfilter:"required,field=value,lambda=Expression"`
	Expression *vfilter.Lambda
}

// A ValueParser consumes nothing. It either returns a static value or
// evaluates a lambda over the fields of the record parsed so far.
type ValueParser struct {
	options ValueParserOptions
	profile *Profile
}

func NewValueParser(profile *Profile, options *ordereddict.Dict) (FieldParser, error) {
	result := &ValueParser{profile: profile}
	err := ParseOptions(options, &result.options)
	if err != nil {
		return nil, fmt.Errorf("Value: %w", err)
	}

	return result.Parse, nil
}

func (self *ValueParser) Parse(in *Input[byte], this *ordereddict.Dict) Result[byte, any] {
	if self.options.Expression != nil {
		return Ret[byte, any](in, self.profile.evalLambda(self.options.Expression, this))
	}
	return Ret(in, self.options.Value)
}
