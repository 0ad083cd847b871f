package vparse

import (
	"fmt"

	"github.com/Velocidex/ordereddict"
)

type BitFieldOptions struct {
	Type     string `vfilter:"required,field=type"`
	StartBit int64  `vfilter:"optional,field=start_bit"`
	EndBit   int64  `vfilter:"optional,field=end_bit"`
}

// BitField extracts bits [start_bit, end_bit) of an integer.
type BitField struct {
	options BitFieldOptions
	parser  FieldParser
}

func NewBitFieldParser(profile *Profile, options *ordereddict.Dict) (FieldParser, error) {
	result := &BitField{}
	err := ParseOptions(options, &result.options)
	if err != nil {
		return nil, fmt.Errorf("BitField: %w", err)
	}

	if result.options.StartBit < 0 {
		result.options.StartBit = 0
	}
	if result.options.EndBit <= 0 || result.options.EndBit > 64 {
		result.options.EndBit = 64
	}

	result.parser, err = profile.NewParser(result.options.Type, nil)
	if err != nil {
		return nil, err
	}

	return result.Parse, nil
}

func (self *BitField) Parse(in *Input[byte], this *ordereddict.Dict) Result[byte, any] {
	return Map(self.parser(in, this), func(value any) any {
		value_int, ok := to_int64(value)
		if !ok {
			return int64(0)
		}

		result := int64(0)
		for i := self.options.StartBit; i < self.options.EndBit; i++ {
			result |= value_int & (1 << uint8(i))
		}
		return result >> self.options.StartBit
	})
}
