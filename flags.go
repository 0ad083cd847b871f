package vparse

import (
	"fmt"
	"sort"

	"github.com/Velocidex/ordereddict"
)

// Accepts option bitmap: name (string) -> bit number
type FlagsOptions struct {
	Type        string            `vfilter:"required,field=type"`
	TypeOptions *ordereddict.Dict `vfilter:"optional,field=type_options"`
	Bitmap      *ordereddict.Dict `vfilter:"required,field=bitmap"`
}

// Flags parses an integer and returns the sorted names of its set
// bits.
type Flags struct {
	options FlagsOptions
	bits    []int64
	bitmap  map[int64]string
	parser  FieldParser
}

func NewFlagsParser(profile *Profile, options *ordereddict.Dict) (FieldParser, error) {
	result := &Flags{bitmap: make(map[int64]string)}
	err := ParseOptions(options, &result.options)
	if err != nil {
		return nil, fmt.Errorf("Flags: %w", err)
	}

	for _, name := range result.options.Bitmap.Keys() {
		idx_any, _ := result.options.Bitmap.Get(name)
		idx, ok := to_int64(idx_any)
		if !ok || idx < 0 || idx >= 64 {
			return nil, fmt.Errorf("Flags: bit number for %v should be between 0 and 63", name)
		}

		result.bitmap[int64(1)<<idx] = name
		result.bits = append(result.bits, int64(1)<<idx)
	}

	result.parser, err = profile.NewParser(result.options.Type, result.options.TypeOptions)
	if err != nil {
		return nil, err
	}

	return result.Parse, nil
}

func (self *Flags) Parse(in *Input[byte], this *ordereddict.Dict) Result[byte, any] {
	return Map(self.parser(in, this), func(value any) any {
		result := []string{}

		value_int, ok := to_int64(value)
		if !ok {
			return result
		}

		for _, bit := range self.bits {
			if bit&value_int != 0 {
				result = append(result, self.bitmap[bit])
			}
		}

		// Sort result to maintain stable output.
		sort.Strings(result)
		return result
	})
}
