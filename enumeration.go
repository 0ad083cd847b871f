package vparse

import (
	"fmt"
	"strconv"

	"github.com/Velocidex/ordereddict"
)

type EnumerationParserOptions struct {
	Type        string            `vfilter:"required,field=type"`
	TypeOptions *ordereddict.Dict `vfilter:"optional,field=type_options"`

	// choices maps numbers to names, map names to numbers.
	Choices *ordereddict.Dict `vfilter:"optional,field=choices"`
	Map     *ordereddict.Dict `vfilter:"optional,field=map"`
}

// EnumerationParser parses an integer and returns its name. Values
// without a name are rendered in hex.
type EnumerationParser struct {
	options EnumerationParserOptions
	choices map[int64]string
	parser  FieldParser
}

func NewEnumerationParser(profile *Profile, options *ordereddict.Dict) (FieldParser, error) {
	result := &EnumerationParser{choices: make(map[int64]string)}
	err := ParseOptions(options, &result.options)
	if err != nil {
		return nil, fmt.Errorf("Enumeration: %w", err)
	}

	if result.options.Choices != nil {
		for _, k := range result.options.Choices.Keys() {
			v, _ := result.options.Choices.Get(k)
			i, err := strconv.ParseInt(k, 0, 64)
			if err != nil {
				return nil, fmt.Errorf("Enumeration: choices should map numbers to strings (not %v)", k)
			}

			v_str, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("Enumeration: choices should map numbers to strings")
			}
			result.choices[i] = v_str
		}
	}

	if result.options.Map != nil {
		for _, k := range result.options.Map.Keys() {
			v, _ := result.options.Map.Get(k)
			v_int, ok := to_int64(v)
			if !ok {
				return nil, fmt.Errorf("Enumeration: map should map strings to numbers")
			}
			result.choices[v_int] = k
		}
	}

	result.parser, err = profile.NewParser(result.options.Type, result.options.TypeOptions)
	if err != nil {
		return nil, err
	}

	return result.Parse, nil
}

func (self *EnumerationParser) Parse(in *Input[byte], this *ordereddict.Dict) Result[byte, any] {
	return Map(self.parser(in, this), func(value any) any {
		value_int, ok := to_int64(value)
		if !ok {
			return value
		}

		name, pres := self.choices[value_int]
		if !pres {
			return fmt.Sprintf("%#x", value_int)
		}
		return name
	})
}
