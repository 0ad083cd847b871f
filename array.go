package vparse

import (
	"fmt"

	"github.com/Velocidex/ordereddict"
	"www.velocidex.com/golang/vfilter"
)

type ArrayParserOptions struct {
	Type        string            `vfilter:"required,field=type"`
	TypeOptions *ordereddict.Dict `vfilter:"optional,field=type_options"`

	// Either a fixed number or a lambda over the enclosing record.
	Count           int64 `vfilter:"optional,field=count,lambda=CountExpression"`
	CountExpression *vfilter.Lambda

	MaxCount  int64  `vfilter:"optional,field=max_count"`
	Separator string `vfilter:"optional,field=separator"`

	// Stop at the first element for which this is true. The element
	// is consumed but not included.
	SentinelExpression *vfilter.Lambda `vfilter:"optional,field=sentinel"`
}

// ArrayParser parses a list of elements. With a count exactly that
// many elements must match; without one, elements are collected
// until one fails to parse.
type ArrayParser struct {
	options ArrayParserOptions
	profile *Profile
	parser  FieldParser
}

func NewArrayParser(profile *Profile, options *ordereddict.Dict) (FieldParser, error) {
	result := &ArrayParser{profile: profile}
	err := ParseOptions(options, &result.options)
	if err != nil {
		return nil, err
	}

	if result.options.MaxCount == 0 {
		result.options.MaxCount = 1000
	}

	result.parser, err = profile.NewParser(
		result.options.Type, result.options.TypeOptions)
	if err != nil {
		return nil, err
	}

	return result.Parse, nil
}

// getCount returns how many elements to parse and whether that
// number is required.
func (self *ArrayParser) getCount(this *ordereddict.Dict) (int64, bool) {
	result := self.options.Count
	exact := result > 0

	if self.options.CountExpression != nil {
		result = self.profile.evalLambdaAsInt64(self.options.CountExpression, this)
		exact = true
	}

	if !exact {
		result = self.options.MaxCount
	}
	if result < 0 {
		result = 0
	}
	return result, exact
}

func (self *ArrayParser) Parse(in *Input[byte], this *ordereddict.Dict) Result[byte, any] {
	mark := in.Mark()
	count, exact := self.getCount(this)
	if count > self.options.MaxCount {
		return Fail[byte, any](in, fmt.Errorf(
			"count %v exceeds max_count %v", count, self.options.MaxCount))
	}
	separator := []byte(self.options.Separator)
	result := []interface{}{}

	for int64(len(result)) < count {
		item_mark := in.Mark()
		if len(result) > 0 {
			sep := skipSeparator(in, separator)
			if sep.state == StateIncomplete {
				return propagate[byte, struct{}, any](sep)
			}
			if sep.state == StateError {
				if exact {
					in.Restore(mark)
					return propagate[byte, struct{}, any](sep)
				}
				in.Restore(item_mark)
				break
			}
		}

		r := self.parser(in, this)
		if r.state == StateIncomplete {
			return r
		}
		if r.state == StateError {
			if exact {
				in.Restore(mark)
				return r
			}
			in.Restore(item_mark)
			break
		}

		if self.options.SentinelExpression != nil &&
			self.profile.scope.Bool(self.profile.evalLambda(
				self.options.SentinelExpression, r.value)) {
			break
		}

		result = append(result, r.value)
	}

	return Ret[byte, any](in, result)
}
