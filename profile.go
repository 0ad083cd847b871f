package vparse

import (
	"fmt"
	"sort"

	"github.com/Velocidex/ordereddict"
	"www.velocidex.com/golang/vfilter"
)

// FieldParser parses one field of a record. this holds the fields of
// the enclosing record parsed so far; it is empty outside a record.
type FieldParser func(in *Input[byte], this *ordereddict.Dict) Result[byte, any]

// A ParserFactory builds a parser from the options given to a field in
// a record definition.
type ParserFactory func(profile *Profile, options *ordereddict.Dict) (FieldParser, error)

type profileEntry struct {
	description string
	parser      Parser[byte, any]
	factory     ParserFactory

	// The parser derives its value without consuming input.
	computed bool
}

// A Profile is a registry of named byte parsers. It lets callers pick
// a parser at runtime, e.g. from a command line flag or a record
// definition.
type Profile struct {
	types map[string]*profileEntry

	// Evaluates lambdas found in record definitions.
	scope vfilter.Scope
}

func NewProfile() *Profile {
	result := Profile{
		types: make(map[string]*profileEntry),
		scope: vfilter.NewScope(),
	}

	return &result
}

// Erase hides the value type of a parser so it can be stored in a
// Profile.
func Erase[I comparable, T any](parser Parser[I, T]) Parser[I, any] {
	return func(in *Input[I]) Result[I, any] {
		return Map(parser(in), func(value T) any {
			return value
		})
	}
}

func (self *Profile) AddParser(type_name, description string, parser Parser[byte, any]) {
	self.types[type_name] = &profileEntry{
		description: description,
		parser:      parser,
	}
}

// AddFactory registers a type which takes options.
func (self *Profile) AddFactory(type_name, description string, factory ParserFactory) {
	self.types[type_name] = &profileEntry{
		description: description,
		factory:     factory,
	}
}

// AddComputed registers a factory whose parsers never consume input.
// Records expect no separator in front of such fields.
func (self *Profile) AddComputed(type_name, description string, factory ParserFactory) {
	self.types[type_name] = &profileEntry{
		description: description,
		factory:     factory,
		computed:    true,
	}
}

// AddAlias makes an existing parser available under another name.
func (self *Profile) AddAlias(alias, type_name string) {
	entry, pres := self.types[type_name]
	if pres {
		self.types[alias] = entry
	}
}

func (self *Profile) getEntry(type_name string) (*profileEntry, error) {
	entry, pres := self.types[type_name]
	if !pres {
		return nil, fmt.Errorf("%w: %v", ErrUnknownParser, type_name)
	}
	return entry, nil
}

// GetParser returns the parser registered as type_name. Types which
// take options are built without any.
func (self *Profile) GetParser(type_name string) (Parser[byte, any], error) {
	entry, err := self.getEntry(type_name)
	if err != nil {
		return nil, err
	}

	if entry.parser != nil {
		return entry.parser, nil
	}

	field_parser, err := entry.factory(self, nil)
	if err != nil {
		return nil, err
	}

	return func(in *Input[byte]) Result[byte, any] {
		return field_parser(in, ordereddict.NewDict())
	}, nil
}

// NewParser builds a field parser for type_name with options.
// Options are ignored by types which do not take any.
func (self *Profile) NewParser(type_name string, options *ordereddict.Dict) (FieldParser, error) {
	entry, err := self.getEntry(type_name)
	if err != nil {
		return nil, err
	}

	if entry.factory != nil {
		return entry.factory(self, options)
	}

	parser := entry.parser
	return func(in *Input[byte], this *ordereddict.Dict) Result[byte, any] {
		return parser(in)
	}, nil
}

func (self *Profile) isComputed(type_name string) bool {
	entry, pres := self.types[type_name]
	return pres && entry.computed
}

// Names returns the registered names in sorted order.
func (self *Profile) Names() []string {
	result := make([]string, 0, len(self.types))
	for k := range self.types {
		result = append(result, k)
	}
	sort.Strings(result)
	return result
}

// Describe maps each registered name to its description.
func (self *Profile) Describe() *ordereddict.Dict {
	result := ordereddict.NewDict()
	for _, name := range self.Names() {
		result.Set(name, self.types[name].description)
	}
	return result
}

// Parse runs the named parser once over data.
func (self *Profile) Parse(type_name string, data []byte) (interface{}, error) {
	parser, err := self.GetParser(type_name)
	if err != nil {
		return nil, err
	}

	value, _, err := ParseOnly(parser, data)
	return value, err
}

// ParseAll parses whitespace separated values of the named type
// until the end of data.
func (self *Profile) ParseAll(type_name string, data []byte) ([]interface{}, error) {
	parser, err := self.GetParser(type_name)
	if err != nil {
		return nil, err
	}

	value, _, err := ParseOnly(ValuesOf(parser), data)
	return value, err
}

// ValuesOf builds a parser for whitespace separated values of item
// followed by the end of the input.
func ValuesOf[T any](item Parser[byte, T]) Parser[byte, []T] {
	value := func(in *Input[byte]) Result[byte, T] {
		return Then(SkipWhitespace(in), item)
	}

	return func(in *Input[byte]) Result[byte, []T] {
		return Bind(Many(in, value), func(in *Input[byte], values []T) Result[byte, []T] {
			return Then(SkipWhitespace(in), func(in *Input[byte]) Result[byte, []T] {
				return Map(EOF(in), func(struct{}) []T {
					return values
				})
			})
		})
	}
}
