package vparse

import (
	"fmt"
	"strings"

	"github.com/Velocidex/ordereddict"
)

type recordField struct {
	name   string
	parser FieldParser

	// Computed fields consume nothing so no separator precedes them.
	computed bool
}

// A RecordParser parses a fixed sequence of named fields into an
// ordered dict. Consecutive fields are separated by the separator
// with optional whitespace around it. Fields whose name starts with
// "__" are parsed but left out of the result.
type RecordParser struct {
	type_name string
	separator []byte

	// Maintain the order of the fields.
	fields []*recordField
}

func NewRecordParser(type_name string, separator string) *RecordParser {
	return &RecordParser{
		type_name: type_name,
		separator: []byte(separator),
	}
}

func (self *RecordParser) AddField(field_name string, parser FieldParser, computed bool) {
	self.fields = append(self.fields, &recordField{
		name:     field_name,
		parser:   parser,
		computed: computed,
	})
}

// skipSeparator skips whitespace, then separator if there is one,
// then more whitespace.
func skipSeparator(in *Input[byte], separator []byte) Result[byte, struct{}] {
	r := SkipWhitespace(in)
	if len(separator) == 0 {
		return r
	}

	return Then(r, func(in *Input[byte]) Result[byte, struct{}] {
		sep := Map(String(in, separator), discard[Buffer[byte]])
		return Then(sep, SkipWhitespace)
	})
}

func (self *RecordParser) Parse(in *Input[byte]) Result[byte, any] {
	mark := in.Mark()
	this := ordereddict.NewDict()
	started := false

	for _, field := range self.fields {
		if started && !field.computed {
			sep := skipSeparator(in, self.separator)
			if sep.state != StateData {
				return self.fail(in, mark, field, propagate[byte, struct{}, any](sep))
			}
		}

		r := field.parser(in, this)
		if r.state != StateData {
			return self.fail(in, mark, field, r)
		}

		this.Set(field.name, r.value)
		started = started || !field.computed
	}

	return Ret[byte, any](in, self.output(this))
}

func (self *RecordParser) fail(in *Input[byte], mark Mark,
	field *recordField, r Result[byte, any]) Result[byte, any] {
	if r.state == StateError {
		in.Restore(mark)
		r.err = fmt.Errorf("%v.%v: %w", self.type_name, field.name, r.err)
	}
	return r
}

func (self *RecordParser) output(this *ordereddict.Dict) *ordereddict.Dict {
	result := ordereddict.NewDict()
	for _, field := range self.fields {
		if strings.HasPrefix(field.name, "__") {
			continue
		}
		value, _ := this.Get(field.name)
		result.Set(field.name, value)
	}
	return result
}
