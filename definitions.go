package vparse

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Velocidex/ordereddict"
	"github.com/Velocidex/yaml"
)

type FieldDefinition struct {
	Name string

	// Name of the type of parser in this field.
	Type string

	// Options to the type
	Options *ordereddict.Dict
}

// RecordDefinition describes a record as [name, separator, fields]
// where each field is [name, type, options?].
type RecordDefinition struct {
	Name      string
	Separator string
	Fields    []*FieldDefinition
}

func (self *RecordDefinition) UnmarshalYAML(unmarshal func(v interface{}) error) error {
	var values []interface{}
	err := unmarshal(&values)
	if err != nil {
		return err
	}
	return self.fromList(values)
}

func (self *RecordDefinition) UnmarshalJSON(p []byte) error {
	var values []interface{}
	if err := json.Unmarshal(p, &values); err != nil {
		return err
	}
	return self.fromList(values)
}

func (self *RecordDefinition) fromList(values []interface{}) error {
	if len(values) != 3 {
		return errors.New("Record definition should be [name, separator, fields]")
	}

	ok := false
	self.Name, ok = values[0].(string)
	if !ok {
		return errors.New("Name should be a string")
	}

	if values[1] != nil {
		self.Separator, ok = values[1].(string)
		if !ok {
			return fmt.Errorf("%v: separator should be a string", self.Name)
		}
	}

	fields, ok := values[2].([]interface{})
	if !ok {
		return fmt.Errorf("%v: fields should be a list of field definitions", self.Name)
	}

	for _, field_def := range fields {
		field, ok := field_def.([]interface{})
		if !ok || (len(field) != 2 && len(field) != 3) {
			return fmt.Errorf("%v: field definition should be [name, type, options?]",
				self.Name)
		}

		new_field := &FieldDefinition{}
		new_field.Name, ok = field[0].(string)
		if !ok {
			return fmt.Errorf("%v: field name should be a string", self.Name)
		}

		new_field.Type, ok = field[1].(string)
		if !ok {
			return fmt.Errorf("%v: field %v type should be a string",
				self.Name, new_field.Name)
		}

		if len(field) == 3 {
			new_field.Options, ok = to_ordereddict(field[2]).(*ordereddict.Dict)
			if !ok {
				return fmt.Errorf("%v: field %v options should be a map",
					self.Name, new_field.Name)
			}
		}
		self.Fields = append(self.Fields, new_field)
	}

	return nil
}

// ParseDefinitions adds the records given as a YAML (or JSON) list of
// record definitions, e.g.
//
//	- [Point, ",", [[X, int64], [Y, int64]]]
func (self *Profile) ParseDefinitions(definitions string) error {
	var records []*RecordDefinition

	err := yaml.Unmarshal([]byte(definitions), &records)
	if err != nil {
		return err
	}

	return self.AddDefinitions(records)
}

// AddDefinitions registers a record parser for every definition.
// Records may refer to each other in any order. Either all records
// are added or, on error, the profile is left as it was.
func (self *Profile) AddDefinitions(records []*RecordDefinition) error {
	previous := make(map[string]*profileEntry)
	parsers := make([]*RecordParser, 0, len(records))
	for _, record := range records {
		if _, seen := previous[record.Name]; !seen {
			previous[record.Name] = self.types[record.Name]
		}

		parser := NewRecordParser(record.Name, record.Separator)
		self.AddParser(record.Name,
			fmt.Sprintf("record with %d fields", len(record.Fields)), parser.Parse)
		parsers = append(parsers, parser)
	}

	for i, record := range records {
		for _, field := range record.Fields {
			field_parser, err := self.NewParser(field.Type, field.Options)
			if err != nil {
				self.restore(previous)
				return fmt.Errorf("record %v field %v: %w", record.Name, field.Name, err)
			}
			parsers[i].AddField(field.Name, field_parser, self.isComputed(field.Type))
		}
	}

	return nil
}

func (self *Profile) restore(previous map[string]*profileEntry) {
	for name, entry := range previous {
		if entry == nil {
			delete(self.types, name)
		} else {
			self.types[name] = entry
		}
	}
}
