package vparse

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/Velocidex/ordereddict"
	"www.velocidex.com/golang/vfilter"
)

// Option structs tag their fields with this name, e.g.
// `vfilter:"required,field=type"`. A "lambda=Other" directive stores a
// string which looks like a lambda in the field named Other instead.
const tagName = "vfilter"

var (
	lambdaRegex = regexp.MustCompile("^[a-zA-Z0-9_]+ *=>")
)

func getTag(field reflect.StructField) map[string]string {
	tag := field.Tag.Get(tagName)
	if tag == "" || tag == "-" {
		return nil
	}

	options := make(map[string]string)
	for _, directive := range strings.Split(tag, ",") {
		components := strings.SplitN(directive, "=", 2)
		if len(components) == 2 {
			options[components[0]] = components[1]
		} else {
			options[directive] = "Y"
		}
	}

	return options
}

func isFieldLambda(value interface{}) bool {
	str, ok := value.(string)
	return ok && lambdaRegex.MatchString(str)
}

// ParseOptions copies the options given to a field into the tagged
// fields of target, which must point to a struct. Unknown options are
// an error.
func ParseOptions(args *ordereddict.Dict, target interface{}) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return errors.New("Only structs can be set with ParseOptions()")
	}
	v = v.Elem()
	t := v.Type()

	if args == nil {
		args = ordereddict.NewDict()
	}

	unused := make(map[string]bool)
	for _, k := range args.Keys() {
		unused[k] = true
	}

	for i := 0; i < t.NumField(); i++ {
		field_type := t.Field(i)
		options := getTag(field_type)
		if options == nil {
			continue
		}

		field_name, pres := options["field"]
		if !pres {
			field_name = field_type.Name
		}

		field_data, pres := args.Get(field_name)
		if !pres {
			if _, required := options["required"]; required {
				return fmt.Errorf("option %v is required", field_name)
			}
			continue
		}
		delete(unused, field_name)

		if target_field, pres := options["lambda"]; pres && isFieldLambda(field_data) {
			lambda, err := vfilter.ParseLambda(field_data.(string))
			if err != nil {
				return fmt.Errorf("option %v: %w", field_name, err)
			}
			v.FieldByName(target_field).Set(reflect.ValueOf(lambda))
			continue
		}

		if err := setOption(v.Field(i), field_name, field_data); err != nil {
			return err
		}
	}

	if len(unused) > 0 {
		var extras []string
		for k := range unused {
			extras = append(extras, k)
		}
		return fmt.Errorf("unexpected options: %v", strings.Join(extras, ", "))
	}

	return nil
}

var (
	dictType   = reflect.TypeOf((*ordereddict.Dict)(nil))
	lambdaType = reflect.TypeOf((*vfilter.Lambda)(nil))
)

func setOption(field_value reflect.Value, field_name string, field_data interface{}) error {
	switch {
	case field_value.Kind() == reflect.String:
		str, ok := field_data.(string)
		if !ok {
			return fmt.Errorf("option %v: expecting a string not %T", field_name, field_data)
		}
		field_value.SetString(str)

	case field_value.Kind() == reflect.Int64:
		a, ok := to_int64(field_data)
		if !ok {
			return fmt.Errorf("option %v: expecting an integer not %T", field_name, field_data)
		}
		field_value.SetInt(a)

	case field_value.Kind() == reflect.Bool:
		a, ok := to_int64(field_data)
		if !ok {
			return fmt.Errorf("option %v: expecting a bool not %T", field_name, field_data)
		}
		field_value.SetBool(a > 0)

	case field_value.Type() == dictType:
		dict, ok := field_data.(*ordereddict.Dict)
		if !ok {
			return fmt.Errorf("option %v: expecting a mapping not %T", field_name, field_data)
		}
		field_value.Set(reflect.ValueOf(dict))

	case field_value.Type() == lambdaType:
		str, ok := field_data.(string)
		if !ok {
			return fmt.Errorf("option %v: expecting a lambda not %T", field_name, field_data)
		}
		lambda, err := vfilter.ParseLambda(str)
		if err != nil {
			return fmt.Errorf("option %v: %w", field_name, err)
		}
		field_value.Set(reflect.ValueOf(lambda))

	case field_value.Kind() == reflect.Interface:
		if field_data != nil {
			field_value.Set(reflect.ValueOf(field_data))
		}

	default:
		return fmt.Errorf("option %v: unsupported field type %v",
			field_name, field_value.Type())
	}

	return nil
}
