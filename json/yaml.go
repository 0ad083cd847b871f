package json

import (
	"github.com/Velocidex/ordereddict"
	"github.com/Velocidex/yaml"
)

// ToYAML renders a parsed document as YAML, keeping object keys in
// document order.
func ToYAML(value interface{}) ([]byte, error) {
	return yaml.Marshal(to_yaml(value))
}

func to_yaml(value interface{}) interface{} {
	switch t := value.(type) {
	case *ordereddict.Dict:
		result := yaml.MapSlice{}
		for _, k := range t.Keys() {
			v, _ := t.Get(k)
			result = append(result, yaml.MapItem{Key: k, Value: to_yaml(v)})
		}
		return result

	case []interface{}:
		result := make([]interface{}, 0, len(t))
		for _, item := range t {
			result = append(result, to_yaml(item))
		}
		return result

	default:
		return value
	}
}
