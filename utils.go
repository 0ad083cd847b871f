package vparse

import (
	"context"
	"fmt"
	"math/big"
	"sort"

	"github.com/Velocidex/ordereddict"
	"www.velocidex.com/golang/vfilter"
)

func to_int64(x interface{}) (int64, bool) {
	switch t := x.(type) {
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case int:
		return int64(t), true
	case uint8:
		return int64(t), true
	case int8:
		return int64(t), true
	case uint16:
		return int64(t), true
	case int16:
		return int64(t), true
	case uint32:
		return int64(t), true
	case int32:
		return int64(t), true
	case uint64:
		return int64(t), true
	case int64:
		return t, true
	case float32:
		return int64(t), true
	case float64:
		return int64(t), true
	case *big.Int:
		if t.IsInt64() {
			return t.Int64(), true
		}
		return 0, false

	default:
		return 0, false
	}
}

// evalLambda calls expression with a single argument, usually the
// record parsed so far.
func (self *Profile) evalLambda(expression *vfilter.Lambda, this vfilter.Any) vfilter.Any {
	return expression.Reduce(context.Background(), self.scope, []vfilter.Any{this})
}

func (self *Profile) evalLambdaAsInt64(expression *vfilter.Lambda, this vfilter.Any) int64 {
	result, _ := to_int64(self.evalLambda(expression, this))
	return result
}

// to_ordereddict converts the maps produced by the YAML and JSON
// decoders into ordered dicts, recursively.
func to_ordereddict(value interface{}) interface{} {
	switch t := value.(type) {
	case map[interface{}]interface{}:
		keys := make([]string, 0, len(t))
		values := make(map[string]interface{})
		for k, v := range t {
			key := fmt.Sprint(k)
			keys = append(keys, key)
			values[key] = v
		}
		sort.Strings(keys)

		result := ordereddict.NewDict()
		for _, k := range keys {
			result.Set(k, to_ordereddict(values[k]))
		}
		return result

	case map[string]interface{}:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		result := ordereddict.NewDict()
		for _, k := range keys {
			result.Set(k, to_ordereddict(t[k]))
		}
		return result

	case []interface{}:
		result := make([]interface{}, 0, len(t))
		for _, item := range t {
			result = append(result, to_ordereddict(item))
		}
		return result
	}

	return value
}
