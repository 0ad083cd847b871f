package json

import (
	"strconv"
	"strings"

	"www.velocidex.com/golang/vfilter"
)

// ListAssociative lets dotted paths index into JSON arrays, e.g.
// "items.0.name". Negative indexes count from the end.
type ListAssociative struct{}

func (self ListAssociative) Applicable(a vfilter.Any, b vfilter.Any) bool {
	_, ok := a.([]interface{})
	if !ok {
		return false
	}
	_, ok = b.(string)
	return ok
}

func (self ListAssociative) Associative(scope vfilter.Scope,
	a vfilter.Any, b vfilter.Any) (vfilter.Any, bool) {
	lhs, ok := a.([]interface{})
	if !ok {
		return vfilter.Null{}, false
	}

	rhs, ok := b.(string)
	if !ok {
		return vfilter.Null{}, false
	}

	idx, err := strconv.Atoi(rhs)
	if err != nil {
		return vfilter.Null{}, false
	}

	if idx < 0 {
		idx += len(lhs)
	}
	if idx < 0 || idx >= len(lhs) {
		return vfilter.Null{}, false
	}
	return lhs[idx], true
}

func (self ListAssociative) GetMembers(scope vfilter.Scope, a vfilter.Any) []string {
	lhs, ok := a.([]interface{})
	if !ok {
		return nil
	}

	result := make([]string, 0, len(lhs))
	for i := range lhs {
		result = append(result, strconv.Itoa(i))
	}
	return result
}

func MakeScope() vfilter.Scope {
	result := vfilter.NewScope()
	result.AddProtocolImpl(&ListAssociative{})
	return result
}

// Lookup follows a dotted path of object keys and array indexes
// through a parsed document. The bool is false when some component of
// the path does not exist.
func Lookup(scope vfilter.Scope, value interface{}, path string) (interface{}, bool) {
	var result vfilter.Any = value
	if path == "" {
		return result, true
	}

	for _, item := range strings.Split(path, ".") {
		next, ok := scope.Associative(result, item)
		if !ok {
			return vfilter.Null{}, false
		}
		result = next
	}
	return result, true
}
