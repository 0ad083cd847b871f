package vparse

import (
	"encoding/json"
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

var dumper = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump renders any value, including parse results, in a form suitable
// for debugging.
func Dump(arg interface{}) string {
	return dumper.Sdump(arg)
}

func Debug(arg interface{}) {
	fmt.Print(Dump(arg))
}

func StringIndent(v interface{}) string {
	result, err := json.MarshalIndent(v, "", " ")
	if err != nil {
		panic(err)
	}
	return string(result)
}

// DebugString describes where the input is and what comes next.
func DebugString(in *Input[byte]) string {
	next := in.available()
	if len(next) > 16 {
		next = next[:16]
	}
	return fmt.Sprintf("[%d final=%v] %q", in.Offset(), in.final, next)
}
