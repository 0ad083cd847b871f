package vparse

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Velocidex/ordereddict"
	"github.com/sebdah/goldie"
	assert "github.com/stretchr/testify/assert"
)

var sample_definitions = `
- [Point, ",", [[X, int64], [Y, int64]]]
- [Segment, "->", [[Start, Point], [End, Point]]]
- [Tagged, ":", [[__Tag, word], [Size, uint32]]]
- [Packet, null, [
    [Proto, Enumeration, {type: uint8, choices: {6: TCP, 17: UDP}}],
    [Flags, Flags, {type: uint8, bitmap: {SYN: 1, ACK: 4}}],
    [Kind, Value, {value: packet}],
    [IsTCP, Value, {value: "x => x.Proto = 'TCP'"}]]]
- [Counted, null, [
    [N, uint8],
    [Items, Array, {type: int64, count: "x => x.N", separator: ","}]]]
- [Terminated, null, [
    [Items, Array, {type: int64, sentinel: "x => x = 0"}],
    [After, word]]]
- [Nibble, null, [[High, BitField, {type: uint8, start_bit: 4, end_bit: 8}]]]
- [Stamp, null, [[When, EpochTimestamp, {factor: 1000}]]]
- [FileTime, null, [[When, WinFileTime]]]
- [Dos, null, [[When, FatTimestamp]]]
- [Placeholder, null, [[A, uint8], [Nothing, Null], [B, uint8]]]
`

func newTestProfile(t *testing.T) *Profile {
	profile := NewProfile()
	AddModel(profile)
	assert.NoError(t, profile.ParseDefinitions(sample_definitions))
	return profile
}

func toJSON(t *testing.T, value interface{}) string {
	serialized, err := json.Marshal(value)
	assert.NoError(t, err)
	return string(serialized)
}

func TestRecordDefinitions(t *testing.T) {
	profile := newTestProfile(t)

	value, err := profile.Parse("Packet", []byte("6 18"))
	assert.NoError(t, err)

	goldie.Assert(t, "TestRecordDefinitions", []byte(StringIndent(value)))
}

func TestRecordParse(t *testing.T) {
	profile := newTestProfile(t)

	for _, test_case := range []struct {
		type_name string
		input     string
		expected  string
	}{
		{"Point", "1,2", `{"X":1,"Y":2}`},
		{"Point", "-3 ,  4", `{"X":-3,"Y":4}`},
		{"Segment", "1,2 -> 3, 4", `{"Start":{"X":1,"Y":2},"End":{"X":3,"Y":4}}`},
		{"Tagged", "abc: 12", `{"Size":12}`},
		{"Packet", "99 0", `{"Proto":"0x63","Flags":[],"Kind":"packet","IsTCP":false}`},
		{"Counted", "3 10, -2,7 99", `{"N":3,"Items":[10,-2,7]}`},
		{"Counted", "0", `{"N":0,"Items":[]}`},
		{"Terminated", "5 6 0 end", `{"Items":[5,6],"After":"end"}`},
		{"Nibble", "171", `{"High":10}`},
		{"FileTime", "132000000000000000", `{"When":"2019-04-17T18:40:00Z"}`},
		{"Dos", "1674203748", `{"When":"2021-03-04T12:30:20Z"}`},
		{"Placeholder", "1 2", `{"A":1,"Nothing":null,"B":2}`},
	} {
		value, err := profile.Parse(test_case.type_name, []byte(test_case.input))
		assert.NoError(t, err, test_case.input)
		assert.Equal(t, test_case.expected, toJSON(t, value), test_case.input)
	}
}

func TestRecordTimestamp(t *testing.T) {
	profile := newTestProfile(t)

	value, err := profile.Parse("Stamp", []byte("1600000000123"))
	assert.NoError(t, err)

	dict, ok := value.(*ordereddict.Dict)
	assert.True(t, ok)

	when, _ := dict.Get("When")
	when_time, ok := when.(time.Time)
	assert.True(t, ok)
	assert.True(t, when_time.Equal(
		time.Date(2020, 9, 13, 12, 26, 40, 123000000, time.UTC)))
	assert.Equal(t, time.UTC, when_time.Location())
}

func TestRecordErrors(t *testing.T) {
	profile := newTestProfile(t)

	// Wrong separator.
	_, err := profile.Parse("Point", []byte("1;2"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Point.Y")

	// A nested failure names every record on the way.
	_, err = profile.Parse("Segment", []byte("1,2 -> 3"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Segment.End: Point.Y")

	// Exact counts must all be present.
	_, err = profile.Parse("Counted", []byte("3 1,2"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Counted.Items")
}

func TestRecordDefinitionErrors(t *testing.T) {
	profile := NewProfile()
	AddModel(profile)

	err := profile.ParseDefinitions(`- [Bad, null, [[X, Missing]]]`)
	assert.True(t, errors.Is(err, ErrUnknownParser))
	assert.Equal(t, "record Bad field X: parser not found: Missing", err.Error())

	err = profile.ParseDefinitions(`- [Bad, null, [[X, Value, {value: "x => x.("}]]]`)
	assert.Error(t, err)

	err = profile.ParseDefinitions(`- [Bad, null, [[X, Array, {type: int64, bogus: 1}]]]`)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected options: bogus")

	err = profile.ParseDefinitions(`- [Bad, null, [[X, Flags, {type: int64}]]]`)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "option bitmap is required")

	err = profile.ParseDefinitions(`- [Bad, [[X, int64]]]`)
	assert.Error(t, err)

	err = profile.ParseDefinitions(`- [Bad, null, [[X]]]`)
	assert.Error(t, err)
}

func TestRecordDefinitionsJSON(t *testing.T) {
	var records []*RecordDefinition
	err := json.Unmarshal([]byte(
		`[["Pair", "=", [["Key", "word"], ["Value", "Array", {"type": "uint8", "count": 2}]]]]`),
		&records)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(records))
	assert.Equal(t, "=", records[0].Separator)

	profile := NewProfile()
	AddModel(profile)
	assert.NoError(t, profile.AddDefinitions(records))

	value, err := profile.Parse("Pair", []byte("a = 1 2"))
	assert.NoError(t, err)
	assert.Equal(t, `{"Key":"a","Value":[1,2]}`, toJSON(t, value))
}

func TestArrayMaxCount(t *testing.T) {
	profile := NewProfile()
	AddModel(profile)
	assert.NoError(t, profile.ParseDefinitions(`
- [Capped, null, [
    [N, uint8],
    [Items, Array, {type: uint8, count: "x => x.N", max_count: 2}]]]
`))

	value, err := profile.Parse("Capped", []byte("2 1 2"))
	assert.NoError(t, err)
	assert.Equal(t, `{"N":2,"Items":[1,2]}`, toJSON(t, value))

	// An exact count above max_count is an error, not a short array.
	_, err = profile.Parse("Capped", []byte("3 1 2 3"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Capped.Items: count 3 exceeds max_count 2")
}

func TestFailedDefinitionsLeaveProfileUnchanged(t *testing.T) {
	profile := NewProfile()
	AddModel(profile)

	err := profile.ParseDefinitions(`
- [Good, null, [[A, uint8]]]
- [word, null, [[A, uint8]]]
- [Bad, null, [[X, Missing]]]
`)
	assert.True(t, errors.Is(err, ErrUnknownParser))

	_, err = profile.GetParser("Good")
	assert.True(t, errors.Is(err, ErrUnknownParser))
	_, err = profile.GetParser("Bad")
	assert.True(t, errors.Is(err, ErrUnknownParser))

	// Builtins replaced by the failed batch come back.
	value, err := profile.Parse("word", []byte("abc"))
	assert.NoError(t, err)
	assert.Equal(t, "abc", value)
	description, _ := profile.Describe().GetString("word")
	assert.Equal(t, "run of ASCII letters and digits", description)
}
