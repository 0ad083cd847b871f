package vparse

import "fmt"

type State uint8

const (
	// The parser succeeded and a value is available.
	StateData State = iota

	// The parser failed.
	StateError

	// The parser ran out of data on a stream input and must be
	// retried once more data is available.
	StateIncomplete
)

func (self State) String() string {
	switch self {
	case StateData:
		return "Data"
	case StateError:
		return "Error"
	case StateIncomplete:
		return "Incomplete"
	}
	return fmt.Sprintf("State(%d)", uint8(self))
}

// Result is the outcome of a single parse step. Exactly one of the
// three states is active.
type Result[I comparable, T any] struct {
	input  *Input[I]
	state  State
	value  T
	err    error
	needed int
}

// A Parser consumes tokens from the input and produces a Result.
type Parser[I comparable, T any] func(in *Input[I]) Result[I, T]

// Ret produces a successful result without consuming anything.
func Ret[I comparable, T any](in *Input[I], value T) Result[I, T] {
	return Result[I, T]{input: in, state: StateData, value: value}
}

// Fail produces an error result. The error may be any caller
// supplied value.
func Fail[I comparable, T any](in *Input[I], err error) Result[I, T] {
	return Result[I, T]{input: in, state: StateError, err: err}
}

// NeedMore produces an Incomplete result asking for at least needed
// more tokens.
func NeedMore[I comparable, T any](in *Input[I], needed int) Result[I, T] {
	if needed < 1 {
		needed = 1
	}
	return Result[I, T]{input: in, state: StateIncomplete, needed: needed}
}

func (self Result[I, T]) State() State {
	return self.state
}

func (self Result[I, T]) Input() *Input[I] {
	return self.input
}

// Value is only meaningful in the Data state.
func (self Result[I, T]) Value() T {
	return self.value
}

// Err is only set in the Error state.
func (self Result[I, T]) Err() error {
	return self.err
}

// Needed is only set in the Incomplete state.
func (self Result[I, T]) Needed() int {
	return self.needed
}

func (self Result[I, T]) IsData() bool {
	return self.state == StateData
}

func (self Result[I, T]) IsError() bool {
	return self.state == StateError
}

func (self Result[I, T]) IsIncomplete() bool {
	return self.state == StateIncomplete
}

// Unpack converts the result to the usual Go pair. An Incomplete
// result is reported as ErrIncomplete.
func (self Result[I, T]) Unpack() (T, error) {
	switch self.state {
	case StateData:
		return self.value, nil
	case StateIncomplete:
		var zero T
		return zero, ErrIncomplete
	default:
		var zero T
		return zero, self.err
	}
}

func (self Result[I, T]) String() string {
	switch self.state {
	case StateData:
		return fmt.Sprintf("Data(%v)", self.value)
	case StateIncomplete:
		return fmt.Sprintf("Incomplete(%d)", self.needed)
	default:
		return fmt.Sprintf("Error(%v)", self.err)
	}
}

// propagate re-types a non Data result.
func propagate[I comparable, T, U any](r Result[I, T]) Result[I, U] {
	return Result[I, U]{
		input:  r.input,
		state:  r.state,
		err:    r.err,
		needed: r.needed,
	}
}

// Bind calls f with the value of a Data result and returns its
// result. Error and Incomplete results pass through unchanged.
func Bind[I comparable, T, U any](
	r Result[I, T], f func(in *Input[I], value T) Result[I, U]) Result[I, U] {
	if r.state != StateData {
		return propagate[I, T, U](r)
	}
	return f(r.input, r.value)
}

// Then sequences f after a Data result, discarding its value.
func Then[I comparable, T, U any](
	r Result[I, T], f func(in *Input[I]) Result[I, U]) Result[I, U] {
	if r.state != StateData {
		return propagate[I, T, U](r)
	}
	return f(r.input)
}

// Map transforms the value of a Data result.
func Map[I comparable, T, U any](r Result[I, T], f func(T) U) Result[I, U] {
	if r.state != StateData {
		return propagate[I, T, U](r)
	}
	return Result[I, U]{input: r.input, state: StateData, value: f(r.value)}
}

// MapErr transforms the error of an Error result.
func MapErr[I comparable, T any](r Result[I, T], f func(error) error) Result[I, T] {
	if r.state != StateError {
		return r
	}
	r.err = f(r.err)
	return r
}
