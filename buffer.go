package vparse

import (
	"unsafe"
)

// A Buffer is a read-only view of tokens matched by a parser. It
// borrows the storage of the Input it came from; the Input never
// rewrites tokens it has handed out so a Buffer's contents never
// change.
type Buffer[T comparable] struct {
	data []T
}

// NewBuffer wraps a slice in a Buffer. The slice must not be modified
// afterwards.
func NewBuffer[T comparable](data []T) Buffer[T] {
	return Buffer[T]{data: data[:len(data):len(data)]}
}

func (self Buffer[T]) Len() int {
	return len(self.data)
}

func (self Buffer[T]) IsEmpty() bool {
	return len(self.data) == 0
}

// At returns the token at index i.
func (self Buffer[T]) At(i int) T {
	return self.data[i]
}

// ToSlice returns a copy of the contents.
func (self Buffer[T]) ToSlice() []T {
	result := make([]T, len(self.data))
	copy(result, self.data)
	return result
}

// Iterate calls cb for every token until cb returns false.
func (self Buffer[T]) Iterate(cb func(T) bool) {
	for _, t := range self.data {
		if !cb(t) {
			return
		}
	}
}

// Equal reports whether the buffer holds exactly the tokens in other.
func (self Buffer[T]) Equal(other []T) bool {
	if len(self.data) != len(other) {
		return false
	}
	for i, t := range self.data {
		if t != other[i] {
			return false
		}
	}
	return true
}

// Fold reduces the buffer from left to right.
func Fold[T comparable, A any](b Buffer[T], init A, f func(A, T) A) A {
	acc := init
	for _, t := range b.data {
		acc = f(acc, t)
	}
	return acc
}

// BufferString copies a byte buffer into a string.
func BufferString(b Buffer[byte]) string {
	return string(b.data)
}

// unsafeString views a byte buffer as a string without copying. Only
// valid because buffers are immutable.
func unsafeString(b Buffer[byte]) string {
	if len(b.data) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b.data), len(b.data))
}
