package vparse

// A Mark is a saved read position. Marks are absolute offsets so they
// stay valid across Fill() and Compact().
type Mark int

// Input is a view over a token sequence with a read position.
//
// A finite Input wraps a caller supplied slice without copying it. A
// stream Input owns its storage and grows through Fill() until Close()
// declares the end of data. Reaching the end of a stream Input which is
// not yet closed produces an Incomplete result rather than an error.
//
// An Input is not safe for concurrent use. Each parse should own its
// own Input.
type Input[T comparable] struct {
	data []T

	// Index into data of the next token.
	pos int

	// Absolute offset of data[0] - grows when Compact() drops
	// consumed tokens.
	base int

	// No more data will arrive.
	final bool
}

// NewInput returns a finite input over data. The slice is borrowed,
// not copied, and must not be modified while the Input is in use.
func NewInput[T comparable](data []T) *Input[T] {
	return &Input[T]{
		data:  data,
		final: true,
	}
}

// NewStreamInput returns an empty growable input.
func NewStreamInput[T comparable]() *Input[T] {
	return &Input[T]{}
}

// Fill appends more tokens to a stream input.
func (self *Input[T]) Fill(more []T) {
	if self.final {
		panic("vparse: Fill() called on a final input")
	}

	// Appending only ever writes past len(data). Buffers are capped
	// at their own end so they never observe the new tokens.
	self.data = append(self.data, more...)
}

// Close declares that no more data will be appended. It is safe to
// call more than once.
func (self *Input[T]) Close() {
	self.final = true
}

// IsFinal reports whether the end of the currently available data is
// the end of the input.
func (self *Input[T]) IsFinal() bool {
	return self.final
}

// Len returns the number of available tokens not yet consumed.
func (self *Input[T]) Len() int {
	return len(self.data) - self.pos
}

// Offset returns the absolute position of the next token.
func (self *Input[T]) Offset() int {
	return self.base + self.pos
}

func (self *Input[T]) Mark() Mark {
	return Mark(self.base + self.pos)
}

// Restore rewinds the input to a previously taken mark. Restoring to
// a position ahead of the current one, or to a position released by
// Compact(), is a programming error.
func (self *Input[T]) Restore(mark Mark) {
	pos := int(mark) - self.base
	if pos < 0 || pos > self.pos {
		panic("vparse: Restore() to an invalid mark")
	}
	self.pos = pos
}

// Consume advances the position by n tokens without looking at them.
// n is clamped to the available data.
func (self *Input[T]) Consume(n int) {
	if n > self.Len() {
		n = self.Len()
	}
	if n > 0 {
		self.pos += n
	}
}

// ConsumeRemaining returns all available tokens from the current
// position and moves the position to the end.
func (self *Input[T]) ConsumeRemaining() Buffer[T] {
	result := self.slice(self.pos, len(self.data))
	self.pos = len(self.data)
	return result
}

// Compact releases tokens before the current position. Remaining
// tokens are moved to fresh storage so Buffers already handed out are
// not disturbed. Marks taken before the current position become
// invalid.
func (self *Input[T]) Compact() {
	if self.pos == 0 {
		return
	}

	remaining := make([]T, len(self.data)-self.pos)
	copy(remaining, self.data[self.pos:])

	self.base += self.pos
	self.pos = 0
	self.data = remaining
}

// next returns the next token and advances past it.
func (self *Input[T]) next() (T, bool) {
	if self.pos >= len(self.data) {
		var zero T
		return zero, false
	}
	result := self.data[self.pos]
	self.pos++
	return result, true
}

// peek returns the next token without consuming it.
func (self *Input[T]) peek() (T, bool) {
	if self.pos >= len(self.data) {
		var zero T
		return zero, false
	}
	return self.data[self.pos], true
}

// available returns the unconsumed tokens. Callers must not modify
// the result.
func (self *Input[T]) available() []T {
	return self.data[self.pos:]
}

// since returns the tokens consumed since mark.
func (self *Input[T]) since(mark Mark) Buffer[T] {
	return self.slice(int(mark)-self.base, self.pos)
}

func (self *Input[T]) slice(start, end int) Buffer[T] {
	return Buffer[T]{data: self.data[start:end:end]}
}
