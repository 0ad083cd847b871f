package vparse

// Stream runs a parser over data that arrives in pieces.
//
// Fill() appends data, Parse() runs the parser from where the last
// successful parse stopped. When Parse() returns Incomplete nothing is
// consumed: call Fill() (or Close() at the end of the data) and Parse()
// again. Previously parsed values are never parsed again.
type Stream[I comparable, T any] struct {
	input  *Input[I]
	parser Parser[I, T]

	// Compact once at least this many tokens have been consumed.
	compactAt int
}

func NewStream[I comparable, T any](parser Parser[I, T]) *Stream[I, T] {
	return &Stream[I, T]{
		input:     NewStreamInput[I](),
		parser:    parser,
		compactAt: 4096,
	}
}

func (self *Stream[I, T]) Fill(data []I) {
	self.input.Fill(data)
}

// Close marks the end of the data. Subsequent parses treat the end of
// the buffered data as final and never return Incomplete.
func (self *Stream[I, T]) Close() {
	self.input.Close()
}

func (self *Stream[I, T]) Input() *Input[I] {
	return self.input
}

// Parse runs the parser once from the current position.
func (self *Stream[I, T]) Parse() Result[I, T] {
	result := RunParser(self.input, self.parser)
	if result.state == StateData && self.input.pos >= self.compactAt {
		self.input.Compact()
	}
	return result
}
