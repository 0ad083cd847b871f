package json

import (
	"io"

	"www.velocidex.com/golang/vparse"
)

// endOfData is returned by the stream parser once only whitespace
// remains on a closed input.
type endOfData struct{}

func streamValue(in *input) vparse.Result[byte, interface{}] {
	return vparse.Then(vparse.SkipWhitespace(in), func(in *input) vparse.Result[byte, interface{}] {
		end := func(in *input) vparse.Result[byte, interface{}] {
			return vparse.Map(vparse.EOF(in), func(struct{}) interface{} {
				return endOfData{}
			})
		}
		return vparse.Or(in, end, parseValue)
	})
}

// Decoder parses a sequence of whitespace separated JSON values from
// data which arrives in arbitrary pieces, e.g. a JSONL file read in
// chunks.
type Decoder struct {
	stream *vparse.Stream[byte, interface{}]
}

func NewDecoder() *Decoder {
	return &Decoder{
		stream: vparse.NewStream(streamValue),
	}
}

// Write appends data to the decoder. It never fails.
func (self *Decoder) Write(p []byte) (int, error) {
	self.stream.Fill(p)
	return len(p), nil
}

// Close declares that no more data will be written.
func (self *Decoder) Close() error {
	self.stream.Close()
	return nil
}

// Next returns the next complete value. It returns
// vparse.ErrIncomplete when more data must be written first and io.EOF
// once the decoder is closed and all values were returned.
func (self *Decoder) Next() (interface{}, error) {
	value, err := self.stream.Parse().Unpack()
	if err != nil {
		return nil, err
	}

	if _, ok := value.(endOfData); ok {
		return nil, io.EOF
	}
	return value, nil
}

// Offset is the number of bytes consumed so far.
func (self *Decoder) Offset() int {
	return self.stream.Input().Offset()
}
