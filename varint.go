package vparse

// LEB128 variable length integers. These work on raw bytes, not text.

// We only support 64 bit values - max size is 64 / 7 = 10 bytes.
const maxVarIntLen = 10

// varint locates a complete varint and returns its length.
func varint(in *Input[byte]) (int, Result[byte, struct{}]) {
	for i, c := range in.available() {
		if i >= maxVarIntLen {
			break
		}
		if c&0x80 == 0 {
			return i + 1, Ret(in, struct{}{})
		}
	}

	if in.Len() >= maxVarIntLen {
		return 0, Fail[byte, struct{}](in, &Error{
			Offset: in.Offset(), Expected: "varint", Err: ErrOverflow})
	}
	return 0, short[byte, struct{}](in, 1, "varint")
}

// Leb128 parses an unsigned LEB128 integer.
func Leb128(in *Input[byte]) Result[byte, uint64] {
	n, r := varint(in)
	return Bind(r, func(in *Input[byte], _ struct{}) Result[byte, uint64] {
		var result uint64
		for i, c := range in.available()[:n] {
			result |= uint64(c&0x7f) << (7 * i)
		}
		in.pos += n
		return Ret(in, result)
	})
}

// Sleb128 parses a signed LEB128 integer.
func Sleb128(in *Input[byte]) Result[byte, int64] {
	n, r := varint(in)
	return Bind(r, func(in *Input[byte], _ struct{}) Result[byte, int64] {
		var result int64
		var shift uint
		var last byte
		for _, c := range in.available()[:n] {
			result |= int64(c&0x7f) << shift
			shift += 7
			last = c
		}
		if shift < 64 && last&0x40 != 0 {
			result |= -1 << shift
		}
		in.pos += n
		return Ret(in, result)
	})
}
