//  Every profile contains some basic built in types. The model is a
//  mapping between the generic names of types and the corresponding
//  parsers.

package vparse

func AddModel(profile *Profile) {
	profile.AddParser("uint8", "unsigned decimal, 8 bits", Erase(Decimal[uint8]))
	profile.AddParser("uint16", "unsigned decimal, 16 bits", Erase(Decimal[uint16]))
	profile.AddParser("uint32", "unsigned decimal, 32 bits", Erase(Decimal[uint32]))
	profile.AddParser("uint64", "unsigned decimal, 64 bits", Erase(Decimal[uint64]))

	profile.AddParser("int8", "signed decimal, 8 bits",
		Erase(func(in *Input[byte]) Result[byte, int8] {
			return Signed[int8](in, Decimal[uint8])
		}))
	profile.AddParser("int16", "signed decimal, 16 bits",
		Erase(func(in *Input[byte]) Result[byte, int16] {
			return Signed[int16](in, Decimal[uint16])
		}))
	profile.AddParser("int32", "signed decimal, 32 bits",
		Erase(func(in *Input[byte]) Result[byte, int32] {
			return Signed[int32](in, Decimal[uint32])
		}))
	profile.AddParser("int64", "signed decimal, 64 bits",
		Erase(func(in *Input[byte]) Result[byte, int64] {
			return Signed[int64](in, Decimal[uint64])
		}))

	profile.AddParser("bigint", "unsigned decimal of any size", Erase(DecimalBig))

	profile.AddParser("float32", "decimal floating point, 32 bits", Erase(Float[float32]))
	profile.AddParser("float64", "decimal floating point, 64 bits", Erase(Float[float64]))
	profile.AddParser("float", "floating point literal, unconverted",
		Erase(func(in *Input[byte]) Result[byte, string] {
			return Map(MatchFloat(in), BufferString)
		}))

	profile.AddParser("word", "run of ASCII letters and digits",
		Erase(func(in *Input[byte]) Result[byte, string] {
			return Map(TakeWhile1(in, IsAlphanumeric), BufferString)
		}))
	profile.AddParser("quoted", "double quoted string with backslash escapes",
		Erase(func(in *Input[byte]) Result[byte, string] {
			return QuotedString(in, '"', '\\')
		}))

	profile.AddParser("leb128", "unsigned LEB128 varint, raw bytes", Erase(Leb128))
	profile.AddParser("sleb128", "signed LEB128 varint, raw bytes", Erase(Sleb128))
	profile.AddParser("FatTimestamp", "DOS date and time packed in a uint32", Erase(FatTimestamp))

	profile.AddFactory("Array", "repeated elements of another type", NewArrayParser)
	profile.AddFactory("Enumeration", "integer mapped to a name", NewEnumerationParser)
	profile.AddFactory("Flags", "integer mapped to the names of its set bits", NewFlagsParser)
	profile.AddFactory("BitField", "range of bits from an integer", NewBitFieldParser)
	profile.AddFactory("EpochTimestamp", "time since the unix epoch", NewEpochTimestampParser)
	profile.AddFactory("WinFileTime", "100ns intervals since 1601", NewWinFileTimeParser)

	profile.AddComputed("Value", "static value or expression over the record", NewValueParser)
	profile.AddComputed("Null", "always nil", NewNullParser)

	// Aliases
	profile.AddAlias("byte", "uint8")
	profile.AddAlias("char", "int8")
	profile.AddAlias("int", "int32")
	profile.AddAlias("short int", "int16")
	profile.AddAlias("unsigned char", "uint8")
	profile.AddAlias("unsigned short", "uint16")
	profile.AddAlias("unsigned int", "uint32")
	profile.AddAlias("unsigned long long", "uint64")
	profile.AddAlias("double", "float64")
}
