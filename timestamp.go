package vparse

import (
	"fmt"
	"time"

	"github.com/Velocidex/ordereddict"
)

type TimestampOptions struct {
	Type   string `vfilter:"optional,field=type"`
	Factor int64  `vfilter:"optional,field=factor"`
}

func newTimestampOptions(options *ordereddict.Dict) (*TimestampOptions, error) {
	result := &TimestampOptions{Type: "uint64", Factor: 1}
	err := ParseOptions(options, result)
	if err != nil {
		return nil, err
	}
	if result.Factor <= 0 {
		return nil, fmt.Errorf("factor should be positive")
	}
	return result, nil
}

// EpochTimestamp converts an integer count of 1/factor seconds since
// the unix epoch to a UTC time.
type EpochTimestamp struct {
	parser FieldParser
	factor int64
}

func NewEpochTimestampParser(profile *Profile, options *ordereddict.Dict) (FieldParser, error) {
	opts, err := newTimestampOptions(options)
	if err != nil {
		return nil, fmt.Errorf("EpochTimestamp: %w", err)
	}

	parser, err := profile.NewParser(opts.Type, nil)
	if err != nil {
		return nil, fmt.Errorf("EpochTimestamp: %w", err)
	}

	result := &EpochTimestamp{parser: parser, factor: opts.Factor}
	return result.Parse, nil
}

func (self *EpochTimestamp) Parse(in *Input[byte], this *ordereddict.Dict) Result[byte, any] {
	return Map(self.parser(in, this), func(value any) any {
		value_int, ok := to_int64(value)
		if !ok {
			return nil
		}

		nsec := (value_int % self.factor) * (int64(time.Second) / self.factor)
		return time.Unix(value_int/self.factor, nsec).UTC()
	})
}

// WinFileTime converts a count of 100ns intervals since 1601 to a UTC
// time.
type WinFileTime struct {
	parser FieldParser
	factor int64
}

func NewWinFileTimeParser(profile *Profile, options *ordereddict.Dict) (FieldParser, error) {
	opts, err := newTimestampOptions(options)
	if err != nil {
		return nil, fmt.Errorf("WinFileTime: %w", err)
	}

	parser, err := profile.NewParser(opts.Type, nil)
	if err != nil {
		return nil, fmt.Errorf("WinFileTime: %w", err)
	}

	result := &WinFileTime{parser: parser, factor: opts.Factor}
	return result.Parse, nil
}

func (self *WinFileTime) Parse(in *Input[byte], this *ordereddict.Dict) Result[byte, any] {
	return Map(self.parser(in, this), func(value any) any {
		value_int, ok := to_int64(value)
		if !ok {
			return nil
		}

		return time.Unix((value_int/self.factor/10000000)-11644473600, 0).UTC()
	})
}

// FatTimestamp decodes a DOS date and time packed into a uint32, date
// in the low word.
func FatTimestamp(in *Input[byte]) Result[byte, time.Time] {
	return Map(Decimal[uint32](in), func(value uint32) time.Time {
		date_int := int64(value)

		// Dos times are stored as 2 uint16 numbers - first the date
		// then the time so swap them.
		date_int = ((date_int & 0xFFFF) << 16) + (date_int >> 16)

		year := 1980 + (date_int >> 25)
		month := (date_int >> 21) & ((1 << 4) - 1)
		day := (date_int >> 16) & ((1 << 5) - 1)
		hour := (date_int >> 11) & ((1 << 5) - 1)
		min := (date_int >> 5) & ((1 << 6) - 1)
		sec := (date_int & ((1 << 5) - 1)) * 2

		return time.Date(int(year), time.Month(month), int(day),
			int(hour), int(min), int(sec), 0, time.UTC)
	})
}
