package token

import (
	"math"
	"testing"
)

func TestFormatUnsigned(t *testing.T) {
	cases := []struct {
		got, want string
	}{
		{FormatU8(0, false), "0"},
		{FormatU8(10, false), "10"},
		{FormatU8(0, true), "0x0"},
		{FormatU8(255, true), "0xFF"},
		{FormatU16(4096, true), "0x1000"},
		{FormatU16(65535, false), "65535"},
		{FormatU32(0xDEADBEEF, true), "0xDEADBEEF"},
		{FormatU64(math.MaxUint64, true), "0xFFFFFFFFFFFFFFFF"},
		{FormatU64(1234567890, false), "1234567890"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("got %q, want %q", c.got, c.want)
		}
	}
}

func TestFormatSigned(t *testing.T) {
	cases := []struct {
		got, want string
	}{
		{FormatI8(-5, false), "-5"},
		{FormatI8(127, false), "127"},
		{FormatI8(127, true), "0x7F"},
		// hex renders the two's-complement bit pattern at the value's width
		{FormatI8(-1, true), "0xFF"},
		{FormatI16(-2, true), "0xFFFE"},
		{FormatI32(-1, true), "0xFFFFFFFF"},
		{FormatI64(-1, true), "0xFFFFFFFFFFFFFFFF"},
		{FormatI64(math.MinInt64, false), "-9223372036854775808"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("got %q, want %q", c.got, c.want)
		}
	}
}
