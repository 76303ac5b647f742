package token

import (
	"strconv"
	"strings"
)

// Integer formatters render decimal by default, or "0x" followed by
// natural-width uppercase hexadecimal when hex is set. Signed values
// in hex render the two's-complement bit pattern of their width, so
// FormatI8(-1, true) is "0xFF", not a minus sign.

func FormatU8(v uint8, hex bool) string {
	if hex {
		return hexString(uint64(v))
	}
	return strconv.FormatUint(uint64(v), 10)
}

func FormatU16(v uint16, hex bool) string {
	if hex {
		return hexString(uint64(v))
	}
	return strconv.FormatUint(uint64(v), 10)
}

func FormatU32(v uint32, hex bool) string {
	if hex {
		return hexString(uint64(v))
	}
	return strconv.FormatUint(uint64(v), 10)
}

func FormatU64(v uint64, hex bool) string {
	if hex {
		return hexString(v)
	}
	return strconv.FormatUint(v, 10)
}

func FormatI8(v int8, hex bool) string {
	if hex {
		return hexString(uint64(uint8(v)))
	}
	return strconv.FormatInt(int64(v), 10)
}

func FormatI16(v int16, hex bool) string {
	if hex {
		return hexString(uint64(uint16(v)))
	}
	return strconv.FormatInt(int64(v), 10)
}

func FormatI32(v int32, hex bool) string {
	if hex {
		return hexString(uint64(uint32(v)))
	}
	return strconv.FormatInt(int64(v), 10)
}

func FormatI64(v int64, hex bool) string {
	if hex {
		return hexString(uint64(v))
	}
	return strconv.FormatInt(int64(v), 10)
}

func hexString(v uint64) string {
	return "0x" + strings.ToUpper(strconv.FormatUint(v, 16))
}
