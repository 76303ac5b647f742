package token

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat renders a 32-bit float the way a hand-written A2L file
// would: exact zero as "0", magnitudes below 1e-4 or at least 1e10 in
// scientific notation, everything else as shortest plain decimal.
func FormatFloat(v float32) string {
	return formatFP(float64(v), 32)
}

// FormatDouble is FormatFloat for 64-bit floats.
func FormatDouble(v float64) string {
	return formatFP(v, 64)
}

func formatFP(v float64, bits int) string {
	if v == 0 {
		return "0"
	}
	abs := math.Abs(v)
	if abs < 1e-4 || abs >= 1e10 {
		return trimExponent(strconv.FormatFloat(v, 'e', -1, bits))
	}
	return strconv.FormatFloat(v, 'f', -1, bits)
}

// trimExponent rewrites Go's zero-padded exponents ("5e-05", "1e+10")
// in the minimal form ("5e-5", "1e10").
func trimExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 {
		return s
	}
	mant, exp := s[:i], s[i+1:]
	neg := ""
	if len(exp) > 0 {
		switch exp[0] {
		case '-':
			neg = "-"
			exp = exp[1:]
		case '+':
			exp = exp[1:]
		}
	}
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp = "0"
	}
	return mant + "e" + neg + exp
}
