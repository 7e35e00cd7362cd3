// Package floatfu parses textual floating-point literals into float64 values
// that are bit-identical to what strconv.ParseFloat would produce, but
// faster for the common cases. It accepts decimal literals, hexadecimal
// literals with a binary exponent, and the symbolic tokens NaN and Infinity,
// with optional surrounding whitespace.
//
// Parsing is a pure function: no state survives a call and the precomputed
// tables are read-only, so concurrent use needs no coordination.
package floatfu

import (
	"math"
	"strconv"

	"github.com/ccbrown/float-fu/floatmath"
	"github.com/ccbrown/float-fu/scanner"
)

// InvalidNumberError is the only error kind returned by this package.
type InvalidNumberError = scanner.InvalidNumberError

// ParseFloat64 parses s as a floating-point literal and returns the nearest
// float64 under round-to-nearest-even.
func ParseFloat64(s string) (float64, error) {
	return ParseFloat64Bytes([]byte(s))
}

// ParseFloat64Bytes is ParseFloat64 for a byte slice. The slice is neither
// retained nor modified.
func ParseFloat64Bytes(src []byte) (float64, error) {
	num, err := scanner.Scan(src)
	if err != nil {
		return 0, err
	}

	switch num.Kind {
	case scanner.NaN:
		return math.NaN(), nil
	case scanner.Infinity:
		if num.Negative {
			return math.Inf(-1), nil
		}
		return math.Inf(1), nil
	case scanner.Hex:
		exponent := num.Exponent
		if num.Truncated {
			exponent = num.TruncatedExponent
		}
		return floatmath.HexFloat(num.Negative, num.Digits, exponent, num.Truncated), nil
	default:
		if num.Truncated {
			if d, ok := floatmath.DecFloatTruncated(num.Negative, num.Digits, num.TruncatedExponent); ok {
				return d, nil
			}
		} else {
			if d, ok := floatmath.DecFloat(num.Negative, num.Digits, num.Exponent); ok {
				return d, nil
			}
		}
		return reference(src)
	}
}

// reference hands the original input to the host's correctly rounded
// converter. It is only reached for decimal literals the fast back-end could
// not resolve, which the scanner has already validated.
func reference(src []byte) (float64, error) {
	lo := 0
	hi := len(src)
	for lo < hi && src[lo] <= 0x20 {
		lo++
	}
	for hi > lo && src[hi-1] <= 0x20 {
		hi--
	}
	d, err := strconv.ParseFloat(string(src[lo:hi]), 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			// Out-of-range inputs still have a defined result: the
			// converter saturated to zero or infinity.
			return d, nil
		}
		return 0, err
	}
	return d, nil
}
