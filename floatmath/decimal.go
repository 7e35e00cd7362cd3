// Package floatmath converts scanned significand/exponent pairs into
// correctly rounded float64 values without decimal arithmetic. The decimal
// converters may abstain when they cannot prove the rounding correct; the
// caller is then expected to fall back to a reference converter on the
// original input.
package floatmath

import (
	"math"
)

const (
	// Exponent range covered by the 128-bit power-of-ten table. A decimal
	// exponent outside this range forces the value to zero or infinity for
	// any significand below 10^19, so no multiplication is needed there.
	smallestPowerOfTen = -342
	largestPowerOfTen  = 308
)

// Powers of ten that are exactly representable as a float64.
var float64PowersOfTen = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
	1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20,
	1e21, 1e22,
}

func zero(neg bool) float64 {
	if neg {
		return math.Copysign(0, -1)
	}
	return 0
}

func inf(neg bool) float64 {
	if neg {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

// DecFloat converts digits*10^exp10 to the nearest float64. The digits must
// be exact (untruncated, < 10^19). The second result is false when the value
// could not be resolved and the caller must consult the reference converter.
func DecFloat(neg bool, digits uint64, exp10 int64) (float64, bool) {
	if digits == 0 {
		return zero(neg), true
	}
	if -22 <= exp10 && exp10 <= 22 && digits <= 1<<53 {
		// Both the significand and the power of ten are exactly
		// representable, so a single rounded operation is exact.
		d := float64(digits)
		if exp10 < 0 {
			d = d / float64PowersOfTen[-exp10]
		} else {
			d = d * float64PowersOfTen[exp10]
		}
		if neg {
			d = -d
		}
		return d, true
	}
	if exp10 < smallestPowerOfTen {
		return zero(neg), true
	}
	if exp10 > largestPowerOfTen {
		return inf(neg), true
	}
	return eiselLemire(neg, digits, exp10)
}

// DecFloatTruncated converts a truncated significand. The true value lies in
// [digits, digits+1) * 10^exp10; if both endpoints round to the same float64
// the result is certain, otherwise the converter abstains.
func DecFloatTruncated(neg bool, digits uint64, exp10 int64) (float64, bool) {
	if exp10 < smallestPowerOfTen || exp10 > largestPowerOfTen {
		return 0, false
	}
	lo, ok := eiselLemire(neg, digits, exp10)
	if !ok {
		return 0, false
	}
	hi, ok := eiselLemire(neg, digits+1, exp10)
	if !ok || lo != hi {
		return 0, false
	}
	return lo, true
}
