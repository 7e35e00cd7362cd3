package floatmath

import (
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecFloat_Zero(t *testing.T) {
	d, ok := DecFloat(false, 0, 0)
	require.True(t, ok)
	assert.Equal(t, uint64(0), math.Float64bits(d))

	d, ok = DecFloat(true, 0, 0)
	require.True(t, ok)
	assert.Equal(t, uint64(1)<<63, math.Float64bits(d))
}

func TestDecFloat_FastPath(t *testing.T) {
	for _, tt := range []struct {
		digits   uint64
		exp10    int64
		expected float64
	}{
		{365, 0, 365},
		{5, -1, 0.5},
		{125, -3, 0.125},
		{1, 22, 1e22},
		{1, -22, 1e-22},
		{1<<53 - 1, 0, 9007199254740991},
		{17976931348623157, 292, math.MaxFloat64},
	} {
		d, ok := DecFloat(false, tt.digits, tt.exp10)
		require.True(t, ok, "%de%d", tt.digits, tt.exp10)
		assert.Equal(t, tt.expected, d, "%de%d", tt.digits, tt.exp10)
	}
}

func TestDecFloat_RangeClamp(t *testing.T) {
	d, ok := DecFloat(false, 1, 400)
	require.True(t, ok)
	assert.True(t, math.IsInf(d, 1))

	d, ok = DecFloat(true, 1, 400)
	require.True(t, ok)
	assert.True(t, math.IsInf(d, -1))

	d, ok = DecFloat(false, 1, -400)
	require.True(t, ok)
	assert.Equal(t, uint64(0), math.Float64bits(d))

	d, ok = DecFloat(true, 1, -400)
	require.True(t, ok)
	assert.Equal(t, uint64(1)<<63, math.Float64bits(d))
}

// Whatever DecFloat resolves must agree bit-for-bit with the reference
// converter; abstaining is always allowed, a wrong answer never is.
func TestDecFloat_AgreesWithReference(t *testing.T) {
	cases := []struct {
		digits uint64
		exp10  int64
	}{
		{1, 23},
		{9007199254740993, 0},
		{123456789012345678, -20},
		{999999999999999999, 300},
		{17976931348623158, 292},
		{22250738585072014, -324},
		{49, -325},
		{5, -324},
		{123456789012345678, 290},
		{1, -308},
		{1, 308},
	}
	for _, tt := range cases {
		d, ok := DecFloat(false, tt.digits, tt.exp10)
		if !ok {
			continue
		}
		s := fmt.Sprintf("%de%d", tt.digits, tt.exp10)
		expected, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err, s)
		assert.Equal(t, math.Float64bits(expected), math.Float64bits(d), s)
	}
}

func TestDecFloatTruncated(t *testing.T) {
	// 10^18 * 10^-18: both the lower and upper bound round to 1.0.
	d, ok := DecFloatTruncated(false, 1_000_000_000_000_000_000, -18)
	require.True(t, ok)
	assert.Equal(t, 1.0, d)

	// 10^18 * 10^2 == 1e20.
	d, ok = DecFloatTruncated(false, 1_000_000_000_000_000_000, 2)
	require.True(t, ok)
	assert.Equal(t, 1e20, d)

	// Out of table range: always abstain.
	_, ok = DecFloatTruncated(false, 1_000_000_000_000_000_000, 400)
	assert.False(t, ok)
	_, ok = DecFloatTruncated(false, 1_000_000_000_000_000_000, -400)
	assert.False(t, ok)
}

func TestPow10Mant128(t *testing.T) {
	// Exact powers: 10^0 and 10^1 have trivial normalized mantissas.
	assert.Equal(t, uint128{0x8000000000000000, 0}, pow10Mant128[0-smallestPowerOfTen])
	assert.Equal(t, uint128{0xA000000000000000, 0}, pow10Mant128[1-smallestPowerOfTen])
	// 10^-1 rounds up in the last place.
	assert.Equal(t, uint128{0xCCCCCCCCCCCCCCCC, 0xCCCCCCCCCCCCCCCD}, pow10Mant128[-1-smallestPowerOfTen])
	// Table endpoints.
	assert.Equal(t, uint128{0xEEF453D6923BD65A, 0x113FAA2906A13B40}, pow10Mant128[0])
	assert.Equal(t, uint128{0x8E679C2F5E44FF8F, 0x570F09EAA7EA7648}, pow10Mant128[largestPowerOfTen-smallestPowerOfTen])
	// Every entry is normalized.
	for i, m := range pow10Mant128 {
		assert.NotZero(t, m.hi>>63, i)
	}
}
