package scanner

// scanDecimal lexes the remainder of a decimal literal starting at s.offset:
// digits around an optional single point, then an optional e/E exponent.
//
// The significand accumulator may overflow while the digit loops run; if more
// than 19 digits were seen, the digit window is re-scanned afterwards into a
// fresh accumulator that stops before overflowing, and the literal is marked
// truncated.
func (s *scanner) scanDecimal(isNegative, hasLeadingZero bool) (Number, error) {
	src := s.src
	strlen := len(src)
	index := s.offset

	var digits uint64
	var exponent int64
	indexOfFirstDigit := index

	// Two loops around the point beat a single loop with a point flag for
	// inputs that have no fractional part at all.
	for ; index < strlen; index++ {
		c := src[index]
		if !isDigit(c) {
			break
		}
		digits = digits*10 + uint64(c-'0') // may overflow, repaired below
	}
	virtualIndexOfPoint := index
	var digitCount int
	if index < strlen && src[index] == '.' {
		index++
		for ; index < strlen; index++ {
			c := src[index]
			if !isDigit(c) {
				break
			}
			digits = digits*10 + uint64(c-'0') // may overflow, repaired below
		}
		digitCount = index - indexOfFirstDigit - 1
		exponent = int64(virtualIndexOfPoint-index) + 1
	} else {
		digitCount = index - indexOfFirstDigit
	}
	indexAfterDigits := index

	var expNumber int64
	if index < strlen && (src[index] == 'e' || src[index] == 'E') {
		index++
		negExp := false
		if index < strlen && (src[index] == '+' || src[index] == '-') {
			negExp = src[index] == '-'
			index++
		}
		if index >= strlen || !isDigit(src[index]) {
			return s.fail()
		}
		for ; index < strlen; index++ {
			c := src[index]
			if !isDigit(c) {
				break
			}
			if expNumber < minimalEightDigitInteger {
				expNumber = expNumber*10 + int64(c-'0')
			}
		}
		if negExp {
			expNumber = -expNumber
		}
		exponent += expNumber
	}

	index = skipWhitespace(src, index)
	if index < strlen {
		return s.fail()
	}
	if !hasLeadingZero && digitCount == 0 {
		// No digit appeared at all; this also rejects a lone point.
		return s.fail()
	}

	num := Number{
		Kind:     Decimal,
		Negative: isNegative,
		Digits:   digits,
		Exponent: exponent,
	}

	if digitCount > 19 {
		// The accumulator may have overflowed. Re-scan the digit window,
		// stopping before a 20th digit can be appended.
		digits = 0
		skipCountInTruncatedDigits := 0
		for index = indexOfFirstDigit; index < indexAfterDigits; index++ {
			c := src[index]
			if c == '.' {
				skipCountInTruncatedDigits++
			} else {
				if digits < minimalNineteenDigitInteger {
					digits = digits*10 + uint64(c-'0')
				} else {
					break
				}
			}
		}
		num.Digits = digits
		num.Truncated = index < indexAfterDigits
		if num.Truncated {
			num.TruncatedExponent = int64(virtualIndexOfPoint-index+skipCountInTruncatedDigits) + expNumber
		}
	}

	return num, nil
}
