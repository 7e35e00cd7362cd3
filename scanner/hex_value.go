package scanner

// scanHex lexes the remainder of a hexadecimal literal, starting at s.offset
// just past the "0x" prefix. The structure mirrors scanDecimal with three
// differences: digits come from the classifier table and shift the
// accumulator by 4, the point contributes *4 to the exponent, and the binary
// exponent indicator p/P is mandatory.
func (s *scanner) scanHex(isNegative bool) (Number, error) {
	src := s.src
	strlen := len(src)
	index := s.offset

	if index >= strlen {
		return s.fail()
	}

	var digits uint64
	var exponent int64
	indexOfFirstDigit := index
	virtualIndexOfPoint := -1
	for ; index < strlen; index++ {
		hexValue := hexDigitClass[src[index]]
		if hexValue >= 0 {
			digits = digits<<4 | uint64(hexValue) // may overflow, repaired below
		} else if hexValue == decimalPointClass {
			if virtualIndexOfPoint != -1 {
				return s.fail()
			}
			virtualIndexOfPoint = index
		} else {
			break
		}
	}
	indexAfterDigits := index
	var digitCount int
	if virtualIndexOfPoint == -1 {
		digitCount = indexAfterDigits - indexOfFirstDigit
		virtualIndexOfPoint = indexAfterDigits
	} else {
		digitCount = indexAfterDigits - indexOfFirstDigit - 1
		exponent = int64(virtualIndexOfPoint-index+1) * 4
	}

	var expNumber int64
	hasExponent := false
	if index < strlen && (src[index] == 'p' || src[index] == 'P') {
		hasExponent = true
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

	// Without p/P the literal is rejected whatever the trailing-residue arm
	// finds, since the exponent is mandatory; the combined condition is kept
	// whole so it stays correct if the checks are ever reordered.
	index = skipWhitespace(src, index)
	if index < strlen || digitCount == 0 || !hasExponent {
		return s.fail()
	}

	num := Number{
		Kind:     Hex,
		Negative: isNegative,
		Digits:   digits,
		Exponent: exponent,
	}

	if digitCount > 16 {
		// More than 16 hex digits overflow the accumulator. Re-scan,
		// stopping before a digit can shift out the top bits.
		digits = 0
		skipCountInTruncatedDigits := 0
		for index = indexOfFirstDigit; index < indexAfterDigits; index++ {
			hexValue := hexDigitClass[src[index]]
			if hexValue >= 0 {
				if digits < minimalNineteenDigitInteger {
					digits = digits<<4 | uint64(hexValue)
				} else {
					break
				}
			} else {
				skipCountInTruncatedDigits++
			}
		}
		num.Digits = digits
		num.Truncated = index < indexAfterDigits
		if num.Truncated {
			num.TruncatedExponent = int64(virtualIndexOfPoint-index+skipCountInTruncatedDigits)*4 + expNumber
		}
	}

	return num, nil
}
