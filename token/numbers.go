package token

// number scans a numeric token at the start of d, excluding any leading
// sign. It returns the token length and whether the token is a float
// (has a fraction or exponent).
func number(d []byte) (int, bool, error) {
	digits := asciiDigits(d)
	if digits == 0 {
		return 0, false, ErrNumber
	}
	f := fract(d[digits:])
	e := exp(d[digits+f:])
	if digits > 1 && d[0] == '0' {
		return 0, false, ErrNumberLeadingZero
	}
	if f+e == 0 {
		return digits, false, nil
	}
	return digits + f + e, true, nil
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}

func fract(d []byte) int {
	// . must be followed by 1 or more digits rfc 7159
	if len(d) < 2 || d[0] != '.' || !asciiDigit(d[1]) {
		return 0
	}
	i := 2
	for i < len(d) && asciiDigit(d[i]) {
		i++
	}
	return i
}
