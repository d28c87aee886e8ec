package interpreter

import (
	"errors"
	"math"
	"strconv"
)

// ParseNumber reads a decimal float literal. Hex floats and digit
// separators are rejected; out-of-range literals saturate to ±Inf.
func ParseNumber(tok string) (float64, bool) {
	sign, body := 1, tok
	if body != "" && (body[0] == '+' || body[0] == '-') {
		if body[0] == '-' {
			sign = -1
		}
		body = body[1:]
	}
	switch {
	case equalFoldASCII(body, "inf"), equalFoldASCII(body, "infinity"):
		return math.Inf(sign), true
	case equalFoldASCII(body, "nan"):
		return math.NaN(), true
	}
	if !isDecimal(body) {
		return 0, false
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}

// isDecimal reports whether s is digits[.digits][e[sign]digits] with at
// least one mantissa digit on either side of the point.
func isDecimal(s string) bool {
	i, digits := 0, 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == exp {
			return false
		}
	}
	return i == len(s)
}

// equalFoldASCII compares s to the lowercase word lower, folding only
// ASCII letters in s. Unicode case mapping would let İnf through.
func equalFoldASCII(s, lower string) bool {
	if len(s) != len(lower) {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != lower[i] {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// FormatNumber renders v in shortest round-trip form without an exponent.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
