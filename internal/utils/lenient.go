package utils // package utils provides small parsing helpers shared by the ledger and the menu

import (
	"strconv"
	"strings"
)

// LeadingInt parses the integer at the start of s the way a stream
// extraction does: leading whitespace is skipped, one optional sign is
// accepted and digits are consumed up to the first non-digit.  When no
// digit is found the result is 0.  Trailing garbage is ignored, so
// "12x" yields 12 and "x12" yields 0.
func LeadingInt(s string) int {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == digitsStart {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// out of range for int
		return 0
	}
	return n
}

// LeadingFloat parses the longest decimal number at the start of s
// (sign, digits, fraction, exponent).  Like LeadingInt it returns 0 when
// s does not start with a number.
func LeadingFloat(s string) float64 {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	mantissa := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		mantissa++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			mantissa++
		}
	}
	if mantissa == 0 {
		return 0
	}
	end := i
	// exponent counts only when at least one digit follows it
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			end = k
		}
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return f
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
