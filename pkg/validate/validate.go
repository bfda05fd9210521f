package validate

import (
	"regexp"
	"strings"
	"unicode"
)

var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Email reports whether s looks like an email address. The check is the
// loose form-level one the app uses before submitting; the server remains
// the authority.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// Password reports whether s satisfies the platform's password policy:
// at least 8 characters with an upper-case letter, a lower-case letter,
// a digit and a symbol.
func Password(s string) bool {
	if len(s) < 8 {
		return false
	}

	var upper, lower, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

// CPF reports whether s is a valid CPF (the Brazilian natural-person
// registry number used as the platform's user identifier). Accepts both the
// formatted ("111.444.777-35") and bare 11-digit forms and verifies the two
// check digits.
func CPF(s string) bool {
	digits := onlyDigits(s)
	if len(digits) != 11 {
		return false
	}
	if allSame(digits) {
		return false
	}

	if cpfCheckDigit(digits[:9]) != int(digits[9]-'0') {
		return false
	}
	return cpfCheckDigit(digits[:10]) == int(digits[10]-'0')
}

// CNPJ reports whether s is a valid CNPJ (the company registry number used
// as the platform's startup identifier). Accepts formatted
// ("12.345.678/0001-95") and bare 14-digit forms and verifies the check
// digits.
func CNPJ(s string) bool {
	digits := onlyDigits(s)
	if len(digits) != 14 {
		return false
	}
	if allSame(digits) {
		return false
	}

	if cnpjCheckDigit(digits[:12]) != int(digits[12]-'0') {
		return false
	}
	return cnpjCheckDigit(digits[:13]) == int(digits[13]-'0')
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// allSame rejects degenerate sequences like "111.111.111-11" that pass the
// check-digit arithmetic but are not assigned.
func allSame(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

func cpfCheckDigit(digits string) int {
	weight := len(digits) + 1
	sum := 0
	for _, r := range digits {
		sum += int(r-'0') * weight
		weight--
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

func cnpjCheckDigit(digits string) int {
	weights := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	offset := len(weights) - len(digits)
	sum := 0
	for i, r := range digits {
		sum += int(r-'0') * weights[offset+i]
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}
