// Package taxid validates 11-digit taxpayer identifiers that carry two
// trailing mod-11 check digits (the Brazilian CPF layout).
package taxid

import "fmt"

const (
	// Length is the number of digits in a complete identifier.
	Length = 11

	// PrefixLength is the number of digits before the check digits.
	PrefixLength = Length - 2
)

// IsWellFormed reports whether s is exactly 11 ASCII digits.
func IsWellFormed(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsValid reports whether s is well formed and both trailing digits match
// the digits computed from the preceding ones.
//
// Identifiers made of a single repeated digit satisfy the arithmetic but are
// never issued, so they are rejected as well.
func IsValid(s string) bool {
	if !IsWellFormed(s) || isRepeated(s) {
		return false
	}
	digits := toDigits(s)
	return checkDigit(digits, 10) == digits[9] && checkDigit(digits, 11) == digits[10]
}

// Complete appends both check digits to a 9-digit prefix.
func Complete(prefix string) (string, error) {
	if len(prefix) != PrefixLength || !IsWellFormed(prefix+"00") {
		return "", fmt.Errorf("prefix must be exactly %d numeric characters: %q", PrefixLength, prefix)
	}
	digits := make([]int, Length)
	copy(digits, toDigits(prefix))
	digits[9] = checkDigit(digits, 10)
	digits[10] = checkDigit(digits, 11)

	out := make([]byte, Length)
	for i, d := range digits {
		out[i] = byte('0' + d)
	}
	return string(out), nil
}

// checkDigit weighs the first weight-1 digits from weight down to 2. For
// weight 11 this includes the first check digit.
func checkDigit(digits []int, weight int) int {
	sum := 0
	for i := 0; i < weight-1; i++ {
		sum += digits[i] * (weight - i)
	}
	r := (sum * 10) % 11
	if r == 10 || r == 11 {
		return 0
	}
	return r
}

func toDigits(s string) []int {
	digits := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		digits[i] = int(s[i] - '0')
	}
	return digits
}

func isRepeated(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
