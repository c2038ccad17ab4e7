// Package phone validates and reformats free-text Russian phone numbers
// into the canonical 8-DDD-DDD-DD-DD display form.
package phone

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrInvalidCharacters means the input contains characters outside
	// digits, spaces, parentheses, hyphens, dots, and plus signs.
	ErrInvalidCharacters = errors.New("phone: invalid characters")

	// ErrWrongDigitCount means the digit count does not match the prefix:
	// 11 digits for numbers starting with +7 or 8, 10 otherwise.
	ErrWrongDigitCount = errors.New("phone: wrong digit count")
)

var (
	allowedChars = regexp.MustCompile(`^[0-9\s().+-]+$`)
	digitsOnly   = regexp.MustCompile(`[^0-9]`)
)

// Normalize validates raw and returns it formatted as 8-DDD-DDD-DD-DD.
// A leading "+7" or "8" is treated as a trunk/country code: the number
// must then carry 11 digits and the leading digit is dropped before
// formatting. The character check runs before the digit count check, so
// an input failing both reports ErrInvalidCharacters.
func Normalize(raw string) (string, error) {
	if !allowedChars.MatchString(raw) {
		return "", ErrInvalidCharacters
	}

	digits := digitsOnly.ReplaceAllString(raw, "")
	prefixed := strings.HasPrefix(raw, "+7") || strings.HasPrefix(raw, "8")

	if (prefixed && len(digits) != 11) || (!prefixed && len(digits) != 10) {
		return "", ErrWrongDigitCount
	}

	if prefixed {
		digits = digits[1:]
	}

	return fmt.Sprintf("8-%s-%s-%s-%s", digits[:3], digits[3:6], digits[6:8], digits[8:]), nil
}
