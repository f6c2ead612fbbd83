package values

import (
	"regexp"
	"strings"

	"github.com/dmitrijs2005/assistant/internal/common"
)

const (
	phonePrefix = "+380"
	phoneLength = 13
)

var nonDigits = regexp.MustCompile(`\D`)

// Phone is a Ukrainian phone number in canonical +380XXXXXXXXX form.
type Phone struct {
	value string
}

// NewPhone normalizes raw and validates the canonical form.
//
// Accepted inputs include +380671234567, 380671234567, 0671234567 and any of
// those with separators such as spaces, dashes or brackets.
func NewPhone(raw string) (Phone, error) {
	value := NormalizePhone(raw)

	if value == "" {
		return Phone{}, common.NewValidation("phone", common.KindEmpty, "Phone should not be empty")
	}
	if !isDigits(value[1:]) {
		return Phone{}, common.NewValidation("phone", common.KindFormat, "Phone number can contain only digits")
	}
	if !strings.HasPrefix(value, phonePrefix) {
		return Phone{}, common.NewValidation("phone", common.KindFormat, "Phone should start with +380")
	}
	if len(value) != phoneLength {
		return Phone{}, common.NewValidation("phone", common.KindRange, "Phone must be 13 characters long in format +380XXXXXXXXX")
	}

	return Phone{value: value}, nil
}

// NormalizePhone strips everything but digits and restores the +380 prefix
// for numbers written as 380... or 0....
func NormalizePhone(raw string) string {
	value := nonDigits.ReplaceAllString(raw, "")
	switch {
	case strings.HasPrefix(value, "380"):
		value = "+" + value
	case strings.HasPrefix(value, "0"):
		value = "+38" + value
	}
	return value
}

// String returns the canonical number.
func (p Phone) String() string {
	return p.value
}

// Equal reports whether both phones have the same canonical form.
func (p Phone) Equal(other Phone) bool {
	return p.value == other.value
}

// isDigits is false for an empty string.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
