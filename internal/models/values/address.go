package values

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/assistant/internal/common"
)

const (
	addressMinLen = 5
	addressMaxLen = 200
)

var (
	addressSpaces      = regexp.MustCompile(`\s+`)
	addressDisallowed  = regexp.MustCompile(`[^a-zA-Zа-яА-ЯіІїЇєЄґҐ0-9\s.,\-/]`)
	addressDots        = regexp.MustCompile(`\.+`)
	addressCommas      = regexp.MustCompile(`,+`)
	addressSpaceBefore = regexp.MustCompile(`\s+([.,])`)
	addressLetter      = regexp.MustCompile(`[a-zA-Zа-яА-ЯіІїЇєЄґҐ]`)
	addressDigit       = regexp.MustCompile(`\d`)
)

// Address is a free-form postal address with a building number.
type Address struct {
	value string
}

// NewAddress normalizes and validates raw.
func NewAddress(raw string) (Address, error) {
	value := NormalizeAddress(raw)

	if value == "" {
		return Address{}, common.NewValidation("address", common.KindEmpty, "Address should not be empty")
	}

	n := utf8.RuneCountInString(value)
	if n < addressMinLen {
		return Address{}, common.NewValidation("address", common.KindRange, "Address is too short")
	}
	if n > addressMaxLen {
		return Address{}, common.NewValidation("address", common.KindRange, "Address is too long")
	}

	if !addressLetter.MatchString(value) {
		return Address{}, common.NewValidation("address", common.KindFormat, "Address must contain letters")
	}
	if !addressDigit.MatchString(value) {
		return Address{}, common.NewValidation("address", common.KindFormat, "Address must contain a building number")
	}

	return Address{value: value}, nil
}

// NormalizeAddress collapses whitespace, drops characters other than
// letters, digits, spaces and . , - /, squeezes repeated dots and commas and
// removes spaces in front of them.
func NormalizeAddress(raw string) string {
	value := strings.TrimSpace(raw)
	value = addressSpaces.ReplaceAllString(value, " ")
	value = addressDisallowed.ReplaceAllString(value, "")
	value = addressDots.ReplaceAllString(value, ".")
	value = addressCommas.ReplaceAllString(value, ",")
	value = addressSpaceBefore.ReplaceAllString(value, "$1")
	// dropped characters may leave doubled or edge spaces behind
	value = addressSpaces.ReplaceAllString(value, " ")
	return strings.TrimSpace(value)
}

func (a Address) String() string {
	return a.value
}

func (a Address) Equal(other Address) bool {
	return a.value == other.value
}
