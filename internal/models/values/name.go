package values

import (
	"strings"
	"unicode"

	"github.com/dmitrijs2005/assistant/internal/common"
)

// Name is a contact name: letters separated by single spaces.
type Name struct {
	value string
}

// NewName validates raw and returns a Name. The input is not normalized:
// leading, trailing or doubled spaces are rejected instead of fixed.
func NewName(raw string) (Name, error) {
	if raw == "" {
		return Name{}, common.NewValidation("name", common.KindEmpty, "Name should not be empty")
	}

	for _, r := range raw {
		if !unicode.IsLetter(r) && r != ' ' {
			return Name{}, common.NewValidation("name", common.KindFormat, "Name can contain only letters and spaces")
		}
	}

	if strings.Contains(raw, "  ") || strings.HasPrefix(raw, " ") || strings.HasSuffix(raw, " ") {
		return Name{}, common.NewValidation("name", common.KindFormat, "Incorrect usage of spaces in name")
	}

	return Name{value: raw}, nil
}

// String returns the name as entered.
func (n Name) String() string {
	return n.value
}

// Key is the lookup key used by the contacts repository.
func (n Name) Key() string {
	return NameKey(n.value)
}

// Equal compares names case-insensitively.
func (n Name) Equal(other Name) bool {
	return strings.EqualFold(n.value, other.value)
}

// NameKey folds a raw name into a repository key.
func NameKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
