package values

import (
	"regexp"
	"strings"

	"github.com/dmitrijs2005/assistant/internal/common"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email is a trimmed, lowercased e-mail address.
type Email struct {
	value string
}

// NewEmail normalizes and validates raw.
func NewEmail(raw string) (Email, error) {
	value := NormalizeEmail(raw)

	if value == "" {
		return Email{}, common.NewValidation("email", common.KindEmpty, "Email should not be empty")
	}
	if !emailPattern.MatchString(value) {
		return Email{}, common.NewValidation("email", common.KindFormat, "Invalid email format")
	}

	return Email{value: value}, nil
}

// NormalizeEmail trims and lowercases raw.
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func (e Email) String() string {
	return e.value
}

func (e Email) Equal(other Email) bool {
	return e.value == other.value
}
