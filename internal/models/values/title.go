package values

import (
	"strings"

	"github.com/dmitrijs2005/assistant/internal/common"
)

// Title is the non-empty heading of a note.
type Title struct {
	value string
}

// NewTitle trims raw and rejects an empty result.
func NewTitle(raw string) (Title, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Title{}, common.NewValidation("title", common.KindEmpty, "Text couldn't be empty")
	}
	return Title{value: value}, nil
}

func (t Title) String() string {
	return t.value
}

func (t Title) Equal(other Title) bool {
	return t.value == other.value
}
