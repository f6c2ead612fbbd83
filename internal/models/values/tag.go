package values

import (
	"regexp"
	"sort"
	"strings"

	"github.com/dmitrijs2005/assistant/internal/common"
)

var (
	tagSpaces     = regexp.MustCompile(`\s+`)
	tagDisallowed = regexp.MustCompile(`[^a-z0-9-]`)
)

// Tag is a lowercase slug such as "my-work".
type Tag struct {
	value string
}

// NewTag normalizes raw and rejects an empty result.
func NewTag(raw string) (Tag, error) {
	value := NormalizeTag(raw)
	if value == "" {
		return Tag{}, common.NewValidation("tag", common.KindEmpty, "Tag couldn't be empty")
	}
	return Tag{value: value}, nil
}

// NormalizeTag lowercases and trims raw, turns whitespace runs into "-" and
// drops everything outside [a-z0-9-]. It is idempotent.
func NormalizeTag(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	value = tagSpaces.ReplaceAllString(value, "-")
	return tagDisallowed.ReplaceAllString(value, "")
}

func (t Tag) String() string {
	return t.value
}

func (t Tag) Equal(other Tag) bool {
	return t.value == other.value
}

// TagSet is an unordered set of unique tags.
type TagSet map[Tag]struct{}

// NewTagSet builds a set from tags, dropping duplicates.
func NewTagSet(tags ...Tag) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

// ParseTags builds a set from raw strings. Blank entries are skipped, so
// "work, ,home" yields two tags; any other invalid entry fails the whole call.
func ParseTags(raw ...string) (TagSet, error) {
	s := make(TagSet, len(raw))
	for _, r := range raw {
		if strings.TrimSpace(r) == "" {
			continue
		}
		t, err := NewTag(r)
		if err != nil {
			return nil, err
		}
		s[t] = struct{}{}
	}
	return s, nil
}

// Has reports whether t is in the set.
func (s TagSet) Has(t Tag) bool {
	_, ok := s[t]
	return ok
}

// CountCommon returns the size of the intersection of s and other.
func (s TagSet) CountCommon(other TagSet) int {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	n := 0
	for t := range small {
		if large.Has(t) {
			n++
		}
	}
	return n
}

// Sorted returns the tags ordered by value.
func (s TagSet) Sorted() []Tag {
	out := make([]Tag, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].value < out[j].value })
	return out
}

// Strings returns the sorted tag values.
func (s TagSet) Strings() []string {
	sorted := s.Sorted()
	out := make([]string, len(sorted))
	for i, t := range sorted {
		out[i] = t.value
	}
	return out
}

// Clone returns an independent copy of s.
func (s TagSet) Clone() TagSet {
	c := make(TagSet, len(s))
	for t := range s {
		c[t] = struct{}{}
	}
	return c
}
