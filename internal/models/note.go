package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/assistant/internal/models/values"
)

// PreviewLength is the maximum number of runes kept from the first line of a
// note title or body in a preview.
const PreviewLength = 30

// now is a test seam for note timestamps.
var now = time.Now

// Note is a titled text with tags. The id is assigned once and never changes.
type Note struct {
	id        int
	title     values.Title
	body      values.Field
	tags      values.TagSet
	createdAt time.Time
	updatedAt time.Time
}

// NewNote creates a note stamped with the current time.
func NewNote(id int, title values.Title, body values.Field, tags values.TagSet) *Note {
	ts := now()
	return &Note{
		id:        id,
		title:     title,
		body:      body,
		tags:      cloneTags(tags),
		createdAt: ts,
		updatedAt: ts,
	}
}

func (n *Note) ID() int              { return n.id }
func (n *Note) Title() values.Title  { return n.title }
func (n *Note) Body() values.Field   { return n.body }
func (n *Note) CreatedAt() time.Time { return n.createdAt }
func (n *Note) UpdatedAt() time.Time { return n.updatedAt }

// Tags returns a copy of the tag set.
func (n *Note) Tags() values.TagSet { return n.tags.Clone() }

// NoteUpdate lists the fields to change; nil fields are left as they are.
type NoteUpdate struct {
	Title *values.Title
	Body  *values.Field
	Tags  *values.TagSet
}

// Edit applies u and refreshes the update time, even when nothing changed.
func (n *Note) Edit(u NoteUpdate) {
	if u.Title != nil {
		n.title = *u.Title
	}
	if u.Body != nil {
		n.body = *u.Body
	}
	if u.Tags != nil {
		n.tags = cloneTags(*u.Tags)
	}
	n.updatedAt = now()
}

// Contains reports whether substr occurs in the title or the body, ignoring case.
func (n *Note) Contains(substr string) bool {
	s := strings.ToLower(substr)
	return strings.Contains(strings.ToLower(n.title.String()), s) ||
		strings.Contains(strings.ToLower(n.body.String()), s)
}

// CountMatchingTags returns how many of tags the note carries.
func (n *Note) CountMatchingTags(tags values.TagSet) int {
	return n.tags.CountCommon(tags)
}

// NotePreview is a short read-only projection of a note for listings.
type NotePreview struct {
	ID        int
	Title     string
	Body      string
	Tags      []string
	UpdatedAt time.Time
}

// Preview returns the first line of title and body, each cut to PreviewLength runes.
func (n *Note) Preview() NotePreview {
	return NotePreview{
		ID:        n.id,
		Title:     shorten(n.title.String()),
		Body:      shorten(n.body.String()),
		Tags:      n.tags.Strings(),
		UpdatedAt: n.updatedAt,
	}
}

func (p NotePreview) String() string {
	tags := strings.Join(p.Tags, ", ")
	if tags == "" {
		tags = "-"
	}
	return fmt.Sprintf("#%d %s | %s | tags: %s | updated: %s",
		p.ID, p.Title, p.Body, tags, p.UpdatedAt.Format("2006-01-02 15:04"))
}

// String renders the whole note over several lines.
func (n *Note) String() string {
	tags := strings.Join(n.tags.Strings(), ", ")
	return fmt.Sprintf("Note #%d\nTitle: %s\nBody: %s\nTags: %s\nCreated at: %s\nUpdated at: %s",
		n.id, n.title, n.body, tags,
		n.createdAt.Format(time.DateTime), n.updatedAt.Format(time.DateTime))
}

func shorten(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimRight(s, "\r")
	r := []rune(s)
	if len(r) <= PreviewLength {
		return s
	}
	return string(r[:PreviewLength]) + "..."
}

func cloneTags(tags values.TagSet) values.TagSet {
	if tags == nil {
		return values.NewTagSet()
	}
	return tags.Clone()
}
