package notes

import (
	"context"

	"github.com/dmitrijs2005/assistant/internal/models"
	"github.com/dmitrijs2005/assistant/internal/models/values"
)

// Repository describes storage and query operations for notes.
type Repository interface {
	// Add stores a new note; a used id fails with AlreadyExists.
	Add(n *models.Note) error

	// Get returns the note with the given id or a NotFound error.
	Get(id int) (*models.Note, error)

	// GetOr returns the note with the given id, or def when absent.
	GetOr(id int, def *models.Note) *models.Note

	// Delete removes the note; an unknown id fails with NotFound.
	Delete(id int) error

	// Find returns notes whose title or body contains query, ignoring case.
	Find(query string) []*models.Note

	// FindByTags returns notes sharing at least one tag with tags.
	FindByTags(tags values.TagSet) []*models.Note

	// All returns every note ordered by id.
	All() []*models.Note

	// Flush writes the whole collection to storage.
	Flush(ctx context.Context) error
}

// IDGenerator hands out note ids.
type IDGenerator interface {
	// Generate returns an id greater than every id issued or loaded before.
	Generate() int
}
