package contacts

import (
	"context"

	"github.com/dmitrijs2005/assistant/internal/models"
)

// Repository describes storage and query operations for contacts.
type Repository interface {
	// Add stores a new contact; an existing name fails with AlreadyExists.
	Add(c *models.Contact) error

	// Get returns the contact with the given name or a NotFound error.
	Get(name string) (*models.Contact, error)

	// GetOr returns the contact with the given name, or def when absent.
	GetOr(name string, def *models.Contact) *models.Contact

	// Delete removes the contact; an unknown name fails with NotFound.
	Delete(name string) error

	// Find returns the contacts for which Contact.IsMatching(query) holds.
	Find(query string) []*models.Contact

	// All returns every contact in insertion order.
	All() []*models.Contact

	// Flush writes the whole collection to storage.
	Flush(ctx context.Context) error
}
