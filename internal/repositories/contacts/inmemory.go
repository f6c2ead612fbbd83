package contacts

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/assistant/internal/common"
	"github.com/dmitrijs2005/assistant/internal/logging"
	"github.com/dmitrijs2005/assistant/internal/models"
	"github.com/dmitrijs2005/assistant/internal/models/values"
	"github.com/dmitrijs2005/assistant/internal/storage"
)

// InMemoryRepository implements Repository over a map plus an ordered key list.
type InMemoryRepository struct {
	store storage.Storage[*models.Contact]
	log   logging.Logger

	items map[string]*models.Contact
	keys  []string
}

// NewInMemoryRepository loads all contacts from store.
func NewInMemoryRepository(ctx context.Context, store storage.Storage[*models.Contact], log logging.Logger) (*InMemoryRepository, error) {
	loaded, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load contacts: %w", err)
	}

	r := &InMemoryRepository{
		store: store,
		log:   log.With("component", "contacts_repository"),
		items: make(map[string]*models.Contact, len(loaded)),
		keys:  make([]string, 0, len(loaded)),
	}
	for i, c := range loaded {
		if c == nil {
			return nil, fmt.Errorf("load contacts: entry %d is empty", i)
		}
		if err := r.Add(c); err != nil {
			return nil, fmt.Errorf("load contacts: %w", err)
		}
	}

	r.log.Debug(ctx, "contacts loaded", "count", len(r.keys))
	return r, nil
}

func (r *InMemoryRepository) Add(c *models.Contact) error {
	key := c.Key()
	if _, ok := r.items[key]; ok {
		return common.NewAlreadyExists("Contact " + c.Name().String())
	}
	r.items[key] = c
	r.keys = append(r.keys, key)
	return nil
}

func (r *InMemoryRepository) Get(name string) (*models.Contact, error) {
	c, ok := r.items[values.NameKey(name)]
	if !ok {
		return nil, common.NewNotFound("Contact: " + name)
	}
	return c, nil
}

func (r *InMemoryRepository) GetOr(name string, def *models.Contact) *models.Contact {
	if c, ok := r.items[values.NameKey(name)]; ok {
		return c
	}
	return def
}

func (r *InMemoryRepository) Delete(name string) error {
	key := values.NameKey(name)
	if _, ok := r.items[key]; !ok {
		return common.NewNotFound("Contact: " + name)
	}
	delete(r.items, key)
	r.keys = slices.DeleteFunc(r.keys, func(k string) bool { return k == key })
	return nil
}

func (r *InMemoryRepository) Find(query string) []*models.Contact {
	var out []*models.Contact
	for _, k := range r.keys {
		if c := r.items[k]; c.IsMatching(query) {
			out = append(out, c)
		}
	}
	return out
}

func (r *InMemoryRepository) All() []*models.Contact {
	out := make([]*models.Contact, 0, len(r.keys))
	for _, k := range r.keys {
		out = append(out, r.items[k])
	}
	return out
}

func (r *InMemoryRepository) Flush(ctx context.Context) error {
	if err := r.store.Save(ctx, r.All()); err != nil {
		return fmt.Errorf("flush contacts: %w", err)
	}
	r.log.Info(ctx, "contacts flushed", "count", len(r.keys))
	return nil
}
