package notes

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/dmitrijs2005/assistant/internal/common"
	"github.com/dmitrijs2005/assistant/internal/logging"
	"github.com/dmitrijs2005/assistant/internal/models"
	"github.com/dmitrijs2005/assistant/internal/models/values"
	"github.com/dmitrijs2005/assistant/internal/storage"
)

// InMemoryRepository implements Repository and IDGenerator.
type InMemoryRepository struct {
	store storage.Storage[*models.Note]
	log   logging.Logger

	items  map[int]*models.Note
	lastID int
}

// NewInMemoryRepository loads all notes from store.
func NewInMemoryRepository(ctx context.Context, store storage.Storage[*models.Note], log logging.Logger) (*InMemoryRepository, error) {
	loaded, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load notes: %w", err)
	}

	r := &InMemoryRepository{
		store: store,
		log:   log.With("component", "notes_repository"),
		items: make(map[int]*models.Note, len(loaded)),
	}
	for i, n := range loaded {
		if n == nil {
			return nil, fmt.Errorf("load notes: entry %d is empty", i)
		}
		if err := r.Add(n); err != nil {
			return nil, fmt.Errorf("load notes: %w", err)
		}
	}

	r.log.Debug(ctx, "notes loaded", "count", len(r.items), "last_id", r.lastID)
	return r, nil
}

// Add stores n and moves the id counter past n's id.
func (r *InMemoryRepository) Add(n *models.Note) error {
	if _, ok := r.items[n.ID()]; ok {
		return common.NewAlreadyExists("Note " + strconv.Itoa(n.ID()))
	}
	r.items[n.ID()] = n
	r.lastID = max(r.lastID, n.ID())
	return nil
}

func (r *InMemoryRepository) Get(id int) (*models.Note, error) {
	n, ok := r.items[id]
	if !ok {
		return nil, common.NewNotFound("Note: " + strconv.Itoa(id))
	}
	return n, nil
}

func (r *InMemoryRepository) GetOr(id int, def *models.Note) *models.Note {
	if n, ok := r.items[id]; ok {
		return n
	}
	return def
}

func (r *InMemoryRepository) Delete(id int) error {
	if _, ok := r.items[id]; !ok {
		return common.NewNotFound("Note: " + strconv.Itoa(id))
	}
	delete(r.items, id)
	return nil
}

func (r *InMemoryRepository) Find(query string) []*models.Note {
	return r.filter(func(n *models.Note) bool { return n.Contains(query) })
}

func (r *InMemoryRepository) FindByTags(tags values.TagSet) []*models.Note {
	return r.filter(func(n *models.Note) bool { return n.CountMatchingTags(tags) > 0 })
}

func (r *InMemoryRepository) All() []*models.Note {
	return r.filter(func(*models.Note) bool { return true })
}

// Generate returns the next unused id.
func (r *InMemoryRepository) Generate() int {
	r.lastID++
	return r.lastID
}

func (r *InMemoryRepository) Flush(ctx context.Context) error {
	if err := r.store.Save(ctx, r.All()); err != nil {
		return fmt.Errorf("flush notes: %w", err)
	}
	r.log.Info(ctx, "notes flushed", "count", len(r.items))
	return nil
}

// filter returns the matching notes ordered by id.
func (r *InMemoryRepository) filter(keep func(*models.Note) bool) []*models.Note {
	ids := make([]int, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var out []*models.Note
	for _, id := range ids {
		if n := r.items[id]; keep(n) {
			out = append(out, n)
		}
	}
	return out
}
