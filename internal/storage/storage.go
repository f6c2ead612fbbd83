package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/dmitrijs2005/assistant/internal/filex"
)

// Storage loads and saves a whole collection.
type Storage[V any] interface {
	// Load returns the saved collection, or an empty one when nothing was saved yet.
	Load(ctx context.Context) ([]V, error)

	// Save replaces the saved collection with items.
	Save(ctx context.Context, items []V) error
}

// FileStorage keeps a collection in a single file encoded by a Serializer.
type FileStorage[V any] struct {
	path string
	ser  Serializer[V]
}

// NewFileStorage stores the collection in dir/<stem><ext>, where ext comes
// from the serializer.
func NewFileStorage[V any](dir, stem string, ser Serializer[V]) *FileStorage[V] {
	return &FileStorage[V]{
		path: filepath.Join(dir, stem+ser.Extension()),
		ser:  ser,
	}
}

// Path returns the file the collection is stored in.
func (s *FileStorage[V]) Path() string {
	return s.path
}

// Load reads and decodes the file. A missing or empty file yields no items.
func (s *FileStorage[V]) Load(ctx context.Context) ([]V, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	items, err := s.ser.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return items, nil
}

// Save encodes items and atomically replaces the file.
func (s *FileStorage[V]) Save(ctx context.Context, items []V) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := s.ser.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}
	if err := filex.WriteFileAtomic(s.path, data, 0o600); err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	return nil
}

// Memory is a Storage that only lives as long as the process. It backs the
// "memory" storage mode and is handy in tests.
type Memory[V any] struct {
	mu    sync.Mutex
	items []V
	saves int
}

// NewMemory returns a Memory pre-filled with items.
func NewMemory[V any](items ...V) *Memory[V] {
	return &Memory[V]{items: append([]V(nil), items...)}
}

func (m *Memory[V]) Load(ctx context.Context) ([]V, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]V(nil), m.items...), nil
}

func (m *Memory[V]) Save(ctx context.Context, items []V) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append([]V(nil), items...)
	m.saves++
	return nil
}

// Saves returns how many times Save succeeded.
func (m *Memory[V]) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
