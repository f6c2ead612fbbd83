package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/assistant/internal/logging"
	"github.com/dmitrijs2005/assistant/internal/models"
	"github.com/dmitrijs2005/assistant/internal/repositories/contacts"
	"github.com/dmitrijs2005/assistant/internal/repositories/notes"
	"github.com/dmitrijs2005/assistant/internal/storage"
	"github.com/stretchr/testify/require"
)

func newContactsService(t *testing.T) (ContactsService, *storage.Memory[*models.Contact]) {
	t.Helper()
	store := storage.NewMemory[*models.Contact]()
	repo, err := contacts.NewInMemoryRepository(context.Background(), store, logging.NewNop())
	require.NoError(t, err)
	return NewContactsService(repo, logging.NewNop()), store
}

func newNotesService(t *testing.T, seed ...*models.Note) (NotesService, *storage.Memory[*models.Note]) {
	t.Helper()
	store := storage.NewMemory(seed...)
	repo, err := notes.NewInMemoryRepository(context.Background(), store, logging.NewNop())
	require.NoError(t, err)
	return NewNotesService(repo, repo, logging.NewNop()), store
}

func withToday(t *testing.T, ts time.Time) {
	t.Helper()
	orig := timeNow
	timeNow = func() time.Time { return ts }
	t.Cleanup(func() { timeNow = orig })
}
