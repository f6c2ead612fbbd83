package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/assistant/internal/models"
	"github.com/dmitrijs2005/assistant/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ storage.Storage[*models.Contact] = (*ContactsStorage)(nil)
	_ storage.Storage[*models.Note]    = (*NotesStorage)(nil)
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func contactsFixture(t *testing.T) []*models.Contact {
	t.Helper()
	email := "ivan@example.com"
	address := "Kyiv, Khreschatyk 1"
	recs := []models.ContactRecord{
		{Name: "Zoe", Phones: []string{"0671234567"}},
		{Name: "Ivan", Phones: []string{"0991112233", "0501112233"}, Email: &email, Address: &address},
		{Name: "Anna"},
	}
	out := make([]*models.Contact, 0, len(recs))
	for _, r := range recs {
		c, err := models.ContactFromRecord(r)
		require.NoError(t, err)
		out = append(out, c)
	}
	return out
}

func notesFixture(t *testing.T) []*models.Note {
	t.Helper()
	recs := []models.NoteRecord{
		{NoteID: 2, Title: "Trip", Body: "pack\nbags", Tags: []string{"travel", "home"},
			CreatedAt: "2026-01-01T10:00:00Z", UpdatedAt: "2026-01-02T11:00:00.25+02:00"},
		{NoteID: 7, Title: "Empty", CreatedAt: "2026-02-01T10:00:00Z"},
	}
	out := make([]*models.Note, 0, len(recs))
	for _, r := range recs {
		n, err := models.NoteFromRecord(r)
		require.NoError(t, err)
		out = append(out, n)
	}
	return out
}

func TestOpen_MigratesSchema(t *testing.T) {
	db := setupDB(t)

	for _, table := range []string{"contacts", "contact_phones", "notes", "note_tags"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, table)
	}

	require.NoError(t, RunMigrations(context.Background(), db), "migrations must be idempotent")
}

func TestContactsStorage_EmptyDatabase(t *testing.T) {
	items, err := NewContactsStorage(setupDB(t)).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestContactsStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	st := NewContactsStorage(setupDB(t))

	want := contactsFixture(t)
	require.NoError(t, st.Save(ctx, want))

	got, err := st.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Record(), got[i].Record())
	}

	require.NoError(t, st.Save(ctx, want[1:2]))
	got, err = st.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1, "save must replace the collection")
	assert.Equal(t, "Ivan", got[0].Name().String())
}

func TestNotesStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	st := NewNotesStorage(setupDB(t))

	want := notesFixture(t)
	require.NoError(t, st.Save(ctx, want))

	got, err := st.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for i := range want {
		assert.Equal(t, want[i].Record(), got[i].Record())
		assert.True(t, want[i].UpdatedAt().Equal(got[i].UpdatedAt()))
	}

	require.NoError(t, st.Save(ctx, nil))
	got, err = st.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSave_FailureKeepsPreviousSnapshot(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	st := NewNotesStorage(db)
	require.NoError(t, st.Save(ctx, notesFixture(t)))

	dup := notesFixture(t)
	dup = append(dup, dup[0])
	require.Error(t, st.Save(ctx, dup))

	got, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestOpen_FileDatabasePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "assistant.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewContactsStorage(db).Save(ctx, contactsFixture(t)))
	require.NoError(t, db.Close())

	db, err = Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	got, err := NewContactsStorage(db).Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}
