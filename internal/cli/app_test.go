package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/assistant/internal/config"
	"github.com/dmitrijs2005/assistant/internal/logging"
	"github.com/dmitrijs2005/assistant/internal/models"
	"github.com/dmitrijs2005/assistant/internal/repositories/contacts"
	"github.com/dmitrijs2005/assistant/internal/repositories/notes"
	"github.com/dmitrijs2005/assistant/internal/services"
	"github.com/dmitrijs2005/assistant/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	*App
	contactsStore *storage.Memory[*models.Contact]
	notesStore    *storage.Memory[*models.Note]
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	ctx := context.Background()
	log := logging.NewNop()

	cs := storage.NewMemory[*models.Contact]()
	ns := storage.NewMemory[*models.Note]()
	cr, err := contacts.NewInMemoryRepository(ctx, cs, log)
	require.NoError(t, err)
	nr, err := notes.NewInMemoryRepository(ctx, ns, log)
	require.NoError(t, err)

	a := newApp(services.NewContactsService(cr, log), services.NewNotesService(nr, nr, log), NewOutput(io.Discard, true), log, 7)
	return &testApp{App: a, contactsStore: cs, notesStore: ns}
}

func (a *testApp) exec(t *testing.T, line string) string {
	t.Helper()
	reply, quit := a.Execute(context.Background(), line)
	assert.False(t, quit, "unexpected quit on %q", line)
	return reply
}

func TestExecute_SystemCommands(t *testing.T) {
	a := newTestApp(t)

	assert.Equal(t, "How can I help you?", a.exec(t, "hello"))
	assert.Equal(t, "How can I help you?", a.exec(t, "HELLO"))
	assert.Empty(t, a.exec(t, "   "))

	help := a.exec(t, "help")
	assert.True(t, strings.HasPrefix(help, "Available commands:"))
	for _, name := range []string{"add", "birthdays", "sort-notes-tags", "exit"} {
		assert.Contains(t, help, "\n  "+name)
	}

	reply := a.exec(t, "fly")
	assert.True(t, strings.HasPrefix(reply, "Error: Invalid command. Available commands: add, add-note, all,"), reply)

	for _, word := range []string{"exit", "close", "Quit"} {
		reply, quit := a.Execute(context.Background(), word)
		assert.True(t, quit, word)
		assert.Equal(t, "Good bye!", reply)
	}
}

func TestExecute_UnbalancedQuotes(t *testing.T) {
	a := newTestApp(t)

	assert.True(t, strings.HasPrefix(a.exec(t, `add "Ivan 0671234567`), "Error: Invalid input"))
}

func TestExecute_ContactLifecycle(t *testing.T) {
	a := newTestApp(t)

	assert.Equal(t, "Contact added.", a.exec(t, "add Ivan 067-123-45-67"))
	assert.Equal(t, "Phone added.", a.exec(t, "add ivan 0501112233"))
	assert.Equal(t, "Ivan: +380671234567; +380501112233", a.exec(t, "phone IVAN"))

	assert.Equal(t, "Phone changed.", a.exec(t, "change Ivan 0501112233 0509998877"))
	assert.Equal(t, "Email set.", a.exec(t, "set-email Ivan ivan@example.com"))
	assert.Equal(t, "Birthday set.", a.exec(t, "set-birthday Ivan 5/3/1990"))
	assert.Equal(t, "Ivan: 05.03.1990", a.exec(t, "show-birthday Ivan"))
	assert.Equal(t, "Address set.", a.exec(t, "set-address Ivan Kyiv, Khreshchatyk 1"))

	all := a.exec(t, "all")
	for _, want := range []string{"Ivan", "+380671234567", "+380509998877", "ivan@example.com", "05.03.1990", "Kyiv, Khreshchatyk 1"} {
		assert.Contains(t, all, want)
	}

	assert.Equal(t, "Phone deleted.", a.exec(t, "delete-phone Ivan 0509998877"))
	assert.Equal(t, "Warning: Phone 0509998877 not found for Ivan", a.exec(t, "delete-phone Ivan 0509998877"))
	assert.Equal(t, "Email deleted.", a.exec(t, "delete-email Ivan"))
	assert.Equal(t, "Birthday deleted.", a.exec(t, "delete-birthday Ivan"))
	assert.Equal(t, "Error: Birthday of Ivan not found", a.exec(t, "show-birthday Ivan"))
	assert.Equal(t, "Address deleted.", a.exec(t, "delete-address Ivan"))
	assert.Equal(t, "Contact deleted.", a.exec(t, "delete-contact Ivan"))
	assert.Equal(t, "No contacts yet.", a.exec(t, "all"))
}

func TestExecute_ContactErrors(t *testing.T) {
	a := newTestApp(t)
	a.exec(t, "add Ivan 0671234567")

	tests := []struct {
		line string
		want string
	}{
		{"add Ivan", "Error: add command requires 2 arguments: username and phone"},
		{"change Ivan 0671234567", "Error: change command requires 3 arguments: username, old phone and new phone"},
		{"phone", "Error: phone command requires 1 argument: username"},
		{"set-email Ivan", "Error: set-email command requires 2 arguments: username and email"},
		{"add Ivan 12345", "Validation: Phone should start with +380"},
		{"add Iv4n 0671234567", "Validation: Name can contain only letters and spaces"},
		{"add Ivan 0671234567", "Error: Phone already exists"},
		{"phone Petro", "Error: Contact: Petro not found"},
		{"change Ivan 0500000000 0501111111", "Error: Phone +380500000000 not found"},
		{"set-email Ivan not-an-email", "Validation: Invalid email format"},
		{"set-birthday Ivan 31.02.1990", "Validation: Invalid calendar date"},
		{"birthdays soon", `Error: Number of days must be an integer, got "soon"`},
		{"birthdays -1", "Validation: Number of days must not be negative"},
		{"delete-contact Petro", "Error: Contact: Petro not found"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, a.exec(t, tt.line))
		})
	}
}

func TestExecute_FindContacts(t *testing.T) {
	a := newTestApp(t)
	a.exec(t, "add Ivan 0671234567")
	a.exec(t, "add Petro 0501112233")

	found := a.exec(t, "find *2233")
	assert.Contains(t, found, "Petro")
	assert.NotContains(t, found, "Ivan")

	assert.Equal(t, "No contacts found.", a.exec(t, "find Olena"))
	assert.Equal(t, "Error: find command requires 1 argument: query", a.exec(t, "find"))
}

func TestExecute_Birthdays(t *testing.T) {
	a := newTestApp(t)
	// same month and day 28 years ago exists whenever it exists today
	today := time.Now()
	born := time.Date(today.Year()-28, today.Month(), today.Day(), 0, 0, 0, 0, time.Local)

	a.exec(t, "add Ivan 0671234567")
	a.exec(t, "add Petro 0501112233")
	a.exec(t, "set-birthday Ivan "+born.Format(dateLayout))

	reply := a.exec(t, "birthdays")
	assert.True(t, strings.HasPrefix(reply, "Birthdays in the next 7 days:"), reply)
	assert.Contains(t, reply, "Ivan")
	assert.Contains(t, reply, today.Format(dateLayout))
	assert.NotContains(t, reply, "Petro")

	assert.Contains(t, a.exec(t, "birthdays 0"), "Ivan")
}

func TestExecute_NoBirthdays(t *testing.T) {
	a := newTestApp(t)
	a.exec(t, "add Ivan 0671234567")

	assert.Equal(t, "No birthdays in the next 3 days.", a.exec(t, "birthdays 3"))
}

func TestExecute_NoteLifecycle(t *testing.T) {
	a := newTestApp(t)

	assert.Equal(t, "Note #1 added.", a.exec(t, `add-note "Shopping list" "milk\nbread" "home, Weekly"`))
	assert.Equal(t, "Note #2 added.", a.exec(t, `add-note Meeting`))

	note := a.exec(t, "note 1")
	assert.Contains(t, note, "Title: Shopping list")
	assert.Contains(t, note, "Body: milk\nbread")
	assert.Contains(t, note, "Tags: home, weekly")

	list := a.exec(t, "notes")
	assert.Contains(t, list, "Shopping list")
	assert.Contains(t, list, "Meeting")

	assert.Equal(t, "Note #2 updated.", a.exec(t, "edit-note-title 2 Team meeting"))
	assert.Equal(t, "Note #2 updated.", a.exec(t, `edit-note-body 2 "agenda\nbudget"`))
	assert.Equal(t, "Note #2 updated.", a.exec(t, "edit-note-tags 2 work urgent"))

	note = a.exec(t, "note 2")
	assert.Contains(t, note, "Title: Team meeting")
	assert.Contains(t, note, "Body: agenda\nbudget")
	assert.Contains(t, note, "Tags: urgent, work")

	assert.Equal(t, "Note #3 added.", a.exec(t, `add-note Quoted 'one\ntwo'`))
	note = a.exec(t, "note 3")
	assert.Contains(t, note, "Body: one\ntwo")
	assert.NotContains(t, note, `\`)

	assert.Equal(t, "Note #2 updated.", a.exec(t, "edit-note-tags 2"))
	assert.Contains(t, a.exec(t, "note 2"), "Tags: \n")

	assert.Equal(t, "Note 1 has been successfully deleted", a.exec(t, "delete-note 1"))
	assert.Equal(t, "Error: Note: 1 not found", a.exec(t, "note 1"))
}

func TestExecute_NoteSearch(t *testing.T) {
	a := newTestApp(t)
	a.exec(t, `add-note "Budget" "quarterly numbers" work,finance`)
	a.exec(t, `add-note "Holiday" "book hotel" travel`)
	a.exec(t, `add-note "Audit" "annual check" finance`)

	found := a.exec(t, "find-notes hotel")
	assert.Contains(t, found, "Holiday")
	assert.NotContains(t, found, "Budget")
	assert.Equal(t, "No notes found.", a.exec(t, "find-notes dentist"))

	byTags := a.exec(t, "find-notes-tags finance")
	assert.Contains(t, byTags, "Budget")
	assert.Contains(t, byTags, "Audit")
	assert.NotContains(t, byTags, "Holiday")

	sorted := a.exec(t, "sort-notes-tags work,finance")
	budget, audit, holiday := strings.Index(sorted, "Budget"), strings.Index(sorted, "Audit"), strings.Index(sorted, "Holiday")
	assert.Less(t, budget, audit)
	assert.Less(t, audit, holiday)
}

func TestExecute_NoteErrors(t *testing.T) {
	a := newTestApp(t)

	tests := []struct {
		line string
		want string
	}{
		{"add-note", "Error: add-note command requires 1 argument: title"},
		{`add-note "  "`, "Validation: Text couldn't be empty"},
		{"note", "Error: note command requires 1 argument: note id"},
		{"note one", `Error: Note id must be an integer, got "one"`},
		{"note 42", "Error: Note: 42 not found"},
		{"edit-note-title 1", "Error: edit-note-title command requires 2 arguments: note id and title"},
		{"find-notes-tags ,", "Validation: Tag couldn't be empty"},
		{"sort-notes-tags", "Error: sort-notes-tags command requires 1 argument: tags"},
		{"delete-note 7", "Error: Note: 7 not found"},
		{"notes", "No notes yet."},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, a.exec(t, tt.line))
		})
	}
}

func TestExecute_SaveFlushesBothStores(t *testing.T) {
	a := newTestApp(t)
	a.exec(t, "add Ivan 0671234567")
	a.exec(t, "add-note Todo")

	assert.Equal(t, "Data saved.", a.exec(t, "save"))
	assert.Equal(t, 1, a.contactsStore.Saves())
	assert.Equal(t, 1, a.notesStore.Saves())
}

type brokenNotes struct {
	services.NotesService
}

func (brokenNotes) Flush(context.Context) error { return fmt.Errorf("disk full") }

func TestExecute_InternalErrorsAreHidden(t *testing.T) {
	a := newTestApp(t)
	a.notes = brokenNotes{NotesService: a.notes}

	assert.Equal(t, "Error: Internal error, see the log for details", a.exec(t, "save"))
}

func TestRun_FlushesOnExitAndEndOfInput(t *testing.T) {
	captureOutput(t)

	for _, input := range []string{"add Ivan 0671234567\nexit\n", "add Ivan 0671234567\n"} {
		a := newTestApp(t)
		require.NoError(t, a.Run(context.Background(), strings.NewReader(input)))
		assert.Equal(t, 1, a.contactsStore.Saves())
		assert.Equal(t, 1, a.notesStore.Saves())
	}
}

func TestRun_FlushesOnCancel(t *testing.T) {
	captureOutput(t)
	a := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	require.NoError(t, a.Run(ctx, pr))
	assert.Equal(t, 1, a.contactsStore.Saves())
}

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	var cfg config.Config
	cfg.LoadDefaults()
	cfg.DataDir = t.TempDir()
	cfg.Storage = backend
	cfg.Color = false
	return &cfg
}

func TestNewApp_PersistsBetweenRuns(t *testing.T) {
	captureOutput(t)

	for _, backend := range []string{config.StorageJSON, config.StorageYAML, config.StorageGob, config.StorageSQLite} {
		t.Run(backend, func(t *testing.T) {
			cfg := testConfig(t, backend)
			ctx := context.Background()

			a, err := NewApp(ctx, cfg)
			require.NoError(t, err)
			require.NoError(t, a.Run(ctx, strings.NewReader("add Ivan 0671234567\nadd-note Todo milk shop\nexit\n")))
			require.NoError(t, a.Close())

			b, err := NewApp(ctx, cfg)
			require.NoError(t, err)
			t.Cleanup(func() { _ = b.Close() })

			reply, _ := b.Execute(ctx, "phone Ivan")
			assert.Equal(t, "Ivan: +380671234567", reply)
			reply, _ = b.Execute(ctx, "note 1")
			assert.Contains(t, reply, "Title: Todo")
			reply, _ = b.Execute(ctx, "add-note Next")
			assert.Equal(t, "Note #2 added.", reply)

			_, err = os.Stat(filepath.Join(cfg.DataDir, cfg.Log.File))
			assert.NoError(t, err)
		})
	}
}

func TestNewApp_MemoryStorageStartsEmpty(t *testing.T) {
	cfg := testConfig(t, config.StorageMemory)

	a, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	reply, _ := a.Execute(context.Background(), "all")
	assert.Equal(t, "No contacts yet.", reply)
}

func TestNewApp_CorruptDataFails(t *testing.T) {
	cfg := testConfig(t, config.StorageJSON)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.DataDir, "contacts.json"), []byte("{"), 0o600))

	_, err := NewApp(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load contacts")
}

func TestNewApp_NullEntryFails(t *testing.T) {
	tests := []struct {
		backend string
		file    string
		data    string
		want    string
	}{
		{config.StorageJSON, "contacts.json", "[null]", "load contacts: entry 0 is empty"},
		{config.StorageYAML, "notes.yaml", "- null\n", "load notes: entry 0 is empty"},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			cfg := testConfig(t, tt.backend)
			require.NoError(t, os.WriteFile(filepath.Join(cfg.DataDir, tt.file), []byte(tt.data), 0o600))

			_, err := NewApp(context.Background(), cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
