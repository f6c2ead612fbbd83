package cli

import (
	"context"
	"io"
	"path/filepath"

	"github.com/dmitrijs2005/assistant/internal/config"
	"github.com/dmitrijs2005/assistant/internal/models"
	"github.com/dmitrijs2005/assistant/internal/storage"
	"github.com/dmitrijs2005/assistant/internal/storage/sqlite"
)

// stores are the storage collaborators of both repositories. closer is nil
// unless the back-end holds an open resource.
type stores struct {
	contacts storage.Storage[*models.Contact]
	notes    storage.Storage[*models.Note]
	closer   io.Closer
}

func openStores(ctx context.Context, cfg *config.Config, dir string) (*stores, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		return &stores{
			contacts: storage.NewMemory[*models.Contact](),
			notes:    storage.NewMemory[*models.Note](),
		}, nil

	case config.StorageSQLite:
		db, err := sqlite.Open(ctx, filepath.Join(dir, cfg.SQLiteFile))
		if err != nil {
			return nil, err
		}
		return &stores{
			contacts: sqlite.NewContactsStorage(db),
			notes:    sqlite.NewNotesStorage(db),
			closer:   db,
		}, nil

	default:
		format := storage.Format(cfg.Storage)
		cs, err := storage.NewSerializer[*models.Contact](format)
		if err != nil {
			return nil, err
		}
		ns, err := storage.NewSerializer[*models.Note](format)
		if err != nil {
			return nil, err
		}
		return &stores{
			contacts: storage.NewFileStorage(dir, cfg.ContactsFile, cs),
			notes:    storage.NewFileStorage(dir, cfg.NotesFile, ns),
		}, nil
	}
}
