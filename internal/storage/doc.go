// Package storage persists whole entity collections for the repositories.
//
// # Overview
//
// A Storage loads the full collection once when a repository is built and
// saves it again on flush. Collections travel as ordered slices so that the
// insertion order seen by the user survives a restart.
//
// Key Types
//
//   - type Storage[V]      - interface used by the repositories
//   - type FileStorage[V]  - one file per collection, written atomically
//   - type Memory[V]       - keeps the last saved snapshot in memory
//   - type Serializer[V]   - JSON, YAML and gob encodings for FileStorage
//
// The SQLite back-end lives in the storage/sqlite subpackage.
//
// Typical Usage
//
//	ser, _ := storage.NewSerializer[*models.Contact](storage.FormatJSON)
//	st := storage.NewFileStorage(dataDir, "contacts", ser)
//	items, _ := st.Load(ctx)
//	_ = st.Save(ctx, items)
package storage
