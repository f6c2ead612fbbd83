// Package sqlite stores contacts and notes in a local SQLite database
// (modernc.org/sqlite, no cgo). The schema is managed by goose migrations
// embedded in the binary and applied by Open.
//
// Each Save rewrites the whole collection inside one transaction, matching
// the flush semantics of the file storage.
//
//	db, _ := sqlite.Open(ctx, filepath.Join(dataDir, "assistant.db"))
//	defer db.Close()
//	contacts := sqlite.NewContactsStorage(db)
//	notes := sqlite.NewNotesStorage(db)
package sqlite
