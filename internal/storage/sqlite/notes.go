package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/assistant/internal/dbx"
	"github.com/dmitrijs2005/assistant/internal/models"
)

// NotesStorage implements storage.Storage for notes.
type NotesStorage struct {
	db *sql.DB
}

func NewNotesStorage(db *sql.DB) *NotesStorage {
	return &NotesStorage{db: db}
}

// Load returns notes ordered by id.
func (s *NotesStorage) Load(ctx context.Context) ([]*models.Note, error) {
	recs, err := s.selectNotes(ctx)
	if err != nil {
		return nil, err
	}
	tags, err := s.selectTags(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*models.Note, 0, len(recs))
	for _, rec := range recs {
		rec.Tags = tags[rec.NoteID]
		n, err := models.NoteFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("decode note: %w", err)
		}
		out = append(out, n)
	}
	return out, nil
}

func (s *NotesStorage) selectNotes(ctx context.Context) ([]models.NoteRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, body, created_at, updated_at FROM notes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select notes: %w", err)
	}
	defer rows.Close()

	var recs []models.NoteRecord
	for rows.Next() {
		var rec models.NoteRecord
		if err := rows.Scan(&rec.NoteID, &rec.Title, &rec.Body, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *NotesStorage) selectTags(ctx context.Context) (map[int][]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT note_id, tag FROM note_tags ORDER BY note_id, tag`)
	if err != nil {
		return nil, fmt.Errorf("failed to select tags: %w", err)
	}
	defer rows.Close()

	tags := make(map[int][]string)
	for rows.Next() {
		var (
			id  int
			tag string
		)
		if err := rows.Scan(&id, &tag); err != nil {
			return nil, err
		}
		tags[id] = append(tags[id], tag)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tags, nil
}

// Save replaces every stored note with items in one transaction.
func (s *NotesStorage) Save(ctx context.Context, items []*models.Note) error {
	var noteRows, tagRows [][]any
	for _, n := range items {
		rec := n.Record()
		noteRows = append(noteRows, []any{rec.NoteID, rec.Title, rec.Body, rec.CreatedAt, rec.UpdatedAt})
		for _, t := range rec.Tags {
			tagRows = append(tagRows, []any{rec.NoteID, t})
		}
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM note_tags`); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM notes`); err != nil {
			return err
		}
		if err := dbx.ExecBatch(ctx, tx,
			`INSERT INTO notes (id, title, body, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
			noteRows); err != nil {
			return err
		}
		return dbx.ExecBatch(ctx, tx, `INSERT INTO note_tags (note_id, tag) VALUES (?, ?)`, tagRows)
	})
	if err != nil {
		return fmt.Errorf("failed to save notes: %w", err)
	}
	return nil
}
