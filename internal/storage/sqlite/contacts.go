package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/assistant/internal/dbx"
	"github.com/dmitrijs2005/assistant/internal/models"
)

// ContactsStorage implements storage.Storage for contacts.
type ContactsStorage struct {
	db *sql.DB
}

func NewContactsStorage(db *sql.DB) *ContactsStorage {
	return &ContactsStorage{db: db}
}

// Load returns contacts in the order they were saved.
func (s *ContactsStorage) Load(ctx context.Context) ([]*models.Contact, error) {
	recs, keys, err := s.selectContacts(ctx)
	if err != nil {
		return nil, err
	}
	phones, err := s.selectPhones(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*models.Contact, 0, len(recs))
	for i, rec := range recs {
		rec.Phones = phones[keys[i]]
		c, err := models.ContactFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("decode contact: %w", err)
		}
		out = append(out, c)
	}
	return out, nil
}

func (s *ContactsStorage) selectContacts(ctx context.Context) ([]models.ContactRecord, []string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name_key, name, email, birthday, address FROM contacts ORDER BY position`)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to select contacts: %w", err)
	}
	defer rows.Close()

	var (
		recs []models.ContactRecord
		keys []string
	)
	for rows.Next() {
		var (
			key                      string
			rec                      models.ContactRecord
			email, birthday, address sql.NullString
		)
		if err := rows.Scan(&key, &rec.Name, &email, &birthday, &address); err != nil {
			return nil, nil, err
		}
		rec.Email = fromNullable(email)
		rec.Birthday = fromNullable(birthday)
		rec.Address = fromNullable(address)
		recs = append(recs, rec)
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	return recs, keys, nil
}

func (s *ContactsStorage) selectPhones(ctx context.Context) (map[string][]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT contact_key, phone FROM contact_phones ORDER BY contact_key, position`)
	if err != nil {
		return nil, fmt.Errorf("failed to select phones: %w", err)
	}
	defer rows.Close()

	phones := make(map[string][]string)
	for rows.Next() {
		var key, phone string
		if err := rows.Scan(&key, &phone); err != nil {
			return nil, err
		}
		phones[key] = append(phones[key], phone)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return phones, nil
}

// Save replaces every stored contact with items in one transaction.
func (s *ContactsStorage) Save(ctx context.Context, items []*models.Contact) error {
	var contactRows, phoneRows [][]any
	for i, c := range items {
		rec := c.Record()
		contactRows = append(contactRows, []any{
			i, c.Key(), rec.Name, nullable(rec.Email), nullable(rec.Birthday), nullable(rec.Address),
		})
		for j, p := range rec.Phones {
			phoneRows = append(phoneRows, []any{c.Key(), j, p})
		}
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM contact_phones`); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM contacts`); err != nil {
			return err
		}
		if err := dbx.ExecBatch(ctx, tx,
			`INSERT INTO contacts (position, name_key, name, email, birthday, address) VALUES (?, ?, ?, ?, ?, ?)`,
			contactRows); err != nil {
			return err
		}
		return dbx.ExecBatch(ctx, tx,
			`INSERT INTO contact_phones (contact_key, position, phone) VALUES (?, ?, ?)`,
			phoneRows)
	})
	if err != nil {
		return fmt.Errorf("failed to save contacts: %w", err)
	}
	return nil
}
