package models

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/assistant/internal/models/values"
	"gopkg.in/yaml.v3"
)

// TimeLayout is the interchange format of note timestamps.
const TimeLayout = time.RFC3339Nano

// ContactRecord is the flat interchange shape of a Contact. Missing optional
// fields are nil and serialize as null.
type ContactRecord struct {
	Name     string   `json:"name" yaml:"name"`
	Email    *string  `json:"email" yaml:"email"`
	Phones   []string `json:"phones" yaml:"phones"`
	Birthday *string  `json:"birthday" yaml:"birthday"`
	Address  *string  `json:"address" yaml:"address"`
}

// Record converts c to its interchange form.
func (c *Contact) Record() ContactRecord {
	rec := ContactRecord{
		Name:   c.name.String(),
		Phones: make([]string, len(c.phones)),
	}
	for i, p := range c.phones {
		rec.Phones[i] = p.String()
	}
	if c.email != nil {
		rec.Email = ptr(c.email.String())
	}
	if c.birthday != nil {
		rec.Birthday = ptr(c.birthday.String())
	}
	if c.address != nil {
		rec.Address = ptr(c.address.String())
	}
	return rec
}

// ContactFromRecord rebuilds a Contact, validating every field again.
func ContactFromRecord(rec ContactRecord) (*Contact, error) {
	name, err := values.NewName(rec.Name)
	if err != nil {
		return nil, fmt.Errorf("contact name %q: %w", rec.Name, err)
	}

	phones := make([]values.Phone, 0, len(rec.Phones))
	for _, raw := range rec.Phones {
		p, err := values.NewPhone(raw)
		if err != nil {
			return nil, fmt.Errorf("contact %q phone %q: %w", rec.Name, raw, err)
		}
		phones = append(phones, p)
	}

	c, err := NewContact(name, phones...)
	if err != nil {
		return nil, fmt.Errorf("contact %q: %w", rec.Name, err)
	}

	if rec.Email != nil {
		e, err := values.NewEmail(*rec.Email)
		if err != nil {
			return nil, fmt.Errorf("contact %q email: %w", rec.Name, err)
		}
		c.SetEmail(&e)
	}
	if rec.Birthday != nil {
		b, err := values.NewBirthday(*rec.Birthday)
		if err != nil {
			return nil, fmt.Errorf("contact %q birthday: %w", rec.Name, err)
		}
		c.SetBirthday(&b)
	}
	if rec.Address != nil {
		a, err := values.NewAddress(*rec.Address)
		if err != nil {
			return nil, fmt.Errorf("contact %q address: %w", rec.Name, err)
		}
		c.SetAddress(&a)
	}

	return c, nil
}

func (c *Contact) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Record())
}

func (c *Contact) UnmarshalJSON(data []byte) error {
	var rec ContactRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	return c.fromRecord(rec)
}

func (c *Contact) MarshalYAML() (any, error) {
	return c.Record(), nil
}

func (c *Contact) UnmarshalYAML(node *yaml.Node) error {
	var rec ContactRecord
	if err := node.Decode(&rec); err != nil {
		return err
	}
	return c.fromRecord(rec)
}

func (c *Contact) GobEncode() ([]byte, error) {
	return gobEncode(c.Record())
}

func (c *Contact) GobDecode(data []byte) error {
	var rec ContactRecord
	if err := gobDecode(data, &rec); err != nil {
		return err
	}
	return c.fromRecord(rec)
}

func (c *Contact) fromRecord(rec ContactRecord) error {
	decoded, err := ContactFromRecord(rec)
	if err != nil {
		return err
	}
	*c = *decoded
	return nil
}

// NoteRecord is the flat interchange shape of a Note. Tags are sorted and
// timestamps use TimeLayout.
type NoteRecord struct {
	NoteID    int      `json:"note_id" yaml:"note_id"`
	Title     string   `json:"title" yaml:"title"`
	Body      string   `json:"body" yaml:"body"`
	Tags      []string `json:"tags" yaml:"tags"`
	CreatedAt string   `json:"created_at" yaml:"created_at"`
	UpdatedAt string   `json:"updated_at" yaml:"updated_at"`
}

// Record converts n to its interchange form.
func (n *Note) Record() NoteRecord {
	return NoteRecord{
		NoteID:    n.id,
		Title:     n.title.String(),
		Body:      n.body.String(),
		Tags:      n.tags.Strings(),
		CreatedAt: n.createdAt.Format(TimeLayout),
		UpdatedAt: n.updatedAt.Format(TimeLayout),
	}
}

// NoteFromRecord rebuilds a Note. A missing update time falls back to the
// creation time.
func NoteFromRecord(rec NoteRecord) (*Note, error) {
	title, err := values.NewTitle(rec.Title)
	if err != nil {
		return nil, fmt.Errorf("note %d title: %w", rec.NoteID, err)
	}

	tags, err := values.ParseTags(rec.Tags...)
	if err != nil {
		return nil, fmt.Errorf("note %d tags: %w", rec.NoteID, err)
	}

	createdAt, err := time.Parse(TimeLayout, rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("note %d created_at: %w", rec.NoteID, err)
	}

	updatedAt := createdAt
	if rec.UpdatedAt != "" {
		updatedAt, err = time.Parse(TimeLayout, rec.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("note %d updated_at: %w", rec.NoteID, err)
		}
	}

	return &Note{
		id:        rec.NoteID,
		title:     title,
		body:      values.NewField(rec.Body),
		tags:      tags,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (n *Note) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Record())
}

func (n *Note) UnmarshalJSON(data []byte) error {
	var rec NoteRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	return n.fromRecord(rec)
}

func (n *Note) MarshalYAML() (any, error) {
	return n.Record(), nil
}

func (n *Note) UnmarshalYAML(node *yaml.Node) error {
	var rec NoteRecord
	if err := node.Decode(&rec); err != nil {
		return err
	}
	return n.fromRecord(rec)
}

func (n *Note) GobEncode() ([]byte, error) {
	return gobEncode(n.Record())
}

func (n *Note) GobDecode(data []byte) error {
	var rec NoteRecord
	if err := gobDecode(data, &rec); err != nil {
		return err
	}
	return n.fromRecord(rec)
}

func (n *Note) fromRecord(rec NoteRecord) error {
	decoded, err := NoteFromRecord(rec)
	if err != nil {
		return err
	}
	*n = *decoded
	return nil
}

func gobEncode(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func gobDecode(data []byte, v any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

func ptr[T any](v T) *T { return &v }
