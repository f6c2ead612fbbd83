package models

import (
	"regexp"
	"strings"

	"github.com/dmitrijs2005/assistant/internal/common"
	"github.com/dmitrijs2005/assistant/internal/models/values"
)

// Contact is an address-book entry identified by its name.
type Contact struct {
	name     values.Name
	phones   []values.Phone
	email    *values.Email
	birthday *values.Birthday
	address  *values.Address
}

// NewContact creates a contact with the given phones in order. Duplicate
// phones are rejected with AlreadyExists.
func NewContact(name values.Name, phones ...values.Phone) (*Contact, error) {
	c := &Contact{name: name}
	if err := c.AddPhones(phones...); err != nil {
		return nil, err
	}
	return c, nil
}

// Name returns the contact name as entered.
func (c *Contact) Name() values.Name { return c.name }

// Key returns the repository key of the contact.
func (c *Contact) Key() string { return c.name.Key() }

// Phones returns a copy of the phone list.
func (c *Contact) Phones() []values.Phone {
	out := make([]values.Phone, len(c.phones))
	copy(out, c.phones)
	return out
}

func (c *Contact) Email() *values.Email       { return c.email }
func (c *Contact) Birthday() *values.Birthday { return c.birthday }
func (c *Contact) Address() *values.Address   { return c.address }

// SetEmail replaces the email; nil clears it.
func (c *Contact) SetEmail(e *values.Email) { c.email = e }

// SetBirthday replaces the birthday; nil clears it.
func (c *Contact) SetBirthday(b *values.Birthday) { c.birthday = b }

// SetAddress replaces the address; nil clears it.
func (c *Contact) SetAddress(a *values.Address) { c.address = a }

// HasPhone reports whether an equal phone is already on the contact.
func (c *Contact) HasPhone(p values.Phone) bool {
	return c.phoneIndex(p) >= 0
}

// AddPhone appends p unless an equal phone is present.
func (c *Contact) AddPhone(p values.Phone) error {
	if c.HasPhone(p) {
		return common.NewAlreadyExists("Phone")
	}
	c.phones = append(c.phones, p)
	return nil
}

// AddPhones adds phones in order and stops at the first failure. Phones added
// before the failure are kept.
func (c *Contact) AddPhones(phones ...values.Phone) error {
	for _, p := range phones {
		if err := c.AddPhone(p); err != nil {
			return err
		}
	}
	return nil
}

// EditPhone replaces prev with next in place. Editing a phone to itself
// fails with AlreadyExists.
func (c *Contact) EditPhone(prev, next values.Phone) error {
	i := c.phoneIndex(prev)
	if i < 0 {
		return common.NewNotFound("Phone " + prev.String())
	}
	if c.HasPhone(next) {
		return common.NewAlreadyExists("Phone")
	}
	c.phones[i] = next
	return nil
}

// DeletePhone removes p and reports whether it was present.
func (c *Contact) DeletePhone(p values.Phone) bool {
	i := c.phoneIndex(p)
	if i < 0 {
		return false
	}
	c.phones = append(c.phones[:i], c.phones[i+1:]...)
	return true
}

func (c *Contact) phoneIndex(p values.Phone) int {
	for i, existing := range c.phones {
		if existing.Equal(p) {
			return i
		}
	}
	return -1
}

// IsMatching reports whether query matches the name, a phone, the email, the
// address or the birthday. A query containing "*" is a glob that must match
// the whole field; otherwise the field must equal the query. Both forms
// ignore case.
func (c *Contact) IsMatching(query string) bool {
	fields := c.searchFields()

	if strings.Contains(query, "*") {
		re, err := globPattern(query)
		if err != nil {
			return false
		}
		for _, f := range fields {
			if re.MatchString(f) {
				return true
			}
		}
		return false
	}

	for _, f := range fields {
		if strings.EqualFold(f, query) {
			return true
		}
	}
	return false
}

func (c *Contact) searchFields() []string {
	fields := make([]string, 0, len(c.phones)+4)
	fields = append(fields, c.name.String())
	for _, p := range c.phones {
		fields = append(fields, p.String())
	}
	if c.email != nil {
		fields = append(fields, c.email.String())
	}
	if c.address != nil {
		fields = append(fields, c.address.String())
	}
	if c.birthday != nil {
		fields = append(fields, c.birthday.String())
	}
	return fields
}

// globPattern turns a "*" glob into an anchored, case-insensitive regexp.
// Every other character is matched literally.
func globPattern(query string) (*regexp.Regexp, error) {
	quoted := regexp.QuoteMeta(query)
	return regexp.Compile(`(?is)^` + strings.ReplaceAll(quoted, `\*`, `.*`) + `$`)
}

// String renders the contact on one line.
func (c *Contact) String() string {
	phones := make([]string, len(c.phones))
	for i, p := range c.phones {
		phones[i] = p.String()
	}
	phonesStr := strings.Join(phones, "; ")
	if phonesStr == "" {
		phonesStr = "-"
	}

	parts := []string{"Contact name: " + c.name.String(), "phones: " + phonesStr}
	if c.email != nil {
		parts = append(parts, "email: "+c.email.String())
	}
	if c.birthday != nil {
		parts = append(parts, "birthday: "+c.birthday.String())
	}
	if c.address != nil {
		parts = append(parts, "address: "+c.address.String())
	}
	return strings.Join(parts, ", ")
}
