package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dmitrijs2005/assistant/internal/common"
	"github.com/dmitrijs2005/assistant/internal/logging"
	"github.com/dmitrijs2005/assistant/internal/models"
	"github.com/dmitrijs2005/assistant/internal/models/values"
	"github.com/dmitrijs2005/assistant/internal/repositories/contacts"
)

// timeNow is a test seam for the birthday window.
var timeNow = time.Now

// AddOutcome tells which branch AddContactOrPhone took.
type AddOutcome int

const (
	ContactAdded AddOutcome = iota + 1
	PhoneAdded
)

func (o AddOutcome) String() string {
	switch o {
	case ContactAdded:
		return "contact added"
	case PhoneAdded:
		return "phone added"
	default:
		return fmt.Sprintf("AddOutcome(%d)", int(o))
	}
}

// BirthdayReminder pairs a contact with the date of its next birthday.
type BirthdayReminder struct {
	Contact *models.Contact
	Date    time.Time
}

type ContactsService interface {
	AddContactOrPhone(ctx context.Context, name, phone string) (AddOutcome, error)
	ChangePhone(ctx context.Context, name, oldPhone, newPhone string) error
	DeletePhone(ctx context.Context, name, phone string) (bool, error)
	SetEmail(ctx context.Context, name, email string) error
	SetBirthday(ctx context.Context, name, birthday string) error
	SetAddress(ctx context.Context, name, address string) error
	DeleteEmail(ctx context.Context, name string) error
	DeleteBirthday(ctx context.Context, name string) error
	DeleteAddress(ctx context.Context, name string) error
	DeleteContact(ctx context.Context, name string) error
	Get(ctx context.Context, name string) (*models.Contact, error)
	Phones(ctx context.Context, name string) ([]values.Phone, error)
	Birthday(ctx context.Context, name string) (values.Birthday, error)
	Find(ctx context.Context, query string) []*models.Contact
	All(ctx context.Context) []*models.Contact
	UpcomingBirthdays(ctx context.Context, days int) ([]BirthdayReminder, error)
	Flush(ctx context.Context) error
}

type contactsService struct {
	repo contacts.Repository
	log  logging.Logger
}

func NewContactsService(repo contacts.Repository, log logging.Logger) ContactsService {
	return &contactsService{repo: repo, log: log.With("component", "contacts_service")}
}

// AddContactOrPhone creates the contact, or adds phone to it when a contact
// with that name already exists.
func (s *contactsService) AddContactOrPhone(ctx context.Context, name, phone string) (AddOutcome, error) {
	n, err := values.NewName(name)
	if err != nil {
		return 0, err
	}
	p, err := values.NewPhone(phone)
	if err != nil {
		return 0, err
	}

	c, err := models.NewContact(n, p)
	if err != nil {
		return 0, err
	}

	err = s.repo.Add(c)
	if err == nil {
		s.log.Info(ctx, "contact added", "name", n.String())
		return ContactAdded, nil
	}
	if !errors.Is(err, common.ErrAlreadyExists) {
		return 0, err
	}

	existing, err := s.repo.Get(n.String())
	if err != nil {
		return 0, err
	}
	if err := existing.AddPhone(p); err != nil {
		return 0, err
	}

	s.log.Info(ctx, "phone added", "name", existing.Name().String())
	return PhoneAdded, nil
}

func (s *contactsService) ChangePhone(ctx context.Context, name, oldPhone, newPhone string) error {
	c, err := s.repo.Get(name)
	if err != nil {
		return err
	}
	prev, err := values.NewPhone(oldPhone)
	if err != nil {
		return err
	}
	next, err := values.NewPhone(newPhone)
	if err != nil {
		return err
	}
	if err := c.EditPhone(prev, next); err != nil {
		return err
	}

	s.log.Info(ctx, "phone changed", "name", c.Name().String())
	return nil
}

// DeletePhone reports whether the phone was on the contact.
func (s *contactsService) DeletePhone(ctx context.Context, name, phone string) (bool, error) {
	c, err := s.repo.Get(name)
	if err != nil {
		return false, err
	}
	p, err := values.NewPhone(phone)
	if err != nil {
		return false, err
	}

	deleted := c.DeletePhone(p)
	s.log.Debug(ctx, "phone delete", "name", c.Name().String(), "deleted", deleted)
	return deleted, nil
}

func (s *contactsService) SetEmail(ctx context.Context, name, email string) error {
	c, err := s.repo.Get(name)
	if err != nil {
		return err
	}
	e, err := values.NewEmail(email)
	if err != nil {
		return err
	}
	c.SetEmail(&e)
	s.log.Info(ctx, "email set", "name", c.Name().String())
	return nil
}

func (s *contactsService) SetBirthday(ctx context.Context, name, birthday string) error {
	c, err := s.repo.Get(name)
	if err != nil {
		return err
	}
	b, err := values.NewBirthday(birthday)
	if err != nil {
		return err
	}
	c.SetBirthday(&b)
	s.log.Info(ctx, "birthday set", "name", c.Name().String())
	return nil
}

func (s *contactsService) SetAddress(ctx context.Context, name, address string) error {
	c, err := s.repo.Get(name)
	if err != nil {
		return err
	}
	a, err := values.NewAddress(address)
	if err != nil {
		return err
	}
	c.SetAddress(&a)
	s.log.Info(ctx, "address set", "name", c.Name().String())
	return nil
}

func (s *contactsService) DeleteEmail(ctx context.Context, name string) error {
	c, err := s.repo.Get(name)
	if err != nil {
		return err
	}
	c.SetEmail(nil)
	s.log.Info(ctx, "email deleted", "name", c.Name().String())
	return nil
}

func (s *contactsService) DeleteBirthday(ctx context.Context, name string) error {
	c, err := s.repo.Get(name)
	if err != nil {
		return err
	}
	c.SetBirthday(nil)
	s.log.Info(ctx, "birthday deleted", "name", c.Name().String())
	return nil
}

func (s *contactsService) DeleteAddress(ctx context.Context, name string) error {
	c, err := s.repo.Get(name)
	if err != nil {
		return err
	}
	c.SetAddress(nil)
	s.log.Info(ctx, "address deleted", "name", c.Name().String())
	return nil
}

func (s *contactsService) DeleteContact(ctx context.Context, name string) error {
	if err := s.repo.Delete(name); err != nil {
		return err
	}
	s.log.Info(ctx, "contact deleted", "name", name)
	return nil
}

func (s *contactsService) Get(_ context.Context, name string) (*models.Contact, error) {
	return s.repo.Get(name)
}

func (s *contactsService) Phones(_ context.Context, name string) ([]values.Phone, error) {
	c, err := s.repo.Get(name)
	if err != nil {
		return nil, err
	}
	return c.Phones(), nil
}

// Birthday fails with NotFound when the contact has no birthday set.
func (s *contactsService) Birthday(_ context.Context, name string) (values.Birthday, error) {
	c, err := s.repo.Get(name)
	if err != nil {
		return values.Birthday{}, err
	}
	if c.Birthday() == nil {
		return values.Birthday{}, common.NewNotFound("Birthday of " + c.Name().String())
	}
	return *c.Birthday(), nil
}

func (s *contactsService) Find(_ context.Context, query string) []*models.Contact {
	return s.repo.Find(query)
}

func (s *contactsService) All(_ context.Context) []*models.Contact {
	return s.repo.All()
}

// UpcomingBirthdays returns contacts whose next birthday falls within
// [today, today+days], earliest first. Contacts with the same date keep
// repository order. A Feb 29 birthday is celebrated on Feb 28 in non-leap
// years.
func (s *contactsService) UpcomingBirthdays(ctx context.Context, days int) ([]BirthdayReminder, error) {
	if days < 0 {
		return nil, common.NewValidation("days", common.KindRange, "Number of days must not be negative")
	}

	today := truncateDay(timeNow())
	last := today.AddDate(0, 0, days)

	var out []BirthdayReminder
	for _, c := range s.repo.All() {
		b := c.Birthday()
		if b == nil {
			continue
		}
		next := nextBirthday(b.Date(), today)
		if next.After(last) {
			continue
		}
		out = append(out, BirthdayReminder{Contact: c, Date: next})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })

	s.log.Debug(ctx, "upcoming birthdays", "days", days, "count", len(out))
	return out, nil
}

// nextBirthday returns the first occurrence of birth's month and day on or
// after today.
func nextBirthday(birth, today time.Time) time.Time {
	next := anniversary(birth, today.Year(), today.Location())
	if next.Before(today) {
		next = anniversary(birth, today.Year()+1, today.Location())
	}
	return next
}

func anniversary(birth time.Time, year int, loc *time.Location) time.Time {
	month, day := birth.Month(), birth.Day()
	if month == time.February && day == 29 && !isLeap(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func (s *contactsService) Flush(ctx context.Context) error {
	return s.repo.Flush(ctx)
}
