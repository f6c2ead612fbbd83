package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/assistant/internal/services"
)

func (a *App) addContact(ctx context.Context, args []string) (string, error) {
	if err := requireArgs("add", args, "username", "phone"); err != nil {
		return "", err
	}
	outcome, err := a.contacts.AddContactOrPhone(ctx, args[0], args[1])
	if err != nil {
		return "", err
	}
	if outcome == services.PhoneAdded {
		return a.out.Success("Phone added."), nil
	}
	return a.out.Success("Contact added."), nil
}

func (a *App) changePhone(ctx context.Context, args []string) (string, error) {
	if err := requireArgs("change", args, "username", "old phone", "new phone"); err != nil {
		return "", err
	}
	if err := a.contacts.ChangePhone(ctx, args[0], args[1], args[2]); err != nil {
		return "", err
	}
	return a.out.Success("Phone changed."), nil
}

func (a *App) showPhones(ctx context.Context, args []string) (string, error) {
	if err := requireArgs("phone", args, "username"); err != nil {
		return "", err
	}
	c, err := a.contacts.Get(ctx, args[0])
	if err != nil {
		return "", err
	}
	phones := c.Phones()
	if len(phones) == 0 {
		return a.out.Info(c.Name().String() + " has no phones."), nil
	}
	list := make([]string, len(phones))
	for i, p := range phones {
		list[i] = p.String()
	}
	return fmt.Sprintf("%s: %s", c.Name(), strings.Join(list, "; ")), nil
}

func (a *App) allContacts(ctx context.Context, _ []string) (string, error) {
	all := a.contacts.All(ctx)
	if len(all) == 0 {
		return a.out.Info("No contacts yet."), nil
	}
	return a.out.Contacts(all), nil
}

func (a *App) findContacts(ctx context.Context, args []string) (string, error) {
	if err := requireArgs("find", args, "query"); err != nil {
		return "", err
	}
	found := a.contacts.Find(ctx, rest(args, 0))
	if len(found) == 0 {
		return a.out.Info("No contacts found."), nil
	}
	return a.out.Contacts(found), nil
}

func (a *App) setEmail(ctx context.Context, args []string) (string, error) {
	if err := requireArgs("set-email", args, "username", "email"); err != nil {
		return "", err
	}
	if err := a.contacts.SetEmail(ctx, args[0], args[1]); err != nil {
		return "", err
	}
	return a.out.Success("Email set."), nil
}

func (a *App) setBirthday(ctx context.Context, args []string) (string, error) {
	if err := requireArgs("set-birthday", args, "username", "birthday"); err != nil {
		return "", err
	}
	if err := a.contacts.SetBirthday(ctx, args[0], args[1]); err != nil {
		return "", err
	}
	return a.out.Success("Birthday set."), nil
}

func (a *App) setAddress(ctx context.Context, args []string) (string, error) {
	if err := requireArgs("set-address", args, "username", "address"); err != nil {
		return "", err
	}
	if err := a.contacts.SetAddress(ctx, args[0], rest(args, 1)); err != nil {
		return "", err
	}
	return a.out.Success("Address set."), nil
}

func (a *App) showBirthday(ctx context.Context, args []string) (string, error) {
	if err := requireArgs("show-birthday", args, "username"); err != nil {
		return "", err
	}
	c, err := a.contacts.Get(ctx, args[0])
	if err != nil {
		return "", err
	}
	b, err := a.contacts.Birthday(ctx, args[0])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s: %s", c.Name(), b), nil
}

func (a *App) birthdays(ctx context.Context, args []string) (string, error) {
	days := a.birthdaysDays
	if len(args) > 0 {
		var err error
		if days, err = parseDays(args[0]); err != nil {
			return "", err
		}
	}

	list, err := a.contacts.UpcomingBirthdays(ctx, days)
	if err != nil {
		return "", err
	}
	if len(list) == 0 {
		return a.out.Info(fmt.Sprintf("No birthdays in the next %d days.", days)), nil
	}
	return a.out.Section(fmt.Sprintf("Birthdays in the next %d days:", days)) + "\n" + a.out.Birthdays(list), nil
}

func (a *App) deletePhone(ctx context.Context, args []string) (string, error) {
	if err := requireArgs("delete-phone", args, "username", "phone"); err != nil {
		return "", err
	}
	deleted, err := a.contacts.DeletePhone(ctx, args[0], args[1])
	if err != nil {
		return "", err
	}
	if !deleted {
		return a.out.Warning(fmt.Sprintf("Phone %s not found for %s", args[1], args[0])), nil
	}
	return a.out.Success("Phone deleted."), nil
}

func (a *App) deleteEmail(ctx context.Context, args []string) (string, error) {
	if err := requireArgs("delete-email", args, "username"); err != nil {
		return "", err
	}
	if err := a.contacts.DeleteEmail(ctx, args[0]); err != nil {
		return "", err
	}
	return a.out.Success("Email deleted."), nil
}

func (a *App) deleteBirthday(ctx context.Context, args []string) (string, error) {
	if err := requireArgs("delete-birthday", args, "username"); err != nil {
		return "", err
	}
	if err := a.contacts.DeleteBirthday(ctx, args[0]); err != nil {
		return "", err
	}
	return a.out.Success("Birthday deleted."), nil
}

func (a *App) deleteAddress(ctx context.Context, args []string) (string, error) {
	if err := requireArgs("delete-address", args, "username"); err != nil {
		return "", err
	}
	if err := a.contacts.DeleteAddress(ctx, args[0]); err != nil {
		return "", err
	}
	return a.out.Success("Address deleted."), nil
}

func (a *App) deleteContact(ctx context.Context, args []string) (string, error) {
	if err := requireArgs("delete-contact", args, "username"); err != nil {
		return "", err
	}
	if err := a.contacts.DeleteContact(ctx, args[0]); err != nil {
		return "", err
	}
	return a.out.Success("Contact deleted."), nil
}
