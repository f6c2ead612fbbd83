package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

type handler func(ctx context.Context, args []string) (string, error)

type command struct {
	name  string
	usage string
	help  string
	run   handler
	// quit stops the REPL after run.
	quit bool
}

func (a *App) commandTable() []command {
	return []command{
		{name: "hello", help: "Show greeting", run: a.hello},
		{name: "help", help: "Show possible commands", run: a.help},
		{name: "save", help: "Save contacts and notes", run: a.save},
		{name: "exit", help: "Save and exit", run: a.exit, quit: true},
		{name: "close", help: "Save and exit", run: a.exit, quit: true},
		{name: "quit", help: "Save and exit", run: a.exit, quit: true},

		{name: "add", usage: "<name> <phone>", help: "Add a contact with a phone, or a phone to an existing contact", run: a.addContact},
		{name: "change", usage: "<name> <old_phone> <new_phone>", help: "Change a phone of a contact", run: a.changePhone},
		{name: "phone", usage: "<name>", help: "Show phones of a contact", run: a.showPhones},
		{name: "all", help: "Show all contacts", run: a.allContacts},
		{name: "find", usage: "<query>", help: "Find contacts; * matches any text", run: a.findContacts},
		{name: "set-email", usage: "<name> <email>", help: "Set email of a contact", run: a.setEmail},
		{name: "set-birthday", usage: "<name> <DD.MM.YYYY>", help: "Set birthday of a contact", run: a.setBirthday},
		{name: "set-address", usage: "<name> <address>", help: "Set address of a contact", run: a.setAddress},
		{name: "show-birthday", usage: "<name>", help: "Show birthday of a contact", run: a.showBirthday},
		{name: "birthdays", usage: "[days]", help: "Show birthdays within the next days", run: a.birthdays},
		{name: "delete-phone", usage: "<name> <phone>", help: "Delete a phone of a contact", run: a.deletePhone},
		{name: "delete-email", usage: "<name>", help: "Delete email of a contact", run: a.deleteEmail},
		{name: "delete-birthday", usage: "<name>", help: "Delete birthday of a contact", run: a.deleteBirthday},
		{name: "delete-address", usage: "<name>", help: "Delete address of a contact", run: a.deleteAddress},
		{name: "delete-contact", usage: "<name>", help: "Delete a contact", run: a.deleteContact},

		{name: "add-note", usage: "<title> [body] [tags]", help: `Add a note; tags are comma separated, \n in body is a new line`, run: a.addNote},
		{name: "note", usage: "<id>", help: "Show a note", run: a.showNote},
		{name: "notes", help: "Show all notes", run: a.allNotes},
		{name: "edit-note-title", usage: "<id> <title>", help: "Change title of a note", run: a.editNoteTitle},
		{name: "edit-note-body", usage: "<id> <body>", help: "Change body of a note", run: a.editNoteBody},
		{name: "edit-note-tags", usage: "<id> [tags]", help: "Replace tags of a note", run: a.editNoteTags},
		{name: "find-notes", usage: "<query>", help: "Find notes by title or body", run: a.findNotes},
		{name: "find-notes-tags", usage: "<tags>", help: "Find notes having any of the tags", run: a.findNotesByTags},
		{name: "sort-notes-tags", usage: "<tags>", help: "Sort notes by the number of matching tags", run: a.sortNotesByTags},
		{name: "delete-note", usage: "<id>", help: "Delete a note", run: a.deleteNote},
	}
}

func (a *App) commandList() string {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func (a *App) hello(context.Context, []string) (string, error) {
	return a.out.Info("How can I help you?"), nil
}

func (a *App) help(context.Context, []string) (string, error) {
	table := a.commandTable()
	width := 0
	for _, c := range table {
		width = max(width, len(c.name)+1+len(c.usage))
	}

	var b strings.Builder
	b.WriteString(a.out.Section("Available commands:"))
	for _, c := range table {
		synopsis := strings.TrimSpace(c.name + " " + c.usage)
		pad := strings.Repeat(" ", width-len(synopsis))
		fmt.Fprintf(&b, "\n  %s%s%s  - %s", a.out.Command(c.name), strings.TrimPrefix(synopsis, c.name), pad, c.help)
	}
	return b.String(), nil
}

func (a *App) save(ctx context.Context, _ []string) (string, error) {
	if err := a.flush(ctx); err != nil {
		return "", err
	}
	return a.out.Success("Data saved."), nil
}

// exit only says goodbye; Run flushes after the loop for every way out.
func (a *App) exit(context.Context, []string) (string, error) {
	return a.out.Info("Good bye!"), nil
}
