package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/assistant/internal/models"
	"github.com/dmitrijs2005/assistant/internal/services"
)

func (a *App) addNote(ctx context.Context, args []string) (string, error) {
	if err := requireArgs("add-note", args, "title"); err != nil {
		return "", err
	}
	req := services.CreateNoteReq{Title: args[0]}
	if len(args) > 1 {
		req.Body = unescapeBody(args[1])
	}
	if len(args) > 2 {
		req.Tags = tagArgs(args[2:])
	}

	n, err := a.notes.AddNote(ctx, req)
	if err != nil {
		return "", err
	}
	return a.out.Success(fmt.Sprintf("Note #%d added.", n.ID())), nil
}

func (a *App) showNote(ctx context.Context, args []string) (string, error) {
	if err := requireArgs("note", args, "note id"); err != nil {
		return "", err
	}
	id, err := parseNoteID(args[0])
	if err != nil {
		return "", err
	}
	n, err := a.notes.GetNote(ctx, services.GetNoteReq{NoteID: id})
	if err != nil {
		return "", err
	}
	return n.String(), nil
}

func (a *App) allNotes(ctx context.Context, _ []string) (string, error) {
	return a.noteList(a.notes.All(ctx), "No notes yet."), nil
}

func (a *App) editNoteTitle(ctx context.Context, args []string) (string, error) {
	if err := requireArgs("edit-note-title", args, "note id", "title"); err != nil {
		return "", err
	}
	id, err := parseNoteID(args[0])
	if err != nil {
		return "", err
	}
	n, err := a.notes.EditTitle(ctx, services.EditTitleReq{NoteID: id, Title: rest(args, 1)})
	if err != nil {
		return "", err
	}
	return a.noteUpdated(n), nil
}

func (a *App) editNoteBody(ctx context.Context, args []string) (string, error) {
	if err := requireArgs("edit-note-body", args, "note id", "body"); err != nil {
		return "", err
	}
	id, err := parseNoteID(args[0])
	if err != nil {
		return "", err
	}
	n, err := a.notes.EditBody(ctx, services.EditBodyReq{NoteID: id, Body: unescapeBody(rest(args, 1))})
	if err != nil {
		return "", err
	}
	return a.noteUpdated(n), nil
}

// editNoteTags replaces all tags; no tags clears them.
func (a *App) editNoteTags(ctx context.Context, args []string) (string, error) {
	if err := requireArgs("edit-note-tags", args, "note id"); err != nil {
		return "", err
	}
	id, err := parseNoteID(args[0])
	if err != nil {
		return "", err
	}
	n, err := a.notes.EditTags(ctx, services.EditTagsReq{NoteID: id, Tags: tagArgs(args[1:])})
	if err != nil {
		return "", err
	}
	return a.noteUpdated(n), nil
}

func (a *App) findNotes(ctx context.Context, args []string) (string, error) {
	if err := requireArgs("find-notes", args, "query"); err != nil {
		return "", err
	}
	return a.noteList(a.notes.Find(ctx, services.FindReq{Query: rest(args, 0)}), "No notes found."), nil
}

func (a *App) findNotesByTags(ctx context.Context, args []string) (string, error) {
	if err := requireArgs("find-notes-tags", args, "tags"); err != nil {
		return "", err
	}
	found, err := a.notes.FindByTags(ctx, services.FindByTagsReq{Tags: tagArgs(args)})
	if err != nil {
		return "", err
	}
	return a.noteList(found, "No notes found."), nil
}

func (a *App) sortNotesByTags(ctx context.Context, args []string) (string, error) {
	if err := requireArgs("sort-notes-tags", args, "tags"); err != nil {
		return "", err
	}
	sorted, err := a.notes.SortByTags(ctx, services.SortByTagsReq{Tags: tagArgs(args)})
	if err != nil {
		return "", err
	}
	return a.noteList(sorted, "No notes found."), nil
}

func (a *App) deleteNote(ctx context.Context, args []string) (string, error) {
	if err := requireArgs("delete-note", args, "note id"); err != nil {
		return "", err
	}
	id, err := parseNoteID(args[0])
	if err != nil {
		return "", err
	}
	if err := a.notes.DeleteNote(ctx, services.DeleteReq{NoteID: id}); err != nil {
		return "", err
	}
	return a.out.Success(fmt.Sprintf("Note %d has been successfully deleted", id)), nil
}

func (a *App) noteList(list []*models.Note, empty string) string {
	if len(list) == 0 {
		return a.out.Info(empty)
	}
	return a.out.Notes(list)
}

func (a *App) noteUpdated(n *models.Note) string {
	return a.out.Success(fmt.Sprintf("Note #%d updated.", n.ID()))
}

// tagArgs accepts "a,b" as well as "a b".
func tagArgs(args []string) []string {
	return splitTags(strings.Join(args, ","))
}
