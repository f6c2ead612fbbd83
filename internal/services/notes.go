package services

import (
	"context"
	"sort"
	"strings"

	"github.com/dmitrijs2005/assistant/internal/common"
	"github.com/dmitrijs2005/assistant/internal/logging"
	"github.com/dmitrijs2005/assistant/internal/models"
	"github.com/dmitrijs2005/assistant/internal/models/values"
	"github.com/dmitrijs2005/assistant/internal/repositories/notes"
)

type NotesService interface {
	AddNote(ctx context.Context, req CreateNoteReq) (*models.Note, error)
	GetNote(ctx context.Context, req GetNoteReq) (*models.Note, error)
	EditTitle(ctx context.Context, req EditTitleReq) (*models.Note, error)
	EditBody(ctx context.Context, req EditBodyReq) (*models.Note, error)
	EditTags(ctx context.Context, req EditTagsReq) (*models.Note, error)
	Find(ctx context.Context, req FindReq) []*models.Note
	FindByTags(ctx context.Context, req FindByTagsReq) ([]*models.Note, error)
	SortByTags(ctx context.Context, req SortByTagsReq) ([]*models.Note, error)
	DeleteNote(ctx context.Context, req DeleteReq) error
	All(ctx context.Context) []*models.Note
	Flush(ctx context.Context) error
}

type notesService struct {
	repo notes.Repository
	ids  notes.IDGenerator
	log  logging.Logger
}

func NewNotesService(repo notes.Repository, ids notes.IDGenerator, log logging.Logger) NotesService {
	return &notesService{repo: repo, ids: ids, log: log.With("component", "notes_service")}
}

func (s *notesService) AddNote(ctx context.Context, req CreateNoteReq) (*models.Note, error) {
	title, err := values.NewTitle(req.Title)
	if err != nil {
		return nil, err
	}
	tags, err := values.ParseTags(req.Tags...)
	if err != nil {
		return nil, err
	}

	n := models.NewNote(s.ids.Generate(), title, values.NewField(strings.TrimSpace(req.Body)), tags)
	if err := s.repo.Add(n); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "note added", "id", n.ID())
	return n, nil
}

func (s *notesService) GetNote(_ context.Context, req GetNoteReq) (*models.Note, error) {
	return s.repo.Get(req.NoteID)
}

func (s *notesService) EditTitle(ctx context.Context, req EditTitleReq) (*models.Note, error) {
	n, err := s.repo.Get(req.NoteID)
	if err != nil {
		return nil, err
	}
	title, err := values.NewTitle(req.Title)
	if err != nil {
		return nil, err
	}
	n.Edit(models.NoteUpdate{Title: &title})
	s.log.Info(ctx, "note title edited", "id", n.ID())
	return n, nil
}

func (s *notesService) EditBody(ctx context.Context, req EditBodyReq) (*models.Note, error) {
	n, err := s.repo.Get(req.NoteID)
	if err != nil {
		return nil, err
	}
	body := values.NewField(strings.TrimSpace(req.Body))
	n.Edit(models.NoteUpdate{Body: &body})
	s.log.Info(ctx, "note body edited", "id", n.ID())
	return n, nil
}

func (s *notesService) EditTags(ctx context.Context, req EditTagsReq) (*models.Note, error) {
	n, err := s.repo.Get(req.NoteID)
	if err != nil {
		return nil, err
	}
	tags, err := values.ParseTags(req.Tags...)
	if err != nil {
		return nil, err
	}
	n.Edit(models.NoteUpdate{Tags: &tags})
	s.log.Info(ctx, "note tags edited", "id", n.ID(), "tags", len(tags))
	return n, nil
}

func (s *notesService) Find(_ context.Context, req FindReq) []*models.Note {
	return s.repo.Find(req.Query)
}

func (s *notesService) FindByTags(_ context.Context, req FindByTagsReq) ([]*models.Note, error) {
	tags, err := requiredTags(req.Tags)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByTags(tags), nil
}

// SortByTags orders all notes by how many of the given tags they carry,
// most first. Ties are ordered by title ignoring case, then by id.
func (s *notesService) SortByTags(_ context.Context, req SortByTagsReq) ([]*models.Note, error) {
	tags, err := requiredTags(req.Tags)
	if err != nil {
		return nil, err
	}

	all := s.repo.All()
	counts := make(map[int]int, len(all))
	for _, n := range all {
		counts[n.ID()] = n.CountMatchingTags(tags)
	}

	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if ca, cb := counts[a.ID()], counts[b.ID()]; ca != cb {
			return ca > cb
		}
		ta, tb := strings.ToLower(a.Title().String()), strings.ToLower(b.Title().String())
		if ta != tb {
			return ta < tb
		}
		return a.ID() < b.ID()
	})
	return all, nil
}

func (s *notesService) DeleteNote(ctx context.Context, req DeleteReq) error {
	if err := s.repo.Delete(req.NoteID); err != nil {
		return err
	}
	s.log.Info(ctx, "note deleted", "id", req.NoteID)
	return nil
}

func (s *notesService) All(_ context.Context) []*models.Note {
	return s.repo.All()
}

func (s *notesService) Flush(ctx context.Context) error {
	return s.repo.Flush(ctx)
}

// requiredTags parses raw and rejects an empty result.
func requiredTags(raw []string) (values.TagSet, error) {
	tags, err := values.ParseTags(raw...)
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		return nil, common.NewValidation("tags", common.KindEmpty, "Tag couldn't be empty")
	}
	return tags, nil
}
