package services

// CreateNoteReq asks to create a note; Body and Tags may be empty.
type CreateNoteReq struct {
	Title string
	Body  string
	Tags  []string
}

type GetNoteReq struct {
	NoteID int
}

type EditTitleReq struct {
	NoteID int
	Title  string
}

type EditBodyReq struct {
	NoteID int
	Body   string
}

// EditTagsReq replaces all tags of a note; an empty list clears them.
type EditTagsReq struct {
	NoteID int
	Tags   []string
}

// FindReq searches titles and bodies.
type FindReq struct {
	Query string
}

type FindByTagsReq struct {
	Tags []string
}

type SortByTagsReq struct {
	Tags []string
}

type DeleteReq struct {
	NoteID int
}
