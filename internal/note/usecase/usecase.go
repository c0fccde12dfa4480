package usecase

import "notevault-backend/internal/note/domain"

// NoteUpdateRequest carries the optional fields of a note update; nil means
// "leave unchanged".
type NoteUpdateRequest struct {
	NewTitle   *string `json:"newTitle"`
	NewContent *string `json:"newContent"`
}

// NoteUsecase defines note business operations, all scoped to the
// authenticated owner.
type NoteUsecase interface {
	// CreateNote creates a new note for the user
	CreateNote(userID, title, content string) (*domain.Note, error)

	// GetNoteByID returns a single note owned by the user
	GetNoteByID(userID, noteID string) (*domain.Note, error)

	// GetUserNotes returns all notes owned by the user
	GetUserNotes(userID string) ([]*domain.Note, error)

	// UpdateNote applies the non-nil fields of updates to a note
	UpdateNote(userID, noteID string, updates NoteUpdateRequest) (*domain.Note, error)

	// DeleteNote deletes a note owned by the user
	DeleteNote(userID, noteID string) (*domain.Note, error)
}
