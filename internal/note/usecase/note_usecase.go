package usecase

import (
	"strings"

	"notevault-backend/internal/note/domain"
	"notevault-backend/internal/note/repository"
	"notevault-backend/pkg/response"
)

// noteUsecase implements NoteUsecase interface
type noteUsecase struct {
	noteRepo repository.NoteRepository
}

// NewNoteUsecase creates a new instance of noteUsecase
func NewNoteUsecase(noteRepo repository.NoteRepository) NoteUsecase {
	return &noteUsecase{
		noteRepo: noteRepo,
	}
}

func (u *noteUsecase) CreateNote(userID, title, content string) (*domain.Note, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, response.NewBadRequest("Title and Content are required.")
	}

	note := &domain.Note{
		Owner:   userID,
		Title:   title,
		Content: content,
	}

	if err := u.noteRepo.Create(note); err != nil {
		return nil, err
	}
	return note, nil
}

func (u *noteUsecase) GetNoteByID(userID, noteID string) (*domain.Note, error) {
	if noteID == "" {
		return nil, response.NewBadRequest("Note id is required.")
	}

	note, err := u.noteRepo.FindByID(noteID)
	if err != nil {
		return nil, err
	}
	if note == nil || note.Owner != userID {
		return nil, response.NewNotFound("Note not found.")
	}
	return note, nil
}

func (u *noteUsecase) GetUserNotes(userID string) ([]*domain.Note, error) {
	return u.noteRepo.FindByOwner(userID)
}

func (u *noteUsecase) UpdateNote(userID, noteID string, updates NoteUpdateRequest) (*domain.Note, error) {
	hasTitle := updates.NewTitle != nil && strings.TrimSpace(*updates.NewTitle) != ""
	hasContent := updates.NewContent != nil && strings.TrimSpace(*updates.NewContent) != ""
	if !hasTitle && !hasContent {
		return nil, response.NewBadRequest("Title or Content is required.")
	}

	note, err := u.GetNoteByID(userID, noteID)
	if err != nil {
		return nil, err
	}

	if hasTitle {
		note.Title = *updates.NewTitle
	}
	if hasContent {
		note.Content = *updates.NewContent
	}

	if err := u.noteRepo.Update(note); err != nil {
		return nil, err
	}
	return note, nil
}

func (u *noteUsecase) DeleteNote(userID, noteID string) (*domain.Note, error) {
	if noteID == "" {
		return nil, response.NewBadRequest("Note id is required.")
	}

	note, err := u.noteRepo.FindByID(noteID)
	if err != nil {
		return nil, err
	}
	if note == nil || note.Owner != userID {
		return nil, response.NewNotFound("Note not found, it might be already deleted.")
	}

	if err := u.noteRepo.Delete(note.ID); err != nil {
		return nil, err
	}
	return note, nil
}
