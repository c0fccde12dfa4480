package repository

import "notevault-backend/internal/note/domain"

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	// Create creates a new note
	Create(note *domain.Note) error

	// FindByID finds a note by its ID
	FindByID(id string) (*domain.Note, error)

	// FindByOwner finds all notes owned by a user
	FindByOwner(owner string) ([]*domain.Note, error)

	// Update updates an existing note
	Update(note *domain.Note) error

	// Delete deletes a note by ID
	Delete(id string) error
}
