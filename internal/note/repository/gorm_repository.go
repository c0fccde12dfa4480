package repository

import (
	"errors"
	"time"

	"notevault-backend/internal/note/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormNoteRepository implements NoteRepository using GORM
type gormNoteRepository struct {
	db *gorm.DB
}

// NewGormNoteRepository creates a new GORM-based NoteRepository
func NewGormNoteRepository(db *gorm.DB) NoteRepository {
	return &gormNoteRepository{db: db}
}

func (r *gormNoteRepository) Create(note *domain.Note) error {
	if note.ID == "" {
		note.ID = uuid.New().String()
	}
	note.CreatedAt = time.Now()
	note.UpdatedAt = time.Now()
	return r.db.Create(note).Error
}

func (r *gormNoteRepository) FindByID(id string) (*domain.Note, error) {
	var note domain.Note
	err := r.db.Where("id = ?", id).First(&note).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

func (r *gormNoteRepository) FindByOwner(owner string) ([]*domain.Note, error) {
	var notes []*domain.Note
	err := r.db.Where("owner = ?", owner).Order("created_at DESC").Find(&notes).Error
	return notes, err
}

func (r *gormNoteRepository) Update(note *domain.Note) error {
	note.UpdatedAt = time.Now()
	return r.db.Save(note).Error
}

func (r *gormNoteRepository) Delete(id string) error {
	return r.db.Delete(&domain.Note{}, "id = ?", id).Error
}
