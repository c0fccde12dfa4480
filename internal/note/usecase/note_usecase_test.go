package usecase

import (
	"fmt"
	"testing"
	"time"

	"notevault-backend/internal/note/domain"
	"notevault-backend/pkg/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNoteRepo struct {
	notes  map[string]*domain.Note
	nextID int
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[string]*domain.Note)}
}

func (f *fakeNoteRepo) Create(note *domain.Note) error {
	f.nextID++
	note.ID = fmt.Sprintf("note-%d", f.nextID)
	note.CreatedAt = time.Now()
	note.UpdatedAt = time.Now()
	stored := *note
	f.notes[note.ID] = &stored
	return nil
}

func (f *fakeNoteRepo) FindByID(id string) (*domain.Note, error) {
	if note, ok := f.notes[id]; ok {
		copied := *note
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeNoteRepo) FindByOwner(owner string) ([]*domain.Note, error) {
	var notes []*domain.Note
	for _, note := range f.notes {
		if note.Owner == owner {
			copied := *note
			notes = append(notes, &copied)
		}
	}
	return notes, nil
}

func (f *fakeNoteRepo) Update(note *domain.Note) error {
	stored := *note
	f.notes[note.ID] = &stored
	return nil
}

func (f *fakeNoteRepo) Delete(id string) error {
	delete(f.notes, id)
	return nil
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	var apiErr *response.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, status, apiErr.Status)
}

func TestCreateNote(t *testing.T) {
	repo := newFakeNoteRepo()
	u := NewNoteUsecase(repo)

	note, err := u.CreateNote("user-1", "Groceries", "milk, eggs")
	require.NoError(t, err)
	assert.NotEmpty(t, note.ID)
	assert.Equal(t, "user-1", note.Owner)

	_, err = u.CreateNote("user-1", "  ", "content")
	requireStatus(t, err, 400)
}

func TestGetNoteScopedToOwner(t *testing.T) {
	repo := newFakeNoteRepo()
	u := NewNoteUsecase(repo)

	note, err := u.CreateNote("user-1", "Groceries", "milk, eggs")
	require.NoError(t, err)

	fetched, err := u.GetNoteByID("user-1", note.ID)
	require.NoError(t, err)
	assert.Equal(t, note.ID, fetched.ID)

	// Another user's note looks like it does not exist.
	_, err = u.GetNoteByID("user-2", note.ID)
	requireStatus(t, err, 404)

	_, err = u.GetNoteByID("user-1", "missing")
	requireStatus(t, err, 404)
}

func TestGetUserNotes(t *testing.T) {
	repo := newFakeNoteRepo()
	u := NewNoteUsecase(repo)

	_, err := u.CreateNote("user-1", "One", "first")
	require.NoError(t, err)
	_, err = u.CreateNote("user-1", "Two", "second")
	require.NoError(t, err)
	_, err = u.CreateNote("user-2", "Other", "not mine")
	require.NoError(t, err)

	notes, err := u.GetUserNotes("user-1")
	require.NoError(t, err)
	assert.Len(t, notes, 2)
}

func TestUpdateNote(t *testing.T) {
	repo := newFakeNoteRepo()
	u := NewNoteUsecase(repo)

	note, err := u.CreateNote("user-1", "Groceries", "milk, eggs")
	require.NoError(t, err)

	newTitle := "Shopping"
	updated, err := u.UpdateNote("user-1", note.ID, NoteUpdateRequest{NewTitle: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Shopping", updated.Title)
	assert.Equal(t, "milk, eggs", updated.Content)

	// Neither field provided.
	_, err = u.UpdateNote("user-1", note.ID, NoteUpdateRequest{})
	requireStatus(t, err, 400)

	_, err = u.UpdateNote("user-2", note.ID, NoteUpdateRequest{NewTitle: &newTitle})
	requireStatus(t, err, 404)
}

func TestDeleteNote(t *testing.T) {
	repo := newFakeNoteRepo()
	u := NewNoteUsecase(repo)

	note, err := u.CreateNote("user-1", "Groceries", "milk, eggs")
	require.NoError(t, err)

	deleted, err := u.DeleteNote("user-1", note.ID)
	require.NoError(t, err)
	assert.Equal(t, note.ID, deleted.ID)

	// Already deleted.
	_, err = u.DeleteNote("user-1", note.ID)
	requireStatus(t, err, 404)

	_, err = u.DeleteNote("user-1", "")
	requireStatus(t, err, 400)
}
