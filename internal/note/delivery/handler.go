package delivery

import (
	"net/http"

	"notevault-backend/internal/note/usecase"
	"notevault-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// NoteHandler handles note-related HTTP requests
type NoteHandler struct {
	noteUsecase usecase.NoteUsecase
}

// NewNoteHandler creates a new NoteHandler
func NewNoteHandler(noteUsecase usecase.NoteUsecase) *NoteHandler {
	return &NoteHandler{
		noteUsecase: noteUsecase,
	}
}

// AddNoteRequest represents the request body for creating a note
type AddNoteRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// NoteIDRequest carries the note id for get and delete operations
type NoteIDRequest struct {
	NoteID string `json:"noteId" binding:"required"`
}

// UpdateNoteRequest represents the request body for updating a note
type UpdateNoteRequest struct {
	NoteID     string  `json:"noteId" binding:"required"`
	NewTitle   *string `json:"newTitle"`
	NewContent *string `json:"newContent"`
}

// AddNewNote handles POST /addNewNote
func (h *NoteHandler) AddNewNote(c *gin.Context) {
	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, response.NewBadRequest("Title and Content are required."))
		return
	}

	note, err := h.noteUsecase.CreateNote(c.GetString("userID"), req.Title, req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, "New note is created.", note)
}

// GetAllNotes handles GET /getAllNotes
func (h *NoteHandler) GetAllNotes(c *gin.Context) {
	notes, err := h.noteUsecase.GetUserNotes(c.GetString("userID"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, "Fetched all available user's notes.", notes)
}

// GetNote handles POST /getNote
func (h *NoteHandler) GetNote(c *gin.Context) {
	var req NoteIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, response.NewBadRequest("Note id is required."))
		return
	}

	note, err := h.noteUsecase.GetNoteByID(c.GetString("userID"), req.NoteID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, "Fetched note successfully.", note)
}

// UpdateNote handles POST /updateNote
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	var req UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, response.NewBadRequest("Note id is required."))
		return
	}

	updates := usecase.NoteUpdateRequest{NewTitle: req.NewTitle, NewContent: req.NewContent}
	note, err := h.noteUsecase.UpdateNote(c.GetString("userID"), req.NoteID, updates)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, "Note is updated.", note)
}

// DeleteNote handles POST /deleteNote
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	var req NoteIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, response.NewBadRequest("Note id is required."))
		return
	}

	note, err := h.noteUsecase.DeleteNote(c.GetString("userID"), req.NoteID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, "Note is deleted.", note)
}
