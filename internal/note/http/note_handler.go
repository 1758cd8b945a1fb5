// Package http provides HTTP handlers for note endpoints.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authhttp "github.com/allisson/notes/internal/auth/http"
	apperrors "github.com/allisson/notes/internal/errors"
	"github.com/allisson/notes/internal/httputil"
	"github.com/allisson/notes/internal/note/domain"
	"github.com/allisson/notes/internal/note/http/dto"
	noteUseCase "github.com/allisson/notes/internal/note/usecase"
	userDomain "github.com/allisson/notes/internal/user/domain"
	customValidation "github.com/allisson/notes/internal/validation"
)

// NoteHandler handles HTTP requests for note CRUD operations. All endpoints
// require an authenticated user resolved by the authentication middleware.
type NoteHandler struct {
	noteUseCase noteUseCase.NoteUseCase
	logger      *slog.Logger
}

// NewNoteHandler creates a new note handler with required dependencies.
func NewNoteHandler(
	noteUseCase noteUseCase.NoteUseCase,
	logger *slog.Logger,
) *NoteHandler {
	return &NoteHandler{
		noteUseCase: noteUseCase,
		logger:      logger,
	}
}

// currentUser resolves the authenticated user from the request context.
func (h *NoteHandler) currentUser(c *gin.Context) (*userDomain.User, bool) {
	user, ok := authhttp.GetUser(c.Request.Context())
	if !ok {
		// Should never happen if the authentication middleware ran
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return nil, false
	}
	return user, true
}

// noteIDParam parses the :id path parameter. A malformed id cannot identify
// any note, so it is reported as not found.
func (h *NoteHandler) noteIDParam(c *gin.Context) (uuid.UUID, bool) {
	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, domain.ErrNoteNotFound, h.logger)
		return uuid.Nil, false
	}
	return noteID, true
}

// CreateNoteHandler creates a new note owned by the authenticated user.
// POST /v1/notes - Requires authentication.
// Returns 201 Created with the new note.
func (h *NoteHandler) CreateNoteHandler(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateNoteRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Call use case
	note, err := h.noteUseCase.CreateNote(c.Request.Context(), user.ID, &domain.CreateNoteInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.NewNoteResponse(note))
}

// ListNotesHandler lists all notes owned by the authenticated user.
// GET /v1/notes - Requires authentication.
// Returns 200 OK with the user's notes, newest first.
func (h *NoteHandler) ListNotesHandler(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	notes, err := h.noteUseCase.ListNotes(c.Request.Context(), user.ID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewNoteListResponse(notes))
}

// GetNoteHandler retrieves a single note owned by the authenticated user.
// GET /v1/notes/:id - Requires authentication.
// Returns 200 OK, or 404 if the note does not exist or belongs to another user.
func (h *NoteHandler) GetNoteHandler(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	noteID, ok := h.noteIDParam(c)
	if !ok {
		return
	}

	note, err := h.noteUseCase.GetNote(c.Request.Context(), noteID, user.ID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewNoteResponse(note))
}

// UpdateNoteHandler applies a partial update to a note owned by the
// authenticated user. Absent fields keep their current values.
// PATCH /v1/notes/:id - Requires authentication.
// Returns 200 OK with the updated note, or 404 if the note does not exist or
// belongs to another user.
func (h *NoteHandler) UpdateNoteHandler(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	noteID, ok := h.noteIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateNoteRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	note, err := h.noteUseCase.UpdateNote(c.Request.Context(), noteID, user.ID, &domain.UpdateNoteInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewNoteResponse(note))
}

// DeleteNoteHandler removes a note owned by the authenticated user.
// DELETE /v1/notes/:id - Requires authentication.
// Returns 204 No Content, or 404 if the note does not exist or belongs to
// another user.
func (h *NoteHandler) DeleteNoteHandler(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	noteID, ok := h.noteIDParam(c)
	if !ok {
		return
	}

	if err := h.noteUseCase.DeleteNote(c.Request.Context(), noteID, user.ID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
