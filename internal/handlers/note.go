package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/employee-management-api/internal/dto"
	apierrors "github.com/yukikurage/employee-management-api/internal/errors"
	"github.com/yukikurage/employee-management-api/internal/middleware"
	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/services"
	"github.com/yukikurage/employee-management-api/internal/utils"
)

type NoteHandler struct {
	service *services.NoteService
}

func NewNoteHandler(service *services.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

type noteRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
}

func (r noteRequest) input() services.NoteInput {
	return services.NoteInput{Title: r.Title, Description: r.Description}
}

func (h *NoteHandler) ListNotes(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	result := h.service.List(listInput(userID, utils.GetListParams(c)))
	c.JSON(http.StatusOK, dto.ToListResponse(result, dto.ToNoteDTO))
}

func (h *NoteHandler) GetNote(c *gin.Context) {
	note, ok := middleware.GetResource[*models.Note](c)
	if !ok {
		apierrors.InternalError(c, "Note not found in context")
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteDTO(*note))
}

func (h *NoteHandler) CreateNote(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req noteRequest
	if !bindJSON(c, &req) {
		return
	}

	note, err := h.service.Create(userID, req.input())
	if err != nil {
		respondServiceError(c, err, req)
		return
	}

	c.JSON(http.StatusCreated, dto.ToNoteDTO(*note))
}

func (h *NoteHandler) UpdateNote(c *gin.Context) {
	note, ok := middleware.GetResource[*models.Note](c)
	if !ok {
		apierrors.InternalError(c, "Note not found in context")
		return
	}

	var req noteRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.service.Update(note, req.input())
	if err != nil {
		respondServiceError(c, err, req)
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteDTO(*updated))
}

func (h *NoteHandler) DeleteNote(c *gin.Context) {
	note, ok := middleware.GetResource[*models.Note](c)
	if !ok {
		apierrors.InternalError(c, "Note not found in context")
		return
	}

	if err := h.service.Delete(note.ID); err != nil {
		respondServiceError(c, err, nil)
		return
	}

	deleted(c, "Note")
}
