package dto

import (
	"time"

	"github.com/yukikurage/employee-management-api/internal/models"
)

type NoteDTO struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToNoteDTO(note models.Note) NoteDTO {
	return NoteDTO{
		ID:          note.ID,
		Title:       note.Title,
		Description: note.Description,
		CreatedAt:   note.CreatedAt,
		UpdatedAt:   note.UpdatedAt,
	}
}
