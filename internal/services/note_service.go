package services

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/query"
	"github.com/yukikurage/employee-management-api/internal/repository"
)

// NoteService handles note business logic
type NoteService struct {
	noteRepo repository.NoteRepository
	logger   *slog.Logger
	lister   lister[models.Note]
}

// NewNoteService creates a new NoteService
func NewNoteService(noteRepo repository.NoteRepository, logger *slog.Logger) *NoteService {
	return &NoteService{
		noteRepo: noteRepo,
		logger:   loggerOrDefault(logger),
		lister: lister[models.Note]{
			entity:  "notes",
			owner:   ownedBy("notes.user_id"),
			search:  query.NoteSearch,
			filters: query.NoteFilters,
			list:    noteRepo.List,
		},
	}
}

// NoteInput is the full set of editable note fields.
type NoteInput struct {
	Title       string
	Description string
}

func (s *NoteService) List(input ListInput) ListResult[models.Note] {
	return s.lister.run(s.logger, input)
}

func (s *NoteService) Get(id uint64) (*models.Note, error) {
	note, err := s.noteRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, "note", id)
	}
	return note, nil
}

func (s *NoteService) Create(ownerID uint64, input NoteInput) (*models.Note, error) {
	note := &models.Note{UserID: ownerID}
	if err := applyNote(note, input); err != nil {
		return nil, err
	}
	if err := s.noteRepo.Create(note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return note, nil
}

func (s *NoteService) Update(note *models.Note, input NoteInput) (*models.Note, error) {
	if err := applyNote(note, input); err != nil {
		return nil, err
	}
	if err := s.noteRepo.Update(note); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	return note, nil
}

func (s *NoteService) Delete(id uint64) error {
	if err := s.noteRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}

func applyNote(note *models.Note, input NoteInput) error {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return fieldError("title", "The title field is required.")
	}
	note.Title = title
	note.Description = optionalString(input.Description)
	return nil
}
