package repository

import (
	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/query"
	"gorm.io/gorm"
)

// GormNoteRepository is a GORM implementation of NoteRepository
type GormNoteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &GormNoteRepository{db: db}
}

func (r *GormNoteRepository) Create(note *models.Note) error {
	return r.db.Create(note).Error
}

func (r *GormNoteRepository) FindByID(id uint64) (*models.Note, error) {
	var note models.Note
	if err := r.db.First(&note, id).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *GormNoteRepository) List(spec query.Spec) ([]models.Note, int64, error) {
	return query.Run[models.Note](r.db, spec)
}

func (r *GormNoteRepository) Update(note *models.Note) error {
	return r.db.Save(note).Error
}

func (r *GormNoteRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Note{}, id).Error
}

func (r *GormNoteRepository) Count(userID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Note{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
