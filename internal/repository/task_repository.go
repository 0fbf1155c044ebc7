package repository

import (
	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/query"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Omit(clause.Associations).Create(task).Error
}

// FindByID finds a task by ID with optional preloading
func (r *GormTaskRepository) FindByID(id uint64, preload ...string) (*models.Task, error) {
	var task models.Task
	tx := r.db

	// Apply preloading if specified
	for _, p := range preload {
		tx = tx.Preload(p)
	}

	if err := tx.First(&task, id).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// List retrieves tasks with search, ordering and pagination
func (r *GormTaskRepository) List(spec query.Spec) ([]models.Task, int64, error) {
	return query.Run[models.Task](r.db, spec, "Employee")
}

// ListOpen lists tasks that are not completed
func (r *GormTaskRepository) ListOpen(userID uint64, order query.Order, limit int) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.
		Where("tasks.user_id = ? AND tasks.status <> ?", userID, models.TaskStatusCompleted).
		Scopes(query.Sorted(order), query.Paginate(query.Window{Limit: limit})).
		Preload("Employee").
		Find(&tasks).Error
	return tasks, err
}

// Update updates a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Omit(clause.Associations).Save(task).Error
}

// Delete deletes a task
func (r *GormTaskRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Task{}, id).Error
}

// CountOpen counts tasks that are not completed
func (r *GormTaskRepository) CountOpen(userID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).
		Where("user_id = ? AND status <> ?", userID, models.TaskStatusCompleted).
		Count(&count).Error
	return count, err
}
