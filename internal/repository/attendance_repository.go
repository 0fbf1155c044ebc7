package repository

import (
	"time"

	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/query"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAttendanceRepository is a GORM implementation of AttendanceRepository
type GormAttendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &GormAttendanceRepository{db: db}
}

func (r *GormAttendanceRepository) Create(attendance *models.Attendance) error {
	return r.db.Omit(clause.Associations).Create(attendance).Error
}

func (r *GormAttendanceRepository) FindByID(id uint64) (*models.Attendance, error) {
	var attendance models.Attendance
	if err := r.db.Preload("Employee").First(&attendance, id).Error; err != nil {
		return nil, err
	}
	return &attendance, nil
}

func (r *GormAttendanceRepository) List(spec query.Spec) ([]models.Attendance, int64, error) {
	return query.Run[models.Attendance](r.db, spec, "Employee")
}

func (r *GormAttendanceRepository) Update(attendance *models.Attendance) error {
	return r.db.Omit(clause.Associations).Save(attendance).Error
}

func (r *GormAttendanceRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Attendance{}, id).Error
}

func (r *GormAttendanceRepository) Exists(employeeID uint64, date time.Time, exceptID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Attendance{}).
		Where("employee_id = ? AND date = ? AND id <> ?", employeeID, date, exceptID).
		Count(&count).Error
	return count > 0, err
}

func (r *GormAttendanceRepository) CountOnDate(userID uint64, date time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Attendance{}).
		Scopes(query.Owned(query.Owner{ID: userID, Through: "attendances.employee_id"})).
		Where("attendances.date = ?", date).
		Count(&count).Error
	return count, err
}
