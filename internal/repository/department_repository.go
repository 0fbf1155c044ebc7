package repository

import (
	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/query"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDepartmentRepository is a GORM implementation of DepartmentRepository
type GormDepartmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository creates a new DepartmentRepository
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &GormDepartmentRepository{db: db}
}

func (r *GormDepartmentRepository) Create(department *models.Department) error {
	return r.db.Omit(clause.Associations).Create(department).Error
}

func (r *GormDepartmentRepository) FindByID(id uint64) (*models.Department, error) {
	var department models.Department
	if err := r.db.First(&department, id).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

func (r *GormDepartmentRepository) FindOwned(userID, id uint64) (*models.Department, error) {
	var department models.Department
	if err := r.db.Where("user_id = ?", userID).First(&department, id).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

func (r *GormDepartmentRepository) List(spec query.Spec) ([]models.Department, int64, error) {
	return query.Run[models.Department](r.db, spec)
}

func (r *GormDepartmentRepository) ListAll(userID uint64) ([]models.Department, error) {
	var departments []models.Department
	err := r.db.Where("user_id = ?", userID).Order("name ASC").Order("id ASC").Find(&departments).Error
	return departments, err
}

func (r *GormDepartmentRepository) Update(department *models.Department) error {
	return r.db.Omit(clause.Associations).Save(department).Error
}

func (r *GormDepartmentRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Employee{}).
			Where("department_id = ?", id).
			Update("department_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Department{}, id).Error
	})
}

func (r *GormDepartmentRepository) NameTaken(userID uint64, name string, exceptID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Department{}).
		Where("user_id = ? AND LOWER(name) = LOWER(?) AND id <> ?", userID, name, exceptID).
		Count(&count).Error
	return count > 0, err
}

func (r *GormDepartmentRepository) EmployeeCounts(departmentIDs []uint64) (map[uint64]int64, error) {
	counts := make(map[uint64]int64, len(departmentIDs))
	if len(departmentIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		DepartmentID uint64
		Total        int64
	}
	err := r.db.Model(&models.Employee{}).
		Select("department_id, COUNT(*) AS total").
		Where("department_id IN ?", departmentIDs).
		Group("department_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.DepartmentID] = row.Total
	}
	return counts, nil
}

func (r *GormDepartmentRepository) Count(userID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Department{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
