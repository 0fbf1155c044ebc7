package repository

import (
	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/query"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormEmployeeRepository is a GORM implementation of EmployeeRepository
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new EmployeeRepository
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

func (r *GormEmployeeRepository) Create(employee *models.Employee) error {
	return r.db.Omit(clause.Associations).Create(employee).Error
}

func (r *GormEmployeeRepository) FindByID(id uint64) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.Preload("Department").First(&employee, id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *GormEmployeeRepository) FindOwned(userID, id uint64) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.Where("user_id = ?", userID).First(&employee, id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *GormEmployeeRepository) List(spec query.Spec) ([]models.Employee, int64, error) {
	return query.Run[models.Employee](r.db, spec, "Department")
}

func (r *GormEmployeeRepository) ListAll(userID uint64) ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Where("user_id = ?", userID).
		Order("last_name ASC").Order("first_name ASC").Order("id ASC").
		Find(&employees).Error
	return employees, err
}

func (r *GormEmployeeRepository) Update(employee *models.Employee) error {
	return r.db.Omit(clause.Associations).Save(employee).Error
}

func (r *GormEmployeeRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", id).Delete(&models.Attendance{}).Error; err != nil {
			return err
		}
		if err := tx.Where("employee_id = ?", id).Delete(&models.DuePayment{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Task{}).Where("employee_id = ?", id).Update("employee_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Employee{}, id).Error
	})
}

func (r *GormEmployeeRepository) EmailTaken(email string, exceptID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Employee{}).
		Where("LOWER(email) = LOWER(?) AND id <> ?", email, exceptID).
		Count(&count).Error
	return count > 0, err
}

func (r *GormEmployeeRepository) Count(userID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Employee{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *GormEmployeeRepository) MonthlyPayroll(userID uint64) (float64, error) {
	var total float64
	err := r.db.Model(&models.Employee{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(pay_amount), 0)").
		Scan(&total).Error
	return total, err
}
