package repository

import (
	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/query"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDuePaymentRepository is a GORM implementation of DuePaymentRepository
type GormDuePaymentRepository struct {
	db *gorm.DB
}

// NewDuePaymentRepository creates a new DuePaymentRepository
func NewDuePaymentRepository(db *gorm.DB) DuePaymentRepository {
	return &GormDuePaymentRepository{db: db}
}

func (r *GormDuePaymentRepository) Create(payment *models.DuePayment) error {
	return r.db.Omit(clause.Associations).Create(payment).Error
}

func (r *GormDuePaymentRepository) FindByID(id uint64) (*models.DuePayment, error) {
	var payment models.DuePayment
	if err := r.db.Preload("Employee").First(&payment, id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *GormDuePaymentRepository) List(spec query.Spec) ([]models.DuePayment, int64, error) {
	return query.Run[models.DuePayment](r.db, spec, "Employee")
}

func (r *GormDuePaymentRepository) ListPending(userID uint64, limit int) ([]models.DuePayment, error) {
	var payments []models.DuePayment
	err := r.db.
		Where("due_payments.user_id = ? AND due_payments.status = ?", userID, models.PaymentStatusPending).
		Scopes(query.Sorted(query.DuePaymentFilters.Resolve("pay_date").Order), query.Paginate(query.Window{Limit: limit})).
		Preload("Employee").
		Find(&payments).Error
	return payments, err
}

func (r *GormDuePaymentRepository) Update(payment *models.DuePayment) error {
	return r.db.Omit(clause.Associations).Save(payment).Error
}

func (r *GormDuePaymentRepository) Delete(id uint64) error {
	return r.db.Delete(&models.DuePayment{}, id).Error
}

func (r *GormDuePaymentRepository) CountPending(userID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.DuePayment{}).
		Where("user_id = ? AND status = ?", userID, models.PaymentStatusPending).
		Count(&count).Error
	return count, err
}
