package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/query"
	"github.com/yukikurage/employee-management-api/internal/repository"
	"gorm.io/gorm"
)

// DuePaymentService handles due payment business logic
type DuePaymentService struct {
	clocked
	paymentRepo  repository.DuePaymentRepository
	employeeRepo repository.EmployeeRepository
	logger       *slog.Logger
	lister       lister[models.DuePayment]
}

// NewDuePaymentService creates a new DuePaymentService
func NewDuePaymentService(paymentRepo repository.DuePaymentRepository, employeeRepo repository.EmployeeRepository, logger *slog.Logger) *DuePaymentService {
	return &DuePaymentService{
		paymentRepo:  paymentRepo,
		employeeRepo: employeeRepo,
		logger:       loggerOrDefault(logger),
		lister: lister[models.DuePayment]{
			entity:  "due payments",
			owner:   ownedBy("due_payments.user_id"),
			search:  query.DuePaymentSearch,
			filters: query.DuePaymentFilters,
			list:    paymentRepo.List,
		},
	}
}

// DuePaymentInput is the full set of editable due payment fields.
type DuePaymentInput struct {
	EmployeeID uint64
	Amount     float64
	Status     string
	PayDate    string
	Notes      string
}

func (s *DuePaymentService) List(input ListInput) ListResult[models.DuePayment] {
	return s.lister.run(s.logger, input)
}

// Get returns a due payment with its employee
func (s *DuePaymentService) Get(id uint64) (*models.DuePayment, error) {
	payment, err := s.paymentRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, "due payment", id)
	}
	return payment, nil
}

func (s *DuePaymentService) Create(ownerID uint64, input DuePaymentInput) (*models.DuePayment, error) {
	payment := &models.DuePayment{UserID: ownerID}
	if err := s.apply(payment, input); err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, fmt.Errorf("failed to create due payment: %w", err)
	}
	return s.Get(payment.ID)
}

func (s *DuePaymentService) Update(payment *models.DuePayment, input DuePaymentInput) (*models.DuePayment, error) {
	if err := s.apply(payment, input); err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Update(payment); err != nil {
		return nil, fmt.Errorf("failed to update due payment: %w", err)
	}
	return s.Get(payment.ID)
}

// MarkPaid settles a payment. Paying an already paid payment is a no-op.
func (s *DuePaymentService) MarkPaid(payment *models.DuePayment) (*models.DuePayment, error) {
	if !payment.IsPending() {
		return payment, nil
	}
	payment.Status = models.PaymentStatusPaid
	if err := s.paymentRepo.Update(payment); err != nil {
		return nil, fmt.Errorf("failed to mark due payment paid: %w", err)
	}
	return s.Get(payment.ID)
}

func (s *DuePaymentService) Delete(id uint64) error {
	if err := s.paymentRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete due payment: %w", err)
	}
	return nil
}

func (s *DuePaymentService) apply(payment *models.DuePayment, input DuePaymentInput) error {
	v := &ValidationError{}

	if input.EmployeeID == 0 {
		v.Add("employee_id", "The employee field is required.")
	} else if _, err := s.employeeRepo.FindOwned(payment.UserID, input.EmployeeID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to verify employee: %w", err)
		}
		v.Add("employee_id", "The selected employee is invalid.")
	}

	if input.Amount <= 0 {
		v.Add("amount", "The amount must be greater than 0.")
	}

	status := models.PaymentStatus(input.Status)
	if status == "" {
		status = models.PaymentStatusPending
	}
	if status != models.PaymentStatusPending && status != models.PaymentStatusPaid {
		v.Add("status", "The selected status is invalid.")
	}

	payDate := parseDateField(v, "pay_date", input.PayDate)

	if err := v.Err(); err != nil {
		return err
	}

	payment.EmployeeID = input.EmployeeID
	payment.Employee = nil
	payment.Amount = input.Amount
	payment.Status = status
	payment.PayDate = payDate
	payment.Notes = optionalString(input.Notes)
	return nil
}
