package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/query"
	"github.com/yukikurage/employee-management-api/internal/repository"
	"gorm.io/gorm"
)

// EmployeeService handles employee business logic
type EmployeeService struct {
	clocked
	employeeRepo   repository.EmployeeRepository
	departmentRepo repository.DepartmentRepository
	logger         *slog.Logger
	lister         lister[models.Employee]
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(employeeRepo repository.EmployeeRepository, departmentRepo repository.DepartmentRepository, logger *slog.Logger) *EmployeeService {
	return &EmployeeService{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		logger:         loggerOrDefault(logger),
		lister: lister[models.Employee]{
			entity:  "employees",
			owner:   ownedBy("employees.user_id"),
			search:  query.EmployeeSearch,
			filters: query.EmployeeFilters,
			list:    employeeRepo.List,
		},
	}
}

// EmployeeInput is the full set of editable employee fields.
type EmployeeInput struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	WorkIn       string
	WorkOut      string
	JobTitle     string
	DepartmentID *uint64
	PayAmount    float64
	PayDay       int
}

// List returns one page of the owner's employees
func (s *EmployeeService) List(input ListInput) ListResult[models.Employee] {
	return s.lister.run(s.logger, input)
}

// Get returns an employee with its department
func (s *EmployeeService) Get(id uint64) (*models.Employee, error) {
	employee, err := s.employeeRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, "employee", id)
	}
	return employee, nil
}

// Options lists every employee of the owner for select inputs
func (s *EmployeeService) Options(ownerID uint64) ([]models.Employee, error) {
	employees, err := s.employeeRepo.ListAll(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// Create validates and stores a new employee for ownerID
func (s *EmployeeService) Create(ownerID uint64, input EmployeeInput) (*models.Employee, error) {
	employee := &models.Employee{UserID: ownerID}
	if err := s.apply(employee, input); err != nil {
		return nil, err
	}

	if err := s.employeeRepo.Create(employee); err != nil {
		return nil, s.writeError(err, "create")
	}

	return s.Get(employee.ID)
}

// Update replaces every editable field of employee
func (s *EmployeeService) Update(employee *models.Employee, input EmployeeInput) (*models.Employee, error) {
	if err := s.apply(employee, input); err != nil {
		return nil, err
	}

	if err := s.employeeRepo.Update(employee); err != nil {
		return nil, s.writeError(err, "update")
	}

	return s.Get(employee.ID)
}

// Delete removes an employee with its attendance and due payments
func (s *EmployeeService) Delete(id uint64) error {
	if err := s.employeeRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

func (s *EmployeeService) apply(employee *models.Employee, input EmployeeInput) error {
	v := &ValidationError{}

	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.JobTitle = strings.TrimSpace(input.JobTitle)
	input.WorkIn = strings.TrimSpace(input.WorkIn)
	input.WorkOut = strings.TrimSpace(input.WorkOut)

	if input.FirstName == "" {
		v.Add("first_name", "The first name field is required.")
	}
	if input.LastName == "" {
		v.Add("last_name", "The last name field is required.")
	}
	if input.Email == "" {
		v.Add("email", "The email field is required.")
	}
	if input.JobTitle == "" {
		v.Add("job_title", "The job title field is required.")
	}
	checkTimeField(v, "work_in", input.WorkIn)
	checkTimeField(v, "work_out", input.WorkOut)
	if input.PayDay < 1 || input.PayDay > 31 {
		v.Add("pay_day", "The pay day must be between 1 and 31.")
	}
	if input.PayAmount < 0 {
		v.Add("pay_amount", "The pay amount must be at least 0.")
	}

	if input.Email != "" {
		taken, err := s.employeeRepo.EmailTaken(input.Email, employee.ID)
		if err != nil {
			return fmt.Errorf("failed to check employee email: %w", err)
		}
		if taken {
			v.Add("email", "The email has already been taken.")
		}
	}

	if input.DepartmentID != nil {
		if _, err := s.departmentRepo.FindOwned(employee.UserID, *input.DepartmentID); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to verify department: %w", err)
			}
			v.Add("department_id", "The selected department is invalid.")
		}
	}

	if err := v.Err(); err != nil {
		return err
	}

	employee.FirstName = input.FirstName
	employee.LastName = input.LastName
	employee.Email = input.Email
	employee.Phone = strings.TrimSpace(input.Phone)
	employee.WorkIn = input.WorkIn
	employee.WorkOut = input.WorkOut
	employee.JobTitle = input.JobTitle
	employee.DepartmentID = input.DepartmentID
	employee.Department = nil
	employee.PayAmount = input.PayAmount
	employee.PayDay = input.PayDay
	return nil
}

func (s *EmployeeService) writeError(err error, action string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fieldError("email", "The email has already been taken.")
	}
	return fmt.Errorf("failed to %s employee: %w", action, err)
}
