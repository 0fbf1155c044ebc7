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

// DepartmentService handles department business logic
type DepartmentService struct {
	departmentRepo repository.DepartmentRepository
	logger         *slog.Logger
	lister         lister[models.Department]
}

// NewDepartmentService creates a new DepartmentService
func NewDepartmentService(departmentRepo repository.DepartmentRepository, logger *slog.Logger) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		logger:         loggerOrDefault(logger),
		lister: lister[models.Department]{
			entity:           "departments",
			owner:            ownedBy("departments.user_id"),
			search:           query.DepartmentSearch,
			filters:          query.DepartmentFilters,
			list:             departmentRepo.List,
			retryWithDefault: true,
		},
	}
}

// DepartmentInput is the full set of editable department fields.
type DepartmentInput struct {
	Name        string
	Description string
}

// List returns one page of the owner's departments. A failing filter is
// retried once with the default filter.
func (s *DepartmentService) List(input ListInput) ListResult[models.Department] {
	return s.lister.run(s.logger, input)
}

// EmployeeCounts returns employee counts per department. A failure is logged
// and yields no counts.
func (s *DepartmentService) EmployeeCounts(departments []models.Department) map[uint64]int64 {
	ids := make([]uint64, len(departments))
	for i, d := range departments {
		ids[i] = d.ID
	}

	counts, err := s.departmentRepo.EmployeeCounts(ids)
	if err != nil {
		s.logger.Error("failed to count department employees", "error", err)
		return map[uint64]int64{}
	}
	return counts
}

// Get returns a department
func (s *DepartmentService) Get(id uint64) (*models.Department, error) {
	department, err := s.departmentRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, "department", id)
	}
	return department, nil
}

// Options lists every department of the owner for select inputs
func (s *DepartmentService) Options(ownerID uint64) ([]models.Department, error) {
	departments, err := s.departmentRepo.ListAll(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return departments, nil
}

// Create validates and stores a new department for ownerID
func (s *DepartmentService) Create(ownerID uint64, input DepartmentInput) (*models.Department, error) {
	department := &models.Department{UserID: ownerID}
	if err := s.apply(department, input); err != nil {
		return nil, err
	}

	if err := s.departmentRepo.Create(department); err != nil {
		return nil, s.writeError(err, "create")
	}
	return department, nil
}

// Update replaces every editable field of department
func (s *DepartmentService) Update(department *models.Department, input DepartmentInput) (*models.Department, error) {
	if err := s.apply(department, input); err != nil {
		return nil, err
	}

	if err := s.departmentRepo.Update(department); err != nil {
		return nil, s.writeError(err, "update")
	}
	return department, nil
}

// Delete removes a department; its employees keep existing without one
func (s *DepartmentService) Delete(id uint64) error {
	if err := s.departmentRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	return nil
}

func (s *DepartmentService) apply(department *models.Department, input DepartmentInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return fieldError("name", "The name field is required.")
	}

	taken, err := s.departmentRepo.NameTaken(department.UserID, name, department.ID)
	if err != nil {
		return fmt.Errorf("failed to check department name: %w", err)
	}
	if taken {
		return fieldError("name", "The name has already been taken.")
	}

	department.Name = name
	department.Description = strings.TrimSpace(input.Description)
	return nil
}

func (s *DepartmentService) writeError(err error, action string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fieldError("name", "The name has already been taken.")
	}
	return fmt.Errorf("failed to %s department: %w", action, err)
}
