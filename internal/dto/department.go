package dto

import (
	"time"

	"github.com/yukikurage/employee-management-api/internal/models"
)

// DepartmentDTO represents a department in API responses
type DepartmentDTO struct {
	ID             uint64    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	EmployeesCount int64     `json:"employees_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToDepartmentDTO converts a Department model to DepartmentDTO
func ToDepartmentDTO(department models.Department, employeesCount int64) DepartmentDTO {
	return DepartmentDTO{
		ID:             department.ID,
		Name:           department.Name,
		Description:    department.Description,
		EmployeesCount: employeesCount,
		CreatedAt:      department.CreatedAt,
		UpdatedAt:      department.UpdatedAt,
	}
}

// DepartmentConverter looks up employee counts by department ID
func DepartmentConverter(counts map[uint64]int64) func(models.Department) DepartmentDTO {
	return func(department models.Department) DepartmentDTO {
		return ToDepartmentDTO(department, counts[department.ID])
	}
}
