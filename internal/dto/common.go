package dto

import (
	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/services"
	"github.com/yukikurage/employee-management-api/internal/utils"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// EmployeeRefDTO is the minimal employee shown on related records
type EmployeeRefDTO struct {
	ID       uint64 `json:"id"`
	FullName string `json:"full_name"`
}

// ListResponse represents a paginated, searched and sorted list
type ListResponse[T any] struct {
	Items      []T                      `json:"items"`
	Pagination utils.PaginationResponse `json:"pagination"`
	Filter     string                   `json:"filter"`
	Search     string                   `json:"search"`
	Warning    string                   `json:"warning,omitempty"`
	Advisory   string                   `json:"advisory,omitempty"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

func toEmployeeRef(employee *models.Employee) *EmployeeRefDTO {
	if employee == nil || employee.ID == 0 {
		return nil
	}
	return &EmployeeRefDTO{ID: employee.ID, FullName: employee.FullName()}
}

// ToListResponse converts a service list result, mapping each item with convert
func ToListResponse[M any, T any](result services.ListResult[M], convert func(M) T) ListResponse[T] {
	items := make([]T, len(result.Items))
	for i, item := range result.Items {
		items[i] = convert(item)
	}

	return ListResponse[T]{
		Items:      items,
		Pagination: utils.NewPaginationResponse(result.Page, result.PageSize, result.Total),
		Filter:     result.Filter,
		Search:     result.Search,
		Warning:    result.Warning,
		Advisory:   result.Advisory,
	}
}
