package dto

import (
	"time"

	"github.com/yukikurage/employee-management-api/internal/derive"
	"github.com/yukikurage/employee-management-api/internal/models"
)

// DepartmentRefDTO is the minimal department shown on an employee
type DepartmentRefDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// EmployeeDTO represents an employee with its derived pay attributes
type EmployeeDTO struct {
	ID           uint64            `json:"id"`
	FirstName    string            `json:"first_name"`
	LastName     string            `json:"last_name"`
	FullName     string            `json:"full_name"`
	Email        string            `json:"email"`
	Phone        string            `json:"phone"`
	WorkIn       string            `json:"work_in"`
	WorkOut      string            `json:"work_out"`
	JobTitle     string            `json:"job_title"`
	DepartmentID *uint64           `json:"department_id"`
	Department   *DepartmentRefDTO `json:"department,omitempty"`
	PayAmount    float64           `json:"pay_amount"`
	PayDay       int               `json:"pay_day"`
	YearlySalary float64           `json:"yearly_salary"`
	NextPayDate  string            `json:"next_pay_date"`
	DaysUntilPay int               `json:"days_until_pay"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// ToEmployeeDTO converts an Employee model, deriving pay dates from today
func ToEmployeeDTO(employee models.Employee, today time.Time) EmployeeDTO {
	nextPay := derive.NextPayDate(employee.PayDay, today)
	dto := EmployeeDTO{
		ID:           employee.ID,
		FirstName:    employee.FirstName,
		LastName:     employee.LastName,
		FullName:     employee.FullName(),
		Email:        employee.Email,
		Phone:        employee.Phone,
		WorkIn:       employee.WorkIn,
		WorkOut:      employee.WorkOut,
		JobTitle:     employee.JobTitle,
		DepartmentID: employee.DepartmentID,
		PayAmount:    employee.PayAmount,
		PayDay:       employee.PayDay,
		YearlySalary: derive.YearlySalary(employee.PayAmount),
		NextPayDate:  derive.FormatDate(&nextPay),
		DaysUntilPay: derive.DaysUntil(nextPay, today),
		CreatedAt:    employee.CreatedAt,
		UpdatedAt:    employee.UpdatedAt,
	}

	if employee.Department != nil && employee.Department.ID != 0 {
		dto.Department = &DepartmentRefDTO{ID: employee.Department.ID, Name: employee.Department.Name}
	}

	return dto
}

// EmployeeConverter binds today for list conversion
func EmployeeConverter(today time.Time) func(models.Employee) EmployeeDTO {
	return func(employee models.Employee) EmployeeDTO {
		return ToEmployeeDTO(employee, today)
	}
}
