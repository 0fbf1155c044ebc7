package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/employee-management-api/internal/dto"
	apierrors "github.com/yukikurage/employee-management-api/internal/errors"
	"github.com/yukikurage/employee-management-api/internal/middleware"
	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/services"
	"github.com/yukikurage/employee-management-api/internal/utils"
)

type EmployeeHandler struct {
	service *services.EmployeeService
}

func NewEmployeeHandler(service *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

type employeeRequest struct {
	FirstName    string  `json:"first_name" binding:"required,max=100"`
	LastName     string  `json:"last_name" binding:"required,max=100"`
	Email        string  `json:"email" binding:"required,email,max=255"`
	Phone        string  `json:"phone" binding:"max=30"`
	WorkIn       string  `json:"work_in" binding:"required"`
	WorkOut      string  `json:"work_out" binding:"required"`
	JobTitle     string  `json:"job_title" binding:"required,max=100"`
	DepartmentID *uint64 `json:"department_id"`
	PayAmount    float64 `json:"pay_amount" binding:"gte=0"`
	PayDay       int     `json:"pay_day" binding:"required,min=1,max=31"`
}

func (r employeeRequest) input() services.EmployeeInput {
	return services.EmployeeInput{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		Phone:        r.Phone,
		WorkIn:       r.WorkIn,
		WorkOut:      r.WorkOut,
		JobTitle:     r.JobTitle,
		DepartmentID: r.DepartmentID,
		PayAmount:    r.PayAmount,
		PayDay:       r.PayDay,
	}
}

// ListEmployees returns the current user's employees
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	params := utils.GetListParams(c)
	result := h.service.List(listInput(userID, params))
	c.JSON(http.StatusOK, dto.ToListResponse(result, dto.EmployeeConverter(h.service.Today())))
}

// GetEmployee returns the employee loaded by RequireOwnership
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	employee, ok := middleware.GetResource[*models.Employee](c)
	if !ok {
		apierrors.InternalError(c, "Employee not found in context")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeDTO(*employee, h.service.Today()))
}

// CreateEmployee creates an employee for the current user
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req employeeRequest
	if !bindJSON(c, &req) {
		return
	}

	employee, err := h.service.Create(userID, req.input())
	if err != nil {
		respondServiceError(c, err, req)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEmployeeDTO(*employee, h.service.Today()))
}

// UpdateEmployee replaces an employee's fields
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	employee, ok := middleware.GetResource[*models.Employee](c)
	if !ok {
		apierrors.InternalError(c, "Employee not found in context")
		return
	}

	var req employeeRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.service.Update(employee, req.input())
	if err != nil {
		respondServiceError(c, err, req)
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeDTO(*updated, h.service.Today()))
}

// DeleteEmployee deletes an employee with its attendance and due payments
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	employee, ok := middleware.GetResource[*models.Employee](c)
	if !ok {
		apierrors.InternalError(c, "Employee not found in context")
		return
	}

	if err := h.service.Delete(employee.ID); err != nil {
		respondServiceError(c, err, nil)
		return
	}

	deleted(c, "Employee")
}

func listInput(userID uint64, params utils.ListParams) services.ListInput {
	return services.ListInput{
		OwnerID:  userID,
		Search:   params.Search,
		Filter:   params.Filter,
		Page:     params.Page,
		PageSize: params.Limit,
	}
}
