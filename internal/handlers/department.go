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

type DepartmentHandler struct {
	service *services.DepartmentService
}

func NewDepartmentHandler(service *services.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{service: service}
}

type departmentRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=1000"`
}

func (r departmentRequest) input() services.DepartmentInput {
	return services.DepartmentInput{Name: r.Name, Description: r.Description}
}

// ListDepartments returns the current user's departments with employee counts
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	result := h.service.List(listInput(userID, utils.GetListParams(c)))
	counts := h.service.EmployeeCounts(result.Items)
	c.JSON(http.StatusOK, dto.ToListResponse(result, dto.DepartmentConverter(counts)))
}

func (h *DepartmentHandler) GetDepartment(c *gin.Context) {
	department, ok := middleware.GetResource[*models.Department](c)
	if !ok {
		apierrors.InternalError(c, "Department not found in context")
		return
	}

	counts := h.service.EmployeeCounts([]models.Department{*department})
	c.JSON(http.StatusOK, dto.ToDepartmentDTO(*department, counts[department.ID]))
}

func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req departmentRequest
	if !bindJSON(c, &req) {
		return
	}

	department, err := h.service.Create(userID, req.input())
	if err != nil {
		respondServiceError(c, err, req)
		return
	}

	c.JSON(http.StatusCreated, dto.ToDepartmentDTO(*department, 0))
}

func (h *DepartmentHandler) UpdateDepartment(c *gin.Context) {
	department, ok := middleware.GetResource[*models.Department](c)
	if !ok {
		apierrors.InternalError(c, "Department not found in context")
		return
	}

	var req departmentRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.service.Update(department, req.input())
	if err != nil {
		respondServiceError(c, err, req)
		return
	}

	counts := h.service.EmployeeCounts([]models.Department{*updated})
	c.JSON(http.StatusOK, dto.ToDepartmentDTO(*updated, counts[updated.ID]))
}

// DeleteDepartment deletes a department; its employees are kept unassigned
func (h *DepartmentHandler) DeleteDepartment(c *gin.Context) {
	department, ok := middleware.GetResource[*models.Department](c)
	if !ok {
		apierrors.InternalError(c, "Department not found in context")
		return
	}

	if err := h.service.Delete(department.ID); err != nil {
		respondServiceError(c, err, nil)
		return
	}

	deleted(c, "Department")
}
