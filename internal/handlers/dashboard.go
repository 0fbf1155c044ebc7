package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/employee-management-api/internal/dto"
	apierrors "github.com/yukikurage/employee-management-api/internal/errors"
	"github.com/yukikurage/employee-management-api/internal/middleware"
	"github.com/yukikurage/employee-management-api/internal/services"
)

type DashboardHandler struct {
	dashboard   *services.DashboardService
	employees   *services.EmployeeService
	departments *services.DepartmentService
}

func NewDashboardHandler(dashboard *services.DashboardService, employees *services.EmployeeService, departments *services.DepartmentService) *DashboardHandler {
	return &DashboardHandler{
		dashboard:   dashboard,
		employees:   employees,
		departments: departments,
	}
}

// GetDashboard returns counts, critical tasks and upcoming payments.
// The critical query parameter selects the critical task ranking.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	dashboard := h.dashboard.Build(userID, c.Query("critical"))
	c.JSON(http.StatusOK, dto.ToDashboardDTO(dashboard, h.dashboard.Today()))
}

// GetFormOptions returns enumerations and the user's records for select inputs
func (h *DashboardHandler) GetFormOptions(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	departments, err := h.departments.Options(userID)
	if err != nil {
		slog.Error("failed to load department options", "error", err)
		apierrors.InternalError(c, "")
		return
	}
	employees, err := h.employees.Options(userID)
	if err != nil {
		slog.Error("failed to load employee options", "error", err)
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToFormOptionsDTO(departments, employees))
}
