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

type AttendanceHandler struct {
	service *services.AttendanceService
}

func NewAttendanceHandler(service *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

type attendanceRequest struct {
	EmployeeID uint64 `json:"employee_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	WorkIn     string `json:"work_in" binding:"required"`
	WorkOut    string `json:"work_out"`
	Note       string `json:"note" binding:"max=1000"`
}

func (r attendanceRequest) input() services.AttendanceInput {
	return services.AttendanceInput{
		EmployeeID: r.EmployeeID,
		Date:       r.Date,
		WorkIn:     r.WorkIn,
		WorkOut:    r.WorkOut,
		Note:       r.Note,
	}
}

// ListAttendances returns attendance of the current user's employees
func (h *AttendanceHandler) ListAttendances(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	result := h.service.List(listInput(userID, utils.GetListParams(c)))
	c.JSON(http.StatusOK, dto.ToListResponse(result, dto.ToAttendanceDTO))
}

func (h *AttendanceHandler) GetAttendance(c *gin.Context) {
	attendance, ok := middleware.GetResource[*models.Attendance](c)
	if !ok {
		apierrors.InternalError(c, "Attendance not found in context")
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendanceDTO(*attendance))
}

func (h *AttendanceHandler) CreateAttendance(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req attendanceRequest
	if !bindJSON(c, &req) {
		return
	}

	attendance, err := h.service.Create(userID, req.input())
	if err != nil {
		respondServiceError(c, err, req)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAttendanceDTO(*attendance))
}

func (h *AttendanceHandler) UpdateAttendance(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	attendance, ok := middleware.GetResource[*models.Attendance](c)
	if !ok {
		apierrors.InternalError(c, "Attendance not found in context")
		return
	}

	var req attendanceRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.service.Update(userID, attendance, req.input())
	if err != nil {
		respondServiceError(c, err, req)
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendanceDTO(*updated))
}

func (h *AttendanceHandler) DeleteAttendance(c *gin.Context) {
	attendance, ok := middleware.GetResource[*models.Attendance](c)
	if !ok {
		apierrors.InternalError(c, "Attendance not found in context")
		return
	}

	if err := h.service.Delete(attendance.ID); err != nil {
		respondServiceError(c, err, nil)
		return
	}

	deleted(c, "Attendance")
}
