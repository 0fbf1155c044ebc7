package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/employee-management-api/internal/dto"
	apierrors "github.com/yukikurage/employee-management-api/internal/errors"
	"github.com/yukikurage/employee-management-api/internal/middleware"
	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/services"
	"github.com/yukikurage/employee-management-api/internal/utils"
)

type TaskHandler struct {
	service   *services.TaskService
	aiService *services.AIService
}

func NewTaskHandler(service *services.TaskService, aiService *services.AIService) *TaskHandler {
	return &TaskHandler{
		service:   service,
		aiService: aiService,
	}
}

type taskRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description string  `json:"description"`
	Status      string  `json:"status" binding:"required,oneof=pending in_progress completed"`
	Priority    string  `json:"priority" binding:"required,oneof=urgent high medium low none"`
	DueDate     string  `json:"due_date"`
	EmployeeID  *uint64 `json:"employee_id"`
}

func (r taskRequest) input() services.TaskInput {
	return services.TaskInput{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		DueDate:     r.DueDate,
		EmployeeID:  r.EmployeeID,
	}
}

// ListTasks returns the current user's tasks
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	result := h.service.List(listInput(userID, utils.GetListParams(c)))
	c.JSON(http.StatusOK, dto.ToListResponse(result, dto.TaskConverter(h.service.Today())))
}

// GetTask returns the task loaded by RequireOwnership
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, ok := middleware.GetResource[*models.Task](c)
	if !ok {
		apierrors.InternalError(c, "Task not found in context")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task, h.service.Today()))
}

// CreateTask creates a new task
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req taskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.service.Create(userID, req.input())
	if err != nil {
		respondServiceError(c, err, req)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task, h.service.Today()))
}

// UpdateTask replaces a task's fields
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	task, ok := middleware.GetResource[*models.Task](c)
	if !ok {
		apierrors.InternalError(c, "Task not found in context")
		return
	}

	var req taskRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.service.Update(task, req.input())
	if err != nil {
		respondServiceError(c, err, req)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*updated, h.service.Today()))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	task, ok := middleware.GetResource[*models.Task](c)
	if !ok {
		apierrors.InternalError(c, "Task not found in context")
		return
	}

	if err := h.service.Delete(task.ID); err != nil {
		respondServiceError(c, err, nil)
		return
	}

	deleted(c, "Task")
}

// GenerateTasks suggests tasks from free text. Suggestions are not saved.
func (h *TaskHandler) GenerateTasks(c *gin.Context) {
	type GenerateTasksRequest struct {
		Text string `json:"text" binding:"required,max=5000"`
	}

	var req GenerateTasksRequest
	if !bindJSON(c, &req) {
		return
	}

	// Check if AI service is available
	if h.aiService == nil || !h.aiService.Enabled() {
		apierrors.ServiceUnavailable(c, "Task suggestions are not configured. Please set OPENAI_API_KEY.")
		return
	}

	generatedTasks, err := h.aiService.GenerateTasksFromText(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, services.ErrAIUnavailable) {
			apierrors.ServiceUnavailable(c, "")
			return
		}
		slog.Error("failed to generate tasks", "error", err)
		apierrors.RespondWithError(c, http.StatusBadGateway, apierrors.NewAPIError(apierrors.ErrCodeServiceUnavailable, "Failed to generate tasks"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": generatedTasks,
	})
}
