package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/query"
	"github.com/yukikurage/employee-management-api/internal/repository"
	"gorm.io/gorm"
)

// TaskService handles task business logic
type TaskService struct {
	clocked
	taskRepo     repository.TaskRepository
	employeeRepo repository.EmployeeRepository
	logger       *slog.Logger
	lister       lister[models.Task]
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, employeeRepo repository.EmployeeRepository, logger *slog.Logger) *TaskService {
	return &TaskService{
		taskRepo:     taskRepo,
		employeeRepo: employeeRepo,
		logger:       loggerOrDefault(logger),
		lister: lister[models.Task]{
			entity:  "tasks",
			owner:   ownedBy("tasks.user_id"),
			search:  query.TaskSearch,
			filters: query.TaskFilters,
			list:    taskRepo.List,
		},
	}
}

// TaskInput is the full set of editable task fields.
type TaskInput struct {
	Title       string
	Description string
	Status      string
	Priority    string
	DueDate     string
	EmployeeID  *uint64
}

// List returns one page of the owner's tasks
func (s *TaskService) List(input ListInput) ListResult[models.Task] {
	return s.lister.run(s.logger, input)
}

// Get returns a task with its assigned employee
func (s *TaskService) Get(id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id, "Employee")
	if err != nil {
		return nil, notFound(err, "task", id)
	}
	return task, nil
}

// Create validates and stores a new task for ownerID
func (s *TaskService) Create(ownerID uint64, input TaskInput) (*models.Task, error) {
	task := &models.Task{UserID: ownerID}
	if err := s.apply(task, input); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return s.Get(task.ID)
}

// Update replaces every editable field of task
func (s *TaskService) Update(task *models.Task, input TaskInput) (*models.Task, error) {
	if err := s.apply(task, input); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return s.Get(task.ID)
}

// Delete removes a task
func (s *TaskService) Delete(id uint64) error {
	if err := s.taskRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

func (s *TaskService) apply(task *models.Task, input TaskInput) error {
	v := &ValidationError{}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		v.Add("title", "The title field is required.")
	}

	status := models.TaskStatus(input.Status)
	if !validStatus(status) {
		v.Add("status", "The selected status is invalid.")
	}
	priority := models.TaskPriority(input.Priority)
	if !validPriority(priority) {
		v.Add("priority", "The selected priority is invalid.")
	}
	if validStatus(status) && validPriority(priority) {
		checkStatusPriority(v, status, priority)
	}

	var dueDate *time.Time
	if strings.TrimSpace(input.DueDate) != "" {
		d := parseDateField(v, "due_date", input.DueDate)
		dueDate = &d
	}

	if input.EmployeeID != nil {
		if _, err := s.employeeRepo.FindOwned(task.UserID, *input.EmployeeID); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to verify employee: %w", err)
			}
			v.Add("employee_id", "The selected employee is invalid.")
		}
	}

	if err := v.Err(); err != nil {
		return err
	}

	task.Title = title
	task.Description = strings.TrimSpace(input.Description)
	task.Status = status
	task.Priority = priority
	task.DueDate = dueDate
	task.EmployeeID = input.EmployeeID
	task.Employee = nil
	return nil
}

// checkStatusPriority enforces that completed tasks, and only those, have no priority.
func checkStatusPriority(v *ValidationError, status models.TaskStatus, priority models.TaskPriority) {
	switch {
	case status == models.TaskStatusCompleted && priority != models.TaskPriorityNone:
		v.Add("priority", "Completed tasks must have priority none.")
	case status != models.TaskStatusCompleted && priority == models.TaskPriorityNone:
		v.Add("priority", "Only completed tasks may have priority none.")
	}
}

func validStatus(status models.TaskStatus) bool {
	for _, s := range models.TaskStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func validPriority(priority models.TaskPriority) bool {
	for _, p := range models.TaskPriorities {
		if p == priority {
			return true
		}
	}
	return false
}
