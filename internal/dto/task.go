package dto

import (
	"time"

	"github.com/yukikurage/employee-management-api/internal/derive"
	"github.com/yukikurage/employee-management-api/internal/models"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID           uint64              `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Status       models.TaskStatus   `json:"status"`
	Priority     models.TaskPriority `json:"priority"`
	PriorityRank int                 `json:"priority_rank"`
	DueDate      *string             `json:"due_date"`
	DaysUntilDue *int                `json:"days_until_due"`
	Urgency      *string             `json:"urgency"`
	EmployeeID   *uint64             `json:"employee_id"`
	Employee     *EmployeeRefDTO     `json:"employee,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// ToTaskDTO converts a Task model to TaskDTO. Days until due and urgency
// are set only for open tasks with a due date.
func ToTaskDTO(task models.Task, today time.Time) TaskDTO {
	dto := TaskDTO{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		Status:       task.Status,
		Priority:     task.Priority,
		PriorityRank: derive.PriorityRank(string(task.Priority)),
		EmployeeID:   task.EmployeeID,
		Employee:     toEmployeeRef(task.Employee),
		CreatedAt:    task.CreatedAt,
		UpdatedAt:    task.UpdatedAt,
	}

	if task.DueDate != nil {
		due := derive.FormatDate(task.DueDate)
		dto.DueDate = &due
		if !task.IsCompleted() {
			days := derive.DaysUntil(*task.DueDate, today)
			urgency := derive.Urgency(days)
			dto.DaysUntilDue = &days
			dto.Urgency = &urgency
		}
	}

	return dto
}

// TaskConverter binds today for list conversion
func TaskConverter(today time.Time) func(models.Task) TaskDTO {
	return func(task models.Task) TaskDTO {
		return ToTaskDTO(task, today)
	}
}
