package models

import (
	"time"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// TaskStatuses lists statuses in workflow order.
var TaskStatuses = []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted}

type TaskPriority string

const (
	TaskPriorityUrgent TaskPriority = "urgent"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityNone   TaskPriority = "none"
)

// TaskPriorities lists priorities from most to least pressing.
var TaskPriorities = []TaskPriority{
	TaskPriorityUrgent,
	TaskPriorityHigh,
	TaskPriorityMedium,
	TaskPriorityLow,
	TaskPriorityNone,
}

type Task struct {
	ID          uint64       `gorm:"primarykey" json:"id"`
	UserID      uint64       `gorm:"not null;index" json:"user_id"`
	Title       string       `gorm:"type:varchar(255);not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	Status      TaskStatus   `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Priority    TaskPriority `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`
	DueDate     *time.Time   `gorm:"type:date" json:"due_date"`
	EmployeeID  *uint64      `gorm:"index" json:"employee_id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`

	// Relations
	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

func (t Task) OwnerID() uint64 {
	return t.UserID
}

// IsCompleted reports whether the task is done.
func (t Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}
