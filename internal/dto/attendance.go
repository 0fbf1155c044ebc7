package dto

import (
	"time"

	"github.com/yukikurage/employee-management-api/internal/derive"
	"github.com/yukikurage/employee-management-api/internal/models"
)

// AttendanceDTO represents an attendance record in API responses
type AttendanceDTO struct {
	ID            uint64          `json:"id"`
	EmployeeID    uint64          `json:"employee_id"`
	Employee      *EmployeeRefDTO `json:"employee,omitempty"`
	Date          string          `json:"date"`
	WorkIn        string          `json:"work_in"`
	WorkOut       *string         `json:"work_out"`
	WorkedMinutes *int            `json:"worked_minutes"`
	Note          *string         `json:"note"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToAttendanceDTO converts an Attendance model to AttendanceDTO
func ToAttendanceDTO(attendance models.Attendance) AttendanceDTO {
	dto := AttendanceDTO{
		ID:         attendance.ID,
		EmployeeID: attendance.EmployeeID,
		Employee:   toEmployeeRef(attendance.Employee),
		Date:       derive.FormatDate(&attendance.Date),
		WorkIn:     attendance.WorkIn,
		WorkOut:    attendance.WorkOut,
		Note:       attendance.Note,
		CreatedAt:  attendance.CreatedAt,
		UpdatedAt:  attendance.UpdatedAt,
	}

	if attendance.WorkOut != nil {
		if minutes, ok := derive.WorkedMinutes(attendance.WorkIn, *attendance.WorkOut); ok {
			dto.WorkedMinutes = &minutes
		}
	}

	return dto
}
