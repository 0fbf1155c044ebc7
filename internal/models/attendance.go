package models

import "time"

// Attendance is owned through its employee; there is no user_id column.
type Attendance struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	EmployeeID uint64    `gorm:"not null;uniqueIndex:idx_attendances_employee_date" json:"employee_id"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:idx_attendances_employee_date" json:"date"`
	WorkIn     string    `gorm:"type:varchar(5);not null" json:"work_in"`
	WorkOut    *string   `gorm:"type:varchar(5)" json:"work_out"`
	Note       *string   `gorm:"type:text" json:"note"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

// OwnerID resolves the owner through the preloaded employee. An attendance
// loaded without its employee has no owner and is never accessible.
func (a Attendance) OwnerID() uint64 {
	if a.Employee == nil || a.Employee.ID != a.EmployeeID {
		return 0
	}
	return a.Employee.UserID
}
