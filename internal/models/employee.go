package models

import (
	"strings"
	"time"
)

type Employee struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	UserID       uint64    `gorm:"not null;index" json:"user_id"`
	FirstName    string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName     string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone        string    `gorm:"type:varchar(30)" json:"phone"`
	WorkIn       string    `gorm:"type:varchar(5);not null" json:"work_in"`
	WorkOut      string    `gorm:"type:varchar(5);not null" json:"work_out"`
	JobTitle     string    `gorm:"type:varchar(100);not null" json:"job_title"`
	DepartmentID *uint64   `gorm:"index" json:"department_id"`
	PayAmount    float64   `gorm:"type:decimal(12,2);not null" json:"pay_amount"`
	PayDay       int       `gorm:"not null" json:"pay_day"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Department  *Department  `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Attendances []Attendance `gorm:"foreignKey:EmployeeID" json:"-"`
	DuePayments []DuePayment `gorm:"foreignKey:EmployeeID" json:"-"`
}

// FullName joins first and last name.
func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

func (e Employee) OwnerID() uint64 {
	return e.UserID
}
