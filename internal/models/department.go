package models

import "time"

type Department struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	UserID      uint64    `gorm:"not null;uniqueIndex:idx_departments_user_name" json:"user_id"`
	Name        string    `gorm:"type:varchar(150);not null;uniqueIndex:idx_departments_user_name" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Employees []Employee `gorm:"foreignKey:DepartmentID" json:"-"`
}

func (d Department) OwnerID() uint64 {
	return d.UserID
}
