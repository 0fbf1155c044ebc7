package models

import (
	"time"
)

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Employees   []Employee   `gorm:"foreignKey:UserID" json:"-"`
	Departments []Department `gorm:"foreignKey:UserID" json:"-"`
	Tasks       []Task       `gorm:"foreignKey:UserID" json:"-"`
	Notes       []Note       `gorm:"foreignKey:UserID" json:"-"`
}
