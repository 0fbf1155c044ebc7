package models

import "time"

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

var PaymentStatuses = []PaymentStatus{PaymentStatusPending, PaymentStatusPaid}

type DuePayment struct {
	ID         uint64        `gorm:"primarykey" json:"id"`
	UserID     uint64        `gorm:"not null;index" json:"user_id"`
	EmployeeID uint64        `gorm:"not null;index" json:"employee_id"`
	Amount     float64       `gorm:"type:decimal(12,2);not null" json:"amount"`
	Status     PaymentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	PayDate    time.Time     `gorm:"type:date;not null" json:"pay_date"`
	Notes      *string       `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`

	// Relations
	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

func (p DuePayment) OwnerID() uint64 {
	return p.UserID
}

// IsPending reports whether the payment is still outstanding.
func (p DuePayment) IsPending() bool {
	return p.Status == PaymentStatusPending
}
