package dto

import (
	"time"

	"github.com/yukikurage/employee-management-api/internal/derive"
	"github.com/yukikurage/employee-management-api/internal/models"
)

// DuePaymentDTO represents a due payment in API responses
type DuePaymentDTO struct {
	ID           uint64               `json:"id"`
	EmployeeID   uint64               `json:"employee_id"`
	Employee     *EmployeeRefDTO      `json:"employee,omitempty"`
	Amount       float64              `json:"amount"`
	Status       models.PaymentStatus `json:"status"`
	PayDate      string               `json:"pay_date"`
	DaysUntilPay int                  `json:"days_until_pay"`
	Urgency      *string              `json:"urgency"`
	Notes        *string              `json:"notes"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// ToDuePaymentDTO converts a DuePayment model. Urgency is set only while the
// payment is pending.
func ToDuePaymentDTO(payment models.DuePayment, today time.Time) DuePaymentDTO {
	days := derive.DaysUntil(payment.PayDate, today)
	dto := DuePaymentDTO{
		ID:           payment.ID,
		EmployeeID:   payment.EmployeeID,
		Employee:     toEmployeeRef(payment.Employee),
		Amount:       payment.Amount,
		Status:       payment.Status,
		PayDate:      derive.FormatDate(&payment.PayDate),
		DaysUntilPay: days,
		Notes:        payment.Notes,
		CreatedAt:    payment.CreatedAt,
		UpdatedAt:    payment.UpdatedAt,
	}

	if payment.IsPending() {
		urgency := derive.Urgency(days)
		dto.Urgency = &urgency
	}

	return dto
}

// DuePaymentConverter binds today for list conversion
func DuePaymentConverter(today time.Time) func(models.DuePayment) DuePaymentDTO {
	return func(payment models.DuePayment) DuePaymentDTO {
		return ToDuePaymentDTO(payment, today)
	}
}
