package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/services"
)

var today = time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)

func date(s string) *time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return &d
}

func TestToEmployeeDTO_DerivesPay(t *testing.T) {
	tests := []struct {
		payDay   int
		nextPay  string
		daysLeft int
	}{
		{10, "2026-02-10", 0},
		{11, "2026-02-11", 1},
		{5, "2026-03-05", 23},
	}

	for _, tt := range tests {
		dto := ToEmployeeDTO(models.Employee{FirstName: "Ada", LastName: "Lovelace", PayAmount: 1234.56, PayDay: tt.payDay}, today)
		assert.Equal(t, tt.nextPay, dto.NextPayDate)
		assert.Equal(t, tt.daysLeft, dto.DaysUntilPay)
		assert.Equal(t, "Ada Lovelace", dto.FullName)
		assert.InDelta(t, 14814.72, dto.YearlySalary, 0.001)
	}
}

func TestToTaskDTO_UrgencyOnlyForOpenTasks(t *testing.T) {
	open := ToTaskDTO(models.Task{Status: models.TaskStatusPending, Priority: models.TaskPriorityHigh, DueDate: date("2026-02-08")}, today)
	require.NotNil(t, open.Urgency)
	assert.Equal(t, "overdue", *open.Urgency)
	assert.Equal(t, -2, *open.DaysUntilDue)
	assert.Equal(t, 2, open.PriorityRank)
	assert.Equal(t, "2026-02-08", *open.DueDate)

	done := ToTaskDTO(models.Task{Status: models.TaskStatusCompleted, Priority: models.TaskPriorityNone, DueDate: date("2026-02-08")}, today)
	assert.Nil(t, done.Urgency)
	assert.Nil(t, done.DaysUntilDue)
	assert.Equal(t, 5, done.PriorityRank)

	undated := ToTaskDTO(models.Task{Status: models.TaskStatusPending, Priority: models.TaskPriorityLow}, today)
	assert.Nil(t, undated.DueDate)
	assert.Nil(t, undated.Urgency)
}

func TestToDuePaymentDTO_Urgency(t *testing.T) {
	pending := ToDuePaymentDTO(models.DuePayment{Status: models.PaymentStatusPending, PayDate: *date("2026-02-13")}, today)
	require.NotNil(t, pending.Urgency)
	assert.Equal(t, "soon", *pending.Urgency)
	assert.Equal(t, 3, pending.DaysUntilPay)

	paid := ToDuePaymentDTO(models.DuePayment{Status: models.PaymentStatusPaid, PayDate: *date("2026-02-13")}, today)
	assert.Nil(t, paid.Urgency)
}

func TestToAttendanceDTO_WorkedMinutes(t *testing.T) {
	out := "17:30"
	dto := ToAttendanceDTO(models.Attendance{Date: *date("2026-02-10"), WorkIn: "09:00", WorkOut: &out})
	require.NotNil(t, dto.WorkedMinutes)
	assert.Equal(t, 510, *dto.WorkedMinutes)
	assert.Equal(t, "2026-02-10", dto.Date)

	open := ToAttendanceDTO(models.Attendance{Date: *date("2026-02-10"), WorkIn: "09:00"})
	assert.Nil(t, open.WorkedMinutes)
}

func TestToListResponse(t *testing.T) {
	result := services.ListResult[models.Note]{
		Items:    []models.Note{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}},
		Total:    17,
		Page:     2,
		PageSize: 15,
		Filter:   "latest",
		Warning:  "w",
	}

	resp := ToListResponse(result, ToNoteDTO)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "b", resp.Items[1].Title)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
	assert.Equal(t, "latest", resp.Filter)
	assert.Equal(t, "w", resp.Warning)
}

func TestToFormOptionsDTO(t *testing.T) {
	options := ToFormOptionsDTO(
		[]models.Department{{ID: 3, Name: "Sales"}},
		[]models.Employee{{ID: 4, FirstName: "Ada", LastName: "Lovelace"}},
	)
	assert.Equal(t, OptionDTO{Value: "in_progress", Label: "In progress"}, options.TaskStatuses[1])
	assert.Len(t, options.TaskPriorities, 5)
	assert.Equal(t, "Ada Lovelace", options.Employees[0].FullName)
	assert.Contains(t, options.Filters["critical_tasks"], "priority_only")
}
