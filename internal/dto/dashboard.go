package dto

import (
	"strings"
	"time"

	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/query"
	"github.com/yukikurage/employee-management-api/internal/services"
)

// DashboardCountsDTO holds the headline numbers
type DashboardCountsDTO struct {
	Employees        int64   `json:"employees"`
	Departments      int64   `json:"departments"`
	OpenTasks        int64   `json:"open_tasks"`
	Notes            int64   `json:"notes"`
	PendingPayments  int64   `json:"pending_payments"`
	AttendancesToday int64   `json:"attendances_today"`
	MonthlyPayroll   float64 `json:"monthly_payroll"`
}

// DashboardDTO represents the dashboard in API responses
type DashboardDTO struct {
	Today            string             `json:"today"`
	Counts           DashboardCountsDTO `json:"counts"`
	CriticalFilter   string             `json:"critical_filter"`
	CriticalFilters  []string           `json:"critical_filters"`
	CriticalTasks    []TaskDTO          `json:"critical_tasks"`
	UpcomingPayments []DuePaymentDTO    `json:"upcoming_payments"`
	Warning          string             `json:"warning,omitempty"`
	Advisory         string             `json:"advisory,omitempty"`
}

// ToDashboardDTO converts a built dashboard
func ToDashboardDTO(d *services.Dashboard, today time.Time) DashboardDTO {
	tasks := make([]TaskDTO, len(d.CriticalTasks))
	for i, task := range d.CriticalTasks {
		tasks[i] = ToTaskDTO(task, today)
	}
	payments := make([]DuePaymentDTO, len(d.UpcomingPayments))
	for i, payment := range d.UpcomingPayments {
		payments[i] = ToDuePaymentDTO(payment, today)
	}

	return DashboardDTO{
		Today: today.Format("2006-01-02"),
		Counts: DashboardCountsDTO{
			Employees:        d.Counts.Employees,
			Departments:      d.Counts.Departments,
			OpenTasks:        d.Counts.OpenTasks,
			Notes:            d.Counts.Notes,
			PendingPayments:  d.Counts.PendingPayments,
			AttendancesToday: d.Counts.AttendancesToday,
			MonthlyPayroll:   d.Counts.MonthlyPayroll,
		},
		CriticalFilter:   d.CriticalFilter,
		CriticalFilters:  query.CriticalTaskFilters.Keys(),
		CriticalTasks:    tasks,
		UpcomingPayments: payments,
		Warning:          d.Warning,
		Advisory:         d.Advisory,
	}
}

// OptionDTO is one choice of a select input
type OptionDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FormOptionsDTO lists enumerations and the principal's records for forms
type FormOptionsDTO struct {
	TaskStatuses    []OptionDTO         `json:"task_statuses"`
	TaskPriorities  []OptionDTO         `json:"task_priorities"`
	PaymentStatuses []OptionDTO         `json:"payment_statuses"`
	Departments     []DepartmentRefDTO  `json:"departments"`
	Employees       []EmployeeRefDTO    `json:"employees"`
	Filters         map[string][]string `json:"filters"`
}

// ToFormOptionsDTO builds form options from the principal's records
func ToFormOptionsDTO(departments []models.Department, employees []models.Employee) FormOptionsDTO {
	options := FormOptionsDTO{
		TaskStatuses:    make([]OptionDTO, len(models.TaskStatuses)),
		TaskPriorities:  make([]OptionDTO, len(models.TaskPriorities)),
		PaymentStatuses: make([]OptionDTO, len(models.PaymentStatuses)),
		Departments:     make([]DepartmentRefDTO, len(departments)),
		Employees:       make([]EmployeeRefDTO, len(employees)),
		Filters: map[string][]string{
			"employees":      query.EmployeeFilters.Keys(),
			"departments":    query.DepartmentFilters.Keys(),
			"tasks":          query.TaskFilters.Keys(),
			"critical_tasks": query.CriticalTaskFilters.Keys(),
			"notes":          query.NoteFilters.Keys(),
			"attendances":    query.AttendanceFilters.Keys(),
			"due_payments":   query.DuePaymentFilters.Keys(),
		},
	}

	for i, s := range models.TaskStatuses {
		options.TaskStatuses[i] = option(string(s))
	}
	for i, p := range models.TaskPriorities {
		options.TaskPriorities[i] = option(string(p))
	}
	for i, s := range models.PaymentStatuses {
		options.PaymentStatuses[i] = option(string(s))
	}
	for i, d := range departments {
		options.Departments[i] = DepartmentRefDTO{ID: d.ID, Name: d.Name}
	}
	for i, e := range employees {
		options.Employees[i] = EmployeeRefDTO{ID: e.ID, FullName: e.FullName()}
	}

	return options
}

func option(value string) OptionDTO {
	label := strings.ReplaceAll(value, "_", " ")
	if label != "" {
		label = strings.ToUpper(label[:1]) + label[1:]
	}
	return OptionDTO{Value: value, Label: label}
}
