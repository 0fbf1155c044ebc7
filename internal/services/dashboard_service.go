package services

import (
	"log/slog"

	"github.com/yukikurage/employee-management-api/internal/constants"
	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/query"
	"github.com/yukikurage/employee-management-api/internal/repository"
)

// DashboardAdvisory is shown when any part of the dashboard failed to load.
const DashboardAdvisory = "Some dashboard data couldn't be loaded right now. Please try again later."

// DashboardService assembles the per-owner overview
type DashboardService struct {
	clocked
	employeeRepo   repository.EmployeeRepository
	departmentRepo repository.DepartmentRepository
	taskRepo       repository.TaskRepository
	noteRepo       repository.NoteRepository
	attendanceRepo repository.AttendanceRepository
	paymentRepo    repository.DuePaymentRepository
	logger         *slog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	employeeRepo repository.EmployeeRepository,
	departmentRepo repository.DepartmentRepository,
	taskRepo repository.TaskRepository,
	noteRepo repository.NoteRepository,
	attendanceRepo repository.AttendanceRepository,
	paymentRepo repository.DuePaymentRepository,
	logger *slog.Logger,
) *DashboardService {
	return &DashboardService{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		taskRepo:       taskRepo,
		noteRepo:       noteRepo,
		attendanceRepo: attendanceRepo,
		paymentRepo:    paymentRepo,
		logger:         loggerOrDefault(logger),
	}
}

// DashboardCounts holds the headline numbers.
type DashboardCounts struct {
	Employees        int64
	Departments      int64
	OpenTasks        int64
	Notes            int64
	PendingPayments  int64
	AttendancesToday int64
	MonthlyPayroll   float64
}

// Dashboard is the overview of one owner's data.
type Dashboard struct {
	Counts           DashboardCounts
	CriticalTasks    []models.Task
	CriticalFilter   string
	UpcomingPayments []models.DuePayment
	Warning          string
	Advisory         string
}

// Build loads the dashboard. Each section fails independently: a failed
// section is logged, left empty, and reported through the advisory.
func (s *DashboardService) Build(ownerID uint64, criticalFilter string) *Dashboard {
	today := s.Today()
	resolution := query.CriticalTaskFilters.Resolve(criticalFilter)
	d := &Dashboard{
		CriticalTasks:    []models.Task{},
		CriticalFilter:   resolution.Key,
		UpcomingPayments: []models.DuePayment{},
		Warning:          resolution.Warning,
	}

	failed := false
	check := func(section string, err error) {
		if err != nil {
			failed = true
			s.logger.Error("failed to load dashboard section", "section", section, "owner_id", ownerID, "error", err)
		}
	}

	var err error
	d.Counts.Employees, err = s.employeeRepo.Count(ownerID)
	check("employees", err)
	d.Counts.Departments, err = s.departmentRepo.Count(ownerID)
	check("departments", err)
	d.Counts.OpenTasks, err = s.taskRepo.CountOpen(ownerID)
	check("open_tasks", err)
	d.Counts.Notes, err = s.noteRepo.Count(ownerID)
	check("notes", err)
	d.Counts.PendingPayments, err = s.paymentRepo.CountPending(ownerID)
	check("pending_payments", err)
	d.Counts.AttendancesToday, err = s.attendanceRepo.CountOnDate(ownerID, today)
	check("attendances_today", err)
	d.Counts.MonthlyPayroll, err = s.employeeRepo.MonthlyPayroll(ownerID)
	check("monthly_payroll", err)

	if tasks, err := s.taskRepo.ListOpen(ownerID, resolution.Order, constants.DashboardCriticalTasks); err == nil {
		d.CriticalTasks = tasks
	} else {
		check("critical_tasks", err)
	}

	if payments, err := s.paymentRepo.ListPending(ownerID, constants.DashboardUpcomingPayments); err == nil {
		d.UpcomingPayments = payments
	} else {
		check("upcoming_payments", err)
	}

	if failed {
		d.Advisory = DashboardAdvisory
	}
	return d
}
