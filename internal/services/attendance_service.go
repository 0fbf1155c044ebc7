package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/yukikurage/employee-management-api/internal/derive"
	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/query"
	"github.com/yukikurage/employee-management-api/internal/repository"
	"gorm.io/gorm"
)

// AttendanceService handles attendance business logic
type AttendanceService struct {
	attendanceRepo repository.AttendanceRepository
	employeeRepo   repository.EmployeeRepository
	logger         *slog.Logger
	lister         lister[models.Attendance]
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(attendanceRepo repository.AttendanceRepository, employeeRepo repository.EmployeeRepository, logger *slog.Logger) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		logger:         loggerOrDefault(logger),
		lister: lister[models.Attendance]{
			entity:  "attendances",
			owner:   ownedThroughEmployee("attendances.employee_id"),
			search:  query.AttendanceSearch,
			filters: query.AttendanceFilters,
			list:    attendanceRepo.List,
		},
	}
}

// AttendanceInput is the full set of editable attendance fields.
type AttendanceInput struct {
	EmployeeID uint64
	Date       string
	WorkIn     string
	WorkOut    string
	Note       string
}

func (s *AttendanceService) List(input ListInput) ListResult[models.Attendance] {
	return s.lister.run(s.logger, input)
}

// Get returns an attendance with the employee that owns it
func (s *AttendanceService) Get(id uint64) (*models.Attendance, error) {
	attendance, err := s.attendanceRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, "attendance", id)
	}
	return attendance, nil
}

// Create records attendance for one of ownerID's employees
func (s *AttendanceService) Create(ownerID uint64, input AttendanceInput) (*models.Attendance, error) {
	attendance := &models.Attendance{}
	if err := s.apply(ownerID, attendance, input); err != nil {
		return nil, err
	}
	if err := s.attendanceRepo.Create(attendance); err != nil {
		return nil, s.writeError(err, "create")
	}
	return s.Get(attendance.ID)
}

// Update replaces every editable field of attendance
func (s *AttendanceService) Update(ownerID uint64, attendance *models.Attendance, input AttendanceInput) (*models.Attendance, error) {
	if err := s.apply(ownerID, attendance, input); err != nil {
		return nil, err
	}
	if err := s.attendanceRepo.Update(attendance); err != nil {
		return nil, s.writeError(err, "update")
	}
	return s.Get(attendance.ID)
}

func (s *AttendanceService) Delete(id uint64) error {
	if err := s.attendanceRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	return nil
}

func (s *AttendanceService) apply(ownerID uint64, attendance *models.Attendance, input AttendanceInput) error {
	v := &ValidationError{}
	input.WorkIn = strings.TrimSpace(input.WorkIn)

	employeeOK := false
	if input.EmployeeID == 0 {
		v.Add("employee_id", "The employee field is required.")
	} else if _, err := s.employeeRepo.FindOwned(ownerID, input.EmployeeID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to verify employee: %w", err)
		}
		v.Add("employee_id", "The selected employee is invalid.")
	} else {
		employeeOK = true
	}

	date := parseDateField(v, "date", input.Date)
	checkTimeField(v, "work_in", input.WorkIn)

	workOut := optionalString(input.WorkOut)
	if workOut != nil {
		checkTimeField(v, "work_out", *workOut)
		if _, ok := v.Fields["work_out"]; !ok {
			if _, ok := v.Fields["work_in"]; !ok {
				if _, ok := derive.WorkedMinutes(input.WorkIn, *workOut); !ok {
					v.Add("work_out", "The work out time must be after the work in time.")
				}
			}
		}
	}

	if _, bad := v.Fields["date"]; employeeOK && !bad {
		exists, err := s.attendanceRepo.Exists(input.EmployeeID, date, attendance.ID)
		if err != nil {
			return fmt.Errorf("failed to check attendance: %w", err)
		}
		if exists {
			v.Add("date", "Attendance for this employee on this date already exists.")
		}
	}

	if err := v.Err(); err != nil {
		return err
	}

	attendance.EmployeeID = input.EmployeeID
	attendance.Employee = nil
	attendance.Date = date
	attendance.WorkIn = input.WorkIn
	attendance.WorkOut = workOut
	attendance.Note = optionalString(input.Note)
	return nil
}

func (s *AttendanceService) writeError(err error, action string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fieldError("date", "Attendance for this employee on this date already exists.")
	}
	return fmt.Errorf("failed to %s attendance: %w", action, err)
}

