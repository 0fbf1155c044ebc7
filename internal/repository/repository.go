package repository

import (
	"time"

	"github.com/yukikurage/employee-management-api/internal/models"
	"github.com/yukikurage/employee-management-api/internal/query"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}

// EmployeeRepository defines the interface for employee data access
type EmployeeRepository interface {
	Create(employee *models.Employee) error

	// FindByID finds an employee by ID with its department
	FindByID(id uint64) (*models.Employee, error)

	// FindOwned finds an employee only if it belongs to userID
	FindOwned(userID, id uint64) (*models.Employee, error)

	// List runs a list query
	List(spec query.Spec) ([]models.Employee, int64, error)

	// ListAll lists every employee of an owner by name, for form options
	ListAll(userID uint64) ([]models.Employee, error)

	Update(employee *models.Employee) error

	// Delete removes the employee with its attendances and due payments and
	// unassigns its tasks
	Delete(id uint64) error

	// EmailTaken reports whether any employee other than exceptID uses email
	EmailTaken(email string, exceptID uint64) (bool, error)

	Count(userID uint64) (int64, error)

	// MonthlyPayroll sums pay amounts of an owner's employees
	MonthlyPayroll(userID uint64) (float64, error)
}

// DepartmentRepository defines the interface for department data access
type DepartmentRepository interface {
	Create(department *models.Department) error
	FindByID(id uint64) (*models.Department, error)
	FindOwned(userID, id uint64) (*models.Department, error)
	List(spec query.Spec) ([]models.Department, int64, error)
	ListAll(userID uint64) ([]models.Department, error)
	Update(department *models.Department) error

	// Delete removes the department and clears department_id on its employees
	Delete(id uint64) error

	// NameTaken reports whether the owner already has another department named name
	NameTaken(userID uint64, name string, exceptID uint64) (bool, error)

	// EmployeeCounts returns employee counts keyed by department ID
	EmployeeCounts(departmentIDs []uint64) (map[uint64]int64, error)

	Count(userID uint64) (int64, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	List(spec query.Spec) ([]models.Task, int64, error)

	// ListOpen lists tasks that are not completed, in the given order
	ListOpen(userID uint64, order query.Order, limit int) ([]models.Task, error)

	Update(task *models.Task) error
	Delete(id uint64) error

	// CountOpen counts tasks that are not completed
	CountOpen(userID uint64) (int64, error)
}

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	Create(note *models.Note) error
	FindByID(id uint64) (*models.Note, error)
	List(spec query.Spec) ([]models.Note, int64, error)
	Update(note *models.Note) error
	Delete(id uint64) error
	Count(userID uint64) (int64, error)
}

// AttendanceRepository defines the interface for attendance data access
type AttendanceRepository interface {
	Create(attendance *models.Attendance) error

	// FindByID finds an attendance with its employee, which carries ownership
	FindByID(id uint64) (*models.Attendance, error)

	List(spec query.Spec) ([]models.Attendance, int64, error)
	Update(attendance *models.Attendance) error
	Delete(id uint64) error

	// Exists reports whether employeeID already has a record on date, other than exceptID
	Exists(employeeID uint64, date time.Time, exceptID uint64) (bool, error)

	// CountOnDate counts an owner's attendances on date
	CountOnDate(userID uint64, date time.Time) (int64, error)
}

// DuePaymentRepository defines the interface for due payment data access
type DuePaymentRepository interface {
	Create(payment *models.DuePayment) error
	FindByID(id uint64) (*models.DuePayment, error)
	List(spec query.Spec) ([]models.DuePayment, int64, error)

	// ListPending lists pending payments by pay date
	ListPending(userID uint64, limit int) ([]models.DuePayment, error)

	Update(payment *models.DuePayment) error
	Delete(id uint64) error
	CountPending(userID uint64) (int64, error)
}
