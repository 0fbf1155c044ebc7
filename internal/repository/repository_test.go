package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/employee-management-api/internal/database"
	"github.com/yukikurage/employee-management-api/internal/models"
	"gorm.io/gorm"
)

type RepositoryTestSuite struct {
	suite.Suite
	db *gorm.DB
}

func (suite *RepositoryTestSuite) SetupTest() {
	var err error
	suite.db, err = database.OpenSQLite(":memory:")
	suite.Require().NoError(err)
	suite.Require().NoError(database.AutoMigrate(suite.db))
}

func (suite *RepositoryTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *RepositoryTestSuite) createEmployee(userID uint64, email string, departmentID *uint64) *models.Employee {
	employee := &models.Employee{
		UserID:       userID,
		FirstName:    "Test",
		LastName:     email,
		Email:        email,
		WorkIn:       "09:00",
		WorkOut:      "17:00",
		JobTitle:     "Clerk",
		DepartmentID: departmentID,
		PayAmount:    1500,
		PayDay:       25,
	}
	suite.Require().NoError(suite.db.Create(employee).Error)
	return employee
}

func (suite *RepositoryTestSuite) TestDepartmentDelete_NullsOnlyItsEmployees() {
	repo := NewDepartmentRepository(suite.db)
	sales := &models.Department{UserID: 1, Name: "Sales"}
	support := &models.Department{UserID: 1, Name: "Support"}
	suite.Require().NoError(repo.Create(sales))
	suite.Require().NoError(repo.Create(support))

	inSales := suite.createEmployee(1, "a@example.com", &sales.ID)
	inSupport := suite.createEmployee(1, "b@example.com", &support.ID)

	suite.Require().NoError(repo.Delete(sales.ID))

	var reloaded models.Employee
	suite.Require().NoError(suite.db.First(&reloaded, inSales.ID).Error)
	suite.Nil(reloaded.DepartmentID)

	var other models.Employee
	suite.Require().NoError(suite.db.First(&other, inSupport.ID).Error)
	suite.Require().NotNil(other.DepartmentID)
	suite.Equal(support.ID, *other.DepartmentID)

	_, err := repo.FindByID(sales.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *RepositoryTestSuite) TestDepartmentNameTaken_PerOwner() {
	repo := NewDepartmentRepository(suite.db)
	sales := &models.Department{UserID: 1, Name: "Sales"}
	suite.Require().NoError(repo.Create(sales))

	taken, err := repo.NameTaken(1, "sales", 0)
	suite.NoError(err)
	suite.True(taken)

	taken, err = repo.NameTaken(1, "Sales", sales.ID)
	suite.NoError(err)
	suite.False(taken)

	taken, err = repo.NameTaken(2, "Sales", 0)
	suite.NoError(err)
	suite.False(taken)
}

func (suite *RepositoryTestSuite) TestDepartmentEmployeeCounts() {
	repo := NewDepartmentRepository(suite.db)
	sales := &models.Department{UserID: 1, Name: "Sales"}
	empty := &models.Department{UserID: 1, Name: "Empty"}
	suite.Require().NoError(repo.Create(sales))
	suite.Require().NoError(repo.Create(empty))
	suite.createEmployee(1, "a@example.com", &sales.ID)
	suite.createEmployee(1, "b@example.com", &sales.ID)

	counts, err := repo.EmployeeCounts([]uint64{sales.ID, empty.ID})
	suite.Require().NoError(err)
	suite.EqualValues(2, counts[sales.ID])
	suite.EqualValues(0, counts[empty.ID])
}

func (suite *RepositoryTestSuite) TestEmployeeDelete_CascadesAndUnassigns() {
	repo := NewEmployeeRepository(suite.db)
	employee := suite.createEmployee(1, "a@example.com", nil)
	other := suite.createEmployee(1, "b@example.com", nil)
	day := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	suite.Require().NoError(suite.db.Create(&models.Attendance{EmployeeID: employee.ID, Date: day, WorkIn: "09:00"}).Error)
	suite.Require().NoError(suite.db.Create(&models.Attendance{EmployeeID: other.ID, Date: day, WorkIn: "09:00"}).Error)
	suite.Require().NoError(suite.db.Create(&models.DuePayment{UserID: 1, EmployeeID: employee.ID, Amount: 10, Status: models.PaymentStatusPending, PayDate: day}).Error)
	task := &models.Task{UserID: 1, Title: "Assigned", Status: models.TaskStatusPending, Priority: models.TaskPriorityLow, EmployeeID: &employee.ID}
	suite.Require().NoError(suite.db.Create(task).Error)

	suite.Require().NoError(repo.Delete(employee.ID))

	var count int64
	suite.db.Model(&models.Attendance{}).Count(&count)
	suite.EqualValues(1, count)
	suite.db.Model(&models.DuePayment{}).Count(&count)
	suite.EqualValues(0, count)

	var reloaded models.Task
	suite.Require().NoError(suite.db.First(&reloaded, task.ID).Error)
	suite.Nil(reloaded.EmployeeID)
}

func (suite *RepositoryTestSuite) TestEmployeeEmailTaken_IsGlobal() {
	repo := NewEmployeeRepository(suite.db)
	employee := suite.createEmployee(1, "shared@example.com", nil)

	taken, err := repo.EmailTaken("SHARED@example.com", 0)
	suite.NoError(err)
	suite.True(taken, "email is unique across owners")

	taken, err = repo.EmailTaken("shared@example.com", employee.ID)
	suite.NoError(err)
	suite.False(taken)
}

func (suite *RepositoryTestSuite) TestEmployeeMonthlyPayroll() {
	repo := NewEmployeeRepository(suite.db)
	suite.createEmployee(1, "a@example.com", nil)
	suite.createEmployee(1, "b@example.com", nil)
	suite.createEmployee(2, "c@example.com", nil)

	total, err := repo.MonthlyPayroll(1)
	suite.NoError(err)
	suite.InDelta(3000, total, 0.001)

	total, err = repo.MonthlyPayroll(99)
	suite.NoError(err)
	suite.Zero(total)
}

func (suite *RepositoryTestSuite) TestAttendanceExistsAndCountOnDate() {
	repo := NewAttendanceRepository(suite.db)
	mine := suite.createEmployee(1, "a@example.com", nil)
	theirs := suite.createEmployee(2, "b@example.com", nil)
	day := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	record := &models.Attendance{EmployeeID: mine.ID, Date: day, WorkIn: "09:00"}
	suite.Require().NoError(repo.Create(record))
	suite.Require().NoError(repo.Create(&models.Attendance{EmployeeID: theirs.ID, Date: day, WorkIn: "09:00"}))

	exists, err := repo.Exists(mine.ID, day, 0)
	suite.NoError(err)
	suite.True(exists)

	exists, err = repo.Exists(mine.ID, day, record.ID)
	suite.NoError(err)
	suite.False(exists)

	exists, err = repo.Exists(mine.ID, day.AddDate(0, 0, 1), 0)
	suite.NoError(err)
	suite.False(exists)

	count, err := repo.CountOnDate(1, day)
	suite.NoError(err)
	suite.EqualValues(1, count)

	loaded, err := repo.FindByID(record.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(loaded.Employee)
	suite.EqualValues(1, loaded.OwnerID())
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func TestDuePaymentListPending(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	repo := NewDuePaymentRepository(db)
	first := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(&models.DuePayment{UserID: 1, EmployeeID: 1, Amount: 5, Status: models.PaymentStatusPending, PayDate: first.AddDate(0, 0, 5)}))
	require.NoError(t, repo.Create(&models.DuePayment{UserID: 1, EmployeeID: 1, Amount: 6, Status: models.PaymentStatusPending, PayDate: first}))
	require.NoError(t, repo.Create(&models.DuePayment{UserID: 1, EmployeeID: 1, Amount: 7, Status: models.PaymentStatusPaid, PayDate: first}))

	payments, err := repo.ListPending(1, 10)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, 6.0, payments[0].Amount)
	assert.Equal(t, 5.0, payments[1].Amount)

	count, err := repo.CountPending(1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
