package services

import (
	"errors"
	"math"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/employee-management-api/internal/repository"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestDepartmentList_RetriesWithDefaultFilter(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewDepartmentService(repository.NewDepartmentRepository(db), nil)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `departments`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT \\* FROM `departments`.*ORDER BY \\(SELECT COUNT").
		WillReturnError(errors.New("sort failed"))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `departments`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT \\* FROM `departments`.*ORDER BY departments.created_at DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "description"}).AddRow(7, 1, "Sales", ""))

	result := service.List(ListInput{OwnerID: 1, Filter: "most_employees"})

	assert.Empty(t, result.Advisory)
	assert.Equal(t, "latest", result.Filter)
	assert.Equal(t, int64(1), result.Total)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Sales", result.Items[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentList_AdvisoryAfterRetryFails(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewDepartmentService(repository.NewDepartmentRepository(db), nil)

	mock.ExpectQuery("SELECT count").WillReturnError(errors.New("connection refused"))
	mock.ExpectQuery("SELECT count").WillReturnError(errors.New("connection refused"))

	result := service.List(ListInput{OwnerID: 1, Filter: "name_asc", Search: "sales"})

	assert.Equal(t, "We couldn't load departments right now. Please try again later.", result.Advisory)
	assert.Empty(t, result.Items)
	assert.NotNil(t, result.Items)
	assert.Equal(t, "sales", result.Search)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentList_DefaultFilterIsNotRetried(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewDepartmentService(repository.NewDepartmentRepository(db), nil)

	mock.ExpectQuery("SELECT count").WillReturnError(errors.New("connection refused"))

	result := service.List(ListInput{OwnerID: 1})

	assert.NotEmpty(t, result.Advisory)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteList_FailureIsNotRetried(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewNoteService(repository.NewNoteRepository(db), nil)

	mock.ExpectQuery("SELECT count").WillReturnError(errors.New("connection refused"))

	result := service.List(ListInput{OwnerID: 1, Filter: "title_asc"})

	assert.Equal(t, "We couldn't load notes right now. Please try again later.", result.Advisory)
	assert.Equal(t, "title_asc", result.Filter)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListInput_Normalized(t *testing.T) {
	in := ListInput{Page: -3, PageSize: 1000}.normalized()
	assert.Equal(t, 1, in.Page)
	assert.Equal(t, 15, in.PageSize)

	in = ListInput{Page: math.MaxInt, PageSize: 50}.normalized()
	assert.Equal(t, math.MaxInt/50, in.Page)
	assert.GreaterOrEqual(t, (in.Page-1)*in.PageSize, 0)
}
