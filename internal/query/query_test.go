package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/employee-management-api/internal/database"
	"github.com/yukikurage/employee-management-api/internal/models"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})
	return db
}

func day(s string) *time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return &d
}

func TestNormalizeSearch(t *testing.T) {
	assert.Equal(t, "", NormalizeSearch("   \t\n "))
	assert.Equal(t, "john smith", NormalizeSearch("  john   smith "))
	assert.Equal(t, []string{"a", "b"}, Terms(NormalizeSearch(" a\tb ")))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "100!%", EscapeLike("100%"))
	assert.Equal(t, "a!_b", EscapeLike("a_b"))
	assert.Equal(t, "wow!!", EscapeLike("wow!"))
	assert.Equal(t, "%50!%!_OFF%", ContainsPattern("50%_OFF"))
}

func TestFilterSet_Resolve(t *testing.T) {
	res := TaskFilters.Resolve("")
	assert.Equal(t, "latest", res.Key)
	assert.Empty(t, res.Warning)

	res = TaskFilters.Resolve("priority")
	assert.Equal(t, "priority", res.Key)
	assert.Empty(t, res.Warning)

	res = TaskFilters.Resolve("bogus")
	assert.Equal(t, "latest", res.Key)
	assert.Equal(t, TaskFilters.DefaultOrder(), res.Order)
	assert.Contains(t, res.Warning, `"bogus"`)
}

func TestNewFilterSet_PanicsWithoutDefault(t *testing.T) {
	assert.Panics(t, func() {
		NewFilterSet("missing", map[string]Order{"x": {Asc("id")}})
	})
}

func TestOrder_Clauses(t *testing.T) {
	order := Order{AscNullsLast("tasks.due_date"), Desc("tasks.id")}

	assert.Equal(t, []string{
		"CASE WHEN tasks.due_date IS NULL THEN 1 ELSE 0 END",
		"tasks.due_date ASC",
		"tasks.id DESC",
	}, order.Clauses())
}

func TestPriorityRankExpr(t *testing.T) {
	assert.Equal(t,
		"CASE tasks.priority WHEN 'urgent' THEN 1 WHEN 'high' THEN 2 WHEN 'medium' THEN 3 WHEN 'low' THEN 4 ELSE 5 END",
		PriorityRankExpr("tasks.priority"))
}

func TestRun_OwnershipAndBlankSearch(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Create(&[]models.Note{
		{UserID: 1, Title: "Alpha"},
		{UserID: 1, Title: "Beta"},
		{UserID: 2, Title: "Gamma"},
	}).Error)

	notes, total, err := Run[models.Note](db, Spec{
		Owner:  Owner{ID: 1, Column: "notes.user_id"},
		Search: NoteSearch("   "),
		Order:  NoteFilters.Resolve("title_asc").Order,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, notes, 2)
	assert.Equal(t, "Alpha", notes[0].Title)
	assert.Equal(t, "Beta", notes[1].Title)

	_, total, err = Run[models.Note](db, Spec{Owner: Owner{Column: "notes.user_id"}})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestRun_SearchEveryWordAndEscapesWildcards(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Create(&[]models.Note{
		{UserID: 1, Title: "Quarterly report 100% done"},
		{UserID: 1, Title: "Quarterly report 1000 rows"},
		{UserID: 1, Title: "Yearly report"},
	}).Error)

	notes, total, err := Run[models.Note](db, Spec{
		Owner:  Owner{ID: 1, Column: "notes.user_id"},
		Search: NoteSearch("quarterly  REPORT"),
		Order:  NoteFilters.DefaultOrder(),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, notes, 2)

	notes, total, err = Run[models.Note](db, Spec{
		Owner:  Owner{ID: 1, Column: "notes.user_id"},
		Search: NoteSearch("100%"),
		Order:  NoteFilters.DefaultOrder(),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "Quarterly report 100% done", notes[0].Title)
}

func TestRun_SearchNonASCII(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Create(&[]models.Note{
		{UserID: 1, Title: "Émile Zola"},
		{UserID: 1, Title: "Emile Durkheim"},
	}).Error)

	notes, total, err := Run[models.Note](db, Spec{
		Owner:  Owner{ID: 1, Column: "notes.user_id"},
		Search: NoteSearch("Émile"),
		Order:  NoteFilters.DefaultOrder(),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, notes, 1)
	assert.Equal(t, "Émile Zola", notes[0].Title)

	_, total, err = Run[models.Note](db, Spec{
		Owner:  Owner{ID: 1, Column: "notes.user_id"},
		Search: NoteSearch("ZOLA"),
		Order:  NoteFilters.DefaultOrder(),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestRun_TaskSearchMatchesEmployeeFullName(t *testing.T) {
	db := setupDB(t)
	employee := models.Employee{UserID: 1, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", WorkIn: "09:00", WorkOut: "17:00", JobTitle: "Engineer", PayAmount: 1000, PayDay: 1}
	require.NoError(t, db.Create(&employee).Error)
	require.NoError(t, db.Create(&[]models.Task{
		{UserID: 1, Title: "Write notes", Status: models.TaskStatusPending, Priority: models.TaskPriorityLow, EmployeeID: &employee.ID},
		{UserID: 1, Title: "Unassigned", Status: models.TaskStatusPending, Priority: models.TaskPriorityLow},
	}).Error)

	tasks, total, err := Run[models.Task](db, Spec{
		Owner:  Owner{ID: 1, Column: "tasks.user_id"},
		Search: TaskSearch("ada lovelace"),
		Order:  TaskFilters.DefaultOrder(),
	}, "Employee")
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.NotNil(t, tasks[0].Employee)
	assert.Equal(t, "Lovelace", tasks[0].Employee.LastName)
}

func TestRun_OwnershipThroughEmployee(t *testing.T) {
	db := setupDB(t)
	mine := models.Employee{UserID: 1, FirstName: "A", LastName: "One", Email: "a@example.com", WorkIn: "09:00", WorkOut: "17:00", JobTitle: "X", PayAmount: 1, PayDay: 1}
	theirs := models.Employee{UserID: 2, FirstName: "B", LastName: "Two", Email: "b@example.com", WorkIn: "09:00", WorkOut: "17:00", JobTitle: "X", PayAmount: 1, PayDay: 1}
	require.NoError(t, db.Create(&mine).Error)
	require.NoError(t, db.Create(&theirs).Error)
	require.NoError(t, db.Create(&[]models.Attendance{
		{EmployeeID: mine.ID, Date: *day("2026-02-10"), WorkIn: "09:00"},
		{EmployeeID: theirs.ID, Date: *day("2026-02-10"), WorkIn: "09:00"},
	}).Error)

	rows, total, err := Run[models.Attendance](db, Spec{
		Owner: Owner{ID: 1, Through: "attendances.employee_id"},
		Order: AttendanceFilters.DefaultOrder(),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, mine.ID, rows[0].EmployeeID)
}

func TestRun_CriticalTaskOrderings(t *testing.T) {
	db := setupDB(t)
	tasks := []models.Task{
		{UserID: 1, Title: "low-soon", Status: models.TaskStatusPending, Priority: models.TaskPriorityLow, DueDate: day("2026-02-11")},
		{UserID: 1, Title: "urgent-later", Status: models.TaskStatusPending, Priority: models.TaskPriorityUrgent, DueDate: day("2026-02-20")},
		{UserID: 1, Title: "high-nodate", Status: models.TaskStatusPending, Priority: models.TaskPriorityHigh},
		{UserID: 1, Title: "urgent-soon", Status: models.TaskStatusPending, Priority: models.TaskPriorityUrgent, DueDate: day("2026-02-11")},
	}
	require.NoError(t, db.Create(&tasks).Error)

	titles := func(order Order) []string {
		rows, _, err := Run[models.Task](db, Spec{Owner: Owner{ID: 1, Column: "tasks.user_id"}, Order: order})
		require.NoError(t, err)
		out := make([]string, len(rows))
		for i, r := range rows {
			out[i] = r.Title
		}
		return out
	}

	assert.Equal(t,
		[]string{"urgent-soon", "low-soon", "urgent-later", "high-nodate"},
		titles(CriticalTaskFilters.Resolve("time_priority").Order))
	assert.Equal(t,
		[]string{"urgent-soon", "urgent-later", "high-nodate", "low-soon"},
		titles(CriticalTaskFilters.Resolve("priority_only").Order))
}

func TestRun_Window(t *testing.T) {
	db := setupDB(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, db.Create(&models.Note{UserID: 1, Title: string(rune('a' + i))}).Error)
	}

	notes, total, err := Run[models.Note](db, Spec{
		Owner:  Owner{ID: 1, Column: "notes.user_id"},
		Order:  NoteFilters.Resolve("title_asc").Order,
		Window: Window{Offset: 2, Limit: 2},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, notes, 2)
	assert.Equal(t, "c", notes[0].Title)
	assert.Equal(t, "d", notes[1].Title)
}
