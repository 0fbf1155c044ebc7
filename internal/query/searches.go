package query

// Per-entity search column sets.

func EmployeeSearch(text string) Search {
	return Search{
		Text:     text,
		Columns:  []string{"employees.first_name", "employees.last_name", "employees.email", "employees.phone", "employees.job_title"},
		FullName: true,
	}
}

func DepartmentSearch(text string) Search {
	return Search{Text: text, Columns: []string{"departments.name", "departments.description"}}
}

func TaskSearch(text string) Search {
	return Search{
		Text:           text,
		Columns:        []string{"tasks.title", "tasks.description"},
		EmployeeColumn: "tasks.employee_id",
	}
}

func NoteSearch(text string) Search {
	return Search{Text: text, Columns: []string{"notes.title", "notes.description"}}
}

func AttendanceSearch(text string) Search {
	return Search{
		Text:           text,
		Columns:        []string{"attendances.note"},
		EmployeeColumn: "attendances.employee_id",
	}
}

func DuePaymentSearch(text string) Search {
	return Search{
		Text:           text,
		Columns:        []string{"due_payments.notes", "due_payments.status"},
		EmployeeColumn: "due_payments.employee_id",
	}
}
