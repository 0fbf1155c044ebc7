package models

// All returns every model in migration order.
func All() []any {
	return []any{
		&User{},
		&Department{},
		&Employee{},
		&Task{},
		&Note{},
		&Attendance{},
		&DuePayment{},
	}
}
