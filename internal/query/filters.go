package query

import (
	"fmt"
	"sort"
)

// FilterSet maps named filter keys to orderings for one entity.
type FilterSet struct {
	Default string
	orders  map[string]Order
}

// NewFilterSet builds a filter set. The default key must be present.
func NewFilterSet(defaultKey string, orders map[string]Order) FilterSet {
	if _, ok := orders[defaultKey]; !ok {
		panic(fmt.Sprintf("query: default filter %q not in filter set", defaultKey))
	}
	return FilterSet{Default: defaultKey, orders: orders}
}

// Resolution is the outcome of resolving a requested filter key.
type Resolution struct {
	Key     string
	Order   Order
	Warning string
}

// Resolve maps key to its ordering. An empty key silently selects the default;
// an unknown key selects the default and reports a warning.
func (f FilterSet) Resolve(key string) Resolution {
	if key == "" {
		return Resolution{Key: f.Default, Order: f.orders[f.Default]}
	}
	if order, ok := f.orders[key]; ok {
		return Resolution{Key: key, Order: order}
	}
	return Resolution{
		Key:     f.Default,
		Order:   f.orders[f.Default],
		Warning: fmt.Sprintf("Invalid filter %q was ignored; showing default order.", key),
	}
}

// DefaultOrder returns the ordering of the default key.
func (f FilterSet) DefaultOrder() Order {
	return f.orders[f.Default]
}

// Keys lists the accepted keys in lexical order.
func (f FilterSet) Keys() []string {
	keys := make([]string, 0, len(f.orders))
	for k := range f.orders {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var (
	EmployeeFilters = NewFilterSet("latest", map[string]Order{
		"latest":      {Desc("employees.created_at"), Desc("employees.id")},
		"oldest":      {Asc("employees.created_at"), Asc("employees.id")},
		"name_asc":    {Asc("employees.last_name"), Asc("employees.first_name"), Asc("employees.id")},
		"name_desc":   {Desc("employees.last_name"), Desc("employees.first_name"), Desc("employees.id")},
		"salary_high": {Desc("employees.pay_amount"), Asc("employees.last_name"), Asc("employees.id")},
		"salary_low":  {Asc("employees.pay_amount"), Asc("employees.last_name"), Asc("employees.id")},
		"pay_day":     {Asc("employees.pay_day"), Asc("employees.last_name"), Asc("employees.id")},
	})

	DepartmentFilters = NewFilterSet("latest", map[string]Order{
		"latest":    {Desc("departments.created_at"), Desc("departments.id")},
		"oldest":    {Asc("departments.created_at"), Asc("departments.id")},
		"name_asc":  {Asc("departments.name"), Asc("departments.id")},
		"name_desc": {Desc("departments.name"), Desc("departments.id")},
		"most_employees": {
			Desc("(SELECT COUNT(*) FROM employees WHERE employees.department_id = departments.id)"),
			Asc("departments.name"),
			Asc("departments.id"),
		},
	})

	TaskFilters = NewFilterSet("latest", map[string]Order{
		"latest": {Desc("tasks.created_at"), Desc("tasks.id")},
		"oldest": {Asc("tasks.created_at"), Asc("tasks.id")},
		"due_date": {
			AscNullsLast("tasks.due_date"),
			Asc(PriorityRankExpr("tasks.priority")),
			Desc("tasks.created_at"),
			Desc("tasks.id"),
		},
		"priority": {
			Asc(PriorityRankExpr("tasks.priority")),
			AscNullsLast("tasks.due_date"),
			Desc("tasks.created_at"),
			Desc("tasks.id"),
		},
		"title_asc": {Asc("tasks.title"), Asc("tasks.id")},
		"status": {
			Asc("CASE tasks.status WHEN 'pending' THEN 1 WHEN 'in_progress' THEN 2 ELSE 3 END"),
			AscNullsLast("tasks.due_date"),
			Desc("tasks.id"),
		},
	})

	// CriticalTaskFilters ranks open tasks for the dashboard.
	CriticalTaskFilters = NewFilterSet("time_priority", map[string]Order{
		"time_priority": {
			AscNullsLast("tasks.due_date"),
			Asc(PriorityRankExpr("tasks.priority")),
			Desc("tasks.created_at"),
			Desc("tasks.id"),
		},
		"priority_only": {
			Asc(PriorityRankExpr("tasks.priority")),
			AscNullsLast("tasks.due_date"),
			Desc("tasks.created_at"),
			Desc("tasks.id"),
		},
	})

	NoteFilters = NewFilterSet("latest", map[string]Order{
		"latest":     {Desc("notes.created_at"), Desc("notes.id")},
		"oldest":     {Asc("notes.created_at"), Asc("notes.id")},
		"title_asc":  {Asc("notes.title"), Asc("notes.id")},
		"title_desc": {Desc("notes.title"), Desc("notes.id")},
	})

	AttendanceFilters = NewFilterSet("latest", map[string]Order{
		"latest": {Desc("attendances.date"), Desc("attendances.id")},
		"oldest": {Asc("attendances.date"), Asc("attendances.id")},
		"employee_name": {
			Asc("(SELECT employees.last_name FROM employees WHERE employees.id = attendances.employee_id)"),
			Desc("attendances.date"),
			Desc("attendances.id"),
		},
	})

	DuePaymentFilters = NewFilterSet("pay_date", map[string]Order{
		"pay_date":    {Asc("due_payments.pay_date"), Asc("due_payments.id")},
		"latest":      {Desc("due_payments.created_at"), Desc("due_payments.id")},
		"amount_high": {Desc("due_payments.amount"), Asc("due_payments.pay_date"), Asc("due_payments.id")},
		"amount_low":  {Asc("due_payments.amount"), Asc("due_payments.pay_date"), Asc("due_payments.id")},
		"status": {
			Asc("CASE due_payments.status WHEN 'pending' THEN 0 ELSE 1 END"),
			Asc("due_payments.pay_date"),
			Asc("due_payments.id"),
		},
	})
)
