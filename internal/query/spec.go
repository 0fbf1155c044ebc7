// Package query builds owner-scoped list queries as an explicit pipeline:
// ownership filter, search predicate, sort order and pagination window.
package query

import (
	"gorm.io/gorm"
)

// Owner restricts rows to one account. Exactly one of Column or Through is set.
type Owner struct {
	ID uint64
	// Column is the owning user column, e.g. "tasks.user_id".
	Column string
	// Through is a foreign key to employees; ownership is the employee's user_id.
	Through string
}

// Window is the pagination slice. A zero Limit disables paging.
type Window struct {
	Offset int
	Limit  int
}

// Spec is everything needed to list one page of an entity.
type Spec struct {
	Owner  Owner
	Search Search
	Order  Order
	Window Window
}

// Owned applies the ownership filter. A spec without an owner matches nothing.
func Owned(owner Owner) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch {
		case owner.ID == 0:
			return db.Where("1 = 0")
		case owner.Through != "":
			return db.Where(owner.Through+" IN (?)",
				db.Session(&gorm.Session{NewDB: true}).Table("employees").Select("id").Where("user_id = ?", owner.ID))
		default:
			return db.Where(owner.Column+" = ?", owner.ID)
		}
	}
}

// Sorted applies the order terms.
func Sorted(order Order) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, clause := range order.Clauses() {
			db = db.Order(clause)
		}
		return db
	}
}

// Paginate applies the pagination window.
func Paginate(w Window) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if w.Limit <= 0 {
			return db
		}
		return db.Offset(w.Offset).Limit(w.Limit)
	}
}

// Run executes spec against T's table and returns the page plus the total
// number of rows matching the owner and search stages.
func Run[T any](db *gorm.DB, spec Spec, preload ...string) ([]T, int64, error) {
	filtered := db.Model(new(T)).Scopes(Owned(spec.Owner), Searched(spec.Search))

	var total int64
	if err := filtered.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := []T{}
	if total == 0 {
		return items, 0, nil
	}

	listQuery := filtered.Session(&gorm.Session{}).Scopes(Sorted(spec.Order), Paginate(spec.Window))
	for _, p := range preload {
		listQuery = listQuery.Preload(p)
	}
	if err := listQuery.Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}
