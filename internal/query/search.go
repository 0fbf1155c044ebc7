package query

import (
	"strings"

	"gorm.io/gorm"
)

// likeEscape is portable across mysql, postgres and sqlite string literals.
const likeEscape = "!"

// Search is a free-text predicate over a fixed set of columns.
type Search struct {
	Text    string
	Columns []string
	// EmployeeColumn, when set, also matches the employee full name through
	// this foreign key column.
	EmployeeColumn string
	// FullName also matches first_name + ' ' + last_name on the queried table.
	FullName bool
}

// NormalizeSearch trims and collapses whitespace.
func NormalizeSearch(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Terms splits the normalized query into words.
func Terms(s string) []string {
	return strings.Fields(s)
}

// EscapeLike escapes LIKE wildcards so user input only matches literally.
func EscapeLike(s string) string {
	r := strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")
	return r.Replace(s)
}

// ContainsPattern returns a substring pattern for term. Case folding happens
// in SQL on both sides so the database's LOWER rules apply to each.
func ContainsPattern(term string) string {
	return "%" + EscapeLike(term) + "%"
}

// FullNameExpr concatenates first and last name in the connection's dialect.
func FullNameExpr(db *gorm.DB, prefix string) string {
	first, last := prefix+"first_name", prefix+"last_name"
	if db.Dialector != nil && db.Dialector.Name() == "mysql" {
		return "CONCAT(" + first + ", ' ', " + last + ")"
	}
	return first + " || ' ' || " + last
}

func likeClause(expr string) string {
	return "LOWER(" + expr + ") LIKE LOWER(?) ESCAPE '" + likeEscape + "'"
}

// Searched applies the search predicate: every term must match at least one
// column. A blank query leaves the result set unfiltered.
func Searched(s Search) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		terms := Terms(NormalizeSearch(s.Text))
		if len(terms) == 0 {
			return db
		}

		for _, term := range terms {
			pattern := ContainsPattern(term)
			var parts []string
			var args []any

			for _, col := range s.Columns {
				parts = append(parts, likeClause(col))
				args = append(args, pattern)
			}
			if s.FullName {
				parts = append(parts, likeClause(FullNameExpr(db, "employees.")))
				args = append(args, pattern)
			}
			if s.EmployeeColumn != "" {
				employees := db.Session(&gorm.Session{NewDB: true}).
					Table("employees").
					Select("id").
					Where(likeClause(FullNameExpr(db, "")), pattern)
				parts = append(parts, s.EmployeeColumn+" IN (?)")
				args = append(args, employees)
			}
			if len(parts) == 0 {
				continue
			}

			db = db.Where("("+strings.Join(parts, " OR ")+")", args...)
		}
		return db
	}
}
