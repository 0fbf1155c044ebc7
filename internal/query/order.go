package query

import (
	"fmt"
	"strings"

	"github.com/yukikurage/employee-management-api/internal/derive"
)

// SortKey is one ORDER BY term. Expr must be a trusted SQL expression.
type SortKey struct {
	Expr      string
	Desc      bool
	NullsLast bool
}

// Order is an ordered list of sort keys; earlier keys take precedence.
type Order []SortKey

// Asc sorts ascending.
func Asc(expr string) SortKey { return SortKey{Expr: expr} }

// Desc sorts descending.
func Desc(expr string) SortKey { return SortKey{Expr: expr, Desc: true} }

// AscNullsLast sorts ascending with NULLs after every value.
func AscNullsLast(expr string) SortKey { return SortKey{Expr: expr, NullsLast: true} }

// Clauses renders the order as ORDER BY fragments. NULL placement is spelled
// out with a CASE so it behaves the same on every dialect.
func (o Order) Clauses() []string {
	clauses := make([]string, 0, len(o)*2)
	for _, k := range o {
		if k.NullsLast {
			clauses = append(clauses, fmt.Sprintf("CASE WHEN %s IS NULL THEN 1 ELSE 0 END", k.Expr))
		}
		dir := "ASC"
		if k.Desc {
			dir = "DESC"
		}
		clauses = append(clauses, k.Expr+" "+dir)
	}
	return clauses
}

// String renders the full ORDER BY list.
func (o Order) String() string {
	return strings.Join(o.Clauses(), ", ")
}

// PriorityRankExpr ranks a priority column using the fixed priority order.
func PriorityRankExpr(column string) string {
	var b strings.Builder
	b.WriteString("CASE ")
	b.WriteString(column)
	for _, p := range []string{"urgent", "high", "medium", "low"} {
		fmt.Fprintf(&b, " WHEN '%s' THEN %d", p, derive.PriorityRank(p))
	}
	fmt.Fprintf(&b, " ELSE %d END", derive.UnrankedPriority)
	return b.String()
}
