package derive

// Urgency buckets, most pressing first.
const (
	UrgencyOverdue   = "overdue"
	UrgencyUrgent    = "urgent"
	UrgencySoon      = "soon"
	UrgencyUpcoming  = "upcoming"
	UrgencyScheduled = "scheduled"
)

// DayRange is an inclusive range of days. A nil bound is open.
type DayRange struct {
	Name string
	Min  *int
	Max  *int
}

func (r DayRange) contains(days int) bool {
	if r.Min != nil && days < *r.Min {
		return false
	}
	if r.Max != nil && days > *r.Max {
		return false
	}
	return true
}

func bound(n int) *int { return &n }

// DueRanges is evaluated top to bottom; the first match wins.
var DueRanges = []DayRange{
	{Name: UrgencyOverdue, Max: bound(-1)},
	{Name: UrgencyUrgent, Min: bound(0), Max: bound(1)},
	{Name: UrgencySoon, Min: bound(2), Max: bound(3)},
	{Name: UrgencyUpcoming, Min: bound(4), Max: bound(7)},
}

// Classify returns the name of the first range containing days, or fallback.
func Classify(days int, ranges []DayRange, fallback string) string {
	for _, r := range ranges {
		if r.contains(days) {
			return r.Name
		}
	}
	return fallback
}

// Urgency buckets a days-until-due count.
func Urgency(days int) string {
	return Classify(days, DueRanges, UrgencyScheduled)
}
