package derive

// PriorityRanks is the fixed total order of task priorities. Anything not
// listed ranks as UnrankedPriority.
var PriorityRanks = map[string]int{
	"urgent": 1,
	"high":   2,
	"medium": 3,
	"low":    4,
}

// UnrankedPriority is the rank of "none" and unrecognised priorities.
const UnrankedPriority = 5

// PriorityRank returns the sort rank for a priority value.
func PriorityRank(priority string) int {
	if rank, ok := PriorityRanks[priority]; ok {
		return rank
	}
	return UnrankedPriority
}
