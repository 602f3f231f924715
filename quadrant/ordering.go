package quadrant

// Ordering selects how the four quadrants are linearized when a matrix is
// flattened into a single sequence. Both orderings start with DoItNow and
// end with EliminateIt; they differ only in the middle two quadrants.
type Ordering uint8

const (
	// ImportanceOverUrgency ranks important quadrants ahead of urgent ones:
	// DoItNow, ScheduleIt, DelegateOrOptimizeIt, EliminateIt.
	// This matches the classical 1-4 numbering.
	ImportanceOverUrgency Ordering = iota

	// UrgencyOverImportance ranks urgent quadrants ahead of important ones:
	// DoItNow, DelegateOrOptimizeIt, ScheduleIt, EliminateIt.
	UrgencyOverImportance
)

// Sequence returns the fixed quadrant permutation for o.
// Returns ErrUnknownOrdering for any value outside the two defined policies.
// Complexity: O(1)
func Sequence(o Ordering) ([Count]Quadrant, error) {
	switch o {
	case ImportanceOverUrgency:
		return [Count]Quadrant{DoItNow, ScheduleIt, DelegateOrOptimizeIt, EliminateIt}, nil
	case UrgencyOverImportance:
		return [Count]Quadrant{DoItNow, DelegateOrOptimizeIt, ScheduleIt, EliminateIt}, nil
	default:
		return [Count]Quadrant{}, ErrUnknownOrdering
	}
}

// Valid reports whether o is one of the two defined orderings.
func (o Ordering) Valid() bool { return o <= UrgencyOverImportance }

// String returns the canonical ordering name.
func (o Ordering) String() string {
	switch o {
	case ImportanceOverUrgency:
		return "ImportanceOverUrgency"
	case UrgencyOverImportance:
		return "UrgencyOverImportance"
	default:
		return "Ordering(?)"
	}
}
