// Package quadrant defines the four Eisenhower classifications and the
// policies used to linearize them.
package quadrant

import "fmt"

// Count is the number of Eisenhower quadrants. Every matrix holds exactly
// Count buckets, and every ordering is a permutation of Count quadrants.
const Count = 4

// Quadrant is one of the four urgency×importance classifications.
//
// The zero value is DoItNow; values outside [DoItNow, EliminateIt] are
// invalid and rejected by every consumer with a sentinel error.
type Quadrant uint8

const (
	// DoItNow holds tasks that are urgent and important (quadrant 1).
	DoItNow Quadrant = iota
	// ScheduleIt holds tasks that are important but not urgent (quadrant 2).
	ScheduleIt
	// DelegateOrOptimizeIt holds tasks that are urgent but not important (quadrant 3).
	DelegateOrOptimizeIt
	// EliminateIt holds tasks that are neither urgent nor important (quadrant 4).
	EliminateIt
)

// Classify maps an (urgent, important) pair to its Quadrant.
// The mapping is total and bijective over the four combinations.
// Complexity: O(1)
func Classify(urgent, important bool) Quadrant {
	switch {
	case urgent && important:
		return DoItNow
	case !urgent && important:
		return ScheduleIt
	case urgent && !important:
		return DelegateOrOptimizeIt
	default:
		return EliminateIt
	}
}

// FromNumber converts a classical quadrant number (1-4) to a Quadrant.
// Returns ErrNumberOutOfRange for any other number.
// Complexity: O(1)
func FromNumber(n int) (Quadrant, error) {
	if n < 1 || n > Count {
		return 0, fmt.Errorf("%w: %d", ErrNumberOutOfRange, n)
	}
	return Quadrant(n - 1), nil
}

// All returns the four quadrants in classical numeric order (1-4).
func All() [Count]Quadrant {
	return [Count]Quadrant{DoItNow, ScheduleIt, DelegateOrOptimizeIt, EliminateIt}
}

// IsUrgent reports whether tasks in q demand immediate attention.
func (q Quadrant) IsUrgent() bool {
	return q == DoItNow || q == DelegateOrOptimizeIt
}

// IsImportant reports whether tasks in q contribute to long-term goals.
func (q Quadrant) IsImportant() bool {
	return q == DoItNow || q == ScheduleIt
}

// Number returns the classical 1-based quadrant number.
func (q Quadrant) Number() int { return int(q) + 1 }

// Index returns the 0-based storage slot for q. Only meaningful when
// q.Valid() is true.
func (q Quadrant) Index() int { return int(q) }

// Valid reports whether q is one of the four defined quadrants.
func (q Quadrant) Valid() bool { return q <= EliminateIt }

// String returns the canonical quadrant name.
func (q Quadrant) String() string {
	switch q {
	case DoItNow:
		return "DoItNow"
	case ScheduleIt:
		return "ScheduleIt"
	case DelegateOrOptimizeIt:
		return "DelegateOrOptimizeIt"
	case EliminateIt:
		return "EliminateIt"
	default:
		return fmt.Sprintf("Quadrant(%d)", uint8(q))
	}
}
