// Package eisenhower is a small in-memory library implementing the
// Eisenhower Matrix: a 2x2 prioritization grid that buckets arbitrary
// tasks by urgency and importance.
//
// What you get:
//
//   - quadrant/ — the four classifications (DoItNow, ScheduleIt,
//     DelegateOrOptimizeIt, EliminateIt) and the two policies for
//     flattening them into one priority order.
//   - matrix/   — the container itself, in two storage flavors:
//     ListMatrix (ordered, duplicates allowed, index access) and
//     SetMatrix (a task lives in at most one quadrant, at most once).
//   - task/     — an optional hierarchical task value (property bag plus
//     sub-tasks) ready to be stored in a matrix.
//
// Tasks are opaque to the library: any comparable Go value works, ordered
// either naturally (cmp.Ordered) or by a caller-supplied comparator.
// Clearing operations return independent copies, so earlier matrix states
// stay valid. The library does no locking and no I/O; callers own both.
//
// Quick taste:
//
//	m := matrix.NewSet[string]()
//	m.AddByFlags("Pay taxes", true, true)
//	m.AddByFlags("Plan vacation", false, true)
//	flat, _ := m.AllTasksSorted(quadrant.ImportanceOverUrgency)
//	// flat == []string{"Pay taxes", "Plan vacation"}
package eisenhower
