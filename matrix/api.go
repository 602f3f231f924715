// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/eisenhower/quadrant"

// CompareFunc reports the order of a relative to b: negative when a sorts
// before b, zero when they rank equally, positive when a sorts after b.
// It must define a total order over the task type.
type CompareFunc[T any] func(a, b T) int

// Matrix is the shared contract of the two Eisenhower container variants.
//
// A Matrix owns exactly one bucket per quadrant, all of the same kind
// (ordered duplicate-permitting sequences in ListMatrix, globally unique
// membership in SetMatrix). Mutating operations report whether the visible
// content of the matrix changed. Operations returning a new Matrix
// (ClearQuadrant, ClearUseless, ClearAll, Clone) never touch the receiver
// and share no mutable bucket state with it.
//
// A Matrix performs no internal locking; concurrent mutation of one
// instance requires external synchronization.
type Matrix[T comparable] interface {
	// Add inserts task into q's bucket. Reports whether the matrix changed
	// (always true for ListMatrix; false on a SetMatrix when the task is
	// already present anywhere).
	Add(task T, q quadrant.Quadrant) (bool, error)

	// AddByFlags inserts task into the quadrant classified from the flags.
	AddByFlags(task T, urgent, important bool) (bool, error)

	// AddAll inserts every task into q's bucket in order. Reports whether
	// any insertion changed the matrix.
	AddAll(q quadrant.Quadrant, tasks []T) (bool, error)

	// AddAllByFlags inserts every task into the quadrant classified from
	// the flags.
	AddAllByFlags(urgent, important bool, tasks []T) (bool, error)

	// AddAllFromMap inserts per-quadrant task slices from a full 4-entry
	// map. A non-nil empty map is a no-op returning (false, nil); otherwise
	// the map must carry a non-nil slice for all four quadrants.
	AddAllFromMap(m map[quadrant.Quadrant][]T) (bool, error)

	// AddIfAbsentInQuadrant inserts task into q only when q does not
	// already contain it.
	AddIfAbsentInQuadrant(task T, q quadrant.Quadrant) (bool, error)

	// AddIfAbsentInMatrix inserts task into q only when no quadrant
	// contains it.
	AddIfAbsentInMatrix(task T, q quadrant.Quadrant) (bool, error)

	// Tasks returns a copy of q's bucket in insertion order.
	Tasks(q quadrant.Quadrant) ([]T, error)

	// TasksSorted returns a sorted copy of q's bucket under the matrix's
	// default comparator. Stored order is never mutated.
	TasksSorted(q quadrant.Quadrant) ([]T, error)

	// TasksSortedFunc returns a sorted copy of q's bucket under compare.
	TasksSortedFunc(q quadrant.Quadrant, compare CompareFunc[T]) ([]T, error)

	// AllTasks returns the union of all buckets with duplicates collapsed,
	// scanned in ImportanceOverUrgency order.
	AllTasks() []T

	// AllTasksSorted flattens the matrix into one sequence: each bucket is
	// sorted under the default comparator, then the sorted buckets are
	// concatenated in o's quadrant order.
	AllTasksSorted(o quadrant.Ordering) ([]T, error)

	// AllTasksSortedFunc is AllTasksSorted with one shared comparator.
	AllTasksSortedFunc(o quadrant.Ordering, compare CompareFunc[T]) ([]T, error)

	// AllTasksSortedBy is AllTasksSorted with a comparator per quadrant;
	// the map must carry a non-nil comparator for all four quadrants.
	AllTasksSortedBy(o quadrant.Ordering, compares map[quadrant.Quadrant]CompareFunc[T]) ([]T, error)

	// QuadrantOf returns the first quadrant containing task, scanned in
	// ImportanceOverUrgency order, and whether any quadrant contains it.
	QuadrantOf(task T) (quadrant.Quadrant, bool)

	// QuadrantsOf returns every quadrant containing task, in
	// ImportanceOverUrgency order.
	QuadrantsOf(task T) []quadrant.Quadrant

	// Contains reports whether any quadrant contains task.
	Contains(task T) bool

	// ContainsIn reports whether q's bucket contains task.
	ContainsIn(task T, q quadrant.Quadrant) (bool, error)

	// ContainsByFlags reports whether the quadrant classified from the
	// flags contains task.
	ContainsByFlags(task T, urgent, important bool) bool

	// Remove removes task from q's bucket and reports whether anything was
	// removed. The list variant removes every value-equal occurrence in
	// that one bucket; the set variant removes the single occurrence.
	Remove(task T, q quadrant.Quadrant) (bool, error)

	// RemoveOccurrences removes every value-equal occurrence of task from
	// q's bucket.
	RemoveOccurrences(task T, q quadrant.Quadrant) (bool, error)

	// RemoveEverywhere removes every occurrence of task from all four
	// buckets. Reports true iff at least one bucket changed.
	RemoveEverywhere(task T) bool

	// ClearQuadrant returns an independent copy of the matrix with q's
	// bucket emptied; the receiver is untouched.
	ClearQuadrant(q quadrant.Quadrant) (Matrix[T], error)

	// ClearUseless returns an independent copy with the EliminateIt bucket
	// emptied.
	ClearUseless() Matrix[T]

	// ClearAll returns an independent copy with all four buckets emptied.
	ClearAll() Matrix[T]

	// Clone returns an independent deep copy of the matrix.
	Clone() Matrix[T]

	// ToMap returns a quadrant-keyed deep copy of all buckets.
	ToMap() map[quadrant.Quadrant][]T

	// ToGrid returns the buckets as a 2x2 grid indexed
	// [urgentRow][importantCol]: row 0 urgent, row 1 not urgent, col 0
	// important, col 1 not important. Buckets are deep-copied.
	ToGrid() [2][2][]T

	// Size returns the total number of stored tasks across all buckets.
	Size() int

	// QuadrantSize returns the number of tasks in q's bucket.
	QuadrantSize(q quadrant.Quadrant) (int, error)

	// Equal reports whether other is the same variant kind with the same
	// per-quadrant contents (order-sensitive for the list variant).
	Equal(other Matrix[T]) bool
}

// Compile-time contract checks for both variants.
var (
	_ Matrix[string] = (*ListMatrix[string])(nil)
	_ Matrix[string] = (*SetMatrix[string])(nil)
)
