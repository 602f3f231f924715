// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/eisenhower/quadrant"
)

// Shared pure helpers for both variants. Free functions by design: the two
// matrices implement the Matrix contract independently and share no state.

// validQuadrant guards a caller-supplied Quadrant value.
func validQuadrant(q quadrant.Quadrant) error {
	if !q.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownQuadrant, q)
	}
	return nil
}

// importanceScan returns the fixed quadrant scan order used by lookups
// (QuadrantOf, AllTasks): classical ImportanceOverUrgency.
func importanceScan() [quadrant.Count]quadrant.Quadrant {
	seq, _ := quadrant.Sequence(quadrant.ImportanceOverUrgency)
	return seq
}

// sortedCopy returns tasks sorted under compare without mutating the input.
// The sort is stable, so ties keep their stored (insertion) order.
// Complexity: O(n log n), Memory: O(n).
func sortedCopy[T comparable](tasks []T, compare CompareFunc[T]) []T {
	out := slices.Clone(tasks)
	slices.SortStableFunc(out, compare)
	return out
}

// flattenSorted performs the two-level sort: each quadrant's bucket is
// sorted independently under compareFor(q), then the sorted buckets are
// concatenated in o's quadrant order. view must return a bucket snapshot
// that flattenSorted may not mutate; compareFor must return non-nil
// comparators (callers validate first).
// Complexity: O(n log n) over all stored tasks, Memory: O(n).
func flattenSorted[T comparable](
	o quadrant.Ordering,
	view func(quadrant.Quadrant) []T,
	compareFor func(quadrant.Quadrant) CompareFunc[T],
) ([]T, error) {
	seq, err := quadrant.Sequence(o)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0)
	for _, q := range seq {
		out = append(out, sortedCopy(view(q), compareFor(q))...)
	}
	return out, nil
}

// resolveComparators validates a per-quadrant comparator map: it must be
// non-nil and carry a non-nil comparator for all four quadrants.
func resolveComparators[T comparable](compares map[quadrant.Quadrant]CompareFunc[T]) (func(quadrant.Quadrant) CompareFunc[T], error) {
	if compares == nil {
		return nil, ErrNilMap
	}
	for _, q := range quadrant.All() {
		if compares[q] == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingComparator, q)
		}
	}
	return func(q quadrant.Quadrant) CompareFunc[T] { return compares[q] }, nil
}

// validateBulkMap guards an AddAllFromMap argument: non-nil, and when
// non-empty it must carry a non-nil slice for all four quadrants.
// An empty map is reported via the empty return so callers can no-op.
func validateBulkMap[T comparable](m map[quadrant.Quadrant][]T) (empty bool, err error) {
	if m == nil {
		return false, ErrNilMap
	}
	if len(m) == 0 {
		return true, nil
	}
	for _, q := range quadrant.All() {
		tasks, ok := m[q]
		if !ok {
			return false, fmt.Errorf("%w: %s", ErrMissingQuadrant, q)
		}
		if tasks == nil {
			return false, fmt.Errorf("%w: %s", ErrNilTasks, q)
		}
	}
	return false, nil
}

// dedup collapses value-equal duplicates, keeping first appearances in order.
func dedup[T comparable](tasks []T) []T {
	seen := make(map[T]struct{}, len(tasks))
	out := make([]T, 0, len(tasks))
	for _, task := range tasks {
		if _, ok := seen[task]; ok {
			continue
		}
		seen[task] = struct{}{}
		out = append(out, task)
	}
	return out
}

// gridSlot maps a quadrant to its [urgentRow][importantCol] position.
func gridSlot(q quadrant.Quadrant) (row, col int) {
	row, col = 1, 1
	if q.IsUrgent() {
		row = 0
	}
	if q.IsImportant() {
		col = 0
	}
	return row, col
}
