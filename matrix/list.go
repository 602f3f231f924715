// SPDX-License-Identifier: MIT

package matrix

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/eisenhower/quadrant"
)

// ListMatrix is the duplicate-permitting Eisenhower container: each quadrant
// holds an ordered, index-addressable sequence, and the same task may appear
// any number of times within and across quadrants.
//
// Use NewList or NewListFunc; a zero-value ListMatrix has no default
// comparator and fails sorted retrieval with ErrNilComparator.
type ListMatrix[T comparable] struct {
	compare CompareFunc[T]
	buckets [quadrant.Count][]T
}

// NewList returns an empty ListMatrix whose default comparator is the
// natural order of T.
func NewList[T cmp.Ordered]() *ListMatrix[T] {
	return &ListMatrix[T]{compare: cmp.Compare[T]}
}

// NewListFunc returns an empty ListMatrix over any comparable task type,
// ordered by compare. Returns ErrNilComparator when compare is nil.
func NewListFunc[T comparable](compare CompareFunc[T]) (*ListMatrix[T], error) {
	if compare == nil {
		return nil, ErrNilComparator
	}
	return &ListMatrix[T]{compare: compare}, nil
}

// ---------------------------------------------------------------------------
// Insertion
// ---------------------------------------------------------------------------

// Add appends task to q's sequence. Always changes the matrix.
func (m *ListMatrix[T]) Add(task T, q quadrant.Quadrant) (bool, error) {
	if err := validQuadrant(q); err != nil {
		return false, err
	}
	m.buckets[q.Index()] = append(m.buckets[q.Index()], task)
	return true, nil
}

// AddByFlags appends task to the quadrant classified from the flags.
func (m *ListMatrix[T]) AddByFlags(task T, urgent, important bool) (bool, error) {
	return m.Add(task, quadrant.Classify(urgent, important))
}

// AddAll appends every task to q's sequence in order.
func (m *ListMatrix[T]) AddAll(q quadrant.Quadrant, tasks []T) (bool, error) {
	if err := validQuadrant(q); err != nil {
		return false, err
	}
	if tasks == nil {
		return false, ErrNilTasks
	}
	if len(tasks) == 0 {
		return false, nil
	}
	m.buckets[q.Index()] = append(m.buckets[q.Index()], tasks...)
	return true, nil
}

// AddAllByFlags appends every task to the quadrant classified from the flags.
func (m *ListMatrix[T]) AddAllByFlags(urgent, important bool, tasks []T) (bool, error) {
	return m.AddAll(quadrant.Classify(urgent, important), tasks)
}

// AddAllFromMap appends per-quadrant task slices from a full 4-entry map.
// The map is validated whole before any bucket is touched.
func (m *ListMatrix[T]) AddAllFromMap(bulk map[quadrant.Quadrant][]T) (bool, error) {
	empty, err := validateBulkMap(bulk)
	if err != nil {
		return false, err
	}
	if empty {
		return false, nil
	}
	changed := false
	for _, q := range quadrant.All() {
		if len(bulk[q]) == 0 {
			continue
		}
		m.buckets[q.Index()] = append(m.buckets[q.Index()], bulk[q]...)
		changed = true
	}
	return changed, nil
}

// AddIfAbsentInQuadrant appends task to q only when q does not contain it.
func (m *ListMatrix[T]) AddIfAbsentInQuadrant(task T, q quadrant.Quadrant) (bool, error) {
	if err := validQuadrant(q); err != nil {
		return false, err
	}
	if slices.Contains(m.buckets[q.Index()], task) {
		return false, nil
	}
	m.buckets[q.Index()] = append(m.buckets[q.Index()], task)
	return true, nil
}

// AddIfAbsentInMatrix appends task to q only when no quadrant contains it.
func (m *ListMatrix[T]) AddIfAbsentInMatrix(task T, q quadrant.Quadrant) (bool, error) {
	if err := validQuadrant(q); err != nil {
		return false, err
	}
	if m.Contains(task) {
		return false, nil
	}
	m.buckets[q.Index()] = append(m.buckets[q.Index()], task)
	return true, nil
}

// ---------------------------------------------------------------------------
// Retrieval
// ---------------------------------------------------------------------------

// Tasks returns a copy of q's sequence in insertion order.
func (m *ListMatrix[T]) Tasks(q quadrant.Quadrant) ([]T, error) {
	if err := validQuadrant(q); err != nil {
		return nil, err
	}
	return append([]T{}, m.buckets[q.Index()]...), nil
}

// TasksSorted returns a sorted copy of q's sequence under the default
// comparator. Ties keep insertion order.
func (m *ListMatrix[T]) TasksSorted(q quadrant.Quadrant) ([]T, error) {
	return m.TasksSortedFunc(q, m.compare)
}

// TasksSortedFunc returns a sorted copy of q's sequence under compare.
func (m *ListMatrix[T]) TasksSortedFunc(q quadrant.Quadrant, compare CompareFunc[T]) ([]T, error) {
	if err := validQuadrant(q); err != nil {
		return nil, err
	}
	if compare == nil {
		return nil, ErrNilComparator
	}
	return sortedCopy(m.buckets[q.Index()], compare), nil
}

// AllTasks returns the union of all quadrants with duplicates collapsed,
// scanning quadrants in ImportanceOverUrgency order.
func (m *ListMatrix[T]) AllTasks() []T {
	all := make([]T, 0, m.Size())
	for _, q := range importanceScan() {
		all = append(all, m.buckets[q.Index()]...)
	}
	return dedup(all)
}

// AllTasksSorted flattens the matrix under the default comparator.
func (m *ListMatrix[T]) AllTasksSorted(o quadrant.Ordering) ([]T, error) {
	return m.AllTasksSortedFunc(o, m.compare)
}

// AllTasksSortedFunc flattens the matrix: each quadrant is sorted under
// compare, then concatenated in o's quadrant order.
func (m *ListMatrix[T]) AllTasksSortedFunc(o quadrant.Ordering, compare CompareFunc[T]) ([]T, error) {
	if compare == nil {
		return nil, ErrNilComparator
	}
	return flattenSorted(o, m.bucket, func(quadrant.Quadrant) CompareFunc[T] { return compare })
}

// AllTasksSortedBy flattens the matrix with one comparator per quadrant.
func (m *ListMatrix[T]) AllTasksSortedBy(o quadrant.Ordering, compares map[quadrant.Quadrant]CompareFunc[T]) ([]T, error) {
	compareFor, err := resolveComparators(compares)
	if err != nil {
		return nil, err
	}
	return flattenSorted(o, m.bucket, compareFor)
}

// QuadrantOf returns the first quadrant containing task in
// ImportanceOverUrgency order.
func (m *ListMatrix[T]) QuadrantOf(task T) (quadrant.Quadrant, bool) {
	for _, q := range importanceScan() {
		if slices.Contains(m.buckets[q.Index()], task) {
			return q, true
		}
	}
	return 0, false
}

// QuadrantsOf returns every quadrant containing task.
func (m *ListMatrix[T]) QuadrantsOf(task T) []quadrant.Quadrant {
	found := make([]quadrant.Quadrant, 0, quadrant.Count)
	for _, q := range importanceScan() {
		if slices.Contains(m.buckets[q.Index()], task) {
			found = append(found, q)
		}
	}
	return found
}

// Contains reports whether any quadrant contains task.
func (m *ListMatrix[T]) Contains(task T) bool {
	_, ok := m.QuadrantOf(task)
	return ok
}

// ContainsIn reports whether q's sequence contains task.
func (m *ListMatrix[T]) ContainsIn(task T, q quadrant.Quadrant) (bool, error) {
	if err := validQuadrant(q); err != nil {
		return false, err
	}
	return slices.Contains(m.buckets[q.Index()], task), nil
}

// ContainsByFlags reports whether the quadrant classified from the flags
// contains task.
func (m *ListMatrix[T]) ContainsByFlags(task T, urgent, important bool) bool {
	ok, _ := m.ContainsIn(task, quadrant.Classify(urgent, important))
	return ok
}

// ---------------------------------------------------------------------------
// Index-based access
// ---------------------------------------------------------------------------

// TaskAt returns the task at position i of q's sequence.
func (m *ListMatrix[T]) TaskAt(q quadrant.Quadrant, i int) (T, error) {
	var zero T
	if err := validQuadrant(q); err != nil {
		return zero, err
	}
	tasks := m.buckets[q.Index()]
	if i < 0 || i >= len(tasks) {
		return zero, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, len(tasks))
	}
	return tasks[i], nil
}

// SetTask replaces the task at position i of q's sequence in place and
// returns the previous task.
func (m *ListMatrix[T]) SetTask(task T, q quadrant.Quadrant, i int) (T, error) {
	var zero T
	if err := validQuadrant(q); err != nil {
		return zero, err
	}
	tasks := m.buckets[q.Index()]
	if i < 0 || i >= len(tasks) {
		return zero, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, len(tasks))
	}
	prev := tasks[i]
	tasks[i] = task
	return prev, nil
}

// Subrange returns a copy of q's sequence within the half-open range
// [from, to).
func (m *ListMatrix[T]) Subrange(q quadrant.Quadrant, from, to int) ([]T, error) {
	if err := validQuadrant(q); err != nil {
		return nil, err
	}
	tasks := m.buckets[q.Index()]
	if from < 0 || to > len(tasks) || from > to {
		return nil, fmt.Errorf("%w: range [%d,%d), size %d", ErrIndexOutOfRange, from, to, len(tasks))
	}
	return append([]T{}, tasks[from:to]...), nil
}

// ---------------------------------------------------------------------------
// Removal
// ---------------------------------------------------------------------------

// Remove removes every value-equal occurrence of task from q's sequence.
// For the list variant a single-quadrant removal and an occurrence removal
// coincide.
func (m *ListMatrix[T]) Remove(task T, q quadrant.Quadrant) (bool, error) {
	return m.RemoveOccurrences(task, q)
}

// RemoveOccurrences removes every value-equal occurrence of task from q's
// sequence.
func (m *ListMatrix[T]) RemoveOccurrences(task T, q quadrant.Quadrant) (bool, error) {
	if err := validQuadrant(q); err != nil {
		return false, err
	}
	before := len(m.buckets[q.Index()])
	m.buckets[q.Index()] = slices.DeleteFunc(m.buckets[q.Index()], func(t T) bool { return t == task })
	return len(m.buckets[q.Index()]) != before, nil
}

// RemoveEverywhere removes every occurrence of task from all quadrants.
// Reports true iff at least one quadrant changed.
func (m *ListMatrix[T]) RemoveEverywhere(task T) bool {
	changed := false
	for _, q := range quadrant.All() {
		if removed, _ := m.RemoveOccurrences(task, q); removed {
			changed = true
		}
	}
	return changed
}

// ---------------------------------------------------------------------------
// Clearing and copying
// ---------------------------------------------------------------------------

// ClearQuadrant returns an independent copy with q's sequence emptied.
func (m *ListMatrix[T]) ClearQuadrant(q quadrant.Quadrant) (Matrix[T], error) {
	if err := validQuadrant(q); err != nil {
		return nil, err
	}
	clone := m.clone()
	clone.buckets[q.Index()] = nil
	return clone, nil
}

// ClearUseless returns an independent copy with the EliminateIt sequence
// emptied.
func (m *ListMatrix[T]) ClearUseless() Matrix[T] {
	clone, _ := m.ClearQuadrant(quadrant.EliminateIt)
	return clone
}

// ClearAll returns an independent empty copy preserving the comparator.
func (m *ListMatrix[T]) ClearAll() Matrix[T] {
	return &ListMatrix[T]{compare: m.compare}
}

// Clone returns an independent deep copy of the matrix.
func (m *ListMatrix[T]) Clone() Matrix[T] {
	return m.clone()
}

// ToMap returns a quadrant-keyed deep copy of all sequences.
func (m *ListMatrix[T]) ToMap() map[quadrant.Quadrant][]T {
	out := make(map[quadrant.Quadrant][]T, quadrant.Count)
	for _, q := range quadrant.All() {
		out[q] = append([]T{}, m.buckets[q.Index()]...)
	}
	return out
}

// ToGrid returns the sequences as a 2x2 grid indexed
// [urgentRow][importantCol]; buckets are deep-copied.
func (m *ListMatrix[T]) ToGrid() [2][2][]T {
	var grid [2][2][]T
	for _, q := range quadrant.All() {
		row, col := gridSlot(q)
		grid[row][col] = append([]T{}, m.buckets[q.Index()]...)
	}
	return grid
}

// Size returns the total number of stored tasks, duplicates included.
func (m *ListMatrix[T]) Size() int {
	n := 0
	for i := range m.buckets {
		n += len(m.buckets[i])
	}
	return n
}

// QuadrantSize returns the number of tasks in q's sequence.
func (m *ListMatrix[T]) QuadrantSize(q quadrant.Quadrant) (int, error) {
	if err := validQuadrant(q); err != nil {
		return 0, err
	}
	return len(m.buckets[q.Index()]), nil
}

// Equal reports whether other is a ListMatrix with identical per-quadrant
// sequences (order-sensitive).
func (m *ListMatrix[T]) Equal(other Matrix[T]) bool {
	o, ok := other.(*ListMatrix[T])
	if !ok {
		return false
	}
	for i := range m.buckets {
		if !slices.Equal(m.buckets[i], o.buckets[i]) {
			return false
		}
	}
	return true
}

// bucket exposes a quadrant's live sequence to the shared sort helpers,
// which only read it.
func (m *ListMatrix[T]) bucket(q quadrant.Quadrant) []T {
	return m.buckets[q.Index()]
}

// clone deep-copies the matrix, sharing no bucket storage with the receiver.
func (m *ListMatrix[T]) clone() *ListMatrix[T] {
	out := &ListMatrix[T]{compare: m.compare}
	for i := range m.buckets {
		if len(m.buckets[i]) > 0 {
			out.buckets[i] = append([]T{}, m.buckets[i]...)
		}
	}
	return out
}
