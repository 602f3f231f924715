// SPDX-License-Identifier: MIT

package matrix

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/eisenhower/quadrant"
)

// setBucket stores one quadrant of a SetMatrix: a membership map paired
// with an insertion-order slice so unsorted views and sort tie-breaks stay
// deterministic.
type setBucket[T comparable] struct {
	members map[T]struct{}
	order   []T
}

func newSetBucket[T comparable]() setBucket[T] {
	return setBucket[T]{members: make(map[T]struct{})}
}

func (b *setBucket[T]) has(task T) bool {
	_, ok := b.members[task]
	return ok
}

func (b *setBucket[T]) add(task T) {
	b.members[task] = struct{}{}
	b.order = append(b.order, task)
}

func (b *setBucket[T]) remove(task T) bool {
	if !b.has(task) {
		return false
	}
	delete(b.members, task)
	if i := slices.Index(b.order, task); i >= 0 {
		b.order = slices.Delete(b.order, i, i+1)
	}
	return true
}

func (b *setBucket[T]) clone() setBucket[T] {
	out := setBucket[T]{members: make(map[T]struct{}, len(b.members))}
	for task := range b.members {
		out.members[task] = struct{}{}
	}
	out.order = append(out.order, b.order...)
	return out
}

// SetMatrix is the globally unique Eisenhower container: a task may occur
// in at most one quadrant, at most once. Add is a no-op when the task
// already exists anywhere in the matrix.
//
// Use NewSet or NewSetFunc; inserting into or removing from a zero-value
// SetMatrix fails with ErrUninitializedQuadrant (RemoveEverywhere, which
// carries no error return, reports false on a zero value).
type SetMatrix[T comparable] struct {
	compare CompareFunc[T]
	buckets [quadrant.Count]setBucket[T]
}

// NewSet returns an empty SetMatrix whose default comparator is the natural
// order of T.
func NewSet[T cmp.Ordered]() *SetMatrix[T] {
	m := &SetMatrix[T]{compare: cmp.Compare[T]}
	m.initBuckets()
	return m
}

// NewSetFunc returns an empty SetMatrix over any comparable task type,
// ordered by compare. Returns ErrNilComparator when compare is nil.
func NewSetFunc[T comparable](compare CompareFunc[T]) (*SetMatrix[T], error) {
	if compare == nil {
		return nil, ErrNilComparator
	}
	m := &SetMatrix[T]{compare: compare}
	m.initBuckets()
	return m, nil
}

func (m *SetMatrix[T]) initBuckets() {
	for i := range m.buckets {
		m.buckets[i] = newSetBucket[T]()
	}
}

// initialized guards against a zero-value SetMatrix whose membership maps
// were never built.
func (m *SetMatrix[T]) initialized() error {
	for i := range m.buckets {
		if m.buckets[i].members == nil {
			return ErrUninitializedQuadrant
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Insertion
// ---------------------------------------------------------------------------

// Add inserts task into q unless the task already exists anywhere in the
// matrix, in which case it is a no-op reporting false.
func (m *SetMatrix[T]) Add(task T, q quadrant.Quadrant) (bool, error) {
	if err := validQuadrant(q); err != nil {
		return false, err
	}
	if err := m.initialized(); err != nil {
		return false, err
	}
	if m.Contains(task) {
		return false, nil
	}
	m.buckets[q.Index()].add(task)
	return true, nil
}

// AddByFlags inserts task into the quadrant classified from the flags.
func (m *SetMatrix[T]) AddByFlags(task T, urgent, important bool) (bool, error) {
	return m.Add(task, quadrant.Classify(urgent, important))
}

// AddAll inserts every task into q, skipping tasks already present anywhere.
// Reports whether any insertion happened.
func (m *SetMatrix[T]) AddAll(q quadrant.Quadrant, tasks []T) (bool, error) {
	if err := validQuadrant(q); err != nil {
		return false, err
	}
	if tasks == nil {
		return false, ErrNilTasks
	}
	if err := m.initialized(); err != nil {
		return false, err
	}
	changed := false
	for _, task := range tasks {
		if m.Contains(task) {
			continue
		}
		m.buckets[q.Index()].add(task)
		changed = true
	}
	return changed, nil
}

// AddAllByFlags inserts every task into the quadrant classified from the
// flags.
func (m *SetMatrix[T]) AddAllByFlags(urgent, important bool, tasks []T) (bool, error) {
	return m.AddAll(quadrant.Classify(urgent, important), tasks)
}

// AddAllFromMap inserts per-quadrant task slices from a full 4-entry map,
// preserving global uniqueness. The map is validated whole before any
// bucket is touched; quadrants are processed in classical order.
func (m *SetMatrix[T]) AddAllFromMap(bulk map[quadrant.Quadrant][]T) (bool, error) {
	empty, err := validateBulkMap(bulk)
	if err != nil {
		return false, err
	}
	if empty {
		return false, nil
	}
	if err = m.initialized(); err != nil {
		return false, err
	}
	changed := false
	for _, q := range quadrant.All() {
		for _, task := range bulk[q] {
			if m.Contains(task) {
				continue
			}
			m.buckets[q.Index()].add(task)
			changed = true
		}
	}
	return changed, nil
}

// AddIfAbsentInQuadrant inserts task into q only when q does not contain
// it. Global uniqueness still applies: a task present in another quadrant
// is not inserted.
func (m *SetMatrix[T]) AddIfAbsentInQuadrant(task T, q quadrant.Quadrant) (bool, error) {
	return m.Add(task, q)
}

// AddIfAbsentInMatrix inserts task into q only when no quadrant contains
// it. Equivalent to Add for the set variant.
func (m *SetMatrix[T]) AddIfAbsentInMatrix(task T, q quadrant.Quadrant) (bool, error) {
	return m.Add(task, q)
}

// ---------------------------------------------------------------------------
// Retrieval
// ---------------------------------------------------------------------------

// Tasks returns a copy of q's bucket in insertion order.
func (m *SetMatrix[T]) Tasks(q quadrant.Quadrant) ([]T, error) {
	if err := validQuadrant(q); err != nil {
		return nil, err
	}
	return append([]T{}, m.buckets[q.Index()].order...), nil
}

// TasksSorted returns a sorted copy of q's bucket under the default
// comparator.
func (m *SetMatrix[T]) TasksSorted(q quadrant.Quadrant) ([]T, error) {
	return m.TasksSortedFunc(q, m.compare)
}

// TasksSortedFunc returns a sorted copy of q's bucket under compare.
// Ties keep insertion order.
func (m *SetMatrix[T]) TasksSortedFunc(q quadrant.Quadrant, compare CompareFunc[T]) ([]T, error) {
	if err := validQuadrant(q); err != nil {
		return nil, err
	}
	if compare == nil {
		return nil, ErrNilComparator
	}
	return sortedCopy(m.buckets[q.Index()].order, compare), nil
}

// AllTasks returns every stored task, scanning quadrants in
// ImportanceOverUrgency order. Global uniqueness makes deduplication a
// no-op here.
func (m *SetMatrix[T]) AllTasks() []T {
	all := make([]T, 0, m.Size())
	for _, q := range importanceScan() {
		all = append(all, m.buckets[q.Index()].order...)
	}
	return all
}

// AllTasksSorted flattens the matrix under the default comparator.
func (m *SetMatrix[T]) AllTasksSorted(o quadrant.Ordering) ([]T, error) {
	return m.AllTasksSortedFunc(o, m.compare)
}

// AllTasksSortedFunc flattens the matrix: each quadrant is sorted under
// compare, then concatenated in o's quadrant order.
func (m *SetMatrix[T]) AllTasksSortedFunc(o quadrant.Ordering, compare CompareFunc[T]) ([]T, error) {
	if compare == nil {
		return nil, ErrNilComparator
	}
	return flattenSorted(o, m.bucket, func(quadrant.Quadrant) CompareFunc[T] { return compare })
}

// AllTasksSortedBy flattens the matrix with one comparator per quadrant.
func (m *SetMatrix[T]) AllTasksSortedBy(o quadrant.Ordering, compares map[quadrant.Quadrant]CompareFunc[T]) ([]T, error) {
	compareFor, err := resolveComparators(compares)
	if err != nil {
		return nil, err
	}
	return flattenSorted(o, m.bucket, compareFor)
}

// QuadrantOf returns the quadrant containing task. At most one quadrant can
// contain it.
func (m *SetMatrix[T]) QuadrantOf(task T) (quadrant.Quadrant, bool) {
	for _, q := range importanceScan() {
		if m.buckets[q.Index()].has(task) {
			return q, true
		}
	}
	return 0, false
}

// QuadrantsOf returns the quadrants containing task: empty or a single
// element for the set variant.
func (m *SetMatrix[T]) QuadrantsOf(task T) []quadrant.Quadrant {
	if q, ok := m.QuadrantOf(task); ok {
		return []quadrant.Quadrant{q}
	}
	return []quadrant.Quadrant{}
}

// Contains reports whether any quadrant contains task.
func (m *SetMatrix[T]) Contains(task T) bool {
	_, ok := m.QuadrantOf(task)
	return ok
}

// ContainsIn reports whether q's bucket contains task.
func (m *SetMatrix[T]) ContainsIn(task T, q quadrant.Quadrant) (bool, error) {
	if err := validQuadrant(q); err != nil {
		return false, err
	}
	return m.buckets[q.Index()].has(task), nil
}

// ContainsByFlags reports whether the quadrant classified from the flags
// contains task.
func (m *SetMatrix[T]) ContainsByFlags(task T, urgent, important bool) bool {
	ok, _ := m.ContainsIn(task, quadrant.Classify(urgent, important))
	return ok
}

// IsUrgent reports the urgency flag of the quadrant holding task.
// Returns ErrTaskNotFound when task is absent from the whole matrix.
func (m *SetMatrix[T]) IsUrgent(task T) (bool, error) {
	q, ok := m.QuadrantOf(task)
	if !ok {
		return false, ErrTaskNotFound
	}
	return q.IsUrgent(), nil
}

// IsImportant reports the importance flag of the quadrant holding task.
// Returns ErrTaskNotFound when task is absent from the whole matrix.
func (m *SetMatrix[T]) IsImportant(task T) (bool, error) {
	q, ok := m.QuadrantOf(task)
	if !ok {
		return false, ErrTaskNotFound
	}
	return q.IsImportant(), nil
}

// ---------------------------------------------------------------------------
// Removal
// ---------------------------------------------------------------------------

// Remove removes task from q's bucket. At most one occurrence can exist.
func (m *SetMatrix[T]) Remove(task T, q quadrant.Quadrant) (bool, error) {
	if err := validQuadrant(q); err != nil {
		return false, err
	}
	if err := m.initialized(); err != nil {
		return false, err
	}
	return m.buckets[q.Index()].remove(task), nil
}

// RemoveOccurrences removes task from q's bucket; identical to Remove for
// the set variant.
func (m *SetMatrix[T]) RemoveOccurrences(task T, q quadrant.Quadrant) (bool, error) {
	return m.Remove(task, q)
}

// RemoveEverywhere removes task from whichever quadrant holds it.
// Reports true iff the matrix changed; a zero-value matrix holds nothing
// and reports false.
func (m *SetMatrix[T]) RemoveEverywhere(task T) bool {
	for i := range m.buckets {
		if m.buckets[i].remove(task) {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// Clearing and copying
// ---------------------------------------------------------------------------

// ClearQuadrant returns an independent copy with q's bucket emptied.
func (m *SetMatrix[T]) ClearQuadrant(q quadrant.Quadrant) (Matrix[T], error) {
	if err := validQuadrant(q); err != nil {
		return nil, err
	}
	clone := m.clone()
	clone.buckets[q.Index()] = newSetBucket[T]()
	return clone, nil
}

// ClearUseless returns an independent copy with the EliminateIt bucket
// emptied.
func (m *SetMatrix[T]) ClearUseless() Matrix[T] {
	clone, _ := m.ClearQuadrant(quadrant.EliminateIt)
	return clone
}

// ClearAll returns an independent empty copy preserving the comparator.
func (m *SetMatrix[T]) ClearAll() Matrix[T] {
	out := &SetMatrix[T]{compare: m.compare}
	out.initBuckets()
	return out
}

// Clone returns an independent deep copy of the matrix.
func (m *SetMatrix[T]) Clone() Matrix[T] {
	return m.clone()
}

// ToMap returns a quadrant-keyed deep copy of all buckets in insertion
// order.
func (m *SetMatrix[T]) ToMap() map[quadrant.Quadrant][]T {
	out := make(map[quadrant.Quadrant][]T, quadrant.Count)
	for _, q := range quadrant.All() {
		out[q] = append([]T{}, m.buckets[q.Index()].order...)
	}
	return out
}

// ToGrid returns the buckets as a 2x2 grid indexed [urgentRow][importantCol];
// buckets are deep-copied.
func (m *SetMatrix[T]) ToGrid() [2][2][]T {
	var grid [2][2][]T
	for _, q := range quadrant.All() {
		row, col := gridSlot(q)
		grid[row][col] = append([]T{}, m.buckets[q.Index()].order...)
	}
	return grid
}

// Size returns the total number of stored tasks.
func (m *SetMatrix[T]) Size() int {
	n := 0
	for i := range m.buckets {
		n += len(m.buckets[i].order)
	}
	return n
}

// QuadrantSize returns the number of tasks in q's bucket.
func (m *SetMatrix[T]) QuadrantSize(q quadrant.Quadrant) (int, error) {
	if err := validQuadrant(q); err != nil {
		return 0, err
	}
	return len(m.buckets[q.Index()].order), nil
}

// Equal reports whether other is a SetMatrix with identical per-quadrant
// membership (insertion order ignored).
func (m *SetMatrix[T]) Equal(other Matrix[T]) bool {
	o, ok := other.(*SetMatrix[T])
	if !ok {
		return false
	}
	for i := range m.buckets {
		if len(m.buckets[i].members) != len(o.buckets[i].members) {
			return false
		}
		for task := range m.buckets[i].members {
			if !o.buckets[i].has(task) {
				return false
			}
		}
	}
	return true
}

// bucket exposes a quadrant's insertion-order view to the shared sort
// helpers, which only read it.
func (m *SetMatrix[T]) bucket(q quadrant.Quadrant) []T {
	return m.buckets[q.Index()].order
}

// clone deep-copies the matrix, sharing no bucket storage with the
// receiver.
func (m *SetMatrix[T]) clone() *SetMatrix[T] {
	out := &SetMatrix[T]{compare: m.compare}
	for i := range m.buckets {
		out.buckets[i] = m.buckets[i].clone()
	}
	return out
}
