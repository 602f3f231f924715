// Package matrix implements the Eisenhower matrix container: a
// quadrant-keyed multi-collection of caller-supplied tasks with uniform
// insert, lookup, removal, and two-level sorted retrieval.
//
// What:
//
//   - Matrix[T] is the shared contract of the two storage variants.
//   - ListMatrix[T]: each quadrant is an ordered, index-addressable,
//     duplicate-permitting sequence (extra ops: TaskAt, SetTask, Subrange).
//   - SetMatrix[T]: a task occurs at most once anywhere in the whole matrix
//     (extra ops: IsUrgent, IsImportant keyed by task).
//   - AllTasksSorted* flattens the matrix with a two-level sort: tasks are
//     sorted within each quadrant, then the sorted quadrants are
//     concatenated in the order given by a quadrant.Ordering.
//
// Why:
//
//   - Prioritization: bucket tasks by urgency×importance, then read them
//     back as one linear priority list under either ordering policy.
//   - Revertible clearing: ClearQuadrant/ClearAll/Clone return independent
//     copies sharing no bucket storage with the original, so fluent chains
//     can be rolled back by keeping the earlier value.
//
// Tasks are opaque: the matrix only ever applies == (membership, removal)
// and a CompareFunc (sorted retrieval). Sorting is stable, with insertion
// order as the tie-break in both variants.
//
// Complexity:
//
//   - Add/Contains/Remove: O(k) over the target quadrant's size
//     (O(1) membership in SetMatrix).
//   - Tasks/ToMap/ToGrid/Clone: O(n) copies.
//   - TasksSorted/AllTasksSorted*: O(n log n), never mutating stored order.
//
// Errors:
//
//   - ErrUnknownQuadrant: a Quadrant argument outside the four values.
//   - ErrNilComparator, ErrNilTasks, ErrNilMap: nil required arguments.
//   - ErrMissingQuadrant / ErrMissingComparator: incomplete 4-entry maps.
//   - ErrIndexOutOfRange: list-variant index access outside [0, size).
//   - ErrTaskNotFound: IsUrgent/IsImportant on an absent task.
//   - ErrUninitializedQuadrant: zero-value SetMatrix mutated without a
//     constructor.
//
// The package performs no locking: one matrix instance must not be mutated
// concurrently without external synchronization.
package matrix
