// Package quadrant models the Eisenhower classification scheme: four fixed
// quadrants derived from two orthogonal booleans (urgency, importance), plus
// the two policies for flattening them into a single priority order.
//
// What:
//
//   - Quadrant: DoItNow, ScheduleIt, DelegateOrOptimizeIt, EliminateIt.
//   - Classify(urgent, important) is total and bijective over the four
//     boolean combinations; FromNumber round-trips the classical 1-4 numbers.
//   - Ordering: ImportanceOverUrgency or UrgencyOverImportance; Sequence
//     yields the fixed permutation for either policy.
//
// Why:
//
//   - The matrix package keys all storage and merge order on these values.
//   - Both orderings begin with DoItNow and end with EliminateIt, so the
//     extremes are stable regardless of policy.
//
// Errors:
//
//   - ErrNumberOutOfRange: FromNumber given a number outside 1-4.
//   - ErrUnknownOrdering: Sequence given an undefined Ordering value.
//
// All operations are pure, O(1), and allocation-free.
package quadrant
