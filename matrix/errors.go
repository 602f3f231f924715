// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All public operations return these sentinels (optionally wrapped with
// context via fmt.Errorf("...: %w", ErrX)); tests match them with errors.Is.
// No operation panics on a caller-triggered condition, and every operation
// validates its arguments before mutating any state.

package matrix

import "errors"

var (
	// ErrUnknownQuadrant indicates a Quadrant argument outside the four
	// defined values.
	ErrUnknownQuadrant = errors.New("matrix: unknown quadrant")

	// ErrNilComparator indicates a nil CompareFunc was supplied where a
	// comparison is required.
	ErrNilComparator = errors.New("matrix: nil comparator")

	// ErrNilTasks indicates a nil task slice was supplied to a bulk insert.
	ErrNilTasks = errors.New("matrix: nil tasks slice")

	// ErrNilMap indicates a nil quadrant-keyed map was supplied.
	ErrNilMap = errors.New("matrix: nil quadrant map")

	// ErrMissingQuadrant indicates a bulk per-quadrant map omits one of the
	// four quadrants.
	ErrMissingQuadrant = errors.New("matrix: quadrant missing from map")

	// ErrMissingComparator indicates a per-quadrant comparator map omits a
	// comparator for one of the four quadrants.
	ErrMissingComparator = errors.New("matrix: comparator missing for quadrant")

	// ErrIndexOutOfRange indicates a list-variant index or sub-range outside
	// the quadrant's [0, size) bounds.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrTaskNotFound indicates a lookup that requires the task to exist
	// somewhere in the matrix found it nowhere.
	ErrTaskNotFound = errors.New("matrix: task not found in matrix")

	// ErrUninitializedQuadrant indicates a quadrant bucket was never set up.
	// Unreachable through the package constructors; observable only on a
	// zero-value SetMatrix used without NewSet/NewSetFunc.
	ErrUninitializedQuadrant = errors.New("matrix: quadrant storage not initialized")
)
