package quadrant

import "errors"

var (
	// ErrNumberOutOfRange indicates a classical quadrant number outside 1-4.
	ErrNumberOutOfRange = errors.New("quadrant: number out of range [1,4]")
	// ErrUnknownOrdering indicates an Ordering value outside the two defined policies.
	ErrUnknownOrdering = errors.New("quadrant: unknown ordering")
)
