package boxlayout

import "errors"

var (
	// ErrInvalidNode is returned when a NodeID does not refer to a live node,
	// either because it was never issued or because the node was removed.
	ErrInvalidNode = errors.New("invalid node")

	// ErrChildIndexOutOfBounds is returned when a child index is past the end
	// of a node's children.
	ErrChildIndexOutOfBounds = errors.New("child index out of bounds")

	// ErrCycle is returned when an operation would make a node its own ancestor.
	ErrCycle = errors.New("node would become its own ancestor")
)
