package layout

// NodeID is an opaque handle to a node held by a Tree. The layout engine never
// interprets it; it only passes it back to the Tree.
type NodeID uint64

// MeasureFunc reports the content size of a leaf given the dimensions already
// fixed by the parent and the space on offer. It must be pure with respect to
// its arguments since its results are cached.
type MeasureFunc func(known OptSize, available AvailSize) Size

// Tree is the storage the layout engine reads styles from and writes
// unrounded float layouts and cache entries back to. Children are laid out
// under a known size and AvailableSpace pair passed down from their parent.
type Tree interface {
	// LayoutStyle returns the style of node. The engine never mutates it.
	LayoutStyle(node NodeID) *Style

	// LayoutChildren returns node's children in document order.
	LayoutChildren(node NodeID) []NodeID

	// SetLayout is called by the layout engine to store the unrounded layout.
	SetLayout(node NodeID, l Layout)

	// GetLayout returns the last stored layout.
	GetLayout(node NodeID) Layout

	// LayoutCache returns the node's cache. It must not be nil.
	LayoutCache(node NodeID) *Cache

	// Measure returns the leaf measure function for node, or nil.
	Measure(node NodeID) MeasureFunc
}
