// Package boxlayout computes CSS box layout for a tree of nodes: flexbox,
// grid and block flow, with absolute positioning, min/max constraints,
// percentages and calc() values.
//
// Build a Tree, add nodes with NewLeaf and NewWithChildren, then call
// ComputeLayout on the root and read each node's geometry back with Layout:
//
//	tree, _ := boxlayout.New()
//	child := tree.NewLeaf(boxlayout.DefaultStyle())
//	root, _ := tree.NewWithChildren(boxlayout.DefaultStyle(), child)
//	_ = tree.ComputeLayout(root, boxlayout.DefiniteSize(800, 600))
//	l, _ := tree.Layout(child)
//
// Layouts are cached per node. Mutating methods invalidate the caches of the
// affected node and its ancestors, so recomputing after a small change only
// redoes the work that change requires.
package boxlayout
