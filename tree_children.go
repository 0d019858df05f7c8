package boxlayout

import (
	"fmt"
	"slices"
)

// AddChild appends child to parent's children. A child that already has a
// parent is moved.
func (t *Tree) AddChild(parent, child NodeID) error {
	p, err := t.get(parent)
	if err != nil {
		return err
	}
	return t.insert(parent, p, len(p.children), child)
}

// InsertChildAt inserts child into parent's children at index. index may equal
// the child count to append.
func (t *Tree) InsertChildAt(parent NodeID, index int, child NodeID) error {
	p, err := t.get(parent)
	if err != nil {
		return err
	}
	if index < 0 || index > len(p.children) {
		return fmt.Errorf("insert at %d into node %d with %d children: %w", index, parent, len(p.children), ErrChildIndexOutOfBounds)
	}
	return t.insert(parent, p, index, child)
}

func (t *Tree) insert(parent NodeID, p *node, index int, child NodeID) error {
	c, err := t.get(child)
	if err != nil {
		return err
	}
	if t.isAncestor(child, parent) {
		return fmt.Errorf("add node %d under %d: %w", child, parent, ErrCycle)
	}
	if c.parent != 0 {
		old := t.mustGet(c.parent)
		i := slices.Index(old.children, child)
		if c.parent == parent && i < index {
			index--
		}
		t.detach(c.parent, i)
	}
	p.children = slices.Insert(p.children, index, child)
	c.parent = parent
	return t.MarkDirty(parent)
}

// isAncestor reports whether a is b or one of b's ancestors.
func (t *Tree) isAncestor(a, b NodeID) bool {
	for id := b; id != 0; id = t.mustGet(id).parent {
		if id == a {
			return true
		}
	}
	return false
}

// detach removes the child at index from parent and marks parent dirty.
func (t *Tree) detach(parent NodeID, index int) NodeID {
	p := t.mustGet(parent)
	child := p.children[index]
	p.children = slices.Delete(p.children, index, index+1)
	t.mustGet(child).parent = 0
	t.invalidate(parent)
	return child
}

// RemoveChild removes child from parent's children. The child stays in the
// tree as a root.
func (t *Tree) RemoveChild(parent, child NodeID) (NodeID, error) {
	p, err := t.get(parent)
	if err != nil {
		return 0, err
	}
	if _, err := t.get(child); err != nil {
		return 0, err
	}
	i := slices.Index(p.children, child)
	if i < 0 {
		return 0, fmt.Errorf("node %d is not a child of %d: %w", child, parent, ErrInvalidNode)
	}
	return t.detach(parent, i), nil
}

// RemoveChildAt removes and returns the child at index.
func (t *Tree) RemoveChildAt(parent NodeID, index int) (NodeID, error) {
	p, err := t.get(parent)
	if err != nil {
		return 0, err
	}
	if index < 0 || index >= len(p.children) {
		return 0, fmt.Errorf("remove at %d from node %d with %d children: %w", index, parent, len(p.children), ErrChildIndexOutOfBounds)
	}
	return t.detach(parent, index), nil
}

// ReplaceChildAt puts child at index and returns the node it replaced, which
// stays in the tree as a root.
func (t *Tree) ReplaceChildAt(parent NodeID, index int, child NodeID) (NodeID, error) {
	p, err := t.get(parent)
	if err != nil {
		return 0, err
	}
	if index < 0 || index >= len(p.children) {
		return 0, fmt.Errorf("replace at %d in node %d with %d children: %w", index, parent, len(p.children), ErrChildIndexOutOfBounds)
	}
	if p.children[index] == child {
		return child, nil
	}
	if _, err := t.get(child); err != nil {
		return 0, err
	}
	if t.isAncestor(child, parent) {
		return 0, fmt.Errorf("add node %d under %d: %w", child, parent, ErrCycle)
	}
	old := t.detach(parent, index)
	if err := t.insert(parent, p, min(index, len(p.children)), child); err != nil {
		return 0, err
	}
	return old, nil
}

// SetChildren replaces all of parent's children.
func (t *Tree) SetChildren(parent NodeID, children ...NodeID) error {
	p, err := t.get(parent)
	if err != nil {
		return err
	}
	for _, c := range children {
		if _, err := t.get(c); err != nil {
			return err
		}
		if t.isAncestor(c, parent) {
			return fmt.Errorf("add node %d under %d: %w", c, parent, ErrCycle)
		}
	}
	for len(p.children) > 0 {
		t.detach(parent, len(p.children)-1)
	}
	for _, c := range children {
		if err := t.insert(parent, p, len(p.children), c); err != nil {
			return err
		}
	}
	return nil
}

// Remove deletes node from the tree. It is detached from its parent and its
// children become roots. The handle is invalid afterwards.
func (t *Tree) Remove(id NodeID) error {
	n, err := t.get(id)
	if err != nil {
		return err
	}
	if n.parent != 0 {
		parent := n.parent
		t.detach(parent, slices.Index(t.mustGet(parent).children, id))
	}
	for _, c := range n.children {
		t.mustGet(c).parent = 0
	}
	index, _ := splitID(id)
	*n = node{generation: n.generation}
	t.free = append(t.free, index)
	return nil
}

// Children returns a copy of node's children.
func (t *Tree) Children(id NodeID) ([]NodeID, error) {
	n, err := t.get(id)
	if err != nil {
		return nil, err
	}
	return slices.Clone(n.children), nil
}

// ChildAt returns the child at index.
func (t *Tree) ChildAt(id NodeID, index int) (NodeID, error) {
	n, err := t.get(id)
	if err != nil {
		return 0, err
	}
	if index < 0 || index >= len(n.children) {
		return 0, fmt.Errorf("child %d of node %d with %d children: %w", index, id, len(n.children), ErrChildIndexOutOfBounds)
	}
	return n.children[index], nil
}

// ChildCount returns the number of children of node.
func (t *Tree) ChildCount(id NodeID) (int, error) {
	n, err := t.get(id)
	if err != nil {
		return 0, err
	}
	return len(n.children), nil
}

// Parent returns node's parent, or false for a root or an invalid handle.
func (t *Tree) Parent(id NodeID) (NodeID, bool) {
	n, err := t.get(id)
	if err != nil || n.parent == 0 {
		return 0, false
	}
	return n.parent, true
}
