package boxlayout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/grindlemire/go-boxlayout/internal/layout"
)

// NodeID is a handle to a node in a Tree. The low 32 bits index the node slot
// and the high 32 bits hold the slot's generation, so a handle to a removed
// node never aliases a node created later in the same slot. The zero NodeID is
// never valid.
type NodeID = layout.NodeID

func makeID(index, generation uint32) NodeID {
	return NodeID(uint64(generation)<<32 | uint64(index))
}

func splitID(id NodeID) (index, generation uint32) {
	return uint32(id), uint32(id >> 32)
}

// node is one slot of the arena.
type node struct {
	generation uint32
	live       bool

	style    Style
	measure  MeasureFunc
	children []NodeID
	parent   NodeID // zero for roots

	cache     layout.Cache
	unrounded Layout
	final     Layout
}

// Tree owns a set of nodes and computes their layout. A Tree is not safe for
// concurrent use; independent Trees may be used from different goroutines.
type Tree struct {
	nodes    []node
	free     []uint32
	rounding bool
	logger   *slog.Logger
}

// New creates an empty Tree.
func New(opts ...Option) (*Tree, error) {
	t := &Tree{rounding: true}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Len returns the number of live nodes.
func (t *Tree) Len() int {
	return len(t.nodes) - len(t.free)
}

// Clear removes every node. Handles issued before Clear are invalidated.
func (t *Tree) Clear() {
	t.free = t.free[:0]
	for i := range t.nodes {
		n := &t.nodes[i]
		if n.live {
			*n = node{generation: n.generation}
		}
		t.free = append(t.free, uint32(i))
	}
}

// EnableRounding makes ComputeLayout snap layouts to whole pixels.
func (t *Tree) EnableRounding() { t.rounding = true }

// DisableRounding makes Layout return the unrounded geometry.
func (t *Tree) DisableRounding() { t.rounding = false }

// NewLeaf creates a childless node with style.
func (t *Tree) NewLeaf(style Style) NodeID {
	return t.alloc(style, nil)
}

// NewLeafWithMeasure creates a childless node whose content size comes from measure.
func (t *Tree) NewLeafWithMeasure(style Style, measure MeasureFunc) NodeID {
	id := t.alloc(style, nil)
	t.nodes[uint32(id)].measure = measure
	return id
}

// NewWithChildren creates a node and appends children to it. Children that
// already have a parent are moved.
func (t *Tree) NewWithChildren(style Style, children ...NodeID) (NodeID, error) {
	for _, c := range children {
		if _, err := t.get(c); err != nil {
			return 0, err
		}
	}
	id := t.alloc(style, nil)
	for _, c := range children {
		if err := t.AddChild(id, c); err != nil {
			return 0, err
		}
	}
	return id, nil
}

func (t *Tree) alloc(style Style, children []NodeID) NodeID {
	var index uint32
	if n := len(t.free); n > 0 {
		index = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		index = uint32(len(t.nodes))
		t.nodes = append(t.nodes, node{})
	}
	n := &t.nodes[index]
	n.generation++
	n.live = true
	n.style = style
	n.children = children
	return makeID(index, n.generation)
}

// get returns the live node for id.
func (t *Tree) get(id NodeID) (*node, error) {
	index, gen := splitID(id)
	if int(index) >= len(t.nodes) {
		return nil, fmt.Errorf("node %d: %w", id, ErrInvalidNode)
	}
	n := &t.nodes[index]
	if !n.live || n.generation != gen {
		return nil, fmt.Errorf("node %d: %w", id, ErrInvalidNode)
	}
	return n, nil
}

// mustGet is get for the layout engine, which is only ever handed handles
// reachable from a validated root.
func (t *Tree) mustGet(id NodeID) *node {
	n, err := t.get(id)
	if err != nil {
		panic("boxlayout: " + err.Error())
	}
	return n
}

// Style returns node's style.
func (t *Tree) Style(id NodeID) (Style, error) {
	n, err := t.get(id)
	if err != nil {
		return Style{}, err
	}
	return n.style, nil
}

// SetStyle replaces node's style and marks it dirty.
func (t *Tree) SetStyle(id NodeID, style Style) error {
	n, err := t.get(id)
	if err != nil {
		return err
	}
	n.style = style
	return t.MarkDirty(id)
}

// SetMeasure replaces node's measure function and marks it dirty. A nil
// function makes the node size from its style alone.
func (t *Tree) SetMeasure(id NodeID, measure MeasureFunc) error {
	n, err := t.get(id)
	if err != nil {
		return err
	}
	n.measure = measure
	return t.MarkDirty(id)
}

// Contains reports whether id refers to a live node.
func (t *Tree) Contains(id NodeID) bool {
	_, err := t.get(id)
	return err == nil
}

func (t *Tree) log() *slog.Logger {
	if t.logger != nil {
		return t.logger
	}
	return Logger()
}

func (t *Tree) debugEnabled() bool {
	return t.log().Enabled(context.Background(), slog.LevelDebug)
}
