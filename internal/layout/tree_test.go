package layout

import "math"

// testTree is a minimal slice-backed Tree for exercising the engine.
type testTree struct {
	nodes []*testNode
}

type testNode struct {
	style    Style
	children []NodeID
	layout   Layout
	cache    Cache
	measure  MeasureFunc
	measured int
}

func newTestTree() *testTree { return &testTree{} }

func (t *testTree) add(style Style, children ...NodeID) NodeID {
	t.nodes = append(t.nodes, &testNode{style: style, children: children})
	return NodeID(len(t.nodes) - 1)
}

// leaf adds a childless node whose measure function returns a fixed size and
// counts its invocations.
func (t *testTree) leaf(style Style, w, h float32) NodeID {
	id := t.add(style)
	n := t.nodes[id]
	n.measure = func(known OptSize, _ AvailSize) Size {
		n.measured++
		return Size{Width: known.Width.UnwrapOr(w), Height: known.Height.UnwrapOr(h)}
	}
	return id
}

func (t *testTree) LayoutStyle(n NodeID) *Style { return &t.nodes[n].style }
func (t *testTree) LayoutChildren(n NodeID) []NodeID { return t.nodes[n].children }
func (t *testTree) SetLayout(n NodeID, l Layout) { t.nodes[n].layout = l }
func (t *testTree) GetLayout(n NodeID) Layout { return t.nodes[n].layout }
func (t *testTree) LayoutCache(n NodeID) *Cache { return &t.nodes[n].cache }
func (t *testTree) Measure(n NodeID) MeasureFunc { return t.nodes[n].measure }
func (t *testTree) size(n NodeID) Size { return t.nodes[n].layout.Size }
func (t *testTree) loc(n NodeID) Point { return t.nodes[n].layout.Location }
func (t *testTree) compute(root NodeID, w, h AvailableSpace) {
	ComputeRootLayout(t, root, AvailSize{Width: w, Height: h})
}

// uncachedTree hands out a fresh cache on every lookup so nothing is ever reused.
type uncachedTree struct {
	*testTree
}

func (u uncachedTree) LayoutCache(NodeID) *Cache { return &Cache{} }

// styled returns DefaultStyle modified by fn.
func styled(fn func(s *Style)) Style {
	s := DefaultStyle()
	fn(&s)
	return s
}

// sized returns DefaultStyle with a fixed border-box size.
func sized(w, h float32) Style {
	return styled(func(s *Style) {
		s.Width = Length(w)
		s.Height = Length(h)
	})
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}
