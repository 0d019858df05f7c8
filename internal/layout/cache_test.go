package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shoenig/test/must"
)

func TestCacheGetStore(t *testing.T) {
	var c Cache
	must.True(t, c.IsEmpty())

	known := OptSize{Width: Some(10)}
	avail := AvailSize{Width: Definite(100), Height: MaxContent}
	c.Store(known, avail, ComputeSize, outputFromSize(Size{Width: 10, Height: 4}, Size{}))
	must.False(t, c.IsEmpty())

	type tc struct {
		known OptSize
		avail AvailSize
		mode  RunMode
		hit   bool
	}

	tests := map[string]tc{
		"same inputs":                {known: known, avail: avail, mode: ComputeSize, hit: true},
		"known equals output":        {known: OptSize{Width: Some(10), Height: Some(4)}, avail: avail, mode: ComputeSize, hit: true},
		"known axis ignores space":   {known: known, avail: AvailSize{Width: Definite(50), Height: MaxContent}, mode: ComputeSize, hit: true},
		"unknown axis space differs": {known: known, avail: AvailSize{Width: Definite(100), Height: MinContent}, mode: ComputeSize},
		"different known width":      {known: OptSize{Width: Some(11)}, avail: avail, mode: ComputeSize},
		"layout mode is separate":    {known: known, avail: avail, mode: PerformLayout},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out, ok := c.Get(tt.known, tt.avail, tt.mode)
			if ok != tt.hit {
				t.Fatalf("Get() hit = %v, want %v", ok, tt.hit)
			}
			if ok && out.Size != (Size{Width: 10, Height: 4}) {
				t.Errorf("Get() size = %+v, want 10x4", out.Size)
			}
		})
	}

	must.True(t, c.Clear())
	must.False(t, c.Clear())
	must.True(t, c.IsEmpty())
}

func TestCacheSlots(t *testing.T) {
	type tc struct {
		known OptSize
		avail AvailSize
		want  int
	}

	w, h := Some(1), Some(1)
	tests := map[string]tc{
		"both known":             {known: OptSize{Width: w, Height: h}, want: 0},
		"width known":            {known: OptSize{Width: w}, avail: AvailSize{Height: MaxContent}, want: 1},
		"width known min height": {known: OptSize{Width: w}, avail: AvailSize{Height: MinContent}, want: 2},
		"height known":           {known: OptSize{Height: h}, avail: AvailSize{Width: Definite(3)}, want: 3},
		"height known min width": {known: OptSize{Height: h}, avail: AvailSize{Width: MinContent}, want: 4},
		"neither":                {avail: AvailSize{Width: MaxContent, Height: MaxContent}, want: 5},
		"neither min height":     {avail: AvailSize{Width: MaxContent, Height: MinContent}, want: 6},
		"neither min width":      {avail: AvailSize{Width: MinContent, Height: Definite(2)}, want: 7},
		"neither min both":       {avail: AvailSize{Width: MinContent, Height: MinContent}, want: 8},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := cacheSlot(tt.known, tt.avail); got != tt.want {
				t.Errorf("cacheSlot() = %d, want %d", got, tt.want)
			}
		})
	}
}

// chain nests depth auto-sized flex containers around a measured leaf. When
// mixed is set, every other container is a column.
func chain(depth int, mixed bool) (*testTree, NodeID, NodeID) {
	tree := newTestTree()
	leaf := tree.leaf(DefaultStyle(), 20, 10)
	node := leaf
	for i := range depth {
		s := DefaultStyle()
		if mixed && i%2 == 1 {
			s.Direction = Column
		}
		node = tree.add(s, node)
	}
	return tree, node, leaf
}

func TestCacheBoundsDeepTrees(t *testing.T) {
	type tc struct {
		mixed    bool
		maxCalls int
	}

	tests := map[string]tc{
		"row chain":          {mixed: false, maxCalls: 4},
		"row and column mix": {mixed: true, maxCalls: 6},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			calls := make(map[int]int)
			for _, depth := range []int{20, 100} {
				tree, root, leaf := chain(depth, tt.mixed)
				tree.compute(root, Definite(400), MaxContent)

				calls[depth] = tree.nodes[leaf].measured
				must.Positive(t, calls[depth])
				must.LessEq(t, tt.maxCalls, calls[depth], must.Sprintf("depth %d measured the leaf %d times", depth, calls[depth]))
				must.Eq(t, Size{Width: 400, Height: 10}, tree.size(root))
			}
			if calls[20] != calls[100] {
				t.Errorf("leaf measured %d times at depth 20 and %d at depth 100, want equal", calls[20], calls[100])
			}
		})
	}
}

// mixedTree builds a small tree exercising every container type.
func mixedTree(wrap func(*testTree) Tree) (*testTree, Tree, NodeID) {
	tree := newTestTree()
	a := tree.leaf(DefaultStyle(), 30, 12)
	b := tree.leaf(styled(func(s *Style) { s.FlexGrow = 1 }), 15, 8)
	row := tree.add(styled(func(s *Style) {
		s.Padding = SpacingAll(Length(3))
		s.ColumnGap = Length(4)
	}), a, b)

	c := tree.leaf(DefaultStyle(), 25, 5)
	d := tree.leaf(styled(func(s *Style) { s.GridColumn = Span(2) }), 40, 7)
	grid := tree.add(gridStyle(func(s *Style) {
		s.GridTemplateColumns = Tracks(AutoTrack(), FrTrack(1))
		s.RowGap = Length(2)
	}), c, d)

	e := tree.leaf(styled(func(s *Style) { s.Margin.Top = Length(6) }), 10, 10)
	f := tree.leaf(styled(func(s *Style) { s.Margin = SpacingAll(Length(4)) }), 10, 10)
	block := tree.add(blockStyle(nil), e, f)

	abs := tree.add(styled(func(s *Style) {
		s.Position = PositionAbsolute
		s.Inset.Right = Length(0)
		s.Width = Length(10)
		s.Height = Length(10)
	}))

	root := tree.add(styled(func(s *Style) {
		s.Direction = Column
		s.Width = Length(120)
		s.Border = SpacingAll(Length(1))
	}), row, grid, block, abs)
	return tree, wrap(tree), root
}

func layouts(t *testTree) []Layout {
	out := make([]Layout, len(t.nodes))
	for i, n := range t.nodes {
		out[i] = n.layout
	}
	return out
}

func TestCacheIsTransparent(t *testing.T) {
	avails := map[string]AvailSize{
		"definite":    {Width: Definite(300), Height: Definite(300)},
		"max content": {Width: MaxContent, Height: MaxContent},
		"min content": {Width: MinContent, Height: MinContent},
	}

	for name, avail := range avails {
		t.Run(name, func(t *testing.T) {
			cached, cachedTree, root := mixedTree(func(tt *testTree) Tree { return tt })
			ComputeRootLayout(cachedTree, root, avail)

			plain, plainTree, plainRoot := mixedTree(func(tt *testTree) Tree { return uncachedTree{tt} })
			ComputeRootLayout(plainTree, plainRoot, avail)

			if diff := cmp.Diff(layouts(plain), layouts(cached), floatCmp); diff != "" {
				t.Errorf("cached layout differs (-uncached +cached):\n%s", diff)
			}
		})
	}
}

func TestLayoutIsDeterministic(t *testing.T) {
	first, _, root := mixedTree(func(tt *testTree) Tree { return tt })
	first.compute(root, Definite(200), MaxContent)
	want := layouts(first)

	// A second pass over warm caches and a fresh tree both agree.
	first.compute(root, Definite(200), MaxContent)
	if diff := cmp.Diff(want, layouts(first)); diff != "" {
		t.Errorf("warm pass differs (-cold +warm):\n%s", diff)
	}

	second, _, root2 := mixedTree(func(tt *testTree) Tree { return tt })
	second.compute(root2, Definite(200), MaxContent)
	if diff := cmp.Diff(want, layouts(second)); diff != "" {
		t.Errorf("fresh tree differs (-first +second):\n%s", diff)
	}
}

func TestStyleChangeAfterCacheClear(t *testing.T) {
	tree, root, kids := buildFlat(sized(100, 100), sized(20, 20))
	tree.compute(root, Definite(100), Definite(100))
	must.Eq(t, Size{Width: 20, Height: 20}, tree.size(kids[0]))

	tree.nodes[kids[0]].style.Width = Length(60)
	tree.nodes[kids[0]].cache.Clear()
	tree.nodes[root].cache.Clear()
	tree.compute(root, Definite(100), Definite(100))
	must.Eq(t, Size{Width: 60, Height: 20}, tree.size(kids[0]))
}
