package boxlayout

import (
	"errors"
	"testing"

	"github.com/shoenig/test/must"
)

func newTree(t *testing.T, opts ...Option) *Tree {
	t.Helper()
	tree, err := New(opts...)
	must.NoError(t, err)
	return tree
}

func TestNewOptions(t *testing.T) {
	_, err := New(WithCapacity(-1))
	must.Error(t, err)

	tree := newTree(t, WithCapacity(16), WithRounding(false))
	must.Eq(t, 0, tree.Len())
	must.False(t, tree.rounding)
}

func TestTreeChildren(t *testing.T) {
	tree := newTree(t)
	a := tree.NewLeaf(DefaultStyle())
	b := tree.NewLeaf(DefaultStyle())
	c := tree.NewLeaf(DefaultStyle())
	root, err := tree.NewWithChildren(DefaultStyle(), a, b)
	must.NoError(t, err)

	must.NoError(t, tree.InsertChildAt(root, 1, c))
	kids, err := tree.Children(root)
	must.NoError(t, err)
	must.Eq(t, []NodeID{a, c, b}, kids)

	parent, ok := tree.Parent(c)
	must.True(t, ok)
	must.Eq(t, root, parent)
	_, ok = tree.Parent(root)
	must.False(t, ok)

	removed, err := tree.RemoveChildAt(root, 0)
	must.NoError(t, err)
	must.Eq(t, a, removed)
	_, ok = tree.Parent(a)
	must.False(t, ok)

	old, err := tree.ReplaceChildAt(root, 1, a)
	must.NoError(t, err)
	must.Eq(t, b, old)
	kids, _ = tree.Children(root)
	must.Eq(t, []NodeID{c, a}, kids)

	removed, err = tree.RemoveChild(root, c)
	must.NoError(t, err)
	must.Eq(t, c, removed)
	n, _ := tree.ChildCount(root)
	must.Eq(t, 1, n)

	must.NoError(t, tree.SetChildren(root, b, c))
	kids, _ = tree.Children(root)
	must.Eq(t, []NodeID{b, c}, kids)
	_, ok = tree.Parent(a)
	must.False(t, ok)
}

func TestAddChildMovesBetweenParents(t *testing.T) {
	tree := newTree(t)
	child := tree.NewLeaf(DefaultStyle())
	first, _ := tree.NewWithChildren(DefaultStyle(), child)
	second := tree.NewLeaf(DefaultStyle())

	must.NoError(t, tree.AddChild(second, child))

	n, _ := tree.ChildCount(first)
	must.Eq(t, 0, n)
	parent, _ := tree.Parent(child)
	must.Eq(t, second, parent)
}

func TestInsertChildReorders(t *testing.T) {
	tree := newTree(t)
	a := tree.NewLeaf(DefaultStyle())
	b := tree.NewLeaf(DefaultStyle())
	c := tree.NewLeaf(DefaultStyle())
	root, _ := tree.NewWithChildren(DefaultStyle(), a, b, c)

	must.NoError(t, tree.InsertChildAt(root, 3, a))
	kids, _ := tree.Children(root)
	must.Eq(t, []NodeID{b, c, a}, kids)
}

func TestTreeErrors(t *testing.T) {
	tree := newTree(t)
	leaf := tree.NewLeaf(DefaultStyle())
	root, _ := tree.NewWithChildren(DefaultStyle(), leaf)
	stale := tree.NewLeaf(DefaultStyle())
	must.NoError(t, tree.Remove(stale))

	type tc struct {
		op   func() error
		want error
	}

	tests := map[string]tc{
		"never issued": {
			op: func() error {
				return tree.MarkDirty(NodeID(999))
			},
			want: ErrInvalidNode,
		},
		"zero handle": {
			op: func() error {
				_, err := tree.Style(0)
				return err
			},
			want: ErrInvalidNode,
		},
		"removed handle": {
			op: func() error {
				return tree.SetStyle(stale, DefaultStyle())
			},
			want: ErrInvalidNode,
		},
		"insert past end": {
			op: func() error {
				return tree.InsertChildAt(root, 2, tree.NewLeaf(DefaultStyle()))
			},
			want: ErrChildIndexOutOfBounds,
		},
		"remove past end": {
			op: func() error {
				_, err := tree.RemoveChildAt(root, 1)
				return err
			},
			want: ErrChildIndexOutOfBounds,
		},
		"child at negative": {
			op: func() error {
				_, err := tree.ChildAt(root, -1)
				return err
			},
			want: ErrChildIndexOutOfBounds,
		},
		"remove non-child": {
			op: func() error {
				_, err := tree.RemoveChild(leaf, root)
				return err
			},
			want: ErrInvalidNode,
		},
		"self as child": {
			op: func() error {
				return tree.AddChild(root, root)
			},
			want: ErrCycle,
		},
		"ancestor as child": {
			op: func() error {
				return tree.AddChild(leaf, root)
			},
			want: ErrCycle,
		},
		"replace in childless node": {
			op: func() error {
				_, err := tree.ReplaceChildAt(leaf, 0, root)
				return err
			},
			want: ErrChildIndexOutOfBounds,
		},
		"self as replacement": {
			op: func() error {
				_, err := tree.ReplaceChildAt(root, 0, root)
				return err
			},
			want: ErrCycle,
		},
		"compute stale root": {
			op: func() error {
				return tree.ComputeLayout(stale, DefiniteSize(10, 10))
			},
			want: ErrInvalidNode,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.op()
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRemovedSlotIsReusedWithNewGeneration(t *testing.T) {
	tree := newTree(t)
	old := tree.NewLeaf(DefaultStyle())
	must.NoError(t, tree.Remove(old))
	must.Eq(t, 0, tree.Len())

	fresh := tree.NewLeaf(DefaultStyle())
	must.NotEq(t, old, fresh)
	must.True(t, tree.Contains(fresh))
	must.False(t, tree.Contains(old))

	oldIndex, _ := splitID(old)
	freshIndex, _ := splitID(fresh)
	must.Eq(t, oldIndex, freshIndex)
}

func TestRemoveDetachesChildren(t *testing.T) {
	tree := newTree(t)
	leaf := tree.NewLeaf(DefaultStyle())
	mid, _ := tree.NewWithChildren(DefaultStyle(), leaf)
	root, _ := tree.NewWithChildren(DefaultStyle(), mid)

	must.NoError(t, tree.Remove(mid))

	n, _ := tree.ChildCount(root)
	must.Eq(t, 0, n)
	_, ok := tree.Parent(leaf)
	must.False(t, ok)
	must.Eq(t, 2, tree.Len())
}

func TestClearInvalidatesHandles(t *testing.T) {
	tree := newTree(t)
	a := tree.NewLeaf(DefaultStyle())
	tree.Clear()

	must.Eq(t, 0, tree.Len())
	must.False(t, tree.Contains(a))
	b := tree.NewLeaf(DefaultStyle())
	must.True(t, tree.Contains(b))
	must.Eq(t, 1, tree.Len())
}

func TestDirtyPropagatesToAncestors(t *testing.T) {
	tree := newTree(t)
	leaf := tree.NewLeaf(sized(10, 10))
	sibling := tree.NewLeaf(sized(10, 10))
	mid, _ := tree.NewWithChildren(DefaultStyle(), leaf)
	root, _ := tree.NewWithChildren(DefaultStyle(), mid, sibling)
	must.NoError(t, tree.ComputeLayout(root, DefiniteSize(100, 100)))

	for _, id := range []NodeID{leaf, sibling, mid, root} {
		dirty, err := tree.Dirty(id)
		must.NoError(t, err)
		must.False(t, dirty, must.Sprintf("node %d dirty after layout", id))
	}

	must.NoError(t, tree.SetStyle(leaf, sized(20, 10)))
	for _, id := range []NodeID{leaf, mid, root} {
		dirty, _ := tree.Dirty(id)
		must.True(t, dirty, must.Sprintf("node %d clean after change", id))
	}
	dirty, _ := tree.Dirty(sibling)
	must.False(t, dirty)

	must.NoError(t, tree.ComputeLayout(root, DefiniteSize(100, 100)))
	l, _ := tree.Layout(leaf)
	must.Eq(t, Size{Width: 20, Height: 10}, l.Size)
}

func TestLayoutViewPanicsOnInvalidHandle(t *testing.T) {
	tree := newTree(t)
	defer func() {
		if recover() == nil {
			t.Errorf("LayoutStyle(invalid) did not panic")
		}
	}()
	(*layoutView)(tree).LayoutStyle(NodeID(12345))
}

func sized(w, h float32) Style {
	s := DefaultStyle()
	s.Width = Length(w)
	s.Height = Length(h)
	return s
}
