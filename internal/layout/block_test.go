package layout

import (
	"testing"

	"github.com/shoenig/test/must"
)

func blockStyle(fn func(s *Style)) Style {
	return styled(func(s *Style) {
		s.Display = DisplayBlock
		if fn != nil {
			fn(s)
		}
	})
}

func TestBlockSiblingMarginsCollapse(t *testing.T) {
	first := styled(func(s *Style) {
		s.Height = Length(20)
		s.Margin.Bottom = Length(10)
	})
	second := styled(func(s *Style) {
		s.Height = Length(20)
		s.Margin.Top = Length(5)
	})
	tree, root, kids := buildFlat(blockStyle(func(s *Style) { s.Width = Length(100) }), first, second)
	tree.compute(root, Definite(100), MaxContent)

	must.Eq(t, Point{}, tree.loc(kids[0]))
	must.Eq(t, Point{Y: 30}, tree.loc(kids[1]))
	must.Eq(t, Size{Width: 100, Height: 50}, tree.size(root))
}

func TestBlockChildMarginCollapsesThroughParent(t *testing.T) {
	tree := newTestTree()
	inner := tree.add(styled(func(s *Style) {
		s.Height = Length(10)
		s.Margin.Top = Length(10)
	}))
	mid := tree.add(blockStyle(nil), inner)
	root := tree.add(blockStyle(nil), mid)
	tree.compute(root, Definite(100), MaxContent)

	must.Eq(t, Point{Y: 10}, tree.loc(mid))
	must.Eq(t, Point{}, tree.loc(inner))
	must.Eq(t, Size{Width: 100, Height: 10}, tree.size(mid))
	must.Eq(t, Size{Width: 100, Height: 20}, tree.size(root))
}

func TestBlockPaddingStopsCollapse(t *testing.T) {
	tree := newTestTree()
	inner := tree.add(styled(func(s *Style) {
		s.Height = Length(10)
		s.Margin.Top = Length(10)
	}))
	mid := tree.add(blockStyle(func(s *Style) { s.Padding.Top = Length(1) }), inner)
	root := tree.add(blockStyle(nil), mid)
	tree.compute(root, Definite(100), MaxContent)

	must.Eq(t, Point{}, tree.loc(mid))
	must.Eq(t, Point{Y: 11}, tree.loc(inner))
	must.Eq(t, float32(21), tree.size(mid).Height)
}

func TestBlockHorizontalSizing(t *testing.T) {
	type tc struct {
		child    Style
		wantX    float32
		wantSize Size
	}

	tests := map[string]tc{
		"auto width fills container": {
			child:    styled(func(s *Style) { s.Height = Length(10) }),
			wantX:    0,
			wantSize: Size{Width: 100, Height: 10},
		},
		"auto margins center": {
			child: styled(func(s *Style) {
				s.Width = Length(50)
				s.Height = Length(10)
				s.Margin.Left = Auto()
				s.Margin.Right = Auto()
			}),
			wantX:    25,
			wantSize: Size{Width: 50, Height: 10},
		},
		"auto left margin pushes right": {
			child: styled(func(s *Style) {
				s.Width = Length(50)
				s.Height = Length(10)
				s.Margin.Left = Auto()
			}),
			wantX:    50,
			wantSize: Size{Width: 50, Height: 10},
		},
		"fixed margins shrink auto width": {
			child: styled(func(s *Style) {
				s.Height = Length(10)
				s.Margin = SpacingSymmetric(Zero(), Length(10))
			}),
			wantX:    10,
			wantSize: Size{Width: 80, Height: 10},
		},
		"percent width": {
			child: styled(func(s *Style) {
				s.Width = Percent(0.3)
				s.Height = Length(10)
			}),
			wantX:    0,
			wantSize: Size{Width: 30, Height: 10},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree, root, kids := buildFlat(blockStyle(func(s *Style) { s.Width = Length(100) }), tt.child)
			tree.compute(root, Definite(100), MaxContent)

			if got := tree.loc(kids[0]).X; got != tt.wantX {
				t.Errorf("x = %v, want %v", got, tt.wantX)
			}
			if got := tree.size(kids[0]); got != tt.wantSize {
				t.Errorf("size = %+v, want %+v", got, tt.wantSize)
			}
		})
	}
}

func TestBlockRelativeOffset(t *testing.T) {
	child := styled(func(s *Style) {
		s.Height = Length(10)
		s.Inset.Left = Length(4)
		s.Inset.Top = Length(3)
	})
	tree, root, kids := buildFlat(blockStyle(nil), child, sized(10, 10))
	tree.compute(root, Definite(100), MaxContent)

	must.Eq(t, Point{X: 4, Y: 3}, tree.loc(kids[0]))
	must.Eq(t, Point{Y: 10}, tree.loc(kids[1]))
}
