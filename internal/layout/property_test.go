package layout

import (
	"testing"

	"pgregory.net/rapid"
)

// When at least one item can grow, or the items overflow and can shrink, a
// single flex line fills its container exactly and items abut.
func TestFlexLineFillsContainer(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := float32(rapid.IntRange(50, 400).Draw(t, "width"))
		gap := float32(rapid.IntRange(0, 5).Draw(t, "gap"))
		n := rapid.IntRange(1, 6).Draw(t, "n")

		kids := make([]Style, n)
		for i := range kids {
			w := float32(rapid.IntRange(1, 100).Draw(t, "w"))
			grow := float32(rapid.IntRange(0, 3).Draw(t, "grow"))
			if i == 0 {
				grow = max(grow, 1)
			}
			kids[i] = styled(func(s *Style) {
				s.Width = Length(w)
				s.Height = Length(10)
				s.MinWidth = Zero()
				s.FlexGrow = grow
			})
		}
		parent := styled(func(s *Style) {
			s.Width = Length(width)
			s.ColumnGap = Length(gap)
		})
		tree, root, ids := buildFlat(parent, kids...)
		tree.compute(root, Definite(width), MaxContent)

		near := func(a, b float32) bool { return a-b < 1e-2 && b-a < 1e-2 }
		x := float32(0)
		for i, id := range ids {
			got := tree.loc(id).X
			if !near(got, x) {
				t.Fatalf("item %d at x %v, want %v", i, got, x)
			}
			if w := tree.size(id).Width; w < 0 {
				t.Fatalf("item %d has negative width %v", i, w)
			}
			x = got + tree.size(id).Width + gap
		}
		if end := x - gap; !near(end, width) {
			t.Fatalf("line ends at %v, want %v", end, width)
		}
	})
}

// Items keep their size when nothing grows and they fit.
func TestFlexInflexibleItemsKeepSize(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 6).Draw(t, "n")
		widths := make([]float32, n)
		kids := make([]Style, n)
		total := float32(0)
		for i := range kids {
			widths[i] = float32(rapid.IntRange(0, 50).Draw(t, "w"))
			total += widths[i]
			kids[i] = sized(widths[i], 10)
		}
		width := total + float32(rapid.IntRange(0, 100).Draw(t, "slack"))
		tree, root, ids := buildFlat(sized(width, 10), kids...)
		tree.compute(root, Definite(width), MaxContent)

		for i, id := range ids {
			if got := tree.size(id).Width; got != widths[i] {
				t.Fatalf("item %d width %v, want %v", i, got, widths[i])
			}
		}
	})
}

// Grid items never extend past the tracks they were placed in.
func TestGridItemsStayInContainer(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cols := rapid.IntRange(1, 4).Draw(t, "cols")
		n := rapid.IntRange(1, 10).Draw(t, "n")

		tree := newTestTree()
		kids := make([]NodeID, n)
		for i := range kids {
			w := float32(rapid.IntRange(0, 60).Draw(t, "w"))
			h := float32(rapid.IntRange(0, 30).Draw(t, "h"))
			kids[i] = tree.leaf(DefaultStyle(), w, h)
		}
		root := tree.add(gridStyle(func(s *Style) {
			s.Width = Length(200)
			s.GridTemplateColumns = []GridTemplate{Repeat(cols, FrTrack(1))}
		}), kids...)
		tree.compute(root, Definite(200), MaxContent)

		rootSize := tree.size(root)
		for i, id := range kids {
			loc, size := tree.loc(id), tree.size(id)
			if loc.X < -1e-3 || loc.Y < -1e-3 {
				t.Fatalf("item %d at negative position %+v", i, loc)
			}
			if loc.Y+size.Height > rootSize.Height+1e-2 {
				t.Fatalf("item %d bottom %v past container %v", i, loc.Y+size.Height, rootSize.Height)
			}
		}
	})
}
