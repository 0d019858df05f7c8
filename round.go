package boxlayout

import "math"

func round(v float32) float32 {
	return float32(math.Round(float64(v)))
}

// roundLayout snaps the subtree to whole pixels. Edges are rounded in
// absolute coordinates, so adjacent boxes share an edge and never leave a gap
// or overlap by a pixel. cx and cy are the unrounded absolute coordinates of
// the parent's border box.
func (t *Tree) roundLayout(id NodeID, cx, cy float32) {
	n := t.mustGet(id)
	u := n.unrounded
	r := u

	x := cx + u.Location.X
	y := cy + u.Location.Y
	r.Location.X = round(u.Location.X)
	r.Location.Y = round(u.Location.Y)
	r.Size.Width = round(x+u.Size.Width) - round(x)
	r.Size.Height = round(y+u.Size.Height) - round(y)
	r.ContentSize.Width = round(x+u.ContentSize.Width) - round(x)
	r.ContentSize.Height = round(y+u.ContentSize.Height) - round(y)

	right := x + u.Size.Width
	bottom := y + u.Size.Height
	r.Border.Left = round(x+u.Border.Left) - round(x)
	r.Border.Right = round(right) - round(right-u.Border.Right)
	r.Border.Top = round(y+u.Border.Top) - round(y)
	r.Border.Bottom = round(bottom) - round(bottom-u.Border.Bottom)

	r.Padding.Left = round(x+u.Border.Left+u.Padding.Left) - round(x+u.Border.Left)
	r.Padding.Right = round(right-u.Border.Right) - round(right-u.Border.Right-u.Padding.Right)
	r.Padding.Top = round(y+u.Border.Top+u.Padding.Top) - round(y+u.Border.Top)
	r.Padding.Bottom = round(bottom-u.Border.Bottom) - round(bottom-u.Border.Bottom-u.Padding.Bottom)

	n.final = r
	for _, c := range n.children {
		t.roundLayout(c, x, y)
	}
}
