package layout

// absoluteArea is the containing block of absolutely positioned children.
type absoluteArea struct {
	// origin is the containing block's top-left relative to the parent's border box.
	origin Point
	// size is the containing block's size; insets and percentages resolve against it.
	size Size
	// parentSize is passed to the child as its parent size.
	parentSize OptSize
	// available caps the child's available space.
	available Size
	// alignItems is the parent's align-items, the fallback for align-self.
	alignItems Align
	// static returns the position along axis of a child with both insets auto.
	static func(child NodeID, axis Axis, self Align, size Size, margin Edges) float32
}

// layoutAbsoluteChildren lays out every position:absolute child of node in
// area and returns their contribution to node's content size.
func layoutAbsoluteChildren(tree Tree, node NodeID, area absoluteArea) Size {
	var content Size
	for order, child := range tree.LayoutChildren(node) {
		cs := tree.LayoutStyle(child)
		if cs.Display == DisplayNone || cs.Position != PositionAbsolute {
			continue
		}
		location, size, out := layoutAbsoluteChild(tree, child, cs, area)
		padding, border := cs.resolvedBoxEdges(Some(area.size.Width))
		tree.SetLayout(child, Layout{
			Order:       uint32(order),
			Location:    location,
			Size:        size,
			ContentSize: out.ContentSize,
			Padding:     padding,
			Border:      border,
			Margin:      cs.Margin.ResolveOrZero(Some(area.size.Width)),
		})
		content = content.Max(contentContribution(location, size, out.ContentSize))
	}
	return content
}

func layoutAbsoluteChild(tree Tree, child NodeID, cs *Style, area absoluteArea) (Point, Size, LayoutOutput) {
	ref := area.size.Opt()
	ratio := cs.AspectRatio
	alignSelf := cs.AlignSelf
	if alignSelf == AlignNormal {
		alignSelf = area.alignItems
	}

	margin := cs.Margin.resolveOpt(ref.Width)
	padding, border := cs.resolvedBoxEdges(ref.Width)
	pbSum := padding.Add(border).Sum()
	inset := cs.Inset.resolveInsets(ref)

	styleSize, minSize, maxSize := cs.resolvedSizes(ref)
	minSize = minSize.Or(pbSum.Opt()).MaxSize(pbSum)
	known := styleSize.Clamp(minSize, maxSize)

	// Both insets on an axis fix the size along it.
	for _, axis := range [2]Axis{Horizontal, Vertical} {
		start, sok := inset.start(axis).Get()
		end, eok := inset.end(axis).Get()
		if known.Get(axis).IsSet() || !sok || !eok {
			continue
		}
		v := area.size.Get(axis)
		v = maybeSub(v, margin.start(axis))
		v = maybeSub(v, margin.end(axis))
		known = known.Set(axis, Some(max(v-start-end, 0)))
		known = known.ApplyAspectRatio(ratio).Clamp(minSize, maxSize)
	}

	out := performChildLayout(tree, child, known, area.parentSize, AvailSize{
		Width:  Definite(maybeClamp(area.available.Width, minSize.Width, maxSize.Width)),
		Height: Definite(maybeClamp(area.available.Height, minSize.Height, maxSize.Height)),
	}, ContentSize, false)
	size := known.UnwrapOr(out.Size).Clamp(minSize, maxSize)

	fixedMargin := Edges{
		Top:    margin.Top.UnwrapOr(0),
		Right:  margin.Right.UnwrapOr(0),
		Bottom: margin.Bottom.UnwrapOr(0),
		Left:   margin.Left.UnwrapOr(0),
	}
	resolved := fixedMargin
	for _, axis := range [2]Axis{Horizontal, Vertical} {
		free := max(area.size.Get(axis)-size.Get(axis)-fixedMargin.AxisSum(axis), 0)
		autoCount := 0
		if !margin.start(axis).IsSet() {
			autoCount++
		}
		if !margin.end(axis).IsSet() {
			autoCount++
		}
		if autoCount == 0 {
			continue
		}
		share := free / float32(autoCount)
		if !margin.start(axis).IsSet() {
			resolved.setStart(axis, share)
		}
		if !margin.end(axis).IsSet() {
			resolved.setEnd(axis, share)
		}
	}

	position := func(axis Axis) float32 {
		if start, ok := inset.start(axis).Get(); ok {
			return area.origin.Get(axis) + start + resolved.Start(axis)
		}
		if end, ok := inset.end(axis).Get(); ok {
			return area.origin.Get(axis) + area.size.Get(axis) - size.Get(axis) - end - resolved.End(axis)
		}
		return area.static(child, axis, alignSelf, size, resolved)
	}
	return Point{X: position(Horizontal), Y: position(Vertical)}, size, out
}
