package layout

// blockItem is the per-child working state of a block layout call.
type blockItem struct {
	node     NodeID
	order    uint32
	style    *Style
	size     OptSize
	minSize  OptSize
	maxSize  OptSize
	pbSum    Size
	absolute bool

	staticPosition Point
}

// computeBlockLayout stacks children vertically, collapsing adjoining
// vertical margins and centering children with auto horizontal margins.
func computeBlockLayout(tree Tree, node NodeID, in LayoutInput) LayoutOutput {
	style := tree.LayoutStyle(node)
	size, minSize, maxSize := style.resolvedSizes(in.ParentSize)
	padding, border := style.resolvedBoxEdges(in.ParentSize.Width)
	pbSum := padding.Add(border).Sum()

	var clamped OptSize
	if in.SizingMode == InherentSize {
		clamped = size.Clamp(minSize, maxSize)
	}
	minMaxDefinite := OptSize{
		Width:  minOverMax(minSize.Width, maxSize.Width),
		Height: minOverMax(minSize.Height, maxSize.Height),
	}
	known := in.KnownDimensions.Or(minMaxDefinite.Or(clamped).MaxSize(pbSum))

	if in.RunMode == ComputeSize {
		if w, ok := known.Width.Get(); ok {
			if h, ok := known.Height.Get(); ok {
				return outputFromSize(Size{Width: w, Height: h}, Size{})
			}
		}
	}

	in.KnownDimensions = known
	return blockInner(tree, node, style, in, minSize, maxSize, padding, border)
}

func blockInner(tree Tree, node NodeID, style *Style, in LayoutInput, minSize, maxSize OptSize, padding, border Edges) LayoutOutput {
	known := in.KnownDimensions
	inset := padding.Add(border)
	pbSum := inset.Sum()
	margin := style.Margin.ResolveOrZero(in.ParentSize.Width)

	collapseStart := in.VerticalMarginsCollapsible && style.Position == PositionRelative &&
		padding.Top == 0 && border.Top == 0
	collapseEnd := in.VerticalMarginsCollapsible && style.Position == PositionRelative &&
		padding.Bottom == 0 && border.Bottom == 0 && !known.Height.IsSet()
	preventsCollapseThrough := style.Display != DisplayBlock || style.Position == PositionAbsolute ||
		padding.Top > 0 || padding.Bottom > 0 || border.Top > 0 || border.Bottom > 0

	items := generateBlockItems(tree, node, known.SubSize(pbSum))

	outerWidth, ok := known.Width.Get()
	if !ok {
		availWidth := in.AvailableSpace.Width.Sub(pbSum.Width)
		intrinsic := blockContentWidth(tree, items, availWidth) + pbSum.Width
		outerWidth = max(maybeClamp(intrinsic, minSize.Width, maxSize.Width), pbSum.Width)
	}

	if in.RunMode == ComputeSize {
		if h, ok := known.Height.Get(); ok {
			return outputFromSize(Size{Width: outerWidth, Height: h}, Size{})
		}
	}

	flow := blockFlow(tree, items, outerWidth, known.Height, inset, collapseStart, collapseEnd)

	outerHeight := max(known.Height.UnwrapOr(maybeClamp(flow.height, minSize.Height, maxSize.Height)), pbSum.Height)
	final := Size{Width: outerWidth, Height: outerHeight}

	canCollapseThrough := !preventsCollapseThrough && flow.allCollapseThrough && outerHeight == 0

	out := LayoutOutput{Size: final, MarginsCanCollapseThrough: canCollapseThrough}
	if collapseStart {
		out.TopMargin = flow.firstTop
	} else {
		out.TopMargin = MarginSetFrom(margin.Top)
	}
	if collapseEnd {
		out.BottomMargin = flow.lastBottom
	} else {
		out.BottomMargin = MarginSetFrom(margin.Bottom)
	}

	if in.RunMode == ComputeSize {
		return out
	}

	innerSize := OptSize{Width: Some(max(outerWidth-pbSum.Width, 0)), Height: Some(max(outerHeight-pbSum.Height, 0))}
	statics := make(map[NodeID]Point, len(items))
	for _, item := range items {
		if item.absolute {
			statics[item.node] = item.staticPosition
		}
	}
	absolute := layoutAbsoluteChildren(tree, node, absoluteArea{
		origin:     Point{X: border.Left, Y: border.Top},
		size:       final.Sub(border.Sum()),
		parentSize: innerSize,
		available:  final,
		static: func(child NodeID, axis Axis, _ Align, _ Size, margin Edges) float32 {
			return statics[child].Get(axis) + margin.Start(axis)
		},
	})
	layoutHiddenChildren(tree, node)

	out.ContentSize = flow.content.Max(absolute)
	return out
}

func generateBlockItems(tree Tree, node NodeID, innerSize OptSize) []blockItem {
	children := tree.LayoutChildren(node)
	items := make([]blockItem, 0, len(children))
	for i, child := range children {
		cs := tree.LayoutStyle(child)
		if cs.Display == DisplayNone {
			continue
		}
		size, minSize, maxSize := cs.resolvedSizes(innerSize)
		padding, border := cs.resolvedBoxEdges(innerSize.Width)
		items = append(items, blockItem{
			node:     child,
			order:    uint32(i),
			style:    cs,
			size:     size,
			minSize:  minSize,
			maxSize:  maxSize,
			pbSum:    padding.Add(border).Sum(),
			absolute: cs.Position == PositionAbsolute,
		})
	}
	return items
}

// blockContentWidth is the widest in-flow child's outer width.
func blockContentWidth(tree Tree, items []blockItem, available AvailableSpace) float32 {
	var widest float32
	for _, item := range items {
		if item.absolute {
			continue
		}
		known := item.size.Clamp(item.minSize, item.maxSize)
		width, ok := known.Width.Get()
		if !ok {
			marginSum := item.style.Margin.ResolveOrZero(available.Opt()).Horizontal()
			width = measureChildSize(tree, item.node, known, OptSize{},
				AvailSize{Width: available.Sub(marginSum), Height: MaxContent},
				InherentSize, Horizontal, true) + marginSum
		}
		widest = max(widest, width, item.pbSum.Width)
	}
	return widest
}

type blockFlowResult struct {
	content            Size
	height             float32
	firstTop           CollapsibleMarginSet
	lastBottom         CollapsibleMarginSet
	allCollapseThrough bool
}

// blockFlow lays out in-flow children top to bottom and records the static
// position of absolutely positioned ones.
func blockFlow(tree Tree, items []blockItem, outerWidth float32, outerHeight Opt, inset Edges, collapseStart, collapseEnd bool) blockFlowResult {
	innerWidth := outerWidth - inset.Horizontal()
	parentSize := OptSize{Width: Some(outerWidth), Height: outerHeight}
	res := blockFlowResult{allCollapseThrough: true}

	committedY := inset.Top
	var active CollapsibleMarginSet
	collapsingWithFirst := true

	for i := range items {
		item := &items[i]
		if item.absolute {
			item.staticPosition = Point{X: inset.Left, Y: committedY + active.Resolve()}
			continue
		}

		margin := item.style.Margin.resolveOpt(Some(outerWidth))
		xMarginSum := margin.Left.UnwrapOr(0) + margin.Right.UnwrapOr(0)
		known := item.size
		if !known.Width.IsSet() {
			known.Width = Some(innerWidth - xMarginSum)
		}
		known = known.Clamp(item.minSize, item.maxSize)

		out := performChildLayout(tree, item.node, known, parentSize,
			AvailSize{Width: Definite(innerWidth - xMarginSum), Height: MinContent},
			InherentSize, true)
		size := out.Size

		top := out.TopMargin.CollapseWithMargin(margin.Top.UnwrapOr(0))
		bottom := out.BottomMargin.CollapseWithMargin(margin.Bottom.UnwrapOr(0))

		// Auto horizontal margins share the leftover width.
		free := max(innerWidth-size.Width-xMarginSum, 0)
		autoCount := 0
		if !margin.Left.IsSet() {
			autoCount++
		}
		if !margin.Right.IsSet() {
			autoCount++
		}
		var autoShare float32
		if autoCount > 0 {
			autoShare = free / float32(autoCount)
		}
		resolved := Edges{
			Left:   margin.Left.UnwrapOr(autoShare),
			Right:  margin.Right.UnwrapOr(autoShare),
			Top:    top.Resolve(),
			Bottom: bottom.Resolve(),
		}

		insets := item.style.Inset.resolveInsets(OptSize{Width: Some(innerWidth), Height: Some(0)})
		rel := Point{
			X: insets.Left.Or(negOpt(insets.Right)).UnwrapOr(0),
			Y: insets.Top.Or(negOpt(insets.Bottom)).UnwrapOr(0),
		}

		var yMargin float32
		if !(collapsingWithFirst && collapseStart) {
			yMargin = active.CollapseWithMargin(resolved.Top).Resolve()
		}

		item.staticPosition = Point{X: inset.Left, Y: committedY + active.Resolve()}
		location := Point{X: inset.Left + rel.X + resolved.Left, Y: committedY + rel.Y + yMargin}

		padding, border := item.style.resolvedBoxEdges(Some(outerWidth))
		tree.SetLayout(item.node, Layout{
			Order:       item.order,
			Location:    location,
			Size:        size,
			ContentSize: out.ContentSize,
			Padding:     padding,
			Border:      border,
			Margin:      resolved,
		})
		res.content = res.content.Max(contentContribution(location, size, out.ContentSize))

		through := out.MarginsCanCollapseThrough
		if !through {
			res.allCollapseThrough = false
		}
		if collapsingWithFirst {
			res.firstTop = res.firstTop.CollapseWithSet(top)
			if through {
				res.firstTop = res.firstTop.CollapseWithSet(bottom)
			} else {
				collapsingWithFirst = false
			}
		}
		if through {
			active = active.CollapseWithSet(top).CollapseWithSet(bottom)
		} else {
			committedY += size.Height + yMargin
			active = bottom
		}
	}

	res.lastBottom = active
	if !collapseEnd {
		committedY += active.Resolve()
	}
	committedY += inset.Bottom
	res.height = max(committedY, 0)
	return res
}
