package layout

// flexItem is the per-child working state of one flex layout call.
type flexItem struct {
	node  NodeID
	order uint32

	size    OptSize
	minSize OptSize
	maxSize OptSize

	inset        optEdges
	margin       Edges
	marginIsAuto autoSides
	padding      Edges
	border       Edges

	alignSelf  Align
	flexGrow   float32
	flexShrink float32

	flexBasis           float32
	innerFlexBasis      float32
	resolvedMinMainSize float32
	contentFlexFraction float32

	violation float32
	frozen    bool

	hypotheticalInner Size
	hypotheticalOuter Size
	target            Size
	outerTarget       Size

	baseline    float32
	offsetMain  float32
	offsetCross float32
}

// flexLine is a run of items sharing the cross axis. items aliases the
// container's item slice.
type flexLine struct {
	items       []flexItem
	crossSize   float32
	offsetCross float32
}

// flexConstants are derived once per flex layout call.
type flexConstants struct {
	dir           Direction
	main, cross   Axis
	isRow         bool
	isWrap        bool
	isWrapReverse bool

	minSize OptSize
	maxSize OptSize

	margin          Edges
	border          Edges
	contentBoxInset Edges
	gap             Size

	alignItems     Align
	alignContent   Align
	justifyContent Justify

	nodeOuterSize  OptSize
	nodeInnerSize  OptSize
	containerSize  Size
	innerContainer Size
}

// computeFlexLayout implements the CSS flexbox layout algorithm for node.
func computeFlexLayout(tree Tree, node NodeID, in LayoutInput) LayoutOutput {
	style := tree.LayoutStyle(node)
	_, minSize, maxSize := style.resolvedSizes(in.ParentSize)

	var clampedStyleSize OptSize
	if in.SizingMode == InherentSize {
		size, _, _ := style.resolvedSizes(in.ParentSize)
		clampedStyleSize = size.Clamp(minSize, maxSize)
	}

	padding, border := style.resolvedBoxEdges(in.ParentSize.Width)
	pbSum := padding.Add(border).Sum()

	minMaxDefinite := OptSize{
		Width:  minOverMax(minSize.Width, maxSize.Width),
		Height: minOverMax(minSize.Height, maxSize.Height),
	}
	known := in.KnownDimensions.Or(minMaxDefinite.Or(clampedStyleSize).MaxSize(pbSum))

	if in.RunMode == ComputeSize {
		if w, ok := known.Width.Get(); ok {
			if h, ok := known.Height.Get(); ok {
				return outputFromSize(Size{Width: w, Height: h}, Size{})
			}
		}
	}

	in.KnownDimensions = known
	return flexPreliminary(tree, node, in)
}

func flexPreliminary(tree Tree, node NodeID, in LayoutInput) LayoutOutput {
	known := in.KnownDimensions
	style := tree.LayoutStyle(node)
	c := newFlexConstants(style, known, in.ParentSize)

	items := generateFlexItems(tree, node, &c)
	available := flexAvailableSpace(known, in.AvailableSpace, &c)

	determineFlexBaseSize(tree, &c, available, items)

	lines := collectFlexLines(&c, available, items)

	if inner, ok := c.nodeInnerSize.Get(c.main).Get(); ok {
		c.innerContainer = c.innerContainer.Set(c.main, inner)
		c.containerSize = c.containerSize.Set(c.main, inner+c.contentBoxInset.AxisSum(c.main))
	} else {
		determineContainerMainSize(tree, &c, available, lines)
		c.nodeInnerSize = c.nodeInnerSize.Set(c.main, Some(c.innerContainer.Get(c.main)))
		c.nodeOuterSize = c.nodeOuterSize.Set(c.main, Some(c.containerSize.Get(c.main)))

		// Percentage gaps resolve against the now known main size.
		gap := style.Gap().Get(c.main).ResolveOrZero(Some(c.innerContainer.Get(c.main)))
		c.gap = c.gap.Set(c.main, gap)
	}

	for i := range lines {
		resolveFlexibleLengths(&lines[i], &c)
	}
	for i := range lines {
		determineHypotheticalCrossSize(tree, &lines[i], &c, available)
	}
	calculateChildBaselines(tree, known, available, lines, &c)
	calculateCrossSize(lines, known, &c)
	stretchLines(lines, known, &c)
	determineUsedCrossSize(tree, lines, &c)
	distributeRemainingFreeSpace(lines, &c)
	resolveCrossAutoMargins(lines, &c)
	totalLineCross := determineContainerCrossSize(lines, known, &c)

	if in.RunMode == ComputeSize {
		return outputFromSize(c.containerSize, Size{})
	}

	alignLinesPerAlignContent(lines, &c, totalLineCross)
	inflow := flexFinalLayoutPass(tree, lines, &c)
	absolute := layoutAbsoluteChildren(tree, node, flexAbsoluteArea(&c))
	layoutHiddenChildren(tree, node)

	var baseline Opt
	if len(lines) > 0 && len(lines[0].items) > 0 {
		first := &lines[0].items[0]
		for i := range lines[0].items {
			if !c.isRow || lines[0].items[i].alignSelf == AlignBaseline {
				first = &lines[0].items[i]
				break
			}
		}
		baseline = Some(first.baseline)
	}

	return LayoutOutput{
		Size:           c.containerSize,
		ContentSize:    inflow.Max(absolute),
		FirstBaselines: Baselines{Y: baseline},
	}
}

func newFlexConstants(style *Style, known, parentSize OptSize) flexConstants {
	dir := style.Direction
	_, minSize, maxSize := style.resolvedSizes(parentSize)
	margin := style.Margin.ResolveOrZero(parentSize.Width)
	padding, border := style.resolvedBoxEdges(parentSize.Width)
	inset := padding.Add(border)

	alignItems := style.AlignItems
	if alignItems == AlignNormal {
		alignItems = AlignStretch
	}
	alignContent := style.AlignContent
	if alignContent == AlignNormal {
		alignContent = AlignStretch
	}

	inner := known.SubSize(inset.Sum())
	zeroRef := inner.Or(OptSize{Width: Some(0), Height: Some(0)})

	return flexConstants{
		dir:             dir,
		main:            dir.MainAxis(),
		cross:           dir.MainAxis().Other(),
		isRow:           dir.IsRow(),
		isWrap:          style.Wrap != NoWrap,
		isWrapReverse:   style.Wrap == WrapReverse,
		minSize:         minSize,
		maxSize:         maxSize,
		margin:          margin,
		border:          border,
		contentBoxInset: inset,
		gap: Size{
			Width:  style.ColumnGap.ResolveOrZero(zeroRef.Width),
			Height: style.RowGap.ResolveOrZero(zeroRef.Height),
		},
		alignItems:     alignItems,
		alignContent:   alignContent,
		justifyContent: style.JustifyContent,
		nodeOuterSize:  known,
		nodeInnerSize:  inner,
	}
}

// generateFlexItems collects the in-flow children in document order.
func generateFlexItems(tree Tree, node NodeID, c *flexConstants) []flexItem {
	children := tree.LayoutChildren(node)
	items := make([]flexItem, 0, len(children))
	for i, child := range children {
		cs := tree.LayoutStyle(child)
		if cs.Position == PositionAbsolute || cs.Display == DisplayNone {
			continue
		}
		size, minSize, maxSize := cs.resolvedSizes(c.nodeInnerSize)
		padding, border := cs.resolvedBoxEdges(c.nodeInnerSize.Width)
		alignSelf := cs.AlignSelf
		if alignSelf == AlignNormal {
			alignSelf = c.alignItems
		}
		items = append(items, flexItem{
			node:         child,
			order:        uint32(i),
			size:         size,
			minSize:      minSize,
			maxSize:      maxSize,
			inset:        cs.Inset.resolveInsets(c.nodeInnerSize),
			margin:       cs.Margin.ResolveOrZero(c.nodeInnerSize.Width),
			marginIsAuto: cs.Margin.autoSides(),
			padding:      padding,
			border:       border,
			alignSelf:    alignSelf,
			flexGrow:     max(cs.FlexGrow, 0),
			flexShrink:   max(cs.FlexShrink, 0),
		})
	}
	return items
}

// flexAvailableSpace determines the space available to the items' content box.
func flexAvailableSpace(known OptSize, outer AvailSize, c *flexConstants) AvailSize {
	pick := func(axis Axis) AvailableSpace {
		if v, ok := known.Get(axis).Get(); ok {
			return Definite(v - c.contentBoxInset.AxisSum(axis))
		}
		return outer.Get(axis).Sub(c.margin.AxisSum(axis)).Sub(c.contentBoxInset.AxisSum(axis))
	}
	return AvailSize{Width: pick(Horizontal), Height: pick(Vertical)}
}

// childCrossAvailable is the cross-axis space offered to an item while its
// main size is being measured.
func childCrossAvailable(item *flexItem, c *flexConstants, available AvailSize) AvailableSpace {
	crossParent := c.nodeInnerSize.Get(c.cross)
	marginSum := item.margin.AxisSum(c.cross)
	minCross := item.minSize.Get(c.cross).Add(marginSum)
	maxCross := item.maxSize.Get(c.cross).Add(marginSum)

	switch a := available.Get(c.cross); a.Kind {
	case SpaceDefinite:
		return Definite(maybeClamp(crossParent.UnwrapOr(a.Value), minCross, maxCross))
	case SpaceMinContent:
		if v, ok := minCross.Get(); ok {
			return Definite(v)
		}
		return MinContent
	default:
		if v, ok := maxCross.Get(); ok {
			return Definite(v)
		}
		return MaxContent
	}
}

// childKnownForMeasure fixes a stretched item's cross size while its main size is measured.
func childKnownForMeasure(item *flexItem, c *flexConstants, crossAvailable AvailableSpace) OptSize {
	known := item.size.Set(c.main, None)
	if item.alignSelf == AlignStretch && !known.Get(c.cross).IsSet() {
		known = known.Set(c.cross, crossAvailable.Opt().Sub(item.margin.AxisSum(c.cross)))
	}
	return known
}

// determineFlexBaseSize computes each item's flex base size, hypothetical
// main size and automatic minimum main size.
func determineFlexBaseSize(tree Tree, c *flexConstants, available AvailSize, items []flexItem) {
	for i := range items {
		item := &items[i]
		cs := tree.LayoutStyle(item.node)

		parentSize := OptSize{}.Set(c.cross, c.nodeInnerSize.Get(c.cross))
		crossAvailable := childCrossAvailable(item, c, available)
		known := childKnownForMeasure(item, c, crossAvailable)

		basis := cs.FlexBasis.Resolve(c.nodeInnerSize.Get(c.main)).Or(item.size.Get(c.main))
		if v, ok := basis.Get(); ok {
			item.flexBasis = v
		} else {
			mainAvail := MaxContent
			if available.Get(c.main).Kind == SpaceMinContent {
				mainAvail = MinContent
			}
			childAvail := AvailSize{Width: MaxContent, Height: MaxContent}.
				Set(c.main, mainAvail).Set(c.cross, crossAvailable)
			item.flexBasis = measureChildSize(tree, item.node, known, parentSize, childAvail, ContentSize, c.main, false)
		}

		pbMain := item.padding.AxisSum(c.main) + item.border.AxisSum(c.main)
		item.flexBasis = max(item.flexBasis, pbMain)
		item.innerFlexBasis = item.flexBasis - pbMain

		pbSums := item.padding.Add(item.border).Sum()
		hypotheticalMin := item.minSize.Get(c.main).MaxF(pbSums.Get(c.main))
		hypothetical := maybeClamp(item.flexBasis, hypotheticalMin, item.maxSize.Get(c.main))
		item.hypotheticalInner = item.hypotheticalInner.Set(c.main, hypothetical)
		item.hypotheticalOuter = item.hypotheticalOuter.Set(c.main, hypothetical+item.margin.AxisSum(c.main))

		if v, ok := item.minSize.Get(c.main).Get(); ok {
			item.resolvedMinMainSize = v
			continue
		}
		// Automatic minimum size: the min-content size, capped by the
		// preferred and max sizes and floored by padding and border.
		childAvail := AvailSize{Width: MinContent, Height: MinContent}.Set(c.cross, crossAvailable)
		minContent := measureChildSize(tree, item.node, known, parentSize, childAvail, ContentSize, c.main, false)
		minContent = maybeMin(minContent, item.size.Get(c.main))
		minContent = maybeMin(minContent, item.maxSize.Get(c.main))
		item.resolvedMinMainSize = max(minContent, pbSums.Get(c.main))
	}
}

// sumAxisGaps is the total gap between n items.
func sumAxisGaps(gap float32, n int) float32 {
	if n <= 1 {
		return 0
	}
	return gap * float32(n-1)
}
