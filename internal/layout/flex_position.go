package layout

// distributeRemainingFreeSpace resolves auto main margins or applies
// justify-content within each line.
func distributeRemainingFreeSpace(lines []flexLine, c *flexConstants) {
	main := c.main
	gap := c.gap.Get(main)
	reversed := c.dir.IsReverse()

	mode := c.justifyContent
	if mode == JustifyNormal || mode == JustifyStretch {
		mode = JustifyFlexStart
	}

	for li := range lines {
		line := &lines[li]
		n := len(line.items)
		used := sumAxisGaps(gap, n)
		autoMargins := 0
		for i := range line.items {
			item := &line.items[i]
			used += item.outerTarget.Get(main)
			if item.marginIsAuto.start(main) {
				autoMargins++
			}
			if item.marginIsAuto.end(main) {
				autoMargins++
			}
		}
		free := c.innerContainer.Get(main) - used

		for k := 0; k < n; k++ {
			i := k
			if reversed {
				i = n - 1 - k
			}
			item := &line.items[i]
			if free > 0 && autoMargins > 0 {
				share := free / float32(autoMargins)
				if item.marginIsAuto.start(main) {
					item.margin.setStart(main, share)
				}
				if item.marginIsAuto.end(main) {
					item.margin.setEnd(main, share)
				}
				if k > 0 {
					item.offsetMain = gap
				}
				continue
			}
			item.offsetMain = AlignmentOffset(free, n, gap, mode, reversed, k == 0)
		}
	}
}

// alignLinesPerAlignContent offsets lines on the cross axis.
func alignLinesPerAlignContent(lines []flexLine, c *flexConstants, totalCross float32) {
	n := len(lines)
	gap := c.gap.Get(c.cross)
	free := c.innerContainer.Get(c.cross) - totalCross - sumAxisGaps(gap, n)
	mode := contentMode(c.alignContent)
	if mode == JustifyStretch {
		mode = JustifyFlexStart
	}
	for k := 0; k < n; k++ {
		i := k
		if c.isWrapReverse {
			i = n - 1 - k
		}
		lines[i].offsetCross = AlignmentOffset(free, n, gap, mode, c.isWrapReverse, k == 0)
	}
}

// flexFinalLayoutPass performs layout on every item and stores its location.
// It returns the in-flow content size.
func flexFinalLayoutPass(tree Tree, lines []flexLine, c *flexConstants) Size {
	var content Size
	totalCross := c.contentBoxInset.Start(c.cross)
	n := len(lines)
	for k := 0; k < n; k++ {
		li := k
		if c.isWrapReverse {
			li = n - 1 - k
		}
		line := &lines[li]
		totalMain := c.contentBoxInset.Start(c.main)
		m := len(line.items)
		for j := 0; j < m; j++ {
			i := j
			if c.dir.IsReverse() {
				i = m - 1 - j
			}
			content = content.Max(layoutFlexItem(tree, &line.items[i], &totalMain, totalCross, line.offsetCross, c))
		}
		totalCross += line.offsetCross + line.crossSize
	}
	end := Size{Width: c.contentBoxInset.Right, Height: c.contentBoxInset.Bottom}
	if content != (Size{}) {
		content = content.Add(end)
	}
	return content
}

func layoutFlexItem(tree Tree, item *flexItem, totalMain *float32, totalCross, lineOffsetCross float32, c *flexConstants) Size {
	out := performChildLayout(tree, item.node, item.target.Opt(), c.nodeInnerSize,
		AvailSize{Width: Definite(c.containerSize.Width), Height: Definite(c.containerSize.Height)},
		ContentSize, false)
	size := out.Size

	relMain := item.inset.start(c.main).Or(negOpt(item.inset.end(c.main))).UnwrapOr(0)
	relCross := item.inset.start(c.cross).Or(negOpt(item.inset.end(c.cross))).UnwrapOr(0)

	offsetMain := *totalMain + item.offsetMain + item.margin.Start(c.main) + relMain
	offsetCross := totalCross + item.offsetCross + lineOffsetCross + item.margin.Start(c.cross) + relCross

	location := pointOnAxes(c.main, offsetMain, offsetCross)
	item.baseline = location.Y + out.FirstBaselines.Y.UnwrapOr(size.Height)

	tree.SetLayout(item.node, Layout{
		Order:       item.order,
		Location:    location,
		Size:        size,
		ContentSize: out.ContentSize,
		Padding:     item.padding,
		Border:      item.border,
		Margin:      item.margin,
	})

	*totalMain += item.offsetMain + item.margin.AxisSum(c.main) + size.Get(c.main)

	return contentContribution(location, size, out.ContentSize)
}

// contentContribution is the extent a child adds to its parent's content size.
func contentContribution(location Point, size, contentSize Size) Size {
	s := size.Max(contentSize)
	if s.Width <= 0 || s.Height <= 0 {
		return Size{}
	}
	return Size{Width: location.X + s.Width, Height: location.Y + s.Height}
}

func negOpt(o Opt) Opt {
	if v, ok := o.Get(); ok {
		return Some(-v)
	}
	return None
}

// flexAbsoluteArea describes the containing block flex containers offer
// absolutely positioned children: the padding box, with a static position
// derived from justify-content and align-self.
func flexAbsoluteArea(c *flexConstants) absoluteArea {
	padBox := c.containerSize.Sub(c.border.Sum())
	return absoluteArea{
		origin:     Point{X: c.border.Left, Y: c.border.Top},
		size:       padBox,
		parentSize: c.nodeInnerSize,
		available:  c.containerSize,
		alignItems: c.alignItems,
		static: func(_ NodeID, axis Axis, self Align, size Size, margin Edges) float32 {
			start := c.contentBoxInset.Start(axis)
			free := c.containerSize.Get(axis) - c.contentBoxInset.AxisSum(axis) - size.Get(axis) - margin.AxisSum(axis)
			var mode Align
			if axis == c.main {
				mode = justifyAsSelf(c.justifyContent)
				return start + margin.Start(axis) + selfOffset(free, mode, c.dir.IsReverse())
			}
			mode = self
			if mode == AlignStretch || mode == AlignBaseline || mode == AlignNormal {
				mode = AlignFlexStart
			}
			return start + margin.Start(axis) + selfOffset(free, mode, c.isWrapReverse)
		},
	}
}

// justifyAsSelf maps justify-content onto the single-box alignment of an
// absolutely positioned child's static position.
func justifyAsSelf(j Justify) Align {
	switch j {
	case JustifyEnd:
		return AlignEnd
	case JustifyFlexEnd:
		return AlignFlexEnd
	case JustifyFlexStart, JustifyStretch, JustifyNormal:
		return AlignFlexStart
	case JustifyCenter, JustifySpaceAround, JustifySpaceEvenly:
		return AlignCenter
	default:
		return AlignStart
	}
}

// layoutHiddenChildren zeroes the layout of display:none children.
func layoutHiddenChildren(tree Tree, node NodeID) {
	for i, child := range tree.LayoutChildren(node) {
		if tree.LayoutStyle(child).Display != DisplayNone {
			continue
		}
		tree.SetLayout(child, Layout{Order: uint32(i)})
		ComputeNodeLayout(tree, child, LayoutInput{RunMode: PerformHiddenLayout})
	}
}
