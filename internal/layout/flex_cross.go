package layout

// determineHypotheticalCrossSize measures each item's cross size given its
// resolved main size.
func determineHypotheticalCrossSize(tree Tree, line *flexLine, c *flexConstants, available AvailSize) {
	for i := range line.items {
		item := &line.items[i]
		pb := item.padding.AxisSum(c.cross) + item.border.AxisSum(c.cross)
		minCross, maxCross := item.minSize.Get(c.cross), item.maxSize.Get(c.cross)

		childCross := item.size.Get(c.cross).Clamp(minCross, maxCross).MaxF(pb)
		availCross := available.Get(c.cross).Clamp(minCross, maxCross).MapDefinite(func(v float32) float32 {
			return max(v, pb)
		})

		inner, ok := childCross.Get()
		if !ok {
			known := OptSize{}.Set(c.main, Some(item.target.Get(c.main))).Set(c.cross, childCross)
			avail := AvailSize{}.Set(c.main, Definite(c.containerSize.Get(c.main))).Set(c.cross, availCross)
			measured := measureChildSize(tree, item.node, known, c.nodeInnerSize, avail, ContentSize, c.cross, false)
			inner = max(maybeClamp(measured, minCross, maxCross), pb)
		}
		item.hypotheticalInner = item.hypotheticalInner.Set(c.cross, inner)
		item.hypotheticalOuter = item.hypotheticalOuter.Set(c.cross, inner+item.margin.AxisSum(c.cross))
	}
}

// calculateChildBaselines lays out baseline-aligned items of row containers
// to find their first baselines. Lines with fewer than two such items skip it.
func calculateChildBaselines(tree Tree, known OptSize, available AvailSize, lines []flexLine, c *flexConstants) {
	if !c.isRow {
		return
	}
	for li := range lines {
		line := &lines[li]
		count := 0
		for i := range line.items {
			if line.items[i].alignSelf == AlignBaseline {
				count++
			}
		}
		if count <= 1 {
			continue
		}
		for i := range line.items {
			item := &line.items[i]
			if item.alignSelf != AlignBaseline {
				continue
			}
			out := performChildLayout(tree, item.node,
				OptSize{Width: Some(item.target.Width), Height: Some(item.hypotheticalInner.Height)},
				c.nodeInnerSize,
				AvailSize{Width: Definite(c.containerSize.Width), Height: available.Height.OrOpt(known.Height)},
				ContentSize, false)
			item.baseline = out.FirstBaselines.Y.UnwrapOr(out.Size.Height) + item.margin.Top
		}
	}
}

// calculateCrossSize determines each line's cross size.
func calculateCrossSize(lines []flexLine, known OptSize, c *flexConstants) {
	inset := c.contentBoxInset.AxisSum(c.cross)
	minCross, maxCross := c.minSize.Get(c.cross), c.maxSize.Get(c.cross)

	if v, ok := known.Get(c.cross).Get(); ok && !c.isWrap {
		lines[0].crossSize = max(maybeClamp(v, minCross, maxCross)-inset, 0)
	} else {
		for li := range lines {
			line := &lines[li]
			var maxBaseline float32
			for i := range line.items {
				maxBaseline = max(maxBaseline, line.items[i].baseline)
			}
			var cross float32
			for i := range line.items {
				item := &line.items[i]
				outer := item.hypotheticalOuter.Get(c.cross)
				if item.alignSelf == AlignBaseline && !item.marginIsAuto.start(c.cross) && !item.marginIsAuto.end(c.cross) {
					outer += maxBaseline - item.baseline
				}
				cross = max(cross, outer)
			}
			line.crossSize = cross
		}
	}

	if !c.isWrap {
		lines[0].crossSize = maybeClamp(lines[0].crossSize, minCross.Sub(inset), maxCross.Sub(inset))
	}
}

// stretchLines grows lines to fill a definite container under align-content: stretch.
func stretchLines(lines []flexLine, known OptSize, c *flexConstants) {
	if c.alignContent != AlignStretch || len(lines) == 0 {
		return
	}
	inset := c.contentBoxInset.AxisSum(c.cross)
	minCross, maxCross := c.minSize.Get(c.cross), c.maxSize.Get(c.cross)
	containerMin := known.Get(c.cross).Or(minCross).Clamp(minCross, maxCross).Sub(inset).MaxF(0).UnwrapOr(0)

	total := sumAxisGaps(c.gap.Get(c.cross), len(lines))
	for i := range lines {
		total += lines[i].crossSize
	}
	if total < containerMin {
		extra := (containerMin - total) / float32(len(lines))
		for i := range lines {
			lines[i].crossSize += extra
		}
	}
}

// determineUsedCrossSize stretches items or keeps their hypothetical cross size.
func determineUsedCrossSize(tree Tree, lines []flexLine, c *flexConstants) {
	for li := range lines {
		line := &lines[li]
		for i := range line.items {
			item := &line.items[i]
			cs := tree.LayoutStyle(item.node)
			var cross float32
			if item.alignSelf == AlignStretch && !item.marginIsAuto.start(c.cross) &&
				!item.marginIsAuto.end(c.cross) && cs.Size().Get(c.cross).IsAuto() {
				// max-size does not transfer through the aspect ratio here.
				maxCross := cs.MaxSize().Resolve(c.nodeInnerSize).Get(c.cross)
				cross = maybeClamp(line.crossSize-item.margin.AxisSum(c.cross), item.minSize.Get(c.cross), maxCross)
			} else {
				cross = item.hypotheticalInner.Get(c.cross)
			}
			item.target = item.target.Set(c.cross, cross)
			item.outerTarget = item.outerTarget.Set(c.cross, cross+item.margin.AxisSum(c.cross))
		}
	}
}

// resolveCrossAutoMargins resolves auto cross margins and otherwise aligns
// items by align-self within their line.
func resolveCrossAutoMargins(lines []flexLine, c *flexConstants) {
	for li := range lines {
		line := &lines[li]
		var maxBaseline float32
		for i := range line.items {
			maxBaseline = max(maxBaseline, line.items[i].baseline)
		}
		for i := range line.items {
			item := &line.items[i]
			free := line.crossSize - item.outerTarget.Get(c.cross)
			autoStart, autoEnd := item.marginIsAuto.start(c.cross), item.marginIsAuto.end(c.cross)
			switch {
			case autoStart && autoEnd:
				item.margin.setStart(c.cross, max(free, 0)/2)
				item.margin.setEnd(c.cross, max(free, 0)/2)
			case autoStart:
				item.margin.setStart(c.cross, max(free, 0))
			case autoEnd:
				item.margin.setEnd(c.cross, max(free, 0))
			default:
				item.offsetCross = alignFlexItemCross(item, free, maxBaseline, c)
			}
		}
	}
}

func alignFlexItemCross(item *flexItem, free, maxBaseline float32, c *flexConstants) float32 {
	switch item.alignSelf {
	case AlignBaseline:
		if c.isRow {
			return maxBaseline - item.baseline
		}
		return selfOffset(free, AlignFlexStart, c.isWrapReverse)
	case AlignStretch, AlignNormal:
		return selfOffset(free, AlignFlexStart, c.isWrapReverse)
	default:
		return selfOffset(free, item.alignSelf, c.isWrapReverse)
	}
}

// determineContainerCrossSize sets the container's cross size and returns the
// summed cross size of all lines.
func determineContainerCrossSize(lines []flexLine, known OptSize, c *flexConstants) float32 {
	gaps := sumAxisGaps(c.gap.Get(c.cross), len(lines))
	var total float32
	for i := range lines {
		total += lines[i].crossSize
	}
	inset := c.contentBoxInset.AxisSum(c.cross)
	outer := known.Get(c.cross).UnwrapOr(total + gaps + inset)
	outer = max(maybeClamp(outer, c.minSize.Get(c.cross), c.maxSize.Get(c.cross)), inset)

	c.containerSize = c.containerSize.Set(c.cross, outer)
	c.innerContainer = c.innerContainer.Set(c.cross, max(outer-inset, 0))
	return total
}
