package layout

import "math"

// collectFlexLines breaks items into lines. The returned lines alias items.
func collectFlexLines(c *flexConstants, available AvailSize, items []flexItem) []flexLine {
	if !c.isWrap {
		return []flexLine{{items: items}}
	}
	avail := available.Get(c.main)
	switch avail.Kind {
	case SpaceMaxContent:
		// Under a max-content constraint items never wrap.
		return []flexLine{{items: items}}
	case SpaceMinContent:
		// Every wrapping opportunity is taken.
		lines := make([]flexLine, 0, len(items))
		for i := range items {
			lines = append(lines, flexLine{items: items[i : i+1]})
		}
		return lines
	}

	var lines []flexLine
	gap := c.gap.Get(c.main)
	rest := items
	for len(rest) > 0 {
		var length float32
		split := len(rest)
		for i := range rest {
			if i > 0 {
				length += gap
			}
			length += rest[i].hypotheticalOuter.Get(c.main)
			if length > avail.Value && i != 0 {
				split = i
				break
			}
		}
		lines = append(lines, flexLine{items: rest[:split]})
		rest = rest[split:]
	}
	return lines
}

// determineContainerMainSize sizes an indefinite container along the main
// axis from its items' contributions.
func determineContainerMainSize(tree Tree, c *flexConstants, available AvailSize, lines []flexLine) {
	inset := c.contentBoxInset.AxisSum(c.main)

	longestLine := func() float32 {
		var longest float32
		for _, line := range lines {
			total := sumAxisGaps(c.gap.Get(c.main), len(line.items))
			for i := range line.items {
				item := &line.items[i]
				pb := item.padding.AxisSum(c.main) + item.border.AxisSum(c.main)
				total += max(maybeMax(item.flexBasis, item.minSize.Get(c.main))+item.margin.AxisSum(c.main), pb)
			}
			longest = max(longest, total)
		}
		return longest
	}

	var outer float32
	if v, ok := c.nodeOuterSize.Get(c.main).Get(); ok {
		outer = v
	} else {
		avail := available.Get(c.main)
		switch {
		case avail.Kind == SpaceDefinite:
			outer = longestLine() + inset
			if len(lines) > 1 {
				outer = max(outer, avail.Value)
			}
		case avail.Kind == SpaceMinContent && c.isWrap:
			outer = longestLine() + inset
		default:
			var mainSize float32
			for li := range lines {
				line := &lines[li]
				for i := range line.items {
					computeContentFlexFraction(tree, &line.items[i], c, available, inset)
				}
				sum := sumAxisGaps(c.gap.Get(c.main), len(line.items))
				for i := range line.items {
					item := &line.items[i]
					var contribution float32
					switch {
					case item.contentFlexFraction > 0:
						contribution = max(1, item.flexGrow) * item.contentFlexFraction
					case item.contentFlexFraction < 0:
						contribution = max(1, item.flexShrink*item.innerFlexBasis) * item.contentFlexFraction
					}
					sum += item.flexBasis + contribution
				}
				mainSize = max(mainSize, sum)
			}
			outer = mainSize + inset
		}
	}

	outer = max(maybeClamp(outer, c.minSize.Get(c.main), c.maxSize.Get(c.main)), inset)
	inner := max(outer-inset, 0)
	c.containerSize = c.containerSize.Set(c.main, outer)
	c.innerContainer = c.innerContainer.Set(c.main, inner)
	c.nodeInnerSize = c.nodeInnerSize.Set(c.main, Some(inner))
}

// computeContentFlexFraction records how far an item's min/max-content
// contribution is from its flex base size, per unit of flex factor.
func computeContentFlexFraction(tree Tree, item *flexItem, c *flexConstants, available AvailSize, inset float32) {
	styleMin := item.minSize.Get(c.main)
	stylePreferred := item.size.Get(c.main)
	styleMax := item.maxSize.Get(c.main)
	marginSum := item.margin.AxisSum(c.main)

	clampingBasis := Some(item.flexBasis).Max(stylePreferred)
	var basisMin, basisMax Opt
	if item.flexShrink == 0 {
		basisMin = clampingBasis
	}
	if item.flexGrow == 0 {
		basisMax = clampingBasis
	}

	minMain := max(styleMin.Max(basisMin).Or(basisMin).UnwrapOr(item.resolvedMinMainSize), item.resolvedMinMainSize)
	maxMain := styleMax.Min(basisMax).Or(basisMax).UnwrapOr(float32(math.Inf(1)))

	var contribution float32
	pref, hasPref := stylePreferred.Get()
	switch {
	case hasPref && (maxMain <= minMain || maxMain <= pref):
		contribution = max(min(pref, maxMain), minMain) + marginSum
	case maxMain <= minMain:
		contribution = minMain + marginSum
	default:
		crossParent := c.nodeInnerSize.Get(c.cross)
		crossMarginSum := item.margin.AxisSum(c.cross)
		crossAvail := available.Get(c.cross).
			MapDefinite(func(v float32) float32 { return crossParent.UnwrapOr(v) }).
			Clamp(item.minSize.Get(c.cross).Add(crossMarginSum), item.maxSize.Get(c.cross).Add(crossMarginSum))
		childAvail := available.Set(c.cross, crossAvail)
		known := childKnownForMeasure(item, c, crossAvail)

		contentMain := measureChildSize(tree, item.node, known, c.nodeInnerSize, childAvail, InherentSize, c.main, false) + marginSum
		if c.isRow {
			contribution = max(maybeClamp(contentMain, styleMin, styleMax), inset)
		} else {
			contribution = max(maybeClamp(max(contentMain, item.flexBasis), styleMin, styleMax), inset)
		}
	}

	diff := contribution - item.flexBasis
	switch {
	case diff > 0:
		item.contentFlexFraction = diff / max(1, item.flexGrow)
	case diff < 0:
		item.contentFlexFraction = diff / max(1, item.flexShrink*item.innerFlexBasis)
	default:
		item.contentFlexFraction = 0
	}
}

// resolveFlexibleLengths distributes the line's free space by flex-grow or
// flex-shrink, freezing items that hit their min or max main size and
// redistributing among the rest.
func resolveFlexibleLengths(line *flexLine, c *flexConstants) {
	main := c.main
	gaps := sumAxisGaps(c.gap.Get(main), len(line.items))
	innerMain := c.nodeInnerSize.Get(main)

	var hypotheticalSum float32
	for i := range line.items {
		hypotheticalSum += line.items[i].hypotheticalOuter.Get(main)
	}
	growing := gaps+hypotheticalSum < innerMain.UnwrapOr(0)
	shrinking := !growing

	// Size inflexible items.
	for i := range line.items {
		item := &line.items[i]
		item.frozen = false
		hypothetical := item.hypotheticalInner.Get(main)
		item.target = item.target.Set(main, hypothetical)
		if (growing && item.flexGrow == 0) || (shrinking && item.flexShrink == 0) ||
			(growing && item.flexBasis > hypothetical) || (shrinking && item.flexBasis < hypothetical) {
			item.frozen = true
			item.outerTarget = item.outerTarget.Set(main, hypothetical+item.margin.AxisSum(main))
		}
	}

	usedSpace := func() float32 {
		used := gaps
		for i := range line.items {
			item := &line.items[i]
			if item.frozen {
				used += item.target.Get(main) + item.margin.AxisSum(main)
			} else {
				used += item.flexBasis + item.margin.AxisSum(main)
			}
		}
		return used
	}
	initialFree := innerMain.Sub(usedSpace()).UnwrapOr(0)

	// Each pass freezes at least one item, so len+1 passes always suffice.
	for pass := 0; pass <= len(line.items); pass++ {
		var sumGrow, sumShrink, sumScaledShrink float32
		unfrozen := 0
		for i := range line.items {
			item := &line.items[i]
			if item.frozen {
				continue
			}
			unfrozen++
			sumGrow += item.flexGrow
			sumShrink += item.flexShrink
			sumScaledShrink += item.innerFlexBasis * item.flexShrink
		}
		if unfrozen == 0 {
			break
		}

		free := innerMain.Sub(usedSpace()).UnwrapOr(0)
		if growing && sumGrow < 1 {
			if scaled := initialFree * sumGrow; abs32(scaled) < abs32(free) {
				free = scaled
			}
		} else if shrinking && sumShrink < 1 {
			if scaled := initialFree * sumShrink; abs32(scaled) < abs32(free) {
				free = scaled
			}
		}

		if free != 0 && !isNaN32(free) && !math.IsInf(float64(free), 0) {
			for i := range line.items {
				item := &line.items[i]
				if item.frozen {
					continue
				}
				switch {
				case growing && sumGrow > 0:
					item.target = item.target.Set(main, item.flexBasis+free*(item.flexGrow/sumGrow))
				case shrinking && sumScaledShrink > 0:
					scaled := item.innerFlexBasis * item.flexShrink
					item.target = item.target.Set(main, item.flexBasis+free*(scaled/sumScaledShrink))
				}
			}
		}

		// Fix min/max violations.
		var totalViolation float32
		for i := range line.items {
			item := &line.items[i]
			if item.frozen {
				continue
			}
			target := item.target.Get(main)
			clamped := max(maybeClamp(target, Some(item.resolvedMinMainSize), item.maxSize.Get(main)), 0)
			item.violation = clamped - target
			item.target = item.target.Set(main, clamped)
			item.outerTarget = item.outerTarget.Set(main, clamped+item.margin.AxisSum(main))
			totalViolation += item.violation
		}

		// Freeze over-flexed items.
		for i := range line.items {
			item := &line.items[i]
			if item.frozen {
				continue
			}
			switch {
			case totalViolation > 0:
				item.frozen = item.violation > 0
			case totalViolation < 0:
				item.frozen = item.violation < 0
			default:
				item.frozen = true
			}
		}
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func isNaN32(v float32) bool { return v != v }
