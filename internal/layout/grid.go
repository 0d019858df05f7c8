package layout

import "slices"

// computeGridLayout lays out a grid container: it resolves the explicit grid,
// places items, sizes columns then rows, aligns the tracks and finally sizes
// and positions every child inside its grid area.
func computeGridLayout(tree Tree, node NodeID, in LayoutInput) LayoutOutput {
	style := tree.LayoutStyle(node)
	known, parentSize := in.KnownDimensions, in.ParentSize

	padding, border := style.resolvedBoxEdges(parentSize.Width)
	inset := padding.Add(border)
	pb := inset.Sum()
	preferred, minSize, maxSize := style.resolvedSizes(parentSize)
	if in.SizingMode != InherentSize {
		preferred = OptSize{}
	}
	styleSize := known.Or(preferred)

	constrained := AvailFromOpt(styleSize, in.AvailableSpace)
	availGrid := AvailSize{
		Width:  constrained.Width.Clamp(minSize.Width, maxSize.Width).MapDefinite(func(v float32) float32 { return max(v, pb.Width) - pb.Width }),
		Height: constrained.Height.Clamp(minSize.Height, maxSize.Height).MapDefinite(func(v float32) float32 { return max(v, pb.Height) - pb.Height }),
	}
	outer := styleSize.Clamp(minSize, maxSize).MaxSize(pb)
	inner := outer.SubSize(pb)

	autoFit := outer.Or(maxSize).Or(minSize).Clamp(minSize, maxSize).MaxSize(pb).SubSize(pb)
	colCount, colReps := explicitTrackCount(style.GridTemplateColumns, autoFit.Width,
		outer.Width.IsSet() || maxSize.Width.IsSet(), style.ColumnGap)
	rowCount, rowReps := explicitTrackCount(style.GridTemplateRows, autoFit.Height,
		outer.Height.IsSet() || maxSize.Height.IsSet(), style.RowGap)

	items, occ := placeGridItems(tree, node, style, colCount, rowCount)
	columns := initTracks(occ.cols, expandTemplate(style.GridTemplateColumns, colReps), style.GridAutoColumns)
	rows := initTracks(occ.rows, expandTemplate(style.GridTemplateRows, rowReps), style.GridAutoRows)

	for i := range items {
		markCrossings(&items[i], Horizontal, columns, occ.cols, inner.Width)
		markCrossings(&items[i], Vertical, rows, occ.rows, inner.Height)
	}

	colGap := style.ColumnGap.ResolveOrZero(inner.Width)
	rowGap := style.RowGap.ResolveOrZero(inner.Height)
	contentMin, contentMax := minSize.SubSize(pb), maxSize.SubSize(pb)
	stretchCols := style.JustifyContent == JustifyNormal || style.JustifyContent == JustifyStretch
	stretchRows := style.AlignContent == AlignNormal || style.AlignContent == AlignStretch

	baseEstimate := func(t *gridTrack, _ Opt) Opt { return Some(t.base) }
	cols := &trackSizer{
		tree:     tree, axis: Horizontal, items: items,
		tracks:   columns, other: rows, counts: occ.cols, otherCounts: occ.rows,
		gap:      colGap, otherGap: rowGap,
		inner:    inner, available: availGrid.Width,
		estimate: func(t *gridTrack, ref Opt) Opt { return t.sizing.Max.definite(ref) },
	}
	cols.run(contentMin.Width, contentMax.Width, stretchCols)
	colSum := sumBase(columns) + cols.gaps(len(columns))
	inner.Width = inner.Width.Or(Some(colSum))
	recordMinContent(cols)

	rowSizer := &trackSizer{
		tree:     tree, axis: Vertical, items: items,
		tracks:   rows, other: columns, counts: occ.rows, otherCounts: occ.cols,
		gap:      rowGap, otherGap: colGap,
		inner:    inner, available: availGrid.Height,
		estimate: baseEstimate,
	}
	rowSizer.run(contentMin.Height, contentMax.Height, stretchRows)
	rowSum := sumBase(rows) + rowSizer.gaps(len(rows))
	inner.Height = inner.Height.Or(Some(rowSum))
	recordMinContent(rowSizer)

	size := Size{
		Width:  max(maybeClamp(styleSize.Width.UnwrapOr(colSum+pb.Width), minSize.Width, maxSize.Width), pb.Width),
		Height: max(maybeClamp(styleSize.Height.UnwrapOr(rowSum+pb.Height), minSize.Height, maxSize.Height), pb.Height),
	}
	if in.RunMode == ComputeSize {
		return outputFromSize(size, Size{})
	}
	contentBox := Size{Width: max(0, size.Width-pb.Width), Height: max(0, size.Height-pb.Height)}

	// Percentage tracks sized against an unknown container resolved to auto;
	// now the container size is known they resolve for real.
	if !availGrid.Width.IsDefinite() {
		resolvePercentTracks(columns, contentBox.Width)
	}
	if !availGrid.Height.IsDefinite() {
		resolvePercentTracks(rows, contentBox.Height)
	}

	cols.inner, cols.estimate = inner, baseEstimate
	rerunCols := !in.AvailableSpace.Width.IsDefinite() && slices.ContainsFunc(columns, func(t gridTrack) bool { return t.usesPercentage() })
	if rerunCols || minContentChanged(cols) {
		cols.run(contentMin.Width, contentMax.Width, stretchCols)

		rowSizer.inner = inner
		rerunRows := !in.AvailableSpace.Height.IsDefinite() && slices.ContainsFunc(rows, func(t gridTrack) bool { return t.usesPercentage() })
		if rerunRows || minContentChanged(rowSizer) {
			rowSizer.run(contentMin.Height, contentMax.Height, stretchRows)
		}
		if debugEnabled() {
			Logger().Debug("grid tracks resized", "node", node, "rows", rerunRows)
		}
	}

	alignTracks(columns, contentBox.Width, inset.Left, colGap, style.JustifyContent)
	alignTracks(rows, contentBox.Height, inset.Top, rowGap, contentMode(style.AlignContent))

	var content Size
	for i := range items {
		it := &items[i]
		c, r := it.tracks(Horizontal, occ.cols), it.tracks(Vertical, occ.rows)
		origin := Point{X: columns[c.start].offset, Y: rows[r.start].offset}
		area := Size{
			Width:  trackEnd(columns, c.end) - origin.X,
			Height: trackEnd(rows, r.end) - origin.Y,
		}
		contribution, y, height, baseline := layoutGridChild(tree, it.node, uint32(it.index), it.style, origin, area, it.justifySelf, it.alignSelf)
		it.y, it.height, it.baseline = y, height, baseline
		content = content.Max(contribution)
	}

	for i, child := range tree.LayoutChildren(node) {
		cs := tree.LayoutStyle(child)
		if cs.Display == DisplayNone || cs.Position != PositionAbsolute {
			continue
		}
		origin, area := absoluteGridArea(cs, columns, rows, occ, size, border)
		justify := resolveSelfAlign(cs.JustifySelf, style.JustifyItems)
		align := resolveSelfAlign(cs.AlignSelf, style.AlignItems)
		contribution, _, _, _ := layoutGridChild(tree, child, uint32(i), cs, origin, area, justify, align)
		content = content.Max(contribution)
	}
	layoutHiddenChildren(tree, node)

	out := outputFromSize(size, content)
	if len(items) > 0 {
		out.FirstBaselines.Y = Some(gridBaseline(items))
	}
	return out
}

// markCrossings records whether the item spans a flexible or an intrinsic
// track along axis.
func markCrossings(item *gridItem, axis Axis, tracks []gridTrack, counts trackCounts, ref Opt) {
	r := item.tracks(axis, counts)
	for i := r.start; i < r.end; i++ {
		t := &tracks[i]
		if t.isFlexible() {
			item.crossesFlexible[axis] = true
		}
		if t.minIntrinsic(ref) || t.maxIntrinsic(ref) {
			item.crossesIntrinsic[axis] = true
		}
	}
}

func recordMinContent(s *trackSizer) {
	for i := range s.items {
		if it := &s.items[i]; it.crossesIntrinsic[s.axis] {
			it.minContent[s.axis] = s.minContent(it)
		}
	}
}

// minContentChanged reports whether any item crossing an intrinsic track now
// contributes a different min-content size than in the first pass.
func minContentChanged(s *trackSizer) bool {
	for i := range s.items {
		it := &s.items[i]
		if it.crossesIntrinsic[s.axis] && s.minContent(it) != it.minContent[s.axis] {
			return true
		}
	}
	return false
}

func resolvePercentTracks(tracks []gridTrack, size float32) {
	ref := Some(size)
	for i := range tracks {
		t := &tracks[i]
		if !t.usesPercentage() {
			continue
		}
		t.base = maybeMin(maybeMax(t.base, t.sizing.Min.definite(ref)), t.sizing.Max.definite(ref))
	}
}

// alignTracks assigns track offsets, distributing leftover space per
// justify-content or align-content.
func alignTracks(tracks []gridTrack, size, start, gap float32, mode Justify) {
	free := size - sumBase(tracks) - float32(max(len(tracks)-1, 0))*gap
	offset := start
	for i := range tracks {
		offset += AlignmentOffset(free, len(tracks), gap, mode, false, i == 0)
		tracks[i].offset = offset
		offset += tracks[i].base
	}
}

// trackEnd is the position of the line closing the track before end.
func trackEnd(tracks []gridTrack, end int) float32 {
	t := &tracks[end-1]
	return t.offset + t.base
}

// absoluteGridArea resolves the containing block of an absolutely positioned
// grid child. Sides without a resolvable line use the padding edge.
func absoluteGridArea(cs *Style, columns, rows []gridTrack, occ *occupancy, size Size, border Edges) (Point, Size) {
	left, right := absoluteSides(toOriginZero(cs.GridColumn, occ.cols.explicit), columns, occ.cols, border.Left, size.Width-border.Right)
	top, bottom := absoluteSides(toOriginZero(cs.GridRow, occ.rows.explicit), rows, occ.rows, border.Top, size.Height-border.Bottom)
	return Point{X: left, Y: top}, Size{Width: max(right-left, 0), Height: max(bottom-top, 0)}
}

func absoluteSides(line ozGridLine, tracks []gridTrack, counts trackCounts, lo, hi float32) (start, end float32) {
	start, end = lo, hi
	s, e, hasStart, hasEnd := line.absoluteLines()
	if idx := counts.index(s); hasStart && idx >= 0 && idx < len(tracks) {
		start = tracks[idx].offset
	}
	if idx := counts.index(e); hasEnd && idx > 0 && idx <= len(tracks) {
		end = trackEnd(tracks, idx)
	}
	return start, end
}

// layoutGridChild sizes a child within its grid area, aligns it per its
// resolved justify and align values and stores its layout. It returns the
// child's content size contribution, its y position, height and baseline.
func layoutGridChild(tree Tree, child NodeID, order uint32, cs *Style, origin Point, area Size, justify, align Align) (Size, float32, float32, Opt) {
	areaOpt := area.Opt()
	absolute := cs.Position == PositionAbsolute
	insets := cs.Inset.resolveInsets(areaOpt)
	padding, border := cs.resolvedBoxEdges(Some(area.Width))
	pb := padding.Add(border).Sum()
	size, minSize, maxSize := cs.resolvedSizes(areaOpt)
	minSize = minSize.Or(pb.Opt()).MaxSize(pb)

	// Vertical margins resolve against the area width too.
	margin := cs.Margin.resolveOpt(Some(area.Width))
	avail := Size{
		Width:  area.Width - margin.Left.UnwrapOr(0) - margin.Right.UnwrapOr(0),
		Height: area.Height - margin.Top.UnwrapOr(0) - margin.Bottom.UnwrapOr(0),
	}

	stretched := func(axis Axis, self Align) Opt {
		if absolute {
			if s, ok := insets.start(axis).Get(); ok {
				if e, ok := insets.end(axis).Get(); ok {
					return Some(max(avail.Get(axis)-s-e, 0))
				}
			}
			return None
		}
		if margin.start(axis).IsSet() && margin.end(axis).IsSet() && self == AlignStretch {
			return Some(avail.Get(axis))
		}
		return None
	}

	k := OptSize{Width: size.Width.Or(stretched(Horizontal, justify)), Height: size.Height}.ApplyAspectRatio(cs.AspectRatio)
	k.Height = k.Height.Or(stretched(Vertical, align))
	k = k.ApplyAspectRatio(cs.AspectRatio).Clamp(minSize, maxSize)

	out := performChildLayout(tree, child, k, areaOpt, AvailFromSize(avail), InherentSize, false)
	final := k.UnwrapOr(out.Size).Clamp(minSize, maxSize)

	x, ml, mr := alignInArea(origin.X, area.Width, justify, final.Width, absolute, insets.Left, insets.Right, margin.Left, margin.Right)
	y, mt, mb := alignInArea(origin.Y, area.Height, align, final.Height, absolute, insets.Top, insets.Bottom, margin.Top, margin.Bottom)

	location := Point{X: x, Y: y}
	tree.SetLayout(child, Layout{
		Order:       order,
		Location:    location,
		Size:        final,
		ContentSize: out.ContentSize,
		Border:      border,
		Padding:     padding,
		Margin:      Edges{Top: mt, Right: mr, Bottom: mb, Left: ml},
	})
	return contentContribution(location, final, out.ContentSize), y, final.Height, out.FirstBaselines.Y
}

// alignInArea positions a box of used size within [start, start+size) and
// returns its position and resolved margins. Auto margins share the free
// space; absolutely positioned boxes honour their insets first.
func alignInArea(start, size float32, mode Align, used float32, absolute bool, insetStart, insetEnd, marginStart, marginEnd Opt) (pos, mStart, mEnd float32) {
	fixedStart, fixedEnd := marginStart.UnwrapOr(0), marginEnd.UnwrapOr(0)
	free := max(size-used-fixedStart-fixedEnd, 0)
	autos := 0
	if !marginStart.IsSet() {
		autos++
	}
	if !marginEnd.IsSet() {
		autos++
	}
	var share float32
	if autos > 0 {
		share = free / float32(autos)
	}
	mStart, mEnd = marginStart.UnwrapOr(share), marginEnd.UnwrapOr(share)

	offset := mStart + selfOffset(size-used-mStart-mEnd, mode, false)
	if absolute {
		if s, ok := insetStart.Get(); ok {
			offset = s + fixedStart
		} else if e, ok := insetEnd.Get(); ok {
			offset = size - e - used - fixedEnd
		}
	}

	pos = start + offset
	if !absolute {
		pos += insetStart.Or(negOpt(insetEnd)).UnwrapOr(0)
	}
	return pos, mStart, mEnd
}

// gridBaseline is the first baseline of a grid container: the baseline of
// the first baseline-aligned item in the first occupied row, or else of the
// first item in that row, falling back to its bottom edge.
func gridBaseline(items []gridItem) float32 {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b gridItem) int { return a.row.start - b.row.start })
	first := sorted[0].row.start
	pick := &sorted[0]
	for i := range sorted {
		if sorted[i].row.start != first {
			break
		}
		if sorted[i].alignSelf == AlignBaseline {
			pick = &sorted[i]
			break
		}
	}
	return pick.y + pick.baseline.UnwrapOr(pick.height)
}

// gridItemKnown is the size an item is measured at during track sizing: its
// preferred size, stretched to its grid area on any axis where the area is
// already known.
func gridItemKnown(item *gridItem, inner, area OptSize) OptSize {
	st := item.style
	margin := st.Margin.ResolveOrZero(inner.Width)
	autos := st.Margin.autoSides()
	size, minSize, maxSize := st.resolvedSizes(area)

	k := size
	if !k.Width.IsSet() && !autos.Left && !autos.Right && item.justifySelf == AlignStretch {
		k.Width = area.Width.Sub(margin.Horizontal())
	}
	k = k.ApplyAspectRatio(st.AspectRatio)
	if !k.Height.IsSet() && !autos.Top && !autos.Bottom && item.alignSelf == AlignStretch {
		k.Height = area.Height.Sub(margin.Vertical())
	}
	return k.ApplyAspectRatio(st.AspectRatio).Clamp(minSize, maxSize)
}
