package layout

import "math"

// ozPlacement is a GridPlacement whose line number has been converted to an
// origin-zero line: line 0 is the start edge of the explicit grid.
type ozPlacement struct {
	kind  PlacementKind
	value int
}

type ozGridLine struct {
	start, end ozPlacement
}

// originZeroLine converts a 1-based CSS line number. Negative numbers count
// back from the end edge of the explicit grid.
func originZeroLine(line, explicit int) int {
	if line > 0 {
		return line - 1
	}
	return explicit + 1 + line
}

func toOriginZero(l GridLine, explicit int) ozGridLine {
	conv := func(p GridPlacement) ozPlacement {
		switch {
		case p.Kind == PlaceLine && p.Value != 0:
			return ozPlacement{kind: PlaceLine, value: originZeroLine(p.Value, explicit)}
		case p.Kind == PlaceSpan:
			return ozPlacement{kind: PlaceSpan, value: max(p.Value, 1)}
		default:
			return ozPlacement{}
		}
	}
	return ozGridLine{start: conv(l.Start), end: conv(l.End)}
}

// isDefinite reports whether at least one end names a line.
func (g ozGridLine) isDefinite() bool {
	return g.start.kind == PlaceLine || g.end.kind == PlaceLine
}

// indefiniteSpan is the number of tracks an auto-placed item occupies.
func (g ozGridLine) indefiniteSpan() int {
	switch {
	case g.start.kind == PlaceSpan:
		return g.start.value
	case g.end.kind == PlaceSpan:
		return g.end.value
	default:
		return 1
	}
}

// definiteSpan resolves a placement with at least one line. Equal lines span
// one track and reversed lines are swapped.
func (g ozGridLine) definiteSpan() span {
	s, e := g.start, g.end
	switch {
	case s.kind == PlaceLine && e.kind == PlaceLine:
		if s.value == e.value {
			return span{start: s.value, end: s.value + 1}
		}
		return span{start: min(s.value, e.value), end: max(s.value, e.value)}
	case s.kind == PlaceLine && e.kind == PlaceSpan:
		return span{start: s.value, end: s.value + e.value}
	case s.kind == PlaceLine:
		return span{start: s.value, end: s.value + 1}
	case s.kind == PlaceSpan && e.kind == PlaceLine:
		return span{start: e.value - s.value, end: e.value}
	default:
		return span{start: e.value - 1, end: e.value}
	}
}

// absoluteLines resolves the lines of an absolutely positioned item. A side
// that cannot be resolved is reported as missing and falls back to the
// container's padding edge.
func (g ozGridLine) absoluteLines() (start, end int, hasStart, hasEnd bool) {
	s, e := g.start, g.end
	switch {
	case s.kind == PlaceLine && e.kind == PlaceLine:
		if s.value == e.value {
			return s.value, s.value + 1, true, true
		}
		return min(s.value, e.value), max(s.value, e.value), true, true
	case s.kind == PlaceLine && e.kind == PlaceSpan:
		return s.value, s.value + e.value, true, true
	case s.kind == PlaceLine:
		return s.value, 0, true, false
	case s.kind == PlaceSpan && e.kind == PlaceLine:
		return e.value - s.value, e.value, true, true
	case e.kind == PlaceLine:
		return 0, e.value, false, true
	default:
		return 0, 0, false, false
	}
}

// gridItem is an in-flow child of a grid container together with its
// placement and the per-axis facts the track sizing algorithm needs.
type gridItem struct {
	node  NodeID
	index int
	style *Style

	// row and col are origin-zero line spans.
	row, col span

	alignSelf, justifySelf Align

	crossesFlexible  [2]bool
	crossesIntrinsic [2]bool

	// minContent holds the min-content contribution measured in the first
	// pass of each axis; a change once both axes are sized triggers a re-run.
	minContent [2]float32

	y, height float32
	baseline  Opt
}

func (g *gridItem) lines(axis Axis) span {
	if axis == Horizontal {
		return g.col
	}
	return g.row
}

// tracks returns the item's span as indexes into the track slice of axis.
func (g *gridItem) tracks(axis Axis, counts trackCounts) span {
	l := g.lines(axis)
	return span{start: counts.index(l.start), end: counts.index(l.end)}
}

// self returns the resolved self alignment on axis.
func (g *gridItem) self(axis Axis) Align {
	if axis == Horizontal {
		return g.justifySelf
	}
	return g.alignSelf
}

func resolveSelfAlign(self, items Align) Align {
	if self == AlignNormal {
		self = items
	}
	if self == AlignNormal {
		return AlignStretch
	}
	return self
}

type gridCandidate struct {
	index    int
	node     NodeID
	style    *Style
	col, row ozGridLine
}

func (c *gridCandidate) line(axis Axis) ozGridLine {
	if axis == Horizontal {
		return c.col
	}
	return c.row
}

// placeGridItems assigns every in-flow child a grid area. Items with both
// lines definite go first, then items locked to a secondary-axis track, then
// everything else in source order behind an auto-placement cursor.
func placeGridItems(tree Tree, node NodeID, style *Style, explicitCols, explicitRows int) ([]gridItem, *occupancy) {
	flow := style.GridAutoFlow
	primary := flow.primaryAxis()
	secondary := primary.Other()
	occ := newOccupancy(trackCounts{explicit: explicitCols}, trackCounts{explicit: explicitRows})

	var cands []gridCandidate
	for i, child := range tree.LayoutChildren(node) {
		cs := tree.LayoutStyle(child)
		if cs.Display == DisplayNone || cs.Position == PositionAbsolute {
			continue
		}
		cands = append(cands, gridCandidate{
			index: i,
			node:  child,
			style: cs,
			col:   toOriginZero(cs.GridColumn, explicitCols),
			row:   toOriginZero(cs.GridRow, explicitRows),
		})
	}

	items := make([]gridItem, 0, len(cands))
	record := func(c *gridCandidate, p, s span, state cellState) {
		occ.mark(primary, p, s, state)
		rowSpan, colSpan := rowColSpans(primary, p, s)
		items = append(items, gridItem{
			node:        c.node,
			index:       c.index,
			style:       c.style,
			row:         rowSpan,
			col:         colSpan,
			alignSelf:   resolveSelfAlign(c.style.AlignSelf, style.AlignItems),
			justifySelf: resolveSelfAlign(c.style.JustifySelf, style.JustifyItems),
		})
	}

	for i := range cands {
		c := &cands[i]
		if c.col.isDefinite() && c.row.isDefinite() {
			record(c, c.line(primary).definiteSpan(), c.line(secondary).definiteSpan(), cellDefinite)
		}
	}

	for i := range cands {
		c := &cands[i]
		if c.line(secondary).isDefinite() && !c.line(primary).isDefinite() {
			p, s := placeLockedItem(occ, c.line(primary), c.line(secondary), flow)
			record(c, p, s, cellAuto)
		}
	}

	// Widen the grid so the largest fully automatic span fits on one line.
	widest := 0
	for i := range cands {
		c := &cands[i]
		if !c.line(primary).isDefinite() && !c.line(secondary).isDefinite() {
			widest = max(widest, c.line(primary).indefiniteSpan())
		}
	}
	if counts := occ.counts(primary); widest > counts.len() {
		grow := span{start: counts.implicitStart(), end: counts.implicitStart() + widest}
		other := occ.counts(secondary).implicitStart()
		rowSpan, colSpan := rowColSpans(primary, grow, span{start: other, end: other})
		occ.expandToFit(rowSpan, colSpan)
	}

	startP := occ.counts(primary).implicitStart()
	startS := occ.counts(secondary).implicitStart()
	cursorP, cursorS := startP, startS
	for i := range cands {
		c := &cands[i]
		if c.line(secondary).isDefinite() {
			continue
		}
		p, s := placeAutoItem(occ, c.line(primary), c.line(secondary), flow, cursorP, cursorS)
		record(c, p, s, cellAuto)
		if flow.isDense() {
			cursorP, cursorS = startP, startS
		} else {
			cursorP, cursorS = p.end, s.start
		}
	}
	return items, occ
}

// placeLockedItem places an item whose secondary-axis track is fixed by
// walking along the primary axis until the area is free.
func placeLockedItem(occ *occupancy, primary, secondary ozGridLine, flow GridAutoFlow) (span, span) {
	axis := flow.primaryAxis()
	s := secondary.definiteSpan()
	pos := occ.counts(axis).implicitStart()
	if !flow.isDense() {
		if last, ok := occ.lastOfType(axis, s.start, cellAuto); ok {
			pos = last
		}
	}
	n := primary.indefiniteSpan()
	for {
		p := span{start: pos, end: pos + n}
		if occ.isFree(axis, p, s) {
			return p, s
		}
		pos++
	}
}

// placeAutoItem runs the auto-placement cursor for an item whose secondary
// axis position is not fixed.
func placeAutoItem(occ *occupancy, primary, secondary ozGridLine, flow GridAutoFlow, cursorP, cursorS int) (span, span) {
	axis := flow.primaryAxis()
	sn := secondary.indefiniteSpan()

	if primary.isDefinite() {
		p := primary.definiteSpan()
		if p.start < cursorP {
			cursorS++
		}
		for s := cursorS; ; s++ {
			ss := span{start: s, end: s + sn}
			if occ.isFree(axis, p, ss) {
				return p, ss
			}
		}
	}

	counts := occ.counts(axis)
	pn := primary.indefiniteSpan()
	p, s := cursorP, cursorS
	for {
		ps := span{start: p, end: p + pn}
		// An item wider than the grid is still placed at the start of a line.
		if ps.end > counts.implicitEnd() && p != counts.implicitStart() {
			s++
			p = counts.implicitStart()
			continue
		}
		ss := span{start: s, end: s + sn}
		if occ.isFree(axis, ps, ss) {
			return ps, ss
		}
		p++
	}
}

// definite returns the fixed size of a track function, or None when it is
// intrinsic, flexible or a percentage of an unknown size.
func (f TrackFunc) definite(ref Opt) Opt {
	if f.Kind != SizingFixed {
		return None
	}
	return f.Value.Resolve(ref)
}

// trackFixedSize treats a track as its max function when definite and as its
// min function otherwise, flooring the max by the min.
func trackFixedSize(t TrackSizing, ref Opt) Opt {
	lo := t.Min.definite(ref)
	if hi, ok := t.Max.definite(ref).Get(); ok {
		return Some(hi).Max(lo)
	}
	return lo
}

// explicitTrackCount counts the explicit tracks along one axis. inner is the
// container's content-box size (or max/min size) used to resolve
// repeat(auto-fill); isMax reports whether it comes from a size or max size
// rather than a min size.
func explicitTrackCount(templates []GridTemplate, inner Opt, isMax bool, gap Value) (count, repetitions int) {
	if len(templates) == 0 {
		return 0, 0
	}
	var autoRepeat *GridTemplate
	fixed := 0
	for i := range templates {
		t := &templates[i]
		switch {
		case t.isAutoFill():
			if autoRepeat != nil {
				return 0, 0
			}
			autoRepeat = t
		case t.isRepeat():
			fixed += t.Count * len(t.Tracks)
		default:
			fixed++
		}
	}
	if autoRepeat == nil {
		return fixed, 0
	}

	// An auto-fill template is only valid when every track has a fixed side.
	for _, t := range templates {
		tracks := t.Tracks
		if !t.isRepeat() {
			tracks = []TrackSizing{t.Track}
		}
		for _, ts := range tracks {
			if ts.Min.Kind != SizingFixed && ts.Max.Kind != SizingFixed {
				return 0, 0
			}
		}
	}

	size, ok := inner.Get()
	if !ok {
		return fixed + len(autoRepeat.Tracks), 1
	}

	ref := Some(size)
	fixedSpace := float32(0)
	for _, t := range templates {
		switch {
		case t.isAutoFill():
		case t.isRepeat():
			for _, ts := range t.Tracks {
				fixedSpace += float32(t.Count) * trackFixedSize(ts, ref).UnwrapOr(0)
			}
		default:
			fixedSpace += trackFixedSize(t.Track, ref).UnwrapOr(0)
		}
	}
	perRepeat := float32(0)
	for _, ts := range autoRepeat.Tracks {
		perRepeat += trackFixedSize(ts, ref).UnwrapOr(0)
	}
	g := gap.ResolveOrZero(ref)
	first := fixedSpace + perRepeat + float32(max(fixed+len(autoRepeat.Tracks)-1, 0))*g

	repetitions = 1
	perRepeatWithGaps := perRepeat + float32(len(autoRepeat.Tracks))*g
	if first <= size && perRepeatWithGaps > 0 {
		fit := float64((size - first) / perRepeatWithGaps)
		if isMax {
			repetitions += int(math.Floor(fit))
		} else {
			repetitions += int(math.Ceil(fit))
		}
	}
	return fixed + repetitions*len(autoRepeat.Tracks), repetitions
}

// expandTemplate flattens a template into its explicit track list.
func expandTemplate(templates []GridTemplate, repetitions int) []TrackSizing {
	var out []TrackSizing
	for _, t := range templates {
		switch {
		case t.isAutoFill():
			for range repetitions {
				out = append(out, t.Tracks...)
			}
		case t.isRepeat():
			for range t.Count {
				out = append(out, t.Tracks...)
			}
		default:
			out = append(out, t.Track)
		}
	}
	return out
}
