package layout

import (
	"cmp"
	"math"
	"slices"
)

var inf = float32(math.Inf(1))

func isInf(v float32) bool { return math.IsInf(float64(v), 1) }

// gridTrack is a row or column during track sizing.
type gridTrack struct {
	sizing TrackSizing

	base  float32
	limit float32 // growth limit, +Inf while unbounded

	infinitelyGrowable bool
	incurred           float32
	plannedBase        float32
	plannedLimit       float32

	offset float32
}

func (t *gridTrack) isFlexible() bool { return t.sizing.Max.Kind == SizingFr }

func (t *gridTrack) flexFactor() float32 {
	if t.isFlexible() {
		return t.sizing.Max.Fr
	}
	return 0
}

// minIntrinsic reports whether the min function has no definite size.
func (t *gridTrack) minIntrinsic(ref Opt) bool { return !t.sizing.Min.definite(ref).IsSet() }

// maxIntrinsic reports whether the max function is content-based.
func (t *gridTrack) maxIntrinsic(ref Opt) bool {
	return !t.isFlexible() && !t.sizing.Max.definite(ref).IsSet()
}

// maxContentAlike reports whether the max function grows to max-content.
func (t *gridTrack) maxContentAlike() bool {
	switch t.sizing.Max.Kind {
	case SizingAuto, SizingMaxContent, SizingFitContent:
		return true
	}
	return false
}

func (t *gridTrack) usesPercentage() bool {
	pct := func(f TrackFunc) bool {
		return (f.Kind == SizingFixed || f.Kind == SizingFitContent) &&
			(f.Value.Unit == UnitPercent || f.Value.Unit == UnitCalc)
	}
	return pct(t.sizing.Min) || pct(t.sizing.Max)
}

// fitContentLimit is the fit-content() argument, +Inf for other tracks.
func (t *gridTrack) fitContentLimit(ref Opt) float32 {
	if t.sizing.Max.Kind != SizingFitContent {
		return inf
	}
	if v, ok := t.sizing.Max.Value.Resolve(ref).Get(); ok {
		return v
	}
	return inf
}

func (t *gridTrack) fitContentLimitedGrowth(ref Opt) float32 {
	return min(t.limit, t.fitContentLimit(ref))
}

// maxLimit is the definite cap a track's max function places on content.
func (t *gridTrack) maxLimit(ref Opt) Opt {
	switch t.sizing.Max.Kind {
	case SizingFixed, SizingFitContent:
		return t.sizing.Max.Value.Resolve(ref)
	}
	return None
}

// initTracks builds the tracks of one axis: implicit tracks before the
// explicit grid, the explicit tracks, then implicit tracks after it. Implicit
// tracks cycle through auto, counting backwards before the explicit grid.
func initTracks(counts trackCounts, explicit, auto []TrackSizing) []gridTrack {
	if len(auto) == 0 {
		auto = []TrackSizing{AutoTrack()}
	}
	n := len(auto)
	tracks := make([]gridTrack, 0, counts.len())
	add := func(ts TrackSizing) {
		if ts.Min.Kind == SizingFr || ts.Min.Kind == SizingFitContent {
			ts.Min = TrackFunc{Kind: SizingAuto}
		}
		tracks = append(tracks, gridTrack{sizing: ts})
	}
	for k := range counts.negative {
		add(auto[((k-counts.negative)%n+n)%n])
	}
	for k := range counts.explicit {
		if k < len(explicit) {
			add(explicit[k])
		} else {
			add(AutoTrack())
		}
	}
	for k := range counts.positive {
		add(auto[k%n])
	}
	return tracks
}

func sumBase(tracks []gridTrack) float32 {
	var total float32
	for i := range tracks {
		total += tracks[i].base
	}
	return total
}

// trackSizer runs the track sizing algorithm for one axis.
type trackSizer struct {
	tree  Tree
	axis  Axis
	items []gridItem

	tracks, other       []gridTrack
	counts, otherCounts trackCounts
	gap, otherGap       float32

	// inner is the container's content-box size as known so far.
	inner OptSize
	// available is the available grid space along axis.
	available AvailableSpace
	// estimate sizes an other-axis track for measuring items.
	estimate func(t *gridTrack, ref Opt) Opt
}

func (s *trackSizer) ref() Opt { return s.inner.Get(s.axis) }

func (s *trackSizer) gaps(n int) float32 { return float32(max(n-1, 0)) * s.gap }

// run sizes s.tracks. minSize and maxSize are the container's content-box
// limits along axis; stretch grows auto tracks into leftover space.
func (s *trackSizer) run(minSize, maxSize Opt, stretch bool) {
	ref := s.ref()
	fixed := true
	for i := range s.tracks {
		t := &s.tracks[i]
		t.base = t.sizing.Min.definite(ref).UnwrapOr(0)
		t.limit = t.sizing.Max.definite(ref).UnwrapOr(inf)
		if t.limit < t.base {
			t.limit = t.base
		}
		t.infinitelyGrowable = false
		t.incurred, t.plannedBase, t.plannedLimit = 0, 0, 0
		fixed = fixed && t.base == t.limit
	}
	if fixed {
		return
	}

	s.resolveIntrinsic()
	s.maximise()

	// Flexible and auto tracks only expand into space the container's own
	// size provides.
	expansion := MaxContent
	if v, ok := ref.Get(); ok {
		expansion = Definite(v)
	} else if s.available.Kind == SpaceMinContent {
		expansion = MinContent
	}
	s.expandFlexible(minSize, maxSize, expansion)
	if stretch {
		s.stretchAuto(minSize, expansion)
	}
}

// areaSize estimates the item's grid area in the other axis.
func (s *trackSizer) areaSize(item *gridItem) OptSize {
	r := item.tracks(s.axis.Other(), s.otherCounts)
	ref := s.inner.Get(s.axis.Other())
	var total float32
	for i := r.start; i < r.end; i++ {
		v, ok := s.estimate(&s.other[i], ref).Get()
		if !ok {
			return OptSize{}
		}
		total += v
	}
	total += float32(max(r.len()-1, 0)) * s.otherGap
	return OptSize{}.Set(s.axis.Other(), Some(total))
}

func (s *trackSizer) measure(item *gridItem, space AvailableSpace) float32 {
	area := s.areaSize(item)
	known := gridItemKnown(item, s.inner, area)
	avail := AvailFromOpt(area, AvailSize{Width: space, Height: space})
	return measureChildSize(s.tree, item.node, known, s.inner, avail, InherentSize, s.axis, false)
}

func (s *trackSizer) margins(item *gridItem) float32 {
	return item.style.Margin.ResolveOrZero(s.inner.Width).AxisSum(s.axis)
}

func (s *trackSizer) minContent(item *gridItem) float32 {
	return s.measure(item, MinContent) + s.margins(item)
}

func (s *trackSizer) maxContent(item *gridItem) float32 {
	return s.measure(item, MaxContent) + s.margins(item)
}

// minimum is the item's minimum contribution: its preferred or min size, or
// the automatic minimum when both are auto.
func (s *trackSizer) minimum(item *gridItem) float32 {
	size, minSize, _ := item.style.resolvedSizes(s.inner)
	v, ok := size.Get(s.axis).Get()
	if !ok {
		v, ok = minSize.Get(s.axis).Get()
	}
	if !ok {
		v = 0
		r := item.tracks(s.axis, s.counts)
		spansAuto, spansFlex := false, false
		for i := r.start; i < r.end; i++ {
			spansAuto = spansAuto || s.tracks[i].sizing.Min.Kind == SizingAuto
			spansFlex = spansFlex || s.tracks[i].isFlexible()
		}
		if spansAuto && (r.len() == 1 || !spansFlex) {
			v = s.measure(item, MinContent)
		}
	}
	return maybeMin(v, s.spannedFixedLimit(item)) + s.margins(item)
}

// spannedFixedLimit sums the fixed max functions of the item's tracks, or is
// None if any of them is not fixed.
func (s *trackSizer) spannedFixedLimit(item *gridItem) Opt {
	r := item.tracks(s.axis, s.counts)
	total := s.gaps(r.len())
	for i := r.start; i < r.end; i++ {
		v, ok := s.tracks[i].sizing.Max.definite(s.ref()).Get()
		if !ok {
			return None
		}
		total += v
	}
	return Some(total)
}

// spannedLimit is spannedFixedLimit that also honours fit-content limits.
func (s *trackSizer) spannedLimit(item *gridItem) Opt {
	r := item.tracks(s.axis, s.counts)
	total := s.gaps(r.len())
	for i := r.start; i < r.end; i++ {
		v, ok := s.tracks[i].maxLimit(s.ref()).Get()
		if !ok {
			return None
		}
		total += v
	}
	return Some(total)
}

// limitedMinimum is the contribution used for auto minimums: the limited
// min-content contribution under an intrinsic constraint, otherwise the
// minimum contribution.
func (s *trackSizer) limitedMinimum(item *gridItem, limit Opt) float32 {
	if s.available.IsDefinite() {
		return s.minimum(item)
	}
	return max(maybeMin(s.minContent(item), limit), s.minimum(item))
}

// resolveIntrinsic sizes intrinsic tracks from item contributions: single
// span items first, then larger spans in ascending order, then every item
// that crosses a flexible track.
func (s *trackSizer) resolveIntrinsic() {
	order := make([]int, len(s.items))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		ia, ib := &s.items[a], &s.items[b]
		fa, fb := ia.crossesFlexible[s.axis], ib.crossesFlexible[s.axis]
		if fa != fb {
			if fa {
				return 1
			}
			return -1
		}
		return cmp.Compare(ia.lines(s.axis).len(), ib.lines(s.axis).len())
	})

	for start := 0; start < len(order); {
		first := &s.items[order[start]]
		isFlex := first.crossesFlexible[s.axis]
		n := first.lines(s.axis).len()
		end := start + 1
		for end < len(order) {
			it := &s.items[order[end]]
			if it.crossesFlexible[s.axis] != isFlex || (!isFlex && it.lines(s.axis).len() != n) {
				break
			}
			end++
		}
		batch := order[start:end]
		start = end
		if !isFlex && n == 1 {
			s.sizeSingleSpan(batch)
		} else {
			s.sizeSpanning(batch, isFlex)
		}
	}

	for i := range s.tracks {
		if t := &s.tracks[i]; isInf(t.limit) {
			t.limit = t.base
		}
	}
}

func (s *trackSizer) sizeSingleSpan(batch []int) {
	ref := s.ref()
	for _, idx := range batch {
		item := &s.items[idx]
		t := &s.tracks[item.tracks(s.axis, s.counts).start]

		switch t.sizing.Min.Kind {
		case SizingMinContent:
			t.base = max(t.base, s.minContent(item))
		case SizingMaxContent:
			t.base = max(t.base, s.maxContent(item))
		case SizingAuto:
			t.base = max(t.base, s.limitedMinimum(item, t.maxLimit(ref)))
		case SizingFixed:
			// Percentages of an unknown size behave as auto.
			if !t.sizing.Min.definite(ref).IsSet() {
				t.base = max(t.base, s.minimum(item))
			}
		}

		switch {
		case t.sizing.Max.Kind == SizingFitContent:
			t.plannedLimit = max(t.plannedLimit, s.minContent(item))
			t.plannedLimit = max(t.plannedLimit, min(s.maxContent(item), t.fitContentLimit(ref)))
		case t.maxContentAlike() || (t.sizing.Max.Kind == SizingFixed && !t.sizing.Max.definite(ref).IsSet()):
			t.plannedLimit = max(t.plannedLimit, s.maxContent(item))
		case t.sizing.Max.Kind == SizingMinContent:
			t.plannedLimit = max(t.plannedLimit, s.minContent(item))
		}
	}

	for i := range s.tracks {
		t := &s.tracks[i]
		if t.plannedLimit > 0 {
			if isInf(t.limit) {
				t.limit = t.plannedLimit
			} else {
				t.limit = max(t.limit, t.plannedLimit)
			}
		}
		t.infinitelyGrowable = false
		t.plannedLimit = 0
		if t.limit < t.base {
			t.limit = t.base
		}
	}
}

type contributionKind uint8

const (
	contribMinimum contributionKind = iota
	contribMaximum
)

func (s *trackSizer) sizeSpanning(batch []int, isFlex bool) {
	ref := s.ref()
	growth := func(t *gridTrack) float32 { return t.limit }
	unbounded := func(*gridTrack) float32 { return inf }
	fitLimited := func(t *gridTrack) float32 { return t.fitContentLimitedGrowth(ref) }
	minIsContent := func(t *gridTrack) bool {
		return t.sizing.Min.Kind == SizingMinContent || t.sizing.Min.Kind == SizingMaxContent
	}
	minIsMaxContent := func(t *gridTrack) bool { return t.sizing.Min.Kind == SizingMaxContent }
	minIsAuto := func(t *gridTrack) bool {
		return t.sizing.Min.Kind == SizingAuto && t.sizing.Max.Kind != SizingMinContent
	}

	for _, idx := range batch {
		item := &s.items[idx]
		if !item.crossesIntrinsic[s.axis] {
			continue
		}
		space := s.limitedMinimum(item, s.spannedLimit(item))
		s.distributeToBase(item, isFlex, space, func(t *gridTrack) bool { return t.minIntrinsic(ref) }, growth, contribMinimum)
	}
	s.flushBase()

	for _, idx := range batch {
		item := &s.items[idx]
		s.distributeToBase(item, isFlex, s.minContent(item), minIsContent, growth, contribMinimum)
	}
	s.flushBase()

	if s.available.Kind == SpaceMaxContent {
		for _, idx := range batch {
			item := &s.items[idx]
			space := maybeMin(s.maxContent(item), s.spannedFixedLimit(item))
			r := item.tracks(s.axis, s.counts)
			if slices.ContainsFunc(s.tracks[r.start:r.end], func(t gridTrack) bool { return minIsMaxContent(&t) }) {
				s.distributeToBase(item, isFlex, space, minIsMaxContent, unbounded, contribMaximum)
			} else {
				s.distributeToBase(item, isFlex, space, minIsAuto, fitLimited, contribMaximum)
			}
		}
		s.flushBase()
	}

	for _, idx := range batch {
		item := &s.items[idx]
		s.distributeToBase(item, isFlex, s.maxContent(item), minIsMaxContent, growth, contribMaximum)
	}
	s.flushBase()

	for i := range s.tracks {
		if t := &s.tracks[i]; t.limit < t.base {
			t.limit = t.base
		}
	}

	// Flexible tracks have no intrinsic max function.
	if isFlex {
		return
	}
	for _, idx := range batch {
		item := &s.items[idx]
		s.distributeToLimit(item, s.minContent(item), func(t *gridTrack) bool { return t.maxIntrinsic(ref) })
	}
	s.flushLimit(true)

	maxContentMax := func(t *gridTrack) bool {
		return t.maxContentAlike() || (t.sizing.Max.Kind == SizingFixed && !t.sizing.Max.definite(ref).IsSet())
	}
	for _, idx := range batch {
		item := &s.items[idx]
		s.distributeToLimit(item, s.maxContent(item), maxContentMax)
	}
	s.flushLimit(false)
}

// distributeToBase spreads the part of space the item's tracks do not
// already cover over their planned base size increases.
func (s *trackSizer) distributeToBase(item *gridItem, isFlex bool, space float32, affected func(*gridTrack) bool, limit func(*gridTrack) float32, kind contributionKind) {
	r := item.tracks(s.axis, s.counts)
	tracks := s.tracks[r.start:r.end]
	proportion := func(*gridTrack) float32 { return 1 }
	if isFlex {
		inner := affected
		affected = func(t *gridTrack) bool { return t.isFlexible() && inner(t) }
		var factors float32
		for i := range tracks {
			factors += tracks[i].flexFactor()
		}
		if factors != 0 {
			proportion = func(t *gridTrack) float32 { return t.flexFactor() }
		}
	}
	if space <= 0 || !slices.ContainsFunc(tracks, func(t gridTrack) bool { return affected(&t) }) {
		return
	}

	base := func(t *gridTrack) float32 { return t.base }
	extra := max(0, space-sumBase(tracks)-s.gaps(len(tracks)))
	extra = distributeUpToLimits(extra, tracks, affected, proportion, base, limit)

	if extra > 1e-6 {
		var beyond func(*gridTrack) bool
		ref := s.ref()
		if kind == contribMinimum {
			beyond = func(t *gridTrack) bool { return affected(t) && t.maxIntrinsic(ref) }
		} else {
			beyond = func(t *gridTrack) bool {
				return affected(t) && (t.sizing.Max.Kind == SizingMaxContent || t.sizing.Max.Kind == SizingFitContent ||
					t.sizing.Min.Kind == SizingMaxContent)
			}
		}
		if !slices.ContainsFunc(tracks, func(t gridTrack) bool { return beyond(&t) }) {
			beyond = affected
		}
		distributeUpToLimits(extra, tracks, beyond, proportion, base, func(t *gridTrack) float32 { return t.fitContentLimit(ref) })
	}

	for i := range tracks {
		t := &tracks[i]
		t.plannedBase = max(t.plannedBase, t.incurred)
		t.incurred = 0
	}
}

// distributeToLimit spreads the part of space the item's tracks do not
// already cover over their planned growth limit increases.
func (s *trackSizer) distributeToLimit(item *gridItem, space float32, affected func(*gridTrack) bool) {
	r := item.tracks(s.axis, s.counts)
	tracks := s.tracks[r.start:r.end]
	if space <= 0 || !slices.ContainsFunc(tracks, func(t gridTrack) bool { return affected(&t) }) {
		return
	}
	ref := s.ref()
	used := s.gaps(len(tracks))
	for i := range tracks {
		if isInf(tracks[i].limit) {
			used += tracks[i].base
		} else {
			used += tracks[i].limit
		}
	}
	extra := max(0, space-used)

	growable := func(t *gridTrack) bool {
		return affected(t) && (t.infinitelyGrowable || isInf(t.fitContentLimitedGrowth(ref)))
	}
	n := 0
	for i := range tracks {
		if growable(&tracks[i]) {
			n++
		}
	}
	if n > 0 {
		for i := range tracks {
			if growable(&tracks[i]) {
				tracks[i].incurred = extra / float32(n)
			}
		}
	} else {
		current := func(t *gridTrack) float32 {
			if isInf(t.limit) {
				return t.base
			}
			return t.limit
		}
		distributeUpToLimits(extra, tracks, affected, func(*gridTrack) float32 { return 1 }, current,
			func(t *gridTrack) float32 { return t.fitContentLimit(ref) })
	}

	for i := range tracks {
		t := &tracks[i]
		t.plannedLimit = max(t.plannedLimit, t.incurred)
		t.incurred = 0
	}
}

func (s *trackSizer) flushBase() {
	for i := range s.tracks {
		t := &s.tracks[i]
		t.base += t.plannedBase
		t.plannedBase = 0
	}
}

func (s *trackSizer) flushLimit(markGrowable bool) {
	for i := range s.tracks {
		t := &s.tracks[i]
		if t.plannedLimit > 0 {
			if isInf(t.limit) {
				t.limit = t.base + t.plannedLimit
			} else {
				t.limit += t.plannedLimit
			}
			t.infinitelyGrowable = markGrowable
		} else {
			t.infinitelyGrowable = false
		}
		t.plannedLimit = 0
	}
}

// distributeUpToLimits grows the item-incurred increase of affected tracks in
// proportion, never taking a track past its limit, and returns the space it
// could not place.
func distributeUpToLimits(space float32, tracks []gridTrack, affected func(*gridTrack) bool, proportion, current, limit func(*gridTrack) float32) float32 {
	const threshold = 0.01
	eligible := func(t *gridTrack) (float32, float32, bool) {
		if !affected(t) {
			return 0, 0, false
		}
		p := proportion(t)
		room := limit(t) - current(t) - t.incurred
		return p, room, p > 0 && room > 0
	}
	for pass := 0; space > threshold && pass <= len(tracks); pass++ {
		var total float32
		step := inf
		for i := range tracks {
			p, room, ok := eligible(&tracks[i])
			if !ok {
				continue
			}
			total += p
			step = min(step, room/p)
		}
		if total == 0 {
			break
		}
		step = min(step, space/total)
		for i := range tracks {
			t := &tracks[i]
			p, _, ok := eligible(t)
			if !ok {
				continue
			}
			t.incurred += step * p
			space -= step * p
		}
	}
	return space
}

// maximise grows tracks with finite growth limits into free space.
func (s *trackSizer) maximise() {
	free := s.available.FreeSpace(sumBase(s.tracks) + s.gaps(len(s.tracks)))
	switch {
	case isInf(free):
		for i := range s.tracks {
			s.tracks[i].base = s.tracks[i].limit
		}
	case free > 0:
		ref := s.ref()
		distributeUpToLimits(free, s.tracks,
			func(*gridTrack) bool { return true },
			func(*gridTrack) float32 { return 1 },
			func(t *gridTrack) float32 { return t.base },
			func(t *gridTrack) float32 { return t.fitContentLimitedGrowth(ref) })
		for i := range s.tracks {
			t := &s.tracks[i]
			t.base += t.incurred
			t.incurred = 0
		}
	}
}

// expandFlexible sizes fr tracks from the largest fr size that fits.
func (s *trackSizer) expandFlexible(minSize, maxSize Opt, expansion AvailableSpace) {
	if !slices.ContainsFunc(s.tracks, func(t gridTrack) bool { return t.isFlexible() }) {
		return
	}
	gaps := s.gaps(len(s.tracks))

	var fr float32
	switch expansion.Kind {
	case SpaceDefinite:
		space := expansion.Value - gaps
		if space-sumBase(s.tracks) > 0 {
			fr = findFrSize(s.tracks, space)
		}
	case SpaceMinContent:
		fr = 0
	default:
		for i := range s.tracks {
			t := &s.tracks[i]
			if !t.isFlexible() {
				continue
			}
			if f := t.flexFactor(); f > 1 {
				fr = max(fr, t.base/f)
			} else {
				fr = max(fr, t.base)
			}
		}
		for i := range s.items {
			item := &s.items[i]
			if !item.crossesFlexible[s.axis] {
				continue
			}
			r := item.tracks(s.axis, s.counts)
			fr = max(fr, findFrSize(s.tracks[r.start:r.end], s.maxContent(item)-s.gaps(r.len())))
		}

		hypothetical := gaps
		for i := range s.tracks {
			t := &s.tracks[i]
			if t.isFlexible() {
				hypothetical += max(t.base, t.flexFactor()*fr)
			} else {
				hypothetical += t.base
			}
		}
		if lo, ok := minSize.Get(); ok && hypothetical < lo {
			fr = findFrSize(s.tracks, lo-gaps)
		} else if hi, ok := maxSize.Get(); ok && hypothetical > hi {
			fr = findFrSize(s.tracks, hi-gaps)
		}
	}

	for i := range s.tracks {
		if t := &s.tracks[i]; t.isFlexible() {
			t.base = max(t.base, t.flexFactor()*fr)
		}
	}
}

// findFrSize returns the size of 1fr that fills space. Flexible tracks whose
// share would fall below their base size are treated as inflexible and the
// search restarts.
func findFrSize(tracks []gridTrack, space float32) float32 {
	if space == 0 {
		return 0
	}
	hyp := inf
	for pass := 0; pass <= len(tracks); pass++ {
		prev := hyp
		var used, factors float32
		for i := range tracks {
			t := &tracks[i]
			if t.isFlexible() && t.flexFactor()*hyp >= t.base {
				factors += t.flexFactor()
			} else {
				used += t.base
			}
		}
		hyp = (space - used) / max(factors, 1)

		valid := true
		for i := range tracks {
			t := &tracks[i]
			if t.isFlexible() && t.flexFactor()*hyp < t.base && t.flexFactor()*prev >= t.base {
				valid = false
				break
			}
		}
		if valid {
			break
		}
	}
	return hyp
}

// stretchAuto shares remaining definite free space among auto max tracks.
func (s *trackSizer) stretchAuto(minSize Opt, expansion AvailableSpace) {
	n := 0
	for i := range s.tracks {
		if s.tracks[i].sizing.Max.Kind == SizingAuto {
			n++
		}
	}
	if n == 0 {
		return
	}
	used := sumBase(s.tracks) + s.gaps(len(s.tracks))
	var free float32
	if v, ok := expansion.Opt().Get(); ok {
		free = v - used
	} else if lo, ok := minSize.Get(); ok {
		free = lo - used
	}
	if free <= 0 {
		return
	}
	for i := range s.tracks {
		if t := &s.tracks[i]; t.sizing.Max.Kind == SizingAuto {
			t.base += free / float32(n)
		}
	}
}
