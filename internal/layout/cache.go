package layout

// cacheSlots is the number of ComputeSize entries kept per node: one per
// combination of which dimensions are known and whether the unknown ones are
// asked for min-content.
const cacheSlots = 9

type cacheEntry struct {
	known     OptSize
	available AvailSize
	output    LayoutOutput
}

// matches reports whether a result computed for (e.known, e.available) is
// valid for (known, available). A known dimension also matches when it equals
// the size that was produced, and an unknown axis compares available space.
func (e *cacheEntry) matches(known OptSize, available AvailSize) bool {
	size := e.output.Size
	return (known.Width == e.known.Width || known.Width == Some(size.Width)) &&
		(known.Height == e.known.Height || known.Height == Some(size.Height)) &&
		(known.Width.IsSet() || e.available.Width.RoughlyEqual(available.Width)) &&
		(known.Height.IsSet() || e.available.Height.RoughlyEqual(available.Height))
}

// Cache memoizes the layout results of one node. The zero Cache is empty.
type Cache struct {
	final   *cacheEntry
	measure [cacheSlots]*cacheEntry
}

func cacheSlot(known OptSize, available AvailSize) int {
	hasW, hasH := known.Width.IsSet(), known.Height.IsSet()
	switch {
	case hasW && hasH:
		return 0
	case hasW:
		if available.Height.Kind == SpaceMinContent {
			return 2
		}
		return 1
	case hasH:
		if available.Width.Kind == SpaceMinContent {
			return 4
		}
		return 3
	}
	minW := available.Width.Kind == SpaceMinContent
	minH := available.Height.Kind == SpaceMinContent
	switch {
	case !minW && !minH:
		return 5
	case !minW && minH:
		return 6
	case minW && !minH:
		return 7
	default:
		return 8
	}
}

// Get returns a stored output valid for the given inputs.
func (c *Cache) Get(known OptSize, available AvailSize, mode RunMode) (LayoutOutput, bool) {
	switch mode {
	case PerformLayout:
		if c.final != nil && c.final.matches(known, available) {
			return c.final.output, true
		}
	case ComputeSize:
		for _, e := range c.measure {
			if e != nil && e.matches(known, available) {
				return outputFromSize(e.output.Size, Size{}), true
			}
		}
	}
	return LayoutOutput{}, false
}

// Store records out as the result for the given inputs.
func (c *Cache) Store(known OptSize, available AvailSize, mode RunMode, out LayoutOutput) {
	e := &cacheEntry{known: known, available: available, output: out}
	switch mode {
	case PerformLayout:
		c.final = e
	case ComputeSize:
		c.measure[cacheSlot(known, available)] = e
	}
}

// Clear drops every entry and reports whether anything was stored.
func (c *Cache) Clear() bool {
	had := c.final != nil
	c.final = nil
	for i := range c.measure {
		if c.measure[i] != nil {
			had = true
		}
		c.measure[i] = nil
	}
	return had
}

// IsEmpty reports whether nothing is cached.
func (c *Cache) IsEmpty() bool {
	if c.final != nil {
		return false
	}
	for _, e := range c.measure {
		if e != nil {
			return false
		}
	}
	return true
}

// computeCached consults node's cache before running compute.
func computeCached(tree Tree, node NodeID, in LayoutInput, compute func(LayoutInput) LayoutOutput) LayoutOutput {
	cache := tree.LayoutCache(node)
	if out, ok := cache.Get(in.KnownDimensions, in.AvailableSpace, in.RunMode); ok {
		return out
	}
	out := compute(in)
	cache.Store(in.KnownDimensions, in.AvailableSpace, in.RunMode, out)
	return out
}
