package layout

// DistributeSpace splits free space among n items for a content-distribution
// keyword, returning the offset before the first item and the extra space
// between consecutive items. Negative free space is never distributed.
// reversed flips FlexStart and FlexEnd.
func DistributeSpace(free float32, n int, mode Justify, reversed bool) (leading, between float32) {
	free = max(free, 0)
	if n <= 0 {
		n = 1
	}
	switch mode {
	case JustifyEnd:
		return free, 0
	case JustifyFlexStart:
		if reversed {
			return free, 0
		}
		return 0, 0
	case JustifyFlexEnd:
		if reversed {
			return 0, 0
		}
		return free, 0
	case JustifyCenter:
		return free / 2, 0
	case JustifySpaceBetween:
		if n <= 1 {
			return 0, 0
		}
		return 0, free / float32(n-1)
	case JustifySpaceAround:
		share := free / float32(n)
		return share / 2, share
	case JustifySpaceEvenly:
		share := free / float32(n+1)
		return share, share
	default:
		return 0, 0
	}
}

// AlignmentOffset returns the offset to place before an item: the leading
// space for the first item, gap plus the distributed space otherwise.
func AlignmentOffset(free float32, n int, gap float32, mode Justify, reversed, first bool) float32 {
	leading, between := DistributeSpace(free, n, mode, reversed)
	if first {
		return leading
	}
	return gap + between
}

// contentMode maps an align-content value onto the shared distribution keywords.
func contentMode(a Align) Justify {
	switch a {
	case AlignStart:
		return JustifyStart
	case AlignEnd:
		return JustifyEnd
	case AlignFlexStart:
		return JustifyFlexStart
	case AlignFlexEnd:
		return JustifyFlexEnd
	case AlignCenter:
		return JustifyCenter
	case AlignSpaceBetween:
		return JustifySpaceBetween
	case AlignSpaceAround:
		return JustifySpaceAround
	case AlignSpaceEvenly:
		return JustifySpaceEvenly
	case AlignNormal, AlignStretch:
		return JustifyStretch
	default:
		return JustifyStart
	}
}

// selfOffset places a single box of free leftover space within its area.
// Stretch, Normal and Baseline put it at the start; the caller handles
// baseline shifts itself.
func selfOffset(free float32, mode Align, reversed bool) float32 {
	free = max(free, 0)
	switch mode {
	case AlignEnd:
		return free
	case AlignFlexStart:
		if reversed {
			return free
		}
		return 0
	case AlignFlexEnd:
		if reversed {
			return 0
		}
		return free
	case AlignCenter:
		return free / 2
	default:
		return 0
	}
}
