package layout

// computeLeafLayout sizes a node without children from its style and, when
// present, its measure function.
func computeLeafLayout(in LayoutInput, style *Style, measure MeasureFunc) LayoutOutput {
	known := in.KnownDimensions
	parentSize := in.ParentSize

	margin := style.Margin.ResolveOrZero(parentSize.Width)
	padding, border := style.resolvedBoxEdges(parentSize.Width)
	inset := padding.Add(border)
	pbSum := inset.Sum()

	var nodeSize, minSize, maxSize OptSize
	var ratio Opt
	switch in.SizingMode {
	case ContentSize:
		nodeSize = known
	default:
		var size OptSize
		size, minSize, maxSize = style.resolvedSizes(parentSize)
		nodeSize = known.Or(size)
		ratio = style.AspectRatio
	}

	if in.RunMode == ComputeSize {
		if w, ok := nodeSize.Width.Get(); ok {
			if h, ok := nodeSize.Height.Get(); ok {
				size := Size{Width: w, Height: h}.Clamp(minSize, maxSize).Max(pbSum)
				return outputFromSize(size, Size{})
			}
		}
	}

	available := AvailSize{
		Width: in.AvailableSpace.Width.Sub(margin.Horizontal()).
			OrOpt(known.Width).OrOpt(nodeSize.Width).
			MapDefinite(func(v float32) float32 {
				return maybeClamp(v, minSize.Width, maxSize.Width) - pbSum.Width
			}),
		Height: in.AvailableSpace.Height.Sub(margin.Vertical()).
			OrOpt(known.Height).OrOpt(nodeSize.Height).
			MapDefinite(func(v float32) float32 {
				return maybeClamp(v, minSize.Height, maxSize.Height) - pbSum.Height
			}),
	}

	var measured Size
	if measure != nil {
		contentKnown := nodeSize.Clamp(minSize, maxSize).SubSize(pbSum)
		contentKnown = OptSize{Width: contentKnown.Width.MaxF(0), Height: contentKnown.Height.MaxF(0)}
		measured = measure(contentKnown, available)
	}

	clamped := nodeSize.UnwrapOr(measured.Add(pbSum)).Clamp(minSize, maxSize)
	size := clamped
	if r, ok := ratio.Get(); ok && r != 0 {
		size.Height = max(size.Height, clamped.Width/r)
	}
	size = size.Max(pbSum)

	return LayoutOutput{
		Size:                      size,
		ContentSize:               measured.Add(padding.Sum()),
		MarginsCanCollapseThrough: size.Height == 0 && measured.Height == 0 && pbSum.Height == 0,
	}
}
