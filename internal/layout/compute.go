package layout

import "log/slog"

// ComputeRootLayout lays out the subtree rooted at root within available and
// stores an unrounded Layout on every node through tree.SetLayout.
func ComputeRootLayout(tree Tree, root NodeID, available AvailSize) {
	style := tree.LayoutStyle(root)
	parentSize := available.Opt()

	margin := style.Margin.ResolveOrZero(parentSize.Width)
	padding, border := style.resolvedBoxEdges(parentSize.Width)
	pbSize := padding.Add(border).Sum()

	size, minSize, maxSize := style.resolvedSizes(parentSize)
	clamped := size.Clamp(minSize, maxSize)

	// Where max <= min on an axis, min alone determines the size.
	minMaxDefinite := OptSize{
		Width:  minOverMax(minSize.Width, maxSize.Width),
		Height: minOverMax(minSize.Height, maxSize.Height),
	}
	fromAvailable := OptSize{Width: available.Width.Opt().Sub(margin.Horizontal())}

	known := minMaxDefinite.Or(clamped).Or(fromAvailable).MaxSize(pbSize)

	if debugEnabled() {
		Logger().Debug("layout pass start", slog.Uint64("root", uint64(root)))
	}

	out := ComputeNodeLayout(tree, root, LayoutInput{
		RunMode:         PerformLayout,
		SizingMode:      InherentSize,
		KnownDimensions: known,
		ParentSize:      parentSize,
		AvailableSpace:  available,
	})

	tree.SetLayout(root, Layout{
		Size:        out.Size,
		ContentSize: out.ContentSize,
		Padding:     padding,
		Border:      border,
		Margin:      margin,
	})

	if debugEnabled() {
		Logger().Debug("layout pass done",
			slog.Uint64("root", uint64(root)),
			slog.Float64("width", float64(out.Size.Width)),
			slog.Float64("height", float64(out.Size.Height)))
	}
}

func minOverMax(lo, hi Opt) Opt {
	l, lok := lo.Get()
	h, hok := hi.Get()
	if lok && hok && h <= l {
		return Some(l)
	}
	return None
}

// ComputeNodeLayout is the recursive entry point: it consults node's cache and
// otherwise dispatches on the node's display mode.
func ComputeNodeLayout(tree Tree, node NodeID, in LayoutInput) LayoutOutput {
	if in.RunMode == PerformHiddenLayout {
		return computeHiddenLayout(tree, node)
	}
	return computeCached(tree, node, in, func(in LayoutInput) LayoutOutput {
		style := tree.LayoutStyle(node)
		hasChildren := len(tree.LayoutChildren(node)) > 0
		switch {
		case style.Display == DisplayNone:
			return computeHiddenLayout(tree, node)
		case !hasChildren:
			return computeLeafLayout(in, style, tree.Measure(node))
		case style.Display == DisplayBlock:
			return computeBlockLayout(tree, node, in)
		case style.Display == DisplayGrid:
			return computeGridLayout(tree, node, in)
		default:
			return computeFlexLayout(tree, node, in)
		}
	})
}

// computeHiddenLayout zeroes the layout of node and its whole subtree.
func computeHiddenLayout(tree Tree, node NodeID) LayoutOutput {
	tree.LayoutCache(node).Clear()
	tree.SetLayout(node, Layout{})
	for _, child := range tree.LayoutChildren(node) {
		ComputeNodeLayout(tree, child, LayoutInput{RunMode: PerformHiddenLayout})
	}
	return HiddenOutput
}

// measureChildSize runs a ComputeSize call and returns one axis of the result.
func measureChildSize(tree Tree, child NodeID, known, parentSize OptSize, available AvailSize, sizing SizingMode, axis Axis, collapsible bool) float32 {
	out := ComputeNodeLayout(tree, child, LayoutInput{
		RunMode:                    ComputeSize,
		SizingMode:                 sizing,
		Axis:                       requestAxis(axis),
		KnownDimensions:            known,
		ParentSize:                 parentSize,
		AvailableSpace:             available,
		VerticalMarginsCollapsible: collapsible,
	})
	return out.Size.Get(axis)
}

// measureChild runs a ComputeSize call for both axes.
func measureChild(tree Tree, child NodeID, known, parentSize OptSize, available AvailSize, sizing SizingMode) Size {
	return ComputeNodeLayout(tree, child, LayoutInput{
		RunMode:         ComputeSize,
		SizingMode:      sizing,
		KnownDimensions: known,
		ParentSize:      parentSize,
		AvailableSpace:  available,
	}).Size
}

// performChildLayout runs a PerformLayout call.
func performChildLayout(tree Tree, child NodeID, known, parentSize OptSize, available AvailSize, sizing SizingMode, collapsible bool) LayoutOutput {
	return ComputeNodeLayout(tree, child, LayoutInput{
		RunMode:                    PerformLayout,
		SizingMode:                 sizing,
		KnownDimensions:            known,
		ParentSize:                 parentSize,
		AvailableSpace:             available,
		VerticalMarginsCollapsible: collapsible,
	})
}
