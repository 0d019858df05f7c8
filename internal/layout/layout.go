package layout

// Layout holds the computed geometry of a node after layout calculation.
type Layout struct {
	// Order is the paint order among siblings.
	Order uint32

	// Location is the border-box origin relative to the parent's border-box origin.
	Location Point

	// Size is the border-box size.
	Size Size

	// ContentSize is the size of the node's content, which may overflow Size.
	ContentSize Size

	Border  Edges
	Padding Edges
	Margin  Edges
}

// RunMode selects how much work a layout call does.
type RunMode uint8

const (
	// PerformLayout computes the node's size and positions all of its children.
	PerformLayout RunMode = iota
	// ComputeSize only determines the node's size.
	ComputeSize
	// PerformHiddenLayout zeroes the layout of a display:none subtree.
	PerformHiddenLayout
)

// SizingMode selects whether a node's own style size participates.
type SizingMode uint8

const (
	// InherentSize applies the node's width/height/min/max styles.
	InherentSize SizingMode = iota
	// ContentSize ignores them and sizes purely from content.
	ContentSize
)

// RequestedAxis says which output dimensions the caller actually needs.
type RequestedAxis uint8

const (
	RequestBoth RequestedAxis = iota
	RequestHorizontal
	RequestVertical
)

func requestAxis(a Axis) RequestedAxis {
	if a == Horizontal {
		return RequestHorizontal
	}
	return RequestVertical
}

// LayoutInput is the argument bundle of a single layout call.
type LayoutInput struct {
	RunMode         RunMode
	SizingMode      SizingMode
	Axis            RequestedAxis
	KnownDimensions OptSize
	ParentSize      OptSize
	AvailableSpace  AvailSize

	// VerticalMarginsCollapsible is set by block containers for children whose
	// vertical margins may collapse with their siblings'.
	VerticalMarginsCollapsible bool
}

// Baselines holds the first baseline offsets along each axis.
type Baselines struct {
	X, Y Opt
}

// LayoutOutput is the result of a single layout call.
type LayoutOutput struct {
	Size           Size
	ContentSize    Size
	FirstBaselines Baselines

	TopMargin                 CollapsibleMarginSet
	BottomMargin              CollapsibleMarginSet
	MarginsCanCollapseThrough bool
}

// HiddenOutput is the output of a display:none node.
var HiddenOutput = LayoutOutput{}

func outputFromSize(size, contentSize Size) LayoutOutput {
	return LayoutOutput{Size: size, ContentSize: contentSize}
}

// CollapsibleMarginSet tracks the largest positive and most negative margins
// adjoining in a block flow. The collapsed margin is their sum.
type CollapsibleMarginSet struct {
	Positive float32
	Negative float32
}

// MarginSetFrom returns a set holding a single margin.
func MarginSetFrom(m float32) CollapsibleMarginSet {
	if m >= 0 {
		return CollapsibleMarginSet{Positive: m}
	}
	return CollapsibleMarginSet{Negative: m}
}

// CollapseWithMargin adds one more adjoining margin.
func (s CollapsibleMarginSet) CollapseWithMargin(m float32) CollapsibleMarginSet {
	if m >= 0 {
		s.Positive = max(s.Positive, m)
	} else {
		s.Negative = min(s.Negative, m)
	}
	return s
}

// CollapseWithSet merges another adjoining set.
func (s CollapsibleMarginSet) CollapseWithSet(o CollapsibleMarginSet) CollapsibleMarginSet {
	s.Positive = max(s.Positive, o.Positive)
	s.Negative = min(s.Negative, o.Negative)
	return s
}

// Resolve returns the collapsed margin.
func (s CollapsibleMarginSet) Resolve() float32 {
	return s.Positive + s.Negative
}
