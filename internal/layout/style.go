package layout

// Display selects the layout algorithm used for a node's children.
type Display uint8

const (
	DisplayFlex  Display = iota // Flexbox container (default)
	DisplayGrid                 // Grid container
	DisplayBlock                // Block flow container
	DisplayNone                 // Node and its subtree are hidden
)

// Position selects whether a node takes part in its parent's flow.
type Position uint8

const (
	PositionRelative Position = iota // In flow, offset by insets
	PositionAbsolute                 // Out of flow, placed by insets
)

// Direction picks the flex main axis and whether items run against it.
type Direction uint8

const (
	Row           Direction = iota // main axis is x, items start at the left
	Column                         // main axis is y, items start at the top
	RowReverse                     // x, items start at the right
	ColumnReverse                  // y, items start at the bottom
)

// IsRow reports whether the main axis is horizontal.
func (d Direction) IsRow() bool { return d == Row || d == RowReverse }

// IsReverse reports whether items flow from the main end.
func (d Direction) IsReverse() bool { return d == RowReverse || d == ColumnReverse }

// MainAxis returns the axis items flow along.
func (d Direction) MainAxis() Axis {
	if d.IsRow() {
		return Horizontal
	}
	return Vertical
}

// FlexWrap controls whether flex items are broken into multiple lines.
type FlexWrap uint8

const (
	NoWrap      FlexWrap = iota // Single line
	Wrap                        // Lines stack towards cross end
	WrapReverse                 // Lines stack towards cross start
)

// Align positions items on the cross axis and distributes lines or tracks.
// AlignNormal means "not set": it behaves as Stretch for items and for
// align-content.
type Align uint8

const (
	AlignNormal Align = iota
	AlignStart
	AlignEnd
	AlignFlexStart
	AlignFlexEnd
	AlignCenter
	AlignBaseline
	AlignStretch
	AlignSpaceBetween
	AlignSpaceAround
	AlignSpaceEvenly
)

// Justify distributes free space along the main axis (flex) or inline axis (grid).
// JustifyNormal means "not set".
type Justify uint8

const (
	JustifyNormal Justify = iota
	JustifyStart
	JustifyEnd
	JustifyFlexStart
	JustifyFlexEnd
	JustifyCenter
	JustifyStretch
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// Style contains all layout properties for a node. The zero Style is a
// valid flex container with every dimension auto and FlexShrink 0; use
// DefaultStyle for the CSS initial values.
type Style struct {
	Display  Display
	Position Position

	// Sizing
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	// AspectRatio is width / height, unset when None.
	AspectRatio Opt

	// Spacing
	Margin  Spacing
	Padding Spacing
	Border  Spacing
	Inset   Spacing

	ColumnGap Value
	RowGap    Value

	// Flex container
	Direction Direction
	Wrap      FlexWrap

	// Alignment (flex and grid)
	AlignItems     Align
	AlignSelf      Align
	AlignContent   Align
	JustifyItems   Align
	JustifySelf    Align
	JustifyContent Justify

	// Flex item properties
	FlexBasis  Value
	FlexGrow   float32
	FlexShrink float32

	// Grid container properties
	GridTemplateColumns []GridTemplate
	GridTemplateRows    []GridTemplate
	GridAutoColumns     []TrackSizing
	GridAutoRows        []TrackSizing
	GridAutoFlow        GridAutoFlow

	// Grid item properties
	GridColumn GridLine
	GridRow    GridLine
}

// DefaultStyle returns a Style with the CSS initial values.
func DefaultStyle() Style {
	return Style{
		Display:    DisplayFlex,
		Width:      Auto(),
		Height:     Auto(),
		MinWidth:   Auto(),
		MinHeight:  Auto(),
		MaxWidth:   Auto(), // No maximum
		MaxHeight:  Auto(), // No maximum
		Margin:     SpacingAll(Zero()),
		Padding:    SpacingAll(Zero()),
		Border:     SpacingAll(Zero()),
		Inset:      SpacingAll(Auto()),
		ColumnGap:  Zero(),
		RowGap:     Zero(),
		Direction:  Row,
		FlexBasis:  Auto(),
		FlexShrink: 1,
	}
}

// Size returns the preferred width and height.
func (s *Style) Size() ValueSize { return ValueSize{Width: s.Width, Height: s.Height} }

// MinSize returns the min width and height.
func (s *Style) MinSize() ValueSize { return ValueSize{Width: s.MinWidth, Height: s.MinHeight} }

// MaxSize returns the max width and height.
func (s *Style) MaxSize() ValueSize { return ValueSize{Width: s.MaxWidth, Height: s.MaxHeight} }

// Gap returns the column gap as Width and the row gap as Height.
func (s *Style) Gap() ValueSize { return ValueSize{Width: s.ColumnGap, Height: s.RowGap} }

// resolvedSizes resolves preferred/min/max sizes against parentSize and
// applies the aspect ratio to each. All three are border-box.
func (s *Style) resolvedSizes(parentSize OptSize) (size, minSize, maxSize OptSize) {
	ratio := s.AspectRatio
	size = s.Size().Resolve(parentSize).ApplyAspectRatio(ratio)
	minSize = s.MinSize().Resolve(parentSize).ApplyAspectRatio(ratio)
	maxSize = s.MaxSize().Resolve(parentSize).ApplyAspectRatio(ratio)
	return size, minSize, maxSize
}

// resolvedBoxEdges returns padding and border resolved against the parent width.
func (s *Style) resolvedBoxEdges(parentWidth Opt) (padding, border Edges) {
	padding = s.Padding.ResolveOrZero(parentWidth)
	border = s.Border.ResolveOrZero(parentWidth)
	return clampEdges(padding), clampEdges(border)
}

// clampEdges drops negative padding or border widths.
func clampEdges(e Edges) Edges {
	return Edges{Top: max(e.Top, 0), Right: max(e.Right, 0), Bottom: max(e.Bottom, 0), Left: max(e.Left, 0)}
}
