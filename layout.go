// Type aliases and constructors for the engine types in internal/layout, so
// callers never import the internal package. New engine types are added here.

package boxlayout

import "github.com/grindlemire/go-boxlayout/internal/layout"

// Style holds the layout properties of a node.
type Style = layout.Style

// Layout holds the computed geometry of a node.
type Layout = layout.Layout

// MeasureFunc reports the content size of a leaf. It must be pure with respect
// to its arguments.
type MeasureFunc = layout.MeasureFunc

// Geometry.
type (
	Size    = layout.Size
	Point   = layout.Point
	Edges   = layout.Edges
	Opt     = layout.Opt
	OptSize = layout.OptSize
	Axis    = layout.Axis
)

const (
	Horizontal = layout.Horizontal
	Vertical   = layout.Vertical
)

// None is the unset Opt.
var None = layout.None

// Some returns a set Opt.
func Some(v float32) Opt { return layout.Some(v) }

// AvailableSpace is the space offered to a node along one axis.
type AvailableSpace = layout.AvailableSpace

// SpaceKind says whether available space is definite or an intrinsic size request.
type SpaceKind = layout.SpaceKind

const (
	SpaceMaxContent = layout.SpaceMaxContent
	SpaceMinContent = layout.SpaceMinContent
	SpaceDefinite   = layout.SpaceDefinite
)

// AvailSize pairs the available space on both axes.
type AvailSize = layout.AvailSize

var (
	MinContent = layout.MinContent
	MaxContent = layout.MaxContent
)

// Definite returns a definite constraint of v pixels.
func Definite(v float32) AvailableSpace { return layout.Definite(v) }

// DefiniteSize returns definite constraints on both axes.
func DefiniteSize(w, h float32) AvailSize {
	return AvailSize{Width: layout.Definite(w), Height: layout.Definite(h)}
}

// Value is a length, percentage, calc() expression or auto.
type (
	Value    = layout.Value
	Unit     = layout.Unit
	Spacing  = layout.Spacing
	CalcNode = layout.CalcNode
)

const (
	UnitAuto    = layout.UnitAuto
	UnitLength  = layout.UnitLength
	UnitPercent = layout.UnitPercent
	UnitCalc    = layout.UnitCalc
)

// Length creates a Value of px pixels.
func Length(px float32) Value { return layout.Length(px) }

// Percent creates a Value of fraction times the reference size.
func Percent(fraction float32) Value { return layout.Percent(fraction) }

// Auto creates an auto Value.
func Auto() Value { return layout.Auto() }

// Zero creates a zero-length Value.
func Zero() Value { return layout.Zero() }

// Calc creates a Value from a calc() expression.
func Calc(c *CalcNode) Value { return layout.Calc(c) }

// CalcValue wraps a length or percentage as a calc() leaf.
func CalcValue(v Value) *CalcNode { return layout.CalcValue(v) }

// CalcNum wraps a unitless number.
func CalcNum(n float32) *CalcNode { return layout.CalcNum(n) }

// CalcAdd builds a sum.
func CalcAdd(args ...*CalcNode) *CalcNode { return layout.CalcAdd(args...) }

// CalcSub builds a difference.
func CalcSub(args ...*CalcNode) *CalcNode { return layout.CalcSub(args...) }

// CalcMul builds a product.
func CalcMul(args ...*CalcNode) *CalcNode { return layout.CalcMul(args...) }

// CalcDiv builds a quotient.
func CalcDiv(a, b *CalcNode) *CalcNode { return layout.CalcDiv(a, b) }

// CalcNeg builds a negation.
func CalcNeg(a *CalcNode) *CalcNode { return layout.CalcNeg(a) }

// CalcMinOf builds min().
func CalcMinOf(args ...*CalcNode) *CalcNode { return layout.CalcMinOf(args...) }

// CalcMaxOf builds max().
func CalcMaxOf(args ...*CalcNode) *CalcNode { return layout.CalcMaxOf(args...) }

// CalcClampOf builds clamp(lo, center, hi). When lo exceeds hi, lo wins.
func CalcClampOf(lo, center, hi *CalcNode) *CalcNode { return layout.CalcClampOf(lo, center, hi) }

// SpacingAll creates Spacing with the same value on all sides.
func SpacingAll(v Value) Spacing { return layout.SpacingAll(v) }

// SpacingSymmetric creates Spacing with vertical (top/bottom) and horizontal (left/right) values.
func SpacingSymmetric(v, h Value) Spacing { return layout.SpacingSymmetric(v, h) }

// SpacingTRBL creates Spacing following CSS order: Top, Right, Bottom, Left.
func SpacingTRBL(t, r, b, l Value) Spacing { return layout.SpacingTRBL(t, r, b, l) }

// DefaultStyle returns a Style with the CSS initial values.
func DefaultStyle() Style { return layout.DefaultStyle() }

// Display selects the layout algorithm of a node.
type Display = layout.Display

const (
	DisplayFlex  = layout.DisplayFlex
	DisplayGrid  = layout.DisplayGrid
	DisplayBlock = layout.DisplayBlock
	DisplayNone  = layout.DisplayNone
)

// Position selects in-flow or absolute positioning.
type Position = layout.Position

const (
	PositionRelative = layout.PositionRelative
	PositionAbsolute = layout.PositionAbsolute
)

// Direction specifies the flex main axis.
type Direction = layout.Direction

const (
	Row           = layout.Row
	Column        = layout.Column
	RowReverse    = layout.RowReverse
	ColumnReverse = layout.ColumnReverse
)

// FlexWrap controls line breaking of flex items.
type FlexWrap = layout.FlexWrap

const (
	NoWrap      = layout.NoWrap
	Wrap        = layout.Wrap
	WrapReverse = layout.WrapReverse
)

// Align positions items on the cross axis and distributes lines or tracks.
type Align = layout.Align

const (
	AlignNormal       = layout.AlignNormal
	AlignStart        = layout.AlignStart
	AlignEnd          = layout.AlignEnd
	AlignFlexStart    = layout.AlignFlexStart
	AlignFlexEnd      = layout.AlignFlexEnd
	AlignCenter       = layout.AlignCenter
	AlignBaseline     = layout.AlignBaseline
	AlignStretch      = layout.AlignStretch
	AlignSpaceBetween = layout.AlignSpaceBetween
	AlignSpaceAround  = layout.AlignSpaceAround
	AlignSpaceEvenly  = layout.AlignSpaceEvenly
)

// Justify distributes items along the main axis.
type Justify = layout.Justify

const (
	JustifyNormal       = layout.JustifyNormal
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyFlexStart    = layout.JustifyFlexStart
	JustifyFlexEnd      = layout.JustifyFlexEnd
	JustifyCenter       = layout.JustifyCenter
	JustifyStretch      = layout.JustifyStretch
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Grid.
type (
	TrackSizing   = layout.TrackSizing
	GridTemplate  = layout.GridTemplate
	GridLine      = layout.GridLine
	GridPlacement = layout.GridPlacement
	GridAutoFlow  = layout.GridAutoFlow
)

const (
	FlowRow         = layout.FlowRow
	FlowColumn      = layout.FlowColumn
	FlowRowDense    = layout.FlowRowDense
	FlowColumnDense = layout.FlowColumnDense
)

// FixedTrack returns a track of a length or percentage.
func FixedTrack(v Value) TrackSizing { return layout.FixedTrack(v) }

// FrTrack returns minmax(auto, <fr>fr).
func FrTrack(fr float32) TrackSizing { return layout.FrTrack(fr) }

// AutoTrack returns an auto track.
func AutoTrack() TrackSizing { return layout.AutoTrack() }

// MinContentTrack returns a min-content track.
func MinContentTrack() TrackSizing { return layout.MinContentTrack() }

// MaxContentTrack returns a max-content track.
func MaxContentTrack() TrackSizing { return layout.MaxContentTrack() }

// FitContentTrack returns fit-content(limit).
func FitContentTrack(limit Value) TrackSizing { return layout.FitContentTrack(limit) }

// MinMaxTrack returns minmax(lo, hi).
func MinMaxTrack(lo, hi TrackSizing) TrackSizing { return layout.MinMaxTrack(lo, hi) }

// Single returns a template entry holding one track.
func Single(t TrackSizing) GridTemplate { return layout.Single(t) }

// Repeat returns repeat(count, tracks...).
func Repeat(count int, tracks ...TrackSizing) GridTemplate { return layout.Repeat(count, tracks...) }

// RepeatAutoFill returns repeat(auto-fill, tracks...).
func RepeatAutoFill(tracks ...TrackSizing) GridTemplate { return layout.RepeatAutoFill(tracks...) }

// Tracks is shorthand for a template of single tracks.
func Tracks(ts ...TrackSizing) []GridTemplate { return layout.Tracks(ts...) }

// Lines returns a GridLine from start to end.
func Lines(start, end int) GridLine { return layout.Lines(start, end) }

// Span returns a GridLine with an auto start and a span of n tracks.
func Span(n int) GridLine { return layout.Span(n) }

// PlaceAt returns a line placement.
func PlaceAt(line int) GridPlacement { return layout.PlaceAt(line) }

// SpanOf returns a span placement.
func SpanOf(n int) GridPlacement { return layout.SpanOf(n) }
