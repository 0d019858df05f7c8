package layout

// Unit says how a Value resolves against its reference size.
type Unit uint8

const (
	UnitAuto    Unit = iota // Resolves to None; the algorithm picks a size
	UnitLength              // Absolute pixels
	UnitPercent             // Fraction of the reference size
	UnitCalc                // A calc() expression tree
)

// Value represents a style dimension: a length, a percentage, auto, or a calc() tree.
// The zero Value is auto.
type Value struct {
	Amount float32
	Unit   Unit
	Calc   *CalcNode
}

// Auto returns an auto Value, which resolves to None.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Length returns a Value of px pixels.
func Length(px float32) Value {
	return Value{Amount: px, Unit: UnitLength}
}

// Zero returns a zero-length Value.
func Zero() Value {
	return Length(0)
}

// Percent returns a Value representing a fraction of the reference size.
// The value is on a 0-1 scale (0.5 = 50%).
func Percent(fraction float32) Value {
	return Value{Amount: fraction, Unit: UnitPercent}
}

// Calc returns a Value evaluated from the expression tree c.
func Calc(c *CalcNode) Value {
	return Value{Unit: UnitCalc, Calc: c}
}

// IsAuto reports whether v is auto and so never resolves to a definite length.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// Resolve computes the concrete value against ref. Percentages against an
// unset reference and auto resolve to None.
func (v Value) Resolve(ref Opt) Opt {
	switch v.Unit {
	case UnitLength:
		return Some(v.Amount)
	case UnitPercent:
		if r, ok := ref.Get(); ok {
			return Some(v.Amount * r)
		}
		return None
	case UnitCalc:
		if v.Calc == nil {
			return None
		}
		return v.Calc.Resolve(ref)
	default:
		return None
	}
}

// ResolveOrZero is Resolve with None coalesced to 0.
func (v Value) ResolveOrZero(ref Opt) float32 {
	return v.Resolve(ref).UnwrapOr(0)
}

// ValueSize pairs a width and a height style value.
type ValueSize struct {
	Width, Height Value
}

// Resolve resolves width against ref.Width and height against ref.Height.
func (s ValueSize) Resolve(ref OptSize) OptSize {
	return OptSize{Width: s.Width.Resolve(ref.Width), Height: s.Height.Resolve(ref.Height)}
}

// Get returns the component along axis.
func (s ValueSize) Get(axis Axis) Value {
	if axis == Horizontal {
		return s.Width
	}
	return s.Height
}

// Spacing holds style values for the four sides of a box (margin, padding,
// border, inset).
type Spacing struct {
	Top, Right, Bottom, Left Value
}

// SpacingAll creates Spacing with the same value on all sides.
func SpacingAll(v Value) Spacing {
	return Spacing{Top: v, Right: v, Bottom: v, Left: v}
}

// SpacingSymmetric creates Spacing with vertical (top/bottom) and horizontal (left/right) values.
func SpacingSymmetric(v, h Value) Spacing {
	return Spacing{Top: v, Right: h, Bottom: v, Left: h}
}

// SpacingTRBL creates Spacing following CSS order: Top, Right, Bottom, Left.
func SpacingTRBL(t, r, b, l Value) Spacing {
	return Spacing{Top: t, Right: r, Bottom: b, Left: l}
}

// ResolveOrZero resolves every side against ref. Margins, padding and borders
// all resolve percentages against the containing block's width.
func (s Spacing) ResolveOrZero(ref Opt) Edges {
	return Edges{
		Top:    s.Top.ResolveOrZero(ref),
		Right:  s.Right.ResolveOrZero(ref),
		Bottom: s.Bottom.ResolveOrZero(ref),
		Left:   s.Left.ResolveOrZero(ref),
	}
}

// Start returns the leading side along axis.
func (s Spacing) Start(axis Axis) Value {
	if axis == Horizontal {
		return s.Left
	}
	return s.Top
}

// End returns the trailing side along axis.
func (s Spacing) End(axis Axis) Value {
	if axis == Horizontal {
		return s.Right
	}
	return s.Bottom
}

// autoSides records which sides of a Spacing are auto.
type autoSides struct {
	Top, Right, Bottom, Left bool
}

func (s Spacing) autoSides() autoSides {
	return autoSides{Top: s.Top.IsAuto(), Right: s.Right.IsAuto(), Bottom: s.Bottom.IsAuto(), Left: s.Left.IsAuto()}
}

func (a autoSides) start(axis Axis) bool {
	if axis == Horizontal {
		return a.Left
	}
	return a.Top
}

func (a autoSides) end(axis Axis) bool {
	if axis == Horizontal {
		return a.Right
	}
	return a.Bottom
}

// optEdges holds per-side optional values (resolved insets, margins that may be auto).
type optEdges struct {
	Top, Right, Bottom, Left Opt
}

func (e optEdges) start(axis Axis) Opt {
	if axis == Horizontal {
		return e.Left
	}
	return e.Top
}

func (e optEdges) end(axis Axis) Opt {
	if axis == Horizontal {
		return e.Right
	}
	return e.Bottom
}

// resolveInsets resolves left/right against ref.Width and top/bottom against ref.Height.
func (s Spacing) resolveInsets(ref OptSize) optEdges {
	return optEdges{
		Top:    s.Top.Resolve(ref.Height),
		Right:  s.Right.Resolve(ref.Width),
		Bottom: s.Bottom.Resolve(ref.Height),
		Left:   s.Left.Resolve(ref.Width),
	}
}

// resolveOpt resolves every side against ref, keeping auto as None.
func (s Spacing) resolveOpt(ref Opt) optEdges {
	return optEdges{
		Top:    s.Top.Resolve(ref),
		Right:  s.Right.Resolve(ref),
		Bottom: s.Bottom.Resolve(ref),
		Left:   s.Left.Resolve(ref),
	}
}
