package layout

// Axis names one of the two physical axes.
type Axis uint8

const (
	Horizontal Axis = iota // x / width
	Vertical               // y / height
)

// Other returns the perpendicular axis.
func (a Axis) Other() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// Point is a position in pixels, relative to a parent border box.
type Point struct {
	X, Y float32
}

// Get returns the coordinate along axis.
func (p Point) Get(axis Axis) float32 {
	if axis == Horizontal {
		return p.X
	}
	return p.Y
}

// pointOnAxes builds a Point from a main/cross pair.
func pointOnAxes(mainAxis Axis, main, cross float32) Point {
	if mainAxis == Horizontal {
		return Point{X: main, Y: cross}
	}
	return Point{X: cross, Y: main}
}

// Size is a width/height pair.
type Size struct {
	Width, Height float32
}

// Get returns the component along axis.
func (s Size) Get(axis Axis) float32 {
	if axis == Horizontal {
		return s.Width
	}
	return s.Height
}

// Set returns a copy of s with the component along axis replaced.
func (s Size) Set(axis Axis, v float32) Size {
	if axis == Horizontal {
		s.Width = v
	} else {
		s.Height = v
	}
	return s
}

// Main returns the component along the main axis of dir.
func (s Size) Main(dir Direction) float32 { return s.Get(dir.MainAxis()) }

// Cross returns the component along the cross axis of dir.
func (s Size) Cross(dir Direction) float32 { return s.Get(dir.MainAxis().Other()) }

// WithMain returns s with the main component replaced.
func (s Size) WithMain(dir Direction, v float32) Size { return s.Set(dir.MainAxis(), v) }

// WithCross returns s with the cross component replaced.
func (s Size) WithCross(dir Direction, v float32) Size { return s.Set(dir.MainAxis().Other(), v) }

// Add returns the component-wise sum.
func (s Size) Add(o Size) Size { return Size{Width: s.Width + o.Width, Height: s.Height + o.Height} }

// Sub returns the component-wise difference.
func (s Size) Sub(o Size) Size { return Size{Width: s.Width - o.Width, Height: s.Height - o.Height} }

// Max returns the component-wise maximum.
func (s Size) Max(o Size) Size { return Size{Width: max(s.Width, o.Width), Height: max(s.Height, o.Height)} }

// Clamp clamps each component by the optional bounds. If min > max, min wins.
func (s Size) Clamp(lo, hi OptSize) Size {
	return Size{
		Width:  maybeClamp(s.Width, lo.Width, hi.Width),
		Height: maybeClamp(s.Height, lo.Height, hi.Height),
	}
}

// MaxOpt floors each component by the optional values.
func (s Size) MaxOpt(o OptSize) Size {
	return Size{Width: maybeMax(s.Width, o.Width), Height: maybeMax(s.Height, o.Height)}
}

// Opt converts s into a fully set OptSize.
func (s Size) Opt() OptSize { return OptSize{Width: Some(s.Width), Height: Some(s.Height)} }

// Edges holds resolved per-side thicknesses such as padding, border or margin.
type Edges struct {
	Top, Right, Bottom, Left float32
}

// Horizontal returns Left + Right.
func (e Edges) Horizontal() float32 { return e.Left + e.Right }

// Vertical returns Top + Bottom.
func (e Edges) Vertical() float32 { return e.Top + e.Bottom }

// Sum returns the per-axis totals.
func (e Edges) Sum() Size { return Size{Width: e.Horizontal(), Height: e.Vertical()} }

// Add returns the side-wise sum.
func (e Edges) Add(o Edges) Edges {
	return Edges{Top: e.Top + o.Top, Right: e.Right + o.Right, Bottom: e.Bottom + o.Bottom, Left: e.Left + o.Left}
}

// AxisSum returns the start plus end sides along axis.
func (e Edges) AxisSum(axis Axis) float32 {
	if axis == Horizontal {
		return e.Horizontal()
	}
	return e.Vertical()
}

// Start returns the leading side along axis.
func (e Edges) Start(axis Axis) float32 {
	if axis == Horizontal {
		return e.Left
	}
	return e.Top
}

// End returns the trailing side along axis.
func (e Edges) End(axis Axis) float32 {
	if axis == Horizontal {
		return e.Right
	}
	return e.Bottom
}

func (e *Edges) setStart(axis Axis, v float32) {
	if axis == Horizontal {
		e.Left = v
	} else {
		e.Top = v
	}
}

func (e *Edges) setEnd(axis Axis, v float32) {
	if axis == Horizontal {
		e.Right = v
	} else {
		e.Bottom = v
	}
}

// IsZero reports whether every side is 0.
func (e Edges) IsZero() bool {
	return e.Top == 0 && e.Right == 0 && e.Bottom == 0 && e.Left == 0
}

// Opt is an optional float32. The zero value is unset.
type Opt struct {
	v  float32
	ok bool
}

// Some returns a set Opt.
func Some(v float32) Opt { return Opt{v: v, ok: true} }

// None is the unset Opt.
var None = Opt{}

// Get returns the value and whether it is set.
func (o Opt) Get() (float32, bool) { return o.v, o.ok }

// IsSet reports whether o holds a value.
func (o Opt) IsSet() bool { return o.ok }

// Equal reports whether o and other are both unset or hold the same value.
func (o Opt) Equal(other Opt) bool {
	return o.ok == other.ok && (!o.ok || o.v == other.v)
}

// Or returns o if set, otherwise other.
func (o Opt) Or(other Opt) Opt {
	if o.ok {
		return o
	}
	return other
}

// UnwrapOr returns the value or d.
func (o Opt) UnwrapOr(d float32) float32 {
	if o.ok {
		return o.v
	}
	return d
}

// Min returns min(o, other) when both are set, o when other is unset.
func (o Opt) Min(other Opt) Opt {
	if o.ok && other.ok {
		return Some(min(o.v, other.v))
	}
	return o
}

// Max returns max(o, other) when both are set, o when other is unset.
func (o Opt) Max(other Opt) Opt {
	if o.ok && other.ok {
		return Some(max(o.v, other.v))
	}
	return o
}

// MaxF floors a set value at v.
func (o Opt) MaxF(v float32) Opt {
	if o.ok {
		return Some(max(o.v, v))
	}
	return o
}

// Add adds v to a set value.
func (o Opt) Add(v float32) Opt {
	if o.ok {
		return Some(o.v + v)
	}
	return o
}

// Sub subtracts v from a set value.
func (o Opt) Sub(v float32) Opt {
	if o.ok {
		return Some(o.v - v)
	}
	return o
}

// SubOpt subtracts other when both are set.
func (o Opt) SubOpt(other Opt) Opt {
	if o.ok && other.ok {
		return Some(o.v - other.v)
	}
	return o
}

// Clamp clamps a set value. If lo > hi, lo wins.
func (o Opt) Clamp(lo, hi Opt) Opt {
	if !o.ok {
		return o
	}
	return Some(maybeClamp(o.v, lo, hi))
}

// OptSize is a width/height pair of optional values.
type OptSize struct {
	Width, Height Opt
}

// Get returns the component along axis.
func (s OptSize) Get(axis Axis) Opt {
	if axis == Horizontal {
		return s.Width
	}
	return s.Height
}

// Set returns a copy of s with the component along axis replaced.
func (s OptSize) Set(axis Axis, v Opt) OptSize {
	if axis == Horizontal {
		s.Width = v
	} else {
		s.Height = v
	}
	return s
}

// Main returns the main-axis component for dir.
func (s OptSize) Main(dir Direction) Opt { return s.Get(dir.MainAxis()) }

// Cross returns the cross-axis component for dir.
func (s OptSize) Cross(dir Direction) Opt { return s.Get(dir.MainAxis().Other()) }

// WithMain returns s with the main component replaced.
func (s OptSize) WithMain(dir Direction, v Opt) OptSize { return s.Set(dir.MainAxis(), v) }

// WithCross returns s with the cross component replaced.
func (s OptSize) WithCross(dir Direction, v Opt) OptSize { return s.Set(dir.MainAxis().Other(), v) }

// Or fills unset components from other.
func (s OptSize) Or(other OptSize) OptSize {
	return OptSize{Width: s.Width.Or(other.Width), Height: s.Height.Or(other.Height)}
}

// UnwrapOr fills unset components from d.
func (s OptSize) UnwrapOr(d Size) Size {
	return Size{Width: s.Width.UnwrapOr(d.Width), Height: s.Height.UnwrapOr(d.Height)}
}

// Clamp clamps set components.
func (s OptSize) Clamp(lo, hi OptSize) OptSize {
	return OptSize{Width: s.Width.Clamp(lo.Width, hi.Width), Height: s.Height.Clamp(lo.Height, hi.Height)}
}

// MaxSize floors set components by v.
func (s OptSize) MaxSize(v Size) OptSize {
	return OptSize{Width: s.Width.MaxF(v.Width), Height: s.Height.MaxF(v.Height)}
}

// SubSize subtracts v from set components.
func (s OptSize) SubSize(v Size) OptSize {
	return OptSize{Width: s.Width.Sub(v.Width), Height: s.Height.Sub(v.Height)}
}

// ApplyAspectRatio fills a missing component from the other one when ratio is set.
// ratio is width / height.
func (s OptSize) ApplyAspectRatio(ratio Opt) OptSize {
	r, ok := ratio.Get()
	if !ok || r == 0 {
		return s
	}
	w, wok := s.Width.Get()
	h, hok := s.Height.Get()
	switch {
	case wok && !hok:
		return OptSize{Width: s.Width, Height: Some(w / r)}
	case hok && !wok:
		return OptSize{Width: Some(h * r), Height: s.Height}
	}
	return s
}

// maybeClamp clamps v by optional bounds; lo wins when lo > hi.
func maybeClamp(v float32, lo, hi Opt) float32 {
	if h, ok := hi.Get(); ok {
		v = min(v, h)
	}
	if l, ok := lo.Get(); ok {
		v = max(v, l)
	}
	return v
}

func maybeMin(v float32, o Opt) float32 {
	if x, ok := o.Get(); ok {
		return min(v, x)
	}
	return v
}

func maybeMax(v float32, o Opt) float32 {
	if x, ok := o.Get(); ok {
		return max(v, x)
	}
	return v
}

func maybeSub(v float32, o Opt) float32 {
	if x, ok := o.Get(); ok {
		return v - x
	}
	return v
}
