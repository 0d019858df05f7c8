package layout

import "math"

// SpaceKind distinguishes the three sizing constraints a parent can offer a child.
type SpaceKind uint8

const (
	SpaceMaxContent SpaceKind = iota // size to max-content
	SpaceMinContent                  // size to min-content
	SpaceDefinite                    // an exact amount of space
)

// AvailableSpace is the per-axis constraint passed down to a child.
type AvailableSpace struct {
	Kind  SpaceKind
	Value float32 // only meaningful for SpaceDefinite
}

// Definite returns a definite constraint of v pixels.
func Definite(v float32) AvailableSpace {
	return AvailableSpace{Kind: SpaceDefinite, Value: v}
}

var (
	// MinContent asks for the minimum intrinsic size.
	MinContent = AvailableSpace{Kind: SpaceMinContent}
	// MaxContent asks for the maximum intrinsic size.
	MaxContent = AvailableSpace{Kind: SpaceMaxContent}
)

// IsDefinite reports whether a is a definite amount.
func (a AvailableSpace) IsDefinite() bool { return a.Kind == SpaceDefinite }

// Opt returns the definite value, or None.
func (a AvailableSpace) Opt() Opt {
	if a.Kind == SpaceDefinite {
		return Some(a.Value)
	}
	return None
}

// UnwrapOr returns the definite value or d.
func (a AvailableSpace) UnwrapOr(d float32) float32 {
	if a.Kind == SpaceDefinite {
		return a.Value
	}
	return d
}

// Sub subtracts v from a definite value.
func (a AvailableSpace) Sub(v float32) AvailableSpace {
	if a.Kind == SpaceDefinite {
		return Definite(a.Value - v)
	}
	return a
}

// SubOpt subtracts o from a definite value when o is set.
func (a AvailableSpace) SubOpt(o Opt) AvailableSpace {
	if v, ok := o.Get(); ok {
		return a.Sub(v)
	}
	return a
}

// OrOpt returns Definite(o) when o is set, otherwise a.
func (a AvailableSpace) OrOpt(o Opt) AvailableSpace {
	if v, ok := o.Get(); ok {
		return Definite(v)
	}
	return a
}

// MapDefinite transforms a definite value.
func (a AvailableSpace) MapDefinite(f func(float32) float32) AvailableSpace {
	if a.Kind == SpaceDefinite {
		return Definite(f(a.Value))
	}
	return a
}

// Clamp clamps a definite value.
func (a AvailableSpace) Clamp(lo, hi Opt) AvailableSpace {
	if a.Kind == SpaceDefinite {
		return Definite(maybeClamp(a.Value, lo, hi))
	}
	return a
}

// FreeSpace returns the room left after used, or +Inf/0 for max/min-content.
func (a AvailableSpace) FreeSpace(used float32) float32 {
	switch a.Kind {
	case SpaceDefinite:
		return a.Value - used
	case SpaceMinContent:
		return 0
	default:
		return float32(math.Inf(1))
	}
}

// RoughlyEqual compares constraints, treating definite values within epsilon as equal.
func (a AvailableSpace) RoughlyEqual(o AvailableSpace) bool {
	if a.Kind != o.Kind {
		return false
	}
	if a.Kind != SpaceDefinite {
		return true
	}
	d := a.Value - o.Value
	return d < epsilon && d > -epsilon
}

const epsilon = 1.1920929e-07 // float32 machine epsilon

// AvailSize holds the available space for both axes.
type AvailSize struct {
	Width, Height AvailableSpace
}

// Get returns the component along axis.
func (s AvailSize) Get(axis Axis) AvailableSpace {
	if axis == Horizontal {
		return s.Width
	}
	return s.Height
}

// Set returns a copy of s with the component along axis replaced.
func (s AvailSize) Set(axis Axis, v AvailableSpace) AvailSize {
	if axis == Horizontal {
		s.Width = v
	} else {
		s.Height = v
	}
	return s
}

// Main returns the main-axis component for dir.
func (s AvailSize) Main(dir Direction) AvailableSpace { return s.Get(dir.MainAxis()) }

// Cross returns the cross-axis component for dir.
func (s AvailSize) Cross(dir Direction) AvailableSpace { return s.Get(dir.MainAxis().Other()) }

// WithMain returns s with the main component replaced.
func (s AvailSize) WithMain(dir Direction, v AvailableSpace) AvailSize { return s.Set(dir.MainAxis(), v) }

// WithCross returns s with the cross component replaced.
func (s AvailSize) WithCross(dir Direction, v AvailableSpace) AvailSize {
	return s.Set(dir.MainAxis().Other(), v)
}

// Opt converts definite components into an OptSize.
func (s AvailSize) Opt() OptSize { return OptSize{Width: s.Width.Opt(), Height: s.Height.Opt()} }

// AvailFromOpt builds definite constraints from set values and falls back to fallback.
func AvailFromOpt(o OptSize, fallback AvailSize) AvailSize {
	return AvailSize{Width: fallback.Width.OrOpt(o.Width), Height: fallback.Height.OrOpt(o.Height)}
}

// AvailFromSize returns definite constraints for both axes.
func AvailFromSize(s Size) AvailSize {
	return AvailSize{Width: Definite(s.Width), Height: Definite(s.Height)}
}
