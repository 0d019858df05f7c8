package boxlayout

import (
	"fmt"
	"log/slog"
)

// Option is a functional option for configuring a Tree.
type Option func(*Tree) error

// WithRounding sets whether ComputeLayout snaps layouts to whole pixels.
// Default is true.
func WithRounding(enabled bool) Option {
	return func(t *Tree) error {
		t.rounding = enabled
		return nil
	}
}

// WithCapacity preallocates room for n nodes. Must not be negative.
func WithCapacity(n int) Option {
	return func(t *Tree) error {
		if n < 0 {
			return fmt.Errorf("capacity must not be negative, got %d", n)
		}
		t.nodes = make([]node, 0, n)
		return nil
	}
}

// WithLogger sets the logger for tree-level debug records such as cache
// invalidation. The layout engine itself logs through SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tree) error {
		t.logger = l
		return nil
	}
}
