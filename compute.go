package boxlayout

import (
	"log/slog"

	"github.com/grindlemire/go-boxlayout/internal/layout"
)

// layoutView is the Tree as seen by the layout engine.
type layoutView Tree

var _ layout.Tree = (*layoutView)(nil)

func (v *layoutView) tree() *Tree { return (*Tree)(v) }

func (v *layoutView) LayoutStyle(id NodeID) *Style { return &v.tree().mustGet(id).style }
func (v *layoutView) LayoutChildren(id NodeID) []NodeID { return v.tree().mustGet(id).children }
func (v *layoutView) SetLayout(id NodeID, l Layout) { v.tree().mustGet(id).unrounded = l }
func (v *layoutView) GetLayout(id NodeID) Layout { return v.tree().mustGet(id).unrounded }
func (v *layoutView) LayoutCache(id NodeID) *layout.Cache { return &v.tree().mustGet(id).cache }
func (v *layoutView) Measure(id NodeID) layout.MeasureFunc { return v.tree().mustGet(id).measure }

// ComputeLayout lays out the subtree rooted at root within available. Results
// are read back with Layout.
func (t *Tree) ComputeLayout(root NodeID, available AvailSize) error {
	if _, err := t.get(root); err != nil {
		return err
	}
	layout.ComputeRootLayout((*layoutView)(t), root, available)

	if t.rounding {
		t.roundLayout(root, 0, 0)
	} else {
		t.copyUnrounded(root)
	}
	if t.debugEnabled() {
		t.log().Debug("layout computed", slog.Uint64("root", uint64(root)), slog.Bool("rounded", t.rounding))
	}
	return nil
}

func (t *Tree) copyUnrounded(id NodeID) {
	n := t.mustGet(id)
	n.final = n.unrounded
	for _, c := range n.children {
		t.copyUnrounded(c)
	}
}

// Layout returns node's layout from the last ComputeLayout, rounded to whole
// pixels unless rounding is disabled. Location is relative to the parent's
// border box.
func (t *Tree) Layout(id NodeID) (Layout, error) {
	n, err := t.get(id)
	if err != nil {
		return Layout{}, err
	}
	return n.final, nil
}

// UnroundedLayout returns node's layout before rounding.
func (t *Tree) UnroundedLayout(id NodeID) (Layout, error) {
	n, err := t.get(id)
	if err != nil {
		return Layout{}, err
	}
	return n.unrounded, nil
}
