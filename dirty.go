package boxlayout

import "log/slog"

// MarkDirty drops the cached layout of node and of every ancestor, so the
// next ComputeLayout recomputes them. Mutating methods call it automatically;
// call it yourself when a measure function's output changes.
func (t *Tree) MarkDirty(id NodeID) error {
	if _, err := t.get(id); err != nil {
		return err
	}
	t.invalidate(id)
	return nil
}

func (t *Tree) invalidate(id NodeID) {
	cleared := 0
	for ; id != 0; id = t.mustGet(id).parent {
		if t.mustGet(id).cache.Clear() {
			cleared++
		}
	}
	if cleared > 0 && t.debugEnabled() {
		t.log().Debug("layout cache invalidated", slog.Int("nodes", cleared))
	}
}

// Dirty reports whether node has no cached layout and will be recomputed by
// the next ComputeLayout.
func (t *Tree) Dirty(id NodeID) (bool, error) {
	n, err := t.get(id)
	if err != nil {
		return false, err
	}
	return n.cache.IsEmpty(), nil
}
