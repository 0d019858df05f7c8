package layout

import (
	"testing"

	"pgregory.net/rapid"
)

func TestDistributeSpace(t *testing.T) {
	type tc struct {
		free     float32
		n        int
		mode     Justify
		reversed bool
		leading  float32
		between  float32
	}

	tests := map[string]tc{
		"start":                  {free: 60, n: 3, mode: JustifyStart},
		"end":                    {free: 60, n: 3, mode: JustifyEnd, leading: 60},
		"flex-start":             {free: 60, n: 3, mode: JustifyFlexStart},
		"flex-start reversed":    {free: 60, n: 3, mode: JustifyFlexStart, reversed: true, leading: 60},
		"flex-end reversed":      {free: 60, n: 3, mode: JustifyFlexEnd, reversed: true},
		"center":                 {free: 60, n: 3, mode: JustifyCenter, leading: 30},
		"space-between":          {free: 60, n: 3, mode: JustifySpaceBetween, between: 30},
		"space-between single":   {free: 60, n: 1, mode: JustifySpaceBetween},
		"space-around":           {free: 60, n: 3, mode: JustifySpaceAround, leading: 10, between: 20},
		"space-evenly":           {free: 60, n: 3, mode: JustifySpaceEvenly, leading: 15, between: 15},
		"negative free is start": {free: -40, n: 2, mode: JustifyCenter},
		"stretch is start":       {free: 60, n: 3, mode: JustifyStretch},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			leading, between := DistributeSpace(tt.free, tt.n, tt.mode, tt.reversed)
			if !approx(leading, tt.leading) {
				t.Errorf("leading = %v, want %v", leading, tt.leading)
			}
			if !approx(between, tt.between) {
				t.Errorf("between = %v, want %v", between, tt.between)
			}
		})
	}
}

func TestAlignmentOffset(t *testing.T) {
	if got := AlignmentOffset(60, 3, 5, JustifySpaceBetween, false, true); got != 0 {
		t.Errorf("first offset = %v, want 0", got)
	}
	if got := AlignmentOffset(60, 3, 5, JustifySpaceBetween, false, false); got != 35 {
		t.Errorf("later offset = %v, want 35", got)
	}
}

// Whatever the mode, the space handed out never exceeds the free space and
// distributing keywords hand out all of it.
func TestDistributeSpaceConservation(t *testing.T) {
	modes := []Justify{
		JustifyStart, JustifyEnd, JustifyFlexStart, JustifyFlexEnd, JustifyCenter,
		JustifySpaceBetween, JustifySpaceAround, JustifySpaceEvenly,
	}
	rapid.Check(t, func(t *rapid.T) {
		free := float32(rapid.IntRange(0, 1000).Draw(t, "free"))
		n := rapid.IntRange(1, 12).Draw(t, "n")
		mode := rapid.SampledFrom(modes).Draw(t, "mode")
		reversed := rapid.Bool().Draw(t, "reversed")

		leading, between := DistributeSpace(free, n, mode, reversed)
		if leading < 0 || between < 0 {
			t.Fatalf("negative offsets: leading %v between %v", leading, between)
		}
		used := leading + between*float32(n-1)
		if used > free+1e-2 {
			t.Fatalf("used %v exceeds free %v", used, free)
		}
		trailing := free - used
		near := func(a, b float32) bool { return a-b < 1e-2 && b-a < 1e-2 }
		switch mode {
		case JustifySpaceBetween:
			if n > 1 && !near(trailing, 0) {
				t.Fatalf("space-between left %v at the end", trailing)
			}
		case JustifySpaceAround:
			if !near(trailing, leading) {
				t.Fatalf("space-around trailing %v, leading %v", trailing, leading)
			}
		case JustifySpaceEvenly, JustifyCenter:
			if !near(trailing, leading) {
				t.Fatalf("%v trailing %v, leading %v", mode, trailing, leading)
			}
		}
	})
}

func TestSelfOffset(t *testing.T) {
	type tc struct {
		mode     Align
		reversed bool
		want     float32
	}

	tests := map[string]tc{
		"start":             {mode: AlignStart, want: 0},
		"end":               {mode: AlignEnd, want: 40},
		"center":            {mode: AlignCenter, want: 20},
		"flex-end":          {mode: AlignFlexEnd, want: 40},
		"flex-end reversed": {mode: AlignFlexEnd, reversed: true, want: 0},
		"stretch":           {mode: AlignStretch, want: 0},
		"baseline":          {mode: AlignBaseline, want: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := selfOffset(40, tt.mode, tt.reversed); got != tt.want {
				t.Errorf("selfOffset() = %v, want %v", got, tt.want)
			}
		})
	}
}
