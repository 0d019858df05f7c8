package textmeasure

import (
	"testing"

	"github.com/shoenig/test/must"

	"github.com/grindlemire/go-boxlayout"
)

func newMeasurer(t *testing.T, opts ...Option) *Measurer {
	t.Helper()
	m, err := New(opts...)
	must.NoError(t, err)
	return m
}

func TestNewOptionErrors(t *testing.T) {
	type tc struct {
		opt Option
	}

	tests := map[string]tc{
		"empty font":       {opt: WithFont(nil)},
		"bad font":         {opt: WithFont([]byte("not a font"))},
		"zero size":        {opt: WithSize(0)},
		"zero line height": {opt: WithLineHeight(0)},
		"zero cache":       {opt: WithCacheSize(0)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := New(tt.opt); err == nil {
				t.Errorf("New() error = nil, want an error")
			}
		})
	}
}

func TestWordWidth(t *testing.T) {
	m := newMeasurer(t)

	must.Eq(t, float32(0), m.WordWidth(""))
	hello := m.WordWidth("hello")
	must.Positive(t, hello)
	must.Greater(t, hello, m.WordWidth("hello, world"))

	_, cached := m.widths.Get("hello")
	must.True(t, cached)
	must.Eq(t, hello, m.WordWidth("hello"))
}

func TestWordWidthScalesWithSize(t *testing.T) {
	small := newMeasurer(t, WithSize(10))
	large := newMeasurer(t, WithSize(20))

	ratio := large.WordWidth("layout") / small.WordWidth("layout")
	if ratio < 1.9 || ratio > 2.1 {
		t.Errorf("width ratio = %v, want about 2", ratio)
	}
}

func TestLineHeight(t *testing.T) {
	m := newMeasurer(t)
	must.Positive(t, m.LineHeight())

	fixed := newMeasurer(t, WithLineHeight(30))
	must.Eq(t, float32(30), fixed.LineHeight())
}

func TestTextContentWidths(t *testing.T) {
	m := newMeasurer(t)
	text := m.Prepare("a quick  brownish fox")

	must.Eq(t, m.WordWidth("brownish"), text.MinContentWidth())
	want := m.WordWidth("a") + m.WordWidth("quick") + m.WordWidth("brownish") + m.WordWidth("fox") + 3*m.WordWidth(" ")
	if got := text.MaxContentWidth(); got-want > 1e-3 || want-got > 1e-3 {
		t.Errorf("MaxContentWidth() = %v, want %v", got, want)
	}
}

func TestWrap(t *testing.T) {
	m := newMeasurer(t)
	text := m.Prepare("aaa aaa aaa")
	word := m.WordWidth("aaa")
	space := m.WordWidth(" ")

	type tc struct {
		width     float32
		wantLines int
		wantWidth float32
	}

	tests := map[string]tc{
		"single line":        {width: text.MaxContentWidth(), wantLines: 1, wantWidth: text.MaxContentWidth()},
		"two per line":       {width: 2*word + space, wantLines: 2, wantWidth: 2*word + space},
		"one per line":       {width: word, wantLines: 3, wantWidth: word},
		"narrower than word": {width: 1, wantLines: 3, wantWidth: word},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			widest, lines := text.Wrap(tt.width)
			if lines != tt.wantLines {
				t.Errorf("lines = %d, want %d", lines, tt.wantLines)
			}
			if d := widest - tt.wantWidth; d > 1e-3 || d < -1e-3 {
				t.Errorf("widest = %v, want %v", widest, tt.wantWidth)
			}
		})
	}
}

func TestMeasureFunc(t *testing.T) {
	m := newMeasurer(t, WithLineHeight(10))
	text := m.Prepare("aaa aaa aaa")
	measure := text.MeasureFunc()
	word := m.WordWidth("aaa")

	type tc struct {
		known     boxlayout.OptSize
		available boxlayout.AvailSize
		want      boxlayout.Size
	}

	tests := map[string]tc{
		"max content": {
			available: boxlayout.AvailSize{Width: boxlayout.MaxContent, Height: boxlayout.MaxContent},
			want:      boxlayout.Size{Width: text.MaxContentWidth(), Height: 10},
		},
		"min content": {
			available: boxlayout.AvailSize{Width: boxlayout.MinContent, Height: boxlayout.MaxContent},
			want:      boxlayout.Size{Width: word, Height: 30},
		},
		"known width": {
			known:     boxlayout.OptSize{Width: boxlayout.Some(word)},
			available: boxlayout.AvailSize{Width: boxlayout.MaxContent, Height: boxlayout.MaxContent},
			want:      boxlayout.Size{Width: word, Height: 30},
		},
		"known both": {
			known:     boxlayout.OptSize{Width: boxlayout.Some(5), Height: boxlayout.Some(7)},
			available: boxlayout.AvailSize{Width: boxlayout.MaxContent, Height: boxlayout.MaxContent},
			want:      boxlayout.Size{Width: 5, Height: 7},
		},
		"definite wider than text": {
			available: boxlayout.DefiniteSize(1000, 1000),
			want:      boxlayout.Size{Width: text.MaxContentWidth(), Height: 10},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := measure(tt.known, tt.available)
			if d := got.Width - tt.want.Width; d > 1e-3 || d < -1e-3 || got.Height != tt.want.Height {
				t.Errorf("measure() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEmptyText(t *testing.T) {
	m := newMeasurer(t)
	got := m.Measure("   ")(boxlayout.OptSize{}, boxlayout.AvailSize{})
	must.Eq(t, boxlayout.Size{}, got)
}

func TestMeasuredLeafInTree(t *testing.T) {
	m := newMeasurer(t, WithLineHeight(10))
	tree, err := boxlayout.New(boxlayout.WithRounding(false))
	must.NoError(t, err)

	text := m.Prepare("aaa aaa aaa")
	word := m.WordWidth("aaa")
	leaf := tree.NewLeafWithMeasure(boxlayout.DefaultStyle(), text.MeasureFunc())
	style := boxlayout.DefaultStyle()
	style.Width = boxlayout.Length(word + 1)
	style.Direction = boxlayout.Column
	root, err := tree.NewWithChildren(style, leaf)
	must.NoError(t, err)

	must.NoError(t, tree.ComputeLayout(root, boxlayout.AvailSize{Width: boxlayout.MaxContent, Height: boxlayout.MaxContent}))
	l, err := tree.Layout(leaf)
	must.NoError(t, err)
	must.Eq(t, float32(30), l.Size.Height)
}
