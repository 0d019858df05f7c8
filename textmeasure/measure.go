// Package textmeasure measures text for layout: it shapes words with a real
// font and word-wraps them to the width a layout offers.
package textmeasure

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	lru "github.com/hashicorp/golang-lru/v2"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/grindlemire/go-boxlayout"
)

const (
	defaultSize      = 16
	defaultCacheSize = 4096

	// wrapSlack absorbs float error when a line is exactly as wide as the width.
	wrapSlack = 1e-3
)

// Measurer shapes words in one font at one size. It is safe for concurrent use.
type Measurer struct {
	fontData   []byte
	size       float32
	lineHeight float32
	cacheSize  int

	mu     sync.Mutex
	face   *font.Face
	shaper shaping.HarfbuzzShaper

	widths     *lru.Cache[string, float32]
	spaceWidth float32
}

// New creates a Measurer.
func New(opts ...Option) (*Measurer, error) {
	m := &Measurer{
		fontData:  goregular.TTF,
		size:      defaultSize,
		cacheSize: defaultCacheSize,
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	face, err := font.ParseTTF(bytes.NewReader(m.fontData))
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	m.face = face

	if m.lineHeight == 0 {
		h, err := lineHeight(m.fontData, m.size)
		if err != nil {
			return nil, err
		}
		m.lineHeight = h
	}

	m.widths, err = lru.New[string, float32](m.cacheSize)
	if err != nil {
		return nil, err
	}
	m.spaceWidth = m.WordWidth(" ")
	return m, nil
}

// lineHeight reads the recommended line spacing from the font's metrics.
func lineHeight(data []byte, size float32) (float32, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return 0, fmt.Errorf("parse font metrics: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: xfont.HintingNone,
	})
	if err != nil {
		return 0, fmt.Errorf("open font face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()
	return fixedToFloat(face.Metrics().Height), nil
}

// Size returns the font size in pixels.
func (m *Measurer) Size() float32 { return m.size }

// LineHeight returns the height of one line of text.
func (m *Measurer) LineHeight() float32 { return m.lineHeight }

// WordWidth returns the advance width of s shaped as a single run.
func (m *Measurer) WordWidth(s string) float32 {
	if s == "" {
		return 0
	}
	if w, ok := m.widths.Get(s); ok {
		return w
	}
	runes := []rune(s)

	m.mu.Lock()
	out := m.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      m.face,
		Size:      fixed.Int26_6(m.size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	})
	m.mu.Unlock()

	var adv fixed.Int26_6
	for _, g := range out.Glyphs {
		adv += g.XAdvance
	}
	w := fixedToFloat(adv)
	m.widths.Add(s, w)
	return w
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// Text is a paragraph measured once into words.
type Text struct {
	m       *Measurer
	words   []float32
	longest float32
	single  float32
}

// Prepare splits s on whitespace and measures every word.
func (m *Measurer) Prepare(s string) *Text {
	fields := strings.Fields(s)
	t := &Text{m: m, words: make([]float32, len(fields))}
	for i, f := range fields {
		w := m.WordWidth(f)
		t.words[i] = w
		t.longest = max(t.longest, w)
		t.single += w
	}
	if n := len(fields); n > 1 {
		t.single += float32(n-1) * m.spaceWidth
	}
	return t
}

// MinContentWidth is the width of the longest word.
func (t *Text) MinContentWidth() float32 { return t.longest }

// MaxContentWidth is the width of the text on a single line.
func (t *Text) MaxContentWidth() float32 { return t.single }

// Wrap breaks the words greedily into lines no wider than width, except where
// a single word is wider, and returns the widest line and the line count.
func (t *Text) Wrap(width float32) (widest float32, lines int) {
	if len(t.words) == 0 {
		return 0, 0
	}
	lines = 1
	line := float32(0)
	for i, w := range t.words {
		switch {
		case i == 0:
			line = w
		case line+t.m.spaceWidth+w <= width+wrapSlack:
			line += t.m.spaceWidth + w
		default:
			widest = max(widest, line)
			line = w
			lines++
		}
	}
	return max(widest, line), lines
}

// MeasureFunc returns a layout measure function for the text.
func (t *Text) MeasureFunc() boxlayout.MeasureFunc {
	return func(known boxlayout.OptSize, available boxlayout.AvailSize) boxlayout.Size {
		if len(t.words) == 0 {
			return boxlayout.Size{Width: known.Width.UnwrapOr(0), Height: known.Height.UnwrapOr(0)}
		}

		width, ok := known.Width.Get()
		if !ok {
			switch available.Width.Kind {
			case boxlayout.SpaceMinContent:
				width = t.longest
			case boxlayout.SpaceDefinite:
				width = min(max(available.Width.Value, t.longest), t.single)
			default:
				width = t.single
			}
		}
		widest, lines := t.Wrap(width)
		return boxlayout.Size{
			Width:  known.Width.UnwrapOr(widest),
			Height: known.Height.UnwrapOr(float32(lines) * t.m.lineHeight),
		}
	}
}

// Measure is shorthand for Prepare(s).MeasureFunc().
func (m *Measurer) Measure(s string) boxlayout.MeasureFunc {
	return m.Prepare(s).MeasureFunc()
}
