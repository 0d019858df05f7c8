package textmeasure

import "fmt"

// Option is a functional option for configuring a Measurer.
type Option func(*Measurer) error

// WithFont sets the TrueType or OpenType font data. Default is Go Regular.
func WithFont(ttf []byte) Option {
	return func(m *Measurer) error {
		if len(ttf) == 0 {
			return fmt.Errorf("font data is empty")
		}
		m.fontData = ttf
		return nil
	}
}

// WithSize sets the font size in pixels. Default is 16.
func WithSize(px float32) Option {
	return func(m *Measurer) error {
		if px <= 0 {
			return fmt.Errorf("font size must be positive, got %v", px)
		}
		m.size = px
		return nil
	}
}

// WithLineHeight overrides the line height taken from the font metrics.
func WithLineHeight(px float32) Option {
	return func(m *Measurer) error {
		if px <= 0 {
			return fmt.Errorf("line height must be positive, got %v", px)
		}
		m.lineHeight = px
		return nil
	}
}

// WithCacheSize sets how many word widths are remembered. Default is 4096.
func WithCacheSize(n int) Option {
	return func(m *Measurer) error {
		if n < 1 {
			return fmt.Errorf("cache size must be at least 1, got %d", n)
		}
		m.cacheSize = n
		return nil
	}
}
