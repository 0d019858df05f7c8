// Package fixture reads layout fixtures: TOML files describing a node tree,
// its styles and the geometry each node is expected to get.
package fixture

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// File is one decoded fixture.
type File struct {
	// Name is the file name without extension. It is not part of the TOML.
	Name string `toml:"-"`

	Description string    `toml:"description"`
	Available   Available `toml:"available"`
	Rounding    *bool     `toml:"rounding"`
	Root        Node      `toml:"root"`
}

// Available is the space offered to the root, e.g. "100px", "max-content".
// Empty axes default to max-content.
type Available struct {
	Width  string `toml:"width"`
	Height string `toml:"height"`
}

// Node is one node of the fixture tree.
type Node struct {
	ID       string    `toml:"id"`
	Style    StyleSpec `toml:"style"`
	Measure  *Measure  `toml:"measure"`
	Expect   *Expect   `toml:"expect"`
	Children []Node    `toml:"children"`
}

// Measure makes a node a measured leaf. Either a fixed content size or a text
// run shaped with the default font.
type Measure struct {
	Width      float32 `toml:"width"`
	Height     float32 `toml:"height"`
	Text       string  `toml:"text"`
	FontSize   float32 `toml:"font_size"`
	LineHeight float32 `toml:"line_height"`
}

// Expect is the geometry a node should get. Unset fields are not checked.
type Expect struct {
	X      *float32 `toml:"x"`
	Y      *float32 `toml:"y"`
	Width  *float32 `toml:"width"`
	Height *float32 `toml:"height"`
}

// StyleSpec is a style written with CSS-like strings.
type StyleSpec struct {
	Display  string `toml:"display"`
	Position string `toml:"position"`

	Width       string   `toml:"width"`
	Height      string   `toml:"height"`
	MinWidth    string   `toml:"min_width"`
	MinHeight   string   `toml:"min_height"`
	MaxWidth    string   `toml:"max_width"`
	MaxHeight   string   `toml:"max_height"`
	AspectRatio *float32 `toml:"aspect_ratio"`

	Margin    string `toml:"margin"`
	Padding   string `toml:"padding"`
	Border    string `toml:"border"`
	Inset     string `toml:"inset"`
	Gap       string `toml:"gap"`
	RowGap    string `toml:"row_gap"`
	ColumnGap string `toml:"column_gap"`

	Direction  string   `toml:"direction"`
	Wrap       string   `toml:"wrap"`
	FlexBasis  string   `toml:"flex_basis"`
	FlexGrow   *float32 `toml:"flex_grow"`
	FlexShrink *float32 `toml:"flex_shrink"`

	AlignItems     string `toml:"align_items"`
	AlignSelf      string `toml:"align_self"`
	AlignContent   string `toml:"align_content"`
	JustifyItems   string `toml:"justify_items"`
	JustifySelf    string `toml:"justify_self"`
	JustifyContent string `toml:"justify_content"`

	GridTemplateColumns string `toml:"grid_template_columns"`
	GridTemplateRows    string `toml:"grid_template_rows"`
	GridAutoColumns     string `toml:"grid_auto_columns"`
	GridAutoRows        string `toml:"grid_auto_rows"`
	GridAutoFlow        string `toml:"grid_auto_flow"`
	GridColumn          string `toml:"grid_column"`
	GridRow             string `toml:"grid_row"`
}

// Parse decodes a fixture from TOML.
func Parse(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &f, nil
}

// Load reads and decodes the fixture at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return f, nil
}

// Glob loads every *.toml fixture in dir, sorted by name.
func Glob(dir string) ([]*File, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.toml"))
	if err != nil {
		return nil, err
	}
	files := make([]*File, 0, len(paths))
	for _, p := range paths {
		f, err := Load(p)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}
