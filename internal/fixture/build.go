package fixture

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/hashicorp/go-multierror"

	"github.com/grindlemire/go-boxlayout"
	"github.com/grindlemire/go-boxlayout/textmeasure"
)

// Tolerance is the largest difference between an expected and a computed
// value that still counts as a match.
const Tolerance = 0.01

// Config adjusts how a fixture is built.
type Config struct {
	// Available overrides the fixture's available space when set.
	Available *boxlayout.AvailSize
	// NoRounding disables pixel rounding regardless of the fixture.
	NoRounding bool
	Logger     *slog.Logger
}

// Entry is one node of a built fixture in depth-first order.
type Entry struct {
	Path   string
	Depth  int
	ID     boxlayout.NodeID
	Expect *Expect
}

// Case is a fixture turned into a live tree.
type Case struct {
	File      *File
	Tree      *boxlayout.Tree
	Root      boxlayout.NodeID
	Available boxlayout.AvailSize
	Entries   []Entry
}

type textKey struct {
	size, lineHeight float32
}

type builder struct {
	tree  *boxlayout.Tree
	texts map[textKey]*textmeasure.Measurer
	errs  multierror.Error
	nodes []Entry
}

// Build creates a tree for f. All style errors in the file are reported
// together, each prefixed with the path of its node.
func Build(f *File, cfg Config) (*Case, error) {
	var mErr multierror.Error

	avail := boxlayout.AvailSize{}
	var err error
	if avail.Width, err = ParseAvailable(f.Available.Width); err != nil {
		_ = multierror.Append(&mErr, multierror.Prefix(err, "available.width:"))
	}
	if avail.Height, err = ParseAvailable(f.Available.Height); err != nil {
		_ = multierror.Append(&mErr, multierror.Prefix(err, "available.height:"))
	}
	if cfg.Available != nil {
		avail = *cfg.Available
	}

	rounding := !cfg.NoRounding
	if f.Rounding != nil && !*f.Rounding {
		rounding = false
	}
	opts := []boxlayout.Option{boxlayout.WithRounding(rounding)}
	if cfg.Logger != nil {
		opts = append(opts, boxlayout.WithLogger(cfg.Logger))
	}
	tree, err := boxlayout.New(opts...)
	if err != nil {
		return nil, err
	}

	b := &builder{tree: tree, texts: make(map[textKey]*textmeasure.Measurer)}
	root := b.node(&f.Root, rootName(&f.Root), 0)
	_ = multierror.Append(&mErr, b.errs.Errors...)
	if err := mErr.ErrorOrNil(); err != nil {
		return nil, err
	}

	return &Case{
		File:      f,
		Tree:      tree,
		Root:      root,
		Available: avail,
		Entries:   b.nodes,
	}, nil
}

func rootName(n *Node) string {
	if n.ID != "" {
		return n.ID
	}
	return "root"
}

func (b *builder) node(n *Node, path string, depth int) boxlayout.NodeID {
	style, err := n.Style.Style()
	if err != nil {
		_ = multierror.Append(&b.errs, multierror.Prefix(err, path+":"))
	}

	var id boxlayout.NodeID
	if n.Measure != nil {
		measure, err := b.measure(n.Measure)
		if err != nil {
			_ = multierror.Append(&b.errs, multierror.Prefix(err, path+": measure:"))
		}
		id = b.tree.NewLeafWithMeasure(style, measure)
	} else {
		id = b.tree.NewLeaf(style)
	}

	b.nodes = append(b.nodes, Entry{Path: path, Depth: depth, ID: id, Expect: n.Expect})
	for i := range n.Children {
		c := &n.Children[i]
		name := c.ID
		if name == "" {
			name = strconv.Itoa(i)
		}
		child := b.node(c, path+"/"+name, depth+1)
		if err := b.tree.AddChild(id, child); err != nil {
			_ = multierror.Append(&b.errs, err)
		}
	}
	return id
}

func (b *builder) measure(m *Measure) (boxlayout.MeasureFunc, error) {
	if m.Text == "" {
		content := boxlayout.Size{Width: m.Width, Height: m.Height}
		return func(known boxlayout.OptSize, _ boxlayout.AvailSize) boxlayout.Size {
			return known.UnwrapOr(content)
		}, nil
	}

	key := textKey{size: m.FontSize, lineHeight: m.LineHeight}
	tm, ok := b.texts[key]
	if !ok {
		var opts []textmeasure.Option
		if m.FontSize != 0 {
			opts = append(opts, textmeasure.WithSize(m.FontSize))
		}
		if m.LineHeight != 0 {
			opts = append(opts, textmeasure.WithLineHeight(m.LineHeight))
		}
		var err error
		if tm, err = textmeasure.New(opts...); err != nil {
			return nil, err
		}
		b.texts[key] = tm
	}
	return tm.Measure(m.Text), nil
}

// Compute lays out the tree under the case's available space.
func (c *Case) Compute() error {
	return c.Tree.ComputeLayout(c.Root, c.Available)
}

// Mismatch is one expected value that the computed layout does not match.
type Mismatch struct {
	Path  string
	Field string
	Got   float32
	Want  float32
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: %s = %g, want %g", m.Path, m.Field, m.Got, m.Want)
}

// Verify compares every expectation with the computed layout. Compute must
// have been called.
func (c *Case) Verify() ([]Mismatch, error) {
	var out []Mismatch
	for _, e := range c.Entries {
		if e.Expect == nil {
			continue
		}
		l, err := c.Tree.Layout(e.ID)
		if err != nil {
			return nil, err
		}
		fields := []struct {
			name string
			want *float32
			got  float32
		}{
			{"x", e.Expect.X, l.Location.X},
			{"y", e.Expect.Y, l.Location.Y},
			{"width", e.Expect.Width, l.Size.Width},
			{"height", e.Expect.Height, l.Size.Height},
		}
		for _, f := range fields {
			if f.want == nil {
				continue
			}
			if math.Abs(float64(f.got-*f.want)) > Tolerance {
				out = append(out, Mismatch{Path: e.Path, Field: f.name, Got: f.got, Want: *f.want})
			}
		}
	}
	return out, nil
}
