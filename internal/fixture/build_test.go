package fixture

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shoenig/test/must"

	"github.com/grindlemire/go-boxlayout"
)

const growFixture = `
description = "a fixed child and a growing child"

[available]
width = "100px"
height = "100px"

[root]
id = "root"
[root.style]
width = "100px"
height = "100px"
[root.expect]
width = 100
height = 100

[[root.children]]
id = "fixed"
[root.children.style]
width = "20px"
[root.children.expect]
x = 0
width = 20
height = 100

[[root.children]]
[root.children.style]
flex_grow = 1
[root.children.expect]
x = 20
width = 80
`

func build(t *testing.T, src string, cfg Config) *Case {
	t.Helper()
	f, err := Parse([]byte(src))
	must.NoError(t, err)
	c, err := Build(f, cfg)
	must.NoError(t, err)
	must.NoError(t, c.Compute())
	return c
}

func TestBuildAndVerify(t *testing.T) {
	c := build(t, growFixture, Config{})

	must.Eq(t, "a fixed child and a growing child", c.File.Description)
	paths := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		paths[i] = e.Path
	}
	must.Eq(t, []string{"root", "root/fixed", "root/1"}, paths)
	must.Eq(t, 1, c.Entries[2].Depth)
	must.Eq(t, boxlayout.DefiniteSize(100, 100), c.Available)

	mismatches, err := c.Verify()
	must.NoError(t, err)
	must.SliceEmpty(t, mismatches)
}

func TestVerifyReportsMismatch(t *testing.T) {
	src := strings.Replace(growFixture, "x = 20\nwidth = 80", "x = 20\nwidth = 50", 1)
	c := build(t, src, Config{})

	mismatches, err := c.Verify()
	must.NoError(t, err)
	must.Eq(t, []Mismatch{{Path: "root/1", Field: "width", Got: 80, Want: 50}}, mismatches)
	must.Eq(t, "root/1: width = 80, want 50", mismatches[0].String())
}

func TestConfigOverridesAvailable(t *testing.T) {
	src := `
[root]
[root.style]
width = "50%"
`
	avail := boxlayout.DefiniteSize(300, 40)
	c := build(t, src, Config{Available: &avail})

	l, err := c.Tree.Layout(c.Root)
	must.NoError(t, err)
	must.Eq(t, float32(150), l.Size.Width)
	must.Eq(t, "root", c.Entries[0].Path)
}

func TestRounding(t *testing.T) {
	src := `
rounding = %s
[root]
[root.style]
width = "100px"
height = "10px"
[[root.children]]
[root.children.style]
flex_grow = 1
[[root.children]]
[root.children.style]
flex_grow = 1
[[root.children]]
[root.children.style]
flex_grow = 1
`
	type tc struct {
		rounding string
		cfg      Config
		want     float32
	}

	tests := map[string]tc{
		"rounded":          {rounding: "true", want: 34},
		"fixture disables": {rounding: "false", want: 100.0 / 3},
		"config disables":  {rounding: "true", cfg: Config{NoRounding: true}, want: 100.0 / 3},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := build(t, strings.Replace(src, "%s", tt.rounding, 1), tt.cfg)
			l, err := c.Tree.Layout(c.Entries[2].ID)
			must.NoError(t, err)
			if d := l.Size.Width - tt.want; d > 1e-3 || d < -1e-3 {
				t.Errorf("middle width = %v, want %v", l.Size.Width, tt.want)
			}
		})
	}
}

func TestMeasuredLeaves(t *testing.T) {
	src := `
[root]
[root.style]
direction = "column"
align_items = "flex-start"

[[root.children]]
id = "box"
[root.children.measure]
width = 30
height = 12
[root.children.expect]
width = 30
height = 12

[[root.children]]
id = "text"
[root.children.measure]
text = "hello"
line_height = 10
[root.children.expect]
y = 12
height = 10
`
	c := build(t, src, Config{})
	mismatches, err := c.Verify()
	must.NoError(t, err)
	must.SliceEmpty(t, mismatches)

	l, err := c.Tree.Layout(c.Entries[2].ID)
	must.NoError(t, err)
	must.Positive(t, l.Size.Width)
}

func TestBuildReportsEveryError(t *testing.T) {
	src := `
[available]
width = "lots"

[root]
[root.style]
display = "table"

[[root.children]]
id = "bad"
[root.children.style]
width = "1em"
grid_row = "0"

[[root.children]]
[root.children.measure]
text = "x"
font_size = -1
`
	f, err := Parse([]byte(src))
	must.NoError(t, err)

	_, err = Build(f, Config{})
	must.Error(t, err)
	msg := err.Error()
	for _, want := range []string{"available.width:", "root: display:", "root/bad: width:", "root/bad: grid_row:", "root/1: measure:"} {
		must.True(t, strings.Contains(msg, want), must.Sprintf("missing %q in %s", want, msg))
	}
}

func TestParseRejectsMalformedTOML(t *testing.T) {
	_, err := Parse([]byte("[root\nid = 1"))
	must.Error(t, err)
}

func TestGlob(t *testing.T) {
	dir := t.TempDir()
	must.NoError(t, os.WriteFile(filepath.Join(dir, "b.toml"), []byte(growFixture), 0o644))
	must.NoError(t, os.WriteFile(filepath.Join(dir, "a.toml"), []byte("[root]\n"), 0o644))
	must.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	files, err := Glob(dir)
	must.NoError(t, err)
	must.SliceLen(t, 2, files)
	must.Eq(t, "a", files[0].Name)
	must.Eq(t, "b", files[1].Name)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	must.Error(t, err)
}
