package boxlayout_test

import (
	"testing"

	"github.com/shoenig/test/must"

	"github.com/grindlemire/go-boxlayout/internal/fixture"
)

func TestFixtures(t *testing.T) {
	files, err := fixture.Glob("testdata/fixtures")
	must.NoError(t, err)
	must.SliceNotEmpty(t, files)

	for _, f := range files {
		t.Run(f.Name, func(t *testing.T) {
			c, err := fixture.Build(f, fixture.Config{})
			must.NoError(t, err)
			must.NoError(t, c.Compute())

			mismatches, err := c.Verify()
			must.NoError(t, err)
			for _, m := range mismatches {
				t.Errorf("%s", m)
			}
		})
	}
}

func TestFixturesUnrounded(t *testing.T) {
	files, err := fixture.Glob("testdata/fixtures")
	must.NoError(t, err)

	for _, f := range files {
		t.Run(f.Name, func(t *testing.T) {
			c, err := fixture.Build(f, fixture.Config{NoRounding: true})
			must.NoError(t, err)
			must.NoError(t, c.Compute())

			mismatches, err := c.Verify()
			must.NoError(t, err)
			for _, m := range mismatches {
				t.Errorf("%s", m)
			}
		})
	}
}
