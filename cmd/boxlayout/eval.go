package main

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-boxlayout"
	"github.com/grindlemire/go-boxlayout/internal/fixture"
)

// layoutFlags are the flags shared by run and check.
type layoutFlags struct {
	width      string
	height     string
	noRounding bool
	jobs       int
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.width, "width", "", "available width for every root, e.g. 320 or max-content")
	flags.StringVar(&f.height, "height", "", "available height for every root, e.g. 240 or min-content")
	flags.BoolVar(&f.noRounding, "no-rounding", false, "report unrounded layouts")
	flags.IntVarP(&f.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of fixtures evaluated at once")
}

// config turns the flags into a fixture config. An axis left unset while the
// other is given is max-content.
func (f *layoutFlags) config() (fixture.Config, error) {
	cfg := fixture.Config{NoRounding: f.noRounding}
	if f.width == "" && f.height == "" {
		return cfg, nil
	}
	var avail boxlayout.AvailSize
	var err error
	if avail.Width, err = fixture.ParseAvailable(f.width); err != nil {
		return cfg, fmt.Errorf("--width: %w", err)
	}
	if avail.Height, err = fixture.ParseAvailable(f.height); err != nil {
		return cfg, fmt.Errorf("--height: %w", err)
	}
	cfg.Available = &avail
	return cfg, nil
}

// result is the outcome of evaluating one fixture file.
type result struct {
	path       string
	c          *fixture.Case
	mismatches []fixture.Mismatch
	err        error
}

func (r result) failed() bool { return r.err != nil || len(r.mismatches) > 0 }

// evaluate lays out every file, at most jobs at a time. Each file gets its own
// tree. Results keep the order of paths.
func evaluate(ctx context.Context, paths []string, cfg fixture.Config, jobs int) ([]result, error) {
	logger := loggerFromContext(ctx)
	results := make([]result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fileCfg := cfg
			fileCfg.Logger = slog.New(logger).With("fixture", path)
			results[i] = evaluateFile(path, fileCfg)
			logger.Debug("evaluated fixture", "path", path, "failed", results[i].failed())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func evaluateFile(path string, cfg fixture.Config) result {
	r := result{path: path}
	f, err := fixture.Load(path)
	if err != nil {
		r.err = err
		return r
	}
	c, err := fixture.Build(f, cfg)
	if err != nil {
		r.err = fmt.Errorf("%s: %w", path, err)
		return r
	}
	if err := c.Compute(); err != nil {
		r.err = fmt.Errorf("%s: %w", path, err)
		return r
	}
	r.c = c
	r.mismatches, r.err = c.Verify()
	return r
}
