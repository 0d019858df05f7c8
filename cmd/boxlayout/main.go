// Package main provides a CLI for running layout fixtures.
//
// Usage:
//
//	boxlayout run [path...]      Compute and print the layout of fixture files
//	boxlayout check [path...]    Verify fixtures against their expected geometry
//
// Examples:
//
//	boxlayout run testdata/fixtures/flex_grow_child.toml
//	boxlayout run --width 320 --no-rounding ./fixtures
//	boxlayout check ./testdata/...
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-boxlayout"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "boxlayout",
		Short:         "Run flexbox, grid and block layout fixtures",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			boxlayout.SetLogger(slog.New(logger))
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newRunCmd())
	root.AddCommand(newCheckCmd())
	return root
}
