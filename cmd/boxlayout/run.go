package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "run <path>...",
		Short: "Compute and print the layout of fixture files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config()
			if err != nil {
				return err
			}
			paths, err := collectFixtures(args)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("no fixture files found")
			}

			results, err := evaluate(cmd.Context(), paths, cfg, flags.jobs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var failed int
			for _, r := range results {
				if r.c == nil {
					printError(out, "%v", r.err)
					failed++
					continue
				}
				fmt.Fprintln(out, styleTitle.Render(r.c.File.Name))
				if r.c.File.Description != "" {
					printDetail(out, "%s", r.c.File.Description)
				}
				s, err := renderCase(r.c, nil)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, s)
			}
			if failed > 0 {
				return fmt.Errorf("%d file(s) could not be laid out", failed)
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
