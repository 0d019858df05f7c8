package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Verify fixtures against their expected geometry",
		Long: `Check lays out every fixture and compares each node with its expect table.
It exits non-zero if any fixture fails to build or any value differs.
With no paths, the current directory is searched recursively.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = []string{"./..."}
			}
			paths, err := collectFixtures(args)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("no fixture files found")
			}

			logger := loggerFromContext(cmd.Context())
			logger.Debug("checking fixtures", "count", len(paths))

			results, err := evaluate(cmd.Context(), paths, cfg, flags.jobs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var failed int
			for _, r := range results {
				switch {
				case r.err != nil:
					failed++
					printError(out, "%v", r.err)
				case len(r.mismatches) > 0:
					failed++
					printError(out, "%s", r.path)
					for _, m := range r.mismatches {
						printDetail(out, "%s", m)
					}
					if logger.GetLevel() <= log.DebugLevel {
						s, err := renderCase(r.c, r.mismatches)
						if err != nil {
							return err
						}
						fmt.Fprintln(out, s)
					}
				default:
					printSuccess(out, "%s", r.path)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d fixture(s) failed", failed, len(results))
			}
			printSuccess(out, "all %d fixture(s) passed", len(results))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
