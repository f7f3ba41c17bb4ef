package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd(g *globalFlags) *cobra.Command {
	var (
		lf          loadFlags
		showSkipped bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show index statistics for a rule source",
		Long: `The stats command loads rules and prints the sizes of the exact, key and
wildcard tables of the resulting index.

Example:
  recid stats --rules ./rules
  recid stats --rules s3://my-bucket/rules --skipped`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := commandEnv(cmd, g)
			if err != nil {
				return err
			}

			idx, report, err := lf.load(cmd.Context(), e)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Blobs: %d\nRules: %d\nSkipped: %d\n", report.Blobs, report.Rules, len(report.Skipped))
			if showSkipped {
				for _, s := range report.Skipped {
					fmt.Fprintf(out, "  %s[%d] %q: %v\n", s.Source, s.Index, s.Rule.ID, s.Err)
				}
			}
			if err := idx.WriteStats(out); err != nil {
				return err
			}
			return e.writeMetrics(cmd.ErrOrStderr())
		},
	}

	lf.register(cmd)
	cmd.Flags().BoolVar(&showSkipped, "skipped", false, "List skipped rules")
	return cmd
}
