package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newCheatsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cheats FILE",
		Short: "Count one-wall shortcuts saving at least --min-saving steps",
		Long:  `Measures the uniform-step baseline from S to E, then counts the distinct (entry, exit) pairs that phase through one wall and beat the baseline by at least --min-saving steps.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minSaving := a.cfg.MinSaving
			if cmd.Flags().Changed("min-saving") {
				minSaving, _ = cmd.Flags().GetInt("min-saving")
			}
			histogram, _ := cmd.Flags().GetBool("histogram")

			m, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}
			rep, err := a.svc.Cheats(cmd.Context(), m, minSaving)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "baseline: %d\n", rep.Baseline)
			if histogram {
				savings := make([]int, 0, len(rep.Histogram))
				for s := range rep.Histogram {
					savings = append(savings, s)
				}
				sort.Ints(savings)
				for _, s := range savings {
					fmt.Fprintf(out, "  %d cheat(s) save %d\n", rep.Histogram[s], s)
				}
			}
			fmt.Fprintf(out, "cheats: %d\n", rep.Count)
			return nil
		},
	}
	cmd.Flags().Int("min-saving", 100, "Minimum steps a shortcut must save")
	cmd.Flags().Bool("histogram", false, "Group shortcuts by saving")
	return cmd
}
