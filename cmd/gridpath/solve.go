package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/internal/render"
	"github.com/katalvlaran/gridpath/internal/service"
)

func newSolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Print the minimum turn-penalized cost from S to E",
		Long:  `Runs the oriented Dijkstra search. With --tiles, also counts the cells lying on at least one optimal route; --render draws them.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tiles := a.cfg.Tiles
			if cmd.Flags().Changed("tiles") {
				tiles, _ = cmd.Flags().GetBool("tiles")
			}
			draw, _ := cmd.Flags().GetBool("render")
			name, _ := cmd.Flags().GetString("facing")
			facing, err := gridmap.ParseDirection(name)
			if err != nil {
				return err
			}

			m, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}
			res, err := a.svc.Solve(cmd.Context(), m, service.SolveRequest{
				Tiles:  tiles || draw,
				Facing: facing,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "cost: %d\n", res.Cost)
			if tiles {
				fmt.Fprintf(out, "tiles: %d\n", len(res.Tiles))
			}
			if draw {
				return render.New(out, a.cfg.Color).Print(m, res.Tiles)
			}
			return nil
		},
	}
	cmd.Flags().Bool("tiles", false, "Count the cells on any optimal route")
	cmd.Flags().Bool("render", false, "Draw the grid with optimal cells marked 'O'")
	cmd.Flags().String("facing", "east", "Heading at the start cell")
	return cmd
}
