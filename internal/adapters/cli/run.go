package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvaldes/colonia-go/internal/application/simulation"
)

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	var (
		turns int
		tps   float64
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Advance the simulation a number of turns",
		Long: `Advance the simulation a number of turns. Every colony runs its
production pass each turn and the results are persisted.

The runner is throttled to the configured turns-per-second rate; pass
--tps 0 to run unthrottled.

Example:
  colonia run --turns 10 --tps 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := openEnv(ctx)
			if err != nil {
				return err
			}
			defer e.Close()

			if turns == 0 {
				turns = e.cfg.Simulation.DefaultTurns
			}
			if !cmd.Flags().Changed("tps") {
				tps = e.cfg.Simulation.TurnsPerSecond
			}

			runner := simulation.NewTurnRunner(e.mediator, tps)
			if err := runner.Run(ctx, turns); err != nil {
				return err
			}
			fmt.Printf("Advanced to turn %d\n", e.game.Turn())
			return nil
		},
	}

	cmd.Flags().IntVar(&turns, "turns", 0, "Number of turns to advance (default: configured value)")
	cmd.Flags().Float64Var(&tps, "tps", 0, "Turns per second throttle, 0 for unthrottled")

	return cmd
}
