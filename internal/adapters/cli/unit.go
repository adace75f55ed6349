package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvaldes/colonia-go/internal/application/colony/commands"
)

// NewUnitCommand creates the unit command with subcommands
func NewUnitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unit",
		Short: "Issue orders to the selected unit",
		Long: `Issue orders to the selected unit.

Orders require a selected unit owned by the session player.

Examples:
  colonia unit assign --building farm
  colonia unit withdraw`,
	}

	cmd.AddCommand(newUnitAssignCommand())
	cmd.AddCommand(newUnitWithdrawCommand())

	return cmd
}

func newUnitAssignCommand() *cobra.Command {
	var buildingID string

	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Put the selected unit to work in a building",
		Long: `Put the selected unit to work in a building of the selected colony.

The building may be named by its id or by its type id. The unit takes the
building's output as its work type.

Example:
  colonia unit assign --building blacksmithHut`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if buildingID == "" {
				return fmt.Errorf("--building flag is required")
			}

			ctx := context.Background()
			e, err := openEnv(ctx)
			if err != nil {
				return err
			}
			defer e.Close()

			session, _, u, err := e.requireSelectedUnit(ctx)
			if err != nil {
				return err
			}

			response, err := e.mediator.Send(ctx, commands.AssignWorkerCommand{
				ColonyID:   session.ColonyID,
				UnitID:     u.ID(),
				BuildingID: buildingID,
			})
			if err != nil {
				return err
			}
			result := response.(commands.AssignWorkerResult)
			fmt.Printf("Unit %s now works in %s producing %s\n",
				result.UnitID, result.BuildingID, result.WorkType)
			return nil
		},
	}

	cmd.Flags().StringVar(&buildingID, "building", "", "Building id or type id (required)")

	return cmd
}

func newUnitWithdrawCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw",
		Short: "Pull the selected unit out of its work location",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := openEnv(ctx)
			if err != nil {
				return err
			}
			defer e.Close()

			session, _, u, err := e.requireSelectedUnit(ctx)
			if err != nil {
				return err
			}

			response, err := e.mediator.Send(ctx, commands.WithdrawWorkerCommand{
				ColonyID: session.ColonyID,
				UnitID:   u.ID(),
			})
			if err != nil {
				return err
			}
			result := response.(commands.WithdrawWorkerResult)
			fmt.Printf("Unit %s is now %s on the colony tile\n", result.UnitID, result.State)
			return nil
		},
	}
}
