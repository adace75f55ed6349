package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvaldes/colonia-go/internal/application/colony/commands"
)

// NewBuildingCommand creates the building command with subcommands
func NewBuildingCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "building",
		Short: "Upgrade or downgrade buildings in the selected colony",
		Long: `Upgrade or downgrade buildings in the selected colony.

Upgrades consume the next level's build cost from the warehouse. A refused
transition (missing goods, top level, auto-built) is reported, not an error.

Examples:
  colonia building upgrade blacksmithHut
  colonia building downgrade blacksmithShop`,
	}

	cmd.AddCommand(newBuildingUpgradeCommand())
	cmd.AddCommand(newBuildingDowngradeCommand())

	return cmd
}

func newBuildingUpgradeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade <building>",
		Short: "Raise a building to its next level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return changeBuildingLevel(args[0], true)
		},
	}
}

func newBuildingDowngradeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "downgrade <building>",
		Short: "Damage a building down one level",
		Long: `Damage a building down one level. Workers beyond the lower level's
capacity, and workers no longer skilled enough, move to the colony tile.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return changeBuildingLevel(args[0], false)
		},
	}
}

func changeBuildingLevel(buildingID string, up bool) error {
	ctx := context.Background()
	e, err := openEnv(ctx)
	if err != nil {
		return err
	}
	defer e.Close()

	session, _, err := e.requireColony(ctx)
	if err != nil {
		return err
	}

	var request interface{}
	if up {
		request = commands.UpgradeBuildingCommand{ColonyID: session.ColonyID, BuildingID: buildingID}
	} else {
		request = commands.DowngradeBuildingCommand{ColonyID: session.ColonyID, BuildingID: buildingID}
	}
	response, err := e.mediator.Send(ctx, request)
	if err != nil {
		return err
	}
	result := response.(commands.ChangeBuildingLevelResult)
	if !result.Changed {
		fmt.Printf("Building %s stays at %s (level %d)\n",
			result.BuildingID, result.TypeID, result.Level)
		return nil
	}
	fmt.Printf("Building %s is now %s (level %d)\n",
		result.BuildingID, result.TypeID, result.Level)
	return nil
}
