package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewSelectCommand creates the select command with subcommands
func NewSelectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Select the colony or unit that orders apply to",
		Long: `Select the colony or unit that subsequent orders apply to.

The selection is stored in the session and survives between invocations.

Examples:
  colonia select colony colony-4f2a91bc
  colonia select unit unit-7be30d11
  colonia select show`,
	}

	cmd.AddCommand(newSelectColonyCommand())
	cmd.AddCommand(newSelectUnitCommand())
	cmd.AddCommand(newSelectShowCommand())

	return cmd
}

func newSelectColonyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "colony <colony-id>",
		Short: "Select the active colony",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := openEnv(ctx)
			if err != nil {
				return err
			}
			defer e.Close()

			session, err := e.sessions.Load(ctx)
			if err != nil {
				return err
			}
			if session.PlayerID == "" {
				return fmt.Errorf("no active player; run 'colonia init' first")
			}
			c, err := e.colonies.FindByID(ctx, args[0])
			if err != nil {
				return err
			}

			session.ColonyID = c.ID()
			// A colony switch drops the unit selection; it belongs to the
			// previous colony.
			session.UnitID = ""
			if err := e.sessions.Save(ctx, session); err != nil {
				return err
			}
			fmt.Printf("Selected colony %s (%s)\n", c.Name(), c.ID())
			return nil
		},
	}
}

func newSelectUnitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unit <unit-id>",
		Short: "Select the active unit",
		Long: `Select the active unit. The unit must be in the selected colony and
belong to the session player; unit orders stay disabled otherwise.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := openEnv(ctx)
			if err != nil {
				return err
			}
			defer e.Close()

			session, c, err := e.requireColony(ctx)
			if err != nil {
				return err
			}
			u := unitInColony(c, args[0])
			if u == nil {
				return fmt.Errorf("unit %s not found in colony %s", args[0], c.ID())
			}
			p, err := e.players.FindByID(ctx, session.PlayerID)
			if err != nil {
				return err
			}
			if !p.Owns(u) {
				return fmt.Errorf("unit %s does not belong to player %s", u.ID(), p.Name())
			}

			session.UnitID = u.ID()
			if err := e.sessions.Save(ctx, session); err != nil {
				return err
			}
			fmt.Printf("Selected unit %s (%s)\n", u.ID(), u.Type().ID())
			return nil
		},
	}
}

func newSelectShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current session selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := openEnv(ctx)
			if err != nil {
				return err
			}
			defer e.Close()

			session, err := e.sessions.Load(ctx)
			if err != nil {
				return err
			}
			if session.PlayerID == "" {
				fmt.Println("No active player; run 'colonia init' first")
				return nil
			}
			fmt.Printf("player: %s\n", session.PlayerID)
			fmt.Printf("colony: %s\n", orNone(session.ColonyID))
			fmt.Printf("unit:   %s\n", orNone(session.UnitID))
			return nil
		},
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
