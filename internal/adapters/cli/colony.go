package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mvaldes/colonia-go/internal/application/colony/queries"
)

// NewColonyCommand creates the colony command with subcommands
func NewColonyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "colony",
		Short: "Inspect the selected colony",
		Long: `Inspect the selected colony: warehouse stock, per-building production
and the units available for orders.

Examples:
  colonia colony status
  colonia colony units`,
	}

	cmd.AddCommand(newColonyStatusCommand())
	cmd.AddCommand(newColonyUnitsCommand())

	return cmd
}

func newColonyStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show stock and production of the selected colony",
		RunE: func(cmd *cobra.Command, args []string) error {
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
			response, err := e.mediator.Send(ctx, queries.ColonyProductionQuery{ColonyID: session.ColonyID})
			if err != nil {
				return err
			}
			result := response.(queries.ColonyProductionResult)

			fmt.Printf("%s (%s), turn %d, warehouse capacity %d\n\n",
				result.Name, result.ColonyID, e.game.Turn(), result.Capacity)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "GOODS\tSTOCK\tNET/TURN")
			ids := make([]string, 0, len(result.NetTotals))
			seen := make(map[string]bool)
			for _, s := range result.Stock {
				ids = append(ids, s.GoodsID)
				seen[s.GoodsID] = true
			}
			for id := range result.NetTotals {
				if !seen[id] {
					ids = append(ids, id)
				}
			}
			sort.Strings(ids)
			stock := make(map[string]int, len(result.Stock))
			for _, s := range result.Stock {
				stock[s.GoodsID] = s.Amount
			}
			for _, id := range ids {
				fmt.Fprintf(w, "%s\t%d\t%+d\n", id, stock[id], result.NetTotals[id])
			}
			w.Flush()

			fmt.Println()
			w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "BUILDING\tLEVEL\tWORKERS\tPRODUCES\tCONSUMES")
			for _, b := range result.Buildings {
				fmt.Fprintf(w, "%s\t%d\t%d/%d\t%s\t%s\n",
					b.TypeID, b.Level, b.Workers, b.Capacity,
					formatAmounts(b.Production, b.MaximumProduction),
					formatAmounts(b.Consumption, b.MaximumConsumption))
			}
			w.Flush()
			return nil
		},
	}
}

// formatAmounts renders "tools 6 (max 9)" style entries, showing the maximum
// only when the report carries one.
func formatAmounts(actual, maximum []queries.GoodsAmount) string {
	if len(actual) == 0 {
		return "-"
	}
	maxima := make(map[string]int, len(maximum))
	for _, m := range maximum {
		maxima[m.GoodsID] = m.Amount
	}
	out := ""
	for i, a := range actual {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s %d", a.GoodsID, a.Amount)
		if m, ok := maxima[a.GoodsID]; ok {
			out += fmt.Sprintf(" (max %d)", m)
		}
	}
	return out
}

func newColonyUnitsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List units in the selected colony",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := openEnv(ctx)
			if err != nil {
				return err
			}
			defer e.Close()

			_, c, err := e.requireColony(ctx)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "UNIT\tTYPE\tSTATE\tMOVES\tLOCATION")
			for _, u := range c.Tile().Units() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\ttile\n",
					u.ID(), u.Type().ID(), u.State(), u.MovesLeft())
			}
			for _, b := range c.Buildings() {
				for _, u := range b.Units() {
					fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
						u.ID(), u.Type().ID(), u.State(), u.MovesLeft(), b.Type().ID())
				}
			}
			w.Flush()
			return nil
		},
	}
}
