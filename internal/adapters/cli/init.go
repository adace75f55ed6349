package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvaldes/colonia-go/internal/adapters/persistence"
	"github.com/mvaldes/colonia-go/internal/domain/colony"
	"github.com/mvaldes/colonia-go/internal/domain/goods"
	"github.com/mvaldes/colonia-go/internal/domain/player"
	"github.com/mvaldes/colonia-go/internal/domain/rules"
)

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	var (
		playerName string
		colonyName string
		colonists  int
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Start a new game",
		Long: `Start a new game: create the player, found the first colony and seed it
with starting buildings, units and goods.

The new colony becomes the session selection, so orders can be issued
immediately afterwards.

Example:
  colonia init --player Aurora --colony Jamestown`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if playerName == "" {
				return fmt.Errorf("--player flag is required")
			}
			if colonyName == "" {
				return fmt.Errorf("--colony flag is required")
			}

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
			if session.PlayerID != "" {
				return fmt.Errorf("game already initialized; remove the save file to start over")
			}

			c, err := seedGame(ctx, e, playerName, colonyName, colonists)
			if err != nil {
				return err
			}

			fmt.Printf("Founded %s (%s) for %s\n", c.Name(), c.ID(), playerName)
			for _, b := range c.Buildings() {
				fmt.Printf("  building %-16s %s\n", b.Type().ID(), b.ID())
			}
			for _, u := range c.Tile().Units() {
				fmt.Printf("  unit     %-16s %s\n", u.Type().ID(), u.ID())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&playerName, "player", "", "Player name (required)")
	cmd.Flags().StringVar(&colonyName, "colony", "", "Name of the first colony (required)")
	cmd.Flags().IntVar(&colonists, "colonists", 3, "Number of starting colonists")

	return cmd
}

// seedGame creates the starting position: the player, one colony with its
// auto-built buildings plus a starter farm, stable and blacksmith hut, the
// initial units on the tile and a small warehouse stock.
func seedGame(ctx context.Context, e *env, playerName, colonyName string, colonists int) (*colony.Colony, error) {
	p, err := player.New(e.game.NextID("player"), playerName)
	if err != nil {
		return nil, err
	}
	if err := e.players.Save(ctx, p); err != nil {
		return nil, err
	}

	c, err := colony.New(e.game, colonyName, p)
	if err != nil {
		return nil, err
	}

	starters := map[string]bool{
		rules.BuildingFarm:          true,
		rules.BuildingStable:        true,
		rules.BuildingBlacksmithHut: true,
	}
	for _, bt := range e.game.Rules().BuildingTypes() {
		if !bt.AutoBuilt() && !starters[bt.ID()] {
			continue
		}
		if _, err := colony.NewBuilding(e.game, c, bt); err != nil {
			return nil, err
		}
		if bt.AutoBuilt() {
			c.SetAutoBuild(bt.ID(), true)
		}
	}

	colonistType, err := e.game.Rules().UnitType(rules.UnitColonist)
	if err != nil {
		return nil, err
	}
	for i := 0; i < colonists; i++ {
		u, err := colony.NewUnit(e.game, colonistType, p)
		if err != nil {
			return nil, err
		}
		c.ReceiveUnit(u)
	}

	for _, seed := range []struct {
		goodsID string
		amount  int
	}{
		{rules.GoodsGrain, 20},
		{rules.GoodsOre, 20},
		{rules.GoodsHorses, 2},
	} {
		t, err := e.game.Rules().GoodsType(seed.goodsID)
		if err != nil {
			return nil, err
		}
		c.AddGoods(goods.StackOf(t, seed.amount))
	}

	if err := e.colonies.Save(ctx, c); err != nil {
		return nil, err
	}
	if err := e.state.SaveTurn(ctx, e.game.Turn()); err != nil {
		return nil, err
	}
	session := persistence.Session{PlayerID: p.ID(), ColonyID: c.ID()}
	if err := e.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return c, nil
}
