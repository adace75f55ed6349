package cli

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mvaldes/colonia-go/internal/adapters/persistence"
	"github.com/mvaldes/colonia-go/internal/application/colony/commands"
	"github.com/mvaldes/colonia-go/internal/application/colony/queries"
	"github.com/mvaldes/colonia-go/internal/application/common"
	"github.com/mvaldes/colonia-go/internal/domain/colony"
	"github.com/mvaldes/colonia-go/internal/domain/game"
	"github.com/mvaldes/colonia-go/internal/domain/player"
	"github.com/mvaldes/colonia-go/internal/domain/rules"
	"github.com/mvaldes/colonia-go/internal/infrastructure/config"
	"github.com/mvaldes/colonia-go/internal/infrastructure/database"
)

// env wires the full application for one CLI invocation: config, database,
// game state, repositories and the mediator with every handler registered.
type env struct {
	cfg      *config.Config
	db       *gorm.DB
	game     *game.Game
	players  player.Repository
	colonies colony.Repository
	state    game.StateRepository
	sessions persistence.SessionRepository
	mediator common.Mediator
}

func openEnv(ctx context.Context) (*env, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	g, err := game.New(rules.ClassicRuleset(), nil)
	if err != nil {
		return nil, err
	}

	players := persistence.NewGormPlayerRepository(db)
	colonies := persistence.NewGormColonyRepository(db, g, players)
	state := persistence.NewGormGameStateRepository(db)
	sessions := persistence.NewGormSessionRepository(db)

	turn, err := state.LoadTurn(ctx)
	if err != nil {
		return nil, err
	}
	g.RestoreTurn(turn)

	m := common.NewMediator()
	registrations := []error{
		common.RegisterHandler[commands.AssignWorkerCommand](m, commands.NewAssignWorkerHandler(colonies)),
		common.RegisterHandler[commands.WithdrawWorkerCommand](m, commands.NewWithdrawWorkerHandler(colonies)),
		common.RegisterHandler[commands.UpgradeBuildingCommand](m, commands.NewUpgradeBuildingHandler(colonies)),
		common.RegisterHandler[commands.DowngradeBuildingCommand](m, commands.NewDowngradeBuildingHandler(colonies)),
		common.RegisterHandler[commands.AdvanceTurnCommand](m, commands.NewAdvanceTurnHandler(g, colonies, state)),
		common.RegisterHandler[queries.ColonyProductionQuery](m, queries.NewColonyProductionHandler(colonies)),
	}
	for _, err := range registrations {
		if err != nil {
			return nil, err
		}
	}

	return &env{
		cfg:      cfg,
		db:       db,
		game:     g,
		players:  players,
		colonies: colonies,
		state:    state,
		sessions: sessions,
		mediator: m,
	}, nil
}

func (e *env) Close() error {
	return database.Close(e.db)
}

// requireColony resolves the session's selected colony.
func (e *env) requireColony(ctx context.Context) (persistence.Session, *colony.Colony, error) {
	session, err := e.sessions.Load(ctx)
	if err != nil {
		return session, nil, err
	}
	if session.PlayerID == "" {
		return session, nil, fmt.Errorf("no active player; run 'colonia init' first")
	}
	if session.ColonyID == "" {
		return session, nil, fmt.Errorf("no colony selected; run 'colonia select colony <id>'")
	}
	c, err := e.colonies.FindByID(ctx, session.ColonyID)
	if err != nil {
		return session, nil, err
	}
	return session, c, nil
}

// requireSelectedUnit resolves the session's selected unit and checks that
// the session player owns it. Unit orders are disabled otherwise.
func (e *env) requireSelectedUnit(ctx context.Context) (persistence.Session, *colony.Colony, *colony.Unit, error) {
	session, c, err := e.requireColony(ctx)
	if err != nil {
		return session, nil, nil, err
	}
	if session.UnitID == "" {
		return session, nil, nil, fmt.Errorf("no unit selected; run 'colonia select unit <id>'")
	}
	u := unitInColony(c, session.UnitID)
	if u == nil {
		return session, nil, nil, fmt.Errorf("selected unit %s not found in colony %s", session.UnitID, c.ID())
	}
	p, err := e.players.FindByID(ctx, session.PlayerID)
	if err != nil {
		return session, nil, nil, err
	}
	if !p.Owns(u) {
		return session, nil, nil, fmt.Errorf("unit %s does not belong to player %s", u.ID(), p.Name())
	}
	return session, c, u, nil
}

func unitInColony(c *colony.Colony, id string) *colony.Unit {
	for _, u := range c.Tile().Units() {
		if u.ID() == id {
			return u
		}
	}
	for _, b := range c.Buildings() {
		for _, u := range b.Units() {
			if u.ID() == id {
				return u
			}
		}
	}
	return nil
}
