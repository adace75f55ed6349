package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvaldes/colonia-go/internal/adapters/persistence"
	"github.com/mvaldes/colonia-go/internal/domain/player"
	"github.com/mvaldes/colonia-go/internal/domain/rules"
	"github.com/mvaldes/colonia-go/test/helpers"
)

func TestGormPlayerRepository_RoundTrip(t *testing.T) {
	db := helpers.NewTestDB(t)
	ctx := context.Background()

	repo := persistence.NewGormPlayerRepository(db)
	p, err := player.New("player-1", "Aurora")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, p))

	fresh := persistence.NewGormPlayerRepository(db)
	byID, err := fresh.FindByID(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, "Aurora", byID.Name())

	byName, err := fresh.FindByName(ctx, "Aurora")
	require.NoError(t, err)
	assert.Same(t, byID, byName)
}

func TestGormPlayerRepository_NotFound(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPlayerRepository(db)

	_, err := repo.FindByID(context.Background(), "player-404")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "player not found")

	_, err = repo.FindByName(context.Background(), "Nobody")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "player not found")
}

func TestGormGameStateRepository_TurnPersistence(t *testing.T) {
	db := helpers.NewTestDB(t)
	ctx := context.Background()
	repo := persistence.NewGormGameStateRepository(db)

	turn, err := repo.LoadTurn(ctx)
	require.NoError(t, err)
	assert.Equal(t, rules.Turn(0), turn)

	require.NoError(t, repo.SaveTurn(ctx, 7))
	require.NoError(t, repo.SaveTurn(ctx, 8))

	turn, err = repo.LoadTurn(ctx)
	require.NoError(t, err)
	assert.Equal(t, rules.Turn(8), turn)
}

func TestGormSessionRepository_SelectionPersistence(t *testing.T) {
	db := helpers.NewTestDB(t)
	ctx := context.Background()
	repo := persistence.NewGormSessionRepository(db)

	session, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, session.PlayerID)

	saved := persistence.Session{PlayerID: "player-1", UnitID: "unit-3", ColonyID: "colony-1"}
	require.NoError(t, repo.Save(ctx, saved))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)

	// The session is a single row; saving again overwrites the selection.
	saved.UnitID = ""
	require.NoError(t, repo.Save(ctx, saved))
	loaded, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", loaded.UnitID)
}
