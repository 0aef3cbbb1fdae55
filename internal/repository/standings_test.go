package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/santorini-backend/internal/apperror"
	"github.com/rocketscienceinc/santorini-backend/internal/entity"
	"github.com/rocketscienceinc/santorini-backend/testing/suite"
)

func TestStandingsRepository(t *testing.T) {
	ctx := context.Background()

	standings := entity.Standings{
		TournamentID: "cup",
		Results: []entity.PlayerResult{
			{PlayerID: "greta", Wins: 3},
			{PlayerID: "randy", Wins: 3},
			{PlayerID: "lu", Wins: 0},
		},
		Disqualified: []entity.PlayerID{"remote"},
	}

	t.Run("Get returns the archived ranking", func(t *testing.T) {
		// Given: an archived tournament
		st := suite.NewSQLite(t, StandingsModels()...)
		standingsRepo := NewStandingsRepository(st.Connection)
		require.NoError(t, standingsRepo.Save(ctx, standings))

		// When: reading it back
		stored, err := standingsRepo.Get(ctx, "cup")

		// Then: ranking order and disqualifications survive
		require.NoError(t, err)
		assert.Equal(t, standings, stored)
	})

	t.Run("Save replaces previous standings", func(t *testing.T) {
		st := suite.NewSQLite(t, StandingsModels()...)
		standingsRepo := NewStandingsRepository(st.Connection)
		require.NoError(t, standingsRepo.Save(ctx, standings))

		// When: archiving the tournament again with fewer players
		replacement := entity.Standings{
			TournamentID: "cup",
			Results:      []entity.PlayerResult{{PlayerID: "greta", Wins: 1}},
			Disqualified: []entity.PlayerID{},
		}
		require.NoError(t, standingsRepo.Save(ctx, replacement))

		// Then: only the new rows are left
		stored, err := standingsRepo.Get(ctx, "cup")
		require.NoError(t, err)
		assert.Equal(t, replacement, stored)
	})

	t.Run("Empty tournament is still found", func(t *testing.T) {
		st := suite.NewSQLite(t, StandingsModels()...)
		standingsRepo := NewStandingsRepository(st.Connection)
		require.NoError(t, standingsRepo.Save(ctx, entity.Standings{TournamentID: "empty"}))

		stored, err := standingsRepo.Get(ctx, "empty")

		require.NoError(t, err)
		assert.Empty(t, stored.Results)
		assert.Empty(t, stored.Disqualified)
	})

	t.Run("Unknown tournament", func(t *testing.T) {
		st := suite.NewSQLite(t, StandingsModels()...)

		_, err := NewStandingsRepository(st.Connection).Get(ctx, "nothing")

		require.ErrorIs(t, err, apperror.ErrNotFound)
	})
}
