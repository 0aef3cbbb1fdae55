package tournament

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/santorini-backend/internal/entity"
	"github.com/rocketscienceinc/santorini-backend/internal/player"
	"github.com/rocketscienceinc/santorini-backend/internal/referee"
	"github.com/rocketscienceinc/santorini-backend/internal/santorini"
	"github.com/rocketscienceinc/santorini-backend/internal/strategy"
	mockedTournament "github.com/rocketscienceinc/santorini-backend/mocks/tournament"
)

const (
	playerA entity.PlayerID = "a"
	playerB entity.PlayerID = "b"
	playerC entity.PlayerID = "c"
	playerD entity.PlayerID = "d"
)

func win(winner, loser entity.PlayerID) entity.GameOutcome {
	return entity.GameOutcome{Players: [2]entity.PlayerID{winner, loser}, Winner: winner}
}

func disqualified(cheater, opponent entity.PlayerID) entity.GameOutcome {
	return entity.GameOutcome{
		Players:      [2]entity.PlayerID{cheater, opponent},
		Winner:       opponent,
		Disqualified: cheater,
		Reason:       entity.ReasonTimeout,
	}
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestBuild(t *testing.T) {
	t.Run("Ranks by wins and drops disqualified players", func(t *testing.T) {
		// Given: A wins three, B wins one after C is disqualified
		outcomes := []entity.GameOutcome{
			win(playerA, playerB),
			win(playerA, playerB),
			win(playerA, playerB),
			disqualified(playerC, playerB),
		}

		// When: building the result
		result := Build(outcomes)

		// Then: the ranking and disqualified set are as expected
		assert.Equal(t, []entity.PlayerResult{{PlayerID: playerA, Wins: 3}, {PlayerID: playerB, Wins: 1}}, result.PlayerResults())
		assert.Equal(t, map[entity.PlayerID]struct{}{playerC: {}}, result.DisqualifiedPlayerIDs())
		assert.Equal(t, 4, result.Games())
	})

	t.Run("Ties keep the input order", func(t *testing.T) {
		// Given: the same tied series presented in two orders
		forward := []entity.GameOutcome{win(playerB, playerC), win(playerD, playerA)}
		backward := []entity.GameOutcome{win(playerD, playerA), win(playerB, playerC)}

		// When: building both
		first := Build(forward).PlayerResults()
		second := Build(backward).PlayerResults()

		// Then: tied players follow their order of appearance
		assert.Equal(t, []entity.PlayerID{playerB, playerD, playerC, playerA}, ids(first))
		assert.Equal(t, []entity.PlayerID{playerD, playerB, playerA, playerC}, ids(second))
	})

	t.Run("Seeding decides ties over appearance", func(t *testing.T) {
		result := BuildSeeded([]entity.PlayerID{playerC, playerB, playerA}, []entity.GameOutcome{win(playerA, playerB)})

		assert.Equal(t, []entity.PlayerID{playerA, playerC, playerB}, ids(result.PlayerResults()))
	})

	t.Run("Disqualification is permanent regardless of order", func(t *testing.T) {
		// Given: C wins a game before and after being disqualified
		before := []entity.GameOutcome{win(playerC, playerA), disqualified(playerC, playerB), win(playerC, playerB)}
		after := []entity.GameOutcome{win(playerC, playerB), win(playerC, playerA), disqualified(playerC, playerB)}

		for _, outcomes := range [][]entity.GameOutcome{before, after} {
			// When: building the result
			result := Build(outcomes)

			// Then: C never appears in the ranking
			assert.True(t, result.IsDisqualified(playerC))
			assert.NotContains(t, ids(result.PlayerResults()), playerC)
			assert.Equal(t, []entity.PlayerID{playerC}, result.DisqualifiedList())
		}
	})

	t.Run("Ranked wins plus forfeited games equal the games played", func(t *testing.T) {
		outcomes := []entity.GameOutcome{
			win(playerC, playerA),
			disqualified(playerC, playerB),
			win(playerA, playerB),
			{Players: [2]entity.PlayerID{playerA, playerB}},
		}

		result := Build(outcomes)

		total := result.Forfeited()
		for _, ranked := range result.PlayerResults() {
			total += ranked.Wins
		}
		assert.Equal(t, result.Games(), total)
		assert.Equal(t, 2, result.Forfeited())
	})

	t.Run("Returned collections are copies", func(t *testing.T) {
		result := Build([]entity.GameOutcome{win(playerA, playerB), disqualified(playerC, playerA)})

		results := result.PlayerResults()
		results[0].Wins = 100
		set := result.DisqualifiedPlayerIDs()
		delete(set, playerC)

		assert.Equal(t, 2, result.PlayerResults()[0].Wins)
		assert.True(t, result.IsDisqualified(playerC))
	})

	t.Run("Aborted games are not counted", func(t *testing.T) {
		aborted := entity.GameOutcome{Players: [2]entity.PlayerID{playerA, playerB}, Aborted: true}

		result := Build([]entity.GameOutcome{win(playerA, playerB), aborted})

		assert.Equal(t, 1, result.Games())
		assert.Equal(t, 0, result.Forfeited())
	})

	t.Run("Empty input gives an empty result", func(t *testing.T) {
		result := Build(nil)

		assert.Empty(t, result.PlayerResults())
		assert.Empty(t, result.DisqualifiedPlayerIDs())
	})
}

func ids(results []entity.PlayerResult) []entity.PlayerID {
	out := make([]entity.PlayerID, 0, len(results))
	for _, result := range results {
		out = append(out, result.PlayerID)
	}

	return out
}

func TestRoundRobin(t *testing.T) {
	// When: scheduling three entrants twice per seat order
	pairings := RoundRobin(3, 2)

	// Then: every ordered pair plays twice and nobody plays themselves
	assert.Len(t, pairings, 12)

	seen := make(map[[2]int]int)
	for _, pairing := range pairings {
		assert.NotEqual(t, pairing.First, pairing.Second)
		seen[[2]int{pairing.First, pairing.Second}]++
	}
	assert.Len(t, seen, 6)
	for _, count := range seen {
		assert.Equal(t, 2, count)
	}
}

// slowStrategy - thinks for a while before every placement.
type slowStrategy struct {
	player.Strategy

	delay time.Duration
}

func (that slowStrategy) NextPlacement(ctx context.Context, self entity.PlayerID, placed []entity.InitWorker) (entity.PlaceRequest, error) {
	select {
	case <-time.After(that.delay):
		return that.Strategy.NextPlacement(ctx, self, placed)
	case <-ctx.Done():
		return entity.PlaceRequest{}, ctx.Err()
	}
}

func TestRunner_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("Plays every pairing and archives the standings", func(t *testing.T) {
		// Given: a referee where the first seat always wins
		refereeMock := mockedTournament.NewMockgameReferee(t)
		outcomesMock := mockedTournament.NewMockoutcomeStore(t)
		standingsMock := mockedTournament.NewMockstandingsStore(t)

		refereeMock.EXPECT().
			StartGame(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, players [2]*player.Player) *entity.GameOutcome {
				outcome := win(players[0].ID(), players[1].ID())
				return &outcome
			}).
			Times(6)
		outcomesMock.EXPECT().Save(mock.Anything, "cup", mock.Anything).Return(nil).Times(6)
		standingsMock.EXPECT().
			Save(mock.Anything, mock.MatchedBy(func(standings entity.Standings) bool {
				return standings.TournamentID == "cup" && len(standings.Results) == 3
			})).
			Return(nil).
			Once()

		entrants := []*Entrant{
			NewEntrant(playerA, "a", Shared(strategy.NewRandom(1))),
			NewEntrant(playerB, "b", Shared(strategy.NewRandom(2))),
			NewEntrant(playerC, "c", Shared(strategy.NewRandom(3))),
		}

		// When: running the tournament
		result, err := NewRunner(newLogger(), refereeMock, outcomesMock, standingsMock, 3, 1).Run(ctx, "cup", entrants)

		// Then: everyone won both home games, ties keep the entrant order
		require.NoError(t, err)
		assert.Equal(t, []entity.PlayerResult{
			{PlayerID: playerA, Wins: 2},
			{PlayerID: playerB, Wins: 2},
			{PlayerID: playerC, Wins: 2},
		}, result.PlayerResults())
	})

	t.Run("Storage failures do not stop the series", func(t *testing.T) {
		refereeMock := mockedTournament.NewMockgameReferee(t)
		outcomesMock := mockedTournament.NewMockoutcomeStore(t)
		standingsMock := mockedTournament.NewMockstandingsStore(t)

		refereeMock.EXPECT().
			StartGame(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, players [2]*player.Player) *entity.GameOutcome {
				outcome := win(players[1].ID(), players[0].ID())
				return &outcome
			}).
			Twice()
		outcomesMock.EXPECT().Save(mock.Anything, "cup", mock.Anything).Return(errors.New("redis down")).Twice()
		standingsMock.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

		entrants := []*Entrant{
			NewEntrant(playerA, "a", Shared(strategy.NewRandom(1))),
			NewEntrant(playerB, "b", Shared(strategy.NewRandom(2))),
		}

		result, err := NewRunner(newLogger(), refereeMock, outcomesMock, standingsMock, 1, 1).Run(ctx, "cup", entrants)

		require.Error(t, err)
		require.NotNil(t, result)
		assert.Equal(t, 2, result.Games())
	})

	t.Run("Unavailable strategy forfeits the game", func(t *testing.T) {
		// Given: B cannot produce a strategy
		refereeMock := mockedTournament.NewMockgameReferee(t)
		outcomesMock := mockedTournament.NewMockoutcomeStore(t)
		standingsMock := mockedTournament.NewMockstandingsStore(t)

		outcomesMock.EXPECT().Save(mock.Anything, "cup", mock.Anything).Return(nil).Twice()
		standingsMock.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()

		broken := func() (player.Strategy, func(), error) {
			return nil, nil, errors.New("script missing")
		}
		entrants := []*Entrant{
			NewEntrant(playerA, "a", Shared(strategy.NewRandom(1))),
			NewEntrant(playerB, "b", broken),
		}

		// When: running the tournament
		result, err := NewRunner(newLogger(), refereeMock, outcomesMock, standingsMock, 2, 1).Run(ctx, "cup", entrants)

		// Then: B is disqualified without a game being refereed
		require.NoError(t, err)
		assert.True(t, result.IsDisqualified(playerB))
		assert.Equal(t, []entity.PlayerResult{{PlayerID: playerA, Wins: 2}}, result.PlayerResults())
	})

	t.Run("Cancelled series blames no one", func(t *testing.T) {
		// Given: legal strategies that take longer than the series is allowed to run
		outcomesMock := mockedTournament.NewMockoutcomeStore(t)
		standingsMock := mockedTournament.NewMockstandingsStore(t)
		standingsMock.EXPECT().
			Save(mock.Anything, mock.MatchedBy(func(standings entity.Standings) bool {
				return len(standings.Disqualified) == 0
			})).
			Return(nil).
			Once()

		entrants := []*Entrant{
			NewEntrant(playerA, "a", Shared(slowStrategy{Strategy: strategy.NewRandom(1), delay: 200 * time.Millisecond})),
			NewEntrant(playerB, "b", Shared(slowStrategy{Strategy: strategy.NewRandom(2), delay: 200 * time.Millisecond})),
		}

		cancelCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		time.AfterFunc(50*time.Millisecond, cancel)

		// When: the series is cancelled during the first game
		result, err := NewRunner(newLogger(), referee.New(newLogger(), santorini.NewRules()), outcomesMock, standingsMock, 1, 1).
			Run(cancelCtx, "cup", entrants)

		// Then: the interrupted game is not counted and nobody is disqualified
		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, result.DisqualifiedList())
		assert.Equal(t, 0, result.Games())
	})

	t.Run("At least two entrants are required", func(t *testing.T) {
		runner := NewRunner(newLogger(), mockedTournament.NewMockgameReferee(t), mockedTournament.NewMockoutcomeStore(t), mockedTournament.NewMockstandingsStore(t), 1, 1)

		_, err := runner.Run(ctx, "cup", []*Entrant{NewEntrant(playerA, "a", Shared(strategy.NewGreedy()))})

		assert.ErrorIs(t, err, ErrNotEnoughEntrants)
	})

	t.Run("Bots play a full series with the real referee", func(t *testing.T) {
		// Given: random and greedy bots
		outcomesMock := mockedTournament.NewMockoutcomeStore(t)
		standingsMock := mockedTournament.NewMockstandingsStore(t)
		outcomesMock.EXPECT().Save(mock.Anything, "cup", mock.Anything).Return(nil).Times(6)
		standingsMock.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()

		fresh := func(seed uint64) StrategyFactory {
			return func() (player.Strategy, func(), error) {
				return strategy.NewRandom(seed), func() {}, nil
			}
		}
		entrants := []*Entrant{
			NewEntrant(playerA, "random-1", fresh(1)),
			NewEntrant(playerB, "random-2", fresh(2)),
			NewEntrant(playerC, "greedy", Shared(strategy.NewGreedy())),
		}
		gameReferee := referee.New(newLogger(), santorini.NewRules())

		// When: running the tournament
		result, err := NewRunner(newLogger(), gameReferee, outcomesMock, standingsMock, 4, 1).Run(ctx, "cup", entrants)

		// Then: every game has a winner and legal bots are never disqualified
		require.NoError(t, err)
		assert.Empty(t, result.DisqualifiedPlayerIDs())
		assert.Equal(t, 0, result.Forfeited())
		assert.Equal(t, 6, result.Games())
	})
}
