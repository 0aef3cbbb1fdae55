package strategy

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/santorini-backend/internal/apperror"
	"github.com/rocketscienceinc/santorini-backend/internal/entity"
	"github.com/rocketscienceinc/santorini-backend/internal/santorini"
)

const (
	alice entity.PlayerID = "alice"
	bob   entity.PlayerID = "bob"
)

func pos(row, col int) entity.Position {
	return entity.Position{Row: row, Col: col}
}

// newPlayingView - alice on a1, a2 and bob on b1, b2, alice to move.
func newPlayingView(t *testing.T, a1, b1, a2, b2 entity.Position) (*entity.GameState, entity.GameView) {
	t.Helper()

	game := entity.NewGameState("g1", alice, bob)
	for _, placement := range []struct {
		owner entity.PlayerID
		at    entity.Position
	}{{alice, a1}, {bob, b1}, {alice, a2}, {bob, b2}} {
		_, err := game.PlaceWorker(placement.owner, placement.at)
		require.NoError(t, err)
	}
	game.StartPlaying()

	return game, game.View(alice)
}

func TestRandom(t *testing.T) {
	ctx := context.Background()
	rules := santorini.NewRules()

	t.Run("Placements avoid occupied cells", func(t *testing.T) {
		// Given: every cell but one taken
		var placed []entity.InitWorker
		for row := range entity.BoardSize {
			for col := range entity.BoardSize {
				if row == 3 && col == 1 {
					continue
				}
				placed = append(placed, entity.InitWorker{Owner: bob, Position: pos(row, col)})
			}
		}

		// When: asking for a placement
		req, err := NewRandom(1).NextPlacement(ctx, alice, placed)

		// Then: the only free cell is chosen
		require.NoError(t, err)
		assert.Equal(t, pos(3, 1), req.Position)
	})

	t.Run("Turns are always legal", func(t *testing.T) {
		game, view := newPlayingView(t, pos(2, 2), pos(0, 0), pos(4, 4), pos(0, 4))
		random := NewRandom(42)

		for range 20 {
			turn, err := random.NextTurn(ctx, view)
			require.NoError(t, err)
			assert.NoError(t, rules.ValidateTurn(game, turn))
		}
	})

	t.Run("Same seed gives the same choices", func(t *testing.T) {
		_, view := newPlayingView(t, pos(2, 2), pos(0, 0), pos(4, 4), pos(0, 4))

		first, err := NewRandom(7).NextTurn(ctx, view)
		require.NoError(t, err)
		second, err := NewRandom(7).NextTurn(ctx, view)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestGreedy(t *testing.T) {
	ctx := context.Background()

	t.Run("Places in the centre first", func(t *testing.T) {
		req, err := NewGreedy().NextPlacement(ctx, alice, nil)

		require.NoError(t, err)
		assert.Equal(t, pos(2, 2), req.Position)
	})

	t.Run("Takes a winning move", func(t *testing.T) {
		// Given: alice on level two next to level three
		game, _ := newPlayingView(t, pos(2, 2), pos(0, 0), pos(4, 4), pos(0, 4))
		game.Board.Cells[2][2].Height = 2
		game.Board.Cells[2][3].Height = 3

		// When: greedy chooses a turn
		turn, err := NewGreedy().NextTurn(ctx, game.View(alice))

		// Then: it climbs and skips the build
		require.NoError(t, err)
		assert.Equal(t, entity.East, turn.Move.Direction)
		assert.Nil(t, turn.Build)
	})

	t.Run("Does not build the opponent a staircase to victory", func(t *testing.T) {
		// Given: bob on level two, next to a level two cell that alice could raise
		game, _ := newPlayingView(t, pos(3, 3), pos(1, 1), pos(4, 0), pos(4, 4))
		game.Board.Cells[1][1].Height = 2
		game.Board.Cells[2][2].Height = 2

		// When: greedy chooses a turn
		turn, err := NewGreedy().NextTurn(ctx, game.View(alice))
		require.NoError(t, err)

		// Then: the chosen turn does not leave level three next to bob
		next := game.Copy()
		_, err = next.MoveWorker(turn.Move.Worker, turn.Move.Direction)
		require.NoError(t, err)
		require.NotNil(t, turn.Build)
		require.NoError(t, next.Build(turn.Move.Worker, turn.Build.Direction))
		assert.NotEqual(t, entity.MaxLevel, next.Board.Height(pos(2, 2)))
	})
}

func TestScripted(t *testing.T) {
	ctx := context.Background()

	t.Run("Replays placements and rewrites worker owners", func(t *testing.T) {
		// Given: a script written without owners
		script := NewScripted(
			[]entity.Position{pos(2, 2)},
			[]entity.Turn{entity.NewTurn(entity.WorkerID{Index: 0}, entity.North, entity.South)},
		)
		_, view := newPlayingView(t, pos(2, 2), pos(0, 0), pos(4, 4), pos(0, 4))

		// When: replaying
		req, err := script.NextPlacement(ctx, alice, nil)
		require.NoError(t, err)
		turn, err := script.NextTurn(ctx, view)
		require.NoError(t, err)

		// Then: actions come back in order and the worker belongs to the viewer
		assert.Equal(t, pos(2, 2), req.Position)
		assert.Equal(t, alice, turn.Move.Worker.Owner)

		_, err = script.NextTurn(ctx, view)
		assert.ErrorIs(t, err, ErrScriptExhausted)
	})

	t.Run("Refuses to submit an illegal placement", func(t *testing.T) {
		script := NewScripted([]entity.Position{pos(0, 0)}, nil)

		_, err := script.NextPlacement(ctx, alice, []entity.InitWorker{{Owner: bob, Position: pos(0, 0)}})

		assert.ErrorIs(t, err, apperror.ErrInvalidAction)
		assert.ErrorIs(t, err, apperror.ErrCellOccupied)
	})
}

func TestHuman(t *testing.T) {
	ctx := context.Background()

	t.Run("Re-prompts until the placement is legal", func(t *testing.T) {
		// Given: garbage, an occupied cell and then a free one
		in := strings.NewReader("hello\n0 0\n\n1 1\n")
		var out bytes.Buffer
		human := NewHuman(in, &out)

		// When: asking for a placement
		req, err := human.NextPlacement(ctx, alice, []entity.InitWorker{{Owner: bob, Position: pos(0, 0)}})

		// Then: the first legal answer is taken and the errors were shown
		require.NoError(t, err)
		assert.Equal(t, pos(1, 1), req.Position)
		assert.Contains(t, out.String(), "cell is already occupied")
		assert.Equal(t, 3, strings.Count(out.String(), "place a worker"))
	})

	t.Run("Parses a turn with a build", func(t *testing.T) {
		_, view := newPlayingView(t, pos(2, 2), pos(0, 0), pos(4, 4), pos(0, 4))
		human := NewHuman(strings.NewReader("0 n s\n"), io.Discard)

		turn, err := human.NextTurn(ctx, view)

		require.NoError(t, err)
		assert.Equal(t, entity.NewTurn(entity.WorkerID{Owner: alice, Index: 0}, entity.North, entity.South), turn)
	})

	t.Run("Closed input ends the game for the human", func(t *testing.T) {
		_, view := newPlayingView(t, pos(2, 2), pos(0, 0), pos(4, 4), pos(0, 4))
		human := NewHuman(strings.NewReader(""), io.Discard)

		_, err := human.NextTurn(ctx, view)

		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("Gives up on silence and keeps the next line for the next request", func(t *testing.T) {
		// Given: a console nobody types into yet
		_, view := newPlayingView(t, pos(2, 2), pos(0, 0), pos(4, 4), pos(0, 4))
		in, typing := io.Pipe()
		defer typing.Close()
		human := NewHuman(in, io.Discard)

		// When: the first request runs out of time
		waitCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()
		_, err := human.NextTurn(waitCtx, view)

		// Then: it returns without holding the console, and the next request gets the line
		require.ErrorIs(t, err, context.DeadlineExceeded)

		go func() {
			_, _ = typing.Write([]byte("0 n s\n"))
		}()

		turn, err := human.NextTurn(ctx, view)
		require.NoError(t, err)
		assert.Equal(t, entity.North, turn.Move.Direction)
	})

	t.Run("Reports the outcome", func(t *testing.T) {
		var out bytes.Buffer
		human := NewHuman(strings.NewReader("2 2\n"), &out)
		_, err := human.NextPlacement(ctx, alice, nil)
		require.NoError(t, err)

		require.NoError(t, human.Finish(ctx, entity.GameOutcome{Winner: alice, Turns: 12}))

		assert.Contains(t, out.String(), "you won after 12 turns")
	})
}

func TestLua(t *testing.T) {
	ctx := context.Background()

	t.Run("Script answers are used", func(t *testing.T) {
		// Given: a script that always takes the first legal option
		bot, err := NewLua("first", `
			function place(view) return view.legal[1] end
			function turn(view) return view.legal[1] end
		`)
		require.NoError(t, err)
		t.Cleanup(bot.Close)

		game, view := newPlayingView(t, pos(2, 2), pos(0, 0), pos(4, 4), pos(0, 4))

		// When: asking for a placement and a turn
		req, err := bot.NextPlacement(ctx, alice, nil)
		require.NoError(t, err)
		turn, err := bot.NextTurn(ctx, view)
		require.NoError(t, err)

		// Then: they match the first legal options
		rules := santorini.NewRules()
		assert.Equal(t, pos(0, 0), req.Position)
		assert.Equal(t, rules.LegalTurns(game)[0], turn)
	})

	t.Run("Illegal script answers fail the self check", func(t *testing.T) {
		bot, err := NewLua("cheater", `
			function place(view) return {row = 9, col = 9} end
			function turn(view) return {worker = 0, move = "N"} end
		`)
		require.NoError(t, err)
		t.Cleanup(bot.Close)

		_, err = bot.NextPlacement(ctx, alice, nil)

		assert.ErrorIs(t, err, apperror.ErrInvalidAction)
	})

	t.Run("Scripts must define both functions", func(t *testing.T) {
		_, err := NewLua("broken", `function place(view) return view.legal[1] end`)

		assert.ErrorIs(t, err, ErrMissingFunction)
	})

	t.Run("Bundled climber script loads", func(t *testing.T) {
		bot, err := NewLuaFromFile("climber", "../../scripts/climber.lua")
		require.NoError(t, err)
		t.Cleanup(bot.Close)

		req, err := bot.NextPlacement(ctx, alice, nil)

		require.NoError(t, err)
		assert.Equal(t, pos(2, 2), req.Position)
	})
}
