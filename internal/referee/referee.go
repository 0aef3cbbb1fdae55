package referee

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	opt "github.com/repeale/fp-go/option"

	"github.com/rocketscienceinc/santorini-backend/internal/entity"
	"github.com/rocketscienceinc/santorini-backend/internal/player"
)

const (
	DefaultWorkersPerPlayer  = 2
	DefaultActionTimeout     = 10 * time.Second
	DefaultPlacementAttempts = 2
	DefaultTurnAttempts      = 1
)

// RuleChecker - pure game rules consulted before every state change.
type RuleChecker interface {
	IsLegalPlacement(board entity.Board, req entity.PlaceRequest) bool
	IsLegalTurn(state *entity.GameState, turn entity.Turn) bool
	IsGameOver(state *entity.GameState) opt.Option[entity.PlayerID]
}

// Observer - receives a snapshot after every applied action.
type Observer interface {
	Observe(ctx context.Context, state *entity.GameState)
}

type ObserverFunc func(ctx context.Context, state *entity.GameState)

func (that ObserverFunc) Observe(ctx context.Context, state *entity.GameState) {
	that(ctx, state)
}

type Option func(*Referee)

func WithWorkersPerPlayer(workers int) Option {
	return func(r *Referee) {
		r.workersPerPlayer = workers
	}
}

// WithActionTimeout - upper bound for every single strategy call.
func WithActionTimeout(timeout time.Duration) Option {
	return func(r *Referee) {
		r.actionTimeout = timeout
	}
}

// WithPlacementAttempts - consecutive invalid placements tolerated before disqualification.
func WithPlacementAttempts(attempts int) Option {
	return func(r *Referee) {
		r.placementAttempts = attempts
	}
}

// WithTurnAttempts - consecutive invalid turns tolerated before disqualification.
func WithTurnAttempts(attempts int) Option {
	return func(r *Referee) {
		r.turnAttempts = attempts
	}
}

func WithObserver(observer Observer) Option {
	return func(r *Referee) {
		r.observer = observer
	}
}

// Referee - runs games between two players. One referee can run many games concurrently;
// every game owns its own state.
type Referee struct {
	logger            *slog.Logger
	rules             RuleChecker
	workersPerPlayer  int
	actionTimeout     time.Duration
	placementAttempts int
	turnAttempts      int
	observer          Observer
}

func New(logger *slog.Logger, rules RuleChecker, options ...Option) *Referee {
	referee := &Referee{
		logger:            logger.With("component", "referee"),
		rules:             rules,
		workersPerPlayer:  DefaultWorkersPerPlayer,
		actionTimeout:     DefaultActionTimeout,
		placementAttempts: DefaultPlacementAttempts,
		turnAttempts:      DefaultTurnAttempts,
		observer:          ObserverFunc(func(context.Context, *entity.GameState) {}),
	}

	for _, option := range options {
		option(referee)
	}

	referee.placementAttempts = max(referee.placementAttempts, 1)
	referee.turnAttempts = max(referee.turnAttempts, 1)

	return referee
}

// StartGame - plays one game to completion. The first player places and moves first.
// It never fails: every misbehaviour of a player ends in that player's disqualification,
// and a cancelled context ends the game as aborted without blaming anyone.
func (that *Referee) StartGame(ctx context.Context, players [2]*player.Player) *entity.GameOutcome {
	game := &match{
		referee: that,
		state:   entity.NewGameState(uuid.New().String(), players[0].ID(), players[1].ID()),
		players: map[entity.PlayerID]*player.Player{
			players[0].ID(): players[0],
			players[1].ID(): players[1],
		},
	}
	game.state.Quota = that.workersPerPlayer
	game.logger = that.logger.With("gameID", game.state.ID)

	game.logger.Info("game started", "first", players[0].ID(), "second", players[1].ID())

	outcome := game.run(ctx)

	game.logger.Info("game ended",
		"winner", outcome.Winner,
		"disqualified", outcome.Disqualified,
		"reason", outcome.Reason,
		"turns", outcome.Turns,
		"aborted", outcome.Aborted,
	)

	return outcome
}
