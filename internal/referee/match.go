package referee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	opt "github.com/repeale/fp-go/option"

	"github.com/rocketscienceinc/santorini-backend/internal/apperror"
	"github.com/rocketscienceinc/santorini-backend/internal/entity"
	"github.com/rocketscienceinc/santorini-backend/internal/player"
)

// match - state of a single game run by the referee.
type match struct {
	referee *Referee
	logger  *slog.Logger
	state   *entity.GameState
	players map[entity.PlayerID]*player.Player
}

func (that *match) run(ctx context.Context) *entity.GameOutcome {
	that.observe(ctx)

	if outcome := that.placementPhase(ctx); outcome != nil {
		return outcome
	}

	return that.turnPhase(ctx)
}

// placementPhase - players alternately place workers until both placed their quota.
func (that *match) placementPhase(ctx context.Context) *entity.GameOutcome {
	log := that.logger.With("method", "placementPhase")

	total := 2 * that.referee.workersPerPlayer
	attempts := 0

	for placed := 0; placed < total; {
		if ctx.Err() != nil {
			return that.abort(ctx)
		}

		if outcome := that.notifyAll(ctx); outcome != nil {
			return outcome
		}

		current := that.players[that.state.Turn]
		placedWorkers := that.state.View(current.ID()).Placed()

		req, err := call(ctx, that.referee.actionTimeout, func(ctx context.Context) (entity.PlaceRequest, error) {
			return current.NextPlacement(ctx, placedWorkers)
		})
		if err != nil {
			return that.disqualify(ctx, current.ID(), err)
		}

		if !that.referee.rules.IsLegalPlacement(that.state.Board, req) {
			attempts++
			log.Warn("illegal placement", "playerID", current.ID(), "position", req.Position, "attempt", attempts)

			if attempts >= that.referee.placementAttempts {
				return that.disqualify(ctx, current.ID(),
					fmt.Errorf("%w: illegal placement at %s", apperror.ErrInvalidAction, req.Position))
			}

			continue
		}

		if _, err = that.state.PlaceWorker(current.ID(), req.Position); err != nil {
			return that.disqualify(ctx, current.ID(), fmt.Errorf("%w: %w", apperror.ErrInvalidAction, err))
		}

		attempts = 0
		placed++
		that.observe(ctx)

		if outcome := that.checkGameOver(ctx); outcome != nil {
			return outcome
		}

		that.state.AdvanceTurn()
	}

	that.state.StartPlaying()
	that.observe(ctx)

	log.Debug("all workers placed")

	return nil
}

// turnPhase - the player to move submits a move and a build until the game ends.
func (that *match) turnPhase(ctx context.Context) *entity.GameOutcome {
	log := that.logger.With("method", "turnPhase")

	attempts := 0

	for {
		if ctx.Err() != nil {
			return that.abort(ctx)
		}

		if outcome := that.checkGameOver(ctx); outcome != nil {
			return outcome
		}

		if outcome := that.notifyAll(ctx); outcome != nil {
			return outcome
		}

		current := that.players[that.state.Turn]
		view := that.state.View(current.ID())

		turn, err := call(ctx, that.referee.actionTimeout, func(ctx context.Context) (entity.Turn, error) {
			return current.NextTurn(ctx, view)
		})
		if err != nil {
			return that.disqualify(ctx, current.ID(), err)
		}

		if !that.referee.rules.IsLegalTurn(that.state, turn) {
			attempts++
			log.Warn("illegal turn", "playerID", current.ID(), "worker", turn.Move.Worker, "attempt", attempts)

			if attempts >= that.referee.turnAttempts {
				return that.disqualify(ctx, current.ID(),
					fmt.Errorf("%w: illegal turn with worker %s", apperror.ErrInvalidAction, turn.Move.Worker))
			}

			continue
		}

		attempts = 0

		if outcome := that.applyTurn(ctx, current.ID(), turn); outcome != nil {
			return outcome
		}
	}
}

// applyTurn - moves, checks for a win, then builds.
func (that *match) applyTurn(ctx context.Context, id entity.PlayerID, turn entity.Turn) *entity.GameOutcome {
	if _, err := that.state.MoveWorker(turn.Move.Worker, turn.Move.Direction); err != nil {
		return that.disqualify(ctx, id, fmt.Errorf("%w: %w", apperror.ErrInvalidAction, err))
	}

	that.observe(ctx)

	// Only the mover can win by moving. Whether a player is stuck is judged when their turn starts.
	if winner := that.referee.rules.IsGameOver(that.state); !opt.IsNone(winner) && winner.Value == id {
		return that.finish(ctx, entity.GameOutcome{Winner: id})
	}

	if turn.Build == nil {
		return that.disqualify(ctx, id, fmt.Errorf("%w: %w", apperror.ErrInvalidAction, apperror.ErrMissingBuild))
	}

	if err := that.state.Build(turn.Move.Worker, turn.Build.Direction); err != nil {
		return that.disqualify(ctx, id, fmt.Errorf("%w: %w", apperror.ErrInvalidAction, err))
	}

	that.state.AdvanceTurn()
	that.observe(ctx)

	return nil
}

// notifyAll - shows the current state to both players, first player first.
func (that *match) notifyAll(ctx context.Context) *entity.GameOutcome {
	for _, id := range that.state.Players {
		current := that.players[id]
		view := that.state.View(id)

		_, err := call(ctx, that.referee.actionTimeout, func(ctx context.Context) (struct{}, error) {
			return struct{}{}, current.Notify(ctx, view)
		})
		if err != nil {
			return that.disqualify(ctx, id, fmt.Errorf("failed to notify player: %w", err))
		}
	}

	return nil
}

func (that *match) checkGameOver(ctx context.Context) *entity.GameOutcome {
	winner := that.referee.rules.IsGameOver(that.state)
	if opt.IsNone(winner) {
		return nil
	}

	return that.finish(ctx, entity.GameOutcome{Winner: winner.Value})
}

func (that *match) disqualify(ctx context.Context, id entity.PlayerID, err error) *entity.GameOutcome {
	if ctx.Err() != nil {
		return that.abort(ctx)
	}

	reason := reasonOf(err)

	that.logger.Warn("player disqualified", "playerID", id, "reason", reason, "error", err)

	return that.finish(ctx, entity.GameOutcome{
		Winner:       that.state.Opponent(id),
		Disqualified: id,
		Reason:       reason,
	})
}

// abort - ends a game whose context was cancelled. Players still learn the outcome.
func (that *match) abort(ctx context.Context) *entity.GameOutcome {
	that.logger.Warn("game aborted", "error", ctx.Err())

	return that.finish(context.WithoutCancel(ctx), entity.GameOutcome{Aborted: true})
}

// finish - ends the game and tells both players the outcome.
func (that *match) finish(ctx context.Context, outcome entity.GameOutcome) *entity.GameOutcome {
	outcome.GameID = that.state.ID
	outcome.Players = that.state.Players
	outcome.Turns = that.state.TurnCount

	that.state.Finish(outcome.Winner)
	that.observe(ctx)

	for _, id := range that.state.Players {
		current := that.players[id]

		_, err := call(ctx, that.referee.actionTimeout, func(ctx context.Context) (struct{}, error) {
			return struct{}{}, current.Finish(ctx, outcome)
		})
		if err != nil {
			that.logger.Warn("failed to deliver outcome", "playerID", id, "error", err)
		}
	}

	return &outcome
}

func (that *match) observe(ctx context.Context) {
	that.referee.observer.Observe(ctx, that.state.Copy())
}

// reasonOf - maps a player failure to a disqualification reason.
func reasonOf(err error) entity.DisqualificationReason {
	switch {
	case errors.Is(err, apperror.ErrProtocolViolation):
		return entity.ReasonProtocolViolation
	case errors.Is(err, apperror.ErrTimeout),
		errors.Is(err, context.DeadlineExceeded):
		return entity.ReasonTimeout
	default:
		return entity.ReasonInvalidAction
	}
}
