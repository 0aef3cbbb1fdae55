package player

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/santorini-backend/internal/apperror"
	"github.com/rocketscienceinc/santorini-backend/internal/entity"
)

// Strategy - decision making of one participant, local or remote.
type Strategy interface {
	Name() string
	NextPlacement(ctx context.Context, self entity.PlayerID, placed []entity.InitWorker) (entity.PlaceRequest, error)
	NextTurn(ctx context.Context, view entity.GameView) (entity.Turn, error)
	Notify(ctx context.Context, view entity.GameView) error
	Finish(ctx context.Context, outcome entity.GameOutcome) error
}

// Player - binds a strategy to an identity. It never alters the strategy's decisions.
type Player struct {
	id       entity.PlayerID
	name     string
	strategy Strategy
}

func New(id entity.PlayerID, name string, strategy Strategy) *Player {
	return &Player{
		id:       id,
		name:     name,
		strategy: strategy,
	}
}

func (that *Player) ID() entity.PlayerID {
	return that.id
}

func (that *Player) Name() string {
	return that.name
}

func (that *Player) Strategy() Strategy {
	return that.strategy
}

// Notify - forwards a state change to the strategy.
func (that *Player) Notify(ctx context.Context, view entity.GameView) error {
	return that.strategy.Notify(ctx, view)
}

func (that *Player) Finish(ctx context.Context, outcome entity.GameOutcome) error {
	return that.strategy.Finish(ctx, outcome)
}

// NextPlacement - asks the strategy where to put the next worker and tags the answer with this player's identity.
func (that *Player) NextPlacement(ctx context.Context, placed []entity.InitWorker) (entity.PlaceRequest, error) {
	req, err := that.strategy.NextPlacement(ctx, that.id, placed)
	if err != nil {
		return entity.PlaceRequest{}, fmt.Errorf("failed to get placement from %s: %w", that.name, err)
	}

	if req.Player != "" && req.Player != that.id {
		return entity.PlaceRequest{}, fmt.Errorf("%w: %s placed for %s", apperror.ErrIdentityMismatch, that.id, req.Player)
	}

	req.Player = that.id

	return req, nil
}

// NextTurn - asks the strategy for its turn and tags it with this player's identity.
func (that *Player) NextTurn(ctx context.Context, view entity.GameView) (entity.Turn, error) {
	turn, err := that.strategy.NextTurn(ctx, view)
	if err != nil {
		return entity.Turn{}, fmt.Errorf("failed to get turn from %s: %w", that.name, err)
	}

	if turn.Player != "" && turn.Player != that.id {
		return entity.Turn{}, fmt.Errorf("%w: %s played for %s", apperror.ErrIdentityMismatch, that.id, turn.Player)
	}

	turn.Player = that.id

	return turn, nil
}
