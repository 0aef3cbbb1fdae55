package strategy

import (
	"context"
	"errors"
	"fmt"

	"github.com/sasha-s/go-deadlock"

	"github.com/rocketscienceinc/santorini-backend/internal/entity"
	"github.com/rocketscienceinc/santorini-backend/internal/santorini"
)

var ErrScriptExhausted = errors.New("script has no more actions")

// Scripted - replays a fixed sequence of placements and turns.
type Scripted struct {
	passive

	rules *santorini.Rules

	mu         deadlock.Mutex
	placements []entity.Position
	turns      []entity.Turn
}

func NewScripted(placements []entity.Position, turns []entity.Turn) *Scripted {
	return &Scripted{
		rules:      santorini.NewRules(),
		placements: append([]entity.Position(nil), placements...),
		turns:      append([]entity.Turn(nil), turns...),
	}
}

func (that *Scripted) Name() string {
	return "scripted"
}

func (that *Scripted) NextPlacement(_ context.Context, _ entity.PlayerID, placed []entity.InitWorker) (entity.PlaceRequest, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if len(that.placements) == 0 {
		return entity.PlaceRequest{}, fmt.Errorf("placement: %w", ErrScriptExhausted)
	}

	req := entity.PlaceRequest{Position: that.placements[0]}
	if err := checkPlacement(that.rules, placed, req); err != nil {
		return entity.PlaceRequest{}, err
	}

	that.placements = that.placements[1:]

	return req, nil
}

// NextTurn - worker owners in the script are rewritten to the viewer, so one script fits any seat.
func (that *Scripted) NextTurn(_ context.Context, view entity.GameView) (entity.Turn, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if len(that.turns) == 0 {
		return entity.Turn{}, fmt.Errorf("turn: %w", ErrScriptExhausted)
	}

	turn := that.turns[0]
	turn.Move.Worker.Owner = view.Viewer

	if err := checkTurn(that.rules, view, turn); err != nil {
		return entity.Turn{}, err
	}

	that.turns = that.turns[1:]

	return turn, nil
}
