package strategy

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/santorini-backend/internal/apperror"
	"github.com/rocketscienceinc/santorini-backend/internal/entity"
	"github.com/rocketscienceinc/santorini-backend/internal/santorini"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// passive - strategies that keep no state between requests ignore notifications.
type passive struct{}

func (passive) Notify(context.Context, entity.GameView) error {
	return nil
}

func (passive) Finish(context.Context, entity.GameOutcome) error {
	return nil
}

// placementBoard - rebuilds the placing-phase board from the placed workers.
func placementBoard(placed []entity.InitWorker) entity.Board {
	game := entity.NewGameState("", "", "")

	for _, worker := range placed {
		_, _ = game.PlaceWorker(worker.Owner, worker.Position)
	}

	return game.Board
}

// checkPlacement - local validation before a placement is submitted.
func checkPlacement(rules *santorini.Rules, placed []entity.InitWorker, req entity.PlaceRequest) error {
	if err := rules.ValidatePlacement(placementBoard(placed), req); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidAction, err)
	}

	return nil
}

// checkTurn - local validation before a turn is submitted.
func checkTurn(rules *santorini.Rules, view entity.GameView, turn entity.Turn) error {
	if err := rules.ValidateTurn(view.State(), turn); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidAction, err)
	}

	return nil
}
