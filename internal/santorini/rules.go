package santorini

import (
	"fmt"

	opt "github.com/repeale/fp-go/option"

	"github.com/rocketscienceinc/santorini-backend/internal/apperror"
	"github.com/rocketscienceinc/santorini-backend/internal/entity"
)

// Rules - standard two-player Santorini without god powers. Stateless, safe for concurrent use.
type Rules struct{}

func NewRules() *Rules {
	return &Rules{}
}

// ValidatePlacement - checks that the target cell can receive a worker.
func (that *Rules) ValidatePlacement(board entity.Board, req entity.PlaceRequest) error {
	if !req.Position.InBounds() {
		return fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, req.Position)
	}

	cell := board.Cell(req.Position)

	if cell.IsOccupied() {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, req.Position)
	}

	if cell.Domed {
		return fmt.Errorf("%w: %s", apperror.ErrCellDomed, req.Position)
	}

	return nil
}

func (that *Rules) IsLegalPlacement(board entity.Board, req entity.PlaceRequest) bool {
	return that.ValidatePlacement(board, req) == nil
}

// ValidateTurn - checks a full turn for the player whose turn it is.
func (that *Rules) ValidateTurn(state *entity.GameState, turn entity.Turn) error {
	if err := state.ConfirmPlaying(); err != nil {
		return err
	}

	if turn.Player != "" && turn.Player != state.Turn {
		return apperror.ErrNotYourTurn
	}

	worker, ok := state.Worker(turn.Move.Worker)
	if !ok {
		return fmt.Errorf("%w: %s", apperror.ErrUnknownWorker, turn.Move.Worker)
	}

	if worker.ID.Owner != state.Turn {
		return fmt.Errorf("%w: %s", apperror.ErrNotYourWorker, worker.ID)
	}

	to, err := validateMove(state.Board, worker.Position, turn.Move.Direction)
	if err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	if IsWinningMove(state.Board, worker.Position, to) {
		return nil
	}

	if turn.Build == nil {
		return apperror.ErrMissingBuild
	}

	board := state.Board
	board.Cells[worker.Position.Row][worker.Position.Col].Worker = entity.WorkerID{}

	if err = validateBuild(board, to, turn.Build.Direction); err != nil {
		return fmt.Errorf("invalid build: %w", err)
	}

	return nil
}

func (that *Rules) IsLegalTurn(state *entity.GameState, turn entity.Turn) bool {
	return that.ValidateTurn(state, turn) == nil
}

// IsGameOver - reports the winner once a worker stands on the top level
// or the player to move has no legal turn left.
func (that *Rules) IsGameOver(state *entity.GameState) opt.Option[entity.PlayerID] {
	if state.IsEnded() {
		return opt.Some(state.Winner)
	}

	if state.IsPlacing() {
		return opt.None[entity.PlayerID]()
	}

	for _, worker := range state.Workers {
		if state.Board.Height(worker.Position) == entity.MaxLevel {
			return opt.Some(worker.ID.Owner)
		}
	}

	if !that.hasLegalTurn(state) {
		return opt.Some(state.Opponent(state.Turn))
	}

	return opt.None[entity.PlayerID]()
}

// LegalPlacements - every cell a worker may be placed on.
func (that *Rules) LegalPlacements(board entity.Board) []entity.PlaceRequest {
	var placements []entity.PlaceRequest

	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			req := entity.PlaceRequest{Position: entity.Position{Row: row, Col: col}}
			if that.IsLegalPlacement(board, req) {
				placements = append(placements, req)
			}
		}
	}

	return placements
}

// LegalTurns - every legal turn of the player to move. Winning moves carry no build.
func (that *Rules) LegalTurns(state *entity.GameState) []entity.Turn {
	var turns []entity.Turn

	that.eachTurn(state, func(turn entity.Turn) bool {
		turns = append(turns, turn)
		return true
	})

	return turns
}

func (that *Rules) hasLegalTurn(state *entity.GameState) bool {
	found := false

	that.eachTurn(state, func(entity.Turn) bool {
		found = true
		return false
	})

	return found
}

// eachTurn - walks the legal turns until visit returns false.
func (that *Rules) eachTurn(state *entity.GameState, visit func(entity.Turn) bool) {
	if !state.IsPlaying() {
		return
	}

	for _, worker := range state.WorkersOf(state.Turn) {
		for _, move := range entity.Directions {
			to, err := validateMove(state.Board, worker.Position, move)
			if err != nil {
				continue
			}

			if IsWinningMove(state.Board, worker.Position, to) {
				if !visit(entity.NewWinningTurn(worker.ID, move)) {
					return
				}

				continue
			}

			board := state.Board
			board.Cells[worker.Position.Row][worker.Position.Col].Worker = entity.WorkerID{}
			board.Cells[to.Row][to.Col].Worker = worker.ID

			for _, build := range entity.Directions {
				if validateBuild(board, to, build) != nil {
					continue
				}

				if !visit(entity.NewTurn(worker.ID, move, build)) {
					return
				}
			}
		}
	}
}

// IsWinningMove - moving up onto the top level wins the game.
func IsWinningMove(board entity.Board, from, to entity.Position) bool {
	return board.Height(from) < entity.MaxLevel && board.Height(to) == entity.MaxLevel
}

// validateMove - checks that a worker at from can step in the direction.
func validateMove(board entity.Board, from entity.Position, direction entity.Direction) (entity.Position, error) {
	if !direction.Valid() {
		return entity.Position{}, fmt.Errorf("%w: %q", apperror.ErrInvalidDirection, direction)
	}

	to := from.Step(direction)
	if !to.InBounds() {
		return entity.Position{}, fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, to)
	}

	cell := board.Cell(to)

	if cell.IsOccupied() {
		return entity.Position{}, fmt.Errorf("%w: %s", apperror.ErrCellOccupied, to)
	}

	if cell.Domed {
		return entity.Position{}, fmt.Errorf("%w: %s", apperror.ErrCellDomed, to)
	}

	if cell.Height-board.Height(from) > 1 {
		return entity.Position{}, fmt.Errorf("%w: %s", apperror.ErrTooHigh, to)
	}

	return to, nil
}

// validateBuild - the board must already reflect the move.
func validateBuild(board entity.Board, from entity.Position, direction entity.Direction) error {
	if !direction.Valid() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidDirection, direction)
	}

	target := from.Step(direction)
	if !target.InBounds() {
		return fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, target)
	}

	cell := board.Cell(target)

	if cell.IsOccupied() {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, target)
	}

	if cell.Domed {
		return fmt.Errorf("%w: %s", apperror.ErrCellDomed, target)
	}

	return nil
}
