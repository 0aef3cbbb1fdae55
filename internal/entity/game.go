package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/santorini-backend/internal/apperror"
)

type Phase string

const (
	PhasePlacing Phase = "placing"
	PhasePlaying Phase = "playing"
	PhaseEnded   Phase = "ended"
)

var ErrUnknownGamePhase = errors.New("unknown game phase")

// WorkerID - identifies a worker by its owner and placement order.
type WorkerID struct {
	Owner PlayerID `json:"owner,omitempty"`
	Index int      `json:"index"`
}

func (that WorkerID) String() string {
	return fmt.Sprintf("%s#%d", that.Owner, that.Index)
}

type Worker struct {
	ID       WorkerID `json:"id"`
	Position Position `json:"position"`
}

// InitWorker - a worker that has already been placed on the board.
type InitWorker struct {
	Owner    PlayerID `json:"owner"`
	Position Position `json:"position"`
}

// GameState - canonical state of one game. Only the referee mutates it.
type GameState struct {
	ID        string      `json:"id"`
	Board     Board       `json:"board"`
	Workers   []Worker    `json:"workers"`
	Players   [2]PlayerID `json:"players"`
	Turn      PlayerID    `json:"turn"`
	Phase     Phase       `json:"phase"`
	Winner    PlayerID    `json:"winner,omitempty"`
	TurnCount int         `json:"turn_count"`
	// Quota - workers each player places; zero means unlimited.
	Quota int `json:"quota,omitempty"`
}

// NewGameState - creates an empty board in the placing phase; the first player starts.
func NewGameState(id string, first, second PlayerID) *GameState {
	return &GameState{
		ID:      id,
		Players: [2]PlayerID{first, second},
		Turn:    first,
		Phase:   PhasePlacing,
	}
}

// Copy - returns a deep copy of the state.
func (that *GameState) Copy() *GameState {
	clone := *that
	clone.Workers = append([]Worker(nil), that.Workers...)

	return &clone
}

// View - returns a read-only snapshot for the given viewer.
func (that *GameState) View(viewer PlayerID) GameView {
	return GameView{
		GameID:    that.ID,
		Viewer:    viewer,
		Board:     that.Board,
		Workers:   append([]Worker(nil), that.Workers...),
		Players:   that.Players,
		Turn:      that.Turn,
		Phase:     that.Phase,
		TurnCount: that.TurnCount,
	}
}

func (that *GameState) Opponent(id PlayerID) PlayerID {
	if that.Players[0] == id {
		return that.Players[1]
	}

	return that.Players[0]
}

func (that *GameState) WorkersOf(id PlayerID) []Worker {
	var workers []Worker

	for _, worker := range that.Workers {
		if worker.ID.Owner == id {
			workers = append(workers, worker)
		}
	}

	return workers
}

func (that *GameState) Worker(id WorkerID) (Worker, bool) {
	for _, worker := range that.Workers {
		if worker.ID == id {
			return worker, true
		}
	}

	return Worker{}, false
}

// PlaceWorker - puts the next worker of the owner on the board.
func (that *GameState) PlaceWorker(owner PlayerID, pos Position) (WorkerID, error) {
	if that.Phase != PhasePlacing {
		return WorkerID{}, apperror.ErrWrongPhase
	}

	if !pos.InBounds() {
		return WorkerID{}, fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, pos)
	}

	if that.Board.IsOccupied(pos) {
		return WorkerID{}, fmt.Errorf("%w: %s", apperror.ErrCellOccupied, pos)
	}

	placed := len(that.WorkersOf(owner))
	if that.Quota > 0 && placed >= that.Quota {
		return WorkerID{}, fmt.Errorf("%w: %s has %d", apperror.ErrQuotaExceeded, owner, placed)
	}

	id := WorkerID{Owner: owner, Index: placed}
	that.Workers = append(that.Workers, Worker{ID: id, Position: pos})
	that.Board.occupy(pos, id)

	return id, nil
}

// MoveWorker - relocates the worker one step; rule legality is the caller's concern.
func (that *GameState) MoveWorker(id WorkerID, direction Direction) (Position, error) {
	if that.Phase != PhasePlaying {
		return Position{}, apperror.ErrWrongPhase
	}

	for i := range that.Workers {
		if that.Workers[i].ID != id {
			continue
		}

		from := that.Workers[i].Position
		to := from.Step(direction)

		if !to.InBounds() {
			return Position{}, fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, to)
		}

		if that.Board.IsOccupied(to) {
			return Position{}, fmt.Errorf("%w: %s", apperror.ErrCellOccupied, to)
		}

		that.Board.vacate(from)
		that.Board.occupy(to, id)
		that.Workers[i].Position = to

		return to, nil
	}

	return Position{}, fmt.Errorf("%w: %s", apperror.ErrUnknownWorker, id)
}

// Build - raises the cell next to the worker in the given direction.
func (that *GameState) Build(id WorkerID, direction Direction) error {
	if that.Phase != PhasePlaying {
		return apperror.ErrWrongPhase
	}

	worker, ok := that.Worker(id)
	if !ok {
		return fmt.Errorf("%w: %s", apperror.ErrUnknownWorker, id)
	}

	return that.Board.Raise(worker.Position.Step(direction))
}

// AdvanceTurn - hands the turn to the opponent.
func (that *GameState) AdvanceTurn() {
	that.Turn = that.Opponent(that.Turn)
	if that.Phase == PhasePlaying {
		that.TurnCount++
	}
}

// StartPlaying - switches from placing to playing; the first player moves first.
func (that *GameState) StartPlaying() {
	that.Phase = PhasePlaying
	that.Turn = that.Players[0]
}

func (that *GameState) Finish(winner PlayerID) {
	that.Phase = PhaseEnded
	that.Winner = winner
	that.Turn = ""
}

func (that *GameState) IsPlacing() bool {
	return that.Phase == PhasePlacing
}

func (that *GameState) IsPlaying() bool {
	return that.Phase == PhasePlaying
}

func (that *GameState) IsEnded() bool {
	return that.Phase == PhaseEnded
}

func (that *GameState) ConfirmPlaying() error {
	switch {
	case that.IsPlacing():
		return apperror.ErrWrongPhase
	case that.IsEnded():
		return apperror.ErrGameFinished
	case that.IsPlaying():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGamePhase, that.Phase)
	}
}

// GameView - snapshot of a game handed to strategies. Changing it never affects the game.
type GameView struct {
	GameID    string      `json:"game_id"`
	Viewer    PlayerID    `json:"viewer"`
	Board     Board       `json:"board"`
	Workers   []Worker    `json:"workers"`
	Players   [2]PlayerID `json:"players"`
	Turn      PlayerID    `json:"turn"`
	Phase     Phase       `json:"phase"`
	TurnCount int         `json:"turn_count"`
}

// State - rebuilds a private game state from the view, used for local rule checks.
func (that GameView) State() *GameState {
	return &GameState{
		ID:        that.GameID,
		Board:     that.Board,
		Workers:   append([]Worker(nil), that.Workers...),
		Players:   that.Players,
		Turn:      that.Turn,
		Phase:     that.Phase,
		TurnCount: that.TurnCount,
	}
}

func (that GameView) Placed() []InitWorker {
	placed := make([]InitWorker, 0, len(that.Workers))
	for _, worker := range that.Workers {
		placed = append(placed, InitWorker{Owner: worker.ID.Owner, Position: worker.Position})
	}

	return placed
}

func (that GameView) Opponent() PlayerID {
	if that.Players[0] == that.Viewer {
		return that.Players[1]
	}

	return that.Players[0]
}
