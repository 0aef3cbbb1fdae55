package strategy

import (
	"context"
	"math"

	"github.com/rocketscienceinc/santorini-backend/internal/entity"
	"github.com/rocketscienceinc/santorini-backend/internal/santorini"
)

const (
	winScore      = 1_000
	loseScore     = -1_000
	heightWeight  = 10
	climbWeight   = 3
	freedomWeight = 1
)

// Greedy - one ply lookahead with fixed heuristics: win when possible, never hand
// the opponent a winning move if avoidable, otherwise climb and keep options open.
type Greedy struct {
	passive

	rules *santorini.Rules
}

func NewGreedy() *Greedy {
	return &Greedy{rules: santorini.NewRules()}
}

func (that *Greedy) Name() string {
	return "greedy"
}

// NextPlacement - takes the free cell closest to the centre.
func (that *Greedy) NextPlacement(_ context.Context, _ entity.PlayerID, placed []entity.InitWorker) (entity.PlaceRequest, error) {
	available := that.rules.LegalPlacements(placementBoard(placed))
	if len(available) == 0 {
		return entity.PlaceRequest{}, ErrNoAvailableMoves
	}

	centre := entity.Position{Row: entity.BoardSize / 2, Col: entity.BoardSize / 2}
	best := available[0]

	for _, req := range available[1:] {
		if distance(req.Position, centre) < distance(best.Position, centre) {
			best = req
		}
	}

	return best, nil
}

func (that *Greedy) NextTurn(_ context.Context, view entity.GameView) (entity.Turn, error) {
	state := view.State()

	turns := that.rules.LegalTurns(state)
	if len(turns) == 0 {
		return entity.Turn{}, ErrNoAvailableMoves
	}

	best, bestScore := turns[0], math.MinInt

	for _, turn := range turns {
		if score := that.score(state, turn); score > bestScore {
			best, bestScore = turn, score
		}
	}

	if err := checkTurn(that.rules, view, best); err != nil {
		return entity.Turn{}, err
	}

	return best, nil
}

func (that *Greedy) score(state *entity.GameState, turn entity.Turn) int {
	if turn.Build == nil {
		return winScore
	}

	next := state.Copy()

	to, err := next.MoveWorker(turn.Move.Worker, turn.Move.Direction)
	if err != nil {
		return math.MinInt
	}

	if err = next.Build(turn.Move.Worker, turn.Build.Direction); err != nil {
		return math.MinInt
	}

	next.AdvanceTurn()

	for _, reply := range that.rules.LegalTurns(next) {
		if reply.Build == nil {
			return loseScore
		}
	}

	score := heightWeight * next.Board.Height(to)

	for _, direction := range entity.Directions {
		around := to.Step(direction)
		if !around.InBounds() {
			continue
		}

		cell := next.Board.Cell(around)
		if cell.IsOccupied() || cell.Domed {
			continue
		}

		score += freedomWeight
		if cell.Height == next.Board.Height(to)+1 {
			score += climbWeight
		}
	}

	return score
}

func distance(a, b entity.Position) int {
	return max(abs(a.Row-b.Row), abs(a.Col-b.Col))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
