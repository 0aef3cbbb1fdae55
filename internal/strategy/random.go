package strategy

import (
	"context"
	"math/rand/v2"

	"github.com/sasha-s/go-deadlock"

	"github.com/rocketscienceinc/santorini-backend/internal/entity"
	"github.com/rocketscienceinc/santorini-backend/internal/santorini"
)

// Random - picks uniformly among the legal actions.
type Random struct {
	passive

	rules *santorini.Rules

	mu   deadlock.Mutex
	rand *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{
		rules: santorini.NewRules(),
		rand:  rand.New(rand.NewPCG(seed, seed^0x5eed)), //nolint: gosec // it's ok
	}
}

func (that *Random) Name() string {
	return "random"
}

func (that *Random) NextPlacement(_ context.Context, _ entity.PlayerID, placed []entity.InitWorker) (entity.PlaceRequest, error) {
	available := that.rules.LegalPlacements(placementBoard(placed))
	if len(available) == 0 {
		return entity.PlaceRequest{}, ErrNoAvailableMoves
	}

	return available[that.intN(len(available))], nil
}

func (that *Random) NextTurn(_ context.Context, view entity.GameView) (entity.Turn, error) {
	available := that.rules.LegalTurns(view.State())
	if len(available) == 0 {
		return entity.Turn{}, ErrNoAvailableMoves
	}

	return available[that.intN(len(available))], nil
}

func (that *Random) intN(n int) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rand.IntN(n)
}
