package tournament

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/sasha-s/go-deadlock"

	"github.com/rocketscienceinc/santorini-backend/internal/entity"
	"github.com/rocketscienceinc/santorini-backend/internal/player"
)

var ErrNotEnoughEntrants = errors.New("a tournament needs at least two entrants")

// StrategyFactory - provides the strategy for one game and a release func called after it.
type StrategyFactory func() (player.Strategy, func(), error)

// Entrant - a participant of the series. An entrant plays at most one game at a time.
type Entrant struct {
	ID       entity.PlayerID
	Name     string
	Strategy StrategyFactory

	mu deadlock.Mutex
}

func NewEntrant(id entity.PlayerID, name string, factory StrategyFactory) *Entrant {
	return &Entrant{
		ID:       id,
		Name:     name,
		Strategy: factory,
	}
}

// Shared - a factory handing out the same strategy for every game.
func Shared(strategy player.Strategy) StrategyFactory {
	return func() (player.Strategy, func(), error) {
		return strategy, func() {}, nil
	}
}

type gameReferee interface {
	StartGame(ctx context.Context, players [2]*player.Player) *entity.GameOutcome
}

type outcomeStore interface {
	Save(ctx context.Context, tournamentID string, outcome *entity.GameOutcome) error
}

type standingsStore interface {
	Save(ctx context.Context, standings entity.Standings) error
}

// Runner - plays a round robin series on a bounded pool of workers.
type Runner struct {
	logger          *slog.Logger
	referee         gameReferee
	outcomes        outcomeStore
	standings       standingsStore
	concurrency     int
	gamesPerPairing int
}

func NewRunner(
	logger *slog.Logger,
	referee gameReferee,
	outcomes outcomeStore,
	standings standingsStore,
	concurrency, gamesPerPairing int,
) *Runner {
	return &Runner{
		logger:          logger.With("component", "tournament"),
		referee:         referee,
		outcomes:        outcomes,
		standings:       standings,
		concurrency:     max(concurrency, 1),
		gamesPerPairing: max(gamesPerPairing, 1),
	}
}

// Run - plays every pairing, stores each outcome and archives the final standings.
// Storage failures never abort the series; an archive failure is returned next to the result.
func (that *Runner) Run(ctx context.Context, tournamentID string, entrants []*Entrant) (*Result, error) {
	log := that.logger.With("method", "Run", "tournamentID", tournamentID)

	if len(entrants) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrNotEnoughEntrants, len(entrants))
	}

	pairings := RoundRobin(len(entrants), that.gamesPerPairing)
	outcomes := make([]*entity.GameOutcome, len(pairings))

	log.Info("tournament started", "entrants", len(entrants), "games", len(pairings))

	tasks := make(chan int)

	var wg sync.WaitGroup
	for range min(that.concurrency, len(pairings)) {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range tasks {
				outcomes[i] = that.play(ctx, tournamentID, entrants, pairings[i])
			}
		}()
	}

feed:
	for i := range pairings {
		select {
		case tasks <- i:
		case <-ctx.Done():
			break feed
		}
	}

	close(tasks)
	wg.Wait()

	played := make([]entity.GameOutcome, 0, len(outcomes))
	for _, outcome := range outcomes {
		if outcome != nil {
			played = append(played, *outcome)
		}
	}

	seeding := make([]entity.PlayerID, 0, len(entrants))
	for _, entrant := range entrants {
		seeding = append(seeding, entrant.ID)
	}

	result := BuildSeeded(seeding, played)

	log.Info("tournament finished", "played", len(played), "disqualified", len(result.DisqualifiedList()))

	if err := that.standings.Save(context.WithoutCancel(ctx), result.Standings(tournamentID)); err != nil {
		return result, fmt.Errorf("failed to archive standings: %w", err)
	}

	if len(played) < len(pairings) {
		return result, fmt.Errorf("tournament interrupted after %d of %d games: %w", len(played), len(pairings), ctx.Err())
	}

	return result, nil
}

// play - runs one pairing once both entrants are free.
func (that *Runner) play(ctx context.Context, tournamentID string, entrants []*Entrant, pairing Pairing) *entity.GameOutcome {
	log := that.logger.With("method", "play", "tournamentID", tournamentID)

	first, second := entrants[pairing.First], entrants[pairing.Second]

	// Lock in entrant order so two games sharing both entrants cannot deadlock.
	low, high := first, second
	if pairing.Second < pairing.First {
		low, high = second, first
	}

	low.mu.Lock()
	defer low.mu.Unlock()
	high.mu.Lock()
	defer high.mu.Unlock()

	if ctx.Err() != nil {
		return nil
	}

	outcome := that.startGame(ctx, first, second)
	if outcome.Aborted {
		log.Info("game aborted, not counted", "gameID", outcome.GameID)
		return nil
	}

	if err := that.outcomes.Save(ctx, tournamentID, outcome); err != nil {
		log.Error("failed to store outcome", "gameID", outcome.GameID, "error", err)
	}

	return outcome
}

func (that *Runner) startGame(ctx context.Context, first, second *Entrant) *entity.GameOutcome {
	log := that.logger.With("method", "startGame")

	firstStrategy, releaseFirst, err := first.Strategy()
	if err != nil {
		log.Error("failed to prepare strategy", "playerID", first.ID, "error", err)
		return forfeit(first.ID, second.ID, first.ID)
	}
	defer releaseFirst()

	secondStrategy, releaseSecond, err := second.Strategy()
	if err != nil {
		log.Error("failed to prepare strategy", "playerID", second.ID, "error", err)
		return forfeit(first.ID, second.ID, second.ID)
	}
	defer releaseSecond()

	return that.referee.StartGame(ctx, [2]*player.Player{
		player.New(first.ID, first.Name, firstStrategy),
		player.New(second.ID, second.Name, secondStrategy),
	})
}

// forfeit - outcome of a game that could not start because a strategy was unavailable.
func forfeit(first, second, failed entity.PlayerID) *entity.GameOutcome {
	winner := first
	if failed == first {
		winner = second
	}

	return &entity.GameOutcome{
		GameID:       uuid.New().String(),
		Players:      [2]entity.PlayerID{first, second},
		Winner:       winner,
		Disqualified: failed,
		Reason:       entity.ReasonInvalidAction,
	}
}
