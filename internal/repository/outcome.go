package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/santorini-backend/internal/entity"
)

// OutcomeRepository - append-only log of game outcomes per tournament.
type OutcomeRepository interface {
	Save(ctx context.Context, tournamentID string, outcome *entity.GameOutcome) error
	List(ctx context.Context, tournamentID string) ([]entity.GameOutcome, error)
	DeleteByTournament(ctx context.Context, tournamentID string) error
}

type dbOutcome struct {
	client *redis.Client
}

func NewOutcomeRepository(client *redis.Client) OutcomeRepository {
	return &dbOutcome{
		client: client,
	}
}

func outcomesKey(tournamentID string) string {
	return "tournament:" + tournamentID + ":outcomes"
}

func (that *dbOutcome) Save(ctx context.Context, tournamentID string, outcome *entity.GameOutcome) error {
	outcomeJSON, err := json.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("failed to marshal outcome: %w", err)
	}

	if err = that.client.RPush(ctx, outcomesKey(tournamentID), outcomeJSON).Err(); err != nil {
		return fmt.Errorf("failed to push outcome: %w", err)
	}

	return nil
}

// List - outcomes in the order they were stored. An unknown tournament has no outcomes.
func (that *dbOutcome) List(ctx context.Context, tournamentID string) ([]entity.GameOutcome, error) {
	response, err := that.client.LRange(ctx, outcomesKey(tournamentID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list outcomes: %w", err)
	}

	outcomes := make([]entity.GameOutcome, 0, len(response))
	for _, raw := range response {
		var outcome entity.GameOutcome
		if err = json.Unmarshal([]byte(raw), &outcome); err != nil {
			return nil, fmt.Errorf("failed to unmarshal outcome: %w", err)
		}

		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

func (that *dbOutcome) DeleteByTournament(ctx context.Context, tournamentID string) error {
	if err := that.client.Del(ctx, outcomesKey(tournamentID)).Err(); err != nil {
		return fmt.Errorf("failed to delete outcomes: %w", err)
	}

	return nil
}
