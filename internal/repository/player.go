package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/santorini-backend/internal/apperror"
	"github.com/rocketscienceinc/santorini-backend/internal/entity"
)

var ErrMissingPlayerID = errors.New("player has no id")

const playerNameField = "name"

// PlayerRepository - registry of tournament entrants, so ids in outcomes can be resolved to names.
type PlayerRepository interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id entity.PlayerID) (*entity.Player, error)
}

// redisPlayers - one hash per entrant under "player:<id>".
type redisPlayers struct {
	client *redis.Client
}

func NewPlayerRepository(client *redis.Client) PlayerRepository {
	return &redisPlayers{
		client: client,
	}
}

func playerKey(id entity.PlayerID) string {
	return "player:" + id.String()
}

// CreateOrUpdate - registers the entrant; registering again renames it. Entrants never expire.
func (that *redisPlayers) CreateOrUpdate(ctx context.Context, player *entity.Player) error {
	if player.ID == "" {
		return ErrMissingPlayerID
	}

	if err := that.client.HSet(ctx, playerKey(player.ID), playerNameField, player.Name).Err(); err != nil {
		return fmt.Errorf("failed to register player %s: %w", player.ID, err)
	}

	return nil
}

// GetByID - resolves an entrant, apperror.ErrNotFound for ids never registered.
func (that *redisPlayers) GetByID(ctx context.Context, id entity.PlayerID) (*entity.Player, error) {
	fields, err := that.client.HGetAll(ctx, playerKey(id)).Result()
	if err != nil {
		return &entity.Player{}, fmt.Errorf("failed to get player %s: %w", id, err)
	}

	name, ok := fields[playerNameField]
	if !ok {
		return &entity.Player{}, apperror.ErrNotFound
	}

	return &entity.Player{ID: id, Name: name}, nil
}
