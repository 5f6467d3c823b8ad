package player

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/tallidarts/tally/internal/models"
	"github.com/tallidarts/tally/internal/repositories/txn"
)

const (
	// Key prefixes for Redis
	playerKeyPrefix = "player:"

	// Sorted set of player IDs scored by overall rating
	playersByEloKey = "players_by_elo"
)

// ErrPlayerNotFound is returned when a player is not found
var ErrPlayerNotFound = errors.New("player not found")

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SavePlayer persists a player to Redis
func (r *redisRepository) SavePlayer(ctx context.Context, input *SavePlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	op, err := r.SavePlayerOp(input.Player)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	if err := op(ctx, pipe); err != nil {
		return err
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}

	return nil
}

// SavePlayerOp returns a transaction operation that writes the player
// record and its rating index entry
func (r *redisRepository) SavePlayerOp(player *models.Player) (txn.Op, error) {
	if player == nil {
		return nil, errors.New("player cannot be nil")
	}

	if player.ID == "" {
		return nil, errors.New("player ID cannot be empty")
	}

	playerJSON, err := json.Marshal(player)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal player: %w", err)
	}

	playerKey := fmt.Sprintf("%s%s", playerKeyPrefix, player.ID)
	elo := player.Elo
	id := player.ID

	return func(ctx context.Context, pipe redis.Pipeliner) error {
		pipe.Set(ctx, playerKey, playerJSON, 0)
		pipe.ZAdd(ctx, playersByEloKey, redis.Z{Score: elo, Member: id})
		return nil
	}, nil
}

// GetPlayer retrieves a player by ID from Redis
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	playerKey := fmt.Sprintf("%s%s", playerKeyPrefix, input.PlayerID)
	playerJSON, err := r.client.Get(ctx, playerKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	var player models.Player
	if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &player, nil
}

// ListPlayers retrieves all players ordered by overall rating,
// highest first
func (r *redisRepository) ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error) {
	if input == nil {
		input = &ListPlayersInput{}
	}

	// Highest rating first
	playerIDs, err := r.client.ZRevRange(ctx, playersByEloKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list player IDs: %w", err)
	}

	if len(playerIDs) == 0 {
		return &ListPlayersOutput{
			Players: []*models.Player{},
		}, nil
	}

	pipe := r.client.Pipeline()
	playerCommands := make([]*redis.StringCmd, 0, len(playerIDs))

	for _, playerID := range playerIDs {
		playerKey := fmt.Sprintf("%s%s", playerKeyPrefix, playerID)
		playerCommands = append(playerCommands, pipe.Get(ctx, playerKey))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	players := make([]*models.Player, 0, len(playerIDs))
	for i, cmd := range playerCommands {
		playerJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Player was deleted between reading the index and
				// fetching the record
				continue
			}
			return nil, fmt.Errorf("failed to get player %s: %w", playerIDs[i], err)
		}

		var player models.Player
		if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player %s: %w", playerIDs[i], err)
		}

		if input.Group != "" && player.Group != input.Group {
			continue
		}

		players = append(players, &player)
	}

	return &ListPlayersOutput{
		Players: players,
	}, nil
}

// DeletePlayer removes a player and its index entry
func (r *redisRepository) DeletePlayer(ctx context.Context, input *DeletePlayerInput) error {
	if input == nil || input.PlayerID == "" {
		return errors.New("input and player ID cannot be empty")
	}

	playerKey := fmt.Sprintf("%s%s", playerKeyPrefix, input.PlayerID)

	pipe := r.client.Pipeline()
	deleted := pipe.Del(ctx, playerKey)
	pipe.ZRem(ctx, playersByEloKey, input.PlayerID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}

	if deleted.Val() == 0 {
		return ErrPlayerNotFound
	}

	return nil
}
