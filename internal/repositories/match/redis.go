package match

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
	matchKeyPrefix = "match:"

	// Sorted set of match IDs scored by play time
	matchesByPlayedAtKey = "matches_by_played_at"
)

// ErrMatchNotFound is returned when a match is not found
var ErrMatchNotFound = errors.New("match not found")

// Config holds configuration for the Redis match repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed match repository
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

// SaveMatch persists a match result to Redis
func (r *redisRepository) SaveMatch(ctx context.Context, input *SaveMatchInput) error {
	if input == nil || input.Match == nil {
		return errors.New("input and match cannot be nil")
	}

	op, err := r.SaveMatchOp(input.Match)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	if err := op(ctx, pipe); err != nil {
		return err
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}

	return nil
}

// SaveMatchOp returns a transaction operation that writes the match
// record and its recency index entry
func (r *redisRepository) SaveMatchOp(result *models.MatchResult) (txn.Op, error) {
	if result == nil {
		return nil, errors.New("match cannot be nil")
	}

	if result.ID == "" {
		return nil, errors.New("match ID cannot be empty")
	}

	matchJSON, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal match: %w", err)
	}

	matchKey := fmt.Sprintf("%s%s", matchKeyPrefix, result.ID)
	score := float64(result.PlayedAt.UnixNano())
	id := result.ID

	return func(ctx context.Context, pipe redis.Pipeliner) error {
		pipe.Set(ctx, matchKey, matchJSON, 0)
		pipe.ZAdd(ctx, matchesByPlayedAtKey, redis.Z{Score: score, Member: id})
		return nil
	}, nil
}

// GetMatch retrieves a match result by ID from Redis
func (r *redisRepository) GetMatch(ctx context.Context, input *GetMatchInput) (*models.MatchResult, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	matchKey := fmt.Sprintf("%s%s", matchKeyPrefix, input.MatchID)
	matchJSON, err := r.client.Get(ctx, matchKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	var result models.MatchResult
	if err := json.Unmarshal([]byte(matchJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &result, nil
}

// ListMatches retrieves match results ordered by play time, newest
// first
func (r *redisRepository) ListMatches(ctx context.Context, input *ListMatchesInput) (*ListMatchesOutput, error) {
	if input == nil {
		input = &ListMatchesInput{}
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit) - 1
	}

	// Newest first
	matchIDs, err := r.client.ZRevRange(ctx, matchesByPlayedAtKey, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list match IDs: %w", err)
	}

	if len(matchIDs) == 0 {
		return &ListMatchesOutput{
			Matches: []*models.MatchResult{},
		}, nil
	}

	pipe := r.client.Pipeline()
	matchCommands := make([]*redis.StringCmd, 0, len(matchIDs))

	for _, matchID := range matchIDs {
		matchKey := fmt.Sprintf("%s%s", matchKeyPrefix, matchID)
		matchCommands = append(matchCommands, pipe.Get(ctx, matchKey))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get matches: %w", err)
	}

	matches := make([]*models.MatchResult, 0, len(matchIDs))
	for i, cmd := range matchCommands {
		matchJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Match was deleted between reading the index and
				// fetching the record
				continue
			}
			return nil, fmt.Errorf("failed to get match %s: %w", matchIDs[i], err)
		}

		var result models.MatchResult
		if err := json.Unmarshal([]byte(matchJSON), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal match %s: %w", matchIDs[i], err)
		}

		matches = append(matches, &result)
	}

	return &ListMatchesOutput{
		Matches: matches,
	}, nil
}

// DeleteMatch removes a match result and its index entry
func (r *redisRepository) DeleteMatch(ctx context.Context, input *DeleteMatchInput) error {
	if input == nil || input.MatchID == "" {
		return errors.New("input and match ID cannot be empty")
	}

	matchKey := fmt.Sprintf("%s%s", matchKeyPrefix, input.MatchID)

	pipe := r.client.Pipeline()
	deleted := pipe.Del(ctx, matchKey)
	pipe.ZRem(ctx, matchesByPlayedAtKey, input.MatchID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	if deleted.Val() == 0 {
		return ErrMatchNotFound
	}

	return nil
}

// DeleteMatchOp returns a transaction operation removing the match
// record and its index entry
func (r *redisRepository) DeleteMatchOp(matchID string) (txn.Op, error) {
	if matchID == "" {
		return nil, errors.New("match ID cannot be empty")
	}

	matchKey := fmt.Sprintf("%s%s", matchKeyPrefix, matchID)

	return func(ctx context.Context, pipe redis.Pipeliner) error {
		pipe.Del(ctx, matchKey)
		pipe.ZRem(ctx, matchesByPlayedAtKey, matchID)
		return nil
	}, nil
}
