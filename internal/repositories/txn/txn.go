// Package txn provides a small unit of work over Redis. Repositories
// expose operations that enqueue their commands onto a transaction
// pipeline, and a Runner commits every collected operation in a
// single MULTI/EXEC, so multi-record updates land all-or-nothing.
package txn

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Op enqueues one repository operation onto a transaction pipeline
type Op func(ctx context.Context, pipe redis.Pipeliner) error

//go:generate mockgen -package=mocks -destination=mocks/mock_runner.go github.com/tallidarts/tally/internal/repositories/txn Runner

// Runner commits a set of repository operations atomically
type Runner interface {
	// Run applies every operation in one transaction; either all of
	// them take effect or none do
	Run(ctx context.Context, ops ...Op) error
}

// Config holds configuration for the Redis runner
type Config struct {
	// Redis client shared with the repositories
	RedisClient *redis.Client
}

// RedisRunner implements Runner using a Redis transaction pipeline
type RedisRunner struct {
	client *redis.Client
}

// NewRedis creates a runner backed by the given Redis client
func NewRedis(cfg *Config) (*RedisRunner, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	return &RedisRunner{
		client: cfg.RedisClient,
	}, nil
}

// Run collects every operation onto one transaction pipeline and
// executes it
func (r *RedisRunner) Run(ctx context.Context, ops ...Op) error {
	if len(ops) == 0 {
		return nil
	}

	pipe := r.client.TxPipeline()
	for _, op := range ops {
		if err := op(ctx, pipe); err != nil {
			pipe.Discard()
			return fmt.Errorf("failed to build transaction: %w", err)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
