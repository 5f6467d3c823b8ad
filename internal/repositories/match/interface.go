package match

import (
	"context"

	"github.com/tallidarts/tally/internal/models"
	"github.com/tallidarts/tally/internal/repositories/txn"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/tallidarts/tally/internal/repositories/match Repository

// Repository defines the interface for match result persistence
type Repository interface {
	// SaveMatch persists a match result
	SaveMatch(ctx context.Context, input *SaveMatchInput) error

	// GetMatch retrieves a match result by ID
	GetMatch(ctx context.Context, input *GetMatchInput) (*models.MatchResult, error)

	// ListMatches retrieves match results, newest first
	ListMatches(ctx context.Context, input *ListMatchesInput) (*ListMatchesOutput, error)

	// DeleteMatch removes a match result
	DeleteMatch(ctx context.Context, input *DeleteMatchInput) error

	// SaveMatchOp returns a transaction operation persisting the match,
	// for grouping with other writes
	SaveMatchOp(result *models.MatchResult) (txn.Op, error)

	// DeleteMatchOp returns a transaction operation removing the match,
	// for grouping with other writes
	DeleteMatchOp(matchID string) (txn.Op, error)
}
