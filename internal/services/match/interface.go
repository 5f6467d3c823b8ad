package match

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/tallidarts/tally/internal/services/match Service

// Service defines the interface for recording and reverting matches
type Service interface {
	// RecordMatch persists a finished match. Ranked matches update both
	// players' ratings and counters in the same transaction as the
	// match record; practice matches store zero deltas and leave the
	// players untouched.
	RecordMatch(ctx context.Context, input *RecordMatchInput) (*RecordMatchOutput, error)

	// GetMatch retrieves a stored match result
	GetMatch(ctx context.Context, input *GetMatchInput) (*GetMatchOutput, error)

	// ListMatches retrieves stored match results, newest first
	ListMatches(ctx context.Context, input *ListMatchesInput) (*ListMatchesOutput, error)

	// DeleteMatch removes a match and reverts the exact rating deltas
	// and counter changes it applied when recorded
	DeleteMatch(ctx context.Context, input *DeleteMatchInput) error

	// ResetAllStats restores every player to default ratings and clears
	// the match history
	ResetAllStats(ctx context.Context) error
}
