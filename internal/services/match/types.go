package match

import (
	"github.com/tallidarts/tally/internal/models"
)

// RecordMatchInput contains the outcome of a finished match.
//
// For 1v1 matches the Player1*/Player2* fields describe both sides and
// Players stays empty. Matches with more than two participants fill
// Players instead and must not be ranked.
type RecordMatchInput struct {
	Player1ID string
	Player2ID string

	// WinnerID identifies the match winner
	WinnerID string

	Player1Legs int
	Player2Legs int

	// Per-player average turn score for the match
	Player1Avg float64
	Player2Avg float64

	Player1OneEighties int
	Player2OneEighties int

	// Best leg-winning score per player; zero when no checkout was hit
	Player1HighestCheckout int
	Player2HighestCheckout int

	// Players carries the participant list for matches with more than
	// two players
	Players []models.PlayerLegResult

	GameMode  models.GameMode
	LegsToWin int

	// IsRanked applies rating and counter updates when set
	IsRanked bool
}

// RecordMatchOutput contains the result of recording a match
type RecordMatchOutput struct {
	Match *models.MatchResult
}

// GetMatchInput contains parameters for retrieving a match
type GetMatchInput struct {
	MatchID string
}

// GetMatchOutput contains the retrieved match
type GetMatchOutput struct {
	Match *models.MatchResult
}

// ListMatchesInput contains parameters for listing matches
type ListMatchesInput struct {
	// Limit caps the number of results; zero means no limit
	Limit int
}

// ListMatchesOutput contains the listed matches
type ListMatchesOutput struct {
	Matches []*models.MatchResult
}

// DeleteMatchInput contains parameters for deleting a match
type DeleteMatchInput struct {
	MatchID string
}
