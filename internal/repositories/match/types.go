package match

import "github.com/tallidarts/tally/internal/models"

// SaveMatchInput contains parameters for saving a match result
type SaveMatchInput struct {
	Match *models.MatchResult
}

// GetMatchInput contains parameters for retrieving a match result
type GetMatchInput struct {
	MatchID string
}

// ListMatchesInput contains parameters for listing match results
type ListMatchesInput struct {
	// Limit caps the number of results; zero means no limit
	Limit int
}

// ListMatchesOutput contains the result of listing match results
type ListMatchesOutput struct {
	Matches []*models.MatchResult
}

// DeleteMatchInput contains parameters for deleting a match result
type DeleteMatchInput struct {
	MatchID string
}
