// Package elo implements the rating math applied to ranked matches.
//
// Updates follow the classic logistic formula with a fixed K-factor.
// Deltas applied to a player are persisted on the match record, so a
// deleted match can be reverted by exact subtraction instead of
// recomputation.
package elo

import (
	"math"
)

const (
	// KFactor controls how much a single match moves a rating
	KFactor = 32
)

// ExpectedScore returns the probability of the first player beating
// the second, given their current ratings
func ExpectedScore(rating, opponentRating float64) float64 {
	return 1 / (1 + math.Pow(10, (opponentRating-rating)/400))
}

// NewRating returns a player's rating after a match against a single
// opponent. The result is rounded to the nearest integer, matching
// per-match display values; accumulated ratings stay fractional.
func NewRating(rating, opponentRating float64, won bool) float64 {
	expected := ExpectedScore(rating, opponentRating)
	actual := 0.0
	if won {
		actual = 1.0
	}
	return math.Round(rating + KFactor*(actual-expected))
}

// Outcome holds both sides of a single 1v1 rating exchange
type Outcome struct {
	NewRatingA float64
	NewRatingB float64
	ChangeA    float64
	ChangeB    float64
}

// Match computes both players' new ratings from the same pre-match
// pair. The exchange is zero-sum up to integer rounding of each side.
func Match(ratingA, ratingB float64, aWon bool) Outcome {
	newA := NewRating(ratingA, ratingB, aWon)
	newB := NewRating(ratingB, ratingA, !aWon)
	return Outcome{
		NewRatingA: newA,
		NewRatingB: newB,
		ChangeA:    newA - ratingA,
		ChangeB:    newB - ratingB,
	}
}

// PlayerRating identifies one participant in a multi-player game
type PlayerRating struct {
	ID     string
	Rating float64
}

// Change is one participant's net rating movement
type Change struct {
	ID        string
	NewRating float64
	Change    float64
}

// Multiplayer computes each participant's net change as the mean of
// the pairwise changes against every other participant, rounded to an
// integer. Practice matches never apply rating changes, so no caller
// currently invokes this for persistence.
func Multiplayer(players []PlayerRating, winnerID string) []Change {
	changes := make([]Change, 0, len(players))

	for _, p := range players {
		total := 0.0
		for _, opponent := range players {
			if opponent.ID == p.ID {
				continue
			}
			won := p.ID == winnerID
			total += NewRating(p.Rating, opponent.Rating, won) - p.Rating
		}

		avg := math.Round(total / float64(len(players)-1))
		changes = append(changes, Change{
			ID:        p.ID,
			NewRating: p.Rating + avg,
			Change:    avg,
		})
	}

	return changes
}

// Revert undoes a previously applied delta. The delta is the stored
// value from the match record, so the subtraction is exact regardless
// of any rounding in the forward computation.
func Revert(current, appliedChange float64) float64 {
	return Round2(current - appliedChange)
}

// Round2 rounds to 2 decimal places, the precision persisted ratings
// are kept at to avoid drift across repeated updates
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
