package x01

import (
	"math"

	"github.com/tallidarts/tally/internal/models"
)

// Starting scores for the two supported x01 modes
const (
	StartingScore301 = 301
	StartingScore501 = 501
)

// PlayerInfo identifies one participant when setting up a game
type PlayerInfo struct {
	// ID is the persisted player id
	ID string

	// Name is the display name shown on the scoreboard
	Name string
}

// Config holds configuration for a new x01 game
type Config struct {
	// Players in throwing order; the first player starts leg 1
	Players []PlayerInfo

	// StartingScore is 301 or 501
	StartingScore int

	// LegsToWin is how many legs a player needs to take the match
	LegsToWin int
}

// Player is the transient per-match state for one participant. It is
// owned by the engine for the lifetime of the match and discarded
// afterwards.
type Player struct {
	// ID is the persisted player id
	ID string

	// Name is the display name
	Name string

	// Remaining is the score left in the current leg
	Remaining int

	// LegsWon is the number of legs taken so far this match
	LegsWon int

	// Throws holds every recorded turn score of the current leg
	Throws []int

	// LastScore is the most recent applied turn score, nil after a
	// bust or before the first turn of a leg
	LastScore *int

	// OneEighties counts 180 turns across the whole match
	OneEighties int

	// HighestCheckout is the best confirmed leg-winning score
	HighestCheckout int
}

// Average returns the mean turn score of the current leg, rounded to
// 2 decimals
func (p *Player) Average() float64 {
	if len(p.Throws) == 0 {
		return 0
	}

	total := 0
	for _, t := range p.Throws {
		total += t
	}
	return math.Round(float64(total)/float64(len(p.Throws))*100) / 100
}

// PendingLegWin marks a checkout awaiting confirmation
type PendingLegWin struct {
	// WinnerIndex is the player who hit zero
	WinnerIndex int

	// WinnerName is their display name
	WinnerName string
}

// TurnResult describes the outcome of a submitted turn
type TurnResult struct {
	// PlayerIndex is the player who threw
	PlayerIndex int

	// Bust reports that the turn was discarded
	Bust bool

	// LegWon reports that the player hit exactly zero; the win is
	// pending until confirmed
	LegWon bool

	// Remaining is the thrower's score after the turn
	Remaining int

	// NextPlayerIndex is whose turn it is now
	NextPlayerIndex int
}

// LegResult describes the outcome of a confirmed leg win
type LegResult struct {
	// WinnerIndex is the player whose leg counter was incremented
	WinnerIndex int

	// LegsWon is the winner's new leg count
	LegsWon int

	// MatchOver reports that the winner reached the configured legs
	MatchOver bool

	// Leg is the leg number about to be played (unchanged when the
	// match is over)
	Leg int

	// StarterIndex is who throws first in the new leg
	StarterIndex int
}

// PlayerSummary is one participant's final line for match recording
type PlayerSummary struct {
	ID              string
	Name            string
	Legs            int
	Average         float64
	OneEighties     int
	HighestCheckout int
}

// Summary is the completed match outcome handed to the recorder
type Summary struct {
	GameMode        models.GameMode
	LegsToWin       int
	WinnerIndex     int
	HighestCheckout int
	Players         []PlayerSummary
}

// lastAction captures what a single undo needs to restore
type lastAction struct {
	playerIndex int
	score       int
	remaining   int
	lastScore   *int
}
