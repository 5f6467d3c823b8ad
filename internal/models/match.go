package models

import (
	"time"
)

// GameMode identifies which game a match was played under
type GameMode string

const (
	// GameMode301 is a 301 countdown game
	GameMode301 GameMode = "301"

	// GameMode501 is a 501 countdown game
	GameMode501 GameMode = "501"

	// GameModeCricket is the cricket variant
	GameModeCricket GameMode = "cricket"
)

// Valid reports whether the mode is one of the supported games
func (m GameMode) Valid() bool {
	return m == GameMode301 || m == GameMode501 || m == GameModeCricket
}

// PlayerLegResult holds one participant's line in a multi-player match
type PlayerLegResult struct {
	PlayerID   string  `json:"player_id"`
	PlayerName string  `json:"player_name"`
	Legs       int     `json:"legs"`
	Average    float64 `json:"average"`
}

// MatchResult is a persisted, completed match.
//
// Player1EloChange and Player2EloChange are the literal signed overall
// deltas applied to the players' ratings when the match was saved.
// Deleting the match subtracts exactly these values; they are never
// recomputed.
type MatchResult struct {
	// ID is the unique identifier for the match
	ID string `json:"id"`

	Player1ID   string `json:"player1_id"`
	Player2ID   string `json:"player2_id"`
	Player1Name string `json:"player1_name"`
	Player2Name string `json:"player2_name"`

	WinnerID   string `json:"winner_id"`
	WinnerName string `json:"winner_name"`

	Player1Legs int `json:"player1_legs"`
	Player2Legs int `json:"player2_legs"`

	Player1EloChange float64 `json:"player1_elo_change"`
	Player2EloChange float64 `json:"player2_elo_change"`

	// Mode-specific deltas applied alongside the overall deltas, stored
	// for the same exact-subtraction reason
	Player1ModeEloChange float64 `json:"player1_mode_elo_change"`
	Player2ModeEloChange float64 `json:"player2_mode_elo_change"`

	// Per-player average turn score, rounded to 2 decimals
	Player1Avg float64 `json:"player1_avg"`
	Player2Avg float64 `json:"player2_avg"`

	Player1OneEighties int `json:"player1_one_eighties"`
	Player2OneEighties int `json:"player2_one_eighties"`

	// Players carries the full participant list for matches with more
	// than two players; empty for 1v1 matches
	Players []PlayerLegResult `json:"players,omitempty"`

	// GameMode is the game that was played
	GameMode GameMode `json:"game_mode"`

	// LegsToWin is the configured match length
	LegsToWin int `json:"legs_to_win"`

	// IsRanked reports whether the match affected ratings and counters
	IsRanked bool `json:"is_ranked"`

	// HighestCheckout is the best leg-winning score of the match
	HighestCheckout int `json:"highest_checkout"`

	// PlayedAt is when the match was recorded
	PlayedAt time.Time `json:"played_at"`
}
