package models

import (
	"time"
)

// PlayerGroup separates the house roster from visiting players
type PlayerGroup string

const (
	// GroupHouse is the regular roster
	GroupHouse PlayerGroup = "house"

	// GroupVisitor is anyone playing as a guest
	GroupVisitor PlayerGroup = "visitor"
)

// DefaultElo is the rating every new player starts with
const DefaultElo = 1000

// Player represents a persisted player with lifetime statistics
type Player struct {
	// ID is the unique identifier for the player
	ID string `json:"id"`

	// Name is the display name of the player
	Name string `json:"name"`

	// Group is the roster the player belongs to
	Group PlayerGroup `json:"group"`

	// Elo is the overall rating across both x01 modes
	Elo float64 `json:"elo"`

	// Elo301 and Elo501 are the game-mode specific ratings,
	// updated independently of the overall rating
	Elo301 float64 `json:"elo301"`
	Elo501 float64 `json:"elo501"`

	// Win/loss counters for ranked matches
	Wins   int `json:"wins"`
	Losses int `json:"losses"`

	Wins301   int `json:"wins301"`
	Losses301 int `json:"losses301"`
	Wins501   int `json:"wins501"`
	Losses501 int `json:"losses501"`

	// Leg counters across all ranked matches
	LegsWon  int `json:"legs_won"`
	LegsLost int `json:"legs_lost"`

	// OneEighties is the lifetime count of 180 turns
	OneEighties int `json:"one_eighties"`

	// HighestCheckout is the best leg-winning score the player has hit
	HighestCheckout int `json:"highest_checkout"`

	// Profile fields
	Club           string `json:"club"`
	EntranceSong   string `json:"entrance_song"`
	FavoritePlayer string `json:"favorite_player"`
	DartsModel     string `json:"darts_model"`

	// CreatedAt is when the player was added to the roster
	CreatedAt time.Time `json:"created_at"`
}

// NewPlayer returns a player with default ratings and zeroed counters
func NewPlayer(id, name string, group PlayerGroup, createdAt time.Time) *Player {
	return &Player{
		ID:        id,
		Name:      name,
		Group:     group,
		Elo:       DefaultElo,
		Elo301:    DefaultElo,
		Elo501:    DefaultElo,
		CreatedAt: createdAt,
	}
}

// EloFor returns the mode-specific rating for an x01 game mode.
// Cricket has no mode rating; it falls back to the overall rating.
func (p *Player) EloFor(mode GameMode) float64 {
	switch mode {
	case GameMode301:
		return p.Elo301
	case GameMode501:
		return p.Elo501
	default:
		return p.Elo
	}
}

// ResetStats restores the default rating and clears every counter,
// leaving identity and profile fields untouched
func (p *Player) ResetStats() {
	p.Elo = DefaultElo
	p.Elo301 = DefaultElo
	p.Elo501 = DefaultElo
	p.Wins = 0
	p.Losses = 0
	p.Wins301 = 0
	p.Losses301 = 0
	p.Wins501 = 0
	p.Losses501 = 0
	p.LegsWon = 0
	p.LegsLost = 0
	p.OneEighties = 0
	p.HighestCheckout = 0
}
