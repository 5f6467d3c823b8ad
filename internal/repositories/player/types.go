package player

import "github.com/tallidarts/tally/internal/models"

// SavePlayerInput contains parameters for saving a player
type SavePlayerInput struct {
	Player *models.Player
}

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	PlayerID string
}

// ListPlayersInput contains parameters for listing players
type ListPlayersInput struct {
	// Group filters by roster when set
	Group models.PlayerGroup
}

// ListPlayersOutput contains the result of listing players
type ListPlayersOutput struct {
	Players []*models.Player
}

// DeletePlayerInput contains parameters for deleting a player
type DeletePlayerInput struct {
	PlayerID string
}
