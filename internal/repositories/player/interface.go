package player

import (
	"context"

	"github.com/tallidarts/tally/internal/models"
	"github.com/tallidarts/tally/internal/repositories/txn"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/tallidarts/tally/internal/repositories/player Repository

// Repository defines the interface for player data persistence
type Repository interface {
	// SavePlayer persists a player
	SavePlayer(ctx context.Context, input *SavePlayerInput) error

	// GetPlayer retrieves a player by ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// ListPlayers retrieves all players ordered by overall rating,
	// highest first
	ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error)

	// DeletePlayer removes a player
	DeletePlayer(ctx context.Context, input *DeletePlayerInput) error

	// SavePlayerOp returns a transaction operation persisting the
	// player, for grouping with other writes
	SavePlayerOp(player *models.Player) (txn.Op, error)
}
