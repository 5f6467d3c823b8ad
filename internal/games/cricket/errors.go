package cricket

// GameError is a custom error type for cricket engine errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig         GameError = "config cannot be nil"
	ErrTooFewPlayers     GameError = "at least two players are required"
	ErrGameOver          GameError = "game is already over"
	ErrInvalidTarget     GameError = "not a cricket target"
	ErrInvalidMultiplier GameError = "multiplier must be 1, 2 or 3"
	ErrTripleBull        GameError = "the bull has no triple"
	ErrTurnComplete      GameError = "all three darts have been thrown"
	ErrNoDartsThrown     GameError = "no darts thrown this turn"
	ErrNothingToUndo     GameError = "no dart to undo this turn"
	ErrGameNotOver       GameError = "game is not over yet"
)
