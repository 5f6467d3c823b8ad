package x01

// GameError is a custom error type for x01 engine errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig            GameError = "config cannot be nil"
	ErrTooFewPlayers        GameError = "at least two players are required"
	ErrInvalidStartingScore GameError = "starting score must be 301 or 501"
	ErrInvalidLegsToWin     GameError = "legs to win must be at least 1"
	ErrInvalidScore         GameError = "turn score must be between 0 and 180"
	ErrMatchOver            GameError = "match is already over"
	ErrLegWinPending        GameError = "a leg win is awaiting confirmation"
	ErrNoPendingLegWin      GameError = "no leg win is awaiting confirmation"
	ErrNothingToUndo        GameError = "no turn to undo"
	ErrInvalidPlayerIndex   GameError = "player index out of range"
	ErrInvalidThrowIndex    GameError = "throw index out of range"
	ErrMatchNotOver         GameError = "match is not over yet"
)
