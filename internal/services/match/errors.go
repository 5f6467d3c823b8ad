package match

// MatchError is a custom error type for match recording errors
type MatchError string

// Error implements the error interface
func (e MatchError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        MatchError = "config cannot be nil"
	ErrNilPlayerRepo    MatchError = "player repository cannot be nil"
	ErrNilMatchRepo     MatchError = "match repository cannot be nil"
	ErrNilTxnRunner     MatchError = "transaction runner cannot be nil"
	ErrNilClock         MatchError = "clock cannot be nil"
	ErrNilUUIDGenerator MatchError = "UUID generator cannot be nil"
	ErrNilInput         MatchError = "input cannot be nil"

	ErrInvalidGameMode   MatchError = "invalid game mode"
	ErrRankedCricket     MatchError = "cricket matches cannot be ranked"
	ErrRankedMultiplayer MatchError = "ranked matches must have exactly two players"
	ErrSamePlayer        MatchError = "a player cannot play against themselves"
	ErrInvalidWinner     MatchError = "winner must be one of the match players"
)
