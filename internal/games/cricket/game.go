// Package cricket implements the cricket scoring state machine.
//
// Each of the seven targets is closed with three marks. Marks beyond
// a player's third score points at the target's face value, but only
// while at least one opponent still has the target open. The first
// player to close everything while holding at least as many points as
// every opponent wins on the spot.
package cricket

// Target is one of the seven cricket numbers. The bull is 25.
type Target int

// Bull is the centre target
const Bull Target = 25

// Targets lists the cricket numbers in board order
var Targets = []Target{20, 19, 18, 17, 16, 15, Bull}

// marksToClose is how many marks shut a target
const marksToClose = 3

// dartsPerTurn is how many darts a player throws per visit
const dartsPerTurn = 3

// Valid reports whether t is a cricket target
func (t Target) Valid() bool {
	if t == Bull {
		return true
	}
	return t >= 15 && t <= 20
}

// Points is the face value a surplus mark scores
func (t Target) Points() int {
	return int(t)
}

// PlayerInfo identifies one participant when setting up a game
type PlayerInfo struct {
	ID   string
	Name string
}

// Config holds configuration for a new cricket game
type Config struct {
	// Players in throwing order
	Players []PlayerInfo
}

// Player is the transient per-game state for one participant
type Player struct {
	// ID is the persisted player id
	ID string

	// Name is the display name
	Name string

	// Marks counts hits per target, capped at 3
	Marks map[Target]int

	// Points scored on open targets
	Points int
}

// ClosedAll reports whether the player has three marks on every
// target
func (p *Player) ClosedAll() bool {
	for _, t := range Targets {
		if p.Marks[t] < marksToClose {
			return false
		}
	}
	return true
}

// dart records one thrown dart so it can be undone exactly
type dart struct {
	target    Target // 0 for a miss
	hit       bool
	prevMarks int
	points    int
	wonGame   bool
}

// HitResult describes the outcome of one scored dart
type HitResult struct {
	// Marks is the player's new mark count on the target
	Marks int

	// PointsScored is what this dart added to the player's points
	PointsScored int

	// DartsThrown is how many darts the turn has used
	DartsThrown int

	// GameWon reports that this dart decided the game
	GameWon bool
}

// PlayerSummary is one participant's final line for match recording
type PlayerSummary struct {
	ID     string
	Name   string
	Points int
}

// Summary is the completed game outcome handed to the recorder
type Summary struct {
	WinnerIndex int
	Players     []PlayerSummary
}

// Game is a single in-progress cricket game
type Game struct {
	players       []*Player
	currentPlayer int
	dartsThrown   int

	// Darts of the current turn, for undo
	turn []dart

	gameOver    bool
	winnerIndex int
}

// New creates a cricket game with every target open
func New(cfg *Config) (*Game, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if len(cfg.Players) < 2 {
		return nil, ErrTooFewPlayers
	}

	players := make([]*Player, 0, len(cfg.Players))
	for _, info := range cfg.Players {
		marks := make(map[Target]int, len(Targets))
		for _, t := range Targets {
			marks[t] = 0
		}
		players = append(players, &Player{
			ID:    info.ID,
			Name:  info.Name,
			Marks: marks,
		})
	}

	return &Game{players: players}, nil
}

// Hit scores a dart on a target for the current player. Marks past
// the third count as points only while the target is still open for
// someone; the win check runs immediately after every hit.
func (g *Game) Hit(target Target, multiplier int) (*HitResult, error) {
	if g.gameOver {
		return nil, ErrGameOver
	}

	if g.dartsThrown >= dartsPerTurn {
		return nil, ErrTurnComplete
	}

	if !target.Valid() {
		return nil, ErrInvalidTarget
	}

	if multiplier < 1 || multiplier > 3 {
		return nil, ErrInvalidMultiplier
	}

	if target == Bull && multiplier == 3 {
		return nil, ErrTripleBull
	}

	p := g.players[g.currentPlayer]
	prevMarks := p.Marks[target]

	closingMarks := marksToClose - prevMarks
	if closingMarks < 0 {
		closingMarks = 0
	}
	scoringMarks := multiplier - closingMarks
	if scoringMarks < 0 {
		scoringMarks = 0
	}

	newMarks := prevMarks + multiplier
	if newMarks > marksToClose {
		newMarks = marksToClose
	}
	p.Marks[target] = newMarks

	points := 0
	if scoringMarks > 0 && !g.ClosedByAll(target) {
		points = target.Points() * scoringMarks
		p.Points += points
	}

	won := false
	if p.ClosedAll() {
		won = true
		for i, other := range g.players {
			if i == g.currentPlayer {
				continue
			}
			if other.Points > p.Points {
				won = false
				break
			}
		}
	}

	g.dartsThrown++
	g.turn = append(g.turn, dart{
		target:    target,
		hit:       true,
		prevMarks: prevMarks,
		points:    points,
		wonGame:   won,
	})

	if won {
		g.gameOver = true
		g.winnerIndex = g.currentPlayer
	}

	return &HitResult{
		Marks:        newMarks,
		PointsScored: points,
		DartsThrown:  g.dartsThrown,
		GameWon:      won,
	}, nil
}

// Miss consumes a dart without scoring
func (g *Game) Miss() error {
	if g.gameOver {
		return ErrGameOver
	}

	if g.dartsThrown >= dartsPerTurn {
		return ErrTurnComplete
	}

	g.dartsThrown++
	g.turn = append(g.turn, dart{})
	return nil
}

// EndTurn passes play to the next player. At least one dart must have
// been thrown.
func (g *Game) EndTurn() error {
	if g.gameOver {
		return ErrGameOver
	}

	if g.dartsThrown == 0 {
		return ErrNoDartsThrown
	}

	g.currentPlayer = (g.currentPlayer + 1) % len(g.players)
	g.dartsThrown = 0
	g.turn = nil
	return nil
}

// UndoLastDart reverses the most recent dart of the current turn,
// restoring marks and points and clearing a win the dart had decided
func (g *Game) UndoLastDart() error {
	if len(g.turn) == 0 {
		return ErrNothingToUndo
	}

	last := g.turn[len(g.turn)-1]
	g.turn = g.turn[:len(g.turn)-1]
	g.dartsThrown--

	if last.hit {
		p := g.players[g.currentPlayer]
		p.Marks[last.target] = last.prevMarks
		p.Points -= last.points
	}

	if last.wonGame {
		g.gameOver = false
		g.winnerIndex = 0
	}

	return nil
}

// ClosedByAll reports whether every participant has closed the
// target; once true, no one scores points on it again
func (g *Game) ClosedByAll(target Target) bool {
	for _, p := range g.players {
		if p.Marks[target] < marksToClose {
			return false
		}
	}
	return true
}

// Summary returns the final game outcome for recording. It is only
// available once the game is over.
func (g *Game) Summary() (*Summary, error) {
	if !g.gameOver {
		return nil, ErrGameNotOver
	}

	players := make([]PlayerSummary, 0, len(g.players))
	for _, p := range g.players {
		players = append(players, PlayerSummary{
			ID:     p.ID,
			Name:   p.Name,
			Points: p.Points,
		})
	}

	return &Summary{
		WinnerIndex: g.winnerIndex,
		Players:     players,
	}, nil
}

// CurrentPlayerIndex returns whose turn it is
func (g *Game) CurrentPlayerIndex() int {
	return g.currentPlayer
}

// DartsThrown returns how many darts the current turn has used
func (g *Game) DartsThrown() int {
	return g.dartsThrown
}

// Players returns the live player states in throwing order
func (g *Game) Players() []*Player {
	return g.players
}

// Over reports whether the game has been decided
func (g *Game) Over() bool {
	return g.gameOver
}

// WinnerIndex returns the winner once the game is over
func (g *Game) WinnerIndex() (int, bool) {
	if !g.gameOver {
		return 0, false
	}
	return g.winnerIndex, true
}
