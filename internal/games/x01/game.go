// Package x01 implements the 301/501 leg scoring state machine.
//
// The engine owns all transient match state. Each submitted turn is
// validated and applied to completion before the next is accepted;
// nothing here touches persistence. A leg-winning checkout stays
// pending until confirmed so a mis-entered score can be taken back.
package x01

import (
	"github.com/tallidarts/tally/internal/models"
)

// Game is a single in-progress x01 match
type Game struct {
	players       []*Player
	startingScore int
	legsToWin     int

	currentPlayer int
	currentLeg    int

	pendingLegWin *PendingLegWin
	matchOver     bool
	winnerIndex   int

	// Only the most recent recorded turn is undoable
	last *lastAction
}

// New creates a game with every player at the starting score. The
// first configured player starts leg 1.
func New(cfg *Config) (*Game, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if len(cfg.Players) < 2 {
		return nil, ErrTooFewPlayers
	}

	if cfg.StartingScore != StartingScore301 && cfg.StartingScore != StartingScore501 {
		return nil, ErrInvalidStartingScore
	}

	if cfg.LegsToWin < 1 {
		return nil, ErrInvalidLegsToWin
	}

	players := make([]*Player, 0, len(cfg.Players))
	for _, info := range cfg.Players {
		players = append(players, &Player{
			ID:        info.ID,
			Name:      info.Name,
			Remaining: cfg.StartingScore,
		})
	}

	return &Game{
		players:       players,
		startingScore: cfg.StartingScore,
		legsToWin:     cfg.LegsToWin,
		currentLeg:    1,
	}, nil
}

// SubmitTurn applies a turn score for the current player.
//
// A turn that would leave the remaining score below zero, or at the
// unreachable 1, is a bust: nothing is recorded and the turn passes
// to the next player. Hitting exactly zero parks the leg win as
// pending until ConfirmLegWin or CancelLegWin.
func (g *Game) SubmitTurn(score int) (*TurnResult, error) {
	if g.matchOver {
		return nil, ErrMatchOver
	}

	if g.pendingLegWin != nil {
		return nil, ErrLegWinPending
	}

	if score < 0 || score > 180 {
		return nil, ErrInvalidScore
	}

	thrower := g.currentPlayer
	p := g.players[thrower]
	newRemaining := p.Remaining - score

	if newRemaining < 0 || newRemaining == 1 {
		// Bust: the turn is discarded and does not become the
		// undoable action
		p.LastScore = nil
		g.advance()

		return &TurnResult{
			PlayerIndex:     thrower,
			Bust:            true,
			Remaining:       p.Remaining,
			NextPlayerIndex: g.currentPlayer,
		}, nil
	}

	g.last = &lastAction{
		playerIndex: thrower,
		score:       score,
		remaining:   p.Remaining,
		lastScore:   p.LastScore,
	}

	applied := score
	p.Throws = append(p.Throws, score)
	p.LastScore = &applied
	if score == 180 {
		p.OneEighties++
	}

	if newRemaining == 0 {
		p.Remaining = 0
		g.pendingLegWin = &PendingLegWin{
			WinnerIndex: thrower,
			WinnerName:  p.Name,
		}

		return &TurnResult{
			PlayerIndex:     thrower,
			LegWon:          true,
			Remaining:       0,
			NextPlayerIndex: thrower,
		}, nil
	}

	p.Remaining = newRemaining
	g.advance()

	return &TurnResult{
		PlayerIndex:     thrower,
		Remaining:       newRemaining,
		NextPlayerIndex: g.currentPlayer,
	}, nil
}

// ConfirmLegWin banks the pending leg for its winner. When the winner
// reaches the configured leg count the match is over; otherwise a new
// leg starts and the starter alternates by leg number, regardless of
// who won.
func (g *Game) ConfirmLegWin() (*LegResult, error) {
	if g.pendingLegWin == nil {
		return nil, ErrNoPendingLegWin
	}

	winnerIdx := g.pendingLegWin.WinnerIndex
	winner := g.players[winnerIdx]
	winner.LegsWon++

	if winner.LastScore != nil && *winner.LastScore > winner.HighestCheckout {
		winner.HighestCheckout = *winner.LastScore
	}

	g.pendingLegWin = nil
	g.last = nil

	if winner.LegsWon >= g.legsToWin {
		g.matchOver = true
		g.winnerIndex = winnerIdx

		return &LegResult{
			WinnerIndex:  winnerIdx,
			LegsWon:      winner.LegsWon,
			MatchOver:    true,
			Leg:          g.currentLeg,
			StarterIndex: g.currentPlayer,
		}, nil
	}

	g.currentLeg++
	starter := (g.currentLeg - 1) % len(g.players)

	for _, p := range g.players {
		p.Remaining = g.startingScore
		p.Throws = nil
		p.LastScore = nil
	}
	g.currentPlayer = starter

	return &LegResult{
		WinnerIndex:  winnerIdx,
		LegsWon:      winner.LegsWon,
		Leg:          g.currentLeg,
		StarterIndex: starter,
	}, nil
}

// CancelLegWin takes back the checkout that triggered the pending leg
// win, fully restoring the thrower's state and returning the turn to
// them
func (g *Game) CancelLegWin() error {
	if g.pendingLegWin == nil {
		return ErrNoPendingLegWin
	}

	g.pendingLegWin = nil
	if g.last != nil {
		g.undoLast()
	}

	return nil
}

// UndoLastTurn reverses the most recent recorded turn and returns
// control to the player who threw it. Busted turns record nothing, so
// undo after a bust reverses the last turn that actually scored.
func (g *Game) UndoLastTurn() error {
	if g.pendingLegWin != nil {
		return ErrLegWinPending
	}

	if g.last == nil {
		return ErrNothingToUndo
	}

	g.undoLast()
	return nil
}

func (g *Game) undoLast() {
	la := g.last
	p := g.players[la.playerIndex]

	p.Throws = p.Throws[:len(p.Throws)-1]
	p.Remaining = la.remaining
	p.LastScore = la.lastScore
	if la.score == 180 {
		p.OneEighties--
	}

	g.currentPlayer = la.playerIndex
	g.last = nil
}

// EditThrow replaces a historical throw value and recomputes the
// player's remaining score and 180 count from the full throw list.
//
// The edit is applied as-is: bust and leg-win conditions are not
// re-evaluated retroactively, so an edit can leave a remaining score
// the live rules would have rejected. This matches the correction
// tool's intent of fixing typos, not replaying the leg.
func (g *Game) EditThrow(playerIndex, throwIndex, value int) error {
	if playerIndex < 0 || playerIndex >= len(g.players) {
		return ErrInvalidPlayerIndex
	}

	p := g.players[playerIndex]
	if throwIndex < 0 || throwIndex >= len(p.Throws) {
		return ErrInvalidThrowIndex
	}

	if value < 0 || value > 180 {
		return ErrInvalidScore
	}

	p.Throws[throwIndex] = value

	total := 0
	oneEighties := 0
	for _, t := range p.Throws {
		total += t
		if t == 180 {
			oneEighties++
		}
	}
	p.Remaining = g.startingScore - total
	p.OneEighties = oneEighties

	if throwIndex == len(p.Throws)-1 {
		applied := value
		p.LastScore = &applied
	}

	return nil
}

// Summary returns the final match outcome for recording. It is only
// available once the match is over.
func (g *Game) Summary() (*Summary, error) {
	if !g.matchOver {
		return nil, ErrMatchNotOver
	}

	mode := models.GameMode501
	if g.startingScore == StartingScore301 {
		mode = models.GameMode301
	}

	highest := 0
	players := make([]PlayerSummary, 0, len(g.players))
	for _, p := range g.players {
		if p.HighestCheckout > highest {
			highest = p.HighestCheckout
		}
		players = append(players, PlayerSummary{
			ID:              p.ID,
			Name:            p.Name,
			Legs:            p.LegsWon,
			Average:         p.Average(),
			OneEighties:     p.OneEighties,
			HighestCheckout: p.HighestCheckout,
		})
	}

	return &Summary{
		GameMode:        mode,
		LegsToWin:       g.legsToWin,
		WinnerIndex:     g.winnerIndex,
		HighestCheckout: highest,
		Players:         players,
	}, nil
}

// CurrentPlayerIndex returns whose turn it is
func (g *Game) CurrentPlayerIndex() int {
	return g.currentPlayer
}

// CurrentLeg returns the 1-indexed leg being played
func (g *Game) CurrentLeg() int {
	return g.currentLeg
}

// StartingScore returns the configured starting score
func (g *Game) StartingScore() int {
	return g.startingScore
}

// LegsToWin returns the configured match length
func (g *Game) LegsToWin() int {
	return g.legsToWin
}

// Players returns the live player states in throwing order
func (g *Game) Players() []*Player {
	return g.players
}

// PendingLegWin returns the unconfirmed leg win, or nil
func (g *Game) PendingLegWin() *PendingLegWin {
	if g.pendingLegWin == nil {
		return nil
	}
	pending := *g.pendingLegWin
	return &pending
}

// Over reports whether the match has been decided
func (g *Game) Over() bool {
	return g.matchOver
}

// WinnerIndex returns the match winner once the game is over
func (g *Game) WinnerIndex() (int, bool) {
	if !g.matchOver {
		return 0, false
	}
	return g.winnerIndex, true
}

func (g *Game) advance() {
	g.currentPlayer = (g.currentPlayer + 1) % len(g.players)
}
