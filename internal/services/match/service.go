package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/tallidarts/tally/internal/common/clock"
	"github.com/tallidarts/tally/internal/common/uuid"
	"github.com/tallidarts/tally/internal/elo"
	"github.com/tallidarts/tally/internal/models"
	matchRepo "github.com/tallidarts/tally/internal/repositories/match"
	playerRepo "github.com/tallidarts/tally/internal/repositories/player"
	"github.com/tallidarts/tally/internal/repositories/txn"
)

// Config holds the dependencies for the match service
type Config struct {
	// PlayerRepo is the player repository
	PlayerRepo playerRepo.Repository

	// MatchRepo is the match repository
	MatchRepo matchRepo.Repository

	// TxnRunner commits multi-record updates atomically
	TxnRunner txn.Runner

	// Clock provides the current time
	Clock clock.Clock

	// UUIDGenerator creates match IDs
	UUIDGenerator uuid.UUID
}

// service implements the Service interface
type service struct {
	playerRepo    playerRepo.Repository
	matchRepo     matchRepo.Repository
	txnRunner     txn.Runner
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// New creates a new match service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}

	if cfg.MatchRepo == nil {
		return nil, ErrNilMatchRepo
	}

	if cfg.TxnRunner == nil {
		return nil, ErrNilTxnRunner
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		playerRepo:    cfg.PlayerRepo,
		matchRepo:     cfg.MatchRepo,
		txnRunner:     cfg.TxnRunner,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// RecordMatch persists a finished match. Ranked matches read both
// players' current persisted ratings, apply independent overall and
// mode-specific updates, and commit the player saves together with the
// match record in one transaction. Practice matches store zero deltas
// and never touch the players.
func (s *service) RecordMatch(ctx context.Context, input *RecordMatchInput) (*RecordMatchOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if !input.GameMode.Valid() {
		return nil, ErrInvalidGameMode
	}

	if input.IsRanked {
		if input.GameMode == models.GameModeCricket {
			return nil, ErrRankedCricket
		}
		if len(input.Players) > 0 {
			return nil, ErrRankedMultiplayer
		}
	}

	if len(input.Players) > 0 {
		return s.recordMultiplayer(ctx, input)
	}

	if input.Player1ID == "" || input.Player2ID == "" {
		return nil, ErrNilInput
	}

	if input.Player1ID == input.Player2ID {
		return nil, ErrSamePlayer
	}

	if input.WinnerID != input.Player1ID && input.WinnerID != input.Player2ID {
		return nil, ErrInvalidWinner
	}

	// Ratings come from the stored records at record time, not from
	// values the caller observed earlier
	p1, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		PlayerID: input.Player1ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load player %s: %w", input.Player1ID, err)
	}

	p2, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		PlayerID: input.Player2ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load player %s: %w", input.Player2ID, err)
	}

	winnerName := p1.Name
	if input.WinnerID == p2.ID {
		winnerName = p2.Name
	}

	highestCheckout := input.Player1HighestCheckout
	if input.Player2HighestCheckout > highestCheckout {
		highestCheckout = input.Player2HighestCheckout
	}

	result := &models.MatchResult{
		ID:                 s.uuidGenerator.NewUUID(),
		Player1ID:          p1.ID,
		Player2ID:          p2.ID,
		Player1Name:        p1.Name,
		Player2Name:        p2.Name,
		WinnerID:           input.WinnerID,
		WinnerName:         winnerName,
		Player1Legs:        input.Player1Legs,
		Player2Legs:        input.Player2Legs,
		Player1Avg:         input.Player1Avg,
		Player2Avg:         input.Player2Avg,
		Player1OneEighties: input.Player1OneEighties,
		Player2OneEighties: input.Player2OneEighties,
		GameMode:           input.GameMode,
		LegsToWin:          input.LegsToWin,
		IsRanked:           input.IsRanked,
		HighestCheckout:    highestCheckout,
		PlayedAt:           s.clock.Now().UTC(),
	}

	if !input.IsRanked {
		saveMatchOp, err := s.matchRepo.SaveMatchOp(result)
		if err != nil {
			return nil, err
		}
		if err := s.txnRunner.Run(ctx, saveMatchOp); err != nil {
			return nil, err
		}
		return &RecordMatchOutput{Match: result}, nil
	}

	p1Won := input.WinnerID == p1.ID

	// Overall and mode-specific ratings update independently, each from
	// its own pre-match pair
	overall := elo.Match(p1.Elo, p2.Elo, p1Won)
	mode := elo.Match(p1.EloFor(input.GameMode), p2.EloFor(input.GameMode), p1Won)

	result.Player1EloChange = overall.ChangeA
	result.Player2EloChange = overall.ChangeB
	result.Player1ModeEloChange = mode.ChangeA
	result.Player2ModeEloChange = mode.ChangeB

	applyRankedResult(p1, input.GameMode, overall.ChangeA, mode.ChangeA, p1Won,
		input.Player1Legs, input.Player2Legs, input.Player1OneEighties, input.Player1HighestCheckout)
	applyRankedResult(p2, input.GameMode, overall.ChangeB, mode.ChangeB, !p1Won,
		input.Player2Legs, input.Player1Legs, input.Player2OneEighties, input.Player2HighestCheckout)

	saveMatchOp, err := s.matchRepo.SaveMatchOp(result)
	if err != nil {
		return nil, err
	}

	saveP1Op, err := s.playerRepo.SavePlayerOp(p1)
	if err != nil {
		return nil, err
	}

	saveP2Op, err := s.playerRepo.SavePlayerOp(p2)
	if err != nil {
		return nil, err
	}

	if err := s.txnRunner.Run(ctx, saveP1Op, saveP2Op, saveMatchOp); err != nil {
		return nil, err
	}

	return &RecordMatchOutput{Match: result}, nil
}

// recordMultiplayer persists a practice match with more than two
// participants. No ratings or counters move.
func (s *service) recordMultiplayer(ctx context.Context, input *RecordMatchInput) (*RecordMatchOutput, error) {
	winnerName := ""
	for _, p := range input.Players {
		if p.PlayerID == input.WinnerID {
			winnerName = p.PlayerName
			break
		}
	}
	if winnerName == "" {
		return nil, ErrInvalidWinner
	}

	result := &models.MatchResult{
		ID:         s.uuidGenerator.NewUUID(),
		WinnerID:   input.WinnerID,
		WinnerName: winnerName,
		Players:    input.Players,
		GameMode:   input.GameMode,
		LegsToWin:  input.LegsToWin,
		PlayedAt:   s.clock.Now().UTC(),
	}

	saveMatchOp, err := s.matchRepo.SaveMatchOp(result)
	if err != nil {
		return nil, err
	}

	if err := s.txnRunner.Run(ctx, saveMatchOp); err != nil {
		return nil, err
	}

	return &RecordMatchOutput{Match: result}, nil
}

// GetMatch retrieves a stored match result
func (s *service) GetMatch(ctx context.Context, input *GetMatchInput) (*GetMatchOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, ErrNilInput
	}

	result, err := s.matchRepo.GetMatch(ctx, &matchRepo.GetMatchInput{
		MatchID: input.MatchID,
	})
	if err != nil {
		return nil, err
	}

	return &GetMatchOutput{Match: result}, nil
}

// ListMatches retrieves stored match results, newest first
func (s *service) ListMatches(ctx context.Context, input *ListMatchesInput) (*ListMatchesOutput, error) {
	if input == nil {
		input = &ListMatchesInput{}
	}

	out, err := s.matchRepo.ListMatches(ctx, &matchRepo.ListMatchesInput{
		Limit: input.Limit,
	})
	if err != nil {
		return nil, err
	}

	return &ListMatchesOutput{Matches: out.Matches}, nil
}

// DeleteMatch removes a match and, for ranked matches, reverts both
// players by subtracting the exact deltas stored on the record. The
// player saves and the match deletion commit in one transaction.
func (s *service) DeleteMatch(ctx context.Context, input *DeleteMatchInput) error {
	if input == nil || input.MatchID == "" {
		return ErrNilInput
	}

	m, err := s.matchRepo.GetMatch(ctx, &matchRepo.GetMatchInput{
		MatchID: input.MatchID,
	})
	if err != nil {
		return err
	}

	ops := make([]txn.Op, 0, 3)

	if m.IsRanked {
		p1Won := m.WinnerID == m.Player1ID

		op, err := s.revertPlayerOp(ctx, m.Player1ID, m.GameMode, m.Player1EloChange, m.Player1ModeEloChange,
			p1Won, m.Player1Legs, m.Player2Legs, m.Player1OneEighties)
		if err != nil {
			return err
		}
		if op != nil {
			ops = append(ops, op)
		}

		op, err = s.revertPlayerOp(ctx, m.Player2ID, m.GameMode, m.Player2EloChange, m.Player2ModeEloChange,
			!p1Won, m.Player2Legs, m.Player1Legs, m.Player2OneEighties)
		if err != nil {
			return err
		}
		if op != nil {
			ops = append(ops, op)
		}
	}

	deleteOp, err := s.matchRepo.DeleteMatchOp(m.ID)
	if err != nil {
		return err
	}
	ops = append(ops, deleteOp)

	return s.txnRunner.Run(ctx, ops...)
}

// revertPlayerOp builds the save operation undoing one player's share
// of a ranked match. Returns a nil op for players deleted since the
// match was recorded.
func (s *service) revertPlayerOp(ctx context.Context, playerID string, mode models.GameMode,
	overallChange, modeChange float64, won bool, legsWon, legsLost, oneEighties int) (txn.Op, error) {

	p, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		PlayerID: playerID,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load player %s: %w", playerID, err)
	}

	p.Elo = elo.Revert(p.Elo, overallChange)

	switch mode {
	case models.GameMode301:
		p.Elo301 = elo.Revert(p.Elo301, modeChange)
		if won {
			p.Wins301 = decrement(p.Wins301, 1)
		} else {
			p.Losses301 = decrement(p.Losses301, 1)
		}
	case models.GameMode501:
		p.Elo501 = elo.Revert(p.Elo501, modeChange)
		if won {
			p.Wins501 = decrement(p.Wins501, 1)
		} else {
			p.Losses501 = decrement(p.Losses501, 1)
		}
	}

	if won {
		p.Wins = decrement(p.Wins, 1)
	} else {
		p.Losses = decrement(p.Losses, 1)
	}

	p.LegsWon = decrement(p.LegsWon, legsWon)
	p.LegsLost = decrement(p.LegsLost, legsLost)
	p.OneEighties = decrement(p.OneEighties, oneEighties)

	// HighestCheckout stays; there is no record of the previous best

	return s.playerRepo.SavePlayerOp(p)
}

// ResetAllStats restores every player to default ratings and clears
// the match history in one transaction
func (s *service) ResetAllStats(ctx context.Context) error {
	players, err := s.playerRepo.ListPlayers(ctx, &playerRepo.ListPlayersInput{})
	if err != nil {
		return err
	}

	matches, err := s.matchRepo.ListMatches(ctx, &matchRepo.ListMatchesInput{})
	if err != nil {
		return err
	}

	ops := make([]txn.Op, 0, len(players.Players)+len(matches.Matches))

	for _, p := range players.Players {
		p.ResetStats()
		op, err := s.playerRepo.SavePlayerOp(p)
		if err != nil {
			return err
		}
		ops = append(ops, op)
	}

	for _, m := range matches.Matches {
		op, err := s.matchRepo.DeleteMatchOp(m.ID)
		if err != nil {
			return err
		}
		ops = append(ops, op)
	}

	return s.txnRunner.Run(ctx, ops...)
}

// applyRankedResult folds one side of a ranked match into the player's
// lifetime record
func applyRankedResult(p *models.Player, mode models.GameMode, overallChange, modeChange float64,
	won bool, legsWon, legsLost, oneEighties, highestCheckout int) {

	p.Elo = elo.Round2(p.Elo + overallChange)

	switch mode {
	case models.GameMode301:
		p.Elo301 = elo.Round2(p.Elo301 + modeChange)
		if won {
			p.Wins301++
		} else {
			p.Losses301++
		}
	case models.GameMode501:
		p.Elo501 = elo.Round2(p.Elo501 + modeChange)
		if won {
			p.Wins501++
		} else {
			p.Losses501++
		}
	}

	if won {
		p.Wins++
	} else {
		p.Losses++
	}

	p.LegsWon += legsWon
	p.LegsLost += legsLost
	p.OneEighties += oneEighties

	if highestCheckout > p.HighestCheckout {
		p.HighestCheckout = highestCheckout
	}
}

// decrement subtracts with a floor of zero, so reverting a match never
// drives a counter negative
func decrement(v, by int) int {
	v -= by
	if v < 0 {
		return 0
	}
	return v
}
