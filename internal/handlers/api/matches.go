package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tallidarts/tally/internal/models"
	matchRepo "github.com/tallidarts/tally/internal/repositories/match"
	playerRepo "github.com/tallidarts/tally/internal/repositories/player"
	matchService "github.com/tallidarts/tally/internal/services/match"
)

// recordMatchRequest is the body for POST /api/v1/matches
type recordMatchRequest struct {
	Player1ID string `json:"player1_id"`
	Player2ID string `json:"player2_id"`
	WinnerID  string `json:"winner_id"`

	Player1Legs int `json:"player1_legs"`
	Player2Legs int `json:"player2_legs"`

	Player1Avg float64 `json:"player1_avg"`
	Player2Avg float64 `json:"player2_avg"`

	Player1OneEighties int `json:"player1_one_eighties"`
	Player2OneEighties int `json:"player2_one_eighties"`

	Player1HighestCheckout int `json:"player1_highest_checkout"`
	Player2HighestCheckout int `json:"player2_highest_checkout"`

	Players []models.PlayerLegResult `json:"players,omitempty"`

	GameMode  string `json:"game_mode"`
	LegsToWin int    `json:"legs_to_win"`
	IsRanked  bool   `json:"is_ranked"`
}

// RecordMatch persists a finished match
func (h *Handler) RecordMatch(w http.ResponseWriter, r *http.Request) {
	var req recordMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	out, err := h.matchService.RecordMatch(r.Context(), &matchService.RecordMatchInput{
		Player1ID:              req.Player1ID,
		Player2ID:              req.Player2ID,
		WinnerID:               req.WinnerID,
		Player1Legs:            req.Player1Legs,
		Player2Legs:            req.Player2Legs,
		Player1Avg:             req.Player1Avg,
		Player2Avg:             req.Player2Avg,
		Player1OneEighties:     req.Player1OneEighties,
		Player2OneEighties:     req.Player2OneEighties,
		Player1HighestCheckout: req.Player1HighestCheckout,
		Player2HighestCheckout: req.Player2HighestCheckout,
		Players:                req.Players,
		GameMode:               models.GameMode(req.GameMode),
		LegsToWin:              req.LegsToWin,
		IsRanked:               req.IsRanked,
	})
	if err != nil {
		var matchErr matchService.MatchError
		switch {
		case errors.As(err, &matchErr):
			respondError(w, http.StatusBadRequest, matchErr.Error())
		case errors.Is(err, playerRepo.ErrPlayerNotFound):
			respondError(w, http.StatusNotFound, "player not found")
		default:
			respondError(w, http.StatusInternalServerError, "failed to record match")
		}
		return
	}

	respondJSON(w, http.StatusCreated, out.Match)
}

// ListMatches returns match history, newest first.
// Query params: limit
func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	limit := parseIntParam(r, "limit", 0)
	if limit < 0 {
		respondError(w, http.StatusBadRequest, "limit must not be negative")
		return
	}

	out, err := h.matchService.ListMatches(r.Context(), &matchService.ListMatchesInput{
		Limit: limit,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list matches")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"matches": out.Matches,
		"count":   len(out.Matches),
	})
}

// GetMatch returns a single match by ID
func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchID")

	out, err := h.matchService.GetMatch(r.Context(), &matchService.GetMatchInput{
		MatchID: matchID,
	})
	if err != nil {
		if errors.Is(err, matchRepo.ErrMatchNotFound) {
			respondError(w, http.StatusNotFound, "match not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to get match")
		return
	}

	respondJSON(w, http.StatusOK, out.Match)
}

// DeleteMatch removes a match and reverts the stats it applied
func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchID")

	err := h.matchService.DeleteMatch(r.Context(), &matchService.DeleteMatchInput{
		MatchID: matchID,
	})
	if err != nil {
		if errors.Is(err, matchRepo.ErrMatchNotFound) {
			respondError(w, http.StatusNotFound, "match not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to delete match")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ResetStats restores every player to defaults and clears the match
// history
func (h *Handler) ResetStats(w http.ResponseWriter, r *http.Request) {
	if err := h.matchService.ResetAllStats(r.Context()); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to reset stats")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
