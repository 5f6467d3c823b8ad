package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tallidarts/tally/internal/models"
	playerRepo "github.com/tallidarts/tally/internal/repositories/player"
)

// createPlayerRequest is the body for POST /api/v1/players
type createPlayerRequest struct {
	Name           string `json:"name"`
	Group          string `json:"group"`
	Club           string `json:"club"`
	EntranceSong   string `json:"entrance_song"`
	FavoritePlayer string `json:"favorite_player"`
	DartsModel     string `json:"darts_model"`
}

// CreatePlayer adds a player to the roster with default ratings
func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req createPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	group := models.PlayerGroup(req.Group)
	if group == "" {
		group = models.GroupHouse
	}
	if group != models.GroupHouse && group != models.GroupVisitor {
		respondError(w, http.StatusBadRequest, "group must be house or visitor")
		return
	}

	p := models.NewPlayer(h.uuidGenerator.NewUUID(), req.Name, group, h.clock.Now().UTC())
	p.Club = req.Club
	p.EntranceSong = req.EntranceSong
	p.FavoritePlayer = req.FavoritePlayer
	p.DartsModel = req.DartsModel

	if err := h.playerRepo.SavePlayer(r.Context(), &playerRepo.SavePlayerInput{
		Player: p,
	}); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to save player")
		return
	}

	respondJSON(w, http.StatusCreated, p)
}

// ListPlayers returns the roster ordered by overall rating, highest
// first. Query params: group
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	group := r.URL.Query().Get("group")
	if group != "" && group != string(models.GroupHouse) && group != string(models.GroupVisitor) {
		respondError(w, http.StatusBadRequest, "group must be house or visitor")
		return
	}

	out, err := h.playerRepo.ListPlayers(r.Context(), &playerRepo.ListPlayersInput{
		Group: models.PlayerGroup(group),
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list players")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"players": out.Players,
		"count":   len(out.Players),
	})
}

// GetPlayer returns a single player by ID
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	p, err := h.playerRepo.GetPlayer(r.Context(), &playerRepo.GetPlayerInput{
		PlayerID: playerID,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			respondError(w, http.StatusNotFound, "player not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to get player")
		return
	}

	respondJSON(w, http.StatusOK, p)
}

// DeletePlayer removes a player from the roster
func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	err := h.playerRepo.DeletePlayer(r.Context(), &playerRepo.DeletePlayerInput{
		PlayerID: playerID,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			respondError(w, http.StatusNotFound, "player not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to delete player")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
