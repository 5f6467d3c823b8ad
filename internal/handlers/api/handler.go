// Package api exposes the application over a thin JSON HTTP boundary.
// Game play itself runs in the clients; the API persists rosters and
// finished matches and answers checkout lookups.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tallidarts/tally/internal/common/clock"
	"github.com/tallidarts/tally/internal/common/uuid"
	playerRepo "github.com/tallidarts/tally/internal/repositories/player"
	matchService "github.com/tallidarts/tally/internal/services/match"
)

// Config holds the dependencies for the HTTP handler
type Config struct {
	// PlayerRepo backs the roster endpoints
	PlayerRepo playerRepo.Repository

	// MatchService backs the match endpoints
	MatchService matchService.Service

	// Clock provides creation timestamps
	Clock clock.Clock

	// UUIDGenerator creates player IDs
	UUIDGenerator uuid.UUID
}

// Handler serves the JSON API
type Handler struct {
	playerRepo    playerRepo.Repository
	matchService  matchService.Service
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// New creates a new API handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.PlayerRepo == nil {
		return nil, errors.New("player repository cannot be nil")
	}

	if cfg.MatchService == nil {
		return nil, errors.New("match service cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	if cfg.UUIDGenerator == nil {
		return nil, errors.New("UUID generator cannot be nil")
	}

	return &Handler{
		playerRepo:    cfg.PlayerRepo,
		matchService:  cfg.MatchService,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// Routes builds the router for the API
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/health", h.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/players", func(r chi.Router) {
			r.Get("/", h.ListPlayers)
			r.Post("/", h.CreatePlayer)
			r.Get("/{playerID}", h.GetPlayer)
			r.Delete("/{playerID}", h.DeletePlayer)
		})

		r.Route("/matches", func(r chi.Router) {
			r.Get("/", h.ListMatches)
			r.Post("/", h.RecordMatch)
			r.Get("/{matchID}", h.GetMatch)
			r.Delete("/{matchID}", h.DeleteMatch)
		})

		r.Get("/checkout/{remaining}", h.GetCheckout)
		r.Post("/reset", h.ResetStats)
	})

	return r
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"service":   "tally",
	})
}

// errorResponse is the JSON body for every non-2xx response
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func parseIntParam(r *http.Request, param string, defaultValue int) int {
	valueStr := r.URL.Query().Get(param)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		fmt.Printf("error encoding response: %v\n", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errResp := errorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	}

	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		fmt.Printf("error encoding response: %v\n", err)
	}
}
