package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tallidarts/tally/internal/checkout"
)

// GetCheckout returns the suggested finish for a remaining score, or
// 404 when the score cannot be checked out
func (h *Handler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	remainingStr := chi.URLParam(r, "remaining")
	remaining, err := strconv.Atoi(remainingStr)
	if err != nil {
		respondError(w, http.StatusBadRequest, "remaining must be an integer")
		return
	}

	route := checkout.Suggest(remaining)
	if route == nil {
		respondError(w, http.StatusNotFound, "no checkout available")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"remaining": remaining,
		"darts":     route,
	})
}
