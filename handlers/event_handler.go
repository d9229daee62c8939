package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/saviour-frank/vault-chain/models"
	"github.com/saviour-frank/vault-chain/services"
)

// EventHandler serves audit-log lookups.
type EventHandler struct {
	Service *services.LedgerService
}

func NewEventHandler(s *services.LedgerService) *EventHandler {
	return &EventHandler{Service: s}
}

// GetEventByID returns one audit record.
// GET /events/{id}
func (h *EventHandler) GetEventByID(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, models.Errf(models.CodeInvalidInput, "event id: %v", err))
		return
	}

	event, found := h.Service.GetEvent(eventID)
	if !found {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "event not found"})
		return
	}
	writeJSON(w, http.StatusOK, event)
}
