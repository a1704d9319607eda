package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/masalawok/orderbot/pkg/logging"
)

// Handler wires HTTP requests to the session manager.
type Handler struct {
	manager *Manager
	logger  *logging.Logger
}

// NewHandler creates the session handler.
func NewHandler(manager *Manager, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{manager: manager, logger: logger}
}

// MessageRequest is the body of POST /sessions/{sessionID}/messages.
type MessageRequest struct {
	Message string `json:"message"`
}

// Start handles POST /sessions.
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	snap, err := h.manager.Start(r.Context())
	if err != nil {
		h.logger.Error("failed to start session", "error", err)
		http.Error(w, "Failed to start session", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusCreated, snap)
}

// Message handles POST /sessions/{sessionID}/messages.
func (h *Handler) Message(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode message request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		http.Error(w, "Message is required", http.StatusBadRequest)
		return
	}

	snap, err := h.manager.Post(r.Context(), sessionID, req.Message)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "Session not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to process message", "session_id", sessionID, "error", err)
		http.Error(w, "Failed to process message", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, snap)
}

// End handles DELETE /sessions/{sessionID}.
func (h *Handler) End(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	snap, err := h.manager.End(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "Session not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to end session", "session_id", sessionID, "error", err)
		http.Error(w, "Failed to end session", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, snap)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", "error", err)
	}
}
