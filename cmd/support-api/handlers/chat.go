// Package handlers provides HTTP handlers for the support API.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kickshq/support-bot/internal/classifier"
	"github.com/kickshq/support-bot/internal/observability"
	"github.com/kickshq/support-bot/internal/resolver"
	"github.com/kickshq/support-bot/internal/session"
)

// Responder resolves a support query into a reply.
type Responder interface {
	Resolve(ctx context.Context, query string) resolver.Result
}

// StatsProvider reports classifier training statistics.
type StatsProvider interface {
	Stats() classifier.Stats
}

// ChatHandler handles chat requests.
type ChatHandler struct {
	logger    *observability.Logger
	responder Responder
	stats     StatsProvider
	sessions  *session.Store
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(logger *observability.Logger, responder Responder, stats StatsProvider, sessions *session.Store) *ChatHandler {
	return &ChatHandler{
		logger:    logger,
		responder: responder,
		stats:     stats,
		sessions:  sessions,
	}
}

// ChatRequestDTO represents the API request for a chat turn.
type ChatRequestDTO struct {
	SessionID string `json:"sessionId,omitempty"`
	Message   string `json:"message"`
}

// ChatResponseDTO represents the API response for a chat turn.
type ChatResponseDTO struct {
	SessionID  string  `json:"sessionId"`
	Reply      string  `json:"reply"`
	Intent     string  `json:"intent,omitempty"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
}

// TranscriptResponseDTO represents a session transcript.
type TranscriptResponseDTO struct {
	SessionID string            `json:"sessionId"`
	Messages  []session.Message `json:"messages"`
}

// StatsResponseDTO represents classifier and session statistics.
type StatsResponseDTO struct {
	classifier.Stats
	ActiveSessions int `json:"activeSessions"`
}

// Chat handles POST /chat.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var reqDTO ChatRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if reqDTO.Message == "" {
		h.writeError(w, http.StatusBadRequest, "message is required", "")
		return
	}

	sessionID := reqDTO.SessionID
	if sessionID == "" {
		sessionID = h.sessions.NewID()
	}

	result := h.responder.Resolve(ctx, reqDTO.Message)

	h.sessions.Append(sessionID, "user", reqDTO.Message)
	h.sessions.Append(sessionID, "assistant", result.Reply)

	h.logger.Info().
		Str("session_id", sessionID).
		Str("source", result.Source).
		Str("intent", result.Intent).
		Float64("confidence", result.Confidence).
		Msg("Chat turn resolved")

	h.writeJSON(w, http.StatusOK, ChatResponseDTO{
		SessionID:  sessionID,
		Reply:      result.Reply,
		Intent:     result.Intent,
		Confidence: result.Confidence,
		Source:     result.Source,
	})
}

// Transcript handles GET /chat/{sessionID}.
func (h *ChatHandler) Transcript(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	messages, ok := h.sessions.Get(sessionID)
	if !ok {
		h.writeError(w, http.StatusNotFound, "session not found", "")
		return
	}

	h.writeJSON(w, http.StatusOK, TranscriptResponseDTO{
		SessionID: sessionID,
		Messages:  messages,
	})
}

// Clear handles DELETE /chat/{sessionID}.
func (h *ChatHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	h.sessions.Clear(sessionID)
	w.WriteHeader(http.StatusNoContent)
}

// Stats handles GET /stats.
func (h *ChatHandler) Stats(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, StatsResponseDTO{
		Stats:          h.stats.Stats(),
		ActiveSessions: h.sessions.Len(),
	})
}

func (h *ChatHandler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func (h *ChatHandler) writeError(w http.ResponseWriter, status int, message, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := map[string]string{
		"error":   message,
		"message": message,
	}
	if detail != "" {
		resp["detail"] = detail
	}
	json.NewEncoder(w).Encode(resp)
}
