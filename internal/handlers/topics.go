package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"studyhall-api/internal/chat"
	"studyhall-api/internal/contextutil"
)

// TopicsHandler handles topic listing and management.
type TopicsHandler struct {
	service chat.Service
	logger  *slog.Logger
}

// NewTopicsHandler creates a new TopicsHandler.
func NewTopicsHandler(service chat.Service) *TopicsHandler {
	return &TopicsHandler{
		service: service,
		logger:  slog.Default(),
	}
}

// TopicPayload is one topic in listing responses.
type TopicPayload struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MessagePayload is one persisted message in a topic.
type MessagePayload struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	FileName  string    `json:"file_name,omitempty"`
	FileURL   string    `json:"file_url,omitempty"`
}

// RenameRequest is the payload for renaming a topic.
type RenameRequest struct {
	Name string `json:"name"`
}

// List handles GET requests for an account's topics.
func (h *TopicsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID := contextutil.AccountIDFromContext(ctx)
	if accountID == "" {
		writeError(ctx, w, http.StatusUnauthorized, "Missing account")
		return
	}

	topics, err := h.service.ListTopics(ctx, accountID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	payload := make([]TopicPayload, 0, len(topics))
	for _, topic := range topics {
		payload = append(payload, TopicPayload{
			ID:        topic.ID,
			Name:      topic.Name,
			CreatedAt: topic.CreatedAt,
			UpdatedAt: topic.UpdatedAt,
		})
	}
	writeJSON(ctx, w, http.StatusOK, payload)
}

// Messages handles GET requests for a topic's messages.
func (h *TopicsHandler) Messages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID := contextutil.AccountIDFromContext(ctx)
	if accountID == "" {
		writeError(ctx, w, http.StatusUnauthorized, "Missing account")
		return
	}

	messages, err := h.service.GetMessages(ctx, accountID, chi.URLParam(r, "topicID"))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	payload := make([]MessagePayload, 0, len(messages))
	for _, msg := range messages {
		mp := MessagePayload{
			ID:        msg.ID,
			Role:      string(msg.Role),
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
			FileURL:   msg.FileURL,
		}
		if msg.File != nil {
			mp.FileName = msg.File.Name
		}
		payload = append(payload, mp)
	}
	writeJSON(ctx, w, http.StatusOK, payload)
}

// Rename handles PATCH requests updating a topic's name.
func (h *TopicsHandler) Rename(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	accountID := contextutil.AccountIDFromContext(ctx)
	if accountID == "" {
		writeError(ctx, w, http.StatusUnauthorized, "Missing account")
		return
	}

	var req RenameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.RenameTopic(ctx, accountID, chi.URLParam(r, "topicID"), req.Name); err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "renamed"})
}

// Delete handles DELETE requests removing a topic.
func (h *TopicsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID := contextutil.AccountIDFromContext(ctx)
	if accountID == "" {
		writeError(ctx, w, http.StatusUnauthorized, "Missing account")
		return
	}

	if err := h.service.DeleteTopic(ctx, accountID, chi.URLParam(r, "topicID")); err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}
