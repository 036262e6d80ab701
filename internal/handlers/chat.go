package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"studyhall-api/internal/chat"
	"studyhall-api/internal/contextutil"
	"studyhall-api/internal/retrieval"
	"studyhall-api/internal/websearch"
)

// ChatHandler handles conversation turns.
type ChatHandler struct {
	service chat.Service
	logger  *slog.Logger
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(service chat.Service) *ChatHandler {
	return &ChatHandler{
		service: service,
		logger:  slog.Default(),
	}
}

// ChatRequest is the HTTP payload for one conversation turn.
type ChatRequest struct {
	TopicID string       `json:"topic_id,omitempty"`
	Message string       `json:"message"`
	File    *FilePayload `json:"file,omitempty"`
}

// FilePayload references a document the client staged in object storage.
type FilePayload struct {
	Name       string `json:"name"`
	StagedPath string `json:"staged_path"`
}

// DocumentPayload is one retrieved context document in the response.
type DocumentPayload struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Text    string `json:"text"`
	Section string `json:"section,omitempty"`
}

// WebDocumentPayload is one web result in the response.
type WebDocumentPayload struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// ChatResponse is the HTTP payload for a completed turn.
type ChatResponse struct {
	TopicID        string               `json:"topic_id"`
	TopicName      string               `json:"topic_name"`
	Answer         string               `json:"answer"`
	CanonicalQuery string               `json:"canonical_query"`
	Queries        []string             `json:"queries"`
	UserDocuments  []DocumentPayload    `json:"user_documents"`
	EducationDocs  []DocumentPayload    `json:"education_documents"`
	WebAnswer      string               `json:"web_answer,omitempty"`
	WebDocuments   []WebDocumentPayload `json:"web_documents,omitempty"`
	WebStatus      string               `json:"web_status"`
	FileName       string               `json:"file_name,omitempty"`
	FileURL        string               `json:"file_url,omitempty"`
}

// ServeHTTP handles POST requests for one conversation turn.
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	accountID := contextutil.AccountIDFromContext(ctx)
	if accountID == "" {
		writeError(ctx, w, http.StatusUnauthorized, "Missing account")
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	svcReq := chat.ConverseRequest{
		AccountID: accountID,
		TopicID:   req.TopicID,
		Message:   req.Message,
	}
	if req.File != nil {
		svcReq.File = &chat.FileUpload{Name: req.File.Name, StagedPath: req.File.StagedPath}
	}

	resp, err := h.service.Converse(ctx, svcReq)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, ChatResponse{
		TopicID:        resp.TopicID,
		TopicName:      resp.TopicName,
		Answer:         resp.Answer,
		CanonicalQuery: resp.CanonicalQuery,
		Queries:        resp.Queries,
		UserDocuments:  toDocumentPayloads(resp.UserDocuments),
		EducationDocs:  toDocumentPayloads(resp.EducationDocs),
		WebAnswer:      resp.WebAnswer,
		WebDocuments:   toWebDocumentPayloads(resp.WebDocuments),
		WebStatus:      resp.WebStatus,
		FileName:       resp.FileName,
		FileURL:        resp.FileURL,
	})
}

func toDocumentPayloads(docs []retrieval.Document) []DocumentPayload {
	out := make([]DocumentPayload, 0, len(docs))
	for _, doc := range docs {
		out = append(out, DocumentPayload{
			ID:      doc.ID,
			Title:   doc.Title,
			Text:    doc.Text,
			Section: doc.Section,
		})
	}
	return out
}

func toWebDocumentPayloads(docs []websearch.Document) []WebDocumentPayload {
	out := make([]WebDocumentPayload, 0, len(docs))
	for _, doc := range docs {
		out = append(out, WebDocumentPayload{Title: doc.Title, URL: doc.URL, Content: doc.Content})
	}
	return out
}
