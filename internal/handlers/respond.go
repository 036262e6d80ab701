package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"studyhall-api/internal/chat"
	"studyhall-api/internal/contextutil"
)

// ErrorResponse is the error payload for all API endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, message string) {
	writeJSON(ctx, w, status, ErrorResponse{Error: message})
}

// writeServiceError maps the chat service's error classes onto HTTP status
// codes. Upstream detail stays in the logs, not the client payload.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	logger := contextutil.LoggerFromContext(ctx)

	code := chat.CodeOf(err)
	status := http.StatusBadGateway
	message := "Upstream service failed"
	switch code {
	case chat.CodeInvalidInput:
		status = http.StatusBadRequest
		message = err.Error()
	case chat.CodeNotFound:
		status = http.StatusNotFound
		message = err.Error()
	case chat.CodeUnauthorized:
		status = http.StatusForbidden
		message = err.Error()
	case chat.CodeQuotaExceeded:
		status = http.StatusTooManyRequests
		message = err.Error()
	case chat.CodeQuotaRace:
		status = http.StatusConflict
		message = "Request conflicted with a concurrent change, retry"
	}

	if status >= http.StatusInternalServerError {
		logger.ErrorContext(ctx, "request failed", "code", code, "error", err)
	} else {
		logger.WarnContext(ctx, "request rejected", "code", code, "error", err)
	}
	writeJSON(ctx, w, status, ErrorResponse{Error: message, Code: string(code)})
}
