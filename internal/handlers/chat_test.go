package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"studyhall-api/internal/chat"
	"studyhall-api/internal/chat/mocks"
	"studyhall-api/internal/contextutil"
	"studyhall-api/internal/handlers"
	"studyhall-api/internal/retrieval"
)

func authedRequest(method, target, body, accountID string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if accountID != "" {
		req = req.WithContext(contextutil.WithAccountID(req.Context(), accountID))
	}
	return req
}

func TestChatHandlerSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)

	service.EXPECT().Converse(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req chat.ConverseRequest) (chat.ConverseResponse, error) {
			if req.AccountID != "acct-1" || req.Message != "what is photosynthesis" {
				t.Errorf("request = %+v", req)
			}
			if req.File == nil || req.File.Name != "notes.md" {
				t.Errorf("file = %+v", req.File)
			}
			return chat.ConverseResponse{
				TopicID:        "topic-1",
				TopicName:      "Photosynthesis",
				Answer:         "Plants convert light into energy.",
				CanonicalQuery: "what is photosynthesis",
				Queries:        []string{"what is photosynthesis"},
				UserDocuments:  []retrieval.Document{{ID: "d1", Title: "Notes", Text: "chlorophyll"}},
				WebStatus:      "false",
				FileName:       "notes.md",
				FileURL:        "https://signed.example/notes",
			}, nil
		})

	handler := handlers.NewChatHandler(service)
	body := `{"message": "what is photosynthesis", "file": {"name": "notes.md", "staged_path": "staged/notes.md"}}`
	req := authedRequest(http.MethodPost, "/api/v1/chat", body, "acct-1")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	got := rec.Body.String()
	for _, want := range []string{
		`"topic_id":"topic-1"`,
		`"answer":"Plants convert light into energy."`,
		`"web_status":"false"`,
		`"file_url":"https://signed.example/notes"`,
		`"title":"Notes"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("response missing %s: %s", want, got)
		}
	}
}

func TestChatHandlerMissingAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)

	handler := handlers.NewChatHandler(service)
	req := authedRequest(http.MethodPost, "/api/v1/chat", `{"message": "q"}`, "")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestChatHandlerInvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)

	handler := handlers.NewChatHandler(service)
	req := authedRequest(http.MethodPost, "/api/v1/chat", "{not json", "acct-1")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestChatHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"quota exceeded", &chat.Error{Code: chat.CodeQuotaExceeded, Message: "topic limit reached"}, http.StatusTooManyRequests},
		{"not found", &chat.Error{Code: chat.CodeNotFound, Message: "topic not found"}, http.StatusNotFound},
		{"unauthorized", &chat.Error{Code: chat.CodeUnauthorized, Message: "not yours"}, http.StatusForbidden},
		{"invalid input", &chat.Error{Code: chat.CodeInvalidInput, Message: "message cannot be empty"}, http.StatusBadRequest},
		{"quota race", &chat.Error{Code: chat.CodeQuotaRace, Message: "conflict"}, http.StatusConflict},
		{"upstream failure", &chat.Error{Code: chat.CodeUpstreamFailure, Message: "model down"}, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockService(ctrl)
			service.EXPECT().Converse(gomock.Any(), gomock.Any()).
				Return(chat.ConverseResponse{}, tt.err)

			handler := handlers.NewChatHandler(service)
			req := authedRequest(http.MethodPost, "/api/v1/chat", `{"message": "q"}`, "acct-1")
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
