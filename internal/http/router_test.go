package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"studyhall-api/internal/chat"
	"studyhall-api/internal/chat/mocks"
	internalhttp "studyhall-api/internal/http"
	"studyhall-api/internal/storage"
)

type okChecker struct{}

func (okChecker) CollectionExists(context.Context, string) (bool, error) {
	return true, nil
}

func newTestRouter(t *testing.T, service chat.Service) http.Handler {
	t.Helper()

	db, err := storage.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	return internalhttp.NewRouter(&internalhttp.Deps{
		ChatService: service,
		DB:          db,
		Vectors:     okChecker{},
		Collections: []string{"user_documents", "education"},
	})
}

func TestRouterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)

	service.EXPECT().Converse(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req chat.ConverseRequest) (chat.ConverseResponse, error) {
			if req.AccountID != "acct-1" {
				t.Errorf("AccountID = %q, header must reach the service", req.AccountID)
			}
			return chat.ConverseResponse{TopicID: "t1", Answer: "a", WebStatus: "false"}, nil
		})
	service.EXPECT().ListTopics(gomock.Any(), "acct-1").Return(nil, nil)
	service.EXPECT().GetMessages(gomock.Any(), "acct-1", "t1").Return(nil, nil)
	service.EXPECT().RenameTopic(gomock.Any(), "acct-1", "t1", "New").Return(nil)
	service.EXPECT().DeleteTopic(gomock.Any(), "acct-1", "t1").Return(nil)

	router := newTestRouter(t, service)

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPost, "/api/v1/chat", `{"message": "q"}`},
		{http.MethodGet, "/api/v1/topics", ""},
		{http.MethodGet, "/api/v1/topics/t1/messages", ""},
		{http.MethodPatch, "/api/v1/topics/t1", `{"name": "New"}`},
		{http.MethodDelete, "/api/v1/topics/t1", ""},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
		req.Header.Set(internalhttp.AccountHeader, "acct-1")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("%s %s: status = %d, want 200: %s", tt.method, tt.path, rec.Code, rec.Body.String())
		}
	}
}

func TestRouterHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := newTestRouter(t, mocks.NewMockService(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestRouterMissingAccountHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := newTestRouter(t, mocks.NewMockService(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/topics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRouterCORSPreflight(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := newTestRouter(t, mocks.NewMockService(ctrl))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/chat", nil)
	req.Header.Set("Origin", "https://app.example.org")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.org" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}
