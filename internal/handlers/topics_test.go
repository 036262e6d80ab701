package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"studyhall-api/internal/chat"
	"studyhall-api/internal/chat/mocks"
	"studyhall-api/internal/handlers"
	"studyhall-api/internal/storage"
)

// mountTopics wires the handler onto a router so URL params resolve.
func mountTopics(service chat.Service) http.Handler {
	h := handlers.NewTopicsHandler(service)
	r := chi.NewRouter()
	r.Get("/topics", h.List)
	r.Get("/topics/{topicID}/messages", h.Messages)
	r.Patch("/topics/{topicID}", h.Rename)
	r.Delete("/topics/{topicID}", h.Delete)
	return r
}

func TestTopicsList(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)
	service.EXPECT().ListTopics(gomock.Any(), "acct-1").
		Return([]storage.Topic{
			{ID: "t1", Name: "Biology", CreatedAt: time.Now(), UpdatedAt: time.Now()},
		}, nil)

	req := authedRequest(http.MethodGet, "/topics", "", "acct-1")
	rec := httptest.NewRecorder()
	mountTopics(service).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"name":"Biology"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestTopicsMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)
	service.EXPECT().GetMessages(gomock.Any(), "acct-1", "t1").
		Return([]chat.TopicMessage{
			{
				Message: storage.Message{
					ID: "m1", Role: storage.RoleUser, Content: "question",
					File: &storage.FileRef{Name: "notes.md"},
				},
				FileURL: "https://signed.example/notes",
			},
			{Message: storage.Message{ID: "m2", Role: storage.RoleAssistant, Content: "answer"}},
		}, nil)

	req := authedRequest(http.MethodGet, "/topics/t1/messages", "", "acct-1")
	rec := httptest.NewRecorder()
	mountTopics(service).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	got := rec.Body.String()
	for _, want := range []string{`"role":"user"`, `"role":"assistant"`, `"file_name":"notes.md"`, `"file_url":"https://signed.example/notes"`} {
		if !strings.Contains(got, want) {
			t.Errorf("body missing %s: %s", want, got)
		}
	}
}

func TestTopicsRename(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)
	service.EXPECT().RenameTopic(gomock.Any(), "acct-1", "t1", "New name").Return(nil)

	req := authedRequest(http.MethodPatch, "/topics/t1", `{"name": "New name"}`, "acct-1")
	rec := httptest.NewRecorder()
	mountTopics(service).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestTopicsDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)
	service.EXPECT().DeleteTopic(gomock.Any(), "acct-1", "t1").
		Return(&chat.Error{Code: chat.CodeNotFound, Message: "topic not found"})

	req := authedRequest(http.MethodDelete, "/topics/t1", "", "acct-1")
	rec := httptest.NewRecorder()
	mountTopics(service).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestTopicsMissingAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)

	for _, target := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/topics"},
		{http.MethodGet, "/topics/t1/messages"},
		{http.MethodPatch, "/topics/t1"},
		{http.MethodDelete, "/topics/t1"},
	} {
		req := authedRequest(target.method, target.path, `{"name": "x"}`, "")
		rec := httptest.NewRecorder()
		mountTopics(service).ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d, want 401", target.method, target.path, rec.Code)
		}
	}
}
