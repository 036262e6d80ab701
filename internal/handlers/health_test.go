package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"studyhall-api/internal/handlers"
	"studyhall-api/internal/storage"
)

type stubChecker struct {
	exists map[string]bool
	err    error
}

func (s *stubChecker) CollectionExists(_ context.Context, collection string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.exists[collection], nil
}

func TestHealthHandler(t *testing.T) {
	db, err := storage.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	tests := []struct {
		name       string
		checker    *stubChecker
		wantStatus int
		wantBody   string
	}{
		{
			name:       "healthy",
			checker:    &stubChecker{exists: map[string]bool{"user_documents": true, "education": true}},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"ok"`,
		},
		{
			name:       "missing collection",
			checker:    &stubChecker{exists: map[string]bool{"user_documents": true}},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `"status":"degraded"`,
		},
		{
			name:       "vector store unreachable",
			checker:    &stubChecker{err: errors.New("connection refused")},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `"status":"degraded"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := handlers.NewHealthHandler(db, tt.checker, []string{"user_documents", "education"})
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body = %s, want %s", rec.Body.String(), tt.wantBody)
			}
		})
	}
}
