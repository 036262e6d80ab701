package handlers

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"

	"studyhall-api/internal/contextutil"
)

// CollectionChecker reports whether a vector collection exists.
type CollectionChecker interface {
	CollectionExists(ctx context.Context, collection string) (bool, error)
}

// HealthHandler reports service health, including the database and the
// vector collections the pipeline depends on.
type HealthHandler struct {
	db          *sql.DB
	vectors     CollectionChecker
	collections []string
	logger      *slog.Logger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *sql.DB, vectors CollectionChecker, collections []string) *HealthHandler {
	return &HealthHandler{
		db:          db,
		vectors:     vectors,
		collections: collections,
		logger:      slog.Default(),
	}
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status      string          `json:"status"`
	Database    string          `json:"database"`
	Collections map[string]bool `json:"collections"`
}

// ServeHTTP handles GET requests for service health.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	resp := HealthResponse{
		Status:      "ok",
		Database:    "ok",
		Collections: make(map[string]bool, len(h.collections)),
	}

	if err := h.db.PingContext(ctx); err != nil {
		logger.ErrorContext(ctx, "database ping failed", "error", err)
		resp.Status = "degraded"
		resp.Database = "unreachable"
	}

	for _, collection := range h.collections {
		exists, err := h.vectors.CollectionExists(ctx, collection)
		if err != nil {
			logger.ErrorContext(ctx, "collection check failed", "collection", collection, "error", err)
			resp.Status = "degraded"
		}
		resp.Collections[collection] = err == nil && exists
		if !resp.Collections[collection] {
			resp.Status = "degraded"
		}
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(ctx, w, status, resp)
}
