package http

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"studyhall-api/internal/chat"
	"studyhall-api/internal/handlers"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	ChatService chat.Service
	DB          *sql.DB
	Vectors     handlers.CollectionChecker
	// Collections are the vector collections the health check verifies.
	Collections []string
}

// NewRouter creates the HTTP router.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS)
	r.Use(AccountMiddleware)

	chatHandler := handlers.NewChatHandler(deps.ChatService)
	topicsHandler := handlers.NewTopicsHandler(deps.ChatService)
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.Vectors, deps.Collections)

	r.Method(http.MethodGet, "/health", healthHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Method(http.MethodPost, "/chat", chatHandler)
		r.Get("/topics", topicsHandler.List)
		r.Get("/topics/{topicID}/messages", topicsHandler.Messages)
		r.Patch("/topics/{topicID}", topicsHandler.Rename)
		r.Delete("/topics/{topicID}", topicsHandler.Delete)
	})

	return r
}
