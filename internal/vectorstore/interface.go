package vectorstore

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_vector_store.go -package=mocks studyhall-api/internal/vectorstore VectorStore

import "context"

// Point represents a vector point with metadata. Document payloads (title,
// text, url, doc_space_id) live entirely in the point metadata.
type Point struct {
	ID   string
	Vec  []float32
	Meta map[string]any
}

// SearchResult represents a search result from vector search.
type SearchResult struct {
	PointID string
	Score   float32
	Meta    map[string]any
}

// VectorStore defines the interface for vector storage operations.
type VectorStore interface {
	// Upsert inserts or updates points in the collection.
	Upsert(ctx context.Context, collection string, points []Point) error

	// Search performs a similarity search. A non-empty scopeID restricts
	// results to points whose doc_space_id payload matches.
	Search(ctx context.Context, collection string, query []float32, k int, scopeID string) ([]SearchResult, error)

	// DeleteByScope removes every point belonging to a document space.
	DeleteByScope(ctx context.Context, collection string, scopeID string) error

	// EnsureCollection creates the collection if absent and validates its
	// vector size otherwise.
	EnsureCollection(ctx context.Context, collection string, vectorSize int) error

	// CollectionExists reports whether a collection exists.
	CollectionExists(ctx context.Context, collection string) (bool, error)
}
