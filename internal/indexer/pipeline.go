package indexer

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"studyhall-api/internal/contextutil"
	"studyhall-api/internal/vectorstore"
)

// Embedder generates embedding vectors for a batch of texts.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// embedBatchSize bounds one embeddings request.
const embedBatchSize = 32

// Pipeline chunks an uploaded document, embeds the chunks, and upserts them
// into a vector index scoped by the owning topic's document space.
type Pipeline struct {
	embedder Embedder
	store    vectorstore.VectorStore
	chunker  *DocumentChunker
}

// NewPipeline creates a new indexing pipeline.
func NewPipeline(embedder Embedder, store vectorstore.VectorStore) *Pipeline {
	return &Pipeline{
		embedder: embedder,
		store:    store,
		chunker:  NewDocumentChunker(),
	}
}

// IndexDocument reads the staged local file at sourcePath and indexes it into
// collection under scopeID. title is the original file name and is stored on
// every chunk so retrieval can surface it.
func (p *Pipeline) IndexDocument(ctx context.Context, collection, title, sourcePath, scopeID string) error {
	logger := contextutil.LoggerFromContext(ctx)

	content, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", sourcePath, err)
	}

	chunks, err := p.chunker.ChunkDocument(content, title)
	if err != nil {
		return fmt.Errorf("failed to chunk document: %w", err)
	}
	if len(chunks) == 0 {
		logger.WarnContext(ctx, "document produced no chunks", "title", title)
		return nil
	}

	for start := 0; start < len(chunks); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		texts := make([]string, len(batch))
		for i, chunk := range batch {
			texts[i] = chunk.Text
		}

		vectors, err := p.embedder.EmbedTexts(ctx, texts)
		if err != nil {
			return fmt.Errorf("failed to embed chunks: %w", err)
		}
		if len(vectors) != len(batch) {
			return fmt.Errorf("expected %d vectors, got %d", len(batch), len(vectors))
		}

		points := make([]vectorstore.Point, len(batch))
		for i, chunk := range batch {
			points[i] = vectorstore.Point{
				ID:  uuid.New().String(),
				Vec: vectors[i],
				Meta: map[string]any{
					"title":               title,
					"text":                chunk.Text,
					"section":             chunk.Section,
					"chunk_index":         chunk.Index,
					vectorstore.ScopeField: scopeID,
				},
			}
		}

		if err := p.store.Upsert(ctx, collection, points); err != nil {
			return fmt.Errorf("failed to upsert chunks: %w", err)
		}
	}

	logger.InfoContext(ctx, "document indexed", "collection", collection, "title", title, "chunks", len(chunks), "scope_id", scopeID)
	return nil
}
