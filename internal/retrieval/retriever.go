package retrieval

import (
	"context"
	"fmt"

	"studyhall-api/internal/vectorstore"
)

// searchK is how many results each individual vector query requests. Fusion
// and truncation narrow the combined set afterwards.
const searchK = 10

// Embedder is the slice of the embeddings client the retriever needs.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// VectorRetriever runs queries against the vector collections.
type VectorRetriever struct {
	embedder    Embedder
	store       vectorstore.VectorStore
	collections map[Index]string
}

// NewVectorRetriever creates a retriever over the given collections.
func NewVectorRetriever(embedder Embedder, store vectorstore.VectorStore, collections map[Index]string) *VectorRetriever {
	return &VectorRetriever{
		embedder:    embedder,
		store:       store,
		collections: collections,
	}
}

// Search embeds the query and searches the collection backing the index.
// The scope filter only applies to the user-document index; the curriculum
// corpus is shared.
func (r *VectorRetriever) Search(ctx context.Context, index Index, query string, scopeID string) ([]Document, error) {
	collection, ok := r.collections[index]
	if !ok {
		return nil, fmt.Errorf("no collection configured for index %q", index)
	}

	embeddings, err := r.embedder.EmbedTexts(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("no embedding returned for query")
	}

	scope := ""
	if index == IndexUserDocuments {
		scope = scopeID
	}

	results, err := r.store.Search(ctx, collection, embeddings[0], searchK, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to search collection %s: %w", collection, err)
	}

	docs := make([]Document, 0, len(results))
	for _, res := range results {
		title, _ := res.Meta["title"].(string)
		text, _ := res.Meta["text"].(string)
		section, _ := res.Meta["section"].(string)
		docs = append(docs, Document{
			ID:      res.PointID,
			Title:   title,
			Text:    text,
			Section: section,
			Source:  index,
		})
	}
	return docs, nil
}
