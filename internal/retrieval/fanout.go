package retrieval

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// fanOut runs every query against every index in parallel and returns the
// ranked lists grouped per index, in query order. Any single search failure
// cancels the remaining searches and fails the whole fan-out.
func fanOut(ctx context.Context, searcher Searcher, indexes []Index, queries []string, scopeID string) (map[Index][][]Document, error) {
	results := make(map[Index][][]Document, len(indexes))
	for _, index := range indexes {
		results[index] = make([][]Document, len(queries))
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, index := range indexes {
		for i, query := range queries {
			g.Go(func() error {
				docs, err := searcher.Search(ctx, index, query, scopeID)
				if err != nil {
					return err
				}
				results[index][i] = docs
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
