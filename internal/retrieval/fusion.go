package retrieval

import "sort"

const (
	// rrfK dampens the rank contribution so that a document appearing in
	// several lists outranks one appearing high in a single list.
	rrfK = 60

	// maxUserDocuments caps fused user-document context.
	maxUserDocuments = 10
	// maxEducationDocs caps fused curriculum context.
	maxEducationDocs = 5
)

// fuseRanked merges ranked result lists with reciprocal rank fusion. A
// document at 0-based rank r in a list contributes 1/(r+k) to its score.
// Each identity appears once in the output, carrying the payload from its
// first occurrence, and ties are broken by first-seen order.
func fuseRanked(lists [][]Document) []Document {
	type entry struct {
		doc   Document
		score float64
		seen  int
	}

	order := 0
	entries := make(map[string]*entry)
	for _, list := range lists {
		for rank, doc := range list {
			e, ok := entries[doc.ID]
			if !ok {
				e = &entry{doc: doc, seen: order}
				entries[doc.ID] = e
				order++
			}
			e.score += 1.0 / float64(rank+rrfK)
		}
	}

	fused := make([]*entry, 0, len(entries))
	for _, e := range entries {
		fused = append(fused, e)
	}
	sort.SliceStable(fused, func(i, j int) bool {
		if fused[i].score != fused[j].score {
			return fused[i].score > fused[j].score
		}
		return fused[i].seen < fused[j].seen
	})

	docs := make([]Document, 0, len(fused))
	for _, e := range fused {
		docs = append(docs, e.doc)
	}
	return docs
}

// truncate returns at most limit documents.
func truncate(docs []Document, limit int) []Document {
	if len(docs) > limit {
		return docs[:limit]
	}
	return docs
}
