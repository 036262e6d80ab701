package retrieval

import (
	"context"

	"studyhall-api/internal/llm"
	"studyhall-api/internal/websearch"
)

// Index identifies a vector collection queried during retrieval.
type Index string

const (
	// IndexUserDocuments holds chunks from files the account uploaded,
	// partitioned per topic by document space.
	IndexUserDocuments Index = "user_documents"
	// IndexEducation holds the shared curriculum corpus.
	IndexEducation Index = "education"
)

// Document is a retrieved context chunk with its source attribution.
type Document struct {
	// ID is the identity used for deduplication across queries and indexes.
	ID      string
	Title   string
	Text    string
	Section string
	Source  Index
}

// Request carries one question through the retrieval pipeline.
type Request struct {
	Question   string
	DocSpaceID string
	// History is recent conversation context, oldest first.
	History []llm.Message
	// HasFile is true when the question arrived with an attached document.
	HasFile bool
	// FileName is the attached document's name, used as disambiguating
	// context during reformulation.
	FileName string
}

// Answer is the synthesized result with the context that produced it.
type Answer struct {
	Text string
	// CanonicalQuery is the standalone rewrite of the question that drove
	// retrieval.
	CanonicalQuery string
	// Queries is the full expanded query set, canonical first.
	Queries       []string
	UserDocuments []Document
	EducationDocs []Document
	WebAnswer     string
	WebDocuments  []websearch.Document
	Web           WebOutcome
}

// WebOutcome records what happened with the web search step. Exactly one of
// the three states holds: the step was skipped, it contributed results, or it
// was attempted and failed.
type WebOutcome struct {
	attempted bool
	used      bool
	err       error
}

// WebSkipped reports a request that never reached web search.
func WebSkipped() WebOutcome {
	return WebOutcome{}
}

// WebUsed reports a web search that contributed to the answer.
func WebUsed() WebOutcome {
	return WebOutcome{attempted: true, used: true}
}

// WebFailed reports a web search that was attempted but errored. The answer
// proceeds without web context.
func WebFailed(err error) WebOutcome {
	return WebOutcome{attempted: true, err: err}
}

// Used reports whether web results were part of the synthesis context.
func (w WebOutcome) Used() bool {
	return w.used
}

// Failed reports whether a web search was attempted and errored.
func (w WebOutcome) Failed() bool {
	return w.attempted && !w.used
}

// Err returns the web search failure, or nil.
func (w WebOutcome) Err() error {
	return w.err
}

// Status renders the outcome for persistence and API responses: "false" when
// skipped, "true" when used, and the failure description otherwise.
func (w WebOutcome) Status() string {
	switch {
	case w.used:
		return "true"
	case w.attempted:
		if w.err != nil {
			return "web search failed: " + w.err.Error()
		}
		return "web search failed"
	default:
		return "false"
	}
}

//go:generate mockgen -source=types.go -destination=mocks/mock_retrieval.go -package=mocks

// LanguageModel is the slice of the LLM client the pipeline needs.
type LanguageModel interface {
	Complete(ctx context.Context, messages []llm.Message, temperature float32) (string, error)
	Classify(ctx context.Context, prompt string, out any) error
}

// Searcher runs one query against one vector index.
type Searcher interface {
	Search(ctx context.Context, index Index, query string, scopeID string) ([]Document, error)
}

// WebSearcher fetches supplementary context from the public web.
type WebSearcher interface {
	Search(ctx context.Context, query string) (*websearch.Result, error)
}
