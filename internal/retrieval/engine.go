package retrieval

import (
	"context"
	"fmt"

	"studyhall-api/internal/contextutil"
	"studyhall-api/internal/websearch"
)

// Engine answers questions by retrieving context from the account's own
// documents, the curriculum corpus and, when necessary, the web.
type Engine interface {
	// Answer runs the full pipeline for one question.
	Answer(ctx context.Context, req Request) (Answer, error)
}

type engine struct {
	reformulator reformulator
	strategist   strategist
	searcher     Searcher
	web          WebSearcher
	synthesizer  synthesizer
}

// NewEngine creates the retrieval engine.
func NewEngine(model LanguageModel, searcher Searcher, web WebSearcher) Engine {
	return &engine{
		reformulator: reformulator{model: model},
		strategist:   strategist{model: model},
		searcher:     searcher,
		web:          web,
		synthesizer:  synthesizer{model: model},
	}
}

// Answer implements the pipeline: reformulate, expand, fan out over the
// vector indexes, fuse, fall back to web search when the account's documents
// had nothing, then synthesize.
func (e *engine) Answer(ctx context.Context, req Request) (Answer, error) {
	logger := contextutil.LoggerFromContext(ctx)

	canonical := e.reformulator.Reformulate(ctx, req.Question, req.History, req.FileName)
	needsEducation := e.strategist.NeedsEducation(ctx, req.Question, canonical, req.HasFile)
	queries := e.reformulator.Expand(ctx, canonical, req.History)

	indexes := []Index{IndexUserDocuments}
	if needsEducation {
		indexes = append(indexes, IndexEducation)
	}

	logger.InfoContext(ctx, "retrieval started",
		"query", canonical,
		"query_count", len(queries),
		"education", needsEducation,
		"has_file", req.HasFile,
	)

	ranked, err := fanOut(ctx, e.searcher, indexes, queries, req.DocSpaceID)
	if err != nil {
		return Answer{}, fmt.Errorf("vector search failed: %w", err)
	}

	userDocs := truncate(fuseRanked(ranked[IndexUserDocuments]), maxUserDocuments)
	var eduDocs []Document
	if needsEducation {
		eduDocs = truncate(fuseRanked(ranked[IndexEducation]), maxEducationDocs)
	}

	webOutcome := WebSkipped()
	var webResult *websearch.Result
	if len(userDocs) == 0 && e.strategist.NeedsWeb(ctx, canonical) {
		res, err := e.web.Search(ctx, canonical)
		if err != nil {
			logger.WarnContext(ctx, "web search failed, answering without web context", "error", err)
			webOutcome = WebFailed(err)
		} else {
			webResult = res
			webOutcome = WebUsed()
		}
	}

	logger.InfoContext(ctx, "context assembled",
		"user_docs", len(userDocs),
		"education_docs", len(eduDocs),
		"web", webOutcome.Status(),
	)

	text, err := e.synthesizer.Synthesize(ctx, req.Question, canonical, req.History, userDocs, eduDocs, webResult, req.FileName)
	if err != nil {
		return Answer{}, err
	}

	answer := Answer{
		Text:           text,
		CanonicalQuery: canonical,
		Queries:        queries,
		UserDocuments:  userDocs,
		EducationDocs:  eduDocs,
		Web:            webOutcome,
	}
	if webResult != nil {
		answer.WebAnswer = webResult.Answer
		answer.WebDocuments = webResult.Documents
	}
	return answer, nil
}
