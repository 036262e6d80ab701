package retrieval

import (
	"context"
	"fmt"

	"studyhall-api/internal/contextutil"
)

const educationPrompt = `Decide whether the following question relates to school curriculum subjects ` +
	`such as math, science, history, languages or literature. ` +
	`Respond with JSON: {"education": true} or {"education": false}.

Original message: %s
Question: %s`

const webPrompt = `Decide whether the following question needs current information from the public web ` +
	`to be answered well, for example recent events, trending topics, prices, schedules ` +
	`or anything tied to the present calendar year. ` +
	`Respond with JSON: {"web": true} or {"web": false}.

Question: %s`

// strategist makes the routing decisions for a request. Both decisions
// default to false when the classifier fails, so a broken classifier narrows
// retrieval rather than breaking it.
type strategist struct {
	model LanguageModel
}

// NeedsEducation reports whether the curriculum index should be searched.
// Both the user's original message and the standalone rewrite feed the
// classifier. Questions with an attached file are about that file, so the
// curriculum index is skipped regardless of the classifier.
func (s *strategist) NeedsEducation(ctx context.Context, original, canonical string, hasFile bool) bool {
	if hasFile {
		return false
	}

	var out struct {
		Education bool `json:"education"`
	}
	if err := s.model.Classify(ctx, fmt.Sprintf(educationPrompt, original, canonical), &out); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "education classification failed, defaulting to false", "error", err)
		return false
	}
	return out.Education
}

// NeedsWeb reports whether web search should supplement the answer. Only
// consulted when the user's own documents produced nothing.
func (s *strategist) NeedsWeb(ctx context.Context, question string) bool {
	var out struct {
		Web bool `json:"web"`
	}
	if err := s.model.Classify(ctx, fmt.Sprintf(webPrompt, question), &out); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "web classification failed, defaulting to false", "error", err)
		return false
	}
	return out.Web
}
