package retrieval

import (
	"context"
	"fmt"
	"strings"

	"studyhall-api/internal/contextutil"
	"studyhall-api/internal/llm"
)

// maxParaphrases caps the query variants added on top of the canonical query.
const maxParaphrases = 4

const reformulatePrompt = `Rewrite the user's latest question so it can be understood without the conversation history. ` +
	`Resolve pronouns and references to earlier turns. Keep the meaning identical. ` +
	`Respond with the rewritten question only, no explanation.`

const expandPrompt = `Generate up to %d alternative phrasings of the following search query. ` +
	`Each phrasing should express the same information need with different wording. ` +
	`Respond with JSON: {"queries": ["...", "..."]}.

%sQuery: %s`

// reformulator turns a raw conversational question into standalone search
// queries.
type reformulator struct {
	model LanguageModel
}

// Reformulate rewrites the question as a standalone query using the
// conversation history and the attached file name. On any failure the raw
// question is returned so that retrieval still runs.
func (r *reformulator) Reformulate(ctx context.Context, question string, history []llm.Message, fileName string) string {
	logger := contextutil.LoggerFromContext(ctx)

	if len(history) == 0 && fileName == "" {
		return question
	}

	content := question
	if fileName != "" {
		content = fmt.Sprintf("%s\n\n(Attached file: %s)", question, fileName)
	}

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: reformulatePrompt})
	messages = append(messages, history...)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: content})

	rewritten, err := r.model.Complete(ctx, messages, 0)
	if err != nil {
		logger.WarnContext(ctx, "question reformulation failed, using raw question", "error", err)
		return question
	}

	rewritten = strings.TrimSpace(rewritten)
	if rewritten == "" {
		return question
	}

	logger.DebugContext(ctx, "question reformulated", "original", question, "rewritten", rewritten)
	return rewritten
}

// Expand produces the canonical query followed by up to maxParaphrases
// variants, using the recent conversation to steer the wording. On any
// failure it degrades to just the canonical query.
func (r *reformulator) Expand(ctx context.Context, canonical string, history []llm.Message) []string {
	logger := contextutil.LoggerFromContext(ctx)

	var out struct {
		Queries []string `json:"queries"`
	}
	prompt := fmt.Sprintf(expandPrompt, maxParaphrases, historyBlock(history), canonical)
	if err := r.model.Classify(ctx, prompt, &out); err != nil {
		logger.WarnContext(ctx, "query expansion failed, using canonical query only", "error", err)
		return []string{canonical}
	}

	queries := []string{canonical}
	for _, q := range out.Queries {
		q = strings.TrimSpace(q)
		if q == "" || q == canonical {
			continue
		}
		queries = append(queries, q)
		if len(queries) == maxParaphrases+1 {
			break
		}
	}
	return queries
}

// historyBlock renders recent turns for inclusion in a classification prompt.
// Empty history renders as nothing.
func historyBlock(history []llm.Message) string {
	if len(history) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Recent conversation:\n")
	for _, m := range history {
		fmt.Fprintf(&b, "%s: %s\n", m.Role, m.Content)
	}
	b.WriteString("\n")
	return b.String()
}
