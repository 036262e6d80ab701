package retrieval

import (
	"context"
	"fmt"
	"strings"

	"studyhall-api/internal/contextutil"
)

// defaultTopicName is used when title generation fails.
const defaultTopicName = "New conversation"

const namePrompt = `Give a short title, at most six words, for a conversation with the question and answer below. ` +
	`Respond with JSON: {"title": "..."}.

Question: %s

Answer: %s`

// TopicNamer generates display names for new conversation topics.
type TopicNamer struct {
	model LanguageModel
}

// NewTopicNamer creates a topic namer.
func NewTopicNamer(model LanguageModel) *TopicNamer {
	return &TopicNamer{model: model}
}

// Name returns a short title for a topic opened with the given question and
// answer. Failures fall back to a generic name; naming never blocks a
// conversation.
func (n *TopicNamer) Name(ctx context.Context, question, answer string) string {
	var out struct {
		Title string `json:"title"`
	}
	if err := n.model.Classify(ctx, fmt.Sprintf(namePrompt, question, answer), &out); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "topic naming failed, using default", "error", err)
		return defaultTopicName
	}

	title := strings.TrimSpace(out.Title)
	if title == "" {
		return defaultTopicName
	}
	return title
}
