package retrieval

import (
	"context"
	"fmt"
	"strings"

	"studyhall-api/internal/llm"
	"studyhall-api/internal/websearch"
)

// synthesisTemperature keeps answers grounded in the provided context while
// allowing natural phrasing.
const synthesisTemperature = 0.3

const synthesisSystemPrompt = `You are a study assistant for students. Answer the question using the provided context. ` +
	`Prefer the student's own documents, then curriculum material, then web results. ` +
	`If the context does not contain the answer, say so instead of guessing. ` +
	`Cite document titles only when you actually draw on them. ` +
	`When an interpreted question is given, answer its intent but keep the original wording in mind.`

// synthesizer turns retrieved context into the final answer.
type synthesizer struct {
	model LanguageModel
}

// Synthesize generates the answer from the question, history and retrieved
// context. A failure here fails the whole request since there is nothing to
// return without an answer.
func (s *synthesizer) Synthesize(
	ctx context.Context,
	question, canonical string,
	history []llm.Message,
	userDocs, eduDocs []Document,
	web *websearch.Result,
	fileName string,
) (string, error) {
	var b strings.Builder

	if len(userDocs) > 0 {
		b.WriteString("--- Your documents ---\n\n")
		writeDocuments(&b, userDocs)
	}
	if len(eduDocs) > 0 {
		b.WriteString("--- Curriculum material ---\n\n")
		writeDocuments(&b, eduDocs)
	}
	if web != nil {
		b.WriteString("--- Web results ---\n\n")
		if web.Answer != "" {
			b.WriteString(fmt.Sprintf("Direct answer: %s\n\n", web.Answer))
		}
		for _, doc := range web.Documents {
			b.WriteString(fmt.Sprintf("[%s] %s\n%s\n\n", doc.Title, doc.URL, doc.Content))
		}
	}

	userContent := question
	if canonical != "" && canonical != question {
		userContent = fmt.Sprintf("%s\n\n(Interpreted as: %s)", question, canonical)
	}
	if fileName != "" {
		userContent = fmt.Sprintf("%s\n\n(Attached file: %s)", userContent, fileName)
	}
	if b.Len() > 0 {
		userContent = fmt.Sprintf("%s\n\n%s--- End context ---", userContent, b.String())
	}

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: synthesisSystemPrompt})
	messages = append(messages, history...)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: userContent})

	answer, err := s.model.Complete(ctx, messages, synthesisTemperature)
	if err != nil {
		return "", fmt.Errorf("failed to synthesize answer: %w", err)
	}
	return answer, nil
}

func writeDocuments(b *strings.Builder, docs []Document) {
	for _, doc := range docs {
		b.WriteString(fmt.Sprintf("[%s]", doc.Title))
		if doc.Section != "" {
			b.WriteString(fmt.Sprintf(" Section: %s", doc.Section))
		}
		b.WriteString(fmt.Sprintf("\n%s\n\n", doc.Text))
	}
}
