package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"studyhall-api/internal/contextutil"
)

// classifyTemperature pins the structured-JSON decision calls to deterministic
// output. Synthesis callers pass their own temperature.
const classifyTemperature = 0.0

// Client wraps an OpenAI-compatible chat completions API.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient creates a new LLM client. baseURL may be empty to use the
// provider's default endpoint.
func NewClient(apiKey, baseURL, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
	}
}

// Complete sends a chat completion request and returns the reply text.
func (c *Client) Complete(ctx context.Context, messages []Message, temperature float32) (string, error) {
	reqMessages := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		reqMessages = append(reqMessages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    reqMessages,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}

// Classify sends a single-prompt completion at temperature 0 and unmarshals
// the reply into out. The reply may be wrapped in a markdown code fence.
// Callers are expected to treat any returned error as "no decision" and apply
// their own default rather than failing the request.
func (c *Client) Classify(ctx context.Context, prompt string, out any) error {
	logger := contextutil.LoggerFromContext(ctx)

	reply, err := c.Complete(ctx, []Message{{Role: RoleUser, Content: prompt}}, classifyTemperature)
	if err != nil {
		return err
	}

	raw := stripCodeFence(reply)
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		logger.WarnContext(ctx, "classifier returned unparseable output", "error", err, "reply", reply)
		return fmt.Errorf("failed to parse classifier output: %w", err)
	}
	return nil
}

// stripCodeFence removes a surrounding ```json ... ``` fence, which models
// frequently add around JSON replies.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	if idx := strings.LastIndex(s, "```"); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
