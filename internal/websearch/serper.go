package websearch

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"studyhall-api/internal/contextutil"
)

const (
	searchEndpoint = "https://google.serper.dev/search"
	resultLimit    = 5
)

// Document is one web search hit.
type Document struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// Result is a search-and-summarize outcome: the provider's direct answer (when
// an answer box is available) plus the organic hits.
type Result struct {
	Answer    string
	Documents []Document
}

// searchResponse mirrors the Serper API response shape.
type searchResponse struct {
	AnswerBox struct {
		Answer  string `json:"answer"`
		Snippet string `json:"snippet"`
	} `json:"answerBox"`
	Organic []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"organic"`
}

// SerperClient calls the Serper web search API.
type SerperClient struct {
	httpClient *resty.Client
	apiKey     string
	endpoint   string
}

// NewSerperClient creates a new Serper API client.
func NewSerperClient(apiKey string) *SerperClient {
	client := resty.New().
		SetHeader("User-Agent", "studyhall-api/1.0").
		SetTimeout(15 * time.Second)

	return &SerperClient{
		httpClient: client,
		apiKey:     apiKey,
		endpoint:   searchEndpoint,
	}
}

// Search performs a web search. Callers treat errors as non-fatal: the chat
// pipeline degrades to answering without web context.
func (c *SerperClient) Search(ctx context.Context, query string) (*Result, error) {
	logger := contextutil.LoggerFromContext(ctx)

	var parsed searchResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("X-API-KEY", c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{"q": query, "num": resultLimit}).
		SetResult(&parsed).
		Post(c.endpoint)

	if err != nil {
		return nil, fmt.Errorf("failed to query web search API: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("web search API error (status %d): %s", resp.StatusCode(), resp.String())
	}

	result := &Result{
		Answer: parsed.AnswerBox.Answer,
	}
	if result.Answer == "" {
		result.Answer = parsed.AnswerBox.Snippet
	}
	for _, hit := range parsed.Organic {
		if len(result.Documents) >= resultLimit {
			break
		}
		result.Documents = append(result.Documents, Document{
			Title:   hit.Title,
			URL:     hit.Link,
			Content: hit.Snippet,
		})
	}

	logger.DebugContext(ctx, "web search completed", "query", query, "results", len(result.Documents), "has_answer", result.Answer != "")
	return result, nil
}
