package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newCompletionServer returns an httptest server that answers every chat
// completion request with the given content.
func newCompletionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		resp := map[string]any{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"choices": []map[string]any{
				{
					"index":         0,
					"message":       map[string]any{"role": "assistant", "content": content},
					"finish_reason": "stop",
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestClient_Complete(t *testing.T) {
	server := newCompletionServer(t, "The capital of France is Paris.")
	defer server.Close()

	client := NewClient("test-key", server.URL+"/v1", "gpt-4o-mini")

	reply, err := client.Complete(context.Background(), []Message{
		{Role: RoleSystem, Content: "You are a helpful assistant."},
		{Role: RoleUser, Content: "What is the capital of France?"},
	}, 0.3)
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if reply != "The capital of France is Paris." {
		t.Errorf("Complete() = %q", reply)
	}
}

func TestClient_Complete_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL+"/v1", "gpt-4o-mini")

	if _, err := client.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}, 0); err == nil {
		t.Fatal("Complete() expected error on server failure")
	}
}

func TestClient_Classify(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		wantErr bool
		want    bool
	}{
		{
			name:  "plain json",
			reply: `{"relevant": true}`,
			want:  true,
		},
		{
			name:  "fenced json",
			reply: "```json\n{\"relevant\": true}\n```",
			want:  true,
		},
		{
			name:  "fenced without language tag",
			reply: "```\n{\"relevant\": false}\n```",
			want:  false,
		},
		{
			name:    "not json",
			reply:   "I think the answer is probably yes.",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newCompletionServer(t, tt.reply)
			defer server.Close()

			client := NewClient("test-key", server.URL+"/v1", "gpt-4o-mini")

			var out struct {
				Relevant bool `json:"relevant"`
			}
			err := client.Classify(context.Background(), "Is this relevant?", &out)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Classify() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			if out.Relevant != tt.want {
				t.Errorf("Classify() relevant = %v, want %v", out.Relevant, tt.want)
			}
		})
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  {\"a\":1}  ", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripCodeFence(tt.in); got != tt.want {
				t.Errorf("stripCodeFence() = %q, want %q", got, tt.want)
			}
		})
	}
}
