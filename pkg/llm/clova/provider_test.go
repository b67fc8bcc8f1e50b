package clova

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cinemotion-be/pkg/llm"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *ClovaProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClovaProvider("test-key", srv.URL, "HCX-DASH-001", srv.Client())
}

func TestChatSuccess(t *testing.T) {
	var gotPath string
	var gotAuth string
	var gotBody map[string]interface{}

	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		w.Write([]byte(`{"status":{"code":"20000","message":"OK"},"result":{"message":{"content":"hello there"}}}`))
	})

	content, err := p.Chat(context.Background(), []llm.Message{
		{Role: "system", Content: "be brief"},
		{Role: "user", Content: "hi"},
	})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if content != "hello there" {
		t.Errorf("content = %q, want %q", content, "hello there")
	}
	if gotPath != "/chat-completions/HCX-DASH-001" {
		t.Errorf("path = %q, want /chat-completions/HCX-DASH-001", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("authorization = %q, want Bearer test-key", gotAuth)
	}

	// Fixed request parameters the Clova endpoint expects.
	checks := map[string]float64{
		"topP":          0.8,
		"topK":          0,
		"maxTokens":     256,
		"temperature":   0.3,
		"repeatPenalty": 5.0,
		"seed":          0,
	}
	for field, want := range checks {
		got, ok := gotBody[field].(float64)
		if !ok || got != want {
			t.Errorf("request %s = %v, want %v", field, gotBody[field], want)
		}
	}
	if gotBody["includeAiFilters"] != true {
		t.Errorf("request includeAiFilters = %v, want true", gotBody["includeAiFilters"])
	}
}

func TestChatOptionsOverrideDefaults(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}

	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"status":{"code":"20000"},"result":{"message":{"content":"ok"}}}`))
	})

	_, err := p.Chat(context.Background(),
		[]llm.Message{{Role: "user", Content: "hi"}},
		llm.WithModel("HCX-003"),
		llm.WithMaxTokens(512),
		llm.WithTemperature(0.7),
	)
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if gotPath != "/chat-completions/HCX-003" {
		t.Errorf("path = %q, want /chat-completions/HCX-003", gotPath)
	}
	if gotBody["maxTokens"].(float64) != 512 {
		t.Errorf("maxTokens = %v, want 512", gotBody["maxTokens"])
	}
	if gotBody["temperature"].(float64) != 0.7 {
		t.Errorf("temperature = %v, want 0.7", gotBody["temperature"])
	}
}

func TestChatHTTPError(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("rate limited"))
	})

	_, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	var httpErr *llm.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("Chat() error = %v, want *llm.HTTPError", err)
	}
	if httpErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("StatusCode = %d, want 429", httpErr.StatusCode)
	}
	if httpErr.Body != "rate limited" {
		t.Errorf("Body = %q, want %q", httpErr.Body, "rate limited")
	}
}

func TestChatEnvelopeError(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":{"code":"42901","message":"Too many requests"},"result":{"message":{"content":""}}}`))
	})

	_, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	if err == nil {
		t.Fatal("Chat() error = nil, want envelope error")
	}
	if !strings.Contains(err.Error(), "42901") {
		t.Errorf("error = %v, want status code 42901 mentioned", err)
	}
}

func TestChatEmptyContent(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":{"code":"20000"},"result":{"message":{"content":""}}}`))
	})

	_, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	if !errors.Is(err, llm.ErrEmptyContent) {
		t.Errorf("Chat() error = %v, want llm.ErrEmptyContent", err)
	}
}

func TestGenerateWrapsSinglePrompt(t *testing.T) {
	var gotBody chatRequest
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"status":{"code":"20000"},"result":{"message":{"content":"ok"}}}`))
	})

	if _, err := p.Generate(context.Background(), "just one prompt"); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(gotBody.Messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(gotBody.Messages))
	}
	if gotBody.Messages[0].Role != "user" || gotBody.Messages[0].Content != "just one prompt" {
		t.Errorf("message = %+v, want user/just one prompt", gotBody.Messages[0])
	}
}
