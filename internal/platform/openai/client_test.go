package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/yungbote/hermes-backend/internal/platform/logger"
)

const okBody = `{
	"model": "gpt-test",
	"output": [
		{"type": "reasoning"},
		{"type": "message", "role": "assistant", "content": [
			{"type": "output_text", "text": "Breathe, "},
			{"type": "output_text", "text": "seeker."}
		]}
	],
	"usage": {"input_tokens": 120, "output_tokens": 8}
}`

func newTestClient(t *testing.T, url string, retries int) *client {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	c, err := NewClient(log, Config{APIKey: "sk-test", BaseURL: url, MaxRetries: retries})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	cc := c.(*client)
	cc.baseBackoff = time.Millisecond
	return cc
}

func TestGenerateText(t *testing.T) {
	var got responsesRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != responsesPath {
			t.Errorf("path: want=%s got=%s", responsesPath, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			t.Errorf("missing bearer token")
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		_, _ = w.Write([]byte(okBody))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 0)
	res, err := c.GenerateText(context.Background(), "You are Hermes.", []Message{
		{Role: RoleUser, Content: "hello"},
		{Role: RoleAssistant, Content: "greetings"},
		{Role: "system", Content: "  "},
		{Role: "tool", Content: "now?"},
	})
	if err != nil {
		t.Fatalf("GenerateText: %v", err)
	}
	if res.Text != "Breathe, seeker." {
		t.Fatalf("text: got=%q", res.Text)
	}
	if res.Model != "gpt-test" || res.InputTokens != 120 || res.OutputTokens != 8 {
		t.Fatalf("usage: got=%+v", res)
	}
	if got.Instructions != "You are Hermes." {
		t.Fatalf("instructions: got=%q", got.Instructions)
	}
	if len(got.Input) != 3 || got.Input[2].Role != RoleUser {
		t.Fatalf("input: got=%+v", got.Input)
	}
}

func TestGenerateTextRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, `{"error":"overloaded"}`, http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(okBody))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 2)
	if _, err := c.GenerateText(context.Background(), "", []Message{{Role: RoleUser, Content: "hi"}}); err != nil {
		t.Fatalf("GenerateText: %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("calls: want=2 got=%d", calls.Load())
	}
}

func TestGenerateTextDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, `{"error":"bad request"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, 3)
	_, err := c.GenerateText(context.Background(), "", []Message{{Role: RoleUser, Content: "hi"}})
	var httpErr *openAIHTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("err: want openai 400 got=%v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("calls: want=1 got=%d", calls.Load())
	}
}

func TestGenerateTextRejectsEmptyInput(t *testing.T) {
	c := newTestClient(t, "http://127.0.0.1:0", 0)
	if _, err := c.GenerateText(context.Background(), "sys", nil); err == nil {
		t.Fatalf("want error for empty messages")
	}
}

func TestExtractUsageFallbacks(t *testing.T) {
	in, out := extractUsageFromRaw([]byte(`{"usage":{"prompt_tokens":"7","completion_tokens":3}}`))
	if in != 7 || out != 3 {
		t.Fatalf("prompt/completion: want=7/3 got=%d/%d", in, out)
	}
	in, out = extractUsageFromRaw([]byte(`{"usage":{"total_tokens":11}}`))
	if in != 11 || out != 0 {
		t.Fatalf("total: want=11/0 got=%d/%d", in, out)
	}
	if in, out := extractUsageFromRaw([]byte(`not json`)); in != 0 || out != 0 {
		t.Fatalf("garbage: want=0/0 got=%d/%d", in, out)
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	log, _ := logger.New("test")
	if _, err := NewClient(log, Config{}); err == nil {
		t.Fatalf("want error without api key")
	}
}
