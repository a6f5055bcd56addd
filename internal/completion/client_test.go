package completion

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// chatCompletionStub mimics the wire format of the chat completions endpoint.
type chatCompletionStub struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Choices []choiceStub `json:"choices"`
}

type choiceStub struct {
	Index   int `json:"index"`
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

func completionStub(content string) chatCompletionStub {
	var choice choiceStub
	choice.Message.Role = "assistant"
	choice.Message.Content = content
	choice.FinishReason = "stop"
	return chatCompletionStub{
		ID:      "chatcmpl-test",
		Object:  "chat.completion",
		Choices: []choiceStub{choice},
	}
}

func TestComplete_ReturnsAnswer(t *testing.T) {
	var gotModel string
	var gotMessages []map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		var req struct {
			Model    string              `json:"model"`
			Messages []map[string]string `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		gotModel = req.Model
		gotMessages = req.Messages

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(completionStub("Because it was framed!"))
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL+"/v1")
	answer, err := c.Complete(context.Background(), "gpt-4", "Why did the server cross the road?")
	if err != nil {
		t.Fatalf("Complete() failed: %v", err)
	}

	if answer != "Because it was framed!" {
		t.Errorf("Expected stub answer, got '%s'", answer)
	}
	if gotModel != "gpt-4" {
		t.Errorf("Expected model 'gpt-4', got '%s'", gotModel)
	}
	if len(gotMessages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(gotMessages))
	}
	if gotMessages[0]["role"] != "system" || gotMessages[0]["content"] != SystemPrompt {
		t.Errorf("Expected system prompt first, got %v", gotMessages[0])
	}
	if gotMessages[1]["role"] != "user" || gotMessages[1]["content"] != "Why did the server cross the road?" {
		t.Errorf("Expected question as user message, got %v", gotMessages[1])
	}
}

func TestComplete_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"chatcmpl-test","object":"chat.completion","choices":[]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL+"/v1")
	_, err := c.Complete(context.Background(), "gpt-4", "hello")
	if !errors.Is(err, ErrEmptyCompletion) {
		t.Errorf("Expected ErrEmptyCompletion, got %v", err)
	}
}

func TestComplete_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited","type":"requests"}}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", srv.URL+"/v1")
	if _, err := c.Complete(context.Background(), "gpt-4", "hello"); err == nil {
		t.Fatal("Expected error for 429 response, got nil")
	}
}
