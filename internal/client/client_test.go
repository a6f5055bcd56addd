package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAsk(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/qa" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("userId"); got != "user-123" {
			t.Errorf("Expected userId 'user-123', got '%s'", got)
		}
		if got := r.URL.Query().Get("question"); got != "why?" {
			t.Errorf("Expected question 'why?', got '%s'", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"question":"why?","answer":"because","variant":"gpt-4"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	answer, err := c.Ask(context.Background(), "user-123", "why?")
	if err != nil {
		t.Fatalf("Ask() failed: %v", err)
	}
	if answer.Answer != "because" {
		t.Errorf("Expected answer 'because', got '%s'", answer.Answer)
	}
	if answer.Variant != "gpt-4" {
		t.Errorf("Expected variant 'gpt-4', got '%s'", answer.Variant)
	}
}

func TestAsk_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"Bad Request"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.Ask(context.Background(), "user-123", ""); err == nil {
		t.Fatal("Expected error for 400 response, got nil")
	}
}

func TestVariants(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/variants" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"flagKey":"qa_model","modelMarker":"gpt","fallback":"nope","variants":[{"variant":"gpt-4","model":"gpt-4","route":"model"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	view, err := c.Variants(context.Background())
	if err != nil {
		t.Fatalf("Variants() failed: %v", err)
	}
	if view.FlagKey != "qa_model" {
		t.Errorf("Expected flag key 'qa_model', got '%s'", view.FlagKey)
	}
	if len(view.Variants) != 1 || view.Variants[0].Route != "model" {
		t.Errorf("Unexpected variants: %+v", view.Variants)
	}
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/healthz" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if err := c.Health(context.Background()); err != nil {
		t.Fatalf("Health() failed: %v", err)
	}
}

func TestHealth_Unhealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if err := c.Health(context.Background()); err == nil {
		t.Fatal("Expected error for unhealthy service, got nil")
	}
}
