package assignment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// fakeAssignmentServer returns an httptest server that answers the evaluate
// endpoint with a fixed set of flag results.
func fakeAssignmentServer(t *testing.T, flags []flagResult, wantKey string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/flags/evaluate" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer "+wantKey {
			t.Errorf("Expected bearer auth with '%s', got '%s'", wantKey, got)
		}

		var req evaluateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}
		if req.User.ID == "" {
			t.Error("Expected user id in request")
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(evaluateResponse{Flags: flags})
	}))
}

func TestAssign_EnabledVariant(t *testing.T) {
	srv := fakeAssignmentServer(t, []flagResult{
		{Key: "qa_model", Enabled: true, Variant: "gpt-4"},
	}, "test-key")
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "qa_model")
	variant, err := c.Assign(context.Background(), "user-123")
	if err != nil {
		t.Fatalf("Assign() failed: %v", err)
	}
	if variant != "gpt-4" {
		t.Errorf("Expected variant 'gpt-4', got '%s'", variant)
	}
}

func TestAssign_DisabledFlag(t *testing.T) {
	srv := fakeAssignmentServer(t, []flagResult{
		{Key: "qa_model", Enabled: false, Variant: "gpt-4"},
	}, "test-key")
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "qa_model")
	variant, err := c.Assign(context.Background(), "user-123")
	if err != nil {
		t.Fatalf("Assign() failed: %v", err)
	}
	if variant != "" {
		t.Errorf("Expected empty variant for disabled flag, got '%s'", variant)
	}
}

func TestAssign_FlagAbsent(t *testing.T) {
	srv := fakeAssignmentServer(t, []flagResult{}, "test-key")
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "qa_model")
	variant, err := c.Assign(context.Background(), "user-123")
	if err != nil {
		t.Fatalf("Expected absent flag to not be an error, got: %v", err)
	}
	if variant != "" {
		t.Errorf("Expected empty variant for absent flag, got '%s'", variant)
	}
}

func TestAssign_IgnoresOtherFlags(t *testing.T) {
	srv := fakeAssignmentServer(t, []flagResult{
		{Key: "other_flag", Enabled: true, Variant: "treatment"},
		{Key: "qa_model", Enabled: true, Variant: "control"},
	}, "test-key")
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "qa_model")
	variant, err := c.Assign(context.Background(), "user-123")
	if err != nil {
		t.Fatalf("Assign() failed: %v", err)
	}
	if variant != "control" {
		t.Errorf("Expected variant 'control', got '%s'", variant)
	}
}

func TestAssign_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "qa_model")
	if _, err := c.Assign(context.Background(), "user-123"); err == nil {
		t.Fatal("Expected error for 500 response, got nil")
	}
}

func TestAssign_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // Closed before the request is made

	c := NewClient(srv.URL, "test-key", "qa_model")
	if _, err := c.Assign(context.Background(), "user-123"); err == nil {
		t.Fatal("Expected transport error, got nil")
	}
}
