// Package assignment provides a client for the external variant-assignment service.
// The service deterministically maps a (user id, flag key) pair to a named variant
// using consistent hashing on its side; this package only speaks the wire protocol
// and never re-derives assignments locally.
package assignment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is an HTTP client for the assignment service evaluate API.
type Client struct {
	BaseURL    string
	APIKey     string
	FlagKey    string
	HTTPClient *http.Client
}

// NewClient creates a new assignment client.
func NewClient(baseURL, apiKey, flagKey string) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		FlagKey: flagKey,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type evaluateRequest struct {
	User evaluateUser `json:"user"`
	Keys []string     `json:"keys,omitempty"`
}

type evaluateUser struct {
	ID string `json:"id"`
}

type evaluateResponse struct {
	Flags []flagResult `json:"flags"`
}

type flagResult struct {
	Key     string `json:"key"`
	Enabled bool   `json:"enabled"`
	Variant string `json:"variant,omitempty"`
}

// Assign returns the variant assigned to userID for the configured flag key.
//
// An absent assignment is not an error: a disabled or unknown flag, or an
// enabled flag with no variant, yields ("", nil). The caller decides how to
// degrade. Transport failures and non-2xx responses are returned as errors.
func (c *Client) Assign(ctx context.Context, userID string) (string, error) {
	body, err := json.Marshal(evaluateRequest{
		User: evaluateUser{ID: userID},
		Keys: []string{c.FlagKey},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/flags/evaluate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("assignment API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var result evaluateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	for _, flag := range result.Flags {
		if flag.Key != c.FlagKey {
			continue
		}
		if !flag.Enabled {
			return "", nil
		}
		return flag.Variant, nil
	}

	// Flag not present in the response: treated as no assignment.
	return "", nil
}
