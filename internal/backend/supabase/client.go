// Package supabase implements the service.Store interface against a
// Supabase project's PostgREST API.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"taskboard/internal/config"
	"taskboard/internal/service"
)

const (
	// restPrefix is the PostgREST mount point on a Supabase project.
	restPrefix = "/rest/v1"

	// APITimeout is the timeout for API calls.
	APITimeout = 5 * time.Second
)

// Client implements service.Store over the PostgREST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates a new PostgREST client. The API key is injected as a
// bearer token through an oauth2 static token source; Supabase also
// wants it repeated in the apikey header, which do() adds per request.
func New(ctx context.Context, creds *config.Credentials) *Client {
	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: creds.APIKey,
		TokenType:   "Bearer",
	})
	return &Client{
		baseURL:    strings.TrimRight(creds.URL, "/"),
		apiKey:     creds.APIKey,
		httpClient: oauth2.NewClient(ctx, tokenSource),
	}
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// ListTasks returns all tasks ordered by creation time ascending.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	body, err := c.do(ctx, http.MethodGet, "tasks", url.Values{
		"select": {"*"},
		"order":  {"created_at.asc"},
	}, nil)
	if err != nil {
		return nil, err
	}

	var tasks []service.Task
	if err := json.Unmarshal(body, &tasks); err != nil {
		return nil, fmt.Errorf("invalid tasks response: %w", err)
	}
	return tasks, nil
}

// ListPeople returns all people ordered by name ascending.
func (c *Client) ListPeople(ctx context.Context) ([]service.Person, error) {
	body, err := c.do(ctx, http.MethodGet, "people", url.Values{
		"select": {"*"},
		"order":  {"name.asc"},
	}, nil)
	if err != nil {
		return nil, err
	}

	var people []service.Person
	if err := json.Unmarshal(body, &people); err != nil {
		return nil, fmt.Errorf("invalid people response: %w", err)
	}
	return people, nil
}

// UpdateTaskStatus patches the status and updated_at of the row matching id.
func (c *Client) UpdateTaskStatus(ctx context.Context, id, status string) error {
	patch := map[string]string{
		"status":     status,
		"updated_at": time.Now().UTC().Format(time.RFC3339),
	}
	_, err := c.do(ctx, http.MethodPatch, "tasks", url.Values{
		"id": {"eq." + id},
	}, patch)
	return err
}

// InsertTask appends a new task row.
func (c *Client) InsertTask(ctx context.Context, task service.Task) error {
	_, err := c.do(ctx, http.MethodPost, "tasks", nil, []service.Task{task})
	return err
}

// do performs one PostgREST request and returns the response body.
func (c *Client) do(ctx context.Context, method, table string, query url.Values, payload any) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	endpoint := c.baseURL + restPrefix + "/" + table
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Prefer", "return=minimal")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, wrapError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp.StatusCode, body)
	}
	return body, nil
}

// statusError maps PostgREST error statuses to user-friendly messages.
func statusError(code int, body []byte) error {
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("api key rejected (run: taskboard connect)")
	case code == http.StatusNotFound:
		return fmt.Errorf("not found")
	}

	// PostgREST error bodies carry a message field.
	var pgErr struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &pgErr); err == nil && pgErr.Message != "" {
		return fmt.Errorf("store error (%d): %s", code, pgErr.Message)
	}
	return fmt.Errorf("store error (%d)", code)
}

// wrapError wraps transport errors with user-friendly messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "context deadline exceeded") {
		return fmt.Errorf("request timed out")
	}
	return err
}
