// File: /apiclient/client.go
//
// Package apiclient talks to the remote REST API gateway on behalf of one
// browser session. Every call is attempted once.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	ErrUnauthorized = errors.New("api: unauthorized")
	ErrNotFound     = errors.New("api: not found")
)

const maxPages = 100

// APIError is returned for any non-2xx response.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	body := e.Body
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	return fmt.Sprintf("api: %s %s returned %d: %s", e.Method, e.Path, e.StatusCode, body)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// TokenSource supplies the bearer token of the current session.
type TokenSource interface {
	AccessToken() string
}

type Client struct {
	baseURL *url.URL
	http    *http.Client
	tokens  TokenSource
}

func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// NewClient returns a client for baseURL. tokens may be nil for anonymous use.
func NewClient(baseURL string, httpClient *http.Client, tokens TokenSource) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL: %w", err)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: u, http: httpClient, tokens: tokens}, nil
}

func (c *Client) resolve(path string) string {
	ref, err := url.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return c.baseURL.String() + strings.TrimPrefix(path, "/")
	}
	return c.baseURL.ResolveReference(ref).String()
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.resolve(path), body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.AccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: string(data)}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("api: failed to decode %s %s: %w", method, path, err)
	}
	return nil
}

// pageEnvelope is the gateway's paginated list envelope.
type pageEnvelope struct {
	Count   int             `json:"count"`
	Next    *string         `json:"next"`
	Results json.RawMessage `json:"results"`
}

// getList fetches every page of a list endpoint. A bare JSON array is accepted too.
func getList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	out := []T{}
	next := path

	for i := 0; next != ""; i++ {
		if i == maxPages {
			return nil, fmt.Errorf("api: %s: more than %d pages", path, maxPages)
		}

		var raw json.RawMessage
		if err := c.do(ctx, http.MethodGet, next, nil, &raw); err != nil {
			return nil, err
		}
		raw = bytes.TrimSpace(raw)

		if len(raw) > 0 && raw[0] == '[' {
			var items []T
			if err := json.Unmarshal(raw, &items); err != nil {
				return nil, fmt.Errorf("api: failed to decode %s: %w", path, err)
			}
			return append(out, items...), nil
		}

		var p pageEnvelope
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("api: failed to decode %s: %w", path, err)
		}
		var items []T
		if len(p.Results) > 0 {
			if err := json.Unmarshal(p.Results, &items); err != nil {
				return nil, fmt.Errorf("api: failed to decode %s results: %w", path, err)
			}
		}
		out = append(out, items...)

		next = ""
		if p.Next != nil {
			next = *p.Next
		}
	}
	return out, nil
}
