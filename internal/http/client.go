package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// DefaultUserAgent is sent when no user agent is configured.
const DefaultUserAgent = "studycafe-tui"

// maxErrorBody bounds how much of a failed response is kept for diagnostics.
const maxErrorBody = 4096

// Client wraps HTTP operations with studycafe-specific configuration.
//
// Client provides:
//   - Configured User-Agent header
//   - A fresh X-Request-ID on every request, for correlating server logs
//   - Timeout handling
//   - Typed StatusError for non-200 responses
//
// Example usage:
//
//	client := NewClient(WithTimeout(10 * time.Second))
//
//	var info model.ServiceInfo
//	err := client.GetJSON(ctx, "http://localhost:8001/api/info", &info)
//
//	var statusErr *StatusError
//	if errors.As(err, &statusErr) && statusErr.Code == 404 {
//	    // resource absent
//	}
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if strings.TrimSpace(ua) != "" {
			c.userAgent = ua
		}
	}
}

// NewClient creates a new HTTP client.
//
// The client is configured with:
//   - 60 second timeout
//   - "studycafe-tui" User-Agent header
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StatusError is returned when the server answers with a non-200 status.
type StatusError struct {
	// Code is the HTTP status code.
	Code int

	// Status is the status line text, e.g. "404 Not Found".
	Status string

	// Detail is the "detail" field of a JSON error body, if any.
	Detail string

	// URL is the requested URL.
	URL string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("HTTP %d: %s", e.Code, e.Detail)
	}
	return fmt.Sprintf("HTTP %d: %s", e.Code, e.Status)
}

// NotFound reports whether the server said the resource does not exist.
func (e *StatusError) NotFound() bool {
	return e.Code == http.StatusNotFound
}

// Get performs a GET request and returns the response body as bytes.
//
// The request includes the configured User-Agent header and a new
// X-Request-ID. No Accept header is sent, so any content type is fine.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 200 OK (as *StatusError)
//   - Reading the body fails
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	return c.get(ctx, url, "")
}

// GetJSON performs a GET request asking for JSON and decodes the body into v.
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	body, err := c.get(ctx, url, "application/json")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

// DownloadBytes downloads a file and returns the bytes in memory.
//
// Use this for small files like gallery images.
func (c *Client) DownloadBytes(ctx context.Context, url string) ([]byte, error) {
	return c.Get(ctx, url)
}

func (c *Client) get(ctx context.Context, url, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{
			Code:   resp.StatusCode,
			Status: resp.Status,
			Detail: errorDetail(body),
			URL:    url,
		}
	}

	return io.ReadAll(resp.Body)
}

// errorDetail extracts a human readable message from an error body.
// FastAPI sends {"detail": "..."}; other servers may send {"message": "..."}.
func errorDetail(body []byte) string {
	if len(body) == 0 || !gjson.ValidBytes(body) {
		return ""
	}
	for _, path := range []string{"detail", "message", "error"} {
		if result := gjson.GetBytes(body, path); result.Exists() && result.Type == gjson.String {
			return result.String()
		}
	}
	return ""
}
