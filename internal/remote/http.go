package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ErrUnavailable wraps a transient server-side or network failure.
type ErrUnavailable struct {
	Status int
	Err    error
}

func (e *ErrUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("remote unavailable: %v", e.Err)
	}
	return fmt.Sprintf("remote unavailable: HTTP %d", e.Status)
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrRateLimited reports a quota rejection, with the server's suggested
// backoff if it sent one.
type ErrRateLimited struct {
	RetryAfter time.Duration
}

func (e *ErrRateLimited) Error() string {
	return fmt.Sprintf("remote rate limited (retry after %s)", e.RetryAfter)
}

// Client is an HTTP document store client. Documents live at
// {base}/v1/accounts/{id}/usage; GET reads, PATCH merge-writes.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a Client for the given endpoint. token may be empty
// for unauthenticated deployments.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) docURL(accountID string) string {
	return fmt.Sprintf("%s/v1/accounts/%s/usage", c.baseURL, url.PathEscape(accountID))
}

func (c *Client) Load(ctx context.Context, accountID string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.docURL(accountID), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	c.auth(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ErrUnavailable{Err: err}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if doc.Usage == nil {
		doc.Usage = map[string]int{}
	}
	return &doc, nil
}

func (c *Client) Merge(ctx context.Context, accountID string, fields map[string]any) error {
	body, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("marshal fields: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.docURL(accountID), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.auth(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return &ErrUnavailable{Err: err}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	// PATCH upserts: a 404 here is a server bug, not a missing-document
	// condition, so it falls through to the generic status check.
	return checkStatus(resp)
}

func (c *Client) auth(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return &ErrRateLimited{RetryAfter: retryAfter(resp)}
	case resp.StatusCode >= 500:
		return &ErrUnavailable{Status: resp.StatusCode}
	default:
		return fmt.Errorf("remote: HTTP %d", resp.StatusCode)
	}
}

func retryAfter(resp *http.Response) time.Duration {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return 0
}
