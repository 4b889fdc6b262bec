// Package webhook is the HTTP client for the externally-hosted workflow
// automation endpoints. The only unusual thing about it is the configurable
// request content type: the hosted service is known to accept
// text/plain;charset=UTF-8 bodies that are in fact JSON.
package webhook

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// UpstreamError is a non-success HTTP response from the webhook. Status and
// the raw response body are kept for diagnostics.
type UpstreamError struct {
	Status  int
	Details string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("webhook returned status %d: %s", e.Status, e.Details)
}

type Client struct {
	HTTPClient  *http.Client
	ContentType string
}

func NewClient(contentType string) *Client {
	if contentType == "" {
		contentType = "application/json"
	}
	return &Client{
		HTTPClient:  &http.Client{Timeout: 120 * time.Second},
		ContentType: contentType,
	}
}

// Post sends payload to url and returns the raw response body. Callers own
// interpretation of the body, including the empty-body case.
func (c *Client) Post(ctx context.Context, url string, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("webhook: create request: %w", err)
	}
	req.Header.Set("Content-Type", c.ContentType)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("webhook: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("webhook: read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &UpstreamError{Status: resp.StatusCode, Details: string(body)}
	}
	return body, nil
}
