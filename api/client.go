// File: api/client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"hobyhub/config"
	"hobyhub/utils"

	"go.uber.org/zap"
)

// Error is a typed failure from the upstream HobyHub API. Decode failures
// and non-2xx statuses both surface as *Error so callers can distinguish
// upstream trouble from local bugs.
type Error struct {
	Status  int    `json:"status"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("upstream: %s (status %d, code %s)", e.Message, e.Status, e.Code)
	}
	return fmt.Sprintf("upstream: %s (status %d)", e.Message, e.Status)
}

// Client is a typed client for the upstream HobyHub REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient builds a client against the configured upstream base URL.
func NewClient() *Client {
	timeout := time.Duration(config.AppConfig.UpstreamTimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return NewClientWithBase(config.AppConfig.UpstreamAPIURL, timeout)
}

// NewClientWithBase builds a client against an explicit base URL.
func NewClientWithBase(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     utils.GetLogger(),
	}
}

// BaseURL returns the upstream base URL the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do issues the request and decodes the response body into dest.
// A nil dest discards the body. Responses are parsed, never trusted raw:
// any decode failure is reported as an *Error.
func (c *Client) do(ctx context.Context, method, path string, body any, token string, dest any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var wire struct {
			Message string `json:"message"`
			Error   string `json:"error"`
			Code    string `json:"code"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&wire); decodeErr == nil {
			if wire.Message != "" {
				apiErr.Message = wire.Message
			} else if wire.Error != "" {
				apiErr.Message = wire.Error
			}
			apiErr.Code = wire.Code
		}
		c.logger.Warn("Upstream returned error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return apiErr
	}

	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		c.logger.Error("Failed to decode upstream response",
			zap.String("path", path), zap.Error(err))
		return &Error{Status: resp.StatusCode, Code: "malformed_response",
			Message: fmt.Sprintf("malformed response body: %v", err)}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path, token string, dest any) error {
	return c.do(ctx, http.MethodGet, path, nil, token, dest)
}

func (c *Client) post(ctx context.Context, path string, body any, token string, dest any) error {
	return c.do(ctx, http.MethodPost, path, body, token, dest)
}

func (c *Client) put(ctx context.Context, path string, body any, token string, dest any) error {
	return c.do(ctx, http.MethodPut, path, body, token, dest)
}

func (c *Client) delete(ctx context.Context, path, token string) error {
	return c.do(ctx, http.MethodDelete, path, nil, token, nil)
}
