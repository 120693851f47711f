package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	logrus "github.com/sirupsen/logrus"

	"fleet_console/internal/logger"
)

// Error is a server-rejected request: the backend answered with a non-2xx
// status and, optionally, a human-readable msg.
type Error struct {
	Status int
	Msg    string
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Msg)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

// Message returns the server-supplied msg when err is a rejected request.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Msg
	}
	return ""
}

func isStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}

func IsNotFound(err error) bool     { return isStatus(err, http.StatusNotFound) }
func IsUnauthorized(err error) bool { return isStatus(err, http.StatusUnauthorized) }
func IsForbidden(err error) bool    { return isStatus(err, http.StatusForbidden) }

// IsTimeout reports whether the call hit its deadline before a response.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// IsNetwork reports a transport failure: no response was received at all.
// Server-rejected requests (*Error) are not network failures.
func IsNetwork(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *Error
	return !errors.As(err, &apiErr)
}

// TokenSource supplies the bearer token attached to every request.
type TokenSource interface {
	BearerToken() string
}

// Client is the authenticated HTTP wrapper around the fleet backend. One
// attempt per call, no retries; the caller decides how to surface failures.
type Client struct {
	base   string
	tokens TokenSource
	client *http.Client
	log    *logrus.Entry
}

// NewClient builds a client for the given base path. tokens may be nil for
// unauthenticated use (the login call).
func NewClient(base string, tokens TokenSource) *Client {
	return &Client{
		base:   strings.TrimRight(base, "/"),
		tokens: tokens,
		client: &http.Client{},
		log:    logger.Component("api"),
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if c.tokens != nil {
		if token := c.tokens.BearerToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		// No response received: a network failure or timeout, never *Error.
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{Status: resp.StatusCode}
		var rejected struct {
			Msg string `json:"msg"`
		}
		if json.Unmarshal(data, &rejected) == nil {
			apiErr.Msg = rejected.Msg
		}
		c.log.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
			"status": resp.StatusCode,
		}).Warn("request rejected")
		return apiErr
	}

	if out != nil {
		return json.Unmarshal(data, out)
	}
	return nil
}

func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}
