// Package apiclient provides the authenticated REST client for invctl.
//
// Every outbound call reads the current session, attaches the bearer
// credential when one exists, and classifies the response. A 401 clears the
// session store through a single choke point regardless of which resource
// method triggered the call; every other failure is surfaced to the caller.
package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CredentialSource provides the bearer credential for outbound requests and
// the clear hook invoked when the server rejects it. The session store
// implements it.
type CredentialSource interface {
	// Token returns the current credential, or false when no session exists.
	Token() (string, bool)
	// Clear destroys the session. Must be idempotent: concurrent requests
	// failing with 401 all trigger it.
	Clear()
}

// Client is the inventory service API client.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	creds        CredentialSource
	token        string
	onSessionEnd func()
	sessionEnd   *sync.Once
	logger       zerolog.Logger
}

// New creates a new API client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		sessionEnd: &sync.Once{},
		logger:     zerolog.Nop(),
	}
}

// WithToken returns a copy of the client that always sends the given token,
// bypassing any credential source. Used by the --token override.
func (c *Client) WithToken(token string) *Client {
	copied := *c
	copied.token = token
	return &copied
}

// WithCredentials returns a copy of the client that reads its credential
// from the source before every request.
func (c *Client) WithCredentials(creds CredentialSource) *Client {
	copied := *c
	copied.creds = creds
	return &copied
}

// WithLogger returns a copy of the client using the given logger.
func (c *Client) WithLogger(logger zerolog.Logger) *Client {
	copied := *c
	copied.logger = logger
	return &copied
}

// OnSessionEnd returns a copy of the client that invokes fn after the
// session has been cleared by a 401. The hook fires at most once per client
// chain even when several concurrent requests are rejected together.
func (c *Client) OnSessionEnd(fn func()) *Client {
	copied := *c
	copied.onSessionEnd = fn
	return &copied
}

// endSession clears the session store and fires the session-end hook. The
// sync.Once pointer is shared across With* copies, so the hook fires once
// per client chain; the store's own Clear is idempotent on top of that.
func (c *Client) endSession() {
	c.sessionEnd.Do(func() {
		if c.creds != nil {
			c.creds.Clear()
		}
		if c.onSessionEnd != nil {
			c.onSessionEnd()
		}
	})
}

// credential resolves the token to attach, if any.
func (c *Client) credential() (string, bool) {
	if c.token != "" {
		return c.token, true
	}
	if c.creds != nil {
		return c.creds.Token()
	}
	return "", false
}

// do performs an HTTP request, classifies the response and decodes the body.
func (c *Client) do(method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	if tok, ok := c.credential(); ok {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Msg("api request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Str("request_id", requestID).Msg("api transport failure")
		return &APIError{
			Class:   ClassTransport,
			Message: fmt.Sprintf("request failed: %v", err),
			cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{
			Class:   ClassTransport,
			Message: fmt.Sprintf("failed to read response body: %v", err),
			cause:   err,
		}
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Str("request_id", requestID).
		Msg("api response")

	if resp.StatusCode >= 400 {
		apiErr := classify(resp.StatusCode, respBody)
		if apiErr.Class == ClassUnauthenticated {
			c.endSession()
		}
		return apiErr
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// classify maps a non-2xx response onto the error taxonomy, pulling the
// server-supplied message out of the body when one exists.
func classify(status int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: status,
		Message:    serverMessage(body),
	}

	switch {
	case status == http.StatusUnauthorized:
		apiErr.Class = ClassUnauthenticated
	case status == http.StatusForbidden:
		apiErr.Class = ClassForbidden
	case status < 500:
		apiErr.Class = ClassClient
	default:
		apiErr.Class = ClassServer
	}
	return apiErr
}

// serverMessage extracts the message from an error body. The service wraps
// errors as {"error": "..."} but {"message": "..."} appears on some routes.
func serverMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return strings.TrimSpace(string(body))
}

// get performs a GET request.
func (c *Client) get(path string, result any) error {
	return c.do(http.MethodGet, path, nil, result)
}

// post performs a POST request.
func (c *Client) post(path string, body, result any) error {
	return c.do(http.MethodPost, path, body, result)
}

// put performs a PUT request.
func (c *Client) put(path string, body, result any) error {
	return c.do(http.MethodPut, path, body, result)
}

// delete performs a DELETE request.
func (c *Client) delete(path string, result any) error {
	return c.do(http.MethodDelete, path, nil, result)
}
