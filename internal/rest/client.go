package rest

// Package rest implements the single configured transport used by all
// domain services. It attaches the cached bearer token to every outgoing
// request, unwraps the backend's response envelope, and maps failures into
// the application error taxonomy. It deliberately knows nothing about
// navigation: an authorization failure is returned as a typed outcome and
// the top-level controller decides what to do with the session.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/criseulises/customer-admin-go/internal/errors"
	"github.com/criseulises/customer-admin-go/internal/ports"
)

// envelope is the uniform backend response body:
// {success, message, data, timestamp}.
type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Timestamp string          `json:"timestamp"`
}

// ClientOptions groups dependencies for Client.
type ClientOptions struct {
	// BaseURL is the fixed base address of the backend, e.g. "https://api.example.com".
	BaseURL string
	// Sessions supplies the bearer token for outgoing requests. Requests
	// proceed unauthenticated when no session is stored (login).
	Sessions ports.SessionStore
	// HTTPClient overrides the underlying transport; nil uses a default
	// client with the transport's own timeout behavior.
	HTTPClient *http.Client
}

// Client is the configured API transport.
type Client struct {
	base     *url.URL
	http     *http.Client
	sessions ports.SessionStore
	logger   *slog.Logger
}

var _ ports.APIClient = (*Client)(nil)

// NewClient constructs a Client. The base URL is validated once here; every
// request path is resolved against it.
func NewClient(opts ClientOptions) (*Client, error) {
	if opts.Sessions == nil {
		return nil, errors.New("session store is required")
	}
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", opts.BaseURL)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		base:     base,
		http:     httpClient,
		sessions: opts.Sessions,
		logger:   slog.Default(),
	}, nil
}

// SetTimeout sets the underlying client timeout. Zero keeps the transport default.
func (c *Client) SetTimeout(d time.Duration) { c.http.Timeout = d }

// Get issues a GET request and decodes the envelope's data into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST request with a JSON body and decodes data into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT request with a JSON body and decodes data into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete issues a DELETE request, discarding any response data.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// No response received: fixed generic message per the error contract.
		return apperrors.Wrap(err, apperrors.ErrCodeConnection, "connection error")
	}
	defer resp.Body.Close()

	return c.decodeResponse(resp, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "encode request body")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	// Attach the cached bearer token when one exists. A missing or
	// unreadable session means the request goes out unauthenticated.
	sess, sessErr := c.sessions.Current(ctx)
	switch {
	case sessErr == nil && sess.Token != "":
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	case sessErr != nil && !errors.Is(sessErr, ports.ErrNoSession):
		c.logger.Warn("session store read failed; sending unauthenticated request",
			"method", method, "path", path, "error", sessErr)
	}

	return req, nil
}

func (c *Client) decodeResponse(resp *http.Response, out any) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeConnection, "connection error")
	}

	var env envelope
	envErr := json.Unmarshal(raw, &env)

	if resp.StatusCode == http.StatusUnauthorized {
		// Typed outcome; the controller owns session teardown.
		msg := "unauthorized"
		if envErr == nil && env.Message != "" {
			msg = env.Message
		}
		return apperrors.Unauthorized(msg)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if envErr == nil && env.Message != "" {
			// Well-formed error envelope: surface the backend's message verbatim.
			return apperrors.Backend(env.Message)
		}
		// No usable envelope. The message stays empty so the calling
		// service substitutes its operation-specific default.
		return &apperrors.AppError{
			Code:  apperrors.ErrCodeBackend,
			Cause: fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	if envErr != nil {
		return &apperrors.AppError{
			Code:  apperrors.ErrCodeDecode,
			Cause: fmt.Errorf("decode response envelope: %w", envErr),
		}
	}
	if !env.Success {
		if env.Message != "" {
			return apperrors.Backend(env.Message)
		}
		return &apperrors.AppError{
			Code:  apperrors.ErrCodeBackend,
			Cause: errors.New("backend reported failure without a message"),
		}
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &apperrors.AppError{
			Code:  apperrors.ErrCodeDecode,
			Cause: fmt.Errorf("decode response data: %w", err),
		}
	}
	return nil
}
