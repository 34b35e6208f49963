// Package api is a thin client for the EventHub REST backend.
//
// Every call is a single attempt: no retries, no backoff and no timeout
// beyond what the caller's context imposes.
package api

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

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"
)

// TokenSource returns the bearer token for the next request, or "" for none.
type TokenSource func() string

// Client is the API client for the EventHub backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      TokenSource
	userAgent  string
	log        zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTokenSource sets where the bearer token is read from.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.token = ts }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithLogger sets the client logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a new API client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		token:     func() string { return "" },
		userAgent: "eventhub",
		log:       zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// envelope is the wrapper every backend response uses.
type envelope struct {
	Success bool                `json:"success"`
	Data    json.RawMessage     `json:"data"`
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// call describes a single request.
type call struct {
	method string
	path   string
	query  url.Values
	body   any
	token  string // overrides the token source when set
}

// do performs the call and decodes the envelope's data into out (if non-nil).
func (c *Client) do(ctx context.Context, in call, out any) error {
	var body io.Reader
	if in.body != nil {
		data, err := json.Marshal(in.body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	target := c.baseURL + in.path
	if len(in.query) > 0 {
		target += "?" + in.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, in.method, target, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if in.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token := in.token
	if token == "" {
		token = c.token()
	}
	if token != "" {
		(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}).SetAuthHeader(req)
	}

	log := c.log.With().
		Str("method", in.method).
		Str("path", in.path).
		Str("request_id", requestID).
		Logger()
	log.Debug().Msg("api request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug().Err(err).Msg("api request failed")
		return c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	log.Debug().Int("status", resp.StatusCode).Msg("api response")

	ok := resp.StatusCode >= 200 && resp.StatusCode <= 299

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)
	if ok && errors.Is(decodeErr, io.EOF) {
		// empty 2xx body, nothing to decode
		return nil
	}

	if !ok || (decodeErr == nil && !env.Success) {
		apiErr := &Error{StatusCode: resp.StatusCode}
		if decodeErr == nil {
			apiErr.Message = env.Message
			apiErr.Fields = env.Errors
		}
		return apiErr
	}

	if decodeErr != nil {
		return &Error{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("invalid response from backend: %w", decodeErr),
		}
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return &Error{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("invalid response data: %w", err),
		}
	}

	return nil
}

// handleRequestError converts transport failures to user-friendly errors.
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	switch ctx.Err() {
	case context.Canceled:
		return &Error{Err: fmt.Errorf("request canceled: %w", err)}
	case context.DeadlineExceeded:
		return &Error{Err: fmt.Errorf("request timed out: %w", err)}
	}
	return &Error{Err: fmt.Errorf("cannot connect to backend at %s: %w", c.baseURL, err)}
}
