package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/voteportal/internal/client/models"
)

const (
	registerPath = "/Auth/register"
	loginPath    = "/Auth/login"
)

// HTTPClient talks JSON to the remote API. Every request carries
// "Authorization: Bearer <token>" when the TokenSource has a token.
// Requests are never retried.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	timeout time.Duration
}

type Option func(*HTTPClient)

// WithTimeout bounds each request. Zero, the default, means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.timeout = d }
}

func NewHTTPClient(baseURL string, tokens TokenSource, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *HTTPClient) BaseURL() string { return c.baseURL }

func (c *HTTPClient) Register(ctx context.Context, cred models.Credential) RegisterResult {
	var resp models.RegisterResponse
	if err := c.do(ctx, http.MethodPost, registerPath, cred, &resp); err != nil {
		return RegisterResult{Outcome: OutcomeTransportFailure, Err: err}
	}
	if !resp.Success {
		return RegisterResult{Outcome: OutcomeSoftFailure, Response: &resp}
	}
	return RegisterResult{Outcome: OutcomeSuccess, Response: &resp}
}

func (c *HTTPClient) Login(ctx context.Context, matric, password string) LoginResult {
	var resp models.LoginResponse
	req := models.LoginRequest{MatricNumber: matric, Password: password}
	if err := c.do(ctx, http.MethodPost, loginPath, req, &resp); err != nil {
		// The API answered 2xx, so an unreadable body is a reply without a token.
		if errors.Is(err, ErrMalformedResponse) {
			return LoginResult{Outcome: OutcomeSoftFailure, Err: err}
		}
		return LoginResult{Outcome: OutcomeTransportFailure, Err: err}
	}
	if resp.Token == "" {
		return LoginResult{Outcome: OutcomeSoftFailure}
	}
	return LoginResult{Outcome: OutcomeSuccess, Token: resp.Token}
}

// Ping reports whether the API host answers at all; any HTTP status counts.
func (c *HTTPClient) Ping(ctx context.Context) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}

func (c *HTTPClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if err := c.authorize(ctx, req); err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrMalformedResponse)
		}
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

func (c *HTTPClient) authorize(ctx context.Context, req *http.Request) error {
	if c.tokens == nil {
		return nil
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("read session token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return nil
}
