package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// HTTPClient is the production Client: JSON over net/http against a single
// base URL, with auth and request-id headers on every call.
type HTTPClient struct {
	base   *url.URL
	hc     *http.Client
	tokens TokenSource

	// Logf receives developer-visible traces. Defaults to a no-op.
	Logf func(format string, args ...any)
}

// HTTPOptions configures NewHTTPClient.
type HTTPOptions struct {
	BaseURL string
	Tokens  TokenSource
	Timeout time.Duration
	// HTTPClient overrides the underlying client (tests).
	HTTPClient *http.Client
}

// NewHTTPClient builds an HTTPClient for the given base URL.
func NewHTTPClient(opts HTTPOptions) (*HTTPClient, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", opts.BaseURL)
	}

	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}

	tokens := opts.Tokens
	if tokens == nil {
		tokens = StaticToken("")
	}

	return &HTTPClient{
		base:   base,
		hc:     hc,
		tokens: tokens,
		Logf:   func(string, ...any) {},
	}, nil
}

func (c *HTTPClient) GetPlan(ctx context.Context, q PlanQuery) (any, error) {
	params := url.Values{}
	params.Set("role", q.Role)
	params.Set("date", q.Date)
	params.Set("part", q.Kind)
	return c.do(ctx, http.MethodGet, "/daily-plans", params, nil)
}

func (c *HTTPClient) CreateSession(ctx context.Context, req CreateSessionRequest) (any, error) {
	return c.do(ctx, http.MethodPost, "/quiz-sessions", nil, req)
}

func (c *HTTPClient) GetSessionSummary(ctx context.Context, sessionID int64) (any, error) {
	return c.do(ctx, http.MethodGet, "/quiz-sessions/"+strconv.FormatInt(sessionID, 10), nil, nil)
}

func (c *HTTPClient) GetSessionItems(ctx context.Context, sessionID int64, withAnswers bool) (any, error) {
	params := url.Values{}
	if withAnswers {
		params.Set("withAnswers", "true")
	}
	return c.do(ctx, http.MethodGet, "/quiz-sessions/"+strconv.FormatInt(sessionID, 10)+"/items", params, nil)
}

func (c *HTTPClient) Get(ctx context.Context, path string, params url.Values) (any, error) {
	return c.do(ctx, http.MethodGet, path, params, nil)
}

func (c *HTTPClient) Submit(ctx context.Context, sub Submission) (any, error) {
	// The submit payload is the one place strictness beats tolerance:
	// refuse to send anything the contract schema rejects.
	if err := validateSubmission(sub); err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, "/quiz-sessions/"+strconv.FormatInt(sub.SessionID, 10)+"/submit", nil, sub)
}

func (c *HTTPClient) RetryWrong(ctx context.Context, sessionID int64) (any, error) {
	return c.do(ctx, http.MethodPost, "/quiz-sessions/"+strconv.FormatInt(sessionID, 10)+"/retry-wrong", nil, nil)
}

func (c *HTTPClient) GetReport(ctx context.Context, sessionID int64) (any, error) {
	return c.do(ctx, http.MethodGet, "/quiz-sessions/"+strconv.FormatInt(sessionID, 10)+"/report", nil, nil)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, params url.Values, body any) (any, error) {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	if params != nil {
		u.RawQuery = params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &ErrTransport{Path: path, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, &ErrAuth{Status: resp.StatusCode, Path: path}
	case resp.StatusCode >= 400:
		return nil, &ErrTransport{Status: resp.StatusCode, Path: path}
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		if err == io.EOF {
			return nil, nil // 2xx with empty body (submit ack on some versions)
		}
		return nil, &ErrTransport{Status: resp.StatusCode, Path: path, Err: fmt.Errorf("decode response: %w", err)}
	}
	return payload, nil
}
