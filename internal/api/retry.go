package api

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"net/http"
	"net/url"
	"time"
)

// RetryConfig configures retry behavior for transient transport failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultRetryConfig returns the standard tuning.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 500 * time.Millisecond,
		MaxWait:     8 * time.Second,
		Multiplier:  2.0,
	}
}

// RetryClient is a decorator that retries transient transport errors with
// exponential backoff and jitter. Auth failures and context cancellation
// are never retried; client-side HTTP errors (4xx other than 429) are not
// transient and pass through.
type RetryClient struct {
	inner  Client
	config RetryConfig
}

// WithRetry wraps a Client with retry logic.
func WithRetry(c Client, cfg RetryConfig) Client {
	return &RetryClient{inner: c, config: cfg}
}

func (r *RetryClient) GetPlan(ctx context.Context, q PlanQuery) (any, error) {
	return r.do(ctx, func() (any, error) { return r.inner.GetPlan(ctx, q) })
}

func (r *RetryClient) CreateSession(ctx context.Context, req CreateSessionRequest) (any, error) {
	return r.do(ctx, func() (any, error) { return r.inner.CreateSession(ctx, req) })
}

func (r *RetryClient) GetSessionSummary(ctx context.Context, sessionID int64) (any, error) {
	return r.do(ctx, func() (any, error) { return r.inner.GetSessionSummary(ctx, sessionID) })
}

func (r *RetryClient) GetSessionItems(ctx context.Context, sessionID int64, withAnswers bool) (any, error) {
	return r.do(ctx, func() (any, error) { return r.inner.GetSessionItems(ctx, sessionID, withAnswers) })
}

func (r *RetryClient) Get(ctx context.Context, path string, params url.Values) (any, error) {
	return r.do(ctx, func() (any, error) { return r.inner.Get(ctx, path, params) })
}

func (r *RetryClient) Submit(ctx context.Context, sub Submission) (any, error) {
	// Submit is not idempotent on every backend version; one attempt only.
	return r.inner.Submit(ctx, sub)
}

func (r *RetryClient) RetryWrong(ctx context.Context, sessionID int64) (any, error) {
	return r.do(ctx, func() (any, error) { return r.inner.RetryWrong(ctx, sessionID) })
}

func (r *RetryClient) GetReport(ctx context.Context, sessionID int64) (any, error) {
	return r.do(ctx, func() (any, error) { return r.inner.GetReport(ctx, sessionID) })
}

func (r *RetryClient) do(ctx context.Context, op func() (any, error)) (any, error) {
	var lastErr error

	for attempt := 0; attempt < r.config.MaxAttempts; attempt++ {
		v, err := op()
		if err == nil {
			return v, nil
		}
		lastErr = err

		if !shouldRetry(err) {
			return nil, err
		}
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.backoff(attempt)):
		}
	}

	return nil, lastErr
}

func shouldRetry(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if IsAuth(err) {
		return false
	}

	var tr *ErrTransport
	if errors.As(err, &tr) {
		switch {
		case tr.Status == 0: // network-level failure
			return true
		case tr.Status == http.StatusTooManyRequests:
			return true
		case tr.Status >= 500:
			return true
		}
		return false
	}

	// Anything else (encode errors, schema rejection) is deterministic.
	return false
}

func (r *RetryClient) backoff(attempt int) time.Duration {
	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	// ±20% jitter.
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
