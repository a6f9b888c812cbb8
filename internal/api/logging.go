package api

import (
	"context"
	"net/url"
	"time"
)

// LoggingClient is a decorator that traces every backend call: operation,
// latency and outcome. Silent-degradation paths (candidate misses, shape
// misses) still leave a developer-visible trail this way.
type LoggingClient struct {
	inner Client
	logf  func(format string, args ...any)
}

// WithLogging wraps a Client with call tracing.
func WithLogging(c Client, logf func(format string, args ...any)) Client {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &LoggingClient{inner: c, logf: logf}
}

func (l *LoggingClient) trace(op string, start time.Time, err error) {
	if err != nil {
		l.logf("api %s failed in %s: %v", op, time.Since(start).Round(time.Millisecond), err)
		return
	}
	l.logf("api %s ok in %s", op, time.Since(start).Round(time.Millisecond))
}

func (l *LoggingClient) GetPlan(ctx context.Context, q PlanQuery) (any, error) {
	start := time.Now()
	v, err := l.inner.GetPlan(ctx, q)
	l.trace("get-plan", start, err)
	return v, err
}

func (l *LoggingClient) CreateSession(ctx context.Context, req CreateSessionRequest) (any, error) {
	start := time.Now()
	v, err := l.inner.CreateSession(ctx, req)
	l.trace("create-session", start, err)
	return v, err
}

func (l *LoggingClient) GetSessionSummary(ctx context.Context, sessionID int64) (any, error) {
	start := time.Now()
	v, err := l.inner.GetSessionSummary(ctx, sessionID)
	l.trace("session-summary", start, err)
	return v, err
}

func (l *LoggingClient) GetSessionItems(ctx context.Context, sessionID int64, withAnswers bool) (any, error) {
	start := time.Now()
	v, err := l.inner.GetSessionItems(ctx, sessionID, withAnswers)
	l.trace("session-items", start, err)
	return v, err
}

func (l *LoggingClient) Get(ctx context.Context, path string, params url.Values) (any, error) {
	start := time.Now()
	v, err := l.inner.Get(ctx, path, params)
	l.trace("get "+path, start, err)
	return v, err
}

func (l *LoggingClient) Submit(ctx context.Context, sub Submission) (any, error) {
	start := time.Now()
	v, err := l.inner.Submit(ctx, sub)
	l.trace("submit", start, err)
	return v, err
}

func (l *LoggingClient) RetryWrong(ctx context.Context, sessionID int64) (any, error) {
	start := time.Now()
	v, err := l.inner.RetryWrong(ctx, sessionID)
	l.trace("retry-wrong", start, err)
	return v, err
}

func (l *LoggingClient) GetReport(ctx context.Context, sessionID int64) (any, error) {
	start := time.Now()
	v, err := l.inner.GetReport(ctx, sessionID)
	l.trace("report", start, err)
	return v, err
}
