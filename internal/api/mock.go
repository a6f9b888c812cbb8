package api

import (
	"context"
	"net/url"
	"sync"
)

// MockClient is a deterministic Client for tests. Each operation delegates
// to its function field when set and returns (nil, nil) otherwise; every
// call is recorded.
type MockClient struct {
	mu    sync.Mutex
	Calls []string

	GetPlanFn           func(ctx context.Context, q PlanQuery) (any, error)
	CreateSessionFn     func(ctx context.Context, req CreateSessionRequest) (any, error)
	GetSessionSummaryFn func(ctx context.Context, sessionID int64) (any, error)
	GetSessionItemsFn   func(ctx context.Context, sessionID int64, withAnswers bool) (any, error)
	GetFn               func(ctx context.Context, path string, params url.Values) (any, error)
	SubmitFn            func(ctx context.Context, sub Submission) (any, error)
	RetryWrongFn        func(ctx context.Context, sessionID int64) (any, error)
	GetReportFn         func(ctx context.Context, sessionID int64) (any, error)

	// Submissions records every Submit payload that reached the mock.
	Submissions []Submission
}

func (m *MockClient) record(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, op)
}

// CallCount returns how many times op was invoked.
func (m *MockClient) CallCount(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.Calls {
		if c == op {
			n++
		}
	}
	return n
}

func (m *MockClient) GetPlan(ctx context.Context, q PlanQuery) (any, error) {
	m.record("get-plan")
	if m.GetPlanFn == nil {
		return nil, nil
	}
	return m.GetPlanFn(ctx, q)
}

func (m *MockClient) CreateSession(ctx context.Context, req CreateSessionRequest) (any, error) {
	m.record("create-session")
	if m.CreateSessionFn == nil {
		return nil, nil
	}
	return m.CreateSessionFn(ctx, req)
}

func (m *MockClient) GetSessionSummary(ctx context.Context, sessionID int64) (any, error) {
	m.record("session-summary")
	if m.GetSessionSummaryFn == nil {
		return nil, nil
	}
	return m.GetSessionSummaryFn(ctx, sessionID)
}

func (m *MockClient) GetSessionItems(ctx context.Context, sessionID int64, withAnswers bool) (any, error) {
	m.record("session-items")
	if m.GetSessionItemsFn == nil {
		return nil, nil
	}
	return m.GetSessionItemsFn(ctx, sessionID, withAnswers)
}

func (m *MockClient) Get(ctx context.Context, path string, params url.Values) (any, error) {
	m.record("get " + path)
	if m.GetFn == nil {
		return nil, nil
	}
	return m.GetFn(ctx, path, params)
}

func (m *MockClient) Submit(ctx context.Context, sub Submission) (any, error) {
	m.record("submit")
	m.mu.Lock()
	m.Submissions = append(m.Submissions, sub)
	m.mu.Unlock()
	if m.SubmitFn == nil {
		return nil, nil
	}
	return m.SubmitFn(ctx, sub)
}

func (m *MockClient) RetryWrong(ctx context.Context, sessionID int64) (any, error) {
	m.record("retry-wrong")
	if m.RetryWrongFn == nil {
		return nil, nil
	}
	return m.RetryWrongFn(ctx, sessionID)
}

func (m *MockClient) GetReport(ctx context.Context, sessionID int64) (any, error) {
	m.record("report")
	if m.GetReportFn == nil {
		return nil, nil
	}
	return m.GetReportFn(ctx, sessionID)
}
