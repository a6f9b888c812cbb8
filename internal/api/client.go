package api

import (
	"context"
	"net/url"
)

// Client is the abstraction over the quiz backend. Methods return the
// decoded JSON payload (any) rather than typed records: the backend's field
// naming drifts across versions and code paths, so shape decisions belong
// to the normalization layer, not here. Envelope helpers in this package
// unwrap the common wrappers.
type Client interface {
	// GetPlan fetches the daily plan for a (role, date, kind) triple.
	GetPlan(ctx context.Context, q PlanQuery) (any, error)

	// CreateSession creates a quiz session from a plan or explicit criteria.
	CreateSession(ctx context.Context, req CreateSessionRequest) (any, error)

	// GetSessionSummary fetches status, question type and backing set id.
	GetSessionSummary(ctx context.Context, sessionID int64) (any, error)

	// GetSessionItems fetches the session's ordered question/choice
	// records. withAnswers asks the backend to include correctness where
	// it supports that.
	GetSessionItems(ctx context.Context, sessionID int64, withAnswers bool) (any, error)

	// Get performs a GET against an arbitrary path. The candidate resolver
	// uses this for endpoints whose exact route is not stable.
	Get(ctx context.Context, path string, params url.Values) (any, error)

	// Submit sends the full answer set for a session, exactly once.
	Submit(ctx context.Context, sub Submission) (any, error)

	// RetryWrong requests a fresh session scoped to the previously
	// incorrect questions of sessionID.
	RetryWrong(ctx context.Context, sessionID int64) (any, error)

	// GetReport fetches the per-question results report for a session.
	GetReport(ctx context.Context, sessionID int64) (any, error)
}

// PlanQuery identifies one daily plan.
type PlanQuery struct {
	Role string
	Date string // YYYY-MM-DD
	Kind string // quiz kind marker, e.g. "OX"
}

// CacheKey encodes every input that affects the plan lookup result.
func (q PlanQuery) CacheKey() string {
	return "plan|" + q.Role + "|" + q.Date + "|" + q.Kind
}

// CreateSessionRequest carries either a plan reference (set id) or explicit
// criteria for ad-hoc sessions.
type CreateSessionRequest struct {
	Role        string  `json:"role,omitempty"`
	Date        string  `json:"date,omitempty"`
	Kind        string  `json:"questionType,omitempty"`
	SetID       int64   `json:"sessionSetId,omitempty"`
	QuestionIDs []int64 `json:"questionIds,omitempty"`
}

// Answer is the wire-level record for one answered question. ChoiceID must
// be an id the server itself handed out in the session items.
type Answer struct {
	QuestionID int64 `json:"questionId"`
	ChoiceID   int64 `json:"choiceId"`
}

// Submission is the full answer set for one session.
type Submission struct {
	SessionID  int64    `json:"sessionId"`
	Answers    []Answer `json:"answers"`
	ElapsedSec int      `json:"elapsedSec"`
}

// TokenSource supplies the bearer token for each request. Authentication
// storage mechanics live with the caller; this layer only attaches what it
// is given.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenSource returning a fixed token. An empty token
// sends no Authorization header.
type StaticToken string

func (s StaticToken) Token(context.Context) (string, error) { return string(s), nil }
