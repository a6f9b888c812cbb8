package store

import (
	"context"
	"time"
)

// ProgressSnapshot is the durable client-side state of one session: enough
// to resume an interrupted quiz after a reload.
type ProgressSnapshot struct {
	SessionID    int64
	QuestionType string
	Progress     []string // one of "O", "X" or "" per question
	Position     int      // 1-based
	Submitted    bool
	UpdatedAt    time.Time
}

// SnapshotRepo manages per-session progress snapshots. The latest snapshot
// doubles as the "last session id" pointer.
type SnapshotRepo interface {
	// Save upserts the snapshot for its session id.
	Save(ctx context.Context, snap *ProgressSnapshot) error

	// Latest returns the most recently updated snapshot, or nil if none.
	Latest(ctx context.Context) (*ProgressSnapshot, error)

	// ForSession returns the snapshot for sessionID, or nil if none.
	ForSession(ctx context.Context, sessionID int64) (*ProgressSnapshot, error)

	// Prune deletes all but the N most recently updated snapshots.
	Prune(ctx context.Context, keep int) error
}

// AnswerEventData captures one answered question.
type AnswerEventData struct {
	SessionID  int64
	QuestionID int64
	Position   int
	Picked     string
	Verdict    string
	TimeMs     int
}

// SessionEventData captures one session lifecycle action.
type SessionEventData struct {
	SessionID     int64
	Action        string // created, resumed, submitted, retry
	QuestionType  string
	QuestionCount int
	ElapsedSecs   int
}

// EventRepo provides append access to the local event log.
type EventRepo interface {
	AppendAnswer(ctx context.Context, data AnswerEventData) error
	AppendSession(ctx context.Context, data SessionEventData) error

	// SessionAccuracy returns correct/total over the answer events of a
	// session, or (0, 0) when none exist.
	SessionAccuracy(ctx context.Context, sessionID int64) (correct, total int, err error)
}
