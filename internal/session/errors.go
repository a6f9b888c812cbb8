package session

import (
	"fmt"

	"github.com/studyroom/quizcore/internal/question"
)

// ErrState reports an operation attempted in a phase that does not permit
// it. These are caller bugs or user races (double submit, submit during a
// load), never transport trouble.
type ErrState struct {
	Op     string
	Phase  Phase
	Reason string
}

func (e *ErrState) Error() string {
	return fmt.Sprintf("session: %s refused in phase %s: %s", e.Op, e.Phase, e.Reason)
}

// ErrUnresolvedAnswers means one or more picked answers could not be
// mapped onto server-issued choice ids. Nothing was sent: a submission is
// all-or-nothing.
type ErrUnresolvedAnswers struct {
	Positions []int // 1-based
}

func (e *ErrUnresolvedAnswers) Error() string {
	return fmt.Sprintf("session: %d answer(s) could not be resolved to choice ids, submission not sent (positions %v)", len(e.Positions), e.Positions)
}

// ErrWrongScreen means the requested session exists but holds a different
// quiz variant than the caller is driving. The caller should route to the
// session's own play surface instead of loading it here.
type ErrWrongScreen struct {
	SessionID int64
	Want      question.Kind
	Got       question.Kind
	PlayPath  string
}

func (e *ErrWrongScreen) Error() string {
	return fmt.Sprintf("session %d is a %s quiz, not %s", e.SessionID, e.Got, e.Want)
}
