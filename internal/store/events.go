package store

import (
	"context"
	"fmt"

	"github.com/studyroom/quizcore/ent"
	"github.com/studyroom/quizcore/ent/answerevent"
)

// eventRepo implements EventRepo using the ent client and the shared
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionID(data.QuestionID).
		SetPosition(data.Position).
		SetPicked(data.Picked).
		SetVerdict(data.Verdict).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSession(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetQuestionType(data.QuestionType).
		SetQuestionCount(data.QuestionCount).
		SetElapsedSecs(data.ElapsedSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) SessionAccuracy(ctx context.Context, sessionID int64) (int, int, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.SessionID(sessionID)).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query session accuracy: %w", err)
	}

	correct := 0
	for _, e := range events {
		if e.Verdict == "O" {
			correct++
		}
	}
	return correct, len(events), nil
}
