package store

import (
	"context"
	"fmt"

	"github.com/studyroom/quizcore/ent"
	"github.com/studyroom/quizcore/ent/sessionsnapshot"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Save(ctx context.Context, snap *ProgressSnapshot) error {
	existing, err := r.client.SessionSnapshot.Query().
		Where(sessionsnapshot.SessionID(snap.SessionID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query snapshot: %w", err)
	}

	if existing != nil {
		_, err = existing.Update().
			SetQuestionType(snap.QuestionType).
			SetProgress(snap.Progress).
			SetPosition(snap.Position).
			SetSubmitted(snap.Submitted).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update snapshot: %w", err)
		}
		return nil
	}

	_, err = r.client.SessionSnapshot.Create().
		SetSessionID(snap.SessionID).
		SetQuestionType(snap.QuestionType).
		SetProgress(snap.Progress).
		SetPosition(snap.Position).
		SetSubmitted(snap.Submitted).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*ProgressSnapshot, error) {
	s, err := r.client.SessionSnapshot.Query().
		Order(ent.Desc(sessionsnapshot.FieldUpdatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return fromEntSnapshot(s), nil
}

func (r *snapshotRepo) ForSession(ctx context.Context, sessionID int64) (*ProgressSnapshot, error) {
	s, err := r.client.SessionSnapshot.Query().
		Where(sessionsnapshot.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query snapshot for session %d: %w", sessionID, err)
	}
	return fromEntSnapshot(s), nil
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	older, err := r.client.SessionSnapshot.Query().
		Order(ent.Desc(sessionsnapshot.FieldUpdatedAt)).
		Offset(keep).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}

	for _, s := range older {
		if err := r.client.SessionSnapshot.DeleteOne(s).Exec(ctx); err != nil {
			return fmt.Errorf("prune snapshot %d: %w", s.SessionID, err)
		}
	}
	return nil
}

func fromEntSnapshot(s *ent.SessionSnapshot) *ProgressSnapshot {
	return &ProgressSnapshot{
		SessionID:    s.SessionID,
		QuestionType: s.QuestionType,
		Progress:     s.Progress,
		Position:     s.Position,
		Submitted:    s.Submitted,
		UpdatedAt:    s.UpdatedAt,
	}
}
