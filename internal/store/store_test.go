package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestSnapshot_SaveAndResume(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap := &ProgressSnapshot{
		SessionID:    42,
		QuestionType: "OX",
		Progress:     []string{"O", "X", ""},
		Position:     3,
	}
	if err := repo.Save(ctx, snap); err != nil {
		t.Fatal(err)
	}

	got, err := repo.ForSession(ctx, 42)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("expected snapshot for session 42")
	}
	if len(got.Progress) != 3 || got.Progress[1] != "X" {
		t.Errorf("Progress = %v", got.Progress)
	}
	if got.Position != 3 {
		t.Errorf("Position = %d, want 3", got.Position)
	}
}

func TestSnapshot_SaveUpserts(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	first := &ProgressSnapshot{SessionID: 7, QuestionType: "CHOICE", Progress: []string{"", ""}}
	if err := repo.Save(ctx, first); err != nil {
		t.Fatal(err)
	}
	second := &ProgressSnapshot{SessionID: 7, QuestionType: "CHOICE", Progress: []string{"O", ""}, Position: 2}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatal(err)
	}

	got, err := repo.ForSession(ctx, 7)
	if err != nil {
		t.Fatal(err)
	}
	if got.Progress[0] != "O" || got.Position != 2 {
		t.Errorf("snapshot not updated in place: %+v", got)
	}
}

func TestSnapshot_LatestIsResumePointer(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, &ProgressSnapshot{SessionID: 1, QuestionType: "OX", Progress: []string{""}}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(ctx, &ProgressSnapshot{SessionID: 2, QuestionType: "OX", Progress: []string{""}}); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Latest(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.SessionID != 2 {
		t.Errorf("Latest = %+v, want session 2", got)
	}
}

func TestSnapshot_MissingIsNil(t *testing.T) {
	s := openTestStore(t)

	got, err := s.SnapshotRepo().ForSession(context.Background(), 999)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("expected nil snapshot, got %+v", got)
	}
}

func TestEvents_AppendAndAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: 5, QuestionID: 51, Position: 1, Picked: "O", Verdict: "O", TimeMs: 1200},
		{SessionID: 5, QuestionID: 52, Position: 2, Picked: "X", Verdict: "X", TimeMs: 800},
		{SessionID: 5, QuestionID: 53, Position: 3, Picked: "O", Verdict: "O", TimeMs: 950},
	}
	for _, a := range answers {
		if err := repo.AppendAnswer(ctx, a); err != nil {
			t.Fatal(err)
		}
	}
	if err := repo.AppendSession(ctx, SessionEventData{SessionID: 5, Action: "submitted", QuestionType: "OX", QuestionCount: 3, ElapsedSecs: 40}); err != nil {
		t.Fatal(err)
	}

	correct, total, err := repo.SessionAccuracy(ctx, 5)
	if err != nil {
		t.Fatal(err)
	}
	if correct != 2 || total != 3 {
		t.Errorf("accuracy = %d/%d, want 2/3", correct, total)
	}
}

func TestSequence_Monotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	prev, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		n, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if n <= prev {
			t.Fatalf("sequence not increasing: %d then %d", prev, n)
		}
		prev = n
	}
}
